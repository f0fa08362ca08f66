package actions

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/combat"
	"github.com/pixil98/go-survival/internal/economy"
	"github.com/pixil98/go-survival/internal/game"
	"github.com/pixil98/go-survival/internal/rules"
	"github.com/pixil98/go-testutil"
)

type nopScheduler struct{}

func (nopScheduler) After(time.Duration, func(w *game.World)) {}

type chatLine struct {
	sender  string
	message string
}

type fakeChatter struct {
	lines []chatLine
}

func (c *fakeChatter) BroadcastChat(_ context.Context, sender, message string) error {
	c.lines = append(c.lines, chatLine{sender: sender, message: message})
	return nil
}

// newWorld builds a 3x3 world with the given center tile type and lagoon
// everywhere else. The player stands in the center.
func newWorld(t *testing.T, center string) (*game.World, *game.Player) {
	t.Helper()
	cat := catalog.Default()
	r := rules.Default()
	r.Player.SpawnX, r.Player.SpawnY = 1, 1

	grid := make([][]*game.Tile, 3)
	for y := range grid {
		grid[y] = make([]*game.Tile, 3)
		for x := range grid[y] {
			key := catalog.TileLagoon
			if x == 1 && y == 1 {
				key = center
			}
			grid[y][x] = game.NewTile(x, y, cat.Tile(key))
		}
	}

	w := game.NewWorld(grid, cat, r)
	p := game.NewPlayer("p1", "Ana", cat, r.Player)
	if err := w.AddPlayer(p); err != nil {
		t.Fatalf("add player: %v", err)
	}
	return w, p
}

func newDispatcher(w *game.World, chat Chatter) *Dispatcher {
	rng := rand.New(rand.NewPCG(1, 2))
	return NewDispatcher(combat.NewEngine(w.Rules.Combat, rng, nopScheduler{}), rng, chat)
}

func actionIDs(list []game.AvailableAction) []string {
	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestSupported(t *testing.T) {
	want := []string{
		ActionBuild, ActionConsume, ActionCombat, ActionCraft, ActionDrop, ActionEquip,
		ActionHarvestStone, ActionHarvestSaltWater, ActionHarvestSand,
		ActionHarvestWoodAxe, ActionHarvestWoodHands, ActionHarvestWoodSaw,
		ActionHunt, ActionInitiateCombat, ActionMove, ActionMoveItem, ActionOpenTreasure,
		ActionPickup, ActionChat, ActionSearch, ActionSleep, ActionUnequip,
	}
	slices.Sort(want)
	testutil.AssertEqual(t, "supported", Supported(), want)

	testutil.AssertEqual(t, "unimplemented count", len(Unimplemented), 33)
	for _, id := range Unimplemented {
		if _, ok := decoders[id]; ok {
			t.Errorf("%s is both supported and unimplemented", id)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		id      string
		data    string
		want    Command
		wantErr error
		errText string
	}{
		"move": {
			id:   ActionMove,
			data: `{"direction":"north"}`,
			want: Move{Direction: "north"},
		},
		"move without direction": {
			id:      ActionMove,
			data:    `{}`,
			wantErr: ErrInvalidPayload,
			errText: "direction is required",
		},
		"malformed payload": {
			id:      ActionEquip,
			data:    `{"itemKey":`,
			wantErr: ErrInvalidPayload,
		},
		"saw variant": {
			id:   ActionHarvestWoodSaw,
			want: HarvestWood{Method: economy.WoodSaw},
		},
		"no payload": {
			id:   ActionSearch,
			data: `null`,
			want: Search{},
		},
		"craft ignores costs": {
			id:   ActionCraft,
			data: `{"recipeName":"Axe","quantity":2,"costs":{"Wood":1}}`,
			want: Craft{RecipeName: "Axe", Quantity: 2},
		},
		"bad combat move": {
			id:      ActionCombat,
			data:    `{"move":"dance"}`,
			wantErr: ErrInvalidPayload,
			errText: `"dance"`,
		},
		"stub": {
			id:   "fish",
			want: Unsupported{ID: "fish"},
		},
		"typo suggests": {
			id:      "serch_zone",
			wantErr: ErrUnknownAction,
			errText: `did you mean "search_zone"`,
		},
		"unknown": {
			id:      "qqqqqqqqqqqqqqqq",
			wantErr: ErrUnknownAction,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(tt.id, json.RawMessage(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if tt.errText != "" {
					testutil.AssertErrorContains(t, err, tt.errText)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "command", got, tt.want)
			testutil.AssertEqual(t, "action id", got.ActionID(), tt.id)
		})
	}
}

func TestSuggest(t *testing.T) {
	testutil.AssertEqual(t, "close", Suggest("hnt"), ActionHunt)
	testutil.AssertEqual(t, "far", Suggest("completely_unrelated"), "")
}

func TestDispatch_Busy(t *testing.T) {
	w, p := newWorld(t, catalog.TileForest)
	chat := &fakeChatter{}
	d := newDispatcher(w, chat)
	p.Busy = true

	err := d.Dispatch(context.Background(), w, p, Search{})
	ue, ok := game.AsUserError(err)
	if !ok {
		t.Fatalf("expected a user error, got %v", err)
	}
	testutil.AssertEqual(t, "message", ue.Message, "You are busy right now.")
	testutil.AssertEqual(t, "search untouched", w.Tile(1, 1).Remaining(catalog.CounterSearch), 15)

	if err := d.Dispatch(context.Background(), w, p, Chat{Message: "help"}); err != nil {
		t.Fatalf("chat while busy: %v", err)
	}
	testutil.AssertEqual(t, "chat", chat.lines, []chatLine{{sender: "Ana", message: "help"}}, cmp.AllowUnexported(chatLine{}))
}

func TestDispatch_Chat(t *testing.T) {
	tests := map[string]struct {
		message string
		max     int
		want    []chatLine
		wantErr bool
	}{
		"short": {
			message: "hi all",
			max:     200,
			want:    []chatLine{{sender: "Ana", message: "hi all"}},
		},
		"truncated": {
			message: "hello world",
			max:     5,
			want:    []chatLine{{sender: "Ana", message: "hell…"}},
		},
		"blank": {
			message: "   ",
			max:     200,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, p := newWorld(t, catalog.TilePlains)
			w.Rules.ChatMaxLength = tt.max
			chat := &fakeChatter{}
			d := newDispatcher(w, chat)

			err := d.Dispatch(context.Background(), w, p, Chat{Message: tt.message})
			if tt.wantErr {
				if _, ok := game.AsUserError(err); !ok {
					t.Fatalf("expected a user error, got %v", err)
				}
				testutil.AssertEqual(t, "lines", len(chat.lines), 0)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "lines", chat.lines, tt.want, cmp.AllowUnexported(chatLine{}))
		})
	}
}

func TestHandle(t *testing.T) {
	tests := map[string]struct {
		id     string
		data   string
		want   bool
		notice *game.Notification
	}{
		"blocked move": {
			id:     ActionMove,
			data:   `{"direction":"north"}`,
			want:   false,
			notice: &game.Notification{Type: game.NotifyWarning, Message: "Path blocked"},
		},
		"search": {
			id:   ActionSearch,
			want: true,
		},
		"stub": {
			id:     "fish",
			want:   true,
			notice: &game.Notification{Type: game.NotifyInfo, Message: "Fish is not available yet."},
		},
		"unknown": {
			id:   "nope",
			want: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, p := newWorld(t, catalog.TileForest)
			d := newDispatcher(w, nil)

			got := d.Handle(context.Background(), w, p.ID, tt.id, json.RawMessage(tt.data))
			testutil.AssertEqual(t, "accepted", got, tt.want)
			if tt.notice != nil {
				testutil.AssertEqual(t, "notifications", p.Notifications, []game.Notification{*tt.notice})
			}
		})
	}

	t.Run("unknown player", func(t *testing.T) {
		w, _ := newWorld(t, catalog.TileForest)
		d := newDispatcher(w, nil)
		testutil.AssertEqual(t, "accepted", d.Handle(context.Background(), w, "ghost", ActionSearch, nil), false)
	})
}

func TestAvailable(t *testing.T) {
	tests := map[string]struct {
		center string
		setup  func(t *testing.T, w *game.World, p *game.Player)
		want   []string
	}{
		"forest bare handed": {
			center: catalog.TileForest,
			want:   []string{ActionSearch, ActionHunt, ActionHarvestWoodHands},
		},
		"forest with axe": {
			center: catalog.TileForest,
			setup: func(t *testing.T, w *game.World, p *game.Player) {
				for _, k := range p.Inventory.Keys() {
					if p.Inventory.NameOf(k) == catalog.ItemAxe {
						if err := p.Equip(w.Catalog, k); err != nil {
							t.Fatalf("equip: %v", err)
						}
					}
				}
			},
			want: []string{ActionSearch, ActionHunt, ActionHarvestWoodAxe},
		},
		"beach": {
			center: catalog.TileBeach,
			want:   []string{ActionSearch, ActionHarvestSand, ActionHarvestSaltWater},
		},
		"plains": {
			center: catalog.TilePlains,
			want:   []string{ActionSearch, ActionHunt, ActionOpenBuildModal},
		},
		"searched out mine": {
			center: catalog.TileMineTerrain,
			setup: func(t *testing.T, w *game.World, p *game.Player) {
				w.Tile(1, 1).Counters[catalog.CounterSearch] = 0
			},
			want: []string{ActionHarvestStone},
		},
		"shelter": {
			center: catalog.TilePlains,
			setup: func(t *testing.T, w *game.World, p *game.Player) {
				tile := w.Tile(1, 1)
				tile.Buildings = append(tile.Buildings, game.NewBuilding(w.Catalog.Tile(catalog.BuildingShelterIndividual)))
			},
			want: []string{ActionSearch, ActionHunt, ActionSleep, "open_building_inventory", "set_lock"},
		},
		"enemy": {
			center: catalog.TilePlains,
			setup: func(t *testing.T, w *game.World, p *game.Player) {
				w.Enemies = append(w.Enemies, game.NewEnemy(w.Catalog.Enemy("RAT"), 1, 1))
			},
			want: []string{ActionSearch, ActionHunt, ActionOpenBuildModal, ActionInitiateCombat},
		},
		"treasure with key": {
			center: catalog.TileTreasureChest,
			setup: func(t *testing.T, w *game.World, p *game.Player) {
				p.AddItem(w.Catalog, catalog.ItemTreasureKey, 1)
			},
			want: []string{ActionOpenTreasure},
		},
		"busy": {
			center: catalog.TileForest,
			setup: func(t *testing.T, w *game.World, p *game.Player) {
				p.Busy = true
			},
			want: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, p := newWorld(t, tt.center)
			if tt.setup != nil {
				tt.setup(t, w, p)
			}
			testutil.AssertEqual(t, "actions", actionIDs(Available(w, p)), tt.want)
		})
	}
}
