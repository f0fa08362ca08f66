package npc

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/game"
	"github.com/pixil98/go-survival/internal/rules"
	"github.com/pixil98/go-testutil"
)

// newPlainsWorld builds an all-plains world of the given size.
func newPlainsWorld(t *testing.T, size int) *game.World {
	t.Helper()
	cat := catalog.Default()
	r := rules.Default()

	grid := make([][]*game.Tile, size)
	for y := range grid {
		grid[y] = make([]*game.Tile, size)
		for x := range grid[y] {
			grid[y][x] = game.NewTile(x, y, cat.Tile(catalog.TilePlains))
		}
	}
	return game.NewWorld(grid, cat, r)
}

func TestManager_Seed(t *testing.T) {
	w := newPlainsWorld(t, 20)
	m := NewManager(w.Rules.Population, rand.New(rand.NewPCG(3, 4)))

	if err := m.Seed(context.Background(), w); err != nil {
		t.Fatalf("seed: %v", err)
	}

	testutil.AssertEqual(t, "npcs", len(w.NPCs), 4)
	testutil.AssertEqual(t, "enemies", len(w.Enemies), 0)

	bob, alice := w.NPCs[0], w.NPCs[1]
	testutil.AssertEqual(t, "name", bob.Name, "Bob")
	testutil.AssertEqual(t, "health", bob.Health, 8)
	testutil.AssertEqual(t, "bob quest", bob.Quest.Description, "Bob needs 10 wood. Reward: 2 cooked meat.")
	testutil.AssertEqual(t, "alice quest", alice.Quest.Description, "Alice needs 3 raw meat. Reward: 15 stone.")
	testutil.AssertEqual(t, "dialogue", bob.Dialogue[1], "BOB SURVIVED THE WRECK. So did you, it seems.")
}

func TestManager_Daily(t *testing.T) {
	w := newPlainsWorld(t, 20)
	m := NewManager(w.Rules.Population, rand.New(rand.NewPCG(5, 6)))

	start := w.Day
	if err := m.Daily(context.Background(), w); err != nil {
		t.Fatalf("daily: %v", err)
	}
	testutil.AssertEqual(t, "day", w.Day, start+1)

	for range 100 {
		_ = m.Daily(context.Background(), w)
		if len(w.Enemies) > w.Rules.Population.MaxEnemies {
			t.Fatalf("enemy cap exceeded: %d", len(w.Enemies))
		}
	}
	testutil.AssertEqual(t, "enemies capped", len(w.Enemies), w.Rules.Population.MaxEnemies)
}

func TestManager_SpawnEnemy(t *testing.T) {
	tests := map[string]struct {
		size     int
		player   bool
		existing int
		expSpawn bool
	}{
		"open map":          {size: 20, expSpawn: true},
		"at cap":            {size: 20, existing: 6, expSpawn: false},
		"player everywhere": {size: 5, player: true, expSpawn: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newPlainsWorld(t, tt.size)
			if tt.player {
				p := game.NewPlayer("p1", "tester", w.Catalog, rules.Player{SpawnX: 2, SpawnY: 2, MaxHealth: 1, MaxThirst: 1, MaxHunger: 1, MaxSleep: 1})
				_ = w.AddPlayer(p)
			}
			for range tt.existing {
				w.Enemies = append(w.Enemies, game.NewEnemy(w.Catalog.Enemy("RAT"), 0, 0))
			}
			m := NewManager(w.Rules.Population, rand.New(rand.NewPCG(7, 8)))

			got := m.SpawnEnemy(context.Background(), w)
			testutil.AssertEqual(t, "spawned", got, tt.expSpawn)

			if got {
				e := w.Enemies[len(w.Enemies)-1]
				testutil.AssertEqual(t, "accessible", w.Accessible(e.X, e.Y), true)
			}
		})
	}
}

func TestManager_Update(t *testing.T) {
	w := newPlainsWorld(t, 5)
	p := game.NewPlayer("p1", "tester", w.Catalog, rules.Player{SpawnX: 1, SpawnY: 1, MaxHealth: 1, MaxThirst: 1, MaxHunger: 1, MaxSleep: 1})
	_ = w.AddPlayer(p)
	w.NPCs = []*game.NPC{{Name: "Bob", Health: 0}, {Name: "Alice", Health: 8}}
	m := NewManager(w.Rules.Population, rand.New(rand.NewPCG(1, 1)))

	m.Update(context.Background(), w, time.Second)
	testutil.AssertEqual(t, "not yet", len(w.NPCs), 2)

	m.Update(context.Background(), w, 2*time.Second)
	testutil.AssertEqual(t, "removed", len(w.NPCs), 1)
	testutil.AssertEqual(t, "survivor", w.NPCs[0].Name, "Alice")
	testutil.AssertEqual(t, "notified", p.Notifications, []game.Notification{{Type: game.NotifyInfo, Message: "Bob has died."}})
}

func TestExpandTemplate(t *testing.T) {
	tests := map[string]struct {
		tmpl   string
		data   any
		exp    string
		expErr string
	}{
		"field":      {tmpl: "hi {{ .Name }}", data: game.NPC{Name: "Bob"}, exp: "hi Bob"},
		"sprig func": {tmpl: "{{ .Name | upper }}", data: game.NPC{Name: "Bob"}, exp: "BOB"},
		"bad syntax": {tmpl: "{{ .Name", data: nil, expErr: "parsing template"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ExpandTemplate(tt.tmpl, tt.data)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "output", got, tt.exp)
		})
	}
}
