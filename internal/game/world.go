package game

import (
	"slices"
	"sort"

	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/rules"
)

// World is the whole mutable simulation. It has no internal locking: exactly
// one goroutine may touch it at a time.
type World struct {
	Width         int                `json:"width"`
	Height        int                `json:"height"`
	Map           [][]*Tile          `json:"map"`
	Players       map[string]*Player `json:"players"`
	NPCs          []*NPC             `json:"npcs"`
	Enemies       []*Enemy           `json:"enemies"`
	Day           int                `json:"day"`
	TimeOfDay     int                `json:"timeOfDay"`
	Combat        *CombatSession     `json:"combatState"`
	KnownRecipes  StringSet          `json:"knownRecipes"`
	RevealedTiles StringSet          `json:"revealedTiles"`

	Catalog *catalog.Catalog `json:"-"`
	Rules   *rules.Rules     `json:"-"`
}

// NewWorld wraps a generated map. The grid is indexed Map[y][x].
func NewWorld(grid [][]*Tile, cat *catalog.Catalog, r *rules.Rules) *World {
	w := &World{
		Map:           grid,
		Players:       map[string]*Player{},
		NPCs:          []*NPC{},
		Enemies:       []*Enemy{},
		Day:           1,
		TimeOfDay:     8,
		KnownRecipes:  NewStringSet(),
		RevealedTiles: NewStringSet(),
		Catalog:       cat,
		Rules:         r,
	}
	w.Height = len(grid)
	if w.Height > 0 {
		w.Width = len(grid[0])
	}
	return w
}

func (w *World) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.Width && y < w.Height
}

// Tile returns the tile at (x,y), or nil outside the map.
func (w *World) Tile(x, y int) *Tile {
	if !w.InBounds(x, y) {
		return nil
	}
	return w.Map[y][x]
}

// TileType returns the type definition of the tile at (x,y).
func (w *World) TileType(x, y int) *catalog.TileType {
	t := w.Tile(x, y)
	if t == nil {
		return nil
	}
	return w.Catalog.Tile(t.Type)
}

// Accessible reports whether a player may stand on (x,y).
func (w *World) Accessible(x, y int) bool {
	tt := w.TileType(x, y)
	return tt != nil && tt.Accessible
}

func (w *World) Player(id string) (*Player, error) {
	p, ok := w.Players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

func (w *World) AddPlayer(p *Player) error {
	if _, exists := w.Players[p.ID]; exists {
		return ErrPlayerExists
	}
	w.Players[p.ID] = p
	w.RevealedTiles.Add(TileKey(p.X, p.Y))
	return nil
}

// RemovePlayer drops a player. Any combat session they were in is discarded
// and the enemy left in place.
func (w *World) RemovePlayer(id string) error {
	if _, exists := w.Players[id]; !exists {
		return ErrPlayerNotFound
	}
	delete(w.Players, id)
	if w.Combat != nil && w.Combat.PlayerID == id {
		w.Combat = nil
	}
	return nil
}

// PlayerIDs returns connected player ids in a stable order.
func (w *World) PlayerIDs() []string {
	ids := make([]string, 0, len(w.Players))
	for id := range w.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NotifyAll queues msg for every connected player.
func (w *World) NotifyAll(t NotificationType, msg string) {
	for _, p := range w.Players {
		p.Notify(t, msg)
	}
}

func (w *World) Enemy(id string) *Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// EnemiesAt returns the enemies standing on (x,y).
func (w *World) EnemiesAt(x, y int) []*Enemy {
	var out []*Enemy
	for _, e := range w.Enemies {
		if e.X == x && e.Y == y {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) RemoveEnemy(id string) {
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e *Enemy) bool { return e.ID == id })
}

// Occupied reports whether an enemy or NPC already stands on (x,y).
func (w *World) Occupied(x, y int) bool {
	for _, e := range w.Enemies {
		if e.X == x && e.Y == y {
			return true
		}
	}
	for _, n := range w.NPCs {
		if n.X == x && n.Y == y {
			return true
		}
	}
	return false
}

// KnowsRecipe reports whether a player, or anyone through the shared set,
// has learned the named recipe.
func (w *World) KnowsRecipe(p *Player, name string) bool {
	return p.KnownRecipes.Has(name) || w.KnownRecipes.Has(name)
}

// AdvanceHours moves the clock forward, rolling into following days.
func (w *World) AdvanceHours(h int) {
	w.TimeOfDay += h
	for w.TimeOfDay >= 24 {
		w.TimeOfDay -= 24
		w.Day++
	}
}

// Reveal marks (x,y) as seen by p and by the world.
func (w *World) Reveal(p *Player, x, y int) {
	key := TileKey(x, y)
	p.VisitedTiles.Add(key)
	w.RevealedTiles.Add(key)
}
