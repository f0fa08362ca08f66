package game

import (
	"strconv"

	"github.com/pixil98/go-survival/internal/catalog"
)

// TileKey formats a coordinate the way visited and revealed sets store it.
func TileKey(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// Tile is one cell of the map: a type reference plus mutable state.
type Tile struct {
	X           int                     `json:"x"`
	Y           int                     `json:"y"`
	Type        string                  `json:"type"`
	Counters    map[catalog.Counter]int `json:"counters"`
	Buildings   []*Building             `json:"buildings"`
	GroundItems map[string]int          `json:"groundItems"`
	HiddenItem  string                  `json:"hiddenItem,omitempty"`
	Opened      bool                    `json:"opened,omitempty"`
}

// NewTile materializes a tile of type t, copying its counter template.
func NewTile(x, y int, t *catalog.TileType) *Tile {
	tile := &Tile{
		X:           x,
		Y:           y,
		Type:        t.Key,
		Counters:    make(map[catalog.Counter]int, len(t.Counters)),
		Buildings:   []*Building{},
		GroundItems: map[string]int{},
	}
	for c, n := range t.Counters {
		tile.Counters[c] = n
	}
	if t.IsBuilding {
		tile.Buildings = append(tile.Buildings, NewBuilding(t))
	}
	return tile
}

// Remaining returns the value of counter c.
func (t *Tile) Remaining(c catalog.Counter) int {
	return t.Counters[c]
}

// Consume decrements counter c by one. It returns false, leaving the
// counter untouched, when nothing remains.
func (t *Tile) Consume(c catalog.Counter) bool {
	if t.Counters[c] <= 0 {
		return false
	}
	t.Counters[c]--
	return true
}

// Building returns the first building on the tile, if any.
func (t *Tile) Building() *Building {
	if len(t.Buildings) == 0 {
		return nil
	}
	return t.Buildings[0]
}

// BuildingByID finds a building on the tile.
func (t *Tile) BuildingByID(id string) *Building {
	for _, b := range t.Buildings {
		if b.ID == id {
			return b
		}
	}
	return nil
}
