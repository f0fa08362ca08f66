package game

import (
	"github.com/google/uuid"
	"github.com/pixil98/go-survival/internal/catalog"
)

// Building is a placed structure. It belongs to no one.
type Building struct {
	ID            string    `json:"id"`
	Key           string    `json:"key"`
	Durability    int       `json:"durability"`
	MaxDurability int       `json:"maxDurability"`
	Inventory     Inventory `json:"inventory,omitempty"`
	MaxInventory  int       `json:"maxInventory,omitempty"`
	Locked        bool      `json:"locked"`
	LockCode      string    `json:"-"`
}

func NewBuilding(t *catalog.TileType) *Building {
	b := &Building{
		ID:            uuid.NewString(),
		Key:           t.Key,
		Durability:    t.Durability,
		MaxDurability: t.Durability,
		MaxInventory:  t.MaxInventory,
	}
	if t.MaxInventory > 0 {
		b.Inventory = Inventory{}
	}
	return b
}

// HasStorage reports whether the building keeps its own inventory.
func (b *Building) HasStorage() bool {
	return b.Inventory != nil
}
