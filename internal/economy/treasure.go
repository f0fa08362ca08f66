package economy

import (
	"fmt"

	"github.com/pixil98/go-survival/internal/game"
)

// OpenTreasure spends the key and hands out the treasure kit. An already
// opened chest is left alone.
func OpenTreasure(w *game.World, p *game.Player) error {
	tt := w.TileType(p.X, p.Y)
	if tt == nil || tt.RequiresKey == "" {
		return game.Userf("There is no treasure here.")
	}
	tile := w.Tile(p.X, p.Y)
	if tile.Opened {
		return nil
	}
	if p.Inventory.Count(tt.RequiresKey) == 0 {
		return game.Userf("You need a %s.", tt.RequiresKey)
	}

	if err := p.Inventory.RemoveNamed(tt.RequiresKey, 1); err != nil {
		return fmt.Errorf("using key: %w", err)
	}
	tile.Opened = true
	for _, g := range w.Catalog.TreasureKit {
		p.AddItem(w.Catalog, g.Item, g.Quantity)
	}

	p.Notify(game.NotifySuccess, "You opened the treasure!")
	return nil
}

// CanOpenTreasure reports whether OpenTreasure would succeed.
func CanOpenTreasure(w *game.World, p *game.Player) bool {
	tt := w.TileType(p.X, p.Y)
	return tt != nil && tt.RequiresKey != "" && !w.Tile(p.X, p.Y).Opened && p.Inventory.Count(tt.RequiresKey) > 0
}
