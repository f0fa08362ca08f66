package economy

import (
	"fmt"

	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/game"
)

// Shelter returns the sheltering building type on the player's tile.
func Shelter(w *game.World, p *game.Player) *catalog.TileType {
	for _, b := range w.Tile(p.X, p.Y).Buildings {
		if def := w.Catalog.Tile(b.Key); def != nil && def.IsShelter() {
			return def
		}
	}
	return nil
}

// Sleep rests the player in a shelter, passing the night.
func Sleep(w *game.World, p *game.Player) error {
	def := Shelter(w, p)
	if def == nil {
		return game.Userf("You need a shelter to sleep.")
	}

	p.Sleep = p.MaxSleep
	p.Health += def.SleepEffect.Health
	p.Clamp()
	w.AdvanceHours(w.Rules.SleepHours)

	p.Notify(game.NotifySuccess, fmt.Sprintf("You slept in the %s.", def.Name))
	return nil
}
