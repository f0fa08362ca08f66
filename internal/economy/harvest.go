package economy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/game"
)

// WoodMethod is how a player fells wood.
type WoodMethod string

const (
	WoodAxe   WoodMethod = "axe"
	WoodSaw   WoodMethod = "saw"
	WoodHands WoodMethod = "hands"
)

// WoodTools names the tool a method needs in the weapon slot.
var WoodTools = map[WoodMethod]string{
	WoodAxe: catalog.ItemAxe,
	WoodSaw: "Saw",
}

// WoodYield is the tool power of an equipped wood tool, or 1.
func WoodYield(w *game.World, p *game.Player) int {
	if tool := p.EquippedTool(w.Catalog); tool != nil && tool.Action == catalog.ActionHarvestWood && tool.Power > 0 {
		return tool.Power
	}
	return 1
}

// HarvestWood collects wood on a forest tile. The wood counter drops by one
// whatever the yield.
func HarvestWood(w *game.World, p *game.Player, method WoodMethod) error {
	if tool, ok := WoodTools[method]; ok {
		if eq := p.Equipment.Weapon; eq == nil || eq.Name != tool {
			return game.Userf("You need the %s equipped.", strings.ToLower(tool))
		}
	}
	return harvest(w, p, catalog.CounterWood, catalog.ItemWood, WoodYield(w, p))
}

func HarvestStone(w *game.World, p *game.Player) error {
	return harvest(w, p, catalog.CounterStone, catalog.ItemStone, 1)
}

func HarvestSand(w *game.World, p *game.Player) error {
	return harvest(w, p, catalog.CounterSand, catalog.ItemSand, 1)
}

func HarvestSaltWater(w *game.World, p *game.Player) error {
	return harvest(w, p, catalog.CounterSaltWater, catalog.ItemSaltWater, 1)
}

// Harvestable reports whether the tile type offers counter c at all.
func Harvestable(tt *catalog.TileType, c catalog.Counter) bool {
	if tt == nil {
		return false
	}
	_, ok := tt.Counters[c]
	return ok
}

func harvest(w *game.World, p *game.Player, c catalog.Counter, item string, qty int) error {
	tile := w.Tile(p.X, p.Y)
	if !Harvestable(w.TileType(p.X, p.Y), c) {
		return game.Userf("There is no %s to gather here.", strings.ToLower(item))
	}
	if !tile.Consume(c) {
		return game.Userf("This tile has no %s left.", strings.ToLower(item))
	}

	p.AddItem(w.Catalog, item, qty)
	p.Notify(game.NotifySuccess, fmt.Sprintf("You gathered %d %s.", qty, item))
	return nil
}

// Hunt rolls each hunt drop independently.
func Hunt(w *game.World, p *game.Player, rng game.Rand) error {
	tile := w.Tile(p.X, p.Y)
	if !Harvestable(w.TileType(p.X, p.Y), catalog.CounterHunt) {
		return game.Userf("There is nothing to hunt here.")
	}
	if !tile.Consume(catalog.CounterHunt) {
		return game.Userf("The game here has been hunted out.")
	}

	var found []string
	for _, d := range w.Catalog.HuntLoot {
		if game.Roll(rng, d.Chance) && p.AddItem(w.Catalog, d.Item, 1) {
			found = append(found, d.Item)
		}
	}

	if len(found) == 0 {
		p.Notify(game.NotifyInfo, "The hunt was fruitless.")
		return nil
	}
	slices.Sort(found)
	p.Notify(game.NotifySuccess, "You caught: "+strings.Join(found, ", ")+".")
	return nil
}
