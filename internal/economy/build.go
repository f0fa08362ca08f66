package economy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/game"
)

// Missing lists the costs the inventory cannot cover, scaled by times, in
// name order.
func Missing(inv game.Inventory, costs map[string]int, times int) []string {
	var out []string
	for _, name := range catalog.SortedKeys(costs) {
		need := costs[name] * times
		if have := inv.Count(name); have < need {
			out = append(out, fmt.Sprintf("%d %s", need-have, name))
		}
	}
	return out
}

// pay deducts scaled costs. Callers must have checked Missing first.
func pay(inv game.Inventory, costs map[string]int, times int) error {
	for _, name := range catalog.SortedKeys(costs) {
		if err := inv.RemoveNamed(name, costs[name]*times); err != nil {
			return fmt.Errorf("paying %s: %w", name, err)
		}
	}
	return nil
}

// CanBuildHere reports whether the player's tile accepts another building.
func CanBuildHere(w *game.World, p *game.Player) bool {
	tt := w.TileType(p.X, p.Y)
	return tt != nil && tt.Buildable && len(w.Tile(p.X, p.Y).Buildings) < w.Rules.MaxBuildings
}

// Build places a structure on the player's tile. Either every cost is paid
// and the building appears, or nothing changes.
func Build(w *game.World, p *game.Player, key string) error {
	def := w.Catalog.Tile(key)
	if def == nil || !def.IsBuilding {
		return game.Userf("Unknown structure %q.", key)
	}

	tt := w.TileType(p.X, p.Y)
	if tt == nil || !tt.Buildable {
		return game.Userf("You cannot build here.")
	}
	tile := w.Tile(p.X, p.Y)
	if len(tile.Buildings) >= w.Rules.MaxBuildings {
		return game.Userf("There is no room for another building here.")
	}

	if len(def.ToolRequired) > 0 {
		eq := p.Equipment.Weapon
		if eq == nil || !slices.Contains(def.ToolRequired, eq.Name) {
			return game.Userf("You need one of these equipped: %s.", strings.Join(def.ToolRequired, ", "))
		}
	}

	if missing := Missing(p.Inventory, def.Cost, 1); len(missing) > 0 {
		return game.Userf("Missing resources: %s.", strings.Join(missing, ", "))
	}
	if err := pay(p.Inventory, def.Cost, 1); err != nil {
		return err
	}

	tile.Buildings = append(tile.Buildings, game.NewBuilding(def))
	p.Notify(game.NotifySuccess, fmt.Sprintf("You built a %s.", strings.ToLower(def.Name)))
	return nil
}

// Craft makes quantity batches of a known recipe. The whole batch must be
// affordable before anything is spent.
func Craft(w *game.World, p *game.Player, name string, quantity int) error {
	r := w.Catalog.Recipe(name)
	if r == nil {
		return game.Userf("Unknown recipe %q.", name)
	}
	if !w.KnowsRecipe(p, name) {
		return game.Userf("You do not know how to make %s.", name)
	}
	if quantity <= 0 {
		return game.Userf("Quantity must be at least 1.")
	}
	if quantity > w.Rules.MaxCraftBatch {
		return game.Userf("You can craft at most %d at a time.", w.Rules.MaxCraftBatch)
	}

	if missing := Missing(p.Inventory, r.Costs, quantity); len(missing) > 0 {
		return game.Userf("Missing resources: %s.", strings.Join(missing, ", "))
	}
	if err := pay(p.Inventory, r.Costs, quantity); err != nil {
		return err
	}

	made := r.Yield * quantity
	p.AddItem(w.Catalog, r.Output, made)
	p.Notify(game.NotifySuccess, fmt.Sprintf("You crafted %d %s.", made, r.Output))
	return nil
}
