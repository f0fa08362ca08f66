package economy

import (
	"fmt"

	"github.com/pixil98/go-survival/internal/game"
)

// Consume uses up one unit of a consumable or a recipe scroll.
func Consume(w *game.World, p *game.Player, rng game.Rand, key string) error {
	name := p.Inventory.NameOf(key)
	if name == "" {
		return game.Userf("You do not have that item.")
	}
	def := w.Catalog.Item(name)
	if def == nil || !def.Consumable() {
		return game.Userf("%s cannot be consumed.", name)
	}

	if err := p.Inventory.Remove(key, 1); err != nil {
		return fmt.Errorf("consuming %s: %w", name, err)
	}

	if def.TeachesRecipe != "" {
		p.KnownRecipes.Add(def.TeachesRecipe)
		w.KnownRecipes.Add(def.TeachesRecipe)
		p.Notify(game.NotifySuccess, fmt.Sprintf("You learned how to make %s.", def.TeachesRecipe))
	}

	if e := def.Effects; e != nil {
		p.Health += e.Health
		p.Thirst += e.Thirst
		p.Hunger += e.Hunger
		p.Sleep += e.Sleep
		p.Clamp()

		for _, cure := range e.Cures {
			p.RemoveStatus(cure)
		}
		for _, s := range e.Status {
			if game.Roll(rng, s.Chance) {
				p.AddStatus(s.Name)
				p.Notify(game.NotifyWarning, fmt.Sprintf("You are now %s.", s.Name))
			}
		}
	}

	return nil
}
