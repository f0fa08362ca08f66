package economy

import (
	"fmt"

	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/game"
	"github.com/pixil98/go-survival/internal/rules"
)

// Search rolls the tile's search zone. A search that finds nothing still
// uses up one search.
func Search(w *game.World, p *game.Player, rng game.Rand) error {
	tt := w.TileType(p.X, p.Y)
	if tt == nil || tt.SearchZone == "" {
		return game.Userf("There is nothing to search here.")
	}
	zone := w.Catalog.SearchZones[tt.SearchZone]
	if zone == nil {
		return fmt.Errorf("tile %s names missing search zone %s", tt.Key, tt.SearchZone)
	}

	if !w.Tile(p.X, p.Y).Consume(catalog.CounterSearch) {
		return game.Userf("This area has been searched thoroughly.")
	}

	item := DrawLoot(zone, rng, w.Rules.SearchMode)
	if item == "" {
		p.Notify(game.NotifyInfo, "You found nothing.")
		return nil
	}

	p.AddItem(w.Catalog, item, 1)
	p.Notify(game.NotifySuccess, fmt.Sprintf("You found %s.", item))
	return nil
}

// DrawLoot resolves one search roll. It returns "" when the no-loot roll
// hits.
func DrawLoot(z *catalog.SearchZone, rng game.Rand, mode rules.SearchMode) string {
	if game.Roll(rng, z.NoLootChance) {
		return ""
	}

	tier := catalog.TierCommon
	if mode != rules.SearchCommon {
		tier = drawTier(z, rng)
	}

	items := z.Loot[tier]
	if len(items) == 0 {
		items = z.Loot[catalog.TierCommon]
	}
	if len(items) == 0 {
		return ""
	}
	return items[rng.IntN(len(items))]
}

func drawTier(z *catalog.SearchZone, rng game.Rand) catalog.Tier {
	total := 0.0
	for _, t := range catalog.Tiers {
		total += z.TierWeights[t]
	}
	if total <= 0 {
		return catalog.TierCommon
	}

	roll := rng.Float64() * total
	for _, t := range catalog.Tiers {
		roll -= z.TierWeights[t]
		if roll < 0 {
			return t
		}
	}
	return catalog.TierCommon
}
