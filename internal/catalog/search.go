package catalog

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type Tier string

const (
	TierCommon   Tier = "common"
	TierUncommon Tier = "uncommon"
	TierRare     Tier = "rare"
	TierVeryRare Tier = "very_rare"
	TierOffTable Tier = "off_table"
)

// Tiers lists loot tiers from most to least frequent.
var Tiers = []Tier{TierCommon, TierUncommon, TierRare, TierVeryRare, TierOffTable}

// SearchZone is the loot table used when searching a tile of a given type.
type SearchZone struct {
	Key          string            `json:"key"`
	NoLootChance float64           `json:"no_loot_chance"`
	TierWeights  map[Tier]float64  `json:"tier_weights"`
	Loot         map[Tier][]string `json:"loot"`
}

func (z *SearchZone) Validate() error {
	if z == nil {
		return fmt.Errorf("search zone spec is required")
	}

	el := errors.NewErrorList()

	if z.NoLootChance < 0 || z.NoLootChance > 1 {
		el.Add(fmt.Errorf("no_loot_chance must be within [0,1]"))
	}
	for tier, w := range z.TierWeights {
		if w < 0 {
			el.Add(fmt.Errorf("tier %q weight must not be negative", tier))
		}
	}
	if len(z.Loot[TierCommon]) == 0 {
		el.Add(fmt.Errorf("common tier must not be empty"))
	}

	return el.Err()
}
