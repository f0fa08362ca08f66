package actions

import (
	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/combat"
	"github.com/pixil98/go-survival/internal/economy"
	"github.com/pixil98/go-survival/internal/game"
)

// Available lists the actions p can take from where they stand. A busy
// player gets none.
func Available(w *game.World, p *game.Player) []game.AvailableAction {
	out := []game.AvailableAction{}
	if p.Busy {
		return out
	}
	add := func(id string) {
		out = append(out, game.AvailableAction{ID: id, Name: actionNames[id]})
	}

	tt := w.TileType(p.X, p.Y)
	tile := w.Tile(p.X, p.Y)
	if tt == nil || tile == nil {
		return out
	}

	if tt.SearchZone != "" && tile.Remaining(catalog.CounterSearch) > 0 {
		add(ActionSearch)
	}
	if tile.Remaining(catalog.CounterHunt) > 0 {
		add(ActionHunt)
	}
	if tile.Remaining(catalog.CounterWood) > 0 {
		add(woodAction(w, p))
	}
	if tile.Remaining(catalog.CounterStone) > 0 {
		add(ActionHarvestStone)
	}
	if tile.Remaining(catalog.CounterSand) > 0 {
		add(ActionHarvestSand)
	}
	if tile.Remaining(catalog.CounterSaltWater) > 0 {
		add(ActionHarvestSaltWater)
	}
	if economy.CanBuildHere(w, p) {
		add(ActionOpenBuildModal)
	}
	if economy.CanOpenTreasure(w, p) {
		add(ActionOpenTreasure)
	}
	if combat.CanInitiate(w, p) {
		add(ActionInitiateCombat)
	}
	if economy.Shelter(w, p) != nil {
		add(ActionSleep)
	}

	for _, b := range tile.Buildings {
		def := w.Catalog.Tile(b.Key)
		if def == nil {
			continue
		}
		for _, a := range def.Actions {
			out = append(out, game.AvailableAction{ID: a.ID, Name: a.Name})
		}
	}
	return out
}

// woodAction picks the wood variant matching the equipped weapon.
func woodAction(w *game.World, p *game.Player) string {
	if p.Equipment.Weapon != nil {
		for id, m := range woodActions {
			if economy.WoodTools[m] == p.Equipment.Weapon.Name {
				return id
			}
		}
	}
	return ActionHarvestWoodHands
}
