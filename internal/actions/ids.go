package actions

import (
	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/economy"
)

const (
	ActionMove             = "move"
	ActionEquip            = "equip_item_context"
	ActionUnequip          = "unequip_item_context"
	ActionDrop             = "drop_item_context"
	ActionPickup           = "pickup_item_context"
	ActionMoveItem         = "move_item"
	ActionConsume          = "consume_item_context"
	ActionHarvestWoodAxe   = "harvest_wood_hache"
	ActionHarvestWoodSaw   = "harvest_wood_scie"
	ActionHarvestWoodHands = "harvest_wood_mains"
	ActionHarvestStone     = "harvest"
	ActionHarvestSand      = "harvest_sand"
	ActionHarvestSaltWater = "harvest_salt_water"
	ActionBuild            = "build_structure"
	ActionCraft            = "craft_item_workshop"
	ActionSearch           = "search_zone"
	ActionOpenTreasure     = "open_treasure"
	ActionSleep            = "sleep"
	ActionHunt             = "hunt"
	ActionInitiateCombat   = "initiate_combat"
	ActionCombat           = "combat_action"
	ActionChat             = "send_chat_message"

	// ActionOpenBuildModal is offered to clients but handled entirely on
	// their side; it leads to build_structure.
	ActionOpenBuildModal = "open_build_modal"
)

var woodActions = map[string]economy.WoodMethod{
	ActionHarvestWoodAxe:   economy.WoodAxe,
	ActionHarvestWoodSaw:   economy.WoodSaw,
	ActionHarvestWoodHands: economy.WoodHands,
}

// Unimplemented lists action ids that are accepted but only answer with a
// notification.
var Unimplemented = []string{
	"fish",
	"net_fish",
	"regenerate_forest",
	"plant_tree",
	"sleep_by_campfire",
	"cook",
	"take_hidden_item",
	"use_building_action",
	"dismantle_building",
	"open_all_parchemins",
	"fire_distress_gun",
	"fire_distress_flare",
	"place_solar_panel_fixed",
	"charge_battery_portable_solar",
	"place_trap",
	"attract_npc_attention",
	"find_mine_compass",
	"repair_building",
	"set_lock",
	"remove_lock",
	"open_large_map",
	"talk_to_npc",
	"open_building_inventory",
	"search_ore_tile",
	"play_electric_guitar",
	"use_atelier",
	"use_etabli",
	"use_forge",
	"observe_weather",
	"generate_plan",
	"tutorial_hide_and_move",
	"tutorial_next",
	"tutorial_skip",
}

// Supported returns every implemented action id in sorted order.
func Supported() []string {
	return catalog.SortedKeys(decoders)
}

// IsUnimplemented reports whether id is a known stub.
func IsUnimplemented(id string) bool {
	_, ok := unimplemented[id]
	return ok
}

var unimplemented = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Unimplemented))
	for _, id := range Unimplemented {
		m[id] = struct{}{}
	}
	return m
}()

var actionNames = map[string]string{
	ActionSearch:           "Search the area",
	ActionHunt:             "Hunt",
	ActionHarvestWoodAxe:   "Chop wood",
	ActionHarvestWoodSaw:   "Saw wood",
	ActionHarvestWoodHands: "Gather wood",
	ActionHarvestStone:     "Mine stone",
	ActionHarvestSand:      "Collect sand",
	ActionHarvestSaltWater: "Collect salt water",
	ActionOpenBuildModal:   "Build",
	ActionOpenTreasure:     "Open the treasure",
	ActionInitiateCombat:   "Fight",
	ActionSleep:            "Sleep",
}
