package catalog

const (
	TileLagoon        = "LAGOON"
	TileBeach         = "BEACH"
	TileForest        = "FOREST"
	TileWasteland     = "WASTELAND"
	TilePlains        = "PLAINS"
	TileMineTerrain   = "MINE_TERRAIN"
	TileTreasureChest = "TREASURE_CHEST"

	BuildingCampfire          = "CAMPFIRE"
	BuildingShelterIndividual = "SHELTER_INDIVIDUAL"
	BuildingShelterCollective = "SHELTER_COLLECTIVE"
	BuildingMine              = "MINE"
	BuildingWorkshop          = "WORKSHOP"
	BuildingWorkbench         = "WORKBENCH"
	BuildingSmallWell         = "SMALL_WELL"
	BuildingForge             = "FORGE"
)

const (
	ItemWood        = "Wood"
	ItemStone       = "Stone"
	ItemSand        = "Sand"
	ItemSaltWater   = "Salt water"
	ItemRawMeat     = "Raw meat"
	ItemAnimalHide  = "Animal hide"
	ItemTreasureKey = "Treasure key"
	ItemAxe         = "Axe"
	ItemPureWater   = "Pure water"
	ItemCookedMeat  = "Cooked meat"
)

const (
	StatusSick     = "sick"
	StatusPoisoned = "poisoned"
	StatusInjured  = "injured"
	StatusDrunk    = "drunk"
)

// ActionHarvestWood is the item action that scales wood yield by tool power.
const ActionHarvestWood = "harvest_wood"

func resource(name string) *Item {
	return &Item{Name: name, Kind: KindResource}
}

func food(name string, e Effects) *Item {
	return &Item{Name: name, Kind: KindConsumable, Effects: &e}
}

func scroll(recipe string) *Item {
	return &Item{Name: ScrollName(recipe), Kind: KindConsumable, TeachesRecipe: recipe}
}

// ScrollName is the item name of the scroll teaching recipe.
func ScrollName(recipe string) string {
	return "Scroll: " + recipe
}

func recipe(name string, yield int, costs map[string]int) *Recipe {
	return &Recipe{Name: name, Output: name, Yield: yield, Costs: costs}
}

func defaultItems() []*Item {
	items := []*Item{
		resource(ItemWood), resource(ItemStone), resource("Leaves"), resource("Vine"),
		resource("Bark"), resource("Resin"), resource(ItemSand), resource(ItemAnimalHide),
		resource("Padlock"), resource("Broken padlock"), resource("Bone"),
		resource("Electronic components"), resource("Coal"), resource("Plank"),
		resource("String"), resource("Rope"), resource("Cut block"), resource("Woven leaf"),
		resource("Glass"), resource("Iron ore"), resource("Gold ore"), resource("Silver ore"),
		resource("Copper ore"), resource("Sulfur"), resource("Iron"), resource("Gold"),
		resource("Silver"), resource("Copper"), resource("Hook"), resource("Engineer plan"),
		resource("Medical recipe"), resource("Tree seed"), resource("Leather"),
		resource("Discharged battery"),

		food(ItemPureWater, Effects{Thirst: 10}),
		food(ItemSaltWater, Effects{Thirst: 3, Health: -1}),
		food("Stagnant water", Effects{Thirst: 2, Status: []StatusChance{{Name: StatusSick, Chance: 0.5}}}),
		food("Salt", Effects{Hunger: 2, Thirst: -2}),
		food("Insects", Effects{Hunger: 1}),
		food(ItemRawMeat, Effects{Hunger: 1, Status: []StatusChance{{Name: StatusSick, Chance: 0.3}}}),
		food(ItemCookedMeat, Effects{Hunger: 3}),
		food("Raw fish", Effects{Hunger: 3, Status: []StatusChance{{Name: StatusSick, Chance: 0.8}}}),
		food("Cooked fish", Effects{Hunger: 2}),
		food("Raw egg", Effects{Hunger: 2, Status: []StatusChance{{Name: StatusSick, Chance: 0.6}}}),
		food("Cooked egg", Effects{Hunger: 3}),
		food("Banana", Effects{Hunger: 2, Thirst: 1}),
		food("Coconut", Effects{Thirst: 3}),
		food("Sugar", Effects{Hunger: 4, Thirst: -1}),
		food("Energy bar", Effects{Hunger: 6, Sleep: 4}),
		food("Medicine", Effects{Health: 4, Cures: []string{StatusSick, StatusDrunk}}),
		food("Antiseptic", Effects{Health: 3, Cures: []string{StatusInjured, StatusSick}}),
		food("Bandage", Effects{Health: 2}),
		food("First-aid kit", Effects{Health: 3, Cures: []string{StatusSick}}),
		food("Venom", Effects{Status: []StatusChance{{Name: StatusPoisoned, Chance: 1}}}),
		food("Antidote", Effects{Health: 10, Cures: []string{StatusPoisoned}}),
		food("Alcohol", Effects{Thirst: 10, Health: -2, Status: []StatusChance{{Name: StatusDrunk, Chance: 1}}}),

		{Name: ItemAxe, Kind: KindTool, Slot: SlotWeapon, Power: 5, Action: ActionHarvestWood, Damage: 3, Durability: 50},
		{Name: "Saw", Kind: KindTool, Slot: SlotWeapon, Power: 10, Action: ActionHarvestWood, Damage: 2, Durability: 60},
		{Name: "Wooden shovel", Kind: KindTool, Slot: SlotWeapon, Power: 1, Action: "dig", Damage: 1, Durability: 20},
		{Name: "Iron shovel", Kind: KindTool, Slot: SlotWeapon, Power: 3, Action: "dig", Damage: 2, Durability: 40},
		{Name: "Pickaxe", Kind: KindTool, Slot: SlotWeapon, Power: 2, Action: "mine_ore", Damage: 2, Durability: 40},
		{Name: "Fishing rod", Kind: KindTool, Slot: SlotWeapon, Power: 1, Action: "fish", Damage: 1, Durability: 30},
		{Name: "Fishing net", Kind: KindTool, Slot: SlotWeapon, Action: "net_fish", Damage: 1, Durability: 15},
		{Name: "Bucket", Kind: KindTool, Slot: SlotWeapon, Action: "harvest_sand", Damage: 1, Durability: 30},
		{Name: "Lighter", Kind: KindTool, Slot: SlotWeapon, Damage: 1, Durability: 5},
		{Name: "Matches", Kind: KindTool, Slot: SlotWeapon, Damage: 1, Durability: 1},
		{Name: "Magnifier", Kind: KindTool, Slot: SlotWeapon, Damage: 1, Durability: 3},
		{Name: "Torch", Kind: KindUsable, Slot: SlotWeapon, Damage: 1, Durability: 10},

		{Name: "Club", Kind: KindWeapon, Slot: SlotWeapon, Damage: 2, Durability: 20},
		{Name: "Wooden spear", Kind: KindWeapon, Slot: SlotWeapon, Damage: 4, Durability: 25},
		{Name: "Wooden sword", Kind: KindWeapon, Slot: SlotWeapon, Damage: 3, Durability: 20},
		{Name: "Iron sword", Kind: KindWeapon, Slot: SlotWeapon, Damage: 6, Durability: 60},
		{Name: "Wooden shield", Kind: KindShield, Slot: SlotShield, Defense: 2, Durability: 30},
		{Name: "Iron shield", Kind: KindShield, Slot: SlotShield, Defense: 4, Durability: 60},

		{Name: "Simple leather clothing", Kind: KindArmor, Slot: SlotBody, Defense: 1, Durability: 20},
		{Name: "Leaf loincloth", Kind: KindArmor, Slot: SlotBody, Defense: 2, Durability: 15},
		{Name: "Leaf hat", Kind: KindArmor, Slot: SlotHead, Defense: 1, Durability: 10},
		{Name: "Sandals", Kind: KindArmor, Slot: SlotFeet, Durability: 10},
		{Name: "Small bag", Kind: KindBag, Slot: SlotBag, Durability: 40},
		{Name: "Large bag", Kind: KindBag, Slot: SlotBag, Durability: 80},

		{Name: ItemTreasureKey, Kind: KindKey},
	}

	for _, r := range defaultRecipes() {
		items = append(items, scroll(r.Name))
	}

	return items
}

func defaultRecipes() []*Recipe {
	return []*Recipe{
		recipe("Wooden shovel", 1, map[string]int{ItemWood: 10}),
		recipe("Club", 1, map[string]int{ItemWood: 15}),
		recipe(ItemAxe, 1, map[string]int{ItemWood: 10, "Iron": 5}),
		recipe("Saw", 1, map[string]int{ItemWood: 10, "Iron": 10}),
		recipe("Wooden sword", 1, map[string]int{ItemWood: 20}),
		recipe("Fishing rod", 1, map[string]int{ItemWood: 25, "Hook": 1}),
		recipe("Wooden spear", 1, map[string]int{ItemWood: 25}),
		recipe("Bucket", 1, map[string]int{"Plank": 5}),
		recipe("Iron shovel", 1, map[string]int{ItemWood: 10, "Iron": 5}),
		recipe("Iron sword", 1, map[string]int{ItemWood: 15, "Iron": 5}),
		recipe("Torch", 1, map[string]int{ItemWood: 15, "Matches": 1}),
		recipe("String", 1, map[string]int{"Vine": 10}),
		recipe("Rope", 1, map[string]int{"String": 10}),
		recipe("Cut block", 1, map[string]int{ItemStone: 10}),
		recipe("Woven leaf", 1, map[string]int{"Leaves": 10}),
		recipe("Leaf hat", 1, map[string]int{"Woven leaf": 10}),
		recipe("Leaf loincloth", 1, map[string]int{"Woven leaf": 20}),
		recipe("Sandals", 1, map[string]int{ItemAnimalHide: 10}),
		recipe("Glass", 1, map[string]int{ItemSand: 10}),
		recipe("Magnifier", 1, map[string]int{"Glass": 10}),
		recipe("Leather", 1, map[string]int{ItemAnimalHide: 5}),
		recipe("Simple leather clothing", 1, map[string]int{"Leather": 5, "String": 5}),
		recipe("Small bag", 1, map[string]int{"Leather": 10, "Rope": 3}),
		recipe("Large bag", 1, map[string]int{"Leather": 40, "Rope": 10}),
		recipe("Padlock", 1, map[string]int{"Engineer plan": 1, "Iron": 10}),
		{Name: "Wood from bark", Output: ItemWood, Yield: 1, Costs: map[string]int{"Bark": 10}},
	}
}

func defaultTiles() []*TileType {
	return []*TileType{
		{Key: TileLagoon, Name: "Lagoon", Icon: "🌊", Color: "#48cae4"},
		{
			Key: TileBeach, Name: "Beach", Icon: "🏖️", Color: "#f4d35e", Accessible: true,
			Counters:   map[Counter]int{CounterSearch: 10, CounterSand: 10, CounterFish: 5, CounterSaltWater: 10},
			SearchZone: TileBeach,
		},
		{
			Key: TileForest, Name: "Forest", Icon: "🌲", Color: "#2d6a4f", Accessible: true,
			Counters:   map[Counter]int{CounterWood: 10, CounterHunt: 10, CounterSearch: 15},
			SearchZone: TileForest, Resource: ItemWood,
		},
		{
			Key: TileWasteland, Name: "Wasteland", Icon: "🍂", Color: "#9c6644", Accessible: true, Buildable: true,
			Counters:   map[Counter]int{CounterSearch: 10},
			SearchZone: TileWasteland,
		},
		{
			Key: TilePlains, Name: "Plains", Icon: "🌳", Color: "#80b918", Accessible: true, Buildable: true,
			Counters:   map[Counter]int{CounterHunt: 5, CounterSearch: 10},
			SearchZone: TilePlains,
		},
		{
			Key: TileMineTerrain, Name: "Mine (terrain)", Icon: "⛰️", Color: "#8d99ae", Accessible: true,
			Counters:   map[Counter]int{CounterStone: 10, CounterSearch: 10},
			SearchZone: "MINE", Resource: ItemStone,
		},
		{Key: TileTreasureChest, Name: "Hidden treasure", Icon: "💎", Color: "#DAA520", Accessible: true, RequiresKey: ItemTreasureKey},

		{
			Key: BuildingCampfire, Name: "Campfire", Icon: "🔥", Accessible: true, IsBuilding: true, Durability: 20,
			Cost:         map[string]int{ItemWood: 5, ItemStone: 2},
			ToolRequired: []string{"Lighter", "Matches", "Magnifier"},
			Actions:      []BuildingAction{{ID: "cook", Name: "Cook"}, {ID: "sleep_by_campfire", Name: "Sleep by the fire"}},
		},
		{
			Key: BuildingShelterIndividual, Name: "Individual shelter", Icon: "⛺", Accessible: true, IsBuilding: true, Durability: 20,
			Cost:        map[string]int{ItemWood: 20},
			SleepEffect: &SleepEffect{Sleep: 8, Health: 3}, MaxInventory: 50, Lockable: true,
			Actions: []BuildingAction{{ID: "open_building_inventory", Name: "Open storage"}, {ID: "set_lock", Name: "Set lock"}},
		},
		{
			Key: BuildingShelterCollective, Name: "Collective shelter", Icon: "🏠", Accessible: true, IsBuilding: true, Durability: 100,
			Cost:        map[string]int{ItemWood: 60, ItemStone: 15},
			SleepEffect: &SleepEffect{Sleep: 8, Health: 5}, MaxInventory: 500, Lockable: true,
			Actions: []BuildingAction{{ID: "open_building_inventory", Name: "Open storage"}, {ID: "set_lock", Name: "Set lock"}},
		},
		{
			Key: BuildingMine, Name: "Mine", Icon: "⛏️", Accessible: true, IsBuilding: true, Durability: 20,
			Cost:         map[string]int{ItemWood: 20},
			ToolRequired: []string{"Iron shovel", "Wooden shovel", "Pickaxe"},
			Actions:      []BuildingAction{{ID: "use_building_action", Name: "Search for ore"}},
		},
		{
			Key: BuildingWorkshop, Name: "Workshop", Icon: "🛠️", Accessible: true, IsBuilding: true, Durability: 200,
			Cost:    map[string]int{ItemWood: 30, ItemStone: 15},
			Actions: []BuildingAction{{ID: "use_atelier", Name: "Use workshop"}},
		},
		{
			Key: BuildingWorkbench, Name: "Workbench", Icon: "🪚", Accessible: true, IsBuilding: true, Durability: 50,
			Cost:    map[string]int{ItemWood: 25},
			Actions: []BuildingAction{{ID: "use_etabli", Name: "Use workbench"}},
		},
		{
			Key: BuildingSmallWell, Name: "Small well", Icon: "💧", Accessible: true, IsBuilding: true, Durability: 5,
			Cost:         map[string]int{ItemStone: 20, ItemWood: 20},
			ToolRequired: []string{"Wooden shovel", "Iron shovel"},
			Actions:      []BuildingAction{{ID: "use_building_action", Name: "Draw water"}},
		},
		{
			Key: BuildingForge, Name: "Forge", Icon: "🏭", Accessible: true, IsBuilding: true, Durability: 200,
			Cost:         map[string]int{ItemStone: 50, "Coal": 20},
			ToolRequired: []string{"Iron shovel"},
			Actions:      []BuildingAction{{ID: "use_forge", Name: "Use forge"}},
		},
	}
}

func defaultEnemies() []*EnemyType {
	return []*EnemyType{
		{Key: "WOLF", Name: "Aggressive wolf", Icon: "🐺", Health: 10, Damage: 2, AggroRadius: 4,
			Loot: map[string]int{ItemAnimalHide: 1, "Bone": 2, ItemRawMeat: 1}},
		{Key: "SNAKE", Name: "Venomous snake", Icon: "🐍", Health: 6, Damage: 3, AggroRadius: 3,
			Loot: map[string]int{ItemRawMeat: 1, "Venom": 1}},
		{Key: "RAT", Name: "Sneaky rat", Icon: "🐀", Health: 1, Damage: 1, AggroRadius: 1,
			Loot: map[string]int{"Broken padlock": 1}},
	}
}

func weights(common, uncommon, rare, veryRare, offTable float64) map[Tier]float64 {
	return map[Tier]float64{
		TierCommon:   common,
		TierUncommon: uncommon,
		TierRare:     rare,
		TierVeryRare: veryRare,
		TierOffTable: offTable,
	}
}

func defaultSearchZones() []*SearchZone {
	return []*SearchZone{
		{
			Key: TileForest, NoLootChance: 0.15, TierWeights: weights(0.60, 0.25, 0.10, 0.08, 0.01),
			Loot: map[Tier][]string{
				TierCommon:   {"Leaves", "Vine", "Bark", "Insects", ScrollName("Wooden shovel"), ScrollName("Club"), ScrollName(ItemAxe), ScrollName("Leather"), ScrollName("Wood from bark"), "Copper ore"},
				TierUncommon: {"Bone", "Resin", ItemRawMeat, "Banana", "Raw egg", ScrollName("Saw"), ScrollName("Wooden sword"), ScrollName("Fishing rod"), "Tree seed", ScrollName("Small bag")},
				TierRare:     {"Bandage", "Matches", ScrollName("Wooden spear"), ScrollName("Bucket")},
				TierVeryRare: {"Medicine", "Engineer plan", "Medical recipe", ScrollName("Simple leather clothing"), "Lighter", ScrollName("Padlock")},
				TierOffTable: {ScrollName("Sandals"), ScrollName("Large bag"), "Magnifier"},
			},
		},
		{
			Key: TileBeach, NoLootChance: 0.25, TierWeights: weights(0.50, 0.30, 0.15, 0.08, 0.01),
			Loot: map[Tier][]string{
				TierCommon:   {ItemSand, ItemStone, "Insects", "Salt", "Copper ore"},
				TierUncommon: {"Raw fish", "Coconut", "Vine", "Raw egg"},
				TierRare:     {"Electronic components", ScrollName("String")},
				TierVeryRare: {"Discharged battery", "Engineer plan", "Medical recipe"},
				TierOffTable: {ScrollName("Glass")},
			},
		},
		{
			Key: TilePlains, NoLootChance: 0.30, TierWeights: weights(0.60, 0.25, 0.10, 0.08, 0.01),
			Loot: map[Tier][]string{
				TierCommon:   {"Leaves", ItemStone, "Insects", "Raw egg", "Copper ore"},
				TierUncommon: {"Bone", "Banana", ItemRawMeat, ScrollName("Iron shovel"), ScrollName("Iron sword")},
				TierRare:     {"Bandage", ScrollName("Torch")},
				TierVeryRare: {"Engineer plan", "Medical recipe"},
				TierOffTable: {ScrollName("Magnifier")},
			},
		},
		{
			Key: "MINE", NoLootChance: 0.10, TierWeights: weights(0.40, 0.30, 0.20, 0.08, 0.02),
			Loot: map[Tier][]string{
				TierCommon:   {ItemStone, "Bone", "Coal", "Copper ore"},
				TierUncommon: {"Resin", ScrollName("Rope"), ScrollName("Cut block"), "Iron ore"},
				TierRare:     {"Electronic components", "Discharged battery", "Antiseptic", ScrollName("Woven leaf"), ScrollName("Leaf hat")},
				TierVeryRare: {ItemTreasureKey, "Engineer plan", "Medical recipe", ScrollName("Leaf loincloth")},
				TierOffTable: {"Gold ore"},
			},
		},
		{
			Key: TileWasteland, NoLootChance: 0.30, TierWeights: weights(0.70, 0.20, 0.05, 0.01, 0.04),
			Loot: map[Tier][]string{
				TierCommon:   {ItemStone, "Insects", "Copper ore"},
				TierUncommon: {"Bone", ItemSand},
				TierRare:     {ScrollName("Magnifier")},
				TierOffTable: {ScrollName("Padlock")},
			},
		},
	}
}

// Default returns the builtin catalog.
func Default() *Catalog {
	c := &Catalog{
		Items:       map[string]*Item{},
		Tiles:       map[string]*TileType{},
		Enemies:     map[string]*EnemyType{},
		SearchZones: map[string]*SearchZone{},
		Recipes:     map[string]*Recipe{},
		StartingKit: []Grant{
			{Item: ItemAxe, Quantity: 1},
			{Item: ItemPureWater, Quantity: 2},
			{Item: ItemCookedMeat, Quantity: 2},
		},
		TreasureKit: []Grant{
			{Item: "Iron sword", Quantity: 1},
			{Item: "Iron shield", Quantity: 1},
			{Item: "First-aid kit", Quantity: 3},
			{Item: "Energy bar", Quantity: 5},
		},
		HuntLoot: []Drop{
			{Item: ItemRawMeat, Chance: 0.7},
			{Item: ItemAnimalHide, Chance: 0.4},
		},
	}

	for _, i := range defaultItems() {
		c.Items[i.Name] = i
	}
	for _, t := range defaultTiles() {
		c.Tiles[t.Key] = t
	}
	for _, e := range defaultEnemies() {
		c.Enemies[e.Key] = e
	}
	for _, z := range defaultSearchZones() {
		c.SearchZones[z.Key] = z
	}
	for _, r := range defaultRecipes() {
		c.Recipes[r.Name] = r
	}

	return c
}
