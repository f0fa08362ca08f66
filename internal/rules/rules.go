package rules

import (
	"fmt"
	"os"
	"time"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

// SearchMode selects how search loot tiers are resolved.
type SearchMode string

const (
	// SearchWeighted draws a tier by weight after the no-loot roll.
	SearchWeighted SearchMode = "weighted"
	// SearchCommon only ever draws from the common tier.
	SearchCommon SearchMode = "common"
)

type Map struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// ForestChance is the base chance an interior land cell becomes forest.
	ForestChance float64 `yaml:"forest_chance"`
	// RingWaterChance is the chance a cell one step inside the border is water.
	RingWaterChance float64 `yaml:"ring_water_chance"`
	MineDeposits    int     `yaml:"mine_deposits"`
	PlacementTries  int     `yaml:"placement_tries"`
}

// Rates are per-second amounts.
type Decay struct {
	Hunger        float64 `yaml:"hunger"`
	Thirst        float64 `yaml:"thirst"`
	Sleep         float64 `yaml:"sleep"`
	StarvePenalty float64 `yaml:"starve_penalty"`
	ThirstPenalty float64 `yaml:"thirst_penalty"`
	// StatusPenalty maps a status effect name to its per-second health loss.
	StatusPenalty map[string]float64 `yaml:"status_penalty"`
}

type Combat struct {
	UnarmedDamage  int           `yaml:"unarmed_damage"`
	FleeChance     float64       `yaml:"flee_chance"`
	EnemyTurnDelay time.Duration `yaml:"enemy_turn_delay"`
}

type Population struct {
	NPCs             int           `yaml:"npcs"`
	InitialEnemies   int           `yaml:"initial_enemies"`
	MaxEnemies       int           `yaml:"max_enemies"`
	SpawnCheckDays   int           `yaml:"spawn_check_days"`
	SpawnAttempts    int           `yaml:"spawn_attempts"`
	SafeRadius       int           `yaml:"safe_radius"`
	NPCActionPeriod  time.Duration `yaml:"npc_action_period"`
	QuestWoodAmount  int           `yaml:"quest_wood_amount"`
	QuestMeatAmount  int           `yaml:"quest_meat_amount"`
	QuestRewardMeat  int           `yaml:"quest_reward_meat"`
	QuestRewardStone int           `yaml:"quest_reward_stone"`
}

type Player struct {
	SpawnX       int     `yaml:"spawn_x"`
	SpawnY       int     `yaml:"spawn_y"`
	MaxHealth    float64 `yaml:"max_health"`
	MaxThirst    float64 `yaml:"max_thirst"`
	MaxHunger    float64 `yaml:"max_hunger"`
	MaxSleep     float64 `yaml:"max_sleep"`
	MaxInventory int     `yaml:"max_inventory"`
}

// Rules are the gameplay tunables. Fields absent from a rules file keep
// their builtin default.
type Rules struct {
	Map               Map        `yaml:"map"`
	Decay             Decay      `yaml:"decay"`
	Combat            Combat     `yaml:"combat"`
	Population        Population `yaml:"population"`
	Player            Player     `yaml:"player"`
	SearchMode        SearchMode `yaml:"search_mode"`
	MaxBuildings      int        `yaml:"max_buildings_per_tile"`
	MaxCraftBatch     int        `yaml:"max_craft_batch"`
	ChatMaxLength     int        `yaml:"chat_max_length"`
	SleepHours        int        `yaml:"sleep_hours"`
	NotificationWidth int        `yaml:"notification_width"`
}

func Default() *Rules {
	return &Rules{
		Map: Map{
			Width:           20,
			Height:          20,
			ForestChance:    0.6,
			RingWaterChance: 0.6,
			MineDeposits:    2,
			PlacementTries:  100,
		},
		Decay: Decay{
			Hunger:        0.1,
			Thirst:        0.15,
			Sleep:         0.05,
			StarvePenalty: 0.1,
			ThirstPenalty: 0.15,
			StatusPenalty: map[string]float64{"sick": 0.05, "poisoned": 0.1},
		},
		Combat: Combat{
			UnarmedDamage:  1,
			FleeChance:     0.5,
			EnemyTurnDelay: time.Second,
		},
		Population: Population{
			NPCs:             4,
			InitialEnemies:   0,
			MaxEnemies:       6,
			SpawnCheckDays:   3,
			SpawnAttempts:    50,
			SafeRadius:       5,
			NPCActionPeriod:  3 * time.Second,
			QuestWoodAmount:  10,
			QuestMeatAmount:  3,
			QuestRewardMeat:  2,
			QuestRewardStone: 15,
		},
		Player: Player{
			SpawnX:       10,
			SpawnY:       10,
			MaxHealth:    20,
			MaxThirst:    20,
			MaxHunger:    20,
			MaxSleep:     20,
			MaxInventory: 50,
		},
		SearchMode:        SearchWeighted,
		MaxBuildings:      1,
		MaxCraftBatch:     100,
		ChatMaxLength:     200,
		SleepHours:        8,
		NotificationWidth: 60,
	}
}

// Load reads a YAML rules file over the builtin defaults. An empty path
// returns the defaults.
func Load(path string) (*Rules, error) {
	r := Default()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("validating rules: %w", err)
	}

	return r, nil
}

func (r *Rules) Validate() error {
	el := errors.NewErrorList()

	if r.Map.Width < 5 || r.Map.Height < 5 {
		el.Add(fmt.Errorf("map must be at least 5x5"))
	}
	if r.Map.PlacementTries <= 0 {
		el.Add(fmt.Errorf("map.placement_tries must be positive"))
	}
	if !isChance(r.Map.ForestChance) || !isChance(r.Map.RingWaterChance) {
		el.Add(fmt.Errorf("map chances must be within [0,1]"))
	}
	if r.Decay.Hunger < 0 || r.Decay.Thirst < 0 || r.Decay.Sleep < 0 {
		el.Add(fmt.Errorf("decay rates must not be negative"))
	}
	if !isChance(r.Combat.FleeChance) {
		el.Add(fmt.Errorf("combat.flee_chance must be within [0,1]"))
	}
	if r.Combat.UnarmedDamage < 0 {
		el.Add(fmt.Errorf("combat.unarmed_damage must not be negative"))
	}
	if r.Combat.EnemyTurnDelay < 0 {
		el.Add(fmt.Errorf("combat.enemy_turn_delay must not be negative"))
	}
	if r.Population.MaxEnemies < r.Population.InitialEnemies {
		el.Add(fmt.Errorf("population.max_enemies must be at least initial_enemies"))
	}
	if r.Population.SpawnCheckDays <= 0 {
		el.Add(fmt.Errorf("population.spawn_check_days must be positive"))
	}
	if r.Population.SpawnAttempts <= 0 {
		el.Add(fmt.Errorf("population.spawn_attempts must be positive"))
	}
	if r.Player.SpawnX < 0 || r.Player.SpawnX >= r.Map.Width || r.Player.SpawnY < 0 || r.Player.SpawnY >= r.Map.Height {
		el.Add(fmt.Errorf("player spawn must be inside the map"))
	}
	if r.Player.MaxHealth <= 0 || r.Player.MaxThirst <= 0 || r.Player.MaxHunger <= 0 || r.Player.MaxSleep <= 0 {
		el.Add(fmt.Errorf("player vital maximums must be positive"))
	}
	switch r.SearchMode {
	case SearchWeighted, SearchCommon:
	default:
		el.Add(fmt.Errorf("unknown search_mode %q", r.SearchMode))
	}
	if r.MaxBuildings <= 0 {
		el.Add(fmt.Errorf("max_buildings_per_tile must be positive"))
	}
	if r.MaxCraftBatch <= 0 {
		el.Add(fmt.Errorf("max_craft_batch must be positive"))
	}
	if r.ChatMaxLength <= 0 {
		el.Add(fmt.Errorf("chat_max_length must be positive"))
	}

	return el.Err()
}

func isChance(f float64) bool {
	return f >= 0 && f <= 1
}
