package catalog

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Counter names a per-tile depletable action budget.
type Counter string

const (
	CounterWood      Counter = "wood"
	CounterHunt      Counter = "hunt"
	CounterSearch    Counter = "search"
	CounterStone     Counter = "stone"
	CounterSand      Counter = "sand"
	CounterSaltWater Counter = "salt_water"
	CounterFish      Counter = "fish"
)

// BuildingAction is an action offered while standing on a building.
type BuildingAction struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SleepEffect struct {
	Sleep  float64 `json:"sleep"`
	Health float64 `json:"health"`
}

// TileType is the immutable template for a tile or a building placed on one.
type TileType struct {
	Key        string          `json:"key"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon,omitempty"`
	Color      string          `json:"color,omitempty"`
	Accessible bool            `json:"accessible"`
	Buildable  bool            `json:"buildable"`
	Counters   map[Counter]int `json:"counters,omitempty"`
	SearchZone string          `json:"search_zone,omitempty"`
	Resource   string          `json:"resource,omitempty"`

	RequiresKey string `json:"requires_key,omitempty"`

	IsBuilding   bool             `json:"is_building,omitempty"`
	Durability   int              `json:"durability,omitempty"`
	Cost         map[string]int   `json:"cost,omitempty"`
	ToolRequired []string         `json:"tool_required,omitempty"`
	SleepEffect  *SleepEffect     `json:"sleep_effect,omitempty"`
	MaxInventory int              `json:"max_inventory,omitempty"`
	Lockable     bool             `json:"lockable,omitempty"`
	Actions      []BuildingAction `json:"actions,omitempty"`
}

func (t *TileType) IsShelter() bool {
	return t.SleepEffect != nil
}

func (t *TileType) Validate() error {
	if t == nil {
		return fmt.Errorf("tile spec is required")
	}

	el := errors.NewErrorList()

	if t.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	for c, n := range t.Counters {
		if n < 0 {
			el.Add(fmt.Errorf("counter %q must not be negative", c))
		}
	}
	for item, n := range t.Cost {
		if n <= 0 {
			el.Add(fmt.Errorf("cost of %q must be positive", item))
		}
	}
	if t.IsBuilding && t.Durability <= 0 {
		el.Add(fmt.Errorf("buildings require a positive durability"))
	}
	if !t.IsBuilding && len(t.Cost) > 0 {
		el.Add(fmt.Errorf("only buildings may declare a cost"))
	}

	return el.Err()
}
