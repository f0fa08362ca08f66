package catalog

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type EnemyType struct {
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Icon        string         `json:"icon,omitempty"`
	Health      int            `json:"health"`
	Damage      int            `json:"damage"`
	AggroRadius int            `json:"aggro_radius"`
	Loot        map[string]int `json:"loot,omitempty"`
}

func (e *EnemyType) Validate() error {
	if e == nil {
		return fmt.Errorf("enemy spec is required")
	}

	el := errors.NewErrorList()

	if e.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if e.Health <= 0 {
		el.Add(fmt.Errorf("health must be positive"))
	}
	if e.Damage < 0 {
		el.Add(fmt.Errorf("damage must not be negative"))
	}
	for item, n := range e.Loot {
		if n <= 0 {
			el.Add(fmt.Errorf("loot quantity of %q must be positive", item))
		}
	}

	return el.Err()
}
