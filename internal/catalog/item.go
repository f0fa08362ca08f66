package catalog

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type ItemKind string

const (
	KindResource   ItemKind = "resource"
	KindConsumable ItemKind = "consumable"
	KindTool       ItemKind = "tool"
	KindWeapon     ItemKind = "weapon"
	KindShield     ItemKind = "shield"
	KindArmor      ItemKind = "armor"
	KindBag        ItemKind = "bag"
	KindKey        ItemKind = "key"
	KindUsable     ItemKind = "usable"
)

// Slot is an equipment body location.
type Slot string

const (
	SlotHead   Slot = "head"
	SlotBody   Slot = "body"
	SlotFeet   Slot = "feet"
	SlotWeapon Slot = "weapon"
	SlotShield Slot = "shield"
	SlotBag    Slot = "bag"
)

// Slots lists every equipment slot in display order.
var Slots = []Slot{SlotHead, SlotBody, SlotFeet, SlotWeapon, SlotShield, SlotBag}

// DefenseSlots are the slots whose defense reduces incoming damage.
var DefenseSlots = []Slot{SlotBody, SlotHead, SlotFeet, SlotShield}

func (s Slot) Valid() bool {
	for _, v := range Slots {
		if v == s {
			return true
		}
	}
	return false
}

// StatusChance applies a named status with the given probability.
type StatusChance struct {
	Name   string  `json:"name"`
	Chance float64 `json:"chance"`
}

// Effects are applied to a player's vitals when an item is consumed.
type Effects struct {
	Health float64        `json:"health,omitempty"`
	Thirst float64        `json:"thirst,omitempty"`
	Hunger float64        `json:"hunger,omitempty"`
	Sleep  float64        `json:"sleep,omitempty"`
	Status []StatusChance `json:"status,omitempty"`
	Cures  []string       `json:"cures,omitempty"`
}

// Item is the definition shared by every unit of a named item.
type Item struct {
	Name          string   `json:"name"`
	Kind          ItemKind `json:"kind"`
	Slot          Slot     `json:"slot,omitempty"`
	Power         int      `json:"power,omitempty"`
	Action        string   `json:"action,omitempty"`
	Damage        int      `json:"damage,omitempty"`
	Defense       int      `json:"defense,omitempty"`
	Durability    int      `json:"durability,omitempty"`
	Effects       *Effects `json:"effects,omitempty"`
	TeachesRecipe string   `json:"teaches_recipe,omitempty"`
}

// Unique reports whether each unit of the item carries its own identity and
// durability instead of aggregating into a stack.
func (i *Item) Unique() bool {
	return i.Kind == KindTool || i.Kind == KindWeapon || i.Slot != ""
}

func (i *Item) Consumable() bool {
	return i.Kind == KindConsumable || i.TeachesRecipe != ""
}

func (i *Item) Validate() error {
	if i == nil {
		return fmt.Errorf("item spec is required")
	}

	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if i.Kind == "" {
		el.Add(fmt.Errorf("kind is required"))
	}
	if i.Slot != "" && !i.Slot.Valid() {
		el.Add(fmt.Errorf("unknown slot %q", i.Slot))
	}
	if i.Power < 0 || i.Damage < 0 || i.Defense < 0 || i.Durability < 0 {
		el.Add(fmt.Errorf("stats must not be negative"))
	}
	if i.Effects != nil {
		for _, s := range i.Effects.Status {
			if s.Chance < 0 || s.Chance > 1 {
				el.Add(fmt.Errorf("status %q chance must be within [0,1]", s.Name))
			}
		}
	}

	return el.Err()
}
