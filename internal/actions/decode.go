package actions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/pixil98/go-survival/internal/combat"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid payload")
)

type decoder func(data json.RawMessage) (Command, error)

// payload unmarshals data into T. A missing payload decodes to T's zero
// value.
func payload[T any](data json.RawMessage) (T, error) {
	var v T
	if len(data) == 0 || string(data) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return v, nil
}

func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidPayload, field)
	}
	return nil
}

// decodeWith builds a decoder for T that runs check on the decoded value.
func decodeWith[T Command](check func(T) error) decoder {
	return func(data json.RawMessage) (Command, error) {
		v, err := payload[T](data)
		if err != nil {
			return nil, err
		}
		if check != nil {
			if err := check(v); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
}

func fixed(c Command) decoder {
	return func(json.RawMessage) (Command, error) {
		return c, nil
	}
}

var decoders = map[string]decoder{
	ActionMove:    decodeWith(func(c Move) error { return required("direction", c.Direction) }),
	ActionEquip:   decodeWith(func(c Equip) error { return required("itemKey", c.ItemKey) }),
	ActionUnequip: decodeWith(func(c Unequip) error { return required("slot", string(c.Slot)) }),
	ActionDrop:    decodeWith(func(c Drop) error { return required("itemKey", c.ItemKey) }),
	ActionPickup:  decodeWith(func(c Pickup) error { return required("itemName", c.ItemName) }),
	ActionMoveItem: decodeWith(func(c MoveItem) error {
		if c.ItemKey == "" && c.ItemName == "" {
			return fmt.Errorf("%w: itemKey or itemName is required", ErrInvalidPayload)
		}
		return required("source.owner", string(c.Source.Owner))
	}),
	ActionConsume: decodeWith(func(c Consume) error { return required("itemKey", c.ItemKey) }),

	ActionHarvestWoodAxe:   fixed(HarvestWood{Method: woodActions[ActionHarvestWoodAxe]}),
	ActionHarvestWoodSaw:   fixed(HarvestWood{Method: woodActions[ActionHarvestWoodSaw]}),
	ActionHarvestWoodHands: fixed(HarvestWood{Method: woodActions[ActionHarvestWoodHands]}),
	ActionHarvestStone:     fixed(HarvestStone{}),
	ActionHarvestSand:      fixed(HarvestSand{}),
	ActionHarvestSaltWater: fixed(HarvestSaltWater{}),

	ActionBuild: decodeWith(func(c Build) error { return required("structureKey", c.StructureKey) }),
	ActionCraft: decodeWith(func(c Craft) error { return required("recipeName", c.RecipeName) }),

	ActionSearch:         fixed(Search{}),
	ActionOpenTreasure:   fixed(OpenTreasure{}),
	ActionSleep:          fixed(Sleep{}),
	ActionHunt:           fixed(Hunt{}),
	ActionInitiateCombat: fixed(InitiateCombat{}),

	ActionCombat: decodeWith(func(c CombatAction) error {
		switch c.Move {
		case combat.MoveAttack, combat.MoveFlee:
			return nil
		}
		return fmt.Errorf("%w: unknown combat move %q", ErrInvalidPayload, c.Move)
	}),
	ActionChat: decodeWith(func(c Chat) error { return required("message", c.Message) }),
}

// Decode turns a client action id and payload into a Command.
func Decode(id string, data json.RawMessage) (Command, error) {
	if dec, ok := decoders[id]; ok {
		return dec(data)
	}
	if IsUnimplemented(id) {
		return Unsupported{ID: id}, nil
	}
	if s := Suggest(id); s != "" {
		return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownAction, id, s)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownAction, id)
}

// maxSuggestDistance bounds how different a suggestion may be.
const maxSuggestDistance = 3

// Suggest returns the closest known action id to id, or "" when nothing is
// close.
func Suggest(id string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, known := range append(Supported(), Unimplemented...) {
		if d := levenshtein.ComputeDistance(id, known); d < bestDist {
			best, bestDist = known, d
		}
	}
	return best
}
