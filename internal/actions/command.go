package actions

import (
	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/combat"
	"github.com/pixil98/go-survival/internal/economy"
	"github.com/pixil98/go-survival/internal/game"
)

// Command is one decoded client action. The set of implementations is
// closed; Dispatcher.Dispatch switches over all of them.
type Command interface {
	ActionID() string
}

type Move struct {
	Direction string `json:"direction"`
}

type Equip struct {
	ItemKey string `json:"itemKey"`
}

type Unequip struct {
	Slot catalog.Slot `json:"slot"`
}

type Drop struct {
	ItemKey string `json:"itemKey"`
}

type Pickup struct {
	ItemName string `json:"itemName"`
}

type MoveItem struct {
	game.MoveRequest
}

type Consume struct {
	ItemKey string `json:"itemKey"`
}

type HarvestWood struct {
	Method economy.WoodMethod
}

type HarvestStone struct{}

type HarvestSand struct{}

type HarvestSaltWater struct{}

type Build struct {
	StructureKey string `json:"structureKey"`
}

// Craft ignores any costs the client sends; the recipe decides.
type Craft struct {
	RecipeName string `json:"recipeName"`
	Quantity   int    `json:"quantity"`
}

type Search struct{}

type OpenTreasure struct{}

type Sleep struct{}

type Hunt struct{}

type InitiateCombat struct{}

type CombatAction struct {
	Move combat.Move `json:"move"`
}

type Chat struct {
	Message string `json:"message"`
}

// Unsupported is an action clients may send that the server does not
// implement yet.
type Unsupported struct {
	ID string
}

func (Move) ActionID() string             { return ActionMove }
func (Equip) ActionID() string            { return ActionEquip }
func (Unequip) ActionID() string          { return ActionUnequip }
func (Drop) ActionID() string             { return ActionDrop }
func (Pickup) ActionID() string           { return ActionPickup }
func (MoveItem) ActionID() string         { return ActionMoveItem }
func (Consume) ActionID() string          { return ActionConsume }
func (HarvestStone) ActionID() string     { return ActionHarvestStone }
func (HarvestSand) ActionID() string      { return ActionHarvestSand }
func (Build) ActionID() string            { return ActionBuild }
func (Craft) ActionID() string            { return ActionCraft }
func (Search) ActionID() string           { return ActionSearch }
func (OpenTreasure) ActionID() string     { return ActionOpenTreasure }
func (Sleep) ActionID() string            { return ActionSleep }
func (Hunt) ActionID() string             { return ActionHunt }
func (InitiateCombat) ActionID() string   { return ActionInitiateCombat }
func (CombatAction) ActionID() string     { return ActionCombat }
func (Chat) ActionID() string             { return ActionChat }
func (HarvestSaltWater) ActionID() string { return ActionHarvestSaltWater }
func (u Unsupported) ActionID() string    { return u.ID }

func (h HarvestWood) ActionID() string {
	for id, m := range woodActions {
		if m == h.Method {
			return id
		}
	}
	return ActionHarvestWoodHands
}
