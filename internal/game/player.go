package game

import (
	"slices"

	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/rules"
)

// AvailableAction is an action the player can take from their current tile.
type AvailableAction struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Player is the simulated state of one connection.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`

	Health    float64  `json:"health"`
	MaxHealth float64  `json:"maxHealth"`
	Thirst    float64  `json:"thirst"`
	MaxThirst float64  `json:"maxThirst"`
	Hunger    float64  `json:"hunger"`
	MaxHunger float64  `json:"maxHunger"`
	Sleep     float64  `json:"sleep"`
	MaxSleep  float64  `json:"maxSleep"`
	Status    []string `json:"status"`

	Inventory    Inventory `json:"inventory"`
	MaxInventory int       `json:"maxInventory"`
	Equipment    Equipment `json:"equipment"`
	KnownRecipes StringSet `json:"knownRecipes"`
	VisitedTiles StringSet `json:"visitedTiles"`

	Busy             bool              `json:"isBusy"`
	AvailableActions []AvailableAction `json:"availableActions"`
	Notifications    []Notification    `json:"notifications"`
}

// NewPlayer creates a player at the configured spawn point holding the
// starting kit.
func NewPlayer(id, name string, cat *catalog.Catalog, r rules.Player) *Player {
	p := &Player{
		ID:           id,
		Name:         name,
		X:            r.SpawnX,
		Y:            r.SpawnY,
		Health:       r.MaxHealth,
		MaxHealth:    r.MaxHealth,
		Thirst:       r.MaxThirst,
		MaxThirst:    r.MaxThirst,
		Hunger:       r.MaxHunger,
		MaxHunger:    r.MaxHunger,
		Sleep:        r.MaxSleep,
		MaxSleep:     r.MaxSleep,
		Status:       []string{},
		Inventory:    Inventory{},
		MaxInventory: r.MaxInventory,
		KnownRecipes: NewStringSet(),
		VisitedTiles: NewStringSet(TileKey(r.SpawnX, r.SpawnY)),
	}

	for _, g := range cat.StartingKit {
		if def := cat.Item(g.Item); def != nil {
			p.Inventory.Add(def, g.Quantity)
		}
	}

	return p
}

// Notify queues a message for the next broadcast.
func (p *Player) Notify(t NotificationType, msg string) {
	p.Notifications = append(p.Notifications, Notification{Type: t, Message: msg})
}

func (p *Player) HasStatus(name string) bool {
	return slices.Contains(p.Status, name)
}

func (p *Player) AddStatus(name string) {
	if !p.HasStatus(name) {
		p.Status = append(p.Status, name)
	}
}

func (p *Player) RemoveStatus(name string) {
	p.Status = slices.DeleteFunc(p.Status, func(s string) bool { return s == name })
}

// AddItem adds qty units of the named item, ignoring unknown names.
func (p *Player) AddItem(cat *catalog.Catalog, name string, qty int) bool {
	def := cat.Item(name)
	if def == nil {
		return false
	}
	p.Inventory.Add(def, qty)
	return true
}

// Clamp bounds every vital to [0, max].
func (p *Player) Clamp() {
	p.Health = clamp(p.Health, p.MaxHealth)
	p.Thirst = clamp(p.Thirst, p.MaxThirst)
	p.Hunger = clamp(p.Hunger, p.MaxHunger)
	p.Sleep = clamp(p.Sleep, p.MaxSleep)
}

func clamp(v, hi float64) float64 {
	return max(0, min(v, hi))
}

// Alive reports whether the player has any health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}
