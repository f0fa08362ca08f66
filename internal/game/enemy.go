package game

import (
	"github.com/google/uuid"
	"github.com/pixil98/go-survival/internal/catalog"
)

type Enemy struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Icon        string         `json:"icon"`
	X           int            `json:"x"`
	Y           int            `json:"y"`
	Health      int            `json:"health"`
	MaxHealth   int            `json:"maxHealth"`
	Damage      int            `json:"damage"`
	AggroRadius int            `json:"aggroRadius"`
	Loot        map[string]int `json:"loot"`
}

func NewEnemy(def *catalog.EnemyType, x, y int) *Enemy {
	loot := make(map[string]int, len(def.Loot))
	for k, v := range def.Loot {
		loot[k] = v
	}
	return &Enemy{
		ID:          uuid.NewString(),
		Type:        def.Key,
		Name:        def.Name,
		Icon:        def.Icon,
		X:           x,
		Y:           y,
		Health:      def.Health,
		MaxHealth:   def.Health,
		Damage:      def.Damage,
		AggroRadius: def.AggroRadius,
		Loot:        loot,
	}
}

// Hurt subtracts dmg from the enemy's health, flooring at zero.
func (e *Enemy) Hurt(dmg int) {
	e.Health = max(0, e.Health-dmg)
}
