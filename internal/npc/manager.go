package npc

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/game"
	"github.com/pixil98/go-survival/internal/rules"
)

// Names of the NPCs seeded at world start, in order.
var Names = []string{"Bob", "Alice", "Charlie", "Diana"}

const (
	npcHealth = 8
	npcDamage = 1
)

// Manager owns autonomous NPC and enemy behaviour.
type Manager struct {
	rules   rules.Population
	rng     game.Rand
	elapsed time.Duration
}

func NewManager(r rules.Population, rng game.Rand) *Manager {
	return &Manager{
		rules: r,
		rng:   rng,
	}
}

// Seed places the starting NPCs and enemies on free accessible tiles.
func (m *Manager) Seed(ctx context.Context, w *game.World) error {
	for i := range m.rules.NPCs {
		x, y, ok := m.freeTile(w, 0)
		if !ok {
			slog.WarnContext(ctx, "no free tile for npc", "index", i)
			continue
		}
		n, err := m.newNPC(w, i, x, y)
		if err != nil {
			return fmt.Errorf("creating npc: %w", err)
		}
		w.NPCs = append(w.NPCs, n)
	}

	for range m.rules.InitialEnemies {
		m.SpawnEnemy(ctx, w)
	}
	return nil
}

func (m *Manager) newNPC(w *game.World, i, x, y int) (*game.NPC, error) {
	name := Names[i%len(Names)]
	if i >= len(Names) {
		name = fmt.Sprintf("%s %d", name, i/len(Names)+1)
	}

	n := &game.NPC{
		ID:     uuid.NewString(),
		Name:   name,
		X:      x,
		Y:      y,
		Health: npcHealth,
		Damage: npcDamage,
	}

	for _, tmpl := range dialogueTemplates {
		line, err := ExpandTemplate(tmpl, n)
		if err != nil {
			return nil, err
		}
		n.Dialogue = append(n.Dialogue, line)
	}

	q := &game.Quest{
		Item:         catalog.ItemWood,
		Amount:       m.rules.QuestWoodAmount,
		RewardItem:   catalog.ItemCookedMeat,
		RewardAmount: m.rules.QuestRewardMeat,
	}
	if i%2 == 1 {
		q = &game.Quest{
			Item:         catalog.ItemRawMeat,
			Amount:       m.rules.QuestMeatAmount,
			RewardItem:   catalog.ItemStone,
			RewardAmount: m.rules.QuestRewardStone,
		}
	}
	desc, err := ExpandTemplate(questTemplate, map[string]any{
		"Giver":        name,
		"Item":         q.Item,
		"Amount":       q.Amount,
		"RewardItem":   q.RewardItem,
		"RewardAmount": q.RewardAmount,
	})
	if err != nil {
		return nil, err
	}
	q.Description = desc
	n.Quest = q

	return n, nil
}

// Update runs NPC behaviour once enough time has accumulated. Dead NPCs are
// removed and everyone is told.
func (m *Manager) Update(ctx context.Context, w *game.World, dt time.Duration) {
	m.elapsed += dt
	if m.elapsed < m.rules.NPCActionPeriod {
		return
	}
	m.elapsed = 0

	w.NPCs = slices.DeleteFunc(w.NPCs, func(n *game.NPC) bool {
		if n.Health > 0 {
			return false
		}
		slog.InfoContext(ctx, "npc died", "npc", n.Name)
		w.NotifyAll(game.NotifyInfo, fmt.Sprintf("%s has died.", n.Name))
		return true
	})
}

// Daily advances the day and, on spawn days, tries to add an enemy.
func (m *Manager) Daily(ctx context.Context, w *game.World) error {
	w.Day++

	if w.Day%m.rules.SpawnCheckDays != 0 {
		return nil
	}
	if len(w.Enemies) >= m.rules.MaxEnemies {
		return nil
	}
	m.SpawnEnemy(ctx, w)
	return nil
}

// SpawnEnemy places one random enemy away from every player. It gives up
// quietly when no tile is found within the attempt budget.
func (m *Manager) SpawnEnemy(ctx context.Context, w *game.World) bool {
	if len(w.Enemies) >= m.rules.MaxEnemies {
		return false
	}
	keys := w.Catalog.EnemyKeys()
	if len(keys) == 0 {
		return false
	}

	x, y, ok := m.freeTile(w, m.rules.SafeRadius)
	if !ok {
		slog.DebugContext(ctx, "enemy spawn found no tile")
		return false
	}

	def := w.Catalog.Enemy(keys[m.rng.IntN(len(keys))])
	w.Enemies = append(w.Enemies, game.NewEnemy(def, x, y))
	slog.InfoContext(ctx, "enemy spawned", "type", def.Key, "x", x, "y", y)
	return true
}

// freeTile looks for an accessible, unoccupied, non-building tile further
// than radius from every player.
func (m *Manager) freeTile(w *game.World, radius int) (int, int, bool) {
	for range m.rules.SpawnAttempts {
		x, y := m.rng.IntN(w.Width), m.rng.IntN(w.Height)
		tt := w.TileType(x, y)
		if tt == nil || !tt.Accessible || tt.IsBuilding || w.Occupied(x, y) {
			continue
		}
		if radius > 0 && nearPlayer(w, x, y, radius) {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

func nearPlayer(w *game.World, x, y, radius int) bool {
	for _, p := range w.Players {
		if max(abs(p.X-x), abs(p.Y-y)) <= radius {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
