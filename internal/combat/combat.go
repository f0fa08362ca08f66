package combat

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-survival/internal/game"
	"github.com/pixil98/go-survival/internal/rules"
)

type Move string

const (
	MoveAttack Move = "attack"
	MoveFlee   Move = "flee"
)

// Scheduler runs fn against the world after d has passed, on the same
// goroutine that owns the world.
type Scheduler interface {
	After(d time.Duration, fn func(w *game.World))
}

// Engine runs the single turn-based encounter the world allows.
type Engine struct {
	rules rules.Combat
	rng   game.Rand
	sched Scheduler
	seq   uint64
}

func NewEngine(r rules.Combat, rng game.Rand, sched Scheduler) *Engine {
	return &Engine{
		rules: r,
		rng:   rng,
		sched: sched,
	}
}

// CanInitiate reports whether p could start a fight right now.
func CanInitiate(w *game.World, p *game.Player) bool {
	return w.Combat == nil && len(w.EnemiesAt(p.X, p.Y)) > 0
}

// Initiate starts a fight with the first enemy on the player's tile. The
// player moves first.
func (e *Engine) Initiate(w *game.World, p *game.Player) error {
	if w.Combat != nil {
		return game.Userf("A fight is already under way.")
	}
	enemies := w.EnemiesAt(p.X, p.Y)
	if len(enemies) == 0 {
		return game.Userf("There is no enemy here.")
	}
	enemy := enemies[0]

	e.seq++
	w.Combat = &game.CombatSession{
		PlayerID:   p.ID,
		EnemyID:    enemy.ID,
		PlayerTurn: true,
		Seq:        e.seq,
	}
	w.Combat.AddLog(fmt.Sprintf("%s confronts %s!", p.Name, enemy.Name))
	p.Busy = true
	return nil
}

// Act resolves a player move. Moves from anyone but the fighting player, or
// made out of turn, are ignored.
func (e *Engine) Act(w *game.World, p *game.Player, move Move) error {
	s := w.Combat
	if s == nil || s.PlayerID != p.ID || !s.PlayerTurn {
		return nil
	}

	enemy := w.Enemy(s.EnemyID)
	if enemy == nil {
		e.end(w, p)
		return nil
	}

	switch move {
	case MoveAttack:
		dmg := p.WeaponDamage(w.Catalog, e.rules.UnarmedDamage)
		enemy.Hurt(dmg)
		s.AddLog(fmt.Sprintf("%s %s %s! (%d damage)", p.Name, DamageVerb(dmg), enemy.Name, dmg))
		if enemy.Health == 0 {
			e.win(w, p, enemy)
			return nil
		}
	case MoveFlee:
		if game.Roll(e.rng, e.rules.FleeChance) {
			s.AddLog(fmt.Sprintf("%s fled.", p.Name))
			e.end(w, p)
			p.Notify(game.NotifyInfo, fmt.Sprintf("You escaped from %s.", enemy.Name))
			return nil
		}
		s.AddLog(fmt.Sprintf("%s tried to flee but failed.", p.Name))
	default:
		return game.Userf("Unknown combat move %q.", move)
	}

	s.PlayerTurn = false
	seq := s.Seq
	e.sched.After(e.rules.EnemyTurnDelay, func(w *game.World) {
		e.enemyTurn(w, seq)
	})
	return nil
}

// enemyTurn only acts if the session it was scheduled for is still waiting
// on the enemy.
func (e *Engine) enemyTurn(w *game.World, seq uint64) {
	s := w.Combat
	if s == nil || s.Seq != seq || s.PlayerTurn {
		return
	}

	p := w.Players[s.PlayerID]
	enemy := w.Enemy(s.EnemyID)
	if p == nil || enemy == nil {
		w.Combat = nil
		if p != nil {
			p.Busy = false
		}
		return
	}

	dmg := EnemyDamage(enemy.Damage, p.Defense(w.Catalog))
	p.Health = max(0, p.Health-float64(dmg))
	s.AddLog(fmt.Sprintf("%s %s %s! (%d damage)", enemy.Name, DamageVerb(dmg), p.Name, dmg))

	if p.Health == 0 {
		e.end(w, p)
		p.Notify(game.NotifyWarning, fmt.Sprintf("You were defeated by %s.", enemy.Name))
		slog.Info("combat lost", "player", p.ID, "enemy", enemy.Type)
		return
	}
	s.PlayerTurn = true
}
