package actions

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/go-survival/internal/combat"
	"github.com/pixil98/go-survival/internal/display"
	"github.com/pixil98/go-survival/internal/economy"
	"github.com/pixil98/go-survival/internal/game"
)

// Chatter delivers chat lines to every connected player.
type Chatter interface {
	BroadcastChat(ctx context.Context, sender, message string) error
}

// Dispatcher applies decoded commands to the world. It must only be used
// from the goroutine that owns the world.
type Dispatcher struct {
	engine *combat.Engine
	rng    game.Rand
	chat   Chatter
}

func NewDispatcher(engine *combat.Engine, rng game.Rand, chat Chatter) *Dispatcher {
	return &Dispatcher{
		engine: engine,
		rng:    rng,
		chat:   chat,
	}
}

// Handle decodes and dispatches one client action. Rule violations become
// warnings for the player; anything else is logged. It reports whether the
// action was applied.
func (d *Dispatcher) Handle(ctx context.Context, w *game.World, playerID, id string, data json.RawMessage) bool {
	p, err := w.Player(playerID)
	if err != nil {
		slog.WarnContext(ctx, "action from unknown player", "player", playerID, "action", id)
		return false
	}

	cmd, err := Decode(id, data)
	if err != nil {
		slog.WarnContext(ctx, "rejected action", "player", playerID, "action", id, "error", err)
		return false
	}

	err = d.Dispatch(ctx, w, p, cmd)
	if ue, ok := game.AsUserError(err); ok {
		p.Notify(game.NotifyWarning, ue.Message)
		return false
	}
	if err != nil {
		slog.ErrorContext(ctx, "action failed", "player", playerID, "action", id, "error", err)
		return false
	}
	return true
}

// Dispatch applies cmd on behalf of p.
func (d *Dispatcher) Dispatch(ctx context.Context, w *game.World, p *game.Player, cmd Command) error {
	if p.Busy {
		switch cmd.(type) {
		case CombatAction, Chat:
		default:
			return game.Userf("You are busy right now.")
		}
	}

	switch c := cmd.(type) {
	case Move:
		return economy.Move(w, p, c.Direction)
	case Equip:
		return p.Equip(w.Catalog, c.ItemKey)
	case Unequip:
		return p.Unequip(c.Slot)
	case Drop:
		return w.Drop(p, c.ItemKey)
	case Pickup:
		return w.Pickup(p, c.ItemName)
	case MoveItem:
		return w.MoveItem(p, c.MoveRequest)
	case Consume:
		return economy.Consume(w, p, d.rng, c.ItemKey)
	case HarvestWood:
		return economy.HarvestWood(w, p, c.Method)
	case HarvestStone:
		return economy.HarvestStone(w, p)
	case HarvestSand:
		return economy.HarvestSand(w, p)
	case HarvestSaltWater:
		return economy.HarvestSaltWater(w, p)
	case Build:
		return economy.Build(w, p, c.StructureKey)
	case Craft:
		return economy.Craft(w, p, c.RecipeName, c.Quantity)
	case Search:
		return economy.Search(w, p, d.rng)
	case OpenTreasure:
		return economy.OpenTreasure(w, p)
	case Sleep:
		return economy.Sleep(w, p)
	case Hunt:
		return economy.Hunt(w, p, d.rng)
	case InitiateCombat:
		return d.engine.Initiate(w, p)
	case CombatAction:
		return d.engine.Act(w, p, c.Move)
	case Chat:
		return d.sendChat(ctx, w, p, c.Message)
	case Unsupported:
		p.Notify(game.NotifyInfo, display.Humanize(c.ID)+" is not available yet.")
		return nil
	default:
		return fmt.Errorf("unhandled command %T", cmd)
	}
}

func (d *Dispatcher) sendChat(ctx context.Context, w *game.World, p *game.Player, msg string) error {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return game.Userf("Say something.")
	}
	msg = display.Truncate(msg, w.Rules.ChatMaxLength)
	if d.chat == nil {
		return nil
	}
	if err := d.chat.BroadcastChat(ctx, p.Name, msg); err != nil {
		return fmt.Errorf("broadcasting chat: %w", err)
	}
	return nil
}
