package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-survival/internal/actions"
	"github.com/pixil98/go-survival/internal/combat"
	"github.com/pixil98/go-survival/internal/display"
	"github.com/pixil98/go-survival/internal/game"
	"github.com/pixil98/go-survival/internal/npc"
	"github.com/pixil98/go-survival/internal/protocol"
)

const (
	DefaultTickLength = 500 * time.Millisecond
	DefaultDayLength  = 5 * time.Minute
	DefaultInboxSize  = 256
)

// Recorder keeps a trail of accepted actions.
type Recorder interface {
	Record(ctx context.Context, playerID, action string, data json.RawMessage) error
}

// event is one unit of work run on the driver goroutine.
type event func(ctx context.Context)

// Driver is the only goroutine allowed to touch the world. Joins, leaves,
// actions and delayed combat turns all queue on its inbox and run one at a
// time between ticks.
type Driver struct {
	world      *game.World
	publisher  game.Publisher
	npcs       *npc.Manager
	dispatcher *actions.Dispatcher
	recorder   Recorder

	tickLength time.Duration
	dayLength  time.Duration
	inbox      chan event
	done       chan struct{}
	now        func() time.Time
	lastTick   time.Time
}

func NewDriver(w *game.World, pub game.Publisher, npcs *npc.Manager, rng game.Rand, opts ...DriverOpt) *Driver {
	d := &Driver{
		world:      w,
		publisher:  pub,
		npcs:       npcs,
		tickLength: DefaultTickLength,
		dayLength:  DefaultDayLength,
		inbox:      make(chan event, DefaultInboxSize),
		done:       make(chan struct{}),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	engine := combat.NewEngine(w.Rules.Combat, rng, d)
	d.dispatcher = actions.NewDispatcher(engine, rng, d)
	return d
}

func (d *Driver) Start(ctx context.Context) error {
	defer close(d.done)

	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()
	days := time.NewTicker(d.dayLength)
	defer days.Stop()

	d.lastTick = d.now()
	slog.InfoContext(ctx, "driver started", "tick", d.tickLength, "day", d.dayLength)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-d.inbox:
			d.run(ctx, ev)
		case <-ticker.C:
			d.Tick(ctx)
		case <-days.C:
			d.Day(ctx)
		}
	}
}

// post queues ev. It gives up once ctx ends or the driver has stopped.
func (d *Driver) post(ctx context.Context, ev event) error {
	select {
	case <-d.done:
		return fmt.Errorf("driver stopped")
	default:
	}

	select {
	case d.inbox <- ev:
		return nil
	case <-d.done:
		return fmt.Errorf("driver stopped")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Join adds a new player and waits for the driver to accept it.
func (d *Driver) Join(ctx context.Context, id, name string) error {
	errCh := make(chan error, 1)
	err := d.post(ctx, func(ctx context.Context) {
		p := game.NewPlayer(id, name, d.world.Catalog, d.world.Rules.Player)
		if err := d.world.AddPlayer(p); err != nil {
			errCh <- err
			return
		}
		d.world.Reveal(p, p.X, p.Y)
		slog.InfoContext(ctx, "player joined", "player", id, "name", name)
		errCh <- nil
	})
	if err != nil {
		return err
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Leave removes a player. Unknown ids are ignored.
func (d *Driver) Leave(ctx context.Context, id string) error {
	return d.post(ctx, func(ctx context.Context) {
		if err := d.world.RemovePlayer(id); err != nil {
			slog.DebugContext(ctx, "leave for unknown player", "player", id)
			return
		}
		slog.InfoContext(ctx, "player left", "player", id)
	})
}

// Submit queues one client action.
func (d *Driver) Submit(ctx context.Context, playerID, actionID string, data json.RawMessage) error {
	return d.post(ctx, func(ctx context.Context) {
		if !d.dispatcher.Handle(ctx, d.world, playerID, actionID, data) {
			return
		}
		if d.recorder == nil {
			return
		}
		if err := d.recorder.Record(ctx, playerID, actionID, data); err != nil {
			slog.WarnContext(ctx, "recording action", "player", playerID, "action", actionID, "error", err)
		}
	})
}

// After runs fn on the driver goroutine once delay has passed. It makes the
// driver the combat scheduler.
func (d *Driver) After(delay time.Duration, fn func(w *game.World)) {
	time.AfterFunc(delay, func() {
		err := d.post(context.Background(), func(ctx context.Context) {
			fn(d.world)
		})
		if err != nil {
			slog.Debug("dropping deferred event", "error", err)
		}
	})
}

// BroadcastChat sends a chat line to every connection.
func (d *Driver) BroadcastChat(_ context.Context, sender, message string) error {
	data, err := protocol.Chat(sender, message)
	if err != nil {
		return err
	}
	return d.publisher.PublishToAll(data)
}

// Tick advances the simulation by the wall time since the previous tick and
// pushes the resulting state to every player.
func (d *Driver) Tick(ctx context.Context) {
	now := d.now()
	dt := now.Sub(d.lastTick)
	d.lastTick = now

	w := d.world
	d.npcs.Update(ctx, w, dt)

	for _, id := range w.PlayerIDs() {
		p := w.Players[id]
		p.Decay(w.Rules.Decay, dt)
	}
	for _, id := range w.PlayerIDs() {
		p := w.Players[id]
		p.AvailableActions = actions.Available(w, p)
		for i := range p.Notifications {
			p.Notifications[i].Message = display.Wrap(p.Notifications[i].Message, w.Rules.NotificationWidth)
		}
	}

	data, err := protocol.GameState(w)
	if err != nil {
		slog.ErrorContext(ctx, "serializing world", "error", err)
		return
	}
	for _, id := range w.PlayerIDs() {
		if err := d.publisher.PublishToPlayer(id, data); err != nil {
			slog.WarnContext(ctx, "publishing state", "player", id, "error", err)
		}
	}

	for _, p := range w.Players {
		p.Notifications = nil
	}
}

// Day runs the daily cycle.
func (d *Driver) Day(ctx context.Context) {
	d.guard(ctx, "daily update", func() {
		if err := d.npcs.Daily(ctx, d.world); err != nil {
			slog.ErrorContext(ctx, "daily update failed", "error", err)
			return
		}
		slog.InfoContext(ctx, "new day", "day", d.world.Day)
	})
}

// run executes one inbox event. A panicking event is logged and dropped.
func (d *Driver) run(ctx context.Context, ev event) {
	d.guard(ctx, "event", func() { ev(ctx) })
}

// guard runs fn, logging instead of crashing on panic.
func (d *Driver) guard(ctx context.Context, what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "recovered from panic", "in", what, "panic", r)
		}
	}()
	fn()
}
