package player

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pixil98/go-survival/internal/messaging"
	"github.com/pixil98/go-survival/internal/protocol"
	"golang.org/x/time/rate"
)

const (
	DefaultActionRate  = rate.Limit(20)
	DefaultActionBurst = 10
	DefaultOutboxSize  = 16
)

// Game is the world as a connection sees it.
type Game interface {
	Join(ctx context.Context, id, name string) error
	Leave(ctx context.Context, id string) error
	Submit(ctx context.Context, playerID, actionID string, data json.RawMessage) error
}

// Subscriber delivers published messages for a subject.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

type PlayerManager struct {
	game Game
	bus  Subscriber

	actionRate  rate.Limit
	actionBurst int
	outboxSize  int

	mu       sync.Mutex
	sessions map[string]*Session
	wg       sync.WaitGroup
}

func NewPlayerManager(g Game, bus Subscriber, opts ...PlayerManagerOpt) *PlayerManager {
	pm := &PlayerManager{
		game:        g,
		bus:         bus,
		actionRate:  DefaultActionRate,
		actionBurst: DefaultActionBurst,
		outboxSize:  DefaultOutboxSize,
		sessions:    map[string]*Session{},
	}

	for _, opt := range opts {
		opt(pm)
	}

	return pm
}

// Start waits for shutdown, then closes every open connection.
func (m *PlayerManager) Start(ctx context.Context) error {
	<-ctx.Done()

	m.mu.Lock()
	for _, s := range m.sessions {
		_ = s.conn.Close()
	}
	m.mu.Unlock()

	m.wg.Wait()
	return nil
}

// Count returns the number of open sessions.
func (m *PlayerManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// RunSession serves one connection until it closes. The player joins the
// world on entry and leaves it on return.
func (m *PlayerManager) RunSession(ctx context.Context, conn Conn, name string) error {
	m.wg.Add(1)
	defer m.wg.Done()

	s := &Session{
		id:      uuid.NewString(),
		conn:    conn,
		game:    m.game,
		limiter: rate.NewLimiter(m.actionRate, m.actionBurst),
		msgs:    make(chan []byte, m.outboxSize),
	}
	if name == "" {
		name = "Survivor-" + s.id[:4]
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, subject := range []string{messaging.PlayerSubject(s.id), messaging.BroadcastSubject} {
		unsubscribe, err := m.bus.Subscribe(subject, s.deliver)
		if err != nil {
			return fmt.Errorf("subscribing to %s: %w", subject, err)
		}
		defer unsubscribe()
	}

	if err := m.game.Join(ctx, s.id, name); err != nil {
		return fmt.Errorf("joining game: %w", err)
	}
	defer func() {
		if err := m.game.Leave(context.WithoutCancel(ctx), s.id); err != nil {
			slog.WarnContext(ctx, "leaving game", "player", s.id, "error", err)
		}
	}()

	hello, err := protocol.PlayerID(s.id)
	if err != nil {
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, hello); err != nil {
		return fmt.Errorf("sending player id: %w", err)
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		delete(m.sessions, s.id)
		m.mu.Unlock()
	}()

	slog.InfoContext(ctx, "session started", "player", s.id, "name", name)
	go s.writePump(ctx, cancel)

	// Unblock the read pump when the write side gives up.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	err = s.readPump(ctx)
	slog.InfoContext(ctx, "session ended", "player", s.id)
	return err
}
