package player

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gorilla/websocket"
	"github.com/pixil98/go-survival/internal/protocol"
	"golang.org/x/time/rate"
)

// Conn is the part of a websocket connection a session uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Session is one live connection bound to one player in the world.
type Session struct {
	id      string
	conn    Conn
	game    Game
	limiter *rate.Limiter

	msgs chan []byte
}

// deliver queues an outgoing message. A client too slow to drain its queue
// misses messages rather than stalling the game.
func (s *Session) deliver(data []byte) {
	select {
	case s.msgs <- data:
	default:
		slog.Debug("dropping message for slow client", "player", s.id)
	}
}

// writePump sends queued messages until ctx ends or a write fails.
func (s *Session) writePump(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.msgs:
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.DebugContext(ctx, "writing to client", "player", s.id, "error", err)
				return
			}
		}
	}
}

// readPump forwards client actions to the game until the connection closes.
func (s *Session) readPump(ctx context.Context) error {
	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		if !s.limiter.Allow() {
			slog.WarnContext(ctx, "rate limited action", "player", s.id)
			continue
		}

		msg, err := protocol.ParseClient(raw)
		if err != nil {
			slog.WarnContext(ctx, "invalid client message", "player", s.id, "error", err)
			continue
		}

		if err := s.game.Submit(ctx, s.id, msg.ID, msg.Data); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}
