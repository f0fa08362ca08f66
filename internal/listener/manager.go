package listener

import (
	"context"
	"log/slog"

	"github.com/pixil98/go-survival/internal/player"
)

// SessionRunner serves one player connection until it closes.
type SessionRunner interface {
	RunSession(ctx context.Context, conn player.Conn, name string) error
}

type ConnectionManager struct {
	pm SessionRunner
}

func NewConnectionManager(pm SessionRunner) *ConnectionManager {
	return &ConnectionManager{
		pm: pm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn player.Conn, name string) {
	if err := m.pm.RunSession(ctx, conn, name); err != nil {
		slog.WarnContext(ctx, "player session", "error", err)
	}
}
