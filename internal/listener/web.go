package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

const shutdownTimeout = 5 * time.Second

// DefaultReadLimit caps one client frame. Client messages are small action
// envelopes.
const DefaultReadLimit int64 = 64 << 10

// WebListener serves the game websocket, the account endpoints and the
// static client over HTTP.
type WebListener struct {
	port      uint16
	cm        *ConnectionManager
	accounts  Accounts
	staticDir string
	ready     <-chan struct{}
	readLimit int64

	upgrader websocket.Upgrader
	wg       sync.WaitGroup
}

func NewWebListener(port uint16, cm *ConnectionManager, opts ...WebListenerOpt) *WebListener {
	l := &WebListener{
		port:      port,
		cm:        cm,
		readLimit: DefaultReadLimit,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Router builds the HTTP routes.
func (l *WebListener) Router(connCtx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/ws", l.handleWebsocket(connCtx))
	if l.accounts != nil {
		r.Post("/login", l.handleLogin)
		r.Post("/register", l.handleRegister)
	}
	if l.staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(l.staticDir)))
	}
	return r
}

func (l *WebListener) Start(ctx context.Context) error {
	if l.ready != nil {
		select {
		case <-l.ready:
		case <-ctx.Done():
			return nil
		}
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("port %d is already in use (another server running?)", l.port)
		}
		return fmt.Errorf("listening on port %d: %w", l.port, err)
	}

	// Connections outlive their upgrade request, so they hang off their own
	// context that is canceled on shutdown.
	connCtx, cancelConns := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelConns()

	srv := &http.Server{
		Handler:           l.Router(connCtx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	slog.InfoContext(ctx, "listening for http", "port", l.port)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http on port %d: %w", l.port, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.WarnContext(ctx, "shutting down http server", "error", err)
	}
	cancelConns()
	l.wg.Wait()

	return nil
}

func (l *WebListener) handleWebsocket(connCtx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := l.upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.DebugContext(r.Context(), "websocket upgrade", "error", err)
			return
		}
		conn.SetReadLimit(l.readLimit)

		l.wg.Add(1)
		defer l.wg.Done()
		defer func() {
			if err := conn.Close(); err != nil {
				slog.DebugContext(connCtx, "closing websocket", "error", err)
			}
		}()

		l.cm.AcceptConnection(connCtx, conn, r.URL.Query().Get("name"))
	}
}
