package player

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"
	"github.com/pixil98/go-testutil"
)

type fakeConn struct {
	in     chan []byte
	closed chan struct{}
	once   sync.Once

	mu  sync.Mutex
	out []string
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan []byte, 16), closed: make(chan struct{})}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case msg, ok := <-c.in:
		if !ok {
			return 0, nil, &websocket.CloseError{Code: websocket.CloseNormalClosure}
		}
		return websocket.TextMessage, msg, nil
	case <-c.closed:
		return 0, nil, io.EOF
	}
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = append(c.out, string(data))
	return nil
}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) written() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.out...)
}

type submission struct {
	action string
	data   string
}

type fakeGame struct {
	mu      sync.Mutex
	joined  []string
	left    []string
	actions []submission
	joinErr error
}

func (g *fakeGame) Join(_ context.Context, id, name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.joinErr != nil {
		return g.joinErr
	}
	g.joined = append(g.joined, name)
	return nil
}

func (g *fakeGame) Leave(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.left = append(g.left, id)
	return nil
}

func (g *fakeGame) Submit(_ context.Context, _ string, actionID string, data json.RawMessage) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.actions = append(g.actions, submission{action: actionID, data: string(data)})
	return nil
}

type fakeBus struct {
	mu       sync.Mutex
	handlers map[string]func([]byte)
}

func (b *fakeBus) Subscribe(subject string, handler func([]byte)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers == nil {
		b.handlers = map[string]func([]byte){}
	}
	b.handlers[subject] = handler
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, subject)
	}, nil
}

func (b *fakeBus) publish(subject string, data []byte) bool {
	b.mu.Lock()
	h := b.handlers[subject]
	b.mu.Unlock()
	if h == nil {
		return false
	}
	h(data)
	return true
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRunSession(t *testing.T) {
	g := &fakeGame{}
	bus := &fakeBus{}
	m := NewPlayerManager(g, bus)
	conn := newFakeConn()

	done := make(chan error, 1)
	go func() { done <- m.RunSession(context.Background(), conn, "Ana") }()

	waitFor(t, "session", func() bool { return m.Count() == 1 })
	waitFor(t, "player id", func() bool { return len(conn.written()) == 1 })

	conn.in <- []byte(`{"id":"move","data":{"direction":"north"}}`)
	conn.in <- []byte(`not json`)
	conn.in <- []byte(`{"id":"sleep"}`)

	if !bus.publish("players", []byte("broadcast")) {
		t.Fatalf("broadcast subject not subscribed")
	}
	waitFor(t, "broadcast", func() bool { return len(conn.written()) == 2 })

	close(conn.in)
	if err := <-done; err != nil {
		t.Fatalf("run session: %v", err)
	}

	testutil.AssertEqual(t, "joined", g.joined, []string{"Ana"})
	testutil.AssertEqual(t, "left", len(g.left), 1)
	testutil.AssertEqual(t, "actions", g.actions, []submission{
		{action: "move", data: `{"direction":"north"}`},
		{action: "sleep"},
	}, cmp.AllowUnexported(submission{}))
	testutil.AssertEqual(t, "sessions", m.Count(), 0)
	testutil.AssertEqual(t, "unsubscribed", len(bus.handlers), 0)

	written := conn.written()
	var hello struct {
		Type    string `json:"type"`
		Payload string `json:"payload"`
	}
	if err := json.Unmarshal([]byte(written[0]), &hello); err != nil {
		t.Fatalf("decoding hello: %v", err)
	}
	testutil.AssertEqual(t, "hello type", hello.Type, "playerId")
	testutil.AssertEqual(t, "hello id", hello.Payload, g.left[0])
	testutil.AssertEqual(t, "broadcast", written[1], "broadcast")
}

func TestRunSession_RateLimited(t *testing.T) {
	g := &fakeGame{}
	m := NewPlayerManager(g, &fakeBus{}, WithActionRate(0.001, 2))
	conn := newFakeConn()

	for range 5 {
		conn.in <- []byte(`{"id":"search_zone"}`)
	}
	close(conn.in)

	if err := m.RunSession(context.Background(), conn, "Ana"); err != nil {
		t.Fatalf("run session: %v", err)
	}
	testutil.AssertEqual(t, "accepted", len(g.actions), 2)
}

func TestRunSession_JoinFails(t *testing.T) {
	g := &fakeGame{joinErr: errors.New("full")}
	bus := &fakeBus{}
	m := NewPlayerManager(g, bus)

	err := m.RunSession(context.Background(), newFakeConn(), "")
	testutil.AssertErrorContains(t, err, "joining game")
	testutil.AssertEqual(t, "left", len(g.left), 0)
	testutil.AssertEqual(t, "unsubscribed", len(bus.handlers), 0)
}

func TestStart_ClosesSessions(t *testing.T) {
	m := NewPlayerManager(&fakeGame{}, &fakeBus{})
	conn := newFakeConn()

	go func() { _ = m.RunSession(context.Background(), conn, "Ana") }()
	waitFor(t, "session", func() bool { return m.Count() == 1 })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	testutil.AssertEqual(t, "sessions", m.Count(), 0)
}
