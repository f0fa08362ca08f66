package protocol

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/game"
	"github.com/pixil98/go-survival/internal/rules"
	"github.com/pixil98/go-testutil"
)

func TestParseClient(t *testing.T) {
	tests := map[string]struct {
		raw     string
		want    ClientMessage
		wantErr bool
	}{
		"with data": {
			raw:  `{"id":"move","data":{"direction":"north"}}`,
			want: ClientMessage{ID: "move", Data: json.RawMessage(`{"direction":"north"}`)},
		},
		"without data": {
			raw:  `{"id":"search_zone"}`,
			want: ClientMessage{ID: "search_zone"},
		},
		"null data": {
			raw:  `{"id":"sleep","data":null}`,
			want: ClientMessage{ID: "sleep", Data: json.RawMessage(`null`)},
		},
		"missing id": {
			raw:     `{"data":{}}`,
			wantErr: true,
		},
		"empty id": {
			raw:     `{"id":""}`,
			wantErr: true,
		},
		"numeric id": {
			raw:     `{"id":3}`,
			wantErr: true,
		},
		"array data": {
			raw:     `{"id":"move","data":[1]}`,
			wantErr: true,
		},
		"not json": {
			raw:     `move north`,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseClient([]byte(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMessage) {
					t.Fatalf("expected ErrInvalidMessage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "message", got, tt.want)
		})
	}
}

func TestServerMessages(t *testing.T) {
	data, err := PlayerID("abc")
	if err != nil {
		t.Fatalf("player id: %v", err)
	}
	testutil.AssertEqual(t, "player id", string(data), `{"type":"playerId","payload":"abc"}`)

	data, err = Chat("Ana", "hello")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	testutil.AssertEqual(t, "chat", string(data), `{"type":"chat","payload":{"sender":"Ana","message":"hello"}}`)
}

func TestGameState(t *testing.T) {
	cat := catalog.Default()
	r := rules.Default()
	grid := [][]*game.Tile{{game.NewTile(0, 0, cat.Tile(catalog.TilePlains))}}
	w := game.NewWorld(grid, cat, r)

	data, err := GameState(w)
	if err != nil {
		t.Fatalf("game state: %v", err)
	}

	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	testutil.AssertEqual(t, "type", msg.Type, "gameState")
	testutil.AssertEqual(t, "day", msg.Payload["day"], float64(1))
	if _, ok := msg.Payload["revealedTiles"].([]any); !ok {
		t.Errorf("revealedTiles should serialize as an array, got %T", msg.Payload["revealedTiles"])
	}
}
