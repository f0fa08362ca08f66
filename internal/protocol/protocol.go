package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-survival/internal/game"
)

// MessageType tags a server to client envelope.
type MessageType string

const (
	TypePlayerID  MessageType = "playerId"
	TypeChat      MessageType = "chat"
	TypeGameState MessageType = "gameState"
)

// ServerMessage is the envelope for everything the server sends.
type ServerMessage struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload"`
}

// ClientMessage is the envelope for one client action.
type ClientMessage struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data,omitempty"`
}

type ChatPayload struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

func encode(t MessageType, payload any) ([]byte, error) {
	data, err := json.Marshal(ServerMessage{Type: t, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("encoding %s message: %w", t, err)
	}
	return data, nil
}

func PlayerID(id string) ([]byte, error) {
	return encode(TypePlayerID, id)
}

func Chat(sender, message string) ([]byte, error) {
	return encode(TypeChat, ChatPayload{Sender: sender, Message: message})
}

// GameState serializes the whole world.
func GameState(w *game.World) ([]byte, error) {
	return encode(TypeGameState, w)
}
