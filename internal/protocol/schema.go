package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrInvalidMessage = errors.New("invalid message")

const clientSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {"type": "string", "minLength": 1, "maxLength": 64},
		"data": {"type": ["object", "null"]}
	}
}`

var clientMessageSchema = jsonschema.MustCompileString("client.json", clientSchema)

// ParseClient validates raw against the client envelope schema and decodes
// it.
func ParseClient(raw []byte) (ClientMessage, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ClientMessage{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err := clientMessageSchema.Validate(v); err != nil {
		return ClientMessage{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return ClientMessage{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return msg, nil
}
