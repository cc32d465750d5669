// Package hub provides a thread-safe websocket broadcast hub
// using the idiomatic Go channel-based fan-out pattern.
package hub

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types broadcast by the camera daemon.
const (
	EventResolutionChanged = "resolution_changed"
	EventConfigChanged     = "config_changed"
)

// Message is the JSON envelope broadcast to websocket clients.
type Message struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Time    int64           `json:"time"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage creates an event envelope with the payload JSON-encoded.
func NewMessage(eventType string, payload any) (Message, error) {
	msg := Message{
		ID:   uuid.NewString(),
		Type: eventType,
		Time: time.Now().UnixMilli(),
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return Message{}, err
		}
		msg.Payload = data
	}
	return msg, nil
}

// Bytes serializes the envelope for the wire.
func (m Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMessage decodes an envelope received from the wire.
func ParseMessage(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// Decode unmarshals the payload into v.
func (m Message) Decode(v any) error {
	return json.Unmarshal(m.Payload, v)
}
