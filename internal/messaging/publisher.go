package messaging

import "fmt"

// BroadcastSubject carries messages meant for every connection.
const BroadcastSubject = "players"

// PlayerSubject is the subject a single player's connection listens on.
func PlayerSubject(playerID string) string {
	return fmt.Sprintf("player-%s", playerID)
}

type Bus interface {
	Publish(subject string, data []byte) error
}

// NatsPublisher publishes messages to individual player NATS channels.
type NatsPublisher struct {
	bus Bus
}

// NewNatsPublisher wraps a bus for per-player message delivery.
func NewNatsPublisher(bus Bus) *NatsPublisher {
	return &NatsPublisher{bus: bus}
}

func (p *NatsPublisher) PublishToPlayer(playerID string, data []byte) error {
	return p.bus.Publish(PlayerSubject(playerID), data)
}

func (p *NatsPublisher) PublishToAll(data []byte) error {
	return p.bus.Publish(BroadcastSubject, data)
}
