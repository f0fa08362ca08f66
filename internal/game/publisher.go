package game

// Publisher delivers serialized messages to connected players.
type Publisher interface {
	PublishToPlayer(playerID string, data []byte) error
	PublishToAll(data []byte) error
}
