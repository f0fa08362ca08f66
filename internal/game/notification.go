package game

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifyWarning NotificationType = "warning"
	NotifySuccess NotificationType = "success"
)

// Notification is a message queued for a player until the next broadcast.
type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
}
