package models

type NotificationType string

const (
	NotifNewMessage   NotificationType = "new_message"
	NotifStatusChange NotificationType = "status_change"
	NotifNewOrder     NotificationType = "new_order"
)

type Notification struct {
	ID        string            `json:"id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
	Read      bool              `json:"read"`
	Data      map[string]string `json:"data,omitempty"`
}
