package models

type MessageType string

const (
	MessageText     MessageType = "text"
	MessageLocation MessageType = "location"
	MessageRoute    MessageType = "route"
	MessageAlert    MessageType = "alert"
	MessageCall     MessageType = "call"
)

type MessageLocationMeta struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address" json:"address"`
}

type MessageMetadata struct {
	Location     *MessageLocationMeta `bson:"location,omitempty" json:"location,omitempty"`
	CallDuration *int                 `bson:"call_duration,omitempty" json:"callDuration,omitempty"`
	RouteData    interface{}          `bson:"route_data,omitempty" json:"routeData,omitempty"`
}

// Message — каноническая запись сообщения, хранится один раз.
// Флаг Read вычисляется по получателю при выдаче (см. repository).
type Message struct {
	ID        string           `bson:"_id" json:"id"`
	From      string           `bson:"from" json:"from"` // "admin" или "technician"
	FromID    string           `bson:"from_id" json:"fromId"`
	To        string           `bson:"to" json:"to"`
	Content   string           `bson:"content" json:"content"`
	Timestamp string           `bson:"timestamp" json:"timestamp"`
	Read      bool             `bson:"-" json:"read"`
	Type      MessageType      `bson:"type" json:"type"`
	Metadata  *MessageMetadata `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Conversation — сводка переписки с одним собеседником.
type Conversation struct {
	UserID      string  `json:"userId"`
	LastMessage Message `json:"lastMessage"`
	UnreadCount int     `json:"unreadCount"`
}
