package kafka

import "time"

// ListChangedEvent represents a favorite-list membership change
type ListChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	Kind      string    `json:"kind"`
	ItemID    int64     `json:"item_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeListItemAdded   = "list.item_added"
	EventTypeListItemRemoved = "list.item_removed"
)

// Kafka topics
const (
	TopicListChanged = "list-changed"
)
