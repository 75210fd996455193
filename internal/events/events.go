package events

import "context"

// Topic constants. The same names are used as SSE event names on the live
// stream and as NATS subjects when an external bus is configured, so every
// subscriber sees one vocabulary.
const (
	TopicInitialState = "initial_state"

	TopicEventCreated = "event_created"
	TopicEventUpdated = "event_updated"
	TopicEventDeleted = "event_deleted"

	TopicConfigUpdated = "config_updated"

	TopicTimeSlotCreated = "time_slot_created"
	TopicTimeSlotUpdated = "time_slot_updated"
	TopicTimeSlotDeleted = "time_slot_deleted"

	// TopicAll matches every topic above on a NATS subscription.
	TopicAll = "*"
)

// Deleted is the payload for event_deleted and time_slot_deleted.
type Deleted struct {
	ID string `json:"id"`
}

// Updated builds the payload for event_updated and time_slot_updated:
// the row id merged with only the fields that changed.
func Updated(id string, changes map[string]any) map[string]any {
	payload := make(map[string]any, len(changes)+1)
	for k, v := range changes {
		payload[k] = v
	}
	payload["id"] = id
	return payload
}

// Publisher is the interface for emitting mutation notifications.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
