// Package client provides Go client interfaces for the timeline server.
package client

import (
	"context"
	"fmt"

	"github.com/kischiman/sanctuary-timeline/internal/events"
	"github.com/kischiman/sanctuary-timeline/internal/model"
)

// TimelineClient is the interface for talking to a timeline server.
type TimelineClient interface {
	// State returns the full application snapshot: config, time slots
	// and events.
	State(ctx context.Context) (*model.AppState, error)

	// ListEvents returns all events ordered by date, then time slot.
	ListEvents(ctx context.Context) ([]*model.Event, error)

	// GetEvent returns a single event by id. A missing id yields an
	// APIError with status 404.
	GetEvent(ctx context.Context, id string) (*model.Event, error)

	// CreateEvent creates a new event and returns the stored record,
	// including the server-assigned id, color and creation timestamp.
	CreateEvent(ctx context.Context, req CreateEventRequest) (*model.Event, error)

	// UpdateEvent applies a partial update to an event. Updating an id
	// that does not exist is acknowledged without error.
	UpdateEvent(ctx context.Context, id string, patch model.EventPatch) error

	// DeleteEvent removes an event. Deleting an absent id is
	// acknowledged without error.
	DeleteEvent(ctx context.Context, id string) error

	// ListTimeSlots returns all time slots ordered by display order.
	ListTimeSlots(ctx context.Context) ([]*model.TimeSlot, error)

	// CreateTimeSlot creates a new time slot and returns the stored
	// record.
	CreateTimeSlot(ctx context.Context, req CreateTimeSlotRequest) (*model.TimeSlot, error)

	// UpdateTimeSlot applies a partial update to a time slot.
	UpdateTimeSlot(ctx context.Context, id string, patch model.TimeSlotPatch) error

	// DeleteTimeSlot removes a time slot. Events referencing it are
	// left in place.
	DeleteTimeSlot(ctx context.Context, id string) error

	// GetConfig returns the residency window configuration.
	GetConfig(ctx context.Context) (*model.Config, error)

	// SetConfig updates the residency window. Only the keys set in the
	// patch are written.
	SetConfig(ctx context.Context, patch model.ConfigPatch) error

	// Health reports whether the server is reachable and healthy.
	Health(ctx context.Context) error

	// Watch subscribes to the server's live update stream. Messages are
	// delivered on the returned channel until ctx is canceled.
	Watch(ctx context.Context, topics ...string) (<-chan events.Message, error)

	// Close releases any resources held by the client.
	Close() error
}

// CreateEventRequest holds the fields for creating an event.
type CreateEventRequest struct {
	Date        string  `json:"date"`
	TimeSlotID  string  `json:"time_slot_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	CreatorName string  `json:"creator_name"`
	Location    *string `json:"location,omitempty"`
}

// CreateTimeSlotRequest holds the fields for creating a time slot.
type CreateTimeSlotRequest struct {
	Label        string `json:"label"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	DisplayOrder *int   `json:"display_order,omitempty"`
}

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
}
