package store

import (
	"context"
	"errors"

	"github.com/kischiman/sanctuary-timeline/internal/model"
)

// ErrNotFound is returned when a lookup targets a row that does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for the timeline.
type Store interface {
	// Residency config
	GetConfig(ctx context.Context) (*model.Config, error)
	SetConfig(ctx context.Context, patch model.ConfigPatch) error

	// Time slots
	ListTimeSlots(ctx context.Context) ([]*model.TimeSlot, error)
	CreateTimeSlot(ctx context.Context, slot *model.TimeSlot) error
	UpdateTimeSlot(ctx context.Context, id string, patch model.TimeSlotPatch) error
	DeleteTimeSlot(ctx context.Context, id string) error

	// Events
	ListEvents(ctx context.Context) ([]*model.Event, error)
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	CreateEvent(ctx context.Context, event *model.Event) error
	UpdateEvent(ctx context.Context, id string, patch model.EventPatch) error
	DeleteEvent(ctx context.Context, id string) error

	// AppState loads the full snapshot sent to newly connected clients.
	AppState(ctx context.Context) (*model.AppState, error)

	// Lifecycle
	Close() error
}
