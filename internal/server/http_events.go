package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kischiman/sanctuary-timeline/internal/events"
	"github.com/kischiman/sanctuary-timeline/internal/idgen"
	"github.com/kischiman/sanctuary-timeline/internal/model"
	"github.com/kischiman/sanctuary-timeline/internal/palette"
	"github.com/kischiman/sanctuary-timeline/internal/store"
)

// createEventInput holds the client-supplied fields for a new event.
// Color and creation time are assigned server-side.
type createEventInput struct {
	Date        string  `json:"date"`
	TimeSlotID  string  `json:"time_slot_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	CreatorName string  `json:"creator_name"`
	Location    *string `json:"location"`
}

// createEvent validates input, persists a new event, and publishes an
// event_created notification. Returns inputError for validation failures.
func (s *TimelineServer) createEvent(ctx context.Context, in createEventInput) (*model.Event, error) {
	switch {
	case in.Date == "":
		return nil, inputError("date is required")
	case in.TimeSlotID == "":
		return nil, inputError("time_slot_id is required")
	case in.Title == "":
		return nil, inputError("title is required")
	case in.CreatorName == "":
		return nil, inputError("creator_name is required")
	}

	id, err := idgen.Event()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	event := &model.Event{
		ID:          id,
		Date:        in.Date,
		TimeSlotID:  in.TimeSlotID,
		Title:       in.Title,
		Description: in.Description,
		CreatorName: in.CreatorName,
		Location:    in.Location,
		Color:       palette.ColorFor(in.CreatorName),
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.publish(ctx, events.TopicEventCreated, event)

	return event, nil
}

// handleCreateEvent handles POST /api/events.
func (s *TimelineServer) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var in createEventInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	event, err := s.createEvent(r.Context(), in)
	if err != nil {
		var ie inputError
		if errors.As(err, &ie) {
			writeError(w, http.StatusBadRequest, ie.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// handleListEvents handles GET /api/events.
func (s *TimelineServer) handleListEvents(w http.ResponseWriter, r *http.Request) {
	evts, err := s.store.ListEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, evts)
}

// handleGetEvent handles GET /api/events/{id}.
func (s *TimelineServer) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.store.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
		} else {
			writeError(w, http.StatusInternalServerError, "failed to load event")
		}
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// handleUpdateEvent handles PUT /api/events/{id}.
// Updating an id that does not exist is a silent no-op; the notification is
// emitted either way.
func (s *TimelineServer) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch model.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.store.UpdateEvent(r.Context(), id, patch); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update event")
		return
	}

	s.publish(r.Context(), events.TopicEventUpdated, events.Updated(id, patch.Changes()))

	writeSuccess(w)
}

// handleDeleteEvent handles DELETE /api/events/{id}.
func (s *TimelineServer) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.store.DeleteEvent(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}

	s.publish(r.Context(), events.TopicEventDeleted, events.Deleted{ID: id})

	writeSuccess(w)
}
