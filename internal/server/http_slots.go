package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kischiman/sanctuary-timeline/internal/events"
	"github.com/kischiman/sanctuary-timeline/internal/idgen"
	"github.com/kischiman/sanctuary-timeline/internal/model"
)

// createTimeSlotInput holds the client-supplied fields for a new time slot.
type createTimeSlotInput struct {
	Label        string `json:"label"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	DisplayOrder int    `json:"display_order"`
}

// createTimeSlot validates input, persists a new slot, and publishes a
// time_slot_created notification.
func (s *TimelineServer) createTimeSlot(ctx context.Context, in createTimeSlotInput) (*model.TimeSlot, error) {
	switch {
	case in.Label == "":
		return nil, inputError("label is required")
	case in.StartTime == "":
		return nil, inputError("start_time is required")
	case in.EndTime == "":
		return nil, inputError("end_time is required")
	}

	id, err := idgen.Slot()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	slot := &model.TimeSlot{
		ID:           id,
		Label:        in.Label,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		DisplayOrder: in.DisplayOrder,
	}

	if err := s.store.CreateTimeSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create time slot: %w", err)
	}

	s.publish(ctx, events.TopicTimeSlotCreated, slot)

	return slot, nil
}

// handleCreateTimeSlot handles POST /api/time-slots.
func (s *TimelineServer) handleCreateTimeSlot(w http.ResponseWriter, r *http.Request) {
	var in createTimeSlotInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	slot, err := s.createTimeSlot(r.Context(), in)
	if err != nil {
		var ie inputError
		if errors.As(err, &ie) {
			writeError(w, http.StatusBadRequest, ie.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, slot)
}

// handleListTimeSlots handles GET /api/time-slots.
func (s *TimelineServer) handleListTimeSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := s.store.ListTimeSlots(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list time slots")
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

// handleUpdateTimeSlot handles PUT /api/time-slots/{id}.
// Updating an id that does not exist is a silent no-op.
func (s *TimelineServer) handleUpdateTimeSlot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch model.TimeSlotPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.store.UpdateTimeSlot(r.Context(), id, patch); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update time slot")
		return
	}

	s.publish(r.Context(), events.TopicTimeSlotUpdated, events.Updated(id, patch.Changes()))

	writeSuccess(w)
}

// handleDeleteTimeSlot handles DELETE /api/time-slots/{id}.
// Events referencing the slot are left in place.
func (s *TimelineServer) handleDeleteTimeSlot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.store.DeleteTimeSlot(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete time slot")
		return
	}

	s.publish(r.Context(), events.TopicTimeSlotDeleted, events.Deleted{ID: id})

	writeSuccess(w)
}
