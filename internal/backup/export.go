package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/kischiman/sanctuary-timeline/internal/model"
	"github.com/kischiman/sanctuary-timeline/internal/store"
)

// snapshot is the JSON document written by ExportJSON.
type snapshot struct {
	Version       string            `json:"version"`
	ExportedAt    time.Time         `json:"exported_at"`
	Config        model.Config      `json:"config"`
	TimeSlots     []*model.TimeSlot `json:"time_slots"`
	Events        []*model.Event    `json:"events"`
	TimeSlotCount int               `json:"time_slot_count"`
	EventCount    int               `json:"event_count"`
}

// ExportJSON writes the full timeline state from the store as an indented
// JSON document to w. Time slots keep their display order and events keep
// their date ordering, so successive exports of unchanged data are
// byte-identical except for the timestamp.
func ExportJSON(ctx context.Context, s store.Store, w io.Writer) error {
	state, err := s.AppState(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(snapshot{
		Version:       "1",
		ExportedAt:    time.Now().UTC(),
		Config:        state.Config,
		TimeSlots:     state.TimeSlots,
		Events:        state.Events,
		TimeSlotCount: len(state.TimeSlots),
		EventCount:    len(state.Events),
	}); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return nil
}
