package server

import (
	"encoding/json"
	"net/http"

	"github.com/kischiman/sanctuary-timeline/internal/events"
	"github.com/kischiman/sanctuary-timeline/internal/model"
)

// handleGetConfig handles GET /api/config.
func (s *TimelineServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.GetConfig(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get config")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleSetConfig handles PUT /api/config. Either date may be omitted; only
// the supplied keys are written, and only they appear in the notification.
func (s *TimelineServer) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	var patch model.ConfigPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.store.SetConfig(r.Context(), patch); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to set config")
		return
	}

	s.publish(r.Context(), events.TopicConfigUpdated, patch.Changes())

	writeSuccess(w)
}
