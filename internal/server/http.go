package server

import (
	"encoding/json"
	"net/http"
)

// NewHTTPHandler returns an http.Handler with all routes registered.
func (s *TimelineServer) NewHTTPHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/state", s.handleGetState)
	mux.HandleFunc("GET /api/events", s.handleListEvents)
	mux.HandleFunc("GET /api/events/{id}", s.handleGetEvent)
	mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	mux.HandleFunc("PUT /api/events/{id}", s.handleUpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", s.handleDeleteEvent)
	mux.HandleFunc("GET /api/time-slots", s.handleListTimeSlots)
	mux.HandleFunc("POST /api/time-slots", s.handleCreateTimeSlot)
	mux.HandleFunc("PUT /api/time-slots/{id}", s.handleUpdateTimeSlot)
	mux.HandleFunc("DELETE /api/time-slots/{id}", s.handleDeleteTimeSlot)
	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("PUT /api/config", s.handleSetConfig)
	mux.HandleFunc("GET /api/stream", s.handleEventStream)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return mux
}

// handleHealth handles GET /api/health.
func (s *TimelineServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGetState handles GET /api/state.
func (s *TimelineServer) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := s.store.AppState(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load state")
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeSuccess writes the {"success":true} acknowledgement used by
// update and delete endpoints.
func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
