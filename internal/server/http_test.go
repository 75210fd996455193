package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/kischiman/sanctuary-timeline/internal/events"
	"github.com/kischiman/sanctuary-timeline/internal/model"
	"github.com/kischiman/sanctuary-timeline/internal/store"
)

var errStoreDown = errors.New("store down")

// mockStore is an in-memory store.Store for handler tests. Setting failWith
// makes every call return that error.
type mockStore struct {
	mu       sync.Mutex
	config   model.Config
	slots    []*model.TimeSlot
	events   map[string]*model.Event
	failWith error
}

var _ store.Store = (*mockStore)(nil)

func newMockStore() *mockStore {
	return &mockStore{
		config: model.Config{
			ResidencyStartDate: "2030-01-01",
			ResidencyEndDate:   "2030-01-15",
		},
		slots: []*model.TimeSlot{
			{ID: "morning", Label: "Morning", StartTime: "07:00", EndTime: "12:00", DisplayOrder: 1},
			{ID: "midday", Label: "Midday", StartTime: "12:00", EndTime: "17:00", DisplayOrder: 2},
			{ID: "evening", Label: "Evening", StartTime: "17:00", EndTime: "22:00", DisplayOrder: 3},
		},
		events: make(map[string]*model.Event),
	}
}

func (m *mockStore) GetConfig(ctx context.Context) (*model.Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	cfg := m.config
	return &cfg, nil
}

func (m *mockStore) SetConfig(ctx context.Context, patch model.ConfigPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if patch.ResidencyStartDate != nil {
		m.config.ResidencyStartDate = *patch.ResidencyStartDate
	}
	if patch.ResidencyEndDate != nil {
		m.config.ResidencyEndDate = *patch.ResidencyEndDate
	}
	return nil
}

func (m *mockStore) ListTimeSlots(ctx context.Context) ([]*model.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return append([]*model.TimeSlot(nil), m.slots...), nil
}

func (m *mockStore) CreateTimeSlot(ctx context.Context, slot *model.TimeSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.slots = append(m.slots, slot)
	return nil
}

func (m *mockStore) UpdateTimeSlot(ctx context.Context, id string, patch model.TimeSlotPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, s := range m.slots {
		if s.ID == id {
			patch.Apply(s)
		}
	}
	return nil
}

func (m *mockStore) DeleteTimeSlot(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	kept := m.slots[:0]
	for _, s := range m.slots {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	m.slots = kept
	return nil
}

func (m *mockStore) ListEvents(ctx context.Context) ([]*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	evts := []*model.Event{}
	for _, e := range m.events {
		evts = append(evts, e)
	}
	return evts, nil
}

func (m *mockStore) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	e, ok := m.events[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return e, nil
}

func (m *mockStore) CreateEvent(ctx context.Context, event *model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockStore) UpdateEvent(ctx context.Context, id string, patch model.EventPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if e, ok := m.events[id]; ok {
		patch.Apply(e)
	}
	return nil
}

func (m *mockStore) DeleteEvent(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.events, id)
	return nil
}

func (m *mockStore) AppState(ctx context.Context) (*model.AppState, error) {
	evts, err := m.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := m.ListTimeSlots(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := m.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &model.AppState{Config: *cfg, TimeSlots: slots, Events: evts}, nil
}

func (m *mockStore) Close() error { return nil }

// newTestServer returns a server wired to a fresh mockStore and a noop
// publisher, plus its HTTP handler.
func newTestServer() (*TimelineServer, *mockStore, http.Handler) {
	ms := newMockStore()
	srv := NewTimelineServer(ms, &events.NoopPublisher{})
	return srv, ms, srv.NewHTTPHandler()
}

// doJSON performs a request with an optional JSON body and returns the recorder.
func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
	return out
}

func TestHandleHealth(t *testing.T) {
	_, _, handler := newTestServer()

	rec := doJSON(t, handler, "GET", "/api/health", nil)
	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

func TestHandleGetState(t *testing.T) {
	_, ms, handler := newTestServer()
	ms.events["ev-1"] = &model.Event{ID: "ev-1", Date: "2030-01-02", TimeSlotID: "morning", Title: "t", CreatorName: "a", Color: "#3B82F6", CreatedAt: 1}

	rec := doJSON(t, handler, "GET", "/api/state", nil)
	requireStatus(t, rec, http.StatusOK)

	state := decodeJSON[model.AppState](t, rec)
	if state.Config.ResidencyStartDate != "2030-01-01" {
		t.Errorf("config start = %q", state.Config.ResidencyStartDate)
	}
	if len(state.TimeSlots) != 3 {
		t.Errorf("slots = %d, want 3", len(state.TimeSlots))
	}
	if len(state.Events) != 1 {
		t.Errorf("events = %d, want 1", len(state.Events))
	}
}

func TestHandleCreateEvent(t *testing.T) {
	_, ms, handler := newTestServer()

	rec := doJSON(t, handler, "POST", "/api/events", map[string]any{
		"date":         "2030-01-02",
		"time_slot_id": "morning",
		"title":        "Yoga",
		"creator_name": "Alice",
		"location":     "Studio B",
	})
	requireStatus(t, rec, http.StatusCreated)

	ev := decodeJSON[model.Event](t, rec)
	if ev.ID == "" || !strings.HasPrefix(ev.ID, "ev-") {
		t.Errorf("ID = %q, want ev- prefix", ev.ID)
	}
	if ev.Color == "" {
		t.Error("Color not assigned")
	}
	if ev.CreatedAt == 0 {
		t.Error("CreatedAt not assigned")
	}
	if ev.Description != nil {
		t.Errorf("Description = %v, want nil", ev.Description)
	}
	if ev.Location == nil || *ev.Location != "Studio B" {
		t.Errorf("Location = %v, want Studio B", ev.Location)
	}

	if _, ok := ms.events[ev.ID]; !ok {
		t.Error("event not persisted")
	}
}

func TestHandleCreateEvent_SameCreatorSameColor(t *testing.T) {
	_, _, handler := newTestServer()

	create := func() model.Event {
		rec := doJSON(t, handler, "POST", "/api/events", map[string]any{
			"date":         "2030-01-02",
			"time_slot_id": "morning",
			"title":        "Session",
			"creator_name": "Alice",
		})
		requireStatus(t, rec, http.StatusCreated)
		return decodeJSON[model.Event](t, rec)
	}

	first := create()
	second := create()
	if first.Color != second.Color {
		t.Errorf("colors differ for same creator: %q vs %q", first.Color, second.Color)
	}
}

func TestHandleCreateEvent_Validation(t *testing.T) {
	_, _, handler := newTestServer()

	base := map[string]any{
		"date":         "2030-01-02",
		"time_slot_id": "morning",
		"title":        "Yoga",
		"creator_name": "Alice",
	}

	for _, missing := range []string{"date", "time_slot_id", "title", "creator_name"} {
		t.Run("Missing_"+missing, func(t *testing.T) {
			body := make(map[string]any, len(base))
			for k, v := range base {
				if k != missing {
					body[k] = v
				}
			}
			rec := doJSON(t, handler, "POST", "/api/events", body)
			requireStatus(t, rec, http.StatusBadRequest)

			resp := decodeJSON[map[string]string](t, rec)
			if !strings.Contains(resp["error"], missing) {
				t.Errorf("error = %q, want mention of %q", resp["error"], missing)
			}
		})
	}
}

func TestHandleCreateEvent_InvalidJSON(t *testing.T) {
	_, _, handler := newTestServer()

	req := httptest.NewRequest("POST", "/api/events", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestHandleListEvents(t *testing.T) {
	_, ms, handler := newTestServer()
	ms.events["ev-1"] = &model.Event{ID: "ev-1", Date: "2030-01-02", TimeSlotID: "morning", Title: "t", CreatorName: "a", Color: "#3B82F6", CreatedAt: 1}

	rec := doJSON(t, handler, "GET", "/api/events", nil)
	requireStatus(t, rec, http.StatusOK)

	evts := decodeJSON[[]*model.Event](t, rec)
	if len(evts) != 1 || evts[0].ID != "ev-1" {
		t.Errorf("events = %+v", evts)
	}
}

func TestHandleGetEvent(t *testing.T) {
	_, ms, handler := newTestServer()
	ms.events["ev-1"] = &model.Event{ID: "ev-1", Date: "2030-01-02", TimeSlotID: "morning", Title: "t", CreatorName: "a", Color: "#3B82F6", CreatedAt: 1}

	rec := doJSON(t, handler, "GET", "/api/events/ev-1", nil)
	requireStatus(t, rec, http.StatusOK)

	ev := decodeJSON[model.Event](t, rec)
	if ev.ID != "ev-1" || ev.Title != "t" {
		t.Errorf("event = %+v", ev)
	}
}

func TestHandleGetEvent_NotFound(t *testing.T) {
	_, _, handler := newTestServer()

	rec := doJSON(t, handler, "GET", "/api/events/ev-missing", nil)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestHandleCreateTimeSlot(t *testing.T) {
	_, ms, handler := newTestServer()

	rec := doJSON(t, handler, "POST", "/api/time-slots", map[string]any{
		"label":         "Night",
		"start_time":    "22:00",
		"end_time":      "23:59",
		"display_order": 4,
	})
	requireStatus(t, rec, http.StatusCreated)

	slot := decodeJSON[model.TimeSlot](t, rec)
	if !strings.HasPrefix(slot.ID, "ts-") {
		t.Errorf("ID = %q, want ts- prefix", slot.ID)
	}
	if slot.DisplayOrder != 4 {
		t.Errorf("DisplayOrder = %d, want 4", slot.DisplayOrder)
	}
	if len(ms.slots) != 4 {
		t.Errorf("slots = %d, want 4", len(ms.slots))
	}
}

func TestHandleCreateTimeSlot_Validation(t *testing.T) {
	_, _, handler := newTestServer()

	rec := doJSON(t, handler, "POST", "/api/time-slots", map[string]any{
		"label": "Night",
	})
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestHandleListTimeSlots(t *testing.T) {
	_, _, handler := newTestServer()

	rec := doJSON(t, handler, "GET", "/api/time-slots", nil)
	requireStatus(t, rec, http.StatusOK)

	slots := decodeJSON[[]*model.TimeSlot](t, rec)
	if len(slots) != 3 {
		t.Errorf("slots = %d, want 3", len(slots))
	}
}

func TestHandleGetSetConfig(t *testing.T) {
	_, ms, handler := newTestServer()

	rec := doJSON(t, handler, "GET", "/api/config", nil)
	requireStatus(t, rec, http.StatusOK)
	cfg := decodeJSON[model.Config](t, rec)
	if cfg.ResidencyEndDate != "2030-01-15" {
		t.Errorf("end date = %q", cfg.ResidencyEndDate)
	}

	rec = doJSON(t, handler, "PUT", "/api/config", map[string]any{
		"residency_end_date": "2030-02-01",
	})
	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]bool](t, rec)
	if !resp["success"] {
		t.Error("expected success acknowledgement")
	}

	if ms.config.ResidencyEndDate != "2030-02-01" {
		t.Errorf("end date = %q, want 2030-02-01", ms.config.ResidencyEndDate)
	}
	if ms.config.ResidencyStartDate != "2030-01-01" {
		t.Errorf("start date changed: %q", ms.config.ResidencyStartDate)
	}
}

func TestHandleHTTPErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"CreateEventStoreFailure", "POST", "/api/events", map[string]any{
			"date": "2030-01-02", "time_slot_id": "morning", "title": "t", "creator_name": "a",
		}, http.StatusInternalServerError},
		{"ListEventsStoreFailure", "GET", "/api/events", nil, http.StatusInternalServerError},
		{"StateStoreFailure", "GET", "/api/state", nil, http.StatusInternalServerError},
		{"ConfigStoreFailure", "GET", "/api/config", nil, http.StatusInternalServerError},
		{"UpdateEventStoreFailure", "PUT", "/api/events/ev-1", map[string]any{"title": "x"}, http.StatusInternalServerError},
		{"DeleteSlotStoreFailure", "DELETE", "/api/time-slots/morning", nil, http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, ms, handler := newTestServer()
			ms.failWith = errStoreDown

			rec := doJSON(t, handler, tc.method, tc.path, tc.body)
			requireStatus(t, rec, tc.want)
		})
	}
}
