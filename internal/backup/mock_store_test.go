package backup

import (
	"context"
	"sort"
	"sync"

	"github.com/kischiman/sanctuary-timeline/internal/model"
	"github.com/kischiman/sanctuary-timeline/internal/store"
)

// mockStore is an in-memory store.Store for tests.
type mockStore struct {
	mu     sync.Mutex
	config model.Config
	slots  map[string]*model.TimeSlot
	events map[string]*model.Event
	err    error
}

func newMockStore() *mockStore {
	return &mockStore{
		config: model.Config{
			ResidencyStartDate: "2030-01-01",
			ResidencyEndDate:   "2030-01-15",
		},
		slots:  make(map[string]*model.TimeSlot),
		events: make(map[string]*model.Event),
	}
}

func (m *mockStore) GetConfig(_ context.Context) (*model.Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	cfg := m.config
	return &cfg, nil
}

func (m *mockStore) SetConfig(_ context.Context, patch model.ConfigPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	patch.Apply(&m.config)
	return nil
}

func (m *mockStore) ListTimeSlots(_ context.Context) ([]*model.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	slots := make([]*model.TimeSlot, 0, len(m.slots))
	for _, s := range m.slots {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].DisplayOrder < slots[j].DisplayOrder })
	return slots, nil
}

func (m *mockStore) CreateTimeSlot(_ context.Context, slot *model.TimeSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot.ID] = slot
	return nil
}

func (m *mockStore) UpdateTimeSlot(_ context.Context, id string, patch model.TimeSlotPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.slots[id]; ok {
		patch.Apply(s)
	}
	return nil
}

func (m *mockStore) DeleteTimeSlot(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, id)
	return nil
}

func (m *mockStore) ListEvents(_ context.Context) ([]*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	evs := make([]*model.Event, 0, len(m.events))
	for _, e := range m.events {
		evs = append(evs, e)
	}
	sort.Slice(evs, func(i, j int) bool {
		if evs[i].Date != evs[j].Date {
			return evs[i].Date < evs[j].Date
		}
		return evs[i].TimeSlotID < evs[j].TimeSlotID
	})
	return evs, nil
}

func (m *mockStore) GetEvent(_ context.Context, id string) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return e, nil
}

func (m *mockStore) CreateEvent(_ context.Context, ev *model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[ev.ID] = ev
	return nil
}

func (m *mockStore) UpdateEvent(_ context.Context, id string, patch model.EventPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.events[id]; ok {
		patch.Apply(e)
	}
	return nil
}

func (m *mockStore) DeleteEvent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.events, id)
	return nil
}

func (m *mockStore) AppState(ctx context.Context) (*model.AppState, error) {
	cfg, err := m.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := m.ListTimeSlots(ctx)
	if err != nil {
		return nil, err
	}
	events, err := m.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	return &model.AppState{Config: *cfg, TimeSlots: slots, Events: events}, nil
}

func (m *mockStore) Close() error { return nil }

var _ store.Store = (*mockStore)(nil)
