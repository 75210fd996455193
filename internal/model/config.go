package model

// Recognized config keys. Both values are ISO calendar dates (YYYY-MM-DD).
// The start ≤ end invariant is the caller's responsibility; the store does
// not enforce it.
const (
	KeyResidencyStart = "residency_start_date"
	KeyResidencyEnd   = "residency_end_date"
)

// Config is the residency date range shown in the grid.
type Config struct {
	ResidencyStartDate string `json:"residency_start_date"`
	ResidencyEndDate   string `json:"residency_end_date"`
}

// ConfigPatch is a partial update for Config; nil means "don't change".
type ConfigPatch struct {
	ResidencyStartDate *string `json:"residency_start_date,omitempty"`
	ResidencyEndDate   *string `json:"residency_end_date,omitempty"`
}

// IsZero reports whether no field is set.
func (p ConfigPatch) IsZero() bool {
	return p.ResidencyStartDate == nil && p.ResidencyEndDate == nil
}

// Changes returns the set fields keyed by config key.
func (p ConfigPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.ResidencyStartDate != nil {
		changes[KeyResidencyStart] = *p.ResidencyStartDate
	}
	if p.ResidencyEndDate != nil {
		changes[KeyResidencyEnd] = *p.ResidencyEndDate
	}
	return changes
}

// AppState is the full current state, sent wholesale to a newly connected
// subscriber and returned by GET /api/state.
type AppState struct {
	Config    Config      `json:"config"`
	TimeSlots []*TimeSlot `json:"time_slots"`
	Events    []*Event    `json:"events"`
}
