package model

// TimeSlot is a named recurring daily interval shared across every date in
// the residency (e.g. "Morning"). Display ordering is by DisplayOrder
// ascending; ties are broken arbitrarily.
type TimeSlot struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	DisplayOrder int    `json:"display_order"`
}

// TimeSlotPatch is a partial update for a TimeSlot; nil means "don't change".
type TimeSlotPatch struct {
	Label        *string `json:"label,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

// IsZero reports whether no field is set.
func (p TimeSlotPatch) IsZero() bool {
	return p.Label == nil && p.StartTime == nil && p.EndTime == nil && p.DisplayOrder == nil
}

// Apply merges the set fields into s.
func (p TimeSlotPatch) Apply(s *TimeSlot) {
	if p.Label != nil {
		s.Label = *p.Label
	}
	if p.StartTime != nil {
		s.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		s.EndTime = *p.EndTime
	}
	if p.DisplayOrder != nil {
		s.DisplayOrder = *p.DisplayOrder
	}
}

// Changes returns the set fields keyed by column name.
func (p TimeSlotPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Label != nil {
		changes["label"] = *p.Label
	}
	if p.StartTime != nil {
		changes["start_time"] = *p.StartTime
	}
	if p.EndTime != nil {
		changes["end_time"] = *p.EndTime
	}
	if p.DisplayOrder != nil {
		changes["display_order"] = *p.DisplayOrder
	}
	return changes
}
