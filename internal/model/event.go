package model

// Event is a single scheduled entry in one grid cell (date × time slot).
// Description and Location are nullable; a nil pointer is stored and
// serialized as null, matching what clients send for omitted fields.
type Event struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	TimeSlotID  string  `json:"time_slot_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	CreatorName string  `json:"creator_name"`
	Location    *string `json:"location"`
	Color       string  `json:"color"`      // derived from CreatorName, never user-set
	CreatedAt   int64   `json:"created_at"` // epoch milliseconds, server-assigned
}

// EventPatch is a partial update for an Event. Pointer fields indicate
// optionality: nil means "don't change". The nullable columns use Opt so
// an explicit JSON null clears the stored value instead of being read as
// "not sent". Color and CreatedAt are server-owned and deliberately
// absent.
type EventPatch struct {
	Date        *string     `json:"date,omitempty"`
	TimeSlotID  *string     `json:"time_slot_id,omitempty"`
	Title       *string     `json:"title,omitempty"`
	Description Opt[string] `json:"description,omitzero"`
	CreatorName *string     `json:"creator_name,omitempty"`
	Location    Opt[string] `json:"location,omitzero"`
}

// IsZero reports whether no field is set.
func (p EventPatch) IsZero() bool {
	return p.Date == nil && p.TimeSlotID == nil && p.Title == nil &&
		!p.Description.Set && p.CreatorName == nil && !p.Location.Set
}

// Apply merges the set fields into e.
func (p EventPatch) Apply(e *Event) {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.TimeSlotID != nil {
		e.TimeSlotID = *p.TimeSlotID
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description.Set {
		e.Description = p.Description.Ptr()
	}
	if p.CreatorName != nil {
		e.CreatorName = *p.CreatorName
	}
	if p.Location.Set {
		e.Location = p.Location.Ptr()
	}
}

// Changes returns the set fields keyed by column name, for broadcast
// payloads of the form {id, ...changed fields}.
func (p EventPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Date != nil {
		changes["date"] = *p.Date
	}
	if p.TimeSlotID != nil {
		changes["time_slot_id"] = *p.TimeSlotID
	}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description.Set {
		changes["description"] = p.Description.Ptr()
	}
	if p.CreatorName != nil {
		changes["creator_name"] = *p.CreatorName
	}
	if p.Location.Set {
		changes["location"] = p.Location.Ptr()
	}
	return changes
}
