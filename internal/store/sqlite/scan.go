package sqlite

import (
	"database/sql"
	"errors"

	"github.com/kischiman/sanctuary-timeline/internal/model"
	"github.com/kischiman/sanctuary-timeline/internal/store"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// scanEvent scans a single row into a model.Event.
// The row must contain columns in the order defined by eventColumns.
func scanEvent(row scannable) (*model.Event, error) {
	var e model.Event
	var (
		description sql.NullString
		location    sql.NullString
	)

	err := row.Scan(
		&e.ID,
		&e.Date,
		&e.TimeSlotID,
		&e.Title,
		&description,
		&e.CreatorName,
		&location,
		&e.Color,
		&e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if description.Valid {
		e.Description = &description.String
	}
	if location.Valid {
		e.Location = &location.String
	}
	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]*model.Event, error) {
	events := []*model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func scanTimeSlot(row scannable) (*model.TimeSlot, error) {
	var s model.TimeSlot
	err := row.Scan(&s.ID, &s.Label, &s.StartTime, &s.EndTime, &s.DisplayOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanTimeSlots(rows *sql.Rows) ([]*model.TimeSlot, error) {
	slots := []*model.TimeSlot{}
	for rows.Next() {
		s, err := scanTimeSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// nullStringPtr converts a *string to its SQL representation, with nil
// mapping to NULL.
func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
