package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/kischiman/sanctuary-timeline/internal/model"
)

// eventColumns is the column list used for SELECT statements on the events table.
const eventColumns = `id, date, time_slot_id, title, description, creator_name, location, color, created_at`

// slotColumns is the column list used for SELECT statements on the time_slots table.
const slotColumns = `id, label, start_time, end_time, display_order`

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func queryGetConfig(ctx context.Context, db executor) (*model.Config, error) {
	rows, err := db.QueryContext(ctx, `SELECT key, value FROM config`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cfg model.Config
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		switch key {
		case model.KeyResidencyStart:
			cfg.ResidencyStartDate = value
		case model.KeyResidencyEnd:
			cfg.ResidencyEndDate = value
		}
	}
	return &cfg, rows.Err()
}

func querySetConfig(ctx context.Context, db executor, patch model.ConfigPatch) error {
	upsert := `INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if patch.ResidencyStartDate != nil {
		if _, err := db.ExecContext(ctx, upsert, model.KeyResidencyStart, *patch.ResidencyStartDate); err != nil {
			return err
		}
	}
	if patch.ResidencyEndDate != nil {
		if _, err := db.ExecContext(ctx, upsert, model.KeyResidencyEnd, *patch.ResidencyEndDate); err != nil {
			return err
		}
	}
	return nil
}

func queryListTimeSlots(ctx context.Context, db executor) ([]*model.TimeSlot, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+slotColumns+` FROM time_slots ORDER BY display_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTimeSlots(rows)
}

func queryCreateTimeSlot(ctx context.Context, db executor, s *model.TimeSlot) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO time_slots (id, label, start_time, end_time, display_order)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID,
		s.Label,
		s.StartTime,
		s.EndTime,
		s.DisplayOrder,
	)
	return err
}

func queryUpdateTimeSlot(ctx context.Context, db executor, id string, patch model.TimeSlotPatch) error {
	var (
		sets []string
		args []any
	)
	if patch.Label != nil {
		sets = append(sets, "label = ?")
		args = append(args, *patch.Label)
	}
	if patch.StartTime != nil {
		sets = append(sets, "start_time = ?")
		args = append(args, *patch.StartTime)
	}
	if patch.EndTime != nil {
		sets = append(sets, "end_time = ?")
		args = append(args, *patch.EndTime)
	}
	if patch.DisplayOrder != nil {
		sets = append(sets, "display_order = ?")
		args = append(args, *patch.DisplayOrder)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	// RowsAffected is not inspected: updating an absent id is a no-op.
	_, err := db.ExecContext(ctx, `UPDATE time_slots SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

func queryDeleteTimeSlot(ctx context.Context, db executor, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM time_slots WHERE id = ?`, id)
	return err
}

func queryListEvents(ctx context.Context, db executor) ([]*model.Event, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date, time_slot_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func queryGetEvent(ctx context.Context, db executor, id string) (*model.Event, error) {
	row := db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return scanEvent(row)
}

func queryCreateEvent(ctx context.Context, db executor, e *model.Event) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO events (id, date, time_slot_id, title, description, creator_name, location, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Date,
		e.TimeSlotID,
		e.Title,
		nullStringPtr(e.Description),
		e.CreatorName,
		nullStringPtr(e.Location),
		e.Color,
		e.CreatedAt,
	)
	return err
}

func queryUpdateEvent(ctx context.Context, db executor, id string, patch model.EventPatch) error {
	var (
		sets []string
		args []any
	)
	if patch.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.TimeSlotID != nil {
		sets = append(sets, "time_slot_id = ?")
		args = append(args, *patch.TimeSlotID)
	}
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description.Set {
		sets = append(sets, "description = ?")
		args = append(args, nullStringPtr(patch.Description.Ptr()))
	}
	if patch.CreatorName != nil {
		sets = append(sets, "creator_name = ?")
		args = append(args, *patch.CreatorName)
	}
	if patch.Location.Set {
		sets = append(sets, "location = ?")
		args = append(args, nullStringPtr(patch.Location.Ptr()))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	_, err := db.ExecContext(ctx, `UPDATE events SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

func queryDeleteEvent(ctx context.Context, db executor, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}
