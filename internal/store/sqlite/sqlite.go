// Package sqlite implements the store.Store interface backed by SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/kischiman/sanctuary-timeline/internal/model"
	"github.com/kischiman/sanctuary-timeline/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DefaultResidencyDays is the span seeded into a fresh database when no
// residency window has been configured yet.
const DefaultResidencyDays = 14

// SQLiteStore implements store.Store backed by a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check that SQLiteStore implements store.Store.
var _ store.Store = (*SQLiteStore)(nil)

// New opens (or creates) the SQLite database at the given path, runs any
// pending migrations, and seeds default config and time slots into a fresh
// database. Use ":memory:" for an ephemeral in-memory database.
func New(path string) (*SQLiteStore, error) {
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	if path == ":memory:" {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection sidesteps SQLITE_BUSY under concurrent mutations
	// and keeps an in-memory database alive for the store's lifetime.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.seedDefaults(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	return s, nil
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// seedDefaults installs the residency window and the three standard time
// slots into a database that does not have them yet. Existing rows are
// never touched, so restarting the server preserves all edits.
func (s *SQLiteStore) seedDefaults(ctx context.Context) error {
	cfg, err := queryGetConfig(ctx, s.db)
	if err != nil {
		return err
	}
	if cfg.ResidencyStartDate == "" || cfg.ResidencyEndDate == "" {
		today := time.Now()
		start := today.Format("2006-01-02")
		end := today.AddDate(0, 0, DefaultResidencyDays).Format("2006-01-02")
		patch := model.ConfigPatch{ResidencyStartDate: &start, ResidencyEndDate: &end}
		if err := querySetConfig(ctx, s.db, patch); err != nil {
			return err
		}
	}

	slots, err := queryListTimeSlots(ctx, s.db)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		for _, slot := range defaultTimeSlots() {
			if err := queryCreateTimeSlot(ctx, s.db, slot); err != nil {
				return err
			}
		}
	}

	return nil
}

func defaultTimeSlots() []*model.TimeSlot {
	return []*model.TimeSlot{
		{ID: "morning", Label: "Morning", StartTime: "07:00", EndTime: "12:00", DisplayOrder: 1},
		{ID: "midday", Label: "Midday", StartTime: "12:00", EndTime: "17:00", DisplayOrder: 2},
		{ID: "evening", Label: "Evening", StartTime: "17:00", EndTime: "22:00", DisplayOrder: 3},
	}
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) GetConfig(ctx context.Context) (*model.Config, error) {
	return queryGetConfig(ctx, s.db)
}

// SetConfig upserts the configured keys inside a single transaction so a
// partial write can never leave the residency window half updated.
func (s *SQLiteStore) SetConfig(ctx context.Context, patch model.ConfigPatch) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := querySetConfig(ctx, tx, patch); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListTimeSlots(ctx context.Context) ([]*model.TimeSlot, error) {
	return queryListTimeSlots(ctx, s.db)
}

func (s *SQLiteStore) CreateTimeSlot(ctx context.Context, slot *model.TimeSlot) error {
	return queryCreateTimeSlot(ctx, s.db, slot)
}

func (s *SQLiteStore) UpdateTimeSlot(ctx context.Context, id string, patch model.TimeSlotPatch) error {
	return queryUpdateTimeSlot(ctx, s.db, id, patch)
}

func (s *SQLiteStore) DeleteTimeSlot(ctx context.Context, id string) error {
	return queryDeleteTimeSlot(ctx, s.db, id)
}

func (s *SQLiteStore) ListEvents(ctx context.Context) ([]*model.Event, error) {
	return queryListEvents(ctx, s.db)
}

func (s *SQLiteStore) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	return queryGetEvent(ctx, s.db, id)
}

func (s *SQLiteStore) CreateEvent(ctx context.Context, event *model.Event) error {
	return queryCreateEvent(ctx, s.db, event)
}

func (s *SQLiteStore) UpdateEvent(ctx context.Context, id string, patch model.EventPatch) error {
	return queryUpdateEvent(ctx, s.db, id, patch)
}

func (s *SQLiteStore) DeleteEvent(ctx context.Context, id string) error {
	return queryDeleteEvent(ctx, s.db, id)
}

// AppState loads the full snapshot sent to newly connected clients.
func (s *SQLiteStore) AppState(ctx context.Context) (*model.AppState, error) {
	cfg, err := queryGetConfig(ctx, s.db)
	if err != nil {
		return nil, err
	}
	slots, err := queryListTimeSlots(ctx, s.db)
	if err != nil {
		return nil, err
	}
	events, err := queryListEvents(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return &model.AppState{Config: *cfg, TimeSlots: slots, Events: events}, nil
}
