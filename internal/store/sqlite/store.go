// Package sqlite implements store.Store on a single SQLite file. Each
// household document is one row of the kv table.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/metrics"
	"github.com/campfinder/campfinder-server/internal/store"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const backendName = "sqlite"

// Namespaces of the kv table.
const (
	nsProfile  = "profile"
	nsSchedule = "schedule"
	nsHowto    = "howto"
)

// Store provides SQLite-backed persistence.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

// Open creates a new SQLite store at the given path.
// It configures WAL mode, sets pragmas, and creates the schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	if logger != nil {
		logger.Info("SQLite database opened successfully", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.PingContext(ctx); err != nil {
		return store.ErrUnavailable.WithCause(err)
	}
	return nil
}

// GetProfile retrieves a household's stored profile.
func (s *Store) GetProfile(ctx context.Context, householdID string) (_ *domain.Profile, err error) {
	if err := begin(ctx, householdID); err != nil {
		return nil, err
	}
	defer observe("get_profile", time.Now(), &err)

	data, ok, err := s.get(ctx, nsProfile, householdID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.ErrProfileNotFound
	}

	p, decodeErr := store.DecodeProfile(data)
	if decodeErr != nil {
		store.ReportMalformed(s.logger, store.KindProfile, householdID, decodeErr)
		return nil, store.ErrProfileNotFound
	}
	return p, nil
}

// SaveProfile creates or replaces a household's profile.
func (s *Store) SaveProfile(ctx context.Context, householdID string, p *domain.Profile) (err error) {
	if err := begin(ctx, householdID); err != nil {
		return err
	}
	defer observe("save_profile", time.Now(), &err)

	data, err := store.EncodeProfile(p)
	if err != nil {
		return err
	}
	return s.set(ctx, nsProfile, householdID, data)
}

// DeleteProfile removes a household's profile.
func (s *Store) DeleteProfile(ctx context.Context, householdID string) (err error) {
	if err := begin(ctx, householdID); err != nil {
		return err
	}
	defer observe("delete_profile", time.Now(), &err)

	return s.delete(ctx, nsProfile, householdID)
}

// GetSchedule retrieves a household's schedule, empty when absent.
func (s *Store) GetSchedule(ctx context.Context, householdID string) (_ domain.Schedule, err error) {
	if err := begin(ctx, householdID); err != nil {
		return nil, err
	}
	defer observe("get_schedule", time.Now(), &err)

	data, ok, err := s.get(ctx, nsSchedule, householdID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.Schedule{}, nil
	}

	sched, decodeErr := store.DecodeSchedule(data)
	if decodeErr != nil {
		store.ReportMalformed(s.logger, store.KindSchedule, householdID, decodeErr)
	}
	return sched, nil
}

// SaveSchedule replaces a household's schedule. An empty schedule deletes
// the row.
func (s *Store) SaveSchedule(ctx context.Context, householdID string, sched domain.Schedule) (err error) {
	if err := begin(ctx, householdID); err != nil {
		return err
	}
	defer observe("save_schedule", time.Now(), &err)

	if len(sched.Wire()) == 0 {
		return s.delete(ctx, nsSchedule, householdID)
	}
	data, err := store.EncodeSchedule(sched)
	if err != nil {
		return err
	}
	return s.set(ctx, nsSchedule, householdID, data)
}

// DeleteSchedule removes a household's schedule.
func (s *Store) DeleteSchedule(ctx context.Context, householdID string) (err error) {
	if err := begin(ctx, householdID); err != nil {
		return err
	}
	defer observe("delete_schedule", time.Now(), &err)

	return s.delete(ctx, nsSchedule, householdID)
}

// HowtoSeen reports whether the household dismissed the how-to banner.
func (s *Store) HowtoSeen(ctx context.Context, householdID string) (_ bool, err error) {
	if err := begin(ctx, householdID); err != nil {
		return false, err
	}
	defer observe("get_howto", time.Now(), &err)

	_, ok, err := s.get(ctx, nsHowto, householdID)
	return ok, err
}

// MarkHowtoSeen sets or clears the how-to flag.
func (s *Store) MarkHowtoSeen(ctx context.Context, householdID string, seen bool) (err error) {
	if err := begin(ctx, householdID); err != nil {
		return err
	}
	defer observe("set_howto", time.Now(), &err)

	if !seen {
		return s.delete(ctx, nsHowto, householdID)
	}
	return s.set(ctx, nsHowto, householdID, []byte("1"))
}

// DeleteHousehold removes every row of a household.
func (s *Store) DeleteHousehold(ctx context.Context, householdID string) (err error) {
	if err := begin(ctx, householdID); err != nil {
		return err
	}
	defer observe("delete_household", time.Now(), &err)

	_, err = s.db.ExecContext(ctx, `DELETE FROM kv WHERE household_id = ?`, householdID)
	return err
}

// ListHouseholds returns every household with at least one row, sorted by id.
func (s *Store) ListHouseholds(ctx context.Context) (_ []store.Household, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer observe("list_households", time.Now(), &err)

	rows, err := s.db.QueryContext(ctx, `
		SELECT household_id,
		       COALESCE(SUM(CASE WHEN namespace = 'profile' THEN length(value) END), 0),
		       COALESCE(SUM(CASE WHEN namespace = 'schedule' THEN length(value) END), 0),
		       MAX(namespace = 'howto')
		FROM kv
		GROUP BY household_id
		ORDER BY household_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	households := []store.Household{}
	for rows.Next() {
		var h store.Household
		if err := rows.Scan(&h.ID, &h.ProfileBytes, &h.ScheduleBytes, &h.HowtoSeen); err != nil {
			return nil, err
		}
		households = append(households, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return households, nil
}

func (s *Store) get(ctx context.Context, namespace, householdID string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE namespace = ? AND household_id = ?`,
		namespace, householdID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *Store) set(ctx context.Context, namespace, householdID string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (namespace, household_id, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (namespace, household_id) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		namespace, householdID, value, formatTime(time.Now()),
	)
	return err
}

func (s *Store) delete(ctx context.Context, namespace, householdID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM kv WHERE namespace = ? AND household_id = ?`, namespace, householdID)
	return err
}

// begin performs the checks every household operation starts with.
func begin(ctx context.Context, householdID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return store.CheckHousehold(householdID)
}

func observe(op string, start time.Time, errp *error) {
	err := *errp
	if errors.Is(err, store.ErrNotFound) {
		err = nil
	}
	metrics.RecordStoreOperation(backendName, op, time.Since(start), err)
}

// formatTime formats a time.Time to RFC3339Nano for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
