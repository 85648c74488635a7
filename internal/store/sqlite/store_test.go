package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/store"
	"github.com/campfinder/campfinder-server/internal/store/storetest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := Open(dbPath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen(t *testing.T) {
	s := newTestStore(t)

	var journalMode string
	require.NoError(t, s.db.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)

	var name string
	err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&name)
	require.NoError(t, err, "kv table should exist")
}

func TestOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s, err := Open(dbPath, logger)
	require.NoError(t, err)
	require.NoError(t, s.SaveProfile(context.Background(), "hh-1", storetest.SampleProfile()))
	require.NoError(t, s.Close())

	// Re-open should work (schema is idempotent) and keep data.
	s2, err := Open(dbPath, logger)
	require.NoError(t, err)
	defer s2.Close()

	p, err := s2.GetProfile(context.Background(), "hh-1")
	require.NoError(t, err)
	assert.Equal(t, "bsd405", p.District)
}

func TestContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return newTestStore(t)
	})
}

func TestMalformedDocuments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.set(ctx, nsProfile, "hh-1", []byte(`{"kids":`)))
	_, err := s.GetProfile(ctx, "hh-1")
	assert.ErrorIs(t, err, store.ErrProfileNotFound)

	require.NoError(t, s.set(ctx, nsSchedule, "hh-1", []byte(`{"a::w01":[1],"b::w02":{}}`)))
	sched, err := s.GetSchedule(ctx, "hh-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Schedule{{EntryID: "a", WeekID: "w01"}: {1}}, sched)
}

func TestUpsertUpdatesTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.MarkHowtoSeen(ctx, "hh-1", true))
	require.NoError(t, s.MarkHowtoSeen(ctx, "hh-1", true))

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM kv WHERE household_id = 'hh-1'`).Scan(&count))
	assert.Equal(t, 1, count)
}
