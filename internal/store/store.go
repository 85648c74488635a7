package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/campfinder/campfinder-server/internal/metrics"
)

const backendName = "badger"

// Badger is the Badger-backed Store.
type Badger struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ Store = (*Badger)(nil)

// New opens (or creates) a Badger database at path. A nil logger disables
// store logging.
func New(path string, logger *slog.Logger) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return &Badger{db: db, logger: logger}, nil
}

// Close gracefully closes the database connection.
func (s *Badger) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// Ping reports whether the database is usable.
func (s *Badger) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return ErrUnavailable
	}
	return s.db.View(func(*badger.Txn) error { return nil })
}

// get returns a copy of the value stored under prefix+householdID, or
// (nil, false) when the key is absent.
func (s *Badger) get(prefix, householdID string) ([]byte, bool, error) {
	key := buildKey(prefix, householdID)
	defer releaseKey(key)

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// set stores a value.
func (s *Badger) set(prefix, householdID string, value []byte) error {
	key := buildKey(prefix, householdID)
	defer releaseKey(key)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// delete removes a key. Deleting a missing key is not an error.
func (s *Badger) delete(prefix, householdID string) error {
	key := buildKey(prefix, householdID)
	defer releaseKey(key)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// observe records the duration and outcome of an operation. Use with a
// named error result: defer s.observe("op", time.Now(), &err).
func (s *Badger) observe(op string, start time.Time, errp *error) {
	err := *errp
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.RecordStoreOperation(backendName, op, time.Since(start), err)
}
