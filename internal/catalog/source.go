package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/metrics"
	"github.com/campfinder/campfinder-server/internal/watcher"
)

// ErrInvalid is returned when a catalog fails its referential checks.
var ErrInvalid = errors.New("catalog has problems")

// Snapshot is an immutable view of the active catalog. Callers must not
// modify anything reachable from it.
type Snapshot struct {
	Catalog       *Catalog
	Districts     map[string]domain.District
	Subcategories map[string]domain.Subcategory
	Adjacency     domain.AdjacencyMap
	LoadedAt      time.Time
}

// Entries returns the catalog entries.
func (s *Snapshot) Entries() []domain.CatalogEntry { return s.Catalog.Entries }

// Categories returns the categories in display order.
func (s *Snapshot) Categories() []domain.Category { return s.Catalog.Categories }

// Entry looks up an entry by id.
func (s *Snapshot) Entry(id string) (domain.CatalogEntry, bool) {
	for _, e := range s.Catalog.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.CatalogEntry{}, false
}

// Source serves the active catalog snapshot. The embedded catalog is used
// when no path is configured; otherwise the file is loaded and may be
// reloaded. Districts and adjacency come from the first load only.
type Source struct {
	path   string
	logger *slog.Logger

	current atomic.Pointer[Snapshot]
	mu      sync.Mutex // serializes reloads
}

// NewSource loads the initial snapshot. An empty path selects the embedded
// catalog.
func NewSource(path string, logger *slog.Logger) (*Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Source{path: path, logger: logger}

	c, err := s.read()
	if err != nil {
		metrics.RecordCatalogReload(0, err)
		return nil, err
	}

	s.current.Store(&Snapshot{
		Catalog:       c,
		Districts:     c.DistrictMap(),
		Subcategories: c.SubcategoryMap(),
		Adjacency:     c.AdjacencyMap(),
		LoadedAt:      time.Now(),
	})
	metrics.RecordCatalogReload(len(c.Entries), nil)
	logger.Info("catalog loaded", "source", s.describe(), "entries", len(c.Entries))
	return s, nil
}

// Current returns the active snapshot.
func (s *Source) Current() *Snapshot {
	return s.current.Load()
}

// Path returns the configured override file, empty for the embedded catalog.
func (s *Source) Path() string {
	return s.path
}

// Reload re-reads the catalog file. A catalog that fails to parse or check
// is rejected and the previous snapshot stays active.
func (s *Source) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.read()
	if err != nil {
		metrics.RecordCatalogReload(0, err)
		s.logger.Warn("catalog reload rejected", "source", s.describe(), "error", err)
		return err
	}

	prev := s.current.Load()
	next := &Snapshot{
		Catalog:       c,
		Districts:     prev.Districts,
		Subcategories: c.SubcategoryMap(),
		Adjacency:     prev.Adjacency,
		LoadedAt:      time.Now(),
	}
	// The served document keeps the original district table as well.
	cp := *c
	cp.Districts = prev.Catalog.Districts
	cp.Adjacency = prev.Catalog.Adjacency
	next.Catalog = &cp

	s.current.Store(next)
	metrics.RecordCatalogReload(len(c.Entries), nil)
	s.logger.Info("catalog reloaded", "source", s.describe(), "entries", len(c.Entries))
	return nil
}

// WatchFile reloads the catalog whenever the override file settles after a
// change. It blocks until ctx is cancelled. Without an override file it
// returns immediately.
func (s *Source) WatchFile(ctx context.Context, opts watcher.Options) error {
	if s.path == "" {
		return nil
	}

	w, err := watcher.New(s.logger, opts)
	if err != nil {
		return err
	}
	defer w.Stop() //nolint:errcheck // best effort on shutdown

	if err := w.Watch(s.path); err != nil {
		return err
	}

	go w.Start(ctx) //nolint:errcheck // Start only returns nil

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-w.Events():
			if ev.Type == watcher.EventRemoved {
				s.logger.Warn("catalog file removed, keeping current catalog", "path", ev.Path)
				continue
			}
			_ = s.Reload() //nolint:errcheck // logged and counted by Reload
		case err := <-w.Errors():
			s.logger.Warn("catalog watcher error", "error", err)
		}
	}
}

func (s *Source) read() (*Catalog, error) {
	var (
		c   *Catalog
		err error
	)
	if s.path == "" {
		c, err = Default()
	} else {
		c, err = LoadFile(s.path)
	}
	if err != nil {
		return nil, err
	}

	if problems := c.Check(); len(problems) > 0 {
		lines := make([]string, 0, len(problems))
		for _, p := range problems {
			lines = append(lines, p.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(lines, "; "))
	}
	return c, nil
}

func (s *Source) describe() string {
	if s.path == "" {
		return "embedded"
	}
	return s.path
}
