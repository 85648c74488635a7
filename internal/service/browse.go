package service

import (
	"context"
	"log/slog"

	"github.com/campfinder/campfinder-server/internal/catalog"
	"github.com/campfinder/campfinder-server/internal/domain"
	domainerrors "github.com/campfinder/campfinder-server/internal/errors"
	"github.com/campfinder/campfinder-server/internal/planner"
	"github.com/campfinder/campfinder-server/internal/store"
)

// BrowseResult is a browse view plus the card decorations of every entry
// it shows, keyed by entry id.
type BrowseResult struct {
	planner.BrowseView
	Cards map[string]planner.Card `json:"cards"`
}

// BrowseService computes the catalog views of a household.
type BrowseService struct {
	store   store.Store
	catalog *catalog.Source
	locks   *Locks
	logger  *slog.Logger
}

// NewBrowseService creates a new browse service.
func NewBrowseService(st store.Store, cat *catalog.Source, locks *Locks, logger *slog.Logger) *BrowseService {
	return &BrowseService{
		store:   st,
		catalog: cat,
		locks:   locks,
		logger:  logger,
	}
}

// Browse returns the recommendation sections and the filtered catalog.
func (s *BrowseService) Browse(ctx context.Context, householdID string, q domain.Query) (*BrowseResult, error) {
	p, sched, err := s.read(ctx, householdID)
	if err != nil {
		return nil, err
	}

	snap := s.catalog.Current()
	view := planner.Browse(snap.Entries(), p, snap.Adjacency, q)

	weeks := domain.IndexWeeks(planner.PartitionWeeks(p.SummerStart, p.SummerEnd))
	cards := map[string]planner.Card{}
	add := func(entries []domain.CatalogEntry) {
		for _, e := range entries {
			if _, ok := cards[e.ID]; ok {
				continue
			}
			cards[e.ID] = planner.EntryCard(e, p, sched, weeks, snap.Categories(), snap.Subcategories)
		}
	}
	for _, k := range view.PerKid {
		add(k.Entries)
	}
	add(view.OneDropoff)
	add(view.Discover)
	add(view.Results)

	return &BrowseResult{BrowseView: view, Cards: cards}, nil
}

// CategoryCounts returns the number of neighborhood entries per category.
func (s *BrowseService) CategoryCounts(ctx context.Context, householdID string) ([]planner.CategoryCount, error) {
	p, _, err := s.read(ctx, householdID)
	if err != nil {
		return nil, err
	}
	snap := s.catalog.Current()
	return planner.CategoryCounts(snap.Entries(), p, snap.Categories()), nil
}

// Card returns the decorations of a single entry.
func (s *BrowseService) Card(ctx context.Context, householdID, entryID string) (*planner.Card, error) {
	snap := s.catalog.Current()
	e, ok := snap.Entry(entryID)
	if !ok {
		return nil, domainerrors.NotFoundf("entry %q not found", entryID)
	}

	p, sched, err := s.read(ctx, householdID)
	if err != nil {
		return nil, err
	}
	weeks := domain.IndexWeeks(planner.PartitionWeeks(p.SummerStart, p.SummerEnd))
	card := planner.EntryCard(e, p, sched, weeks, snap.Categories(), snap.Subcategories)
	return &card, nil
}

func (s *BrowseService) read(ctx context.Context, householdID string) (*domain.Profile, domain.Schedule, error) {
	unlock := s.locks.Lock(householdID)
	defer unlock()

	p, err := loadProfile(ctx, s.store, s.catalog, s.logger, householdID)
	if err != nil {
		return nil, nil, err
	}
	sched, err := s.store.GetSchedule(ctx, householdID)
	if err != nil {
		return nil, nil, mapStoreError(err, "failed to load schedule")
	}
	planner.PruneSchedule(sched, len(p.Kids))
	return p, sched, nil
}
