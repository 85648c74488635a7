package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/campfinder/campfinder-server/internal/catalog"
	"github.com/campfinder/campfinder-server/internal/domain"
	domainerrors "github.com/campfinder/campfinder-server/internal/errors"
	"github.com/campfinder/campfinder-server/internal/id"
	"github.com/campfinder/campfinder-server/internal/metrics"
	"github.com/campfinder/campfinder-server/internal/planner"
	"github.com/campfinder/campfinder-server/internal/store"
)

// ErrNoProfile is returned when a household has not completed onboarding
// or its stored profile could not be read.
var ErrNoProfile = domainerrors.NotFound("household has no profile")

// ProfileView is a migrated profile with the strings derived from it.
type ProfileView struct {
	HouseholdID  string          `json:"householdId"`
	Onboarded    bool            `json:"onboarded"`
	Profile      *domain.Profile `json:"profile"`
	Subtitle     string          `json:"subtitle"`
	SchoolNote   string          `json:"schoolNote"`
	CalendarHint string          `json:"calendarHint"`
	DropoffNames string          `json:"dropoffNames,omitempty"`
	Weeks        []domain.Week   `json:"weeks"`
	HowtoSeen    bool            `json:"howtoSeen"`
}

// ProfileService manages household profiles.
type ProfileService struct {
	store   store.Store
	catalog *catalog.Source
	locks   *Locks
	logger  *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(st store.Store, cat *catalog.Source, locks *Locks, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		store:   st,
		catalog: cat,
		locks:   locks,
		logger:  logger,
	}
}

// CreateHousehold allocates a new household id. Nothing is stored until the
// household onboards.
func (s *ProfileService) CreateHousehold(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	hh, err := id.NewHousehold()
	if err != nil {
		return "", domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to allocate household id")
	}
	s.logger.Info("household created", "household_id", hh)
	return hh, nil
}

// Get loads, migrates and describes a household's profile. A migrated form
// that differs from the stored one is written back.
func (s *ProfileService) Get(ctx context.Context, householdID string) (*ProfileView, error) {
	unlock := s.locks.Lock(householdID)
	defer unlock()

	p, err := s.load(ctx, householdID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, householdID, p)
}

// Save migrates and stores a profile supplied by settings. Schedule cells
// pointing at removed kids are dropped.
func (s *ProfileService) Save(ctx context.Context, householdID string, p *domain.Profile) (*ProfileView, error) {
	if p == nil {
		return nil, domainerrors.Validation("profile is required")
	}

	unlock := s.locks.Lock(householdID)
	defer unlock()

	migrated, changes := planner.Migrate(p, s.catalog.Current().Districts)
	if len(changes) > 0 {
		s.logger.Debug("profile migrated on save", "household_id", householdID, "changes", changes)
		metrics.RecordMigration(changes)
	}
	if err := s.persist(ctx, householdID, migrated); err != nil {
		return nil, err
	}
	return s.view(ctx, householdID, migrated)
}

// Onboard validates wizard input and stores the resulting profile.
func (s *ProfileService) Onboard(ctx context.Context, householdID string, in planner.OnboardingInput) (*ProfileView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := planner.ValidateOnboarding(in, s.catalog.Current().Districts)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(householdID)
	defer unlock()

	if err := s.persist(ctx, householdID, p); err != nil {
		return nil, err
	}
	metrics.RecordOnboarding()
	s.logger.Info("household onboarded",
		"household_id", householdID,
		"district", p.District,
		"kids", len(p.Kids),
	)
	return s.view(ctx, householdID, p)
}

// Draft returns the onboarding wizard pre-filled from the stored profile.
// A household without a profile gets an empty wizard.
func (s *ProfileService) Draft(ctx context.Context, householdID string) (planner.OnboardingInput, error) {
	unlock := s.locks.Lock(householdID)
	defer unlock()

	p, err := s.load(ctx, householdID)
	if errors.Is(err, ErrNoProfile) {
		return planner.OnboardingFromProfile(nil), nil
	}
	if err != nil {
		return planner.OnboardingInput{}, err
	}
	return planner.OnboardingFromProfile(p), nil
}

// Reset deletes everything stored for a household.
func (s *ProfileService) Reset(ctx context.Context, householdID string) error {
	unlock := s.locks.Lock(householdID)
	defer unlock()

	if err := s.store.DeleteHousehold(ctx, householdID); err != nil {
		return mapStoreError(err, "failed to reset household")
	}
	s.logger.Info("household reset", "household_id", householdID)
	return nil
}

// Weeks returns the household's week grid.
func (s *ProfileService) Weeks(ctx context.Context, householdID string) ([]domain.Week, error) {
	unlock := s.locks.Lock(householdID)
	defer unlock()

	p, err := s.load(ctx, householdID)
	if err != nil {
		return nil, err
	}
	return planner.PartitionWeeks(p.SummerStart, p.SummerEnd), nil
}

// HowtoSeen reports whether the how-to banner was dismissed.
func (s *ProfileService) HowtoSeen(ctx context.Context, householdID string) (bool, error) {
	seen, err := s.store.HowtoSeen(ctx, householdID)
	if err != nil {
		return false, mapStoreError(err, "failed to read how-to flag")
	}
	return seen, nil
}

// MarkHowtoSeen sets or clears the how-to flag.
func (s *ProfileService) MarkHowtoSeen(ctx context.Context, householdID string, seen bool) error {
	if err := s.store.MarkHowtoSeen(ctx, householdID, seen); err != nil {
		return mapStoreError(err, "failed to update how-to flag")
	}
	return nil
}

// load reads and migrates a profile. Callers hold the household lock.
func (s *ProfileService) load(ctx context.Context, householdID string) (*domain.Profile, error) {
	return loadProfile(ctx, s.store, s.catalog, s.logger, householdID)
}

// persist stores the profile and prunes schedule cells for kids that no
// longer exist. Callers hold the household lock.
func (s *ProfileService) persist(ctx context.Context, householdID string, p *domain.Profile) error {
	if err := s.store.SaveProfile(ctx, householdID, p); err != nil {
		return mapStoreError(err, "failed to save profile")
	}

	sched, err := s.store.GetSchedule(ctx, householdID)
	if err != nil {
		return mapStoreError(err, "failed to load schedule")
	}
	if n := planner.PruneSchedule(sched, len(p.Kids)); n > 0 {
		s.logger.Info("pruned schedule cells for removed kids", "household_id", householdID, "cells", n)
		if err := s.store.SaveSchedule(ctx, householdID, sched); err != nil {
			return mapStoreError(err, "failed to save schedule")
		}
	}
	return nil
}

func (s *ProfileService) view(ctx context.Context, householdID string, p *domain.Profile) (*ProfileView, error) {
	seen, err := s.store.HowtoSeen(ctx, householdID)
	if err != nil {
		return nil, mapStoreError(err, "failed to read how-to flag")
	}

	weeks := planner.PartitionWeeks(p.SummerStart, p.SummerEnd)
	v := &ProfileView{
		HouseholdID:  householdID,
		Onboarded:    p.Onboarded(),
		Profile:      p,
		Subtitle:     planner.Subtitle(p),
		SchoolNote:   planner.SchoolNote(p, s.catalog.Current().Districts, weeks),
		CalendarHint: planner.CalendarHint(p),
		Weeks:        weeks,
		HowtoSeen:    seen,
	}
	if len(p.Kids) > 1 {
		v.DropoffNames = planner.DropoffNames(p.Kids)
	}
	return v, nil
}

// loadProfile reads and migrates a household's profile, writing back the
// migrated form when migration changed it. The household lock must be held.
func loadProfile(ctx context.Context, st store.Store, cat *catalog.Source, logger *slog.Logger, householdID string) (*domain.Profile, error) {
	raw, err := st.GetProfile(ctx, householdID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoProfile
		}
		return nil, mapStoreError(err, "failed to load profile")
	}

	p, changes := planner.Migrate(raw, cat.Current().Districts)
	if len(changes) == 0 {
		return p, nil
	}

	logger.Debug("profile migrated", "household_id", householdID, "changes", changes)
	metrics.RecordMigration(changes)
	if err := st.SaveProfile(ctx, householdID, p); err != nil {
		// The migrated form is still usable for this request.
		logger.Warn("failed to persist migrated profile", "household_id", householdID, "error", err)
	}
	return p, nil
}

// mapStoreError converts store errors into domain errors. Context errors
// pass through unchanged.
func mapStoreError(err error, msg string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var se *store.Error
	if errors.As(err, &se) {
		switch {
		case errors.Is(se, store.ErrNotFound):
			return domainerrors.Wrap(err, domainerrors.CodeNotFound, se.Message)
		case errors.Is(se, store.ErrInvalidInput):
			return domainerrors.Wrap(err, domainerrors.CodeValidation, se.Message)
		case errors.Is(se, store.ErrUnavailable):
			return domainerrors.Wrap(err, domainerrors.CodeUnavailable, se.Message)
		}
	}
	return domainerrors.Wrap(err, domainerrors.CodeInternal, msg)
}
