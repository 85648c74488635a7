// Package store defines the persistence port for household planning state
// and its Badger implementation. Each household owns three documents: the
// profile, the schedule and the "how-to seen" flag.
package store

import (
	"context"

	"github.com/campfinder/campfinder-server/internal/domain"
)

// Store defines the interface for all persistence operations.
type Store interface {
	// Lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Profile. A missing or undecodable profile returns ErrProfileNotFound.
	GetProfile(ctx context.Context, householdID string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, householdID string, p *domain.Profile) error
	DeleteProfile(ctx context.Context, householdID string) error

	// Schedule. A missing or undecodable schedule is returned empty.
	GetSchedule(ctx context.Context, householdID string) (domain.Schedule, error)
	SaveSchedule(ctx context.Context, householdID string, s domain.Schedule) error
	DeleteSchedule(ctx context.Context, householdID string) error

	// How-to banner
	HowtoSeen(ctx context.Context, householdID string) (bool, error)
	MarkHowtoSeen(ctx context.Context, householdID string, seen bool) error

	// Households
	DeleteHousehold(ctx context.Context, householdID string) error
	ListHouseholds(ctx context.Context) ([]Household, error)
}

// Household summarizes what is stored for one household.
type Household struct {
	ID            string `json:"id"`
	ProfileBytes  int    `json:"profileBytes"`
	ScheduleBytes int    `json:"scheduleBytes"`
	HowtoSeen     bool   `json:"howtoSeen"`
}
