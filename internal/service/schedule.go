package service

import (
	"context"
	"log/slog"

	"github.com/campfinder/campfinder-server/internal/catalog"
	"github.com/campfinder/campfinder-server/internal/color"
	"github.com/campfinder/campfinder-server/internal/domain"
	domainerrors "github.com/campfinder/campfinder-server/internal/errors"
	"github.com/campfinder/campfinder-server/internal/metrics"
	"github.com/campfinder/campfinder-server/internal/planner"
	"github.com/campfinder/campfinder-server/internal/store"
)

// CycleResult is the outcome of one assignment transition.
type CycleResult struct {
	EntryID    string            `json:"entryId"`
	WeekID     string            `json:"weekId"`
	Assignment domain.Assignment `json:"assignment"`
	Label      string            `json:"label"`
	KidNames   string            `json:"kidNames"`
	Color      string            `json:"color"`
	Background string            `json:"background"`
	Scheduled  int               `json:"scheduled"`
}

// ScheduleOverview groups the schedule by week.
type ScheduleOverview struct {
	Count int                    `json:"count"`
	Weeks []planner.ScheduleWeek `json:"weeks"`
}

// ScheduleService runs assignment transitions and schedule views.
type ScheduleService struct {
	store   store.Store
	catalog *catalog.Source
	locks   *Locks
	logger  *slog.Logger
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(st store.Store, cat *catalog.Source, locks *Locks, logger *slog.Logger) *ScheduleService {
	return &ScheduleService{
		store:   st,
		catalog: cat,
		locks:   locks,
		logger:  logger,
	}
}

// Cycle advances one entry/week cell to its next assignment. The household
// must be onboarded, the entry must exist and offer the week, and the week
// must be part of the household's summer.
func (s *ScheduleService) Cycle(ctx context.Context, householdID, entryID, weekID string) (*CycleResult, error) {
	unlock := s.locks.Lock(householdID)
	defer unlock()

	p, err := loadProfile(ctx, s.store, s.catalog, s.logger, householdID)
	if err != nil {
		return nil, err
	}
	if len(p.Kids) == 0 {
		return nil, domainerrors.Validation("household has no kids to schedule")
	}

	entry, ok := s.catalog.Current().Entry(entryID)
	if !ok {
		return nil, domainerrors.NotFoundf("entry %q not found", entryID)
	}
	weeks := domain.IndexWeeks(planner.PartitionWeeks(p.SummerStart, p.SummerEnd))
	if _, ok := weeks[weekID]; !ok {
		return nil, domainerrors.NotFoundf("week %q not found", weekID)
	}
	if !entry.OffersWeek(weekID) {
		return nil, domainerrors.Validationf("%s does not run in week %s", entry.Name, weekID)
	}

	sched, err := s.load(ctx, householdID, len(p.Kids))
	if err != nil {
		return nil, err
	}

	key := domain.ScheduleKey{EntryID: entryID, WeekID: weekID}
	next := planner.Cycle(sched, key, len(p.Kids))
	if err := s.store.SaveSchedule(ctx, householdID, sched); err != nil {
		return nil, mapStoreError(err, "failed to save schedule")
	}
	metrics.RecordCycle(len(next), len(p.Kids))

	if next == nil {
		next = domain.Assignment{}
	}
	c := planner.AssignmentColor(next, p.Kids)
	return &CycleResult{
		EntryID:    entryID,
		WeekID:     weekID,
		Assignment: next,
		Label:      planner.KidLabel(next, p.Kids),
		KidNames:   planner.KidNameList(next, p.Kids),
		Color:      c,
		Background: cellBackground(next, c),
		Scheduled:  len(sched),
	}, nil
}

// Remove clears one cell regardless of its assignment.
func (s *ScheduleService) Remove(ctx context.Context, householdID, entryID, weekID string) error {
	unlock := s.locks.Lock(householdID)
	defer unlock()

	sched, err := s.store.GetSchedule(ctx, householdID)
	if err != nil {
		return mapStoreError(err, "failed to load schedule")
	}
	key := domain.ScheduleKey{EntryID: entryID, WeekID: weekID}
	if _, ok := sched[key]; !ok {
		return domainerrors.NotFoundf("%s is not scheduled", key)
	}
	sched.Remove(key)
	if err := s.store.SaveSchedule(ctx, householdID, sched); err != nil {
		return mapStoreError(err, "failed to save schedule")
	}
	return nil
}

// ByWeek returns the schedule grouped by week.
func (s *ScheduleService) ByWeek(ctx context.Context, householdID string) (*ScheduleOverview, error) {
	p, sched, snap, err := s.read(ctx, householdID)
	if err != nil {
		return nil, err
	}
	weeks := planner.PartitionWeeks(p.SummerStart, p.SummerEnd)
	return &ScheduleOverview{
		Count: len(sched),
		Weeks: planner.ScheduleByWeek(sched, weeks, snap.Entries(), p, snap.Categories()),
	}, nil
}

// Calendar returns the calendar grid.
func (s *ScheduleService) Calendar(ctx context.Context, householdID string) (*planner.CalendarView, error) {
	p, sched, snap, err := s.read(ctx, householdID)
	if err != nil {
		return nil, err
	}
	weeks := planner.PartitionWeeks(p.SummerStart, p.SummerEnd)
	view := planner.Calendar(sched, weeks, snap.Entries(), p, snap.Categories())
	return &view, nil
}

// Raw returns the schedule in its persisted wire form.
func (s *ScheduleService) Raw(ctx context.Context, householdID string) (map[string][]int, error) {
	unlock := s.locks.Lock(householdID)
	defer unlock()

	sched, err := s.store.GetSchedule(ctx, householdID)
	if err != nil {
		return nil, mapStoreError(err, "failed to load schedule")
	}
	return sched.Wire(), nil
}

// read loads the migrated profile, the pruned schedule and the catalog
// snapshot under the household lock.
func (s *ScheduleService) read(ctx context.Context, householdID string) (*domain.Profile, domain.Schedule, *catalog.Snapshot, error) {
	unlock := s.locks.Lock(householdID)
	defer unlock()

	p, err := loadProfile(ctx, s.store, s.catalog, s.logger, householdID)
	if err != nil {
		return nil, nil, nil, err
	}
	sched, err := s.load(ctx, householdID, len(p.Kids))
	if err != nil {
		return nil, nil, nil, err
	}
	return p, sched, s.catalog.Current(), nil
}

// load reads the schedule and drops indices for kids that no longer exist.
func (s *ScheduleService) load(ctx context.Context, householdID string, numKids int) (domain.Schedule, error) {
	sched, err := s.store.GetSchedule(ctx, householdID)
	if err != nil {
		return nil, mapStoreError(err, "failed to load schedule")
	}
	if n := planner.PruneSchedule(sched, numKids); n > 0 {
		s.logger.Warn("dropped schedule cells for unknown kids", "household_id", householdID, "cells", n)
	}
	return sched, nil
}

// cellBackground is the translucent fill for an assigned cell, empty when
// unassigned.
func cellBackground(a domain.Assignment, hex string) string {
	if a.IsEmpty() {
		return ""
	}
	return color.Background(hex)
}
