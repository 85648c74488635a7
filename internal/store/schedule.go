package store

import (
	"context"
	"time"

	"github.com/campfinder/campfinder-server/internal/domain"
)

// GetSchedule retrieves a household's schedule. A missing schedule is empty;
// malformed cells are dropped and logged.
func (s *Badger) GetSchedule(ctx context.Context, householdID string) (_ domain.Schedule, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := CheckHousehold(householdID); err != nil {
		return nil, err
	}
	defer s.observe("get_schedule", time.Now(), &err)

	data, ok, err := s.get(schedulePrefix, householdID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.Schedule{}, nil
	}

	sched, decodeErr := DecodeSchedule(data)
	if decodeErr != nil {
		ReportMalformed(s.logger, KindSchedule, householdID, decodeErr)
	}
	return sched, nil
}

// SaveSchedule replaces a household's schedule. An empty schedule deletes
// the stored document.
func (s *Badger) SaveSchedule(ctx context.Context, householdID string, sched domain.Schedule) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := CheckHousehold(householdID); err != nil {
		return err
	}
	defer s.observe("save_schedule", time.Now(), &err)

	if len(sched.Wire()) == 0 {
		return s.delete(schedulePrefix, householdID)
	}

	data, err := EncodeSchedule(sched)
	if err != nil {
		return err
	}
	return s.set(schedulePrefix, householdID, data)
}

// DeleteSchedule removes a household's schedule.
func (s *Badger) DeleteSchedule(ctx context.Context, householdID string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := CheckHousehold(householdID); err != nil {
		return err
	}
	defer s.observe("delete_schedule", time.Now(), &err)

	return s.delete(schedulePrefix, householdID)
}
