package store

import (
	"context"
	"time"

	"github.com/campfinder/campfinder-server/internal/domain"
)

// GetProfile retrieves a household's stored profile, as persisted and
// before migration. Returns ErrProfileNotFound if no usable profile exists.
func (s *Badger) GetProfile(ctx context.Context, householdID string) (_ *domain.Profile, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := CheckHousehold(householdID); err != nil {
		return nil, err
	}
	defer s.observe("get_profile", time.Now(), &err)

	data, ok, err := s.get(profilePrefix, householdID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProfileNotFound
	}

	p, decodeErr := DecodeProfile(data)
	if decodeErr != nil {
		ReportMalformed(s.logger, KindProfile, householdID, decodeErr)
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// SaveProfile creates or replaces a household's profile.
func (s *Badger) SaveProfile(ctx context.Context, householdID string, p *domain.Profile) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := CheckHousehold(householdID); err != nil {
		return err
	}
	defer s.observe("save_profile", time.Now(), &err)

	data, err := EncodeProfile(p)
	if err != nil {
		return err
	}
	return s.set(profilePrefix, householdID, data)
}

// DeleteProfile removes a household's profile.
func (s *Badger) DeleteProfile(ctx context.Context, householdID string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := CheckHousehold(householdID); err != nil {
		return err
	}
	defer s.observe("delete_profile", time.Now(), &err)

	return s.delete(profilePrefix, householdID)
}
