package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/metrics"
)

// Document kinds, used in logs and metrics.
const (
	KindProfile  = "profile"
	KindSchedule = "schedule"
)

var errEmptyDocument = errors.New("empty document")

// EncodeProfile returns the persisted JSON form of a profile.
func EncodeProfile(p *domain.Profile) ([]byte, error) {
	if p == nil {
		return nil, ErrInvalidInput.WithMessage("profile is required")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	return data, nil
}

// DecodeProfile parses a stored profile. Anything other than a JSON object
// of the profile shape is an error.
func DecodeProfile(data []byte) (*domain.Profile, error) {
	var p *domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errEmptyDocument
	}
	return p, nil
}

// EncodeSchedule returns the persisted JSON form of a schedule.
func EncodeSchedule(s domain.Schedule) ([]byte, error) {
	data, err := json.Marshal(s.Wire())
	if err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}
	return data, nil
}

// DecodeSchedule parses a stored schedule. The returned schedule is never
// nil. Cells whose value is not an index array are dropped and reported in
// the error alongside whatever could be recovered.
func DecodeSchedule(data []byte) (domain.Schedule, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Schedule{}, err
	}

	wire := make(map[string][]int, len(raw))
	dropped := 0
	for k, v := range raw {
		var indices []int
		if err := json.Unmarshal(v, &indices); err != nil {
			dropped++
			continue
		}
		wire[k] = indices
	}

	s := domain.ScheduleFromWire(wire)
	if dropped > 0 {
		return s, fmt.Errorf("dropped %d malformed cells", dropped)
	}
	return s, nil
}

// ReportMalformed logs and counts a stored document that failed to decode.
func ReportMalformed(logger *slog.Logger, kind, householdID string, err error) {
	metrics.RecordMalformed(kind)
	if logger != nil {
		logger.Warn("malformed stored document",
			"kind", kind,
			"household_id", householdID,
			"error", err,
		)
	}
}
