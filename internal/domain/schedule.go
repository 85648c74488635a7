package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// scheduleKeySep separates entry and week ids in the wire key.
const scheduleKeySep = "::"

// ScheduleKey addresses one entry/week cell.
type ScheduleKey struct {
	EntryID string
	WeekID  string
}

// String returns the wire form "{entryId}::{weekId}".
func (k ScheduleKey) String() string {
	return k.EntryID + scheduleKeySep + k.WeekID
}

// ParseScheduleKey parses the wire form of a key.
func ParseScheduleKey(s string) (ScheduleKey, error) {
	entryID, weekID, ok := strings.Cut(s, scheduleKeySep)
	if !ok || entryID == "" || weekID == "" {
		return ScheduleKey{}, fmt.Errorf("invalid schedule key %q", s)
	}
	return ScheduleKey{EntryID: entryID, WeekID: weekID}, nil
}

// Assignment is the set of kid indices assigned to a cell, sorted ascending.
// An empty assignment means the cell is unassigned.
type Assignment []int

// AllKids returns the assignment covering every kid index.
func AllKids(n int) Assignment {
	a := make(Assignment, n)
	for i := range n {
		a[i] = i
	}
	return a
}

// IsEmpty reports whether no kid is assigned.
func (a Assignment) IsEmpty() bool { return len(a) == 0 }

// IsAll reports whether the assignment covers all n kids.
func (a Assignment) IsAll(n int) bool {
	if n == 0 || len(a) != n {
		return false
	}
	for i, v := range a {
		if v != i {
			return false
		}
	}
	return true
}

// Contains reports whether kid index i is assigned.
func (a Assignment) Contains(i int) bool {
	return slices.Contains(a, i)
}

// Schedule maps cells to assignments. Unassigned cells have no entry.
type Schedule map[ScheduleKey]Assignment

// Get returns the assignment for key, empty when absent.
func (s Schedule) Get(key ScheduleKey) Assignment {
	return s[key]
}

// Set upserts a non-empty assignment or deletes the key for an empty one.
func (s Schedule) Set(key ScheduleKey, a Assignment) {
	if a.IsEmpty() {
		delete(s, key)
		return
	}
	s[key] = slices.Clone(a)
}

// Remove deletes a cell.
func (s Schedule) Remove(key ScheduleKey) {
	delete(s, key)
}

// Keys returns all keys sorted by wire form.
func (s Schedule) Keys() []ScheduleKey {
	keys := make([]ScheduleKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b ScheduleKey) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}

// Clone returns a deep copy.
func (s Schedule) Clone() Schedule {
	c := make(Schedule, len(s))
	for k, v := range s {
		c[k] = slices.Clone(v)
	}
	return c
}

// Wire converts the schedule to its persisted form.
func (s Schedule) Wire() map[string][]int {
	out := make(map[string][]int, len(s))
	for k, v := range s {
		if v.IsEmpty() {
			continue
		}
		out[k.String()] = slices.Clone(v)
	}
	return out
}

// ScheduleFromWire builds a schedule from its persisted form.
// Unparsable keys and empty assignments are dropped.
func ScheduleFromWire(wire map[string][]int) Schedule {
	s := make(Schedule, len(wire))
	for raw, indices := range wire {
		key, err := ParseScheduleKey(raw)
		if err != nil || len(indices) == 0 {
			continue
		}
		a := slices.Clone(indices)
		slices.Sort(a)
		s[key] = slices.Compact(a)
	}
	return s
}

// MarshalJSON implements json.Marshaler using the wire form.
func (s Schedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Wire())
}

// UnmarshalJSON implements json.Unmarshaler using the wire form.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var wire map[string][]int
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*s = ScheduleFromWire(wire)
	return nil
}
