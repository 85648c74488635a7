package planner

import "github.com/campfinder/campfinder-server/internal/domain"

// NextAssignment advances one cell through its assignment cycle.
//
// With one kid the cell toggles between unassigned and kid 0. With more kids
// it steps unassigned -> {0} -> {1} -> ... -> {n-1} -> all -> unassigned. Any
// other state (all kids, or a multi-kid set written by something else) goes
// back to unassigned.
func NextAssignment(current domain.Assignment, numKids int) domain.Assignment {
	if numKids <= 0 {
		return nil
	}

	if current.IsEmpty() {
		return domain.Assignment{0}
	}

	if numKids == 1 {
		return nil
	}

	if len(current) == 1 {
		i := current[0]
		switch {
		case i >= 0 && i < numKids-1:
			return domain.Assignment{i + 1}
		case i == numKids-1:
			return domain.AllKids(numKids)
		}
	}

	return nil
}

// Cycle advances the cell at key in place and returns its new assignment.
// An empty result removes the cell from the schedule.
func Cycle(s domain.Schedule, key domain.ScheduleKey, numKids int) domain.Assignment {
	next := NextAssignment(s.Get(key), numKids)
	s.Set(key, next)
	return next
}

// PruneSchedule drops kid indices that are out of range for numKids, for
// example after a kid was removed in settings. Cells left empty are removed.
// It returns the number of cells changed or removed.
func PruneSchedule(s domain.Schedule, numKids int) int {
	changed := 0
	for key, a := range s {
		kept := make(domain.Assignment, 0, len(a))
		for _, i := range a {
			if i >= 0 && i < numKids {
				kept = append(kept, i)
			}
		}
		if len(kept) == len(a) {
			continue
		}
		s.Set(key, kept)
		changed++
	}
	return changed
}
