// Package planner holds the pure planning engine: week partitioning, profile
// migration, recommendations, the assignment cycle, catalog filtering and the
// derived views built on top of them. Nothing in this package performs I/O.
package planner

import (
	"fmt"
	"time"

	"github.com/campfinder/campfinder-server/internal/domain"
)

const (
	shortDateLayout = "Jan 2"
	weekIDFormat    = "w%02d"
	enDash          = "–"
)

// ParseDate parses a YYYY-MM-DD calendar date at UTC midnight.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ShortDate formats a date as "Jun 23".
func ShortDate(t time.Time) string {
	return t.Format(shortDateLayout)
}

// PartitionWeeks splits the summer between the last day of school and the
// first day of the next school year into Monday-Friday weeks.
//
// The first Monday is lastDay's own Monday for Mon-Thu, and the following
// Monday when lastDay falls on Fri, Sat or Sun. Weeks are emitted while their
// Monday is before firstDay. An absent or unparsable date yields no weeks.
func PartitionWeeks(lastDay, firstDay string) []domain.Week {
	last, ok := ParseDate(lastDay)
	if !ok {
		return []domain.Week{}
	}
	first, ok := ParseDate(firstDay)
	if !ok {
		return []domain.Week{}
	}

	monday := mondayAnchor(last)
	weeks := []domain.Week{}

	for n := 1; monday.Before(first); n++ {
		friday := monday.AddDate(0, 0, 4)

		week := domain.Week{
			Index: n - 1,
			ID:    fmt.Sprintf(weekIDFormat, n),
			Start: monday.Format(domain.DateLayout),
			End:   friday.Format(domain.DateLayout),
			Label: weekLabel(monday, friday),
		}

		if n == 1 {
			week.Note = "School ends " + ShortDate(last)
		}
		if !friday.Before(first) || !monday.AddDate(0, 0, 7).Before(first) {
			week.Note = "School starts ~" + ShortDate(first)
		}
		if n == 1 && !friday.Before(first) {
			week.Note = "School ends " + ShortDate(last) + " / starts ~" + ShortDate(first)
		}

		weeks = append(weeks, week)
		monday = monday.AddDate(0, 0, 7)
	}

	return weeks
}

// mondayAnchor returns the first Monday of the summer grid for lastDay.
func mondayAnchor(last time.Time) time.Time {
	switch last.Weekday() {
	case time.Sunday:
		return last.AddDate(0, 0, 1)
	case time.Friday:
		return last.AddDate(0, 0, 3)
	case time.Saturday:
		return last.AddDate(0, 0, 2)
	default:
		return last.AddDate(0, 0, -(int(last.Weekday()) - 1))
	}
}

// weekLabel renders "Jun 22–26", or "Jun 29–Jul 3" across a month boundary.
func weekLabel(monday, friday time.Time) string {
	if monday.Month() == friday.Month() {
		return fmt.Sprintf("%s%s%d", ShortDate(monday), enDash, friday.Day())
	}
	return ShortDate(monday) + enDash + ShortDate(friday)
}

// DateSpan renders "Jun 23–Sep 8" for two calendar dates. It returns "" when
// either date is absent.
func DateSpan(start, end string) string {
	s, ok := ParseDate(start)
	if !ok {
		return ""
	}
	e, ok := ParseDate(end)
	if !ok {
		return ""
	}
	return ShortDate(s) + enDash + ShortDate(e)
}
