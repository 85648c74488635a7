// Package normalize provides utilities for normalizing and sanitizing text
// before it is compared or stored.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

//nolint:gochecknoglobals // Caser is safe to share for Fold-only use via String.
var folder = cases.Fold()

// Fold returns s trimmed, stripped of null bytes and case folded, so that two
// strings differing only in case compare equal.
func Fold(s string) string {
	s = strings.TrimSpace(sanitizeString(s))
	if s == "" {
		return ""
	}
	return folder.String(s)
}

// Haystack joins the searchable parts of a record with single spaces and
// folds the result.
func Haystack(parts ...string) string {
	return Fold(strings.Join(parts, " "))
}

// sanitizeString removes null bytes from strings, which can cause
// issues in databases and JSON parsing.
func sanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 { // null byte
			return -1 // drop it
		}
		return r
	}, s)
}
