// Package id generates household identifiers.
package id

import (
	"fmt"
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// HouseholdPrefix prefixes every household id.
const HouseholdPrefix = "hh"

var householdPattern = regexp.MustCompile(`^` + HouseholdPrefix + `-[A-Za-z0-9_-]{21}$`)

// Generate creates a prefixed unique ID using NanoID.
// Format: prefix-nanoid (e.g., "hh-V1StGXR8_Z5jdHi6B-myT").
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// NewHousehold returns a fresh household id.
func NewHousehold() (string, error) {
	return Generate(HouseholdPrefix)
}

// IsHousehold reports whether s has the shape of a generated household id.
func IsHousehold(s string) bool {
	return householdPattern.MatchString(s)
}
