// Package color provides the kid palette and the colours used to render
// schedule assignments.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Fixed colours.
const (
	Unassigned = "#ccc"
	AllKids    = "#3E6B48"

	backgroundAlpha = "0.12"
)

// Palette is the colour given to each kid slot, in order.
//
//nolint:gochecknoglobals // Static palette
var Palette = []string{"#2e86de", "#e84393", "#00b894", "#f39c12"}

// ForKid returns the palette colour for kid slot i, wrapping to the first
// colour when i is outside the palette.
func ForKid(i int) string {
	if i < 0 || i >= len(Palette) {
		return Palette[0]
	}
	return Palette[i]
}

// ForAssignment picks the colour for a set of kid indices given the kids'
// own colours: Unassigned for an empty set, AllKids for every kid (with more
// than one kid) or any multi-kid set, and the kid's colour for a single kid.
func ForAssignment(indices []int, kidColors []string) string {
	switch {
	case len(indices) == 0:
		return Unassigned
	case len(indices) == len(kidColors) && len(kidColors) > 1:
		return AllKids
	case len(indices) == 1:
		i := indices[0]
		if i < 0 || i >= len(kidColors) {
			return Unassigned
		}
		return kidColors[i]
	default:
		return AllKids
	}
}

// Background returns a translucent rgba() wash of a #RRGGBB or #RGB colour.
// Unparsable input yields a transparent black wash.
func Background(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		r, g, b = 0, 0, 0
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, backgroundAlpha)
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
