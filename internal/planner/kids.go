package planner

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/campfinder/campfinder-server/internal/color"
	"github.com/campfinder/campfinder-server/internal/domain"
)

// ageRangePattern matches the first "min-max" pair, with a hyphen or en dash.
var ageRangePattern = regexp.MustCompile(`(\d+)\s*[-–]\s*(\d+)`)

const unknownKidInitial = "?"

// AgeMatches reports whether any kid's age falls inside the entry's textual
// age range. Ranges without a "min-max" pair never match.
func AgeMatches(ageRange string, kids []domain.Kid) bool {
	if ageRange == "" || len(kids) == 0 {
		return false
	}
	m := ageRangePattern.FindStringSubmatch(ageRange)
	if m == nil {
		return false
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return false
	}
	for _, k := range kids {
		if k.Age >= lo && k.Age <= hi {
			return true
		}
	}
	return false
}

// KidLabel abbreviates an assignment as kid initials joined with "+".
func KidLabel(a domain.Assignment, kids []domain.Kid) string {
	if a.IsEmpty() {
		return ""
	}
	var initials []string
	if len(kids) > 1 && len(a) == len(kids) {
		for _, k := range kids {
			initials = append(initials, k.Initial())
		}
		return strings.Join(initials, "+")
	}
	for _, i := range a {
		if i < 0 || i >= len(kids) {
			initials = append(initials, unknownKidInitial)
			continue
		}
		initials = append(initials, kids[i].Initial())
	}
	return strings.Join(initials, "+")
}

// KidNameList spells out the assigned kids as "Ava, Ben".
func KidNameList(a domain.Assignment, kids []domain.Kid) string {
	names := make([]string, 0, len(a))
	for _, i := range a {
		if i < 0 || i >= len(kids) {
			names = append(names, unknownKidInitial)
			continue
		}
		names = append(names, kids[i].Name)
	}
	return strings.Join(names, ", ")
}

// AssignmentColor picks the display colour for an assignment.
func AssignmentColor(a domain.Assignment, kids []domain.Kid) string {
	colors := make([]string, len(kids))
	for i, k := range kids {
		colors[i] = k.Color
	}
	return color.ForAssignment(a, colors)
}
