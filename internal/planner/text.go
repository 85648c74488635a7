package planner

import (
	"fmt"
	"strings"

	"github.com/campfinder/campfinder-server/internal/domain"
)

const (
	defaultSubtitle = "Summer Camps for the Greater Seattle Area"
	arrow           = " → "
)

// Subtitle is the page heading for a household.
func Subtitle(p *domain.Profile) string {
	if p == nil {
		return defaultSubtitle
	}
	names := strings.Join(p.KidNames(), " & ")
	if names == "" {
		return defaultSubtitle
	}
	return "Summer camps for " + names
}

// SchoolNote describes the household's summer, e.g.
// "Bellevue SD (BSD 405): 12 weeks, Jun 23–Sep 8". Unknown districts are
// shown by id.
func SchoolNote(p *domain.Profile, districts map[string]domain.District, weeks []domain.Week) string {
	if p == nil {
		return ""
	}
	label := p.District
	if d, ok := districts[p.District]; ok {
		label = d.Label
	}
	return fmt.Sprintf("%s: %d weeks, %s", label, len(weeks), DateSpan(p.SummerStart, p.SummerEnd))
}

// DistrictPreview summarises a candidate summer as "12 weeks, Jun 23–Sep 8".
// It is empty until both dates are known.
func DistrictPreview(summerStart, summerEnd string) string {
	if summerStart == "" || summerEnd == "" {
		return ""
	}
	weeks := PartitionWeeks(summerStart, summerEnd)
	return fmt.Sprintf("%d weeks, %s", len(weeks), DateSpan(summerStart, summerEnd))
}

// CalendarHint explains what clicking a week chip does for this household.
func CalendarHint(p *domain.Profile) string {
	if p == nil || len(p.Kids) == 0 {
		return ""
	}
	if len(p.Kids) == 1 {
		return fmt.Sprintf("Click week chips to schedule for %s. Click again to remove.", p.Kids[0].Name)
	}
	return "Click week chips to cycle: " + cycleOrder(p.Kids) + "."
}

// ChipHint is the tooltip on a single week chip.
func ChipHint(kids []domain.Kid) string {
	switch len(kids) {
	case 0:
		return ""
	case 1:
		return "Click to schedule for " + kids[0].Name
	default:
		return "Click to cycle: " + cycleOrder(kids)
	}
}

// WeeksHint is the caption next to an entry's week chips.
func WeeksHint(kids []domain.Kid) string {
	if len(kids) == 1 {
		return fmt.Sprintf("(click to schedule for %s)", kids[0].Name)
	}
	return "(click to schedule)"
}

// DropoffNames joins kid names as "A & B" or "A, B & C".
func DropoffNames(kids []domain.Kid) string {
	names := make([]string, len(kids))
	for i, k := range kids {
		names[i] = k.Name
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " & " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " & " + names[len(names)-1]
	}
}

// cycleOrder renders "Ava → Ben → All → off".
func cycleOrder(kids []domain.Kid) string {
	names := make([]string, len(kids))
	for i, k := range kids {
		names[i] = k.Name
	}
	return strings.Join(names, arrow) + arrow + "All" + arrow + "off"
}
