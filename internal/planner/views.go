package planner

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/campfinder/campfinder-server/internal/color"
	"github.com/campfinder/campfinder-server/internal/domain"
)

// DefaultCategoryColor is used for entries whose category is not configured.
const DefaultCategoryColor = "#636e72"

// CategoryCount is one category tab with the number of neighborhood entries.
type CategoryCount struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
	Count int    `json:"count"`
}

// CategoryCounts returns the "all camps" tab followed by every configured
// category, each counting only the household's neighborhood entries.
func CategoryCounts(entries []domain.CatalogEntry, p *domain.Profile, categories []domain.Category) []CategoryCount {
	local := NeighborhoodCatalog(entries, p)

	perCategory := make(map[string]int, len(categories))
	for _, e := range local {
		perCategory[e.Category]++
	}

	out := make([]CategoryCount, 0, len(categories)+1)
	out = append(out, CategoryCount{ID: domain.AllCategories, Label: "All Camps", Count: len(local)})
	for _, c := range categories {
		out = append(out, CategoryCount{
			ID:    c.ID,
			Label: c.Label,
			Icon:  c.Icon,
			Color: c.Color,
			Count: perCategory[c.ID],
		})
	}
	return out
}

// ScheduleItem is one scheduled entry within a week.
type ScheduleItem struct {
	EntryID       string            `json:"entryId"`
	EntryName     string            `json:"entryName"`
	CategoryLabel string            `json:"categoryLabel"`
	Assignment    domain.Assignment `json:"assignment"`
	KidNames      string            `json:"kidNames"`
	Color         string            `json:"color"`
}

// ScheduleWeek groups the schedule items of one week.
type ScheduleWeek struct {
	Week  domain.Week    `json:"week"`
	Items []ScheduleItem `json:"items"`
}

// ScheduleByWeek lists scheduled cells grouped by week in chronological
// order. Cells naming a week outside the grid or an entry missing from the
// catalog are omitted.
func ScheduleByWeek(s domain.Schedule, weeks []domain.Week, entries []domain.CatalogEntry, p *domain.Profile, categories []domain.Category) []ScheduleWeek {
	weekIdx := domain.IndexWeeks(weeks)
	entryIdx := indexEntries(entries)
	catIdx := indexCategories(categories)
	kids := kidsOf(p)

	grouped := map[string][]ScheduleItem{}
	for _, key := range s.Keys() {
		if _, ok := weekIdx[key.WeekID]; !ok {
			continue
		}
		e, ok := entryIdx[key.EntryID]
		if !ok {
			continue
		}
		a := s.Get(key)
		grouped[key.WeekID] = append(grouped[key.WeekID], ScheduleItem{
			EntryID:       e.ID,
			EntryName:     e.Name,
			CategoryLabel: catIdx[e.Category].Label,
			Assignment:    slices.Clone(a),
			KidNames:      KidNameList(a, kids),
			Color:         AssignmentColor(a, kids),
		})
	}

	out := []ScheduleWeek{}
	for _, w := range sortedWeeks(weeks) {
		if items, ok := grouped[w.ID]; ok {
			out = append(out, ScheduleWeek{Week: w, Items: items})
		}
	}
	return out
}

// CalendarColumn is one week column of the calendar grid.
type CalendarColumn struct {
	WeekID string `json:"weekId"`
	Label  string `json:"label"`
	School bool   `json:"school"` // week overlaps the school year
}

// CalendarCell is one entry/week intersection.
type CalendarCell struct {
	WeekID     string            `json:"weekId"`
	Assignment domain.Assignment `json:"assignment,omitempty"`
	Label      string            `json:"label,omitempty"`
	Color      string            `json:"color,omitempty"`
	Background string            `json:"background,omitempty"`
}

// CalendarRow is one scheduled entry across every week.
type CalendarRow struct {
	EntryID  string         `json:"entryId"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Cells    []CalendarCell `json:"cells"`
}

// CalendarView is the entry-by-week grid.
type CalendarView struct {
	Columns []CalendarColumn `json:"columns"`
	Rows    []CalendarRow    `json:"rows"`
}

// Calendar lays out every scheduled entry as a row with one cell per week.
// Rows are ordered by configured category order, then by name.
func Calendar(s domain.Schedule, weeks []domain.Week, entries []domain.CatalogEntry, p *domain.Profile, categories []domain.Category) CalendarView {
	ordered := sortedWeeks(weeks)
	kids := kidsOf(p)

	view := CalendarView{
		Columns: make([]CalendarColumn, 0, len(ordered)),
		Rows:    []CalendarRow{},
	}
	for _, w := range ordered {
		view.Columns = append(view.Columns, CalendarColumn{WeekID: w.ID, Label: w.Label, School: w.Note != ""})
	}

	entryIdx := indexEntries(entries)
	seen := map[string]bool{}
	var scheduled []domain.CatalogEntry
	for _, key := range s.Keys() {
		if seen[key.EntryID] {
			continue
		}
		seen[key.EntryID] = true
		if e, ok := entryIdx[key.EntryID]; ok {
			scheduled = append(scheduled, e)
		}
	}

	order := make(map[string]int, len(categories))
	for i, c := range categories {
		order[c.ID] = i
	}
	rank := func(cat string) int {
		if i, ok := order[cat]; ok {
			return i
		}
		return -1
	}
	coll := collate.New(language.English)
	slices.SortStableFunc(scheduled, func(a, b domain.CatalogEntry) int {
		if d := rank(a.Category) - rank(b.Category); d != 0 {
			return d
		}
		return coll.CompareString(a.Name, b.Name)
	})

	for _, e := range scheduled {
		row := CalendarRow{EntryID: e.ID, Name: e.Name, Category: e.Category, Cells: make([]CalendarCell, 0, len(ordered))}
		for _, w := range ordered {
			cell := CalendarCell{WeekID: w.ID}
			if a := s.Get(domain.ScheduleKey{EntryID: e.ID, WeekID: w.ID}); !a.IsEmpty() {
				c := AssignmentColor(a, kids)
				cell.Assignment = slices.Clone(a)
				cell.Label = KidLabel(a, kids)
				cell.Color = c
				cell.Background = color.Background(c)
			}
			row.Cells = append(row.Cells, cell)
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}

// WeekChip is one clickable week on an entry card.
type WeekChip struct {
	WeekID     string            `json:"weekId"`
	Label      string            `json:"label"`
	Assigned   bool              `json:"assigned"`
	Assignment domain.Assignment `json:"assignment,omitempty"`
	Color      string            `json:"color,omitempty"`
	Background string            `json:"background,omitempty"`
	Hint       string            `json:"hint"`
}

// Card is an entry decorated for one household.
type Card struct {
	Entry            domain.CatalogEntry `json:"entry"`
	CategoryLabel    string              `json:"categoryLabel"`
	CategoryColor    string              `json:"categoryColor"`
	SubcategoryLabel string              `json:"subcategoryLabel"`
	Recommended      bool                `json:"recommended"`
	AgeMatch         bool                `json:"ageMatch"`
	Weeks            []WeekChip          `json:"weeks"`
	WeeksHint        string              `json:"weeksHint"`
}

// EntryCard decorates an entry with the household's interests, ages and
// schedule. Weeks the entry lists but the grid lacks are skipped.
func EntryCard(e domain.CatalogEntry, p *domain.Profile, s domain.Schedule, weeks domain.WeekIndex, categories []domain.Category, subcategories map[string]domain.Subcategory) Card {
	kids := kidsOf(p)

	card := Card{
		Entry:         e,
		CategoryLabel: e.Category,
		CategoryColor: DefaultCategoryColor,
		AgeMatch:      AgeMatches(e.AgeRange, kids),
		Weeks:         []WeekChip{},
		WeeksHint:     WeeksHint(kids),
	}
	if c, ok := indexCategories(categories)[e.Category]; ok {
		card.CategoryLabel = c.Label
		if c.Color != "" {
			card.CategoryColor = c.Color
		}
	}
	if sub, ok := subcategories[e.Subcategory]; ok {
		card.SubcategoryLabel = sub.Label
	}
	for _, k := range kids {
		if k.HasInterest(e.Subcategory) {
			card.Recommended = true
			break
		}
	}

	hint := ChipHint(kids)
	for _, wid := range e.Weeks {
		w, ok := weeks[wid]
		if !ok {
			continue
		}
		chip := WeekChip{WeekID: w.ID, Label: w.Label, Hint: hint}
		if a := s.Get(domain.ScheduleKey{EntryID: e.ID, WeekID: w.ID}); !a.IsEmpty() {
			c := AssignmentColor(a, kids)
			chip.Assigned = true
			chip.Assignment = slices.Clone(a)
			chip.Label = KidLabel(a, kids) + " " + w.Label
			chip.Color = c
			chip.Background = color.Background(c)
		}
		card.Weeks = append(card.Weeks, chip)
	}

	return card
}

// EntryCards decorates a list of entries.
func EntryCards(entries []domain.CatalogEntry, p *domain.Profile, s domain.Schedule, weeks domain.WeekIndex, categories []domain.Category, subcategories map[string]domain.Subcategory) []Card {
	out := make([]Card, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryCard(e, p, s, weeks, categories, subcategories))
	}
	return out
}

func sortedWeeks(weeks []domain.Week) []domain.Week {
	out := slices.Clone(weeks)
	slices.SortStableFunc(out, func(a, b domain.Week) int { return a.Index - b.Index })
	return out
}

func indexEntries(entries []domain.CatalogEntry) map[string]domain.CatalogEntry {
	idx := make(map[string]domain.CatalogEntry, len(entries))
	for _, e := range entries {
		idx[e.ID] = e
	}
	return idx
}

func indexCategories(categories []domain.Category) map[string]domain.Category {
	idx := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}
	return idx
}

func kidsOf(p *domain.Profile) []domain.Kid {
	if p == nil {
		return nil
	}
	return p.Kids
}
