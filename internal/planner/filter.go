package planner

import (
	"strings"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/normalize"
)

// FilterCatalog applies the browse predicates in order: neighborhood, text,
// category, then subcategory. Text matching is a case-insensitive substring
// test over name, description, tags and provider.
func FilterCatalog(entries []domain.CatalogEntry, p *domain.Profile, q domain.Query) []domain.CatalogEntry {
	out := NeighborhoodCatalog(entries, p)

	if text := normalize.Fold(q.Text); text != "" {
		out = keep(out, func(e *domain.CatalogEntry) bool {
			return strings.Contains(searchText(e), text)
		})
	}

	if q.CategoryActive() {
		out = keep(out, func(e *domain.CatalogEntry) bool {
			return e.Category == q.Category
		})
	}

	if q.SubcategoryActive() {
		out = keep(out, func(e *domain.CatalogEntry) bool {
			return e.Subcategory == q.Subcategory
		})
	}

	return out
}

// KidRecommendations is the per-kid recommendation row.
type KidRecommendations struct {
	KidIndex int                   `json:"kidIndex"`
	Name     string                `json:"name"`
	Color    string                `json:"color"`
	Entries  []domain.CatalogEntry `json:"entries"`
}

// BrowseView is everything the browse screen shows for one query.
type BrowseView struct {
	Query     domain.Query         `json:"query"`
	Searching bool                 `json:"searching"`
	PerKid    []KidRecommendations `json:"perKid"`

	// DropoffNames is the "Ava & Ben" phrase shown with OneDropoff; empty
	// when that section is hidden.
	DropoffNames string                `json:"dropoffNames,omitempty"`
	OneDropoff   []domain.CatalogEntry `json:"oneDropoff"`
	Discover     []domain.CatalogEntry `json:"discover"`
	Results      []domain.CatalogEntry `json:"results"`
}

// Browse assembles the browse screen. While a text query is active the
// recommendation sections stay empty and only the filtered list is shown.
func Browse(entries []domain.CatalogEntry, p *domain.Profile, adjacency domain.AdjacencyMap, q domain.Query) BrowseView {
	q.Text = strings.TrimSpace(q.Text)
	view := BrowseView{
		Query:      q,
		Searching:  normalize.Fold(q.Text) != "",
		PerKid:     []KidRecommendations{},
		OneDropoff: []domain.CatalogEntry{},
		Discover:   []domain.CatalogEntry{},
		Results:    FilterCatalog(entries, p, q),
	}
	if view.Searching || p == nil {
		return view
	}

	for i, k := range p.Kids {
		recs := RecommendForKid(entries, p, i)
		if len(recs) == 0 {
			continue
		}
		view.PerKid = append(view.PerKid, KidRecommendations{
			KidIndex: i,
			Name:     k.Name,
			Color:    k.Color,
			Entries:  recs,
		})
	}

	view.OneDropoff = OneDropoff(entries, p)
	if len(view.OneDropoff) > 0 {
		view.DropoffNames = DropoffNames(p.Kids)
	}
	view.Discover = Discover(entries, p, adjacency)

	return view
}

func searchText(e *domain.CatalogEntry) string {
	return normalize.Haystack(e.Name, e.Description, strings.Join(e.Tags, " "), e.Provider)
}

func keep(entries []domain.CatalogEntry, pred func(*domain.CatalogEntry) bool) []domain.CatalogEntry {
	out := []domain.CatalogEntry{}
	for i := range entries {
		if pred(&entries[i]) {
			out = append(out, entries[i])
		}
	}
	return out
}
