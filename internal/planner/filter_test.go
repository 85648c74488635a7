package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campfinder/campfinder-server/internal/domain"
)

func TestFilterCatalog(t *testing.T) {
	p := testProfile(domain.Kid{Name: "Ava"})

	tests := []struct {
		name  string
		query domain.Query
		want  []string
	}{
		{"no predicates", domain.Query{}, []string{"code-ninjas", "lego-eng", "pixel-art", "ballet"}},
		{"all selectors", domain.Query{Category: domain.AllCategories, Subcategory: domain.AllSubcategories}, []string{"code-ninjas", "lego-eng", "pixel-art", "ballet"}},
		{"text in name", domain.Query{Text: "LEGO"}, []string{"lego-eng"}},
		{"text in tags", domain.Query{Text: "python"}, []string{"code-ninjas"}},
		{"text in provider", domain.Query{Text: "play-well"}, []string{"lego-eng"}},
		{"text in description", domain.Query{Text: "  Digital "}, []string{"pixel-art"}},
		{"text outside neighborhoods", domain.Query{Text: "seattle"}, []string{}},
		{"category", domain.Query{Category: "arts"}, []string{"pixel-art", "ballet"}},
		{"category and subcategory", domain.Query{Category: "arts", Subcategory: "dance"}, []string{"ballet"}},
		{"subcategory ignored without category", domain.Query{Category: domain.AllCategories, Subcategory: "dance"}, []string{"code-ninjas", "lego-eng", "pixel-art", "ballet"}},
		{"text and category", domain.Query{Text: "camp", Category: "stem"}, []string{"code-ninjas"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entryIDs(FilterCatalog(testEntries(), p, tt.query)))
		})
	}
}

func TestBrowse_SectionsWithoutSearch(t *testing.T) {
	p := testProfile(
		domain.Kid{Name: "Ava", Color: "#2e86de", Interests: []string{"coding"}},
		domain.Kid{Name: "Ben", Color: "#e84393", Interests: []string{"coding", "dance"}},
	)

	view := Browse(testEntries(), p, testAdjacency(), domain.Query{})

	assert.False(t, view.Searching)
	if assert.Len(t, view.PerKid, 2) {
		assert.Equal(t, 0, view.PerKid[0].KidIndex)
		assert.Equal(t, []string{"code-ninjas"}, entryIDs(view.PerKid[0].Entries))
		assert.Equal(t, []string{"code-ninjas", "ballet"}, entryIDs(view.PerKid[1].Entries))
	}
	assert.Equal(t, []string{"code-ninjas"}, entryIDs(view.OneDropoff))
	assert.Equal(t, "Ava & Ben", view.DropoffNames)
	assert.Equal(t, []string{"lego-eng", "pixel-art"}, entryIDs(view.Discover))
	assert.Len(t, view.Results, 4)
}

func TestBrowse_SkipsKidsWithoutMatches(t *testing.T) {
	p := testProfile(
		domain.Kid{Name: "Ava", Interests: []string{"swimming"}},
		domain.Kid{Name: "Ben", Interests: []string{"dance"}},
	)

	view := Browse(testEntries(), p, testAdjacency(), domain.Query{})

	if assert.Len(t, view.PerKid, 1) {
		assert.Equal(t, 1, view.PerKid[0].KidIndex)
	}
	assert.Empty(t, view.OneDropoff)
	assert.Empty(t, view.DropoffNames)
}

func TestBrowse_SearchSuppressesRecommendations(t *testing.T) {
	p := testProfile(
		domain.Kid{Name: "Ava", Interests: []string{"coding"}},
		domain.Kid{Name: "Ben", Interests: []string{"coding"}},
	)

	view := Browse(testEntries(), p, testAdjacency(), domain.Query{Text: " Ballet "})

	assert.True(t, view.Searching)
	assert.Equal(t, "Ballet", view.Query.Text)
	assert.Empty(t, view.PerKid)
	assert.Empty(t, view.OneDropoff)
	assert.Empty(t, view.Discover)
	assert.Equal(t, []string{"ballet"}, entryIDs(view.Results))
}

func TestBrowse_BlankSearchIsNotSearching(t *testing.T) {
	p := testProfile(domain.Kid{Name: "Ava", Interests: []string{"coding"}})

	view := Browse(testEntries(), p, testAdjacency(), domain.Query{Text: "   "})

	assert.False(t, view.Searching)
	assert.Len(t, view.PerKid, 1)
}
