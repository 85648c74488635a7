package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfinder/campfinder-server/internal/domain"
)

func TestDefault_Consistent(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Empty(t, c.Check(), "embedded catalog should pass its own checks")
	assert.Len(t, c.Entries, 73)
	assert.Len(t, c.Categories, 5)
	assert.Len(t, c.Districts, 8)
}

func TestDefault_Lookups(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	districts := c.DistrictMap()
	bsd := districts[domain.DefaultDistrictID]
	require.True(t, bsd.HasDates())
	assert.Equal(t, "2026-06-23", *bsd.LastDay)
	assert.Equal(t, "2026-09-08", *bsd.FirstDay)
	assert.False(t, districts[domain.OtherDistrictID].HasDates())

	subs := c.SubcategoryMap()
	assert.Equal(t, "stem", subs["coding"].Category, "items inherit their group's category")
	assert.Equal(t, "arts", subs["dance"].Category)

	adj := c.AdjacencyMap()
	assert.Equal(t, []string{"engineering", "digital-arts"}, adj.Related("coding"))
	assert.Empty(t, adj.Related("unknown"))

	assert.Contains(t, c.Neighborhoods(), "kirkland")
	assert.Contains(t, c.Neighborhoods(), "seattle")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("entries: []\nsurprise: true\n"))
	assert.Error(t, err)
}

func TestParse_FillsEmptySlices(t *testing.T) {
	c, err := Parse([]byte(`
entries:
- id: e1
  name: One
`))
	require.NoError(t, err)
	require.Len(t, c.Entries, 1)
	assert.NotNil(t, c.Entries[0].Tags)
	assert.NotNil(t, c.Entries[0].Weeks)
}

func TestCheck_Problems(t *testing.T) {
	bad := "2026-13-40"
	c := &Catalog{
		Districts: []domain.District{
			{ID: "d1", LastDay: &bad, FirstDay: nil},
			{ID: "d1"},
		},
		Areas: []domain.NeighborhoodArea{
			{Area: "A", Neighborhoods: []domain.Neighborhood{{ID: "n1"}}},
		},
		Categories: []domain.Category{{ID: "stem"}, {ID: "arts"}},
		Subcategories: []SubcategoryGroup{
			{Category: "stem", Items: []domain.Subcategory{{ID: "coding"}}},
			{Category: "arts", Items: []domain.Subcategory{{ID: "dance"}}},
		},
		Adjacency: map[string][]string{"coding": {"robotics"}},
		Entries: []domain.CatalogEntry{
			{ID: "e1", Category: "stem", Subcategory: "dance", Neighborhood: "n1", Weeks: []string{"w1"}},
			{ID: "e2", Category: "sports", Subcategory: "coding", Neighborhood: "nowhere"},
		},
	}

	problems := c.Check()
	var got, where []string
	for _, p := range problems {
		got = append(got, p.String())
		where = append(where, p.Where)
	}

	assert.Contains(t, got, `adjacency coding: unknown target "robotics"`)
	assert.Contains(t, got, "district d1: duplicate id")
	assert.Contains(t, got, "district d1: lastDay and firstDay must both be set or both be null")
	assert.Contains(t, got, `district d1: invalid date "2026-13-40"`)
	assert.Contains(t, got, `entry e1: subcategory "dance" belongs to "arts", not "stem"`)
	assert.Contains(t, got, `entry e1: malformed week id "w1"`)
	assert.Contains(t, got, `entry e2: unknown category "sports"`)
	assert.Contains(t, got, `entry e2: unknown neighborhood "nowhere"`)
	assert.IsNonDecreasing(t, where)
}
