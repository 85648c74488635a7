package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfinder/campfinder-server/internal/domain"
)

func twoKidProfile() *domain.Profile {
	return testProfile(
		domain.Kid{Name: "Ava", Age: 9, Color: "#2e86de", Interests: []string{"coding"}},
		domain.Kid{Name: "Ben", Age: 6, Color: "#e84393", Interests: []string{"dance"}},
	)
}

func TestCategoryCounts(t *testing.T) {
	counts := CategoryCounts(testEntries(), twoKidProfile(), testCategories())

	require.Len(t, counts, 3)
	assert.Equal(t, CategoryCount{ID: "all-camps", Label: "All Camps", Count: 4}, counts[0])
	assert.Equal(t, "stem", counts[1].ID)
	assert.Equal(t, 2, counts[1].Count)
	assert.Equal(t, "arts", counts[2].ID)
	assert.Equal(t, 2, counts[2].Count)
}

func TestScheduleByWeek(t *testing.T) {
	p := twoKidProfile()
	weeks := PartitionWeeks(p.SummerStart, p.SummerEnd)
	s := domain.Schedule{
		{EntryID: "ballet", WeekID: "w03"}:      {1},
		{EntryID: "code-ninjas", WeekID: "w01"}: {0, 1},
		{EntryID: "pixel-art", WeekID: "w01"}:   {0},
		{EntryID: "gone", WeekID: "w02"}:        {0},
		{EntryID: "pixel-art", WeekID: "w99"}:   {0},
	}

	got := ScheduleByWeek(s, weeks, testEntries(), p, testCategories())

	require.Len(t, got, 2)
	assert.Equal(t, "w01", got[0].Week.ID)
	require.Len(t, got[0].Items, 2)
	assert.Equal(t, ScheduleItem{
		EntryID:       "code-ninjas",
		EntryName:     "Code Ninjas Camp",
		CategoryLabel: "STEM",
		Assignment:    domain.Assignment{0, 1},
		KidNames:      "Ava, Ben",
		Color:         "#3E6B48",
	}, got[0].Items[0])
	assert.Equal(t, "pixel-art", got[0].Items[1].EntryID)
	assert.Equal(t, "#2e86de", got[0].Items[1].Color)

	assert.Equal(t, "w03", got[1].Week.ID)
	assert.Equal(t, "Ben", got[1].Items[0].KidNames)
}

func TestScheduleByWeek_Empty(t *testing.T) {
	got := ScheduleByWeek(domain.Schedule{}, PartitionWeeks("2026-06-23", "2026-09-08"), testEntries(), twoKidProfile(), testCategories())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCalendar(t *testing.T) {
	p := twoKidProfile()
	weeks := PartitionWeeks(p.SummerStart, p.SummerEnd)
	s := domain.Schedule{
		{EntryID: "ballet", WeekID: "w03"}:      {1},
		{EntryID: "pixel-art", WeekID: "w01"}:   {0},
		{EntryID: "lego-eng", WeekID: "w02"}:    {0, 1},
		{EntryID: "code-ninjas", WeekID: "w01"}: {0},
		{EntryID: "gone", WeekID: "w01"}:        {0},
	}

	view := Calendar(s, weeks, testEntries(), p, testCategories())

	require.Len(t, view.Columns, 12)
	assert.True(t, view.Columns[0].School)
	assert.False(t, view.Columns[1].School)
	assert.True(t, view.Columns[11].School)

	// stem before arts, then by name.
	var names []string
	for _, r := range view.Rows {
		names = append(names, r.Name)
		assert.Len(t, r.Cells, 12)
	}
	assert.Equal(t, []string{"Code Ninjas Camp", "LEGO Engineering", "Pixel Art Studio", "Summer Ballet"}, names)

	lego := view.Rows[1]
	assert.Empty(t, lego.Cells[0].Label)
	assert.Equal(t, CalendarCell{
		WeekID:     "w02",
		Assignment: domain.Assignment{0, 1},
		Label:      "A+B",
		Color:      "#3E6B48",
		Background: "rgba(62,107,72,0.12)",
	}, lego.Cells[1])
}

func TestCalendar_UnknownCategorySortsFirst(t *testing.T) {
	p := twoKidProfile()
	weeks := PartitionWeeks(p.SummerStart, p.SummerEnd)
	entries := append(testEntries(), domain.CatalogEntry{ID: "mystery", Name: "Zed Camp", Category: "misc", Neighborhood: "bellevue"})
	s := domain.Schedule{
		{EntryID: "code-ninjas", WeekID: "w01"}: {0},
		{EntryID: "mystery", WeekID: "w01"}:     {0},
	}

	view := Calendar(s, weeks, entries, p, testCategories())

	require.Len(t, view.Rows, 2)
	assert.Equal(t, "mystery", view.Rows[0].EntryID)
}

func TestEntryCard(t *testing.T) {
	p := twoKidProfile()
	weeks := domain.IndexWeeks(PartitionWeeks(p.SummerStart, p.SummerEnd))
	s := domain.Schedule{{EntryID: "pixel-art", WeekID: "w01"}: {1}}
	entry := testEntries()[2] // pixel-art, weeks w01 and w99

	card := EntryCard(entry, p, s, weeks, testCategories(), testSubcategories())

	assert.Equal(t, "Arts", card.CategoryLabel)
	assert.Equal(t, "#8B4E8B", card.CategoryColor)
	assert.Equal(t, "Digital Arts", card.SubcategoryLabel)
	assert.False(t, card.Recommended)
	assert.True(t, card.AgeMatch)
	assert.Equal(t, "(click to schedule)", card.WeeksHint)

	require.Len(t, card.Weeks, 1)
	chip := card.Weeks[0]
	assert.True(t, chip.Assigned)
	assert.Equal(t, "B Jun 22–26", chip.Label)
	assert.Equal(t, "#e84393", chip.Color)
	assert.Equal(t, "rgba(232,67,147,0.12)", chip.Background)
	assert.Equal(t, "Click to cycle: Ava → Ben → All → off", chip.Hint)
}

func TestEntryCard_Defaults(t *testing.T) {
	p := twoKidProfile()
	weeks := domain.IndexWeeks(PartitionWeeks(p.SummerStart, p.SummerEnd))
	entry := domain.CatalogEntry{ID: "x", Category: "misc", Subcategory: "dance", AgeRange: "all ages", Weeks: []string{"w02"}}

	card := EntryCard(entry, p, domain.Schedule{}, weeks, testCategories(), testSubcategories())

	assert.Equal(t, "misc", card.CategoryLabel)
	assert.Equal(t, DefaultCategoryColor, card.CategoryColor)
	assert.True(t, card.Recommended)
	assert.False(t, card.AgeMatch)
	require.Len(t, card.Weeks, 1)
	assert.False(t, card.Weeks[0].Assigned)
	assert.Equal(t, "Jun 29–Jul 3", card.Weeks[0].Label)
}
