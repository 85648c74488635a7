// Package storetest holds behaviour tests shared by every store.Store
// implementation.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/store"
)

// Factory opens a fresh, empty store for one test.
type Factory func(t *testing.T) store.Store

// SampleProfile returns a migrated two-kid profile.
func SampleProfile() *domain.Profile {
	return &domain.Profile{
		District:      "bsd405",
		SummerStart:   "2026-06-23",
		SummerEnd:     "2026-09-08",
		Neighborhoods: []string{"bellevue", "kirkland"},
		Kids: []domain.Kid{
			{Name: "Ava", Age: 9, Color: "#2e86de", Interests: []string{"coding", "dance"}},
			{Name: "Ben", Age: 7, Color: "#e84393", Interests: []string{}},
		},
	}
}

// Run exercises the full Store contract against the implementation.
func Run(t *testing.T, open Factory) {
	t.Run("ProfileRoundTrip", func(t *testing.T) { testProfileRoundTrip(t, open(t)) })
	t.Run("ProfileMissing", func(t *testing.T) { testProfileMissing(t, open(t)) })
	t.Run("ScheduleRoundTrip", func(t *testing.T) { testScheduleRoundTrip(t, open(t)) })
	t.Run("EmptyScheduleDeletes", func(t *testing.T) { testEmptyScheduleDeletes(t, open(t)) })
	t.Run("Howto", func(t *testing.T) { testHowto(t, open(t)) })
	t.Run("DeleteHousehold", func(t *testing.T) { testDeleteHousehold(t, open(t)) })
	t.Run("ListHouseholds", func(t *testing.T) { testListHouseholds(t, open(t)) })
	t.Run("InvalidHousehold", func(t *testing.T) { testInvalidHousehold(t, open(t)) })
	t.Run("CancelledContext", func(t *testing.T) { testCancelledContext(t, open(t)) })
	t.Run("Ping", func(t *testing.T) { assert.NoError(t, open(t).Ping(context.Background())) })
}

func testProfileRoundTrip(t *testing.T, s store.Store) {
	ctx := context.Background()
	want := SampleProfile()

	require.NoError(t, s.SaveProfile(ctx, "hh-1", want))

	got, err := s.GetProfile(ctx, "hh-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	want.Kids[1].Interests = []string{"music"}
	require.NoError(t, s.SaveProfile(ctx, "hh-1", want))
	got, err = s.GetProfile(ctx, "hh-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"music"}, got.Kids[1].Interests)

	require.NoError(t, s.DeleteProfile(ctx, "hh-1"))
	_, err = s.GetProfile(ctx, "hh-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testProfileMissing(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.GetProfile(ctx, "hh-none")
	assert.ErrorIs(t, err, store.ErrProfileNotFound)

	assert.NoError(t, s.DeleteProfile(ctx, "hh-none"), "deleting a missing profile is fine")
	assert.Error(t, s.SaveProfile(ctx, "hh-none", nil))
}

func testScheduleRoundTrip(t *testing.T, s store.Store) {
	ctx := context.Background()

	empty, err := s.GetSchedule(ctx, "hh-1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	want := domain.Schedule{
		{EntryID: "code-ninjas", WeekID: "w01"}: {0},
		{EntryID: "code-ninjas", WeekID: "w02"}: {0, 1},
		{EntryID: "lego-eng", WeekID: "w03"}:    {1},
	}
	require.NoError(t, s.SaveSchedule(ctx, "hh-1", want))

	got, err := s.GetSchedule(ctx, "hh-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, s.DeleteSchedule(ctx, "hh-1"))
	got, err = s.GetSchedule(ctx, "hh-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testEmptyScheduleDeletes(t *testing.T, s store.Store) {
	ctx := context.Background()

	require.NoError(t, s.SaveSchedule(ctx, "hh-1", domain.Schedule{{EntryID: "a", WeekID: "w01"}: {0}}))
	require.NoError(t, s.SaveSchedule(ctx, "hh-1", domain.Schedule{}))

	households, err := s.ListHouseholds(ctx)
	require.NoError(t, err)
	assert.Empty(t, households, "an empty schedule leaves nothing stored")
}

func testHowto(t *testing.T, s store.Store) {
	ctx := context.Background()

	seen, err := s.HowtoSeen(ctx, "hh-1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, s.MarkHowtoSeen(ctx, "hh-1", true))
	seen, err = s.HowtoSeen(ctx, "hh-1")
	require.NoError(t, err)
	assert.True(t, seen)

	require.NoError(t, s.MarkHowtoSeen(ctx, "hh-1", false))
	seen, err = s.HowtoSeen(ctx, "hh-1")
	require.NoError(t, err)
	assert.False(t, seen)
}

func testDeleteHousehold(t *testing.T, s store.Store) {
	ctx := context.Background()

	for _, hh := range []string{"hh-1", "hh-2"} {
		require.NoError(t, s.SaveProfile(ctx, hh, SampleProfile()))
		require.NoError(t, s.SaveSchedule(ctx, hh, domain.Schedule{{EntryID: "a", WeekID: "w01"}: {0}}))
		require.NoError(t, s.MarkHowtoSeen(ctx, hh, true))
	}

	require.NoError(t, s.DeleteHousehold(ctx, "hh-1"))

	_, err := s.GetProfile(ctx, "hh-1")
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
	sched, err := s.GetSchedule(ctx, "hh-1")
	require.NoError(t, err)
	assert.Empty(t, sched)
	seen, err := s.HowtoSeen(ctx, "hh-1")
	require.NoError(t, err)
	assert.False(t, seen)

	_, err = s.GetProfile(ctx, "hh-2")
	assert.NoError(t, err, "other households are untouched")

	assert.NoError(t, s.DeleteHousehold(ctx, "hh-never"))
}

func testListHouseholds(t *testing.T, s store.Store) {
	ctx := context.Background()

	require.NoError(t, s.SaveProfile(ctx, "hh-b", SampleProfile()))
	require.NoError(t, s.SaveSchedule(ctx, "hh-b", domain.Schedule{{EntryID: "a", WeekID: "w01"}: {0}}))
	require.NoError(t, s.MarkHowtoSeen(ctx, "hh-a", true))

	households, err := s.ListHouseholds(ctx)
	require.NoError(t, err)
	require.Len(t, households, 2)

	assert.Equal(t, "hh-a", households[0].ID)
	assert.True(t, households[0].HowtoSeen)
	assert.Zero(t, households[0].ProfileBytes)

	assert.Equal(t, "hh-b", households[1].ID)
	assert.False(t, households[1].HowtoSeen)
	assert.Positive(t, households[1].ProfileBytes)
	assert.Equal(t, len(`{"a::w01":[0]}`), households[1].ScheduleBytes)
}

func testInvalidHousehold(t *testing.T, s store.Store) {
	ctx := context.Background()

	for _, id := range []string{"", "a:b", "a/b"} {
		_, err := s.GetProfile(ctx, id)
		assert.ErrorIs(t, err, store.ErrInvalidInput, "id %q", id)
		assert.ErrorIs(t, s.SaveSchedule(ctx, id, domain.Schedule{}), store.ErrInvalidInput, "id %q", id)
	}
}

func testCancelledContext(t *testing.T, s store.Store) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetProfile(ctx, "hh-1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.SaveProfile(ctx, "hh-1", SampleProfile()), context.Canceled)
	_, err = s.GetSchedule(ctx, "hh-1")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.ListHouseholds(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}
