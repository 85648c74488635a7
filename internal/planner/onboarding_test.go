package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfinder/campfinder-server/internal/domain"
	domainerrors "github.com/campfinder/campfinder-server/internal/errors"
)

func validOnboarding() OnboardingInput {
	return OnboardingInput{
		District:      "lwsd414",
		Neighborhoods: []string{"kirkland", "redmond"},
		Kids: []OnboardingKid{
			{Name: "Ava", Age: 11, Interests: []string{"coding"}},
			{Name: "Ben", Interests: []string{"dance", "theater"}},
		},
	}
}

func TestValidateOnboarding_BuildsProfile(t *testing.T) {
	p, err := ValidateOnboarding(validOnboarding(), testDistricts())
	require.NoError(t, err)

	assert.Equal(t, &domain.Profile{
		District:      "lwsd414",
		SummerStart:   "2026-06-18",
		SummerEnd:     "2026-09-02",
		Neighborhoods: []string{"kirkland", "redmond"},
		Kids: []domain.Kid{
			{Name: "Ava", Age: 11, Color: "#2e86de", Interests: []string{"coding"}},
			{Name: "Ben", Age: DefaultAge, Color: "#e84393", Interests: []string{"dance", "theater"}},
		},
	}, p)
	assert.True(t, p.Onboarded())
}

func TestValidateOnboarding_DistrictDatesWin(t *testing.T) {
	in := validOnboarding()
	in.SummerStart = "2026-06-20"
	in.SummerEnd = "2026-09-01"

	p, err := ValidateOnboarding(in, testDistricts())
	require.NoError(t, err)
	assert.Equal(t, "2026-06-18", p.SummerStart)
	assert.Equal(t, "2026-09-02", p.SummerEnd)
	assert.Equal(t, PartitionWeeks("2026-06-18", "2026-09-02"), PartitionWeeks(p.SummerStart, p.SummerEnd))
}

func TestValidateOnboarding_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*OnboardingInput)
		wantField string
	}{
		{"no district", func(in *OnboardingInput) { in.District = "" }, "district"},
		{"unknown district", func(in *OnboardingInput) { in.District = "atlantis" }, "district"},
		{"other without start", func(in *OnboardingInput) { in.District = "other"; in.SummerEnd = "2026-09-01" }, "summerStart"},
		{"other without end", func(in *OnboardingInput) { in.District = "other"; in.SummerStart = "2026-06-20" }, "summerEnd"},
		{"bad date", func(in *OnboardingInput) { in.SummerStart = "June 20" }, "summerStart"},
		{"no neighborhoods", func(in *OnboardingInput) { in.Neighborhoods = []string{} }, "neighborhoods"},
		{"no kids", func(in *OnboardingInput) { in.Kids = nil }, "kids"},
		{"too many kids", func(in *OnboardingInput) {
			for range 3 {
				in.Kids = append(in.Kids, OnboardingKid{Name: "X", Interests: []string{"coding"}})
			}
		}, "kids"},
		{"unnamed kid", func(in *OnboardingInput) { in.Kids[1].Name = "" }, "kids[1].name"},
		{"kid without interests", func(in *OnboardingInput) { in.Kids[0].Interests = []string{} }, "kids[0].interests"},
		{"kid too young", func(in *OnboardingInput) { in.Kids[0].Age = 2 }, "kids[0].age"},
		{"kid too old", func(in *OnboardingInput) { in.Kids[0].Age = 17 }, "kids[0].age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validOnboarding()
			tt.mutate(&in)

			p, err := ValidateOnboarding(in, testDistricts())
			assert.Nil(t, p)
			require.Error(t, err)
			assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Contains(t, details, tt.wantField)
		})
	}
}

func TestValidateOnboarding_OtherWithDates(t *testing.T) {
	in := validOnboarding()
	in.District = "other"
	in.SummerStart = "2026-06-12"
	in.SummerEnd = "2026-08-31"

	p, err := ValidateOnboarding(in, testDistricts())
	require.NoError(t, err)
	assert.Len(t, PartitionWeeks(p.SummerStart, p.SummerEnd), 11)
}

func TestOnboardingFromProfile_RoundTrip(t *testing.T) {
	p, err := ValidateOnboarding(validOnboarding(), testDistricts())
	require.NoError(t, err)

	again, err := ValidateOnboarding(OnboardingFromProfile(p), testDistricts())
	require.NoError(t, err)
	assert.Equal(t, p, again)

	empty := OnboardingFromProfile(nil)
	assert.NotNil(t, empty.Kids)
	assert.NotNil(t, empty.Neighborhoods)
}
