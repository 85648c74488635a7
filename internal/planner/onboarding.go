package planner

import (
	"slices"
	"sync"

	"github.com/campfinder/campfinder-server/internal/color"
	"github.com/campfinder/campfinder-server/internal/domain"
	domainerrors "github.com/campfinder/campfinder-server/internal/errors"
	"github.com/campfinder/campfinder-server/internal/validation"
)

// Onboarding limits.
const (
	MaxKids    = 4
	MinKidAge  = 4
	MaxKidAge  = 16
	DefaultAge = 9
)

// OnboardingInput is what the setup wizard collects.
type OnboardingInput struct {
	District      string          `json:"district" validate:"required"`
	SummerStart   string          `json:"summerStart,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SummerEnd     string          `json:"summerEnd,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Neighborhoods []string        `json:"neighborhoods" validate:"min=1,dive,required"`
	Kids          []OnboardingKid `json:"kids" validate:"min=1,max=4,dive"`
}

// OnboardingKid is one kid as entered in the wizard. A zero Age means the
// default age.
type OnboardingKid struct {
	Name      string   `json:"name" validate:"required"`
	Age       int      `json:"age,omitempty" validate:"omitempty,gte=4,lte=16"`
	Interests []string `json:"interests" validate:"min=1,dive,required"`
}

var onboardingValidator = sync.OnceValue(validation.New)

// ValidateOnboarding checks wizard input and builds the profile it describes.
//
// A district is required. Districts with known dates always supply the
// summer and any dates in the input are ignored; "other" and undated
// districts must carry both dates. Kid i is given palette colour i.
func ValidateOnboarding(in OnboardingInput, districts map[string]domain.District) (*domain.Profile, error) {
	if err := onboardingValidator().Validate(in); err != nil {
		return nil, err
	}

	d, known := districts[in.District]
	if !known {
		return nil, domainerrors.ValidationWithDetails("validation failed", map[string]string{
			"district": "is unknown",
		})
	}

	start, end := in.SummerStart, in.SummerEnd
	if d.HasDates() && in.District != domain.OtherDistrictID {
		start, end = *d.LastDay, *d.FirstDay
	} else if start == "" || end == "" {
		details := map[string]string{}
		if start == "" {
			details["summerStart"] = "is required for this district"
		}
		if end == "" {
			details["summerEnd"] = "is required for this district"
		}
		return nil, domainerrors.ValidationWithDetails("validation failed", details)
	}

	p := &domain.Profile{
		District:      in.District,
		SummerStart:   start,
		SummerEnd:     end,
		Neighborhoods: slices.Clone(in.Neighborhoods),
		Kids:          make([]domain.Kid, len(in.Kids)),
	}
	for i, k := range in.Kids {
		age := k.Age
		if age == 0 {
			age = DefaultAge
		}
		p.Kids[i] = domain.Kid{
			Name:      k.Name,
			Age:       age,
			Color:     color.ForKid(i),
			Interests: slices.Clone(k.Interests),
		}
	}
	return p, nil
}

// OnboardingFromProfile pre-fills the wizard from an existing profile.
func OnboardingFromProfile(p *domain.Profile) OnboardingInput {
	if p == nil {
		return OnboardingInput{Neighborhoods: []string{}, Kids: []OnboardingKid{}}
	}
	in := OnboardingInput{
		District:      p.District,
		SummerStart:   p.SummerStart,
		SummerEnd:     p.SummerEnd,
		Neighborhoods: slices.Clone(p.Neighborhoods),
		Kids:          make([]OnboardingKid, len(p.Kids)),
	}
	for i, k := range p.Kids {
		interests := slices.Clone(k.Interests)
		if interests == nil {
			interests = []string{}
		}
		in.Kids[i] = OnboardingKid{Name: k.Name, Age: k.Age, Interests: interests}
	}
	return in
}
