package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/planner"
	"github.com/campfinder/campfinder-server/internal/service"
)

func (s *Server) registerHouseholdRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createHousehold",
		Method:        http.MethodPost,
		Path:          "/api/v1/households",
		Summary:       "Create household",
		Description:   "Allocates a household id. Nothing is stored until onboarding completes.",
		Tags:          []string{"Households"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateHousehold)

	huma.Register(s.api, huma.Operation{
		OperationID: "getProfile",
		Method:      http.MethodGet,
		Path:        "/api/v1/households/{id}/profile",
		Summary:     "Get profile",
		Description: "Returns the migrated profile with its derived display strings",
		Tags:        []string{"Households"},
	}, s.handleGetProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "saveProfile",
		Method:      http.MethodPut,
		Path:        "/api/v1/households/{id}/profile",
		Summary:     "Save profile",
		Description: "Stores a profile edited in settings. Schedule cells for removed kids are dropped.",
		Tags:        []string{"Households"},
	}, s.handleSaveProfile)

	huma.Register(s.api, huma.Operation{
		OperationID:   "resetHousehold",
		Method:        http.MethodDelete,
		Path:          "/api/v1/households/{id}/profile",
		Summary:       "Reset household",
		Description:   "Deletes the profile, schedule and how-to flag",
		Tags:          []string{"Households"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleResetHousehold)

	huma.Register(s.api, huma.Operation{
		OperationID: "onboard",
		Method:      http.MethodPost,
		Path:        "/api/v1/households/{id}/onboarding",
		Summary:     "Complete onboarding",
		Tags:        []string{"Households"},
	}, s.handleOnboard)

	huma.Register(s.api, huma.Operation{
		OperationID: "getOnboardingDraft",
		Method:      http.MethodGet,
		Path:        "/api/v1/households/{id}/onboarding",
		Summary:     "Onboarding wizard pre-fill",
		Description: "Returns the wizard filled from the stored profile, or an empty wizard for a new household",
		Tags:        []string{"Households"},
	}, s.handleGetOnboardingDraft)

	huma.Register(s.api, huma.Operation{
		OperationID: "getHouseholdWeeks",
		Method:      http.MethodGet,
		Path:        "/api/v1/households/{id}/weeks",
		Summary:     "Household week grid",
		Tags:        []string{"Households"},
	}, s.handleGetHouseholdWeeks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getHowto",
		Method:      http.MethodGet,
		Path:        "/api/v1/households/{id}/howto",
		Summary:     "How-to banner state",
		Tags:        []string{"Households"},
	}, s.handleGetHowto)

	huma.Register(s.api, huma.Operation{
		OperationID: "setHowto",
		Method:      http.MethodPut,
		Path:        "/api/v1/households/{id}/howto",
		Summary:     "Set how-to banner state",
		Tags:        []string{"Households"},
	}, s.handleSetHowto)
}

// HouseholdInput identifies a household.
type HouseholdInput struct {
	ID string `path:"id" doc:"Household id"`
}

// HouseholdResponse carries a newly created household id.
type HouseholdResponse struct {
	HouseholdID string `json:"householdId"`
}

// HouseholdOutput wraps the household response for Huma.
type HouseholdOutput struct {
	Body HouseholdResponse
}

func (s *Server) handleCreateHousehold(ctx context.Context, _ *struct{}) (*HouseholdOutput, error) {
	hh, err := s.services.Profiles.CreateHousehold(ctx)
	if err != nil {
		return nil, statusError(err)
	}
	return &HouseholdOutput{Body: HouseholdResponse{HouseholdID: hh}}, nil
}

// ProfileOutput wraps a profile view for Huma.
type ProfileOutput struct {
	Body *service.ProfileView
}

func (s *Server) handleGetProfile(ctx context.Context, input *HouseholdInput) (*ProfileOutput, error) {
	v, err := s.services.Profiles.Get(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &ProfileOutput{Body: v}, nil
}

// ProfileRequest is a profile sent by settings. Every field is optional so
// that profiles written by older clients reach migration intact.
type ProfileRequest struct {
	District      string       `json:"district,omitempty" doc:"School district id, bsd405 when missing"`
	SummerStart   string       `json:"summerStart,omitempty" doc:"Last day of school (YYYY-MM-DD)"`
	SummerEnd     string       `json:"summerEnd,omitempty" doc:"First day of the next school year (YYYY-MM-DD)"`
	Neighborhoods []string     `json:"neighborhoods,omitempty"`
	Kids          []KidRequest `json:"kids,omitempty"`
	Interests     []string     `json:"interests,omitempty" doc:"Household-wide interests from older clients, copied to kids without any"`
}

// KidRequest is one kid in a ProfileRequest.
type KidRequest struct {
	Name      string   `json:"name,omitempty"`
	Age       int      `json:"age,omitempty"`
	Color     string   `json:"color,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// Profile converts the request, keeping missing slices nil.
func (r *ProfileRequest) Profile() *domain.Profile {
	p := &domain.Profile{
		District:        r.District,
		SummerStart:     r.SummerStart,
		SummerEnd:       r.SummerEnd,
		Neighborhoods:   r.Neighborhoods,
		LegacyInterests: r.Interests,
	}
	if r.Kids != nil {
		p.Kids = make([]domain.Kid, len(r.Kids))
		for i, k := range r.Kids {
			p.Kids[i] = domain.Kid{Name: k.Name, Age: k.Age, Color: k.Color, Interests: k.Interests}
		}
	}
	return p
}

// SaveProfileInput is a profile replacing the stored one.
type SaveProfileInput struct {
	ID   string `path:"id" doc:"Household id"`
	Body ProfileRequest
}

func (s *Server) handleSaveProfile(ctx context.Context, input *SaveProfileInput) (*ProfileOutput, error) {
	v, err := s.services.Profiles.Save(ctx, input.ID, input.Body.Profile())
	if err != nil {
		return nil, statusError(err)
	}
	return &ProfileOutput{Body: v}, nil
}

func (s *Server) handleResetHousehold(ctx context.Context, input *HouseholdInput) (*struct{}, error) {
	if err := s.services.Profiles.Reset(ctx, input.ID); err != nil {
		return nil, statusError(err)
	}
	return nil, nil
}

// OnboardInput is the setup wizard payload.
type OnboardInput struct {
	ID   string `path:"id" doc:"Household id"`
	Body planner.OnboardingInput
}

func (s *Server) handleOnboard(ctx context.Context, input *OnboardInput) (*ProfileOutput, error) {
	v, err := s.services.Profiles.Onboard(ctx, input.ID, input.Body)
	if err != nil {
		return nil, statusError(err)
	}
	return &ProfileOutput{Body: v}, nil
}

// OnboardingDraftOutput wraps the wizard pre-fill for Huma.
type OnboardingDraftOutput struct {
	Body planner.OnboardingInput
}

func (s *Server) handleGetOnboardingDraft(ctx context.Context, input *HouseholdInput) (*OnboardingDraftOutput, error) {
	draft, err := s.services.Profiles.Draft(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &OnboardingDraftOutput{Body: draft}, nil
}

// WeeksResponse is a household's week grid.
type WeeksResponse struct {
	Weeks []domain.Week `json:"weeks"`
}

// WeeksOutput wraps the weeks response for Huma.
type WeeksOutput struct {
	Body WeeksResponse
}

func (s *Server) handleGetHouseholdWeeks(ctx context.Context, input *HouseholdInput) (*WeeksOutput, error) {
	weeks, err := s.services.Profiles.Weeks(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &WeeksOutput{Body: WeeksResponse{Weeks: weeks}}, nil
}

// HowtoBody is the how-to banner flag.
type HowtoBody struct {
	Seen bool `json:"seen" doc:"Whether the how-to banner was dismissed"`
}

// HowtoOutput wraps the flag for Huma.
type HowtoOutput struct {
	Body HowtoBody
}

// SetHowtoInput sets the flag.
type SetHowtoInput struct {
	ID   string `path:"id" doc:"Household id"`
	Body HowtoBody
}

func (s *Server) handleGetHowto(ctx context.Context, input *HouseholdInput) (*HowtoOutput, error) {
	seen, err := s.services.Profiles.HowtoSeen(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &HowtoOutput{Body: HowtoBody{Seen: seen}}, nil
}

func (s *Server) handleSetHowto(ctx context.Context, input *SetHowtoInput) (*HowtoOutput, error) {
	if err := s.services.Profiles.MarkHowtoSeen(ctx, input.ID, input.Body.Seen); err != nil {
		return nil, statusError(err)
	}
	return &HowtoOutput{Body: input.Body}, nil
}
