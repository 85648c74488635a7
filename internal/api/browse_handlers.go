package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/planner"
	"github.com/campfinder/campfinder-server/internal/service"
)

func (s *Server) registerBrowseRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "browse",
		Method:      http.MethodGet,
		Path:        "/api/v1/households/{id}/browse",
		Summary:     "Browse the catalog",
		Description: "Recommendations per kid, one-dropoff and discover sections, and the filtered catalog. A non-empty q switches to search.",
		Tags:        []string{"Browse"},
	}, s.handleBrowse)

	huma.Register(s.api, huma.Operation{
		OperationID: "categoryCounts",
		Method:      http.MethodGet,
		Path:        "/api/v1/households/{id}/categories",
		Summary:     "Category tab counts",
		Tags:        []string{"Browse"},
	}, s.handleCategoryCounts)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCard",
		Method:      http.MethodGet,
		Path:        "/api/v1/households/{id}/cards/{entryId}",
		Summary:     "Entry card",
		Tags:        []string{"Browse"},
	}, s.handleGetCard)
}

// BrowseInput carries the browse filters.
type BrowseInput struct {
	ID          string `path:"id" doc:"Household id"`
	Q           string `query:"q" doc:"Free text search"`
	Category    string `query:"category" doc:"Category id or all"`
	Subcategory string `query:"subcategory" doc:"Subcategory id or all"`
}

// BrowseOutput wraps the browse result for Huma.
type BrowseOutput struct {
	Body *service.BrowseResult
}

func (s *Server) handleBrowse(ctx context.Context, input *BrowseInput) (*BrowseOutput, error) {
	q := domain.Query{
		Text:        input.Q,
		Category:    input.Category,
		Subcategory: input.Subcategory,
	}
	res, err := s.services.Browse.Browse(ctx, input.ID, q)
	if err != nil {
		return nil, statusError(err)
	}
	return &BrowseOutput{Body: res}, nil
}

// CategoryCountsResponse lists the category tabs.
type CategoryCountsResponse struct {
	Categories []planner.CategoryCount `json:"categories"`
}

// CategoryCountsOutput wraps the counts for Huma.
type CategoryCountsOutput struct {
	Body CategoryCountsResponse
}

func (s *Server) handleCategoryCounts(ctx context.Context, input *HouseholdInput) (*CategoryCountsOutput, error) {
	counts, err := s.services.Browse.CategoryCounts(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &CategoryCountsOutput{Body: CategoryCountsResponse{Categories: counts}}, nil
}

// CardInput names an entry for a household.
type CardInput struct {
	ID      string `path:"id" doc:"Household id"`
	EntryID string `path:"entryId" doc:"Catalog entry id"`
}

// CardOutput wraps the card for Huma.
type CardOutput struct {
	Body *planner.Card
}

func (s *Server) handleGetCard(ctx context.Context, input *CardInput) (*CardOutput, error) {
	card, err := s.services.Browse.Card(ctx, input.ID, input.EntryID)
	if err != nil {
		return nil, statusError(err)
	}
	return &CardOutput{Body: card}, nil
}
