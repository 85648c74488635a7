package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/campfinder/campfinder-server/internal/catalog"
	"github.com/campfinder/campfinder-server/internal/domain"
	domainerrors "github.com/campfinder/campfinder-server/internal/errors"
	"github.com/campfinder/campfinder-server/internal/planner"
)

func (s *Server) registerCatalogRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog",
		Summary:     "Catalog taxonomy",
		Description: "Categories, subcategories, neighborhood areas and school districts",
		Tags:        []string{"Catalog"},
	}, s.handleGetCatalog)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCatalogEntries",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/entries",
		Summary:     "List catalog entries",
		Tags:        []string{"Catalog"},
	}, s.handleListEntries)

	huma.Register(s.api, huma.Operation{
		OperationID: "previewDistrict",
		Method:      http.MethodGet,
		Path:        "/api/v1/districts/{id}/preview",
		Summary:     "Preview a district's summer",
		Description: "Returns the week grid for a district. Districts without published dates take lastDay and firstDay from the query.",
		Tags:        []string{"Catalog"},
	}, s.handlePreviewDistrict)

	huma.Register(s.api, huma.Operation{
		OperationID: "partitionWeeks",
		Method:      http.MethodGet,
		Path:        "/api/v1/weeks",
		Summary:     "Partition a summer into weeks",
		Tags:        []string{"Catalog"},
	}, s.handlePartitionWeeks)
}

// DistrictSummary is a district with its summer preview string.
type DistrictSummary struct {
	domain.District
	Preview string `json:"preview,omitempty" doc:"e.g. 12 weeks, Jun 23–Sep 8"`
}

// CatalogResponse is the taxonomy a client needs to render the wizard and
// browse filters.
type CatalogResponse struct {
	Categories    []domain.Category          `json:"categories"`
	Subcategories []catalog.SubcategoryGroup `json:"subcategories"`
	Areas         []domain.NeighborhoodArea  `json:"areas"`
	Districts     []DistrictSummary          `json:"districts"`
	EntryCount    int                        `json:"entryCount"`
}

// CatalogOutput wraps the catalog response for Huma.
type CatalogOutput struct {
	Body CatalogResponse
}

func (s *Server) handleGetCatalog(_ context.Context, _ *struct{}) (*CatalogOutput, error) {
	snap := s.catalog.Current()
	c := snap.Catalog

	districts := make([]DistrictSummary, 0, len(c.Districts))
	for _, d := range c.Districts {
		sum := DistrictSummary{District: d}
		if d.HasDates() {
			sum.Preview = planner.DistrictPreview(*d.LastDay, *d.FirstDay)
		}
		districts = append(districts, sum)
	}

	return &CatalogOutput{
		Body: CatalogResponse{
			Categories:    c.Categories,
			Subcategories: c.Subcategories,
			Areas:         c.Areas,
			Districts:     districts,
			EntryCount:    len(c.Entries),
		},
	}, nil
}

// EntriesResponse lists catalog entries.
type EntriesResponse struct {
	Entries []domain.CatalogEntry `json:"entries"`
	Count   int                   `json:"count"`
}

// EntriesOutput wraps the entries response for Huma.
type EntriesOutput struct {
	Body EntriesResponse
}

func (s *Server) handleListEntries(_ context.Context, _ *struct{}) (*EntriesOutput, error) {
	entries := s.catalog.Current().Entries()
	return &EntriesOutput{
		Body: EntriesResponse{Entries: entries, Count: len(entries)},
	}, nil
}

// DistrictPreviewInput selects a district and, for districts without
// dates, the custom summer.
type DistrictPreviewInput struct {
	ID       string `path:"id" doc:"District id"`
	LastDay  string `query:"lastDay" doc:"Last day of school (YYYY-MM-DD)"`
	FirstDay string `query:"firstDay" doc:"First day of the next school year (YYYY-MM-DD)"`
}

// SummerResponse is a summer and its week grid.
type SummerResponse struct {
	District    string        `json:"district,omitempty"`
	SummerStart string        `json:"summerStart"`
	SummerEnd   string        `json:"summerEnd"`
	Weeks       []domain.Week `json:"weeks"`
	Preview     string        `json:"preview"`
}

// SummerOutput wraps the summer response for Huma.
type SummerOutput struct {
	Body SummerResponse
}

func (s *Server) handlePreviewDistrict(_ context.Context, input *DistrictPreviewInput) (*SummerOutput, error) {
	d, ok := s.catalog.Current().Districts[input.ID]
	if !ok {
		return nil, statusError(domainerrors.NotFoundf("district %q not found", input.ID))
	}

	start, end := input.LastDay, input.FirstDay
	if d.HasDates() && d.ID != domain.OtherDistrictID {
		start, end = *d.LastDay, *d.FirstDay
	} else if err := checkSummerDates(start, end); err != nil {
		return nil, statusError(err)
	}

	return &SummerOutput{Body: summer(d.ID, start, end)}, nil
}

// WeeksInput is an ad hoc summer.
type WeeksInput struct {
	LastDay  string `query:"lastDay" doc:"Last day of school (YYYY-MM-DD)"`
	FirstDay string `query:"firstDay" doc:"First day of the next school year (YYYY-MM-DD)"`
}

// handlePartitionWeeks partitions any summer. Missing or unparsable dates
// give an empty grid rather than an error.
func (s *Server) handlePartitionWeeks(_ context.Context, input *WeeksInput) (*SummerOutput, error) {
	return &SummerOutput{Body: summer("", input.LastDay, input.FirstDay)}, nil
}

func summer(district, start, end string) SummerResponse {
	return SummerResponse{
		District:    district,
		SummerStart: start,
		SummerEnd:   end,
		Weeks:       planner.PartitionWeeks(start, end),
		Preview:     planner.DistrictPreview(start, end),
	}
}

// checkSummerDates requires two well-formed dates.
func checkSummerDates(start, end string) error {
	details := map[string]string{}
	if _, ok := planner.ParseDate(start); !ok {
		details["lastDay"] = "must be a YYYY-MM-DD date"
	}
	if _, ok := planner.ParseDate(end); !ok {
		details["firstDay"] = "must be a YYYY-MM-DD date"
	}
	if len(details) > 0 {
		return domainerrors.ValidationWithDetails("this district needs custom dates", details)
	}
	return nil
}
