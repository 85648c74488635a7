package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/campfinder/campfinder-server/internal/planner"
	"github.com/campfinder/campfinder-server/internal/service"
)

func (s *Server) registerScheduleRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "cycleAssignment",
		Method:      http.MethodPost,
		Path:        "/api/v1/households/{id}/schedule/cycle",
		Summary:     "Cycle an assignment",
		Description: "Advances the assignment of an entry in a week to the next kid combination, wrapping back to unscheduled.",
		Tags:        []string{"Schedule"},
	}, s.handleCycle)

	huma.Register(s.api, huma.Operation{
		OperationID:   "removeFromSchedule",
		Method:        http.MethodDelete,
		Path:          "/api/v1/households/{id}/schedule/{entryId}/{weekId}",
		Summary:       "Remove from schedule",
		Tags:          []string{"Schedule"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleRemove)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSchedule",
		Method:      http.MethodGet,
		Path:        "/api/v1/households/{id}/schedule",
		Summary:     "Schedule by week",
		Tags:        []string{"Schedule"},
	}, s.handleGetSchedule)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCalendar",
		Method:      http.MethodGet,
		Path:        "/api/v1/households/{id}/calendar",
		Summary:     "Calendar grid",
		Tags:        []string{"Schedule"},
	}, s.handleGetCalendar)

	huma.Register(s.api, huma.Operation{
		OperationID: "exportSchedule",
		Method:      http.MethodGet,
		Path:        "/api/v1/households/{id}/schedule/export",
		Summary:     "Export schedule",
		Description: "Returns the stored schedule as a map of \"{entryId}::{weekId}\" to kid indices",
		Tags:        []string{"Schedule"},
	}, s.handleExportSchedule)
}

// CycleRequest names the schedule cell to advance.
type CycleRequest struct {
	EntryID string `json:"entryId" minLength:"1" doc:"Catalog entry id"`
	WeekID  string `json:"weekId" minLength:"1" doc:"Week id, e.g. w01"`
}

// CycleInput is the cycle request for a household.
type CycleInput struct {
	ID   string `path:"id" doc:"Household id"`
	Body CycleRequest
}

// CycleOutput wraps the cycle result for Huma.
type CycleOutput struct {
	Body *service.CycleResult
}

func (s *Server) handleCycle(ctx context.Context, input *CycleInput) (*CycleOutput, error) {
	res, err := s.services.Schedules.Cycle(ctx, input.ID, input.Body.EntryID, input.Body.WeekID)
	if err != nil {
		return nil, statusError(err)
	}
	return &CycleOutput{Body: res}, nil
}

// RemoveInput names a schedule cell.
type RemoveInput struct {
	ID      string `path:"id" doc:"Household id"`
	EntryID string `path:"entryId" doc:"Catalog entry id"`
	WeekID  string `path:"weekId" doc:"Week id"`
}

func (s *Server) handleRemove(ctx context.Context, input *RemoveInput) (*struct{}, error) {
	if err := s.services.Schedules.Remove(ctx, input.ID, input.EntryID, input.WeekID); err != nil {
		return nil, statusError(err)
	}
	return nil, nil
}

// ScheduleOutput wraps the schedule overview for Huma.
type ScheduleOutput struct {
	Body *service.ScheduleOverview
}

func (s *Server) handleGetSchedule(ctx context.Context, input *HouseholdInput) (*ScheduleOutput, error) {
	ov, err := s.services.Schedules.ByWeek(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &ScheduleOutput{Body: ov}, nil
}

// CalendarOutput wraps the calendar grid for Huma.
type CalendarOutput struct {
	Body *planner.CalendarView
}

func (s *Server) handleGetCalendar(ctx context.Context, input *HouseholdInput) (*CalendarOutput, error) {
	cal, err := s.services.Schedules.Calendar(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &CalendarOutput{Body: cal}, nil
}

// ScheduleExport is the schedule in its stored form.
type ScheduleExport struct {
	Schedule map[string][]int `json:"schedule"`
}

// ScheduleExportOutput wraps the export for Huma.
type ScheduleExportOutput struct {
	Body ScheduleExport
}

func (s *Server) handleExportSchedule(ctx context.Context, input *HouseholdInput) (*ScheduleExportOutput, error) {
	raw, err := s.services.Schedules.Raw(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &ScheduleExportOutput{Body: ScheduleExport{Schedule: raw}}, nil
}
