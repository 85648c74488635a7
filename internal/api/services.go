package api

import (
	"github.com/campfinder/campfinder-server/internal/service"
)

// Services groups the business logic used by the API server.
type Services struct {
	Profiles  *service.ProfileService
	Schedules *service.ScheduleService
	Browse    *service.BrowseService
}
