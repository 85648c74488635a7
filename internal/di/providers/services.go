package providers

import (
	"github.com/samber/do/v2"

	"github.com/campfinder/campfinder-server/internal/catalog"
	"github.com/campfinder/campfinder-server/internal/logger"
	"github.com/campfinder/campfinder-server/internal/service"
)

// ProvideLocks provides the per-household locks shared by every service.
func ProvideLocks(i do.Injector) (*service.Locks, error) {
	return service.NewLocks(), nil
}

// ProvideProfileService provides the profile service.
func ProvideProfileService(i do.Injector) (*service.ProfileService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	src := do.MustInvoke[*catalog.Source](i)
	locks := do.MustInvoke[*service.Locks](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewProfileService(storeHandle.Store, src, locks, log.Component("profiles")), nil
}

// ProvideScheduleService provides the schedule service.
func ProvideScheduleService(i do.Injector) (*service.ScheduleService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	src := do.MustInvoke[*catalog.Source](i)
	locks := do.MustInvoke[*service.Locks](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewScheduleService(storeHandle.Store, src, locks, log.Component("schedule")), nil
}

// ProvideBrowseService provides the browse service.
func ProvideBrowseService(i do.Injector) (*service.BrowseService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	src := do.MustInvoke[*catalog.Source](i)
	locks := do.MustInvoke[*service.Locks](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBrowseService(storeHandle.Store, src, locks, log.Component("browse")), nil
}
