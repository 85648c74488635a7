// Package di provides dependency injection configuration for the CampFinder server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/campfinder/campfinder-server/internal/catalog"
	"github.com/campfinder/campfinder-server/internal/config"
	"github.com/campfinder/campfinder-server/internal/di/providers"
	"github.com/campfinder/campfinder-server/internal/logger"
	"github.com/campfinder/campfinder-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Data
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideCatalog)

	// Business services
	do.Provide(injector, providers.ProvideLocks)
	do.Provide(injector, providers.ProvideProfileService)
	do.Provide(injector, providers.ProvideScheduleService)
	do.Provide(injector, providers.ProvideBrowseService)

	// Workers
	do.Provide(injector, providers.ProvideCatalogWatcher)

	// Server
	do.Provide(injector, providers.ProvideRateLimiter)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services. Invoking the HTTP server last starts
// it once everything it depends on is ready.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*catalog.Source](injector)

	_ = do.MustInvoke[*service.ProfileService](injector)
	_ = do.MustInvoke[*service.ScheduleService](injector)
	_ = do.MustInvoke[*service.BrowseService](injector)

	_ = do.MustInvoke[*providers.CatalogWatcherHandle](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
