package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/campfinder/campfinder-server/internal/catalog"
	"github.com/campfinder/campfinder-server/internal/config"
	"github.com/campfinder/campfinder-server/internal/logger"
	"github.com/campfinder/campfinder-server/internal/watcher"
)

// ProvideCatalog loads the catalog: the override file when configured,
// otherwise the embedded one.
func ProvideCatalog(i do.Injector) (*catalog.Source, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return catalog.NewSource(cfg.Catalog.Path, log.Component("catalog"))
}

// CatalogWatcherHandle stops the catalog file watcher on shutdown.
type CatalogWatcherHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Shutdown implements do.Shutdownable.
func (h *CatalogWatcherHandle) Shutdown() error {
	h.cancel()
	<-h.done
	return nil
}

// ProvideCatalogWatcher reloads the catalog override file when it changes.
// It does nothing without an override file or when watching is disabled.
func ProvideCatalogWatcher(i do.Injector) (*CatalogWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	src := do.MustInvoke[*catalog.Source](i)

	ctx, cancel := context.WithCancel(context.Background())
	h := &CatalogWatcherHandle{cancel: cancel, done: make(chan struct{})}

	if src.Path() == "" || !cfg.Catalog.Watch {
		close(h.done)
		return h, nil
	}

	go func() {
		defer close(h.done)
		if err := src.WatchFile(ctx, watcher.Options{}); err != nil {
			log.Error("Catalog watcher stopped", "path", src.Path(), "error", err)
		}
	}()

	log.Info("Watching catalog file", "path", src.Path())

	return h, nil
}
