package providers

import (
	"os"

	"github.com/samber/do/v2"

	"github.com/campfinder/campfinder-server/internal/config"
	"github.com/campfinder/campfinder-server/internal/logger"
	"github.com/campfinder/campfinder-server/internal/store"
	"github.com/campfinder/campfinder-server/internal/store/sqlite"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore opens the configured store backend.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if err := os.MkdirAll(cfg.Data.Path, 0o755); err != nil {
		return nil, err
	}

	path := cfg.StorePath()
	var (
		st  store.Store
		err error
	)
	switch cfg.Data.Backend {
	case config.BackendSQLite:
		st, err = sqlite.Open(path, log.Component("store"))
	default:
		st, err = store.New(path, log.Component("store"))
	}
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "backend", cfg.Data.Backend, "path", path)

	return &StoreHandle{Store: st}, nil
}
