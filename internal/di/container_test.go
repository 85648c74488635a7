package di

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfinder/campfinder-server/internal/config"
	"github.com/campfinder/campfinder-server/internal/di/providers"
	"github.com/campfinder/campfinder-server/internal/service"
)

// testContainer builds a container whose config comes from cfg instead of
// the process arguments.
func testContainer(t *testing.T, cfg *config.Config) *do.RootScope {
	t.Helper()

	injector := NewContainer()
	do.OverrideValue(injector, cfg)
	t.Cleanup(func() { _ = injector.Shutdown() })
	return injector
}

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	return &config.Config{
		App:    config.AppConfig{Environment: "test"},
		Logger: config.LoggerConfig{Level: "error"},
		Data:   config.DataConfig{Path: filepath.Join(t.TempDir(), "data"), Backend: backend},
		Server: config.ServerConfig{Port: "0"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
		Limits: config.RateLimitConfig{RPS: 10, Burst: 10},
	}
}

func TestContainer_ServicesShareStore(t *testing.T) {
	for _, backend := range []string{config.BackendBadger, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			injector := testContainer(t, testConfig(t, backend))

			profiles := do.MustInvoke[*service.ProfileService](injector)
			schedules := do.MustInvoke[*service.ScheduleService](injector)
			ctx := context.Background()

			hh, err := profiles.CreateHousehold(ctx)
			require.NoError(t, err)

			_, err = schedules.ByWeek(ctx, hh)
			require.Error(t, err, "no profile yet")

			st := do.MustInvoke[*providers.StoreHandle](injector)
			require.NoError(t, st.Ping(ctx))
		})
	}
}

func TestContainer_CreatesDataDirectory(t *testing.T) {
	cfg := testConfig(t, config.BackendBadger)
	injector := testContainer(t, cfg)

	_ = do.MustInvoke[*providers.StoreHandle](injector)

	info, err := os.Stat(cfg.Data.Path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestContainer_CatalogWatcherDisabledWithoutPath(t *testing.T) {
	injector := testContainer(t, testConfig(t, config.BackendBadger))

	h := do.MustInvoke[*providers.CatalogWatcherHandle](injector)
	require.NoError(t, h.Shutdown())
}
