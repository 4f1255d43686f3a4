package team

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/psyclinic/internal/backend"
	"github.com/nfrund/psyclinic/internal/config"
	"github.com/nfrund/psyclinic/internal/diagnostics"
	"github.com/nfrund/psyclinic/internal/handlers"
	"github.com/nfrund/psyclinic/internal/middleware"
	"github.com/nfrund/psyclinic/internal/module"
	"github.com/nfrund/psyclinic/internal/pubsub"
	"github.com/nfrund/psyclinic/internal/roster"
	"github.com/nfrund/psyclinic/internal/storage"
)

// StaticPrefix is the URL prefix the static store is mounted under.
const StaticPrefix = "/static/"

// TeamModule serves the psychologist carousel and the roster JSON API.
type TeamModule struct {
	module.BaseModule
}

// New creates a new TeamModule.
func New() *TeamModule {
	return &TeamModule{}
}

// Name returns the unique name for the module.
func (m *TeamModule) Name() string {
	return "team"
}

// Register provides the fetch pipeline: reporter, photo resolver, fetcher
// and the per-session snapshot store.
func (m *TeamModule) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (roster.Reporter, error) {
		return roster.MultiReporter{
			roster.NewLogReporter(slog.Default()),
			diagnostics.NewPublisher(do.MustInvoke[pubsub.Publisher](i)),
		}, nil
	})
	do.Provide(i, func(i do.Injector) (*roster.PhotoResolver, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return roster.NewPhotoResolver(
			do.MustInvoke[*backend.Client](i),
			cfg.Photos.BucketBase,
			cfg.Photos.DefaultPath,
			do.MustInvoke[roster.Reporter](i),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*roster.Fetcher, error) {
		return roster.NewFetcher(
			do.MustInvoke[*backend.Client](i),
			do.MustInvoke[*roster.PhotoResolver](i),
			do.MustInvoke[roster.Reporter](i),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*roster.SnapshotStore, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return roster.NewSnapshotStore(do.MustInvoke[*roster.Fetcher](i), cfg.Roster.SnapshotTTL), nil
	})
	return nil
}

// Boot mounts the carousel fragment and the JSON API.
func (m *TeamModule) Boot(ctx context.Context, e *echo.Echo, i do.Injector) error {
	cfg := do.MustInvoke[*config.Config](i)
	static := do.MustInvoke[*storage.AferoStore](i)

	// A missing default image only degrades the page, so it is not fatal.
	if err := static.CheckURLPath(cfg.Photos.DefaultPath, StaticPrefix); err != nil {
		slog.Warn("Default profile photo is not a served asset", "path", cfg.Photos.DefaultPath, "error", err)
	}

	fallback := roster.FallbackProfiles(cfg.Photos.DefaultPath)
	carousel := handlers.NewCarouselHandler(do.MustInvoke[*roster.SnapshotStore](i), fallback)
	api := handlers.NewRosterAPIHandler(do.MustInvoke[*roster.Fetcher](i))

	slog.Info("Booting TeamModule: Setting up routes...")
	e.GET("/roster/carousel", carousel.CarouselGet)
	e.GET("/api/roster", api.RosterGet, middleware.RateLimiter(middleware.DefaultRateLimit))
	return nil
}
