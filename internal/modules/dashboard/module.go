package dashboard

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/psyclinic/internal/backend"
	"github.com/nfrund/psyclinic/internal/diagnostics"
	"github.com/nfrund/psyclinic/internal/handlers"
	"github.com/nfrund/psyclinic/internal/middleware"
	"github.com/nfrund/psyclinic/internal/module"
	"github.com/nfrund/psyclinic/internal/pubsub"
	"github.com/nfrund/psyclinic/internal/websocket"
	"github.com/nfrund/psyclinic/web/src/templates/pages"
)

// DashboardModule serves the signed-in dashboard and collects the roster
// diagnostics it displays.
type DashboardModule struct {
	module.BaseModule
	stop context.CancelFunc
	hub  *websocket.Hub
}

// New creates a new DashboardModule.
func New() *DashboardModule {
	return &DashboardModule{}
}

// Name returns the unique name for the module.
func (m *DashboardModule) Name() string {
	return "dashboard"
}

// Register provides the diagnostics service, the live feed hub and the
// session authenticator.
func (m *DashboardModule) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*diagnostics.Service, error) {
		return diagnostics.NewService(do.MustInvoke[pubsub.Subscriber](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*websocket.Hub, error) {
		return websocket.NewHub(), nil
	})
	do.Provide(i, func(i do.Injector) (*backend.SessionService, error) {
		return backend.NewSessionService(do.MustInvoke[*backend.Client](i)), nil
	})
	return nil
}

// Boot subscribes the diagnostics service, streams its updates to connected
// dashboards and mounts the dashboard routes.
func (m *DashboardModule) Boot(ctx context.Context, e *echo.Echo, i do.Injector) error {
	svc := do.MustInvoke[*diagnostics.Service](i)
	sessions := do.MustInvoke[*backend.SessionService](i)
	m.hub = do.MustInvoke[*websocket.Hub](i)

	hub := m.hub
	svc.Watch(func(snap diagnostics.Snapshot) {
		if hub.Len() == 0 {
			return
		}
		if msg := handlers.RenderLive(snap); msg != nil {
			hub.Broadcast(msg)
		}
	})

	ctx, m.stop = context.WithCancel(ctx)
	if err := svc.Start(ctx); err != nil {
		m.stop()
		return err
	}

	slog.Info("Booting DashboardModule: Setting up routes...")
	dash := handlers.NewDashboardHandler(svc)
	auth := middleware.Auth(sessions)
	e.GET("/dashboard", dash.DashboardGet, auth)
	e.GET(pages.DashboardLivePath, hub.Handler(dash.LiveFragment), auth)
	return nil
}

// Shutdown stops the diagnostics subscriptions and disconnects live dashboards.
func (m *DashboardModule) Shutdown(ctx context.Context) error {
	if m.stop != nil {
		m.stop()
	}
	if m.hub != nil {
		m.hub.Close()
	}
	return nil
}
