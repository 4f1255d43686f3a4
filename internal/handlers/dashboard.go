package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/psyclinic/internal/diagnostics"
	"github.com/nfrund/psyclinic/internal/middleware"
	"github.com/nfrund/psyclinic/internal/view"
	"github.com/nfrund/psyclinic/web/src/templates/layouts"
	"github.com/nfrund/psyclinic/web/src/templates/pages"
)

// DiagnosticsSource is the read side of the diagnostics service.
type DiagnosticsSource interface {
	Snapshot() diagnostics.Snapshot
}

// DashboardHandler handles requests for the user dashboard.
type DashboardHandler struct {
	diagnostics DiagnosticsSource
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(diag DiagnosticsSource) *DashboardHandler {
	return &DashboardHandler{diagnostics: diag}
}

// DashboardGet shows the dashboard. Auth has already put the user on the context.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	user, _ := middleware.UserFromContext(c)

	meta := layouts.Meta{
		Title:         "Dashboard",
		Flashes:       view.GetFlashData(c),
		Authenticated: true,
	}
	page := layouts.Base(meta, view.AdaptGomponentToTempl(pages.Dashboard(user, h.diagnostics.Snapshot())))
	return c.Render(http.StatusOK, "", page)
}

// LiveFragment renders the current diagnostics block for a newly connected socket.
func (h *DashboardHandler) LiveFragment() []byte {
	return RenderLive(h.diagnostics.Snapshot())
}

// RenderLive renders the diagnostics block pushed over the dashboard socket.
// It returns nil if rendering fails.
func RenderLive(snap diagnostics.Snapshot) []byte {
	var buf bytes.Buffer
	if err := pages.DashboardLive(snap).Render(&buf); err != nil {
		slog.Error("Failed to render live dashboard fragment", "error", err)
		return nil
	}
	return buf.Bytes()
}
