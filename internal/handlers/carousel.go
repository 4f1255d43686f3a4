package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/psyclinic/internal/carousel"
	"github.com/nfrund/psyclinic/internal/domain"
	"github.com/nfrund/psyclinic/internal/middleware"
	"github.com/nfrund/psyclinic/internal/roster"
	"github.com/nfrund/psyclinic/web/src/templates/components"
)

const (
	rosterSessionName = "roster-session"
	rosterSessionKey  = "sid"
)

// SnapshotStore is the per-session roster cache the carousel reads from.
type SnapshotStore interface {
	Mount(ctx context.Context, sessionID string) roster.Roster
	Current(ctx context.Context, sessionID string) roster.Roster
}

// CarouselHandler serves the roster carousel fragment.
type CarouselHandler struct {
	snapshots SnapshotStore
	fallback  []domain.Profile
}

// NewCarouselHandler creates a CarouselHandler.
func NewCarouselHandler(snapshots SnapshotStore, fallback []domain.Profile) *CarouselHandler {
	return &CarouselHandler{snapshots: snapshots, fallback: fallback}
}

// CarouselGet handles GET /roster/carousel. A mount fetches a fresh roster
// for the browser session; every other action navigates the stored one.
func (h *CarouselHandler) CarouselGet(c echo.Context) error {
	var q CarouselQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid carousel query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	sid := rosterSessionID(c)
	action := q.action()

	var r roster.Roster
	if action == carousel.ActionMount {
		r = h.snapshots.Mount(ctx, sid)
	} else {
		r = h.snapshots.Current(ctx, sid)
	}

	if ctx.Err() != nil {
		// htmx dropped the request for a newer one; nobody will read a body.
		middleware.FromContext(ctx).Debug("Carousel request cancelled", "action", action)
		return nil
	}

	ctrl := carousel.Restore(r, carousel.Window{Index: q.Index, Visible: carousel.DefaultVisible})
	if q.Width > 0 {
		ctrl.SetVisibleCount(q.Width)
	}
	ctrl.Apply(action, q.Page)

	return c.Render(http.StatusOK, "", components.Carousel(components.NewCarouselView(ctrl, h.fallback)))
}

// rosterSessionID returns the browser-session id the roster snapshot is kept
// under, issuing one on first use. The cookie has no Max-Age, so it ends
// with the browser session.
func rosterSessionID(c echo.Context) string {
	sess, err := session.Get(rosterSessionName, c)
	if err != nil {
		return uuid.NewString()
	}
	if sid, ok := sess.Values[rosterSessionKey].(string); ok && sid != "" {
		return sid
	}

	sid := uuid.NewString()
	sess.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values[rosterSessionKey] = sid
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to save roster session", "error", err)
	}
	return sid
}
