package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/psyclinic/internal/domain"
	"github.com/nfrund/psyclinic/internal/middleware"
	"github.com/nfrund/psyclinic/internal/view"
	"github.com/nfrund/psyclinic/web/src/templates/layouts"
	"github.com/nfrund/psyclinic/web/src/templates/pages"
)

// HomeHandler renders the landing page.
type HomeHandler struct {
	fallback []domain.Profile
}

// NewHomeHandler creates a HomeHandler that shows fallback until the live
// roster fragment loads.
func NewHomeHandler(fallback []domain.Profile) *HomeHandler {
	return &HomeHandler{fallback: fallback}
}

// HomeGet handles GET /.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	meta := layouts.Meta{
		Title:         "Home",
		Flashes:       view.GetFlashData(c),
		Authenticated: middleware.IsAuthenticated(c),
	}
	page := layouts.Base(meta, view.AdaptGomponentToTempl(pages.Home(h.fallback)))
	return c.Render(http.StatusOK, "", page)
}
