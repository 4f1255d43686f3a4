package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/psyclinic/internal/middleware"
	"github.com/nfrund/psyclinic/internal/view"
	"github.com/nfrund/psyclinic/web/src/templates/layouts"
	"github.com/nfrund/psyclinic/web/src/templates/pages"
)

// AboutGet renders the about page.
func AboutGet(c echo.Context) error {
	meta := layouts.Meta{
		Title:         "About",
		Flashes:       view.GetFlashData(c),
		Authenticated: middleware.IsAuthenticated(c),
	}
	page := layouts.Base(meta, view.AdaptGomponentToTempl(pages.AboutContent()))
	return c.Render(http.StatusOK, "", page)
}
