package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/psyclinic/internal/handlers"
	"github.com/nfrund/psyclinic/internal/roster"
	"github.com/nfrund/psyclinic/internal/storage"
)

// RegisterRoutes sets up the site-wide routes. Feature routes belong to modules.
func (s *Server) RegisterRoutes() {
	static := do.MustInvoke[*storage.AferoStore](s.injector)
	homeHandler := handlers.NewHomeHandler(roster.FallbackProfiles(s.Cfg.Photos.DefaultPath))

	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/about", handlers.AboutGet)
	s.E.GET("/logout", handlers.Logout)
	s.E.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static", static.Handler())))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
