package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/psyclinic/internal/roster"
)

// RosterAPIHandler exposes the resolved roster as JSON.
type RosterAPIHandler struct {
	source roster.Source
}

// NewRosterAPIHandler creates a RosterAPIHandler.
func NewRosterAPIHandler(source roster.Source) *RosterAPIHandler {
	return &RosterAPIHandler{source: source}
}

// RosterGet handles GET /api/roster. Backend failures surface as an empty
// list, never as an error status.
func (h *RosterAPIHandler) RosterGet(c echo.Context) error {
	r := h.source.Fetch(c.Request().Context())
	profiles := r.Profiles()
	return c.JSON(http.StatusOK, RosterResponse{Data: profiles, Count: len(profiles)})
}
