package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/psyclinic/internal/middleware"
	"github.com/nfrund/psyclinic/internal/view"
)

// Logout expires the session cookie. Sign-in itself happens on the clinic's
// auth service, which sets the cookie.
func Logout(c echo.Context) error {
	middleware.ClearAuthCookie(c)
	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/")
}
