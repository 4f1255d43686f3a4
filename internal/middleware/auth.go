package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/psyclinic/internal/backend"
	"github.com/nfrund/psyclinic/internal/domain"
)

const (
	// UserContextKey is where Auth stores the *domain.User.
	UserContextKey = "user"
	// AuthCookieName holds the session token issued by the clinic's auth service.
	AuthCookieName = "auth_token"
	// SignInRedirect is where unauthenticated visitors are sent.
	SignInRedirect = "/"
)

// Auth protects routes that need a signed-in user. The token is checked
// against the backend, and the request context carries it so backend calls
// made on the user's behalf are authorised as that user.
func Auth(auth domain.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, SignInRedirect)
			}
			token := cookie.Value

			ctx := c.Request().Context()
			user, err := auth.Authenticate(ctx, token)
			if err != nil || user == nil {
				logger := FromContext(ctx)
				if errors.Is(err, domain.ErrUnauthenticated) {
					logger.Info("Rejected session token")
				} else {
					logger.Warn("Session check failed", "error", err)
				}
				ClearAuthCookie(c)
				return c.Redirect(http.StatusSeeOther, SignInRedirect)
			}

			c.Set(UserContextKey, user)
			c.SetRequest(c.Request().WithContext(backend.ContextWithToken(ctx, token)))
			return next(c)
		}
	}
}

// UserFromContext returns the user stored by Auth.
func UserFromContext(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(UserContextKey).(*domain.User)
	return user, ok
}

// IsAuthenticated reports whether the request carries a session cookie. It
// does not validate the token.
func IsAuthenticated(c echo.Context) bool {
	cookie, err := c.Cookie(AuthCookieName)
	return err == nil && cookie.Value != ""
}

// ClearAuthCookie expires the session cookie.
func ClearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
