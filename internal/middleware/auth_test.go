package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/psyclinic/internal/backend"
	"github.com/nfrund/psyclinic/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func newAuthServer(auth domain.Authenticator) *echo.Echo {
	e := echo.New()
	e.GET("/dashboard", func(c echo.Context) error {
		user, ok := UserFromContext(c)
		if !ok {
			return c.String(http.StatusInternalServerError, "no user")
		}
		return c.String(http.StatusOK, user.Email+"|"+backend.TokenFromContext(c.Request().Context()))
	}, Auth(auth))
	return e
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("unauthenticated user is redirected", func(t *testing.T) {
		auth := new(mockAuthenticator)
		rec := httptest.NewRecorder()

		newAuthServer(auth).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, SignInRedirect, rec.Header().Get(echo.HeaderLocation))
		auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("valid token reaches the handler with the user and token", func(t *testing.T) {
		auth := new(mockAuthenticator)
		auth.On("Authenticate", mock.Anything, "good-token").
			Return(&domain.User{ID: 1, Email: "ola@psyclinic.app"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "good-token"})
		rec := httptest.NewRecorder()

		newAuthServer(auth).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ola@psyclinic.app|good-token", rec.Body.String())
		auth.AssertExpectations(t)
	})

	t.Run("rejected token clears the cookie", func(t *testing.T) {
		auth := new(mockAuthenticator)
		auth.On("Authenticate", mock.Anything, "stale").Return(nil, domain.ErrUnauthenticated).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "stale"})
		rec := httptest.NewRecorder()

		newAuthServer(auth).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		cookies := rec.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, AuthCookieName, cookies[0].Name)
			assert.Equal(t, -1, cookies[0].MaxAge)
		}
		auth.AssertExpectations(t)
	})
}

func TestIsAuthenticated(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsAuthenticated(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "x"})
	assert.True(t, IsAuthenticated(e.NewContext(req, httptest.NewRecorder())))
}
