package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/gorilla/websocket"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/psyclinic/internal/app"
	"github.com/nfrund/psyclinic/internal/config"
	"github.com/nfrund/psyclinic/internal/diagnostics"
	"github.com/nfrund/psyclinic/internal/handlers"
	"github.com/nfrund/psyclinic/internal/middleware"
	"github.com/nfrund/psyclinic/internal/roster"
	"github.com/nfrund/psyclinic/internal/server"
	"github.com/nfrund/psyclinic/web/src/templates/pages"
)

// fakeClinicAPI serves the three backend endpoints the site calls.
func fakeClinicAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/landing/user/index", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		_, _ = io.WriteString(w, `{"data":{"data":[
			{"id":1,"human":{"first_name":"anna","last_name":"kowalska"},"profile_photo_path":"anna.jpg"},
			{"id":2,"human":{"first_name":"piotr","last_name":"nowak"}},
			{"id":3,"human":{"first_name":"ewa","last_name":"lis"},"profile_photo_path":"ewa.jpg"}
		]}}`)
	})
	mux.HandleFunc("/api/landing/user/get-profile-photo", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("user_id") {
		case "1":
			_, _ = io.WriteString(w, `{"data":{"URL":"https://signed.example/anna.jpg"}}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	mux.HandleFunc("/api/landing/user/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"unauthenticated"}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":{"id":7,"email":"ola@psyclinic.app","first_name":"Ola"}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setupIntegrationTest(t *testing.T) (*httptest.Server, *do.RootScope) {
	t.Helper()
	api := fakeClinicAPI(t)

	cfg, err := config.Parse(env.Options{Environment: map[string]string{
		"BACKEND_URL": api.URL + "/api",
		"STATIC_DIR":  app.EmbeddedStaticDir,
		"LOG_LEVEL":   "error",
	}})
	require.NoError(t, err)

	injector := app.NewContainer(cfg)
	s := server.New(cfg, injector, app.NewModules())
	s.RegisterRoutes()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Boot(ctx))

	ts := httptest.NewServer(s.E)
	t.Cleanup(func() {
		ts.Close()
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
		defer done()
		_ = s.Shutdown(shutdownCtx)
		_ = app.Shutdown(shutdownCtx, injector)
	})
	return ts, injector
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, client *http.Client, url string) (int, string, http.Header) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header
}

func TestSite_Integration(t *testing.T) {
	ts, injector := setupIntegrationTest(t)
	client := newClient(t)

	t.Run("health", func(t *testing.T) {
		status, body, _ := get(t, client, ts.URL+"/health")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "OK", body)
	})

	t.Run("static default photo is served", func(t *testing.T) {
		status, body, _ := get(t, client, ts.URL+"/static/img/default-profile.svg")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "<svg")
	})

	t.Run("landing page renders the fallback roster", func(t *testing.T) {
		status, body, header := get(t, client, ts.URL+"/")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Our psychologists")
		assert.Contains(t, body, `hx-trigger="load"`)
		assert.NotEmpty(t, header.Get("X-Request-Id"))
	})

	t.Run("carousel mounts and navigates the session roster", func(t *testing.T) {
		status, body, _ := get(t, client, ts.URL+"/roster/carousel?action=mount&index=0&width=500")
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `src="https://signed.example/anna.jpg"`)
		assert.Equal(t, 1, strings.Count(body, "<article"))

		status, body, _ = get(t, client, ts.URL+"/roster/carousel?action=prev&index=0&width=500")
		require.Equal(t, http.StatusOK, status)
		// Profile 3's photo call fails, so it falls back to the default asset.
		assert.Contains(t, body, `data-profile-id="3"`)
		assert.Contains(t, body, `src="/static/img/default-profile.svg"`)
	})

	t.Run("roster API resolves every photo", func(t *testing.T) {
		status, body, _ := get(t, client, ts.URL+"/api/roster")
		require.Equal(t, http.StatusOK, status)

		var resp handlers.RosterResponse
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		require.Equal(t, 3, resp.Count)
		assert.Equal(t, "https://signed.example/anna.jpg", resp.Data[0].PhotoURL)
		assert.Equal(t, "/static/img/default-profile.svg", resp.Data[1].PhotoURL)
		assert.Equal(t, "/static/img/default-profile.svg", resp.Data[2].PhotoURL)
	})

	t.Run("dashboard requires a valid session", func(t *testing.T) {
		status, _, header := get(t, client, ts.URL+"/dashboard")
		assert.Equal(t, http.StatusSeeOther, status)
		assert.Equal(t, middleware.SignInRedirect, header.Get("Location"))
	})

	t.Run("dashboard shows diagnostics for a signed-in user", func(t *testing.T) {
		svc := do.MustInvoke[*diagnostics.Service](injector)
		require.Eventually(t, func() bool {
			return svc.Snapshot().Counts[roster.OutcomeDefaultFailed] > 0
		}, 2*time.Second, 10*time.Millisecond)

		req, err := http.NewRequest(http.MethodGet, ts.URL+"/dashboard", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: "good-token"})

		resp, err := newClient(t).Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "Welcome back, Ola")
		assert.Contains(t, string(body), string(roster.OutcomeDefaultFailed))
	})

	t.Run("dashboard live feed requires a valid session", func(t *testing.T) {
		wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + pages.DashboardLivePath
		_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.ErrorIs(t, err, websocket.ErrBadHandshake)
		require.NotNil(t, resp)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	})

	t.Run("dashboard live feed streams new decisions", func(t *testing.T) {
		wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + pages.DashboardLivePath
		header := http.Header{}
		header.Add("Cookie", middleware.AuthCookieName+"=good-token")

		conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
		require.NoError(t, err, "Failed to connect to the dashboard live feed")
		defer func() {
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			conn.Close()
		}()

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(msg), `id="dashboard-live"`, "the current snapshot arrives on connect")

		// A new browser session mounts the roster again and publishes fresh decisions.
		status, _, _ := get(t, newClient(t), ts.URL+"/roster/carousel?action=mount&width=1200")
		require.Equal(t, http.StatusOK, status)

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, msg, err = conn.ReadMessage()
		require.NoError(t, err, "Failed to read a live update")
		assert.Contains(t, string(msg), `id="dashboard-live"`)
		assert.Contains(t, string(msg), string(roster.OutcomeSigned))
	})
}
