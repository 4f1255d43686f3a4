package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestUniversalRenderer_RenderComponent(t *testing.T) {
	r := NewUniversalRenderer()
	ctx := context.Background()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(ctx, h.Span(g.Text("ok")))
		require.NoError(t, err)
		assert.Equal(t, "<span>ok</span>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		component := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<em>templ</em>")
			return err
		})
		out, err := r.RenderComponent(ctx, component)
		require.NoError(t, err)
		assert.Equal(t, "<em>templ</em>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderComponent(ctx, 42)
		assert.ErrorContains(t, err, "unsupported component type: int")
	})
}

func TestUniversalRenderer_RenderPage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := NewUniversalRenderer().RenderPage(c, http.StatusAccepted, h.P(g.Text("page")))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<p>page</p>", rec.Body.String())
}

func TestUniversalRenderer_EchoRenderer(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, c.Render(http.StatusOK, "", h.P(g.Text("via echo"))))
	assert.Equal(t, "<p>via echo</p>", rec.Body.String())
}
