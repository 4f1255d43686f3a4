package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/psyclinic/internal/view"
	"github.com/nfrund/psyclinic/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSSrc   = "https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"
	tailwindSrc = "https://cdn.tailwindcss.com"
)

// Meta carries the per-request values the layout needs.
type Meta struct {
	Title         string
	Flashes       view.FlashData
	Authenticated bool
}

// Base wraps page content in the site chrome. The content component is
// rendered with the request context.
func Base(meta Meta, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return h.Doctype(
			h.HTML(
				h.Lang("en"),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					h.TitleEl(g.Text(CalculateTitle(meta.Title))),
					h.Script(h.Src(tailwindSrc)),
					h.Script(h.Src(htmxSrc), h.Defer()),
					h.Script(h.Src(htmxWSSrc), h.Defer()),
					h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				),
				h.Body(
					h.Class("min-h-screen bg-slate-50 text-slate-800 flex flex-col"),
					navbar(meta.Authenticated),
					partials.Flash(meta.Flashes),
					h.Main(h.Class("flex-1"), view.AdaptTemplToGomponent(ctx, content)),
					footer(),
				),
			),
		).Render(w)
	})
}

func navbar(authenticated bool) g.Node {
	return h.Header(
		h.Class("bg-white shadow-sm"),
		h.Nav(
			h.Class("container mx-auto flex items-center justify-between px-6 py-4"),
			h.A(h.Href("/"), h.Class("text-xl font-bold text-teal-700"), g.Text("Psyclinic")),
			h.Div(
				h.Class("flex gap-6 text-sm font-medium"),
				h.A(h.Href("/#psychologists"), g.Text("Psychologists")),
				h.A(h.Href("/about"), g.Text("About")),
				g.If(authenticated, g.Group{
					h.A(h.Href("/dashboard"), g.Text("Dashboard")),
					h.A(h.Href("/logout"), g.Text("Log out")),
				}),
			),
		),
	)
}

func footer() g.Node {
	return h.Footer(
		h.Class("bg-slate-900 text-slate-300 text-sm"),
		h.Div(
			h.Class("container mx-auto px-6 py-8"),
			g.Text("Psyclinic · Online psychological consultations"),
		),
	)
}
