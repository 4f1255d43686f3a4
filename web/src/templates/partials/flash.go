package partials

import (
	"github.com/nfrund/psyclinic/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Flash renders the one-shot messages above the page content.
func Flash(flashes view.FlashData) g.Node {
	if flashes.IsEmpty() {
		return nil
	}
	return h.Div(
		h.ID("flash-messages"),
		h.Class("container mx-auto px-6 pt-4 space-y-2"),
		g.Map(flashes.Success, func(msg string) g.Node {
			return h.Div(h.Class("rounded bg-emerald-100 px-4 py-2 text-emerald-800"), h.Role("status"), g.Text(msg))
		}),
		g.Map(flashes.Error, func(msg string) g.Node {
			return h.Div(h.Class("rounded bg-rose-100 px-4 py-2 text-rose-800"), h.Role("alert"), g.Text(msg))
		}),
	)
}
