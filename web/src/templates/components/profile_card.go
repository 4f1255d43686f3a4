package components

import (
	"github.com/nfrund/psyclinic/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ProfileCard renders one psychologist.
func ProfileCard(p domain.Profile) g.Node {
	return h.Article(
		h.Class("rounded-xl bg-white p-6 shadow text-center"),
		h.Data("profile-id", itoa(p.ID)),
		h.Img(
			h.Class("mx-auto mb-4 h-32 w-32 rounded-full object-cover"),
			h.Src(p.PhotoURL),
			h.Alt(p.DisplayName()),
			h.Loading("lazy"),
		),
		h.H3(h.Class("text-lg font-semibold"), g.Text(p.DisplayName())),
		g.If(p.SpecializationName() != "",
			h.P(h.Class("text-sm text-teal-700"), g.Text(p.SpecializationName())),
		),
		g.If(p.Description() != "",
			h.P(h.Class("mt-3 text-sm text-slate-600"), g.Text(p.Description())),
		),
	)
}
