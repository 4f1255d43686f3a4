package pages

import (
	"github.com/nfrund/psyclinic/internal/domain"
	"github.com/nfrund/psyclinic/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type service struct {
	title, body string
}

var services = []service{
	{"Individual therapy", "One-to-one sessions for anxiety, depression, burnout and life transitions."},
	{"Couples counselling", "Work through conflict and communication with a neutral specialist."},
	{"Child & adolescent care", "Support for young people and guidance for their parents."},
}

// Home is the landing page. fallback is shown until the live roster arrives.
func Home(fallback []domain.Profile) g.Node {
	return g.Group{
		hero(),
		h.Section(
			h.ID("services"),
			h.Class("container mx-auto px-6 py-16"),
			h.H2(h.Class("text-3xl font-bold mb-8 text-center"), g.Text("How we can help")),
			h.Div(
				h.Class("grid gap-6 md:grid-cols-3"),
				g.Map(services, func(s service) g.Node {
					return h.Div(
						h.Class("rounded-xl bg-white p-6 shadow"),
						h.H3(h.Class("font-semibold text-lg mb-2"), g.Text(s.title)),
						h.P(h.Class("text-slate-600"), g.Text(s.body)),
					)
				}),
			),
		),
		h.Section(
			h.ID("psychologists"),
			h.Class("bg-teal-50 py-16"),
			h.Div(
				h.Class("container mx-auto px-6"),
				h.H2(h.Class("text-3xl font-bold mb-8 text-center"), g.Text("Our psychologists")),
				components.CarouselPlaceholder(fallback),
			),
		),
		contact(),
	}
}

func hero() g.Node {
	return h.Section(
		h.Class("bg-gradient-to-r from-teal-700 to-teal-500 text-white"),
		h.Div(
			h.Class("container mx-auto px-6 py-24"),
			h.H1(h.Class("text-5xl font-extrabold mb-4"), g.Text("Talk to someone who listens")),
			h.P(h.Class("text-xl max-w-2xl mb-8"), g.Text("Online consultations with licensed psychologists, at a time that suits you.")),
			h.A(h.Href("#psychologists"), h.Class("rounded bg-white px-6 py-3 font-semibold text-teal-700"), g.Text("Meet the team")),
		),
	)
}

func contact() g.Node {
	return h.Section(
		h.ID("contact"),
		h.Class("container mx-auto px-6 py-16 text-center"),
		h.H2(h.Class("text-3xl font-bold mb-4"), g.Text("Contact")),
		h.P(g.Text("Questions about booking? Write to "), h.A(h.Href("mailto:hello@psyclinic.app"), h.Class("text-teal-700 underline"), g.Text("hello@psyclinic.app")), g.Text(".")),
	)
}
