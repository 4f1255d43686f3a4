package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AboutContent is the static about page.
func AboutContent() g.Node {
	return h.Div(
		h.Class("container mx-auto p-8"),
		h.Div(
			h.Class("bg-white shadow-2xl rounded-xl p-10"),
			h.H1(
				h.Class("text-4xl font-extrabold text-teal-700 mb-4 border-b pb-2"),
				g.Text("About Psyclinic"),
			),
			h.P(
				h.Class("text-gray-700 mb-6 leading-relaxed"),
				g.Text("Psyclinic connects people with licensed psychologists for online consultations. Every specialist on the site is verified by our team before their profile is published."),
			),
			h.Div(
				h.Class("space-y-4"),
				h.Div(
					h.Class("p-6 bg-gray-50 rounded-lg shadow"),
					h.Div(h.Class("font-bold text-xl mb-2"), g.Text("Choose your specialist")),
					h.P(h.Class("text-gray-700 text-base"), g.Text("Browse the team on the home page, read about each psychologist's focus and pick the one that fits you.")),
				),
				h.Div(
					h.Class("p-6 bg-gray-50 rounded-lg shadow"),
					h.Div(h.Class("font-bold text-xl mb-2"), g.Text("Book online")),
					h.P(h.Class("text-gray-700 text-base"), g.Text("Sessions take place by video call, so you can talk to a specialist from wherever you feel comfortable.")),
				),
			),
		),
	)
}
