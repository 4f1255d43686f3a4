package pages

import (
	"fmt"
	"sort"

	"github.com/nfrund/psyclinic/internal/diagnostics"
	"github.com/nfrund/psyclinic/internal/domain"
	"github.com/nfrund/psyclinic/internal/roster"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	// DashboardLiveID is the element the live feed replaces.
	DashboardLiveID = "dashboard-live"
	// DashboardLivePath is the WebSocket endpoint feeding DashboardLive.
	DashboardLivePath = "/dashboard/live"
)

// Dashboard shows the signed-in user and the roster diagnostics collected
// since the process started. The diagnostics block stays current over a
// WebSocket through the htmx ws extension.
func Dashboard(user *domain.User, snap diagnostics.Snapshot) g.Node {
	greeting := "Welcome back"
	if user != nil && user.FirstName != "" {
		greeting = "Welcome back, " + user.FirstName
	}

	return h.Div(
		h.Class("container mx-auto px-6 py-10 space-y-8"),
		hx.Ext("ws"),
		g.Attr("ws-connect", DashboardLivePath),
		h.H1(h.Class("text-3xl font-bold"), g.Text(greeting)),
		DashboardLive(snap),
	)
}

// DashboardLive renders the diagnostics block. It is pushed whole over the
// socket; the ws extension swaps it in by id.
func DashboardLive(snap diagnostics.Snapshot) g.Node {
	return h.Div(
		h.ID(DashboardLiveID),
		h.Class("space-y-8"),
		h.Section(
			h.Class("grid gap-6 md:grid-cols-3"),
			stat("Photo resolutions", fmt.Sprint(snap.PhotoTotal)),
			stat("Photo fallbacks", fmt.Sprintf("%d (%.0f%%)", snap.PhotoFallbacks, snap.PhotoFallbackRate()*100)),
			stat("Roster list failures", fmt.Sprintf("%d / %d", snap.ListFailures, snap.ListTotal)),
		),
		h.Section(
			h.Class("rounded-xl bg-white p-6 shadow"),
			h.H2(h.Class("text-xl font-semibold mb-4"), g.Text("Outcomes")),
			outcomeTable(snap.Counts),
		),
		h.Section(
			h.Class("rounded-xl bg-white p-6 shadow"),
			h.H2(h.Class("text-xl font-semibold mb-4"), g.Text("Recent decisions")),
			g.If(len(snap.Recent) == 0, h.P(h.Class("text-slate-500"), g.Text("Nothing recorded yet."))),
			g.If(len(snap.Recent) > 0, h.Ul(
				h.Class("divide-y text-sm"),
				g.Map(snap.Recent, func(e diagnostics.Entry) g.Node {
					return h.Li(
						h.Class("py-2 flex justify-between"),
						h.Span(g.Text(decisionLabel(e.Decision))),
						h.Span(h.Class("text-slate-500"), g.Text(e.At.Format("15:04:05"))),
					)
				}),
			)),
		),
	)
}

func stat(label, value string) g.Node {
	return h.Div(
		h.Class("rounded-xl bg-white p-6 shadow"),
		h.P(h.Class("text-sm text-slate-500"), g.Text(label)),
		h.P(h.Class("text-2xl font-bold"), g.Text(value)),
	)
}

func outcomeTable(counts map[roster.Outcome]int) g.Node {
	outcomes := make([]roster.Outcome, 0, len(counts))
	for o := range counts {
		outcomes = append(outcomes, o)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i] < outcomes[j] })

	return h.Table(
		h.Class("w-full text-left text-sm"),
		h.THead(h.Tr(h.Th(g.Text("Outcome")), h.Th(g.Text("Count")))),
		h.TBody(g.Map(outcomes, func(o roster.Outcome) g.Node {
			return h.Tr(h.Td(g.Text(string(o))), h.Td(g.Text(fmt.Sprint(counts[o]))))
		})),
	)
}

func decisionLabel(d roster.Decision) string {
	label := string(d.Outcome)
	if d.ProfileID != 0 {
		label += fmt.Sprintf(" · profile %d", d.ProfileID)
	}
	if d.Count != 0 {
		label += fmt.Sprintf(" · %d profiles", d.Count)
	}
	if d.Reason != "" {
		label += " · " + d.Reason
	}
	return label
}
