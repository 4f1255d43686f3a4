package pages

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nfrund/psyclinic/internal/diagnostics"
	"github.com/nfrund/psyclinic/internal/domain"
	"github.com/nfrund/psyclinic/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestHome(t *testing.T) {
	out := render(t, Home(roster.FallbackProfiles("/static/img/default-profile.svg")))

	assert.Contains(t, out, `id="psychologists"`)
	assert.Contains(t, out, `id="psychologists-carousel"`)
	assert.Contains(t, out, `hx-trigger="load"`)
	assert.Contains(t, out, "How we can help")
}

func TestAboutContent(t *testing.T) {
	assert.Contains(t, render(t, AboutContent()), "About Psyclinic")
}

func TestDashboard(t *testing.T) {
	snap := diagnostics.Snapshot{
		Counts:         map[roster.Outcome]int{roster.OutcomeSigned: 3, roster.OutcomeDefaultFailed: 1},
		PhotoTotal:     4,
		PhotoFallbacks: 1,
		ListTotal:      2,
		ListFailures:   1,
		Recent: []diagnostics.Entry{
			{Decision: roster.Decision{Outcome: roster.OutcomeDefaultFailed, ProfileID: 7, Reason: "timeout"}, At: time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)},
		},
	}

	out := render(t, Dashboard(&domain.User{FirstName: "Ola"}, snap))
	assert.Contains(t, out, "Welcome back, Ola")
	assert.Contains(t, out, "1 (25%)")
	assert.Contains(t, out, "1 / 2")
	assert.Contains(t, out, "default_failed · profile 7 · timeout")
	assert.Contains(t, out, "10:30:00")
	assert.NotContains(t, out, "Nothing recorded yet.")
	assert.Contains(t, out, `hx-ext="ws"`)
	assert.Contains(t, out, `ws-connect="/dashboard/live"`)
}

func TestDashboardLive_IsSwappableFragment(t *testing.T) {
	out := render(t, DashboardLive(diagnostics.Snapshot{PhotoTotal: 5}))
	assert.True(t, strings.HasPrefix(out, `<div id="dashboard-live"`), out)
	assert.Contains(t, out, ">5<")
	assert.NotContains(t, out, "ws-connect")
}

func TestDashboard_Empty(t *testing.T) {
	out := render(t, Dashboard(nil, diagnostics.Snapshot{}))
	assert.Contains(t, out, "Welcome back")
	assert.Contains(t, out, "Nothing recorded yet.")
}
