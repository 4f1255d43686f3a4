package components

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/nfrund/psyclinic/internal/carousel"
	"github.com/nfrund/psyclinic/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	// CarouselID is the element the carousel fragment replaces.
	CarouselID = "psychologists-carousel"
	// CarouselPath is the fragment endpoint.
	CarouselPath = "/roster/carousel"
)

// widthVals sends the live viewport width with every carousel request.
const widthVals = "js:{width: window.innerWidth}"

// CarouselView is what the carousel fragment needs to render.
type CarouselView struct {
	// Profiles are the cards in view.
	Profiles []domain.Profile
	// Fallback is set when the live roster is empty and the static set is shown.
	Fallback bool
	Window   carousel.Window
	Pages    int
	Active   int
}

// NewCarouselView captures a controller's state for rendering. When the
// roster is empty the fallback profiles are shown without controls.
func NewCarouselView(c *carousel.Controller, fallback []domain.Profile) CarouselView {
	if c.IsEmpty() {
		return CarouselView{Profiles: fallback, Fallback: true, Window: c.Window()}
	}
	return CarouselView{
		Profiles: c.Visible(),
		Window:   c.Window(),
		Pages:    c.Pages(),
		Active:   c.ActivePage(),
	}
}

// CarouselPlaceholder is rendered inside the landing page. It shows the
// static set immediately and swaps itself for the live fragment on load.
func CarouselPlaceholder(fallback []domain.Profile) g.Node {
	return h.Div(
		h.ID(CarouselID),
		hx.Get(carouselURL(carousel.ActionMount, 0, 0)),
		hx.Trigger("load"),
		hx.Vals(widthVals),
		hx.Swap("outerHTML"),
		track(fallback, carousel.DefaultVisible),
	)
}

// Carousel renders the live fragment.
func Carousel(v CarouselView) g.Node {
	if v.Fallback {
		return h.Div(h.ID(CarouselID), h.Data("fallback", "true"), track(v.Profiles, carousel.DefaultVisible))
	}

	return h.Div(
		h.ID(CarouselID),
		h.Class("relative"),
		// Viewport changes re-render the same index with a new window size.
		hx.Get(carouselURL(carousel.ActionResize, v.Window.Index, 0)),
		hx.Trigger("resize from:window delay:200ms"),
		hx.Vals(widthVals),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		track(v.Profiles, v.Window.Visible),
		h.Div(
			h.Class("mt-6 flex items-center justify-center gap-4"),
			navButton(carousel.ActionPrev, v.Window.Index, "Previous", "‹"),
			h.Div(
				h.Class("flex gap-2"),
				g.Map(pageNumbers(v.Pages), func(p int) g.Node {
					return dot(v.Window.Index, p, p == v.Active)
				}),
			),
			navButton(carousel.ActionNext, v.Window.Index, "Next", "›"),
		),
	)
}

func track(profiles []domain.Profile, visible int) g.Node {
	return h.Div(
		h.Class("carousel-track"),
		h.Data("visible", strconv.Itoa(visible)),
		g.Map(profiles, ProfileCard),
	)
}

func navButton(action carousel.Action, index int, label, glyph string) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class("rounded-full bg-white px-3 py-1 text-2xl shadow"),
		h.Aria("label", label),
		hx.Get(carouselURL(action, index, 0)),
		hx.Trigger("click"),
		hx.Vals(widthVals),
		hx.Target("#"+CarouselID),
		hx.Swap("outerHTML"),
		g.Text(glyph),
	)
}

func dot(index, page int, active bool) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class("carousel-dot"),
		h.Aria("label", fmt.Sprintf("Page %d", page+1)),
		g.If(active, h.Aria("current", "true")),
		hx.Get(carouselURL(carousel.ActionPage, index, page)),
		hx.Trigger("click"),
		hx.Vals(widthVals),
		hx.Target("#"+CarouselID),
		hx.Swap("outerHTML"),
	)
}

func carouselURL(action carousel.Action, index, page int) string {
	q := url.Values{}
	q.Set("action", string(action))
	q.Set("index", strconv.Itoa(index))
	if action == carousel.ActionPage {
		q.Set("page", strconv.Itoa(page))
	}
	return CarouselPath + "?" + q.Encode()
}

func pageNumbers(n int) []int {
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i
	}
	return pages
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
