package carousel

import (
	"github.com/nfrund/psyclinic/internal/domain"
	"github.com/nfrund/psyclinic/internal/roster"
)

// Action is a navigation command sent by the page.
type Action string

const (
	ActionMount  Action = "mount"
	ActionResize Action = "resize"
	ActionNext   Action = "next"
	ActionPrev   Action = "prev"
	ActionPage   Action = "page"
)

// Controller pairs a roster snapshot with a Window. It holds the roster it
// was given and never modifies it.
type Controller struct {
	roster roster.Roster
	window Window
}

// NewController starts a carousel over r with the default window.
func NewController(r roster.Roster) *Controller {
	return &Controller{roster: r, window: NewWindow()}
}

// Restore rebuilds a controller from the state a page sent back.
func Restore(r roster.Roster, w Window) *Controller {
	if w.Visible < 1 {
		w.Visible = DefaultVisible
	}
	return &Controller{roster: r, window: w}
}

// Window returns the current window.
func (c *Controller) Window() Window { return c.window }

// Len is the roster length.
func (c *Controller) Len() int { return c.roster.Len() }

// IsEmpty reports whether the page should show the static fallback set.
func (c *Controller) IsEmpty() bool { return c.roster.IsEmpty() }

// SetVisibleCount applies a viewport width.
func (c *Controller) SetVisibleCount(width int) {
	c.window = c.window.WithVisibleCount(width)
}

// GoToNext advances one page with wrap-around.
func (c *Controller) GoToNext() {
	c.window = c.window.Next(c.roster.Len())
}

// GoToPrevious goes back one page with wrap-around.
func (c *Controller) GoToPrevious() {
	c.window = c.window.Previous(c.roster.Len())
}

// JumpToPage moves to the given page indicator.
func (c *Controller) JumpToPage(page int) {
	c.window = c.window.JumpToPage(page)
}

// Apply runs a page command. Mount and resize only change the window size,
// which callers apply through SetVisibleCount beforehand.
func (c *Controller) Apply(action Action, page int) {
	switch action {
	case ActionNext:
		c.GoToNext()
	case ActionPrev:
		c.GoToPrevious()
	case ActionPage:
		c.JumpToPage(page)
	}
}

// Visible returns the profiles currently in view.
func (c *Controller) Visible() []domain.Profile {
	start, end := c.window.Bounds(c.roster.Len())
	return c.roster.Slice(start, end-start)
}

// Pages returns the number of page indicators.
func (c *Controller) Pages() int { return c.window.PageCount(c.roster.Len()) }

// ActivePage returns the highlighted indicator.
func (c *Controller) ActivePage() int { return c.window.ActivePage() }
