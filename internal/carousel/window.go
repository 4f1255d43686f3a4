// Package carousel computes which slice of the roster is visible and how
// navigation moves it. Everything here is a pure function of
// (index, visible count, roster length); rendering lives elsewhere.
package carousel

// Viewport breakpoints in CSS pixels.
const (
	TabletMinWidth  = 768
	DesktopMinWidth = 992

	// DefaultVisible is the window size before the first viewport report.
	DefaultVisible = 3
)

// VisibleCountForWidth maps a viewport width to the number of cards shown.
func VisibleCountForWidth(width int) int {
	switch {
	case width < TabletMinWidth:
		return 1
	case width < DesktopMinWidth:
		return 2
	default:
		return 3
	}
}

// Window is the visible slice over a roster: Visible cards starting at Index.
type Window struct {
	Index   int
	Visible int
}

// NewWindow returns the window a freshly mounted carousel starts with.
func NewWindow() Window {
	return Window{Index: 0, Visible: DefaultVisible}
}

// WithVisibleCount recomputes the window size for a viewport width. Index is
// left alone; reading past the end simply yields fewer cards.
func (w Window) WithVisibleCount(width int) Window {
	w.Visible = VisibleCountForWidth(width)
	return w
}

// Next advances by one page. Landing on or past the end wraps to the start in
// a single step, so a partial last page is skipped rather than shown offset.
func (w Window) Next(length int) Window {
	next := w.Index + w.visible()
	if next >= length {
		next = 0
	}
	w.Index = next
	return w
}

// Previous goes back one page. From the first card it jumps to the last
// full-or-partial page.
func (w Window) Previous(length int) Window {
	if w.Index == 0 {
		w.Index = max(0, length-w.visible())
		return w
	}
	w.Index = max(0, w.Index-w.visible())
	return w
}

// JumpToPage moves to the first card of page. No bounds check is applied.
func (w Window) JumpToPage(page int) Window {
	w.Index = page * w.visible()
	return w
}

// PageCount is the number of page indicators for a roster of length.
func (w Window) PageCount(length int) int {
	if length <= 0 {
		return 0
	}
	v := w.visible()
	return (length + v - 1) / v
}

// ActivePage is the indicator highlighted for the current index.
func (w Window) ActivePage() int {
	return w.Index / w.visible()
}

// Bounds returns the half-open range [start, end) of visible cards, clamped
// to a roster of length.
func (w Window) Bounds(length int) (start, end int) {
	if w.Index < 0 || w.Index >= length {
		return 0, 0
	}
	return w.Index, min(w.Index+w.visible(), length)
}

// visible guards the arithmetic against a zero-value Window.
func (w Window) visible() int {
	if w.Visible < 1 {
		return 1
	}
	return w.Visible
}
