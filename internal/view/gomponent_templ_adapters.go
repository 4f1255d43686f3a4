package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// gomponentComponent lets a gomponents.Node sit inside a templ layout.
type gomponentComponent struct {
	node gomponents.Node
}

func (a gomponentComponent) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// AdaptGomponentToTempl wraps a gomponents.Node as a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return gomponentComponent{node: node}
}

// templNode lets a templ.Component sit inside a gomponents tree. gomponents
// does not pass a context, so the one captured at adaptation time is used.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (a templNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// AdaptTemplToGomponent wraps a templ.Component as a gomponents.Node, rendering
// it with ctx.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	return templNode{ctx: ctx, component: component}
}
