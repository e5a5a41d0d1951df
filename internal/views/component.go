// Package views renders the storefront's HTML: the layout shell and the
// pages that fill its content slot.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a node to templ.Component.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// slot renders c in place with ctx.
func slot(ctx context.Context, c templ.Component) g.Node {
	if c == nil {
		return nil
	}
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}
