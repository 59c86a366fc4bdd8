package pane

import (
	"github.com/grindlemire/go-pane/internal/debug"
	"github.com/grindlemire/go-pane/internal/layout"
)

// WritePosition is the region of the grid a container paints into. It is
// passed top-down during a pass and never stored.
type WritePosition struct {
	Rect layout.Rect

	// ExtendedHeight is the number of rows the container may paint past
	// Rect when its parent scrolls it (ScrollablePane). It is at least
	// Rect.Height.
	ExtendedHeight int

	// Z is the z-order every cell is painted with. Floats paint above
	// the base by raising Z.
	Z int
}

// Container is a node of the layout tree. The set of containers is closed:
// Window, HSplit, VSplit, FloatContainer and ScrollablePane. The unexported
// methods keep outside packages from adding tree node types; compose new
// behavior from the existing nodes instead.
type Container interface {
	// preferredWidth reports the width this subtree wants, given at
	// most maxWidth columns.
	preferredWidth(maxWidth int) layout.Dimension

	// preferredHeight reports the height this subtree wants when laid
	// out at the given width.
	preferredHeight(width int) layout.Dimension

	// paint renders the subtree into g at wp.
	paint(ctx *renderContext, g *Grid, wp WritePosition)
}

// renderContext carries per-pass state down the tree.
type renderContext struct {
	// focusID names the focused window; the matching window writes the
	// grid cursor.
	focusID string

	// cursors collects the screen position of every window that painted
	// a cursor this pass, keyed by window ID. Cursor-anchored floats
	// read it after the base is painted.
	cursors map[string]layout.Point

	onError func(error)

	// layoutReported dedups dimension validation errors to one report
	// per pass; a bad tree would otherwise flood the callback every
	// frame.
	layoutReported bool
}

func newRenderContext(focusID string, onError func(error)) *renderContext {
	return &renderContext{
		focusID: focusID,
		cursors: make(map[string]layout.Point),
		onError: onError,
	}
}

// reportErr funnels a content error to the caller's callback. Content
// errors degrade fidelity (the region is blanked), never availability.
func (ctx *renderContext) reportErr(err error) {
	if err == nil {
		return
	}
	debug.Logf("render error: %v", err)
	if ctx.onError != nil {
		ctx.onError(err)
	}
}

// reportLayoutErr reports a dimension misconfiguration at most once per
// pass.
func (ctx *renderContext) reportLayoutErr(err error) {
	if err == nil || ctx.layoutReported {
		return
	}
	ctx.layoutReported = true
	ctx.reportErr(err)
}
