package pane

import (
	"sort"

	"github.com/grindlemire/go-pane/internal/layout"
)

// Extent is an optional cell count used for float geometry; the zero value
// means unset.
type Extent struct {
	n   int
	set bool
}

// Cells returns a set Extent of n cells.
func Cells(n int) Extent {
	return Extent{n: n, set: true}
}

// Get returns the count and whether it was set.
func (e Extent) Get() (int, bool) {
	return e.n, e.set
}

// Float positions a container on top of a FloatContainer's base. Geometry
// comes from fixed offsets against the base edges, from the content's own
// preferred size, or from the cursor of a named window.
type Float struct {
	Content Container

	// Offsets from the base edges. Opposing offsets (Left and Right,
	// Top and Bottom) together determine the size along that axis.
	Left, Right, Top, Bottom Extent

	// Width and Height fix the float's size directly.
	Width, Height Extent

	// CursorAnchor names a window; the float hangs one row below that
	// window's reported cursor, flipping above it when too little room
	// remains below. It overrides the vertical offsets and, for the
	// horizontal position, left-aligns the float to the cursor column.
	CursorAnchor string

	// FlipMargin is the extra clearance below the anchor that must be
	// free to avoid flipping above.
	FlipMargin int

	// Z orders floats relative to each other; higher paints later.
	Z int
}

// FloatContainer paints a base container and then its floats on top, each
// at a z strictly above everything painted before it.
type FloatContainer struct {
	Base   Container
	Floats []Float
}

func (f *FloatContainer) preferredWidth(maxWidth int) layout.Dimension {
	if f.Base == nil {
		return layout.Flex()
	}
	return f.Base.preferredWidth(maxWidth)
}

func (f *FloatContainer) preferredHeight(width int) layout.Dimension {
	if f.Base == nil {
		return layout.Flex()
	}
	return f.Base.preferredHeight(width)
}

func (f *FloatContainer) paint(ctx *renderContext, g *Grid, wp WritePosition) {
	if f.Base != nil {
		f.Base.paint(ctx, g, wp)
	}

	order := make([]int, len(f.Floats))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return f.Floats[order[a]].Z < f.Floats[order[b]].Z
	})

	for _, i := range order {
		f.paintFloat(ctx, g, wp.Rect, &f.Floats[i])
	}
}

func (f *FloatContainer) paintFloat(ctx *renderContext, g *Grid, base layout.Rect, fl *Float) {
	if fl.Content == nil || base.IsEmpty() {
		return
	}

	var cursor layout.Point
	anchored := false
	if fl.CursorAnchor != "" {
		cursor, anchored = ctx.cursors[fl.CursorAnchor]
		if !anchored {
			// The anchor window painted no cursor this pass; the
			// float has nowhere to hang. Skip it until one appears.
			return
		}
	}

	width := f.resolveExtent(fl.Width, fl.Left, fl.Right, base.Width, func(avail int) layout.Dimension {
		return fl.Content.preferredWidth(avail)
	})
	height := f.resolveExtent(fl.Height, fl.Top, fl.Bottom, base.Height, func(avail int) layout.Dimension {
		return fl.Content.preferredHeight(width)
	})

	var x, y int
	switch {
	case anchored:
		x = cursor.X
		y = cursor.Y + 1
		below := base.Bottom() - y
		if below < height+fl.FlipMargin {
			// Not enough room under the cursor; open upward.
			y = cursor.Y - height
		}
	default:
		x = f.resolveOffset(fl.Left, fl.Right, base.X, base.Right(), width)
		y = f.resolveOffset(fl.Top, fl.Bottom, base.Y, base.Bottom(), height)
	}

	// Pull the float back inside the base before clipping so an anchor
	// near an edge slides rather than losing columns.
	if x+width > base.Right() {
		x = base.Right() - width
	}
	if x < base.X {
		x = base.X
	}
	if y < base.Y {
		y = base.Y
	}

	r := layout.NewRect(x, y, width, height).Intersect(base)
	if r.IsEmpty() {
		return
	}
	z := g.MaxZ() + 1
	fl.Content.paint(ctx, g, WritePosition{Rect: r, ExtendedHeight: r.Height, Z: z})
}

// resolveExtent determines the float size along one axis: a fixed size
// wins, then a pair of opposing offsets, then the content's preference.
func (f *FloatContainer) resolveExtent(size, near, far Extent, baseExtent int, prefer func(avail int) layout.Dimension) int {
	if n, ok := size.Get(); ok {
		return min(n, baseExtent)
	}
	if a, aok := near.Get(); aok {
		if b, bok := far.Get(); bok {
			return max(baseExtent-a-b, 0)
		}
	}
	d, _ := prefer(baseExtent).Validate()
	return min(d.Clamp(d.Preferred), baseExtent)
}

// resolveOffset determines the float position along one axis; with neither
// offset set the float is centered.
func (f *FloatContainer) resolveOffset(near, far Extent, lo, hi, extent int) int {
	if n, ok := near.Get(); ok {
		return lo + n
	}
	if n, ok := far.Get(); ok {
		return hi - n - extent
	}
	return lo + (hi-lo-extent)/2
}
