package pane

import "github.com/grindlemire/go-pane/internal/layout"

// HSplit stacks children vertically: the available rows are divided
// between them and every child spans the full width.
type HSplit struct {
	Children []Container

	// Gap inserts this many decoration rows between adjacent visible
	// children.
	Gap int

	// Style fills gaps and any rows left over once every child has
	// saturated its maximum height.
	Style Style
}

// VSplit arranges children side by side: the available columns are
// divided between them and every child spans the full height.
type VSplit struct {
	Children []Container

	// Gap inserts this many decoration columns between adjacent visible
	// children.
	Gap int

	// Style fills gaps and any columns left over once every child has
	// saturated its maximum width.
	Style Style
}

func (h *HSplit) preferredWidth(maxWidth int) layout.Dimension {
	dims := make([]layout.Dimension, len(h.Children))
	for i, c := range h.Children {
		dims[i] = c.preferredWidth(maxWidth)
	}
	return layout.Max(dims)
}

func (h *HSplit) preferredHeight(width int) layout.Dimension {
	dims := make([]layout.Dimension, 0, len(h.Children))
	for _, c := range h.Children {
		dims = append(dims, c.preferredHeight(width))
	}
	d := layout.Sum(dims)
	if gaps := h.gapTotal(dims); gaps > 0 {
		d.Min += gaps
		d.Preferred += gaps
		if d.Max < layout.MaxSize {
			d.Max += gaps
		}
	}
	return d
}

func (h *HSplit) gapTotal(dims []layout.Dimension) int {
	if h.Gap <= 0 {
		return 0
	}
	visible := 0
	for _, d := range dims {
		if !d.IsZero() {
			visible++
		}
	}
	return h.Gap * max(visible-1, 0)
}

func (h *HSplit) paint(ctx *renderContext, g *Grid, wp WritePosition) {
	if wp.Rect.IsEmpty() || len(h.Children) == 0 {
		g.Fill(wp.Rect, BlankCell(h.Style), wp.Z)
		return
	}

	dims := make([]layout.Dimension, len(h.Children))
	for i, c := range h.Children {
		d, err := c.preferredHeight(wp.Rect.Width).Validate()
		ctx.reportLayoutErr(err)
		dims[i] = d
	}

	gapTotal := h.gapTotal(dims)
	sizes := layout.Allocate(wp.Rect.Height-gapTotal, dims)

	extendBy := max(wp.ExtendedHeight-wp.Rect.Height, 0)
	gap := BlankCell(h.Style)
	y := wp.Rect.Y
	for i, c := range h.Children {
		if h.Gap > 0 && i > 0 && !dims[i].IsZero() && anyVisibleBefore(dims, i) {
			g.Fill(layout.NewRect(wp.Rect.X, y, wp.Rect.Width, h.Gap), gap, wp.Z)
			y += h.Gap
		}
		// Cross axis passes through unconstrained unless the child
		// declares its own maximum.
		cw := wp.Rect.Width
		if m := c.preferredWidth(wp.Rect.Width).Max; m < cw {
			cw = m
			g.Fill(layout.NewRect(wp.Rect.X+cw, y, wp.Rect.Width-cw, sizes[i]), gap, wp.Z)
		}
		r := layout.NewRect(wp.Rect.X, y, cw, sizes[i])
		child := WritePosition{Rect: r, ExtendedHeight: r.Height, Z: wp.Z}
		if i == len(h.Children)-1 && extendBy > 0 {
			// Extra scrollable rows belong to whichever child is
			// last; it grows downward into the virtual area.
			child.ExtendedHeight = r.Height + extendBy
		}
		c.paint(ctx, g, child)
		y += sizes[i]
	}
	// Residue after max saturation stays part of the split's extent.
	if y < wp.Rect.Bottom() {
		g.Fill(layout.NewRect(wp.Rect.X, y, wp.Rect.Width, wp.Rect.Bottom()-y), gap, wp.Z)
	}
}

func (v *VSplit) preferredWidth(maxWidth int) layout.Dimension {
	dims := make([]layout.Dimension, 0, len(v.Children))
	for _, c := range v.Children {
		dims = append(dims, c.preferredWidth(maxWidth))
	}
	d := layout.Sum(dims)
	if gaps := v.gapTotal(dims); gaps > 0 {
		d.Min += gaps
		d.Preferred += gaps
		if d.Max < layout.MaxSize {
			d.Max += gaps
		}
	}
	return d
}

func (v *VSplit) preferredHeight(width int) layout.Dimension {
	dims := make([]layout.Dimension, len(v.Children))
	for i, c := range v.Children {
		dims[i] = c.preferredHeight(width)
	}
	return layout.Max(dims)
}

func (v *VSplit) gapTotal(dims []layout.Dimension) int {
	if v.Gap <= 0 {
		return 0
	}
	visible := 0
	for _, d := range dims {
		if !d.IsZero() {
			visible++
		}
	}
	return v.Gap * max(visible-1, 0)
}

func (v *VSplit) paint(ctx *renderContext, g *Grid, wp WritePosition) {
	if wp.Rect.IsEmpty() || len(v.Children) == 0 {
		g.Fill(wp.Rect, BlankCell(v.Style), wp.Z)
		return
	}

	dims := make([]layout.Dimension, len(v.Children))
	for i, c := range v.Children {
		d, err := c.preferredWidth(wp.Rect.Width).Validate()
		ctx.reportLayoutErr(err)
		dims[i] = d
	}

	gapTotal := v.gapTotal(dims)
	sizes := layout.Allocate(wp.Rect.Width-gapTotal, dims)

	gap := BlankCell(v.Style)
	x := wp.Rect.X
	for i, c := range v.Children {
		if v.Gap > 0 && i > 0 && !dims[i].IsZero() && anyVisibleBefore(dims, i) {
			g.Fill(layout.NewRect(x, wp.Rect.Y, v.Gap, wp.Rect.Height), gap, wp.Z)
			x += v.Gap
		}
		ch := wp.Rect.Height
		if m := c.preferredHeight(sizes[i]).Max; m < ch {
			ch = m
			g.Fill(layout.NewRect(x, wp.Rect.Y+ch, sizes[i], wp.Rect.Height-ch), gap, wp.Z)
		}
		r := layout.NewRect(x, wp.Rect.Y, sizes[i], ch)
		c.paint(ctx, g, WritePosition{Rect: r, ExtendedHeight: wp.ExtendedHeight, Z: wp.Z})
		x += sizes[i]
	}
	if x < wp.Rect.Right() {
		g.Fill(layout.NewRect(x, wp.Rect.Y, wp.Rect.Right()-x, wp.Rect.Height), gap, wp.Z)
	}
}

func anyVisibleBefore(dims []layout.Dimension, i int) bool {
	for j := 0; j < i; j++ {
		if !dims[j].IsZero() {
			return true
		}
	}
	return false
}
