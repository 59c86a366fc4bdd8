package pane

import (
	"github.com/grindlemire/go-pane/internal/layout"
)

// ScrollablePane makes an arbitrarily tall child scrollable: the child is
// painted into a virtual grid taller than the viewport, the pane scrolls
// that grid minimally to keep the child's cursor visible, and the visible
// rows are copied into the real write position.
type ScrollablePane struct {
	Child Container

	// MaxRows caps the virtual grid; zero means DefaultMaxRows.
	MaxRows int

	// ScrollMargin keeps the cursor this many rows from the viewport
	// edges, as on Window.
	ScrollMargin int

	// ShowScrollbar reserves the rightmost column for a scrollbar.
	ShowScrollbar  bool
	ScrollbarStyle Style
	ThumbStyle     Style

	scrollOffset int
}

// ScrollOffset returns the current vertical scroll position.
func (s *ScrollablePane) ScrollOffset() int { return s.scrollOffset }

func (s *ScrollablePane) maxRows() int {
	if s.MaxRows > 0 {
		return s.MaxRows
	}
	return DefaultMaxRows
}

func (s *ScrollablePane) preferredWidth(maxWidth int) layout.Dimension {
	if s.Child == nil {
		return layout.Flex()
	}
	d := s.Child.preferredWidth(maxWidth)
	if s.ShowScrollbar {
		d.Min++
		d.Preferred++
		if d.Max < layout.MaxSize {
			d.Max++
		}
	}
	return d
}

func (s *ScrollablePane) preferredHeight(width int) layout.Dimension {
	if s.Child == nil {
		return layout.Flex()
	}
	// The pane exists to absorb height: it accepts any viewport smaller
	// than the child wants.
	d := s.Child.preferredHeight(width)
	d.Min = 0
	return d
}

func (s *ScrollablePane) paint(ctx *renderContext, g *Grid, wp WritePosition) {
	if s.Child == nil || wp.Rect.IsEmpty() {
		return
	}

	content := wp.Rect
	if s.ShowScrollbar && content.Width > 1 {
		content.Width--
	}

	// Cursor entries the child adds are in virtual coordinates and need
	// translating once the scroll is resolved.
	before := make(map[string]layout.Point, len(ctx.cursors))
	for k, v := range ctx.cursors {
		before[k] = v
	}

	virtual := NewVirtualGrid(content.Width, s.maxRows())
	s.Child.paint(ctx, virtual, WritePosition{
		Rect:           layout.NewRect(0, 0, content.Width, content.Height),
		ExtendedHeight: s.maxRows(),
	})

	total := virtual.Height()
	if virtual.CursorVisible {
		s.scrollTo(virtual.CursorPos.Y, content.Height, total)
	} else if s.scrollOffset > total-content.Height {
		s.scrollOffset = max(total-content.Height, 0)
	}

	// Copy the visible slice of the virtual grid into place.
	blank := BlankCell(Style{})
	for vy := 0; vy < content.Height; vy++ {
		sy := s.scrollOffset + vy
		for x := 0; x < content.Width; x++ {
			if sy < total {
				g.Set(content.X+x, content.Y+vy, virtual.Get(x, sy), wp.Z)
			} else {
				g.Set(content.X+x, content.Y+vy, blank, wp.Z)
			}
		}
	}

	if virtual.CursorVisible {
		cy := virtual.CursorPos.Y - s.scrollOffset
		if cy >= 0 && cy < content.Height {
			g.SetCursor(layout.Point{X: content.X + virtual.CursorPos.X, Y: content.Y + cy}, virtual.CursorShape)
		}
	}

	s.translateCursors(ctx, before, content)
	s.paintScrollbar(g, wp, content, total)
}

// scrollTo applies the window scroll policy to the virtual cursor row.
func (s *ScrollablePane) scrollTo(row, height, total int) {
	margin := s.ScrollMargin
	if margin > (height-1)/2 {
		margin = (height - 1) / 2
	}
	if margin < 0 {
		margin = 0
	}
	top := s.scrollOffset + margin
	bottom := s.scrollOffset + height - 1 - margin
	switch {
	case row < top:
		s.scrollOffset = max(row-margin, 0)
	case row > bottom:
		s.scrollOffset = row - (height - 1) + margin
	}
	if s.scrollOffset > total-height {
		s.scrollOffset = max(total-height, 0)
	}
}

// translateCursors rewrites cursor registrations made during the child
// paint from virtual to screen coordinates, dropping any scrolled out of
// view.
func (s *ScrollablePane) translateCursors(ctx *renderContext, before map[string]layout.Point, content layout.Rect) {
	for id, p := range ctx.cursors {
		if old, ok := before[id]; ok && old == p {
			continue // untouched by the child
		}
		y := p.Y - s.scrollOffset
		if y < 0 || y >= content.Height {
			delete(ctx.cursors, id)
			continue
		}
		ctx.cursors[id] = layout.Point{X: content.X + p.X, Y: content.Y + y}
	}
}

func (s *ScrollablePane) paintScrollbar(g *Grid, wp WritePosition, content layout.Rect, total int) {
	if !s.ShowScrollbar || wp.Rect.Width <= content.Width {
		return
	}
	bar := ScrollbarMargin{Style: s.ScrollbarStyle, ThumbStyle: s.ThumbStyle}
	in := MarginInput{ScrollOffset: s.scrollOffset, TotalRows: total, VisibleHeight: content.Height}
	x := content.Right()
	for vy := 0; vy < content.Height; vy++ {
		cells := bar.Line(vy, in).Cells()
		cell := BlankCell(s.ScrollbarStyle)
		if len(cells) > 0 {
			cell = cells[0]
		}
		g.Set(x, wp.Rect.Y+vy, cell, wp.Z)
	}
}
