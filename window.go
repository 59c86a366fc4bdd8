package pane

import (
	"github.com/grindlemire/go-pane/internal/debug"
	"github.com/grindlemire/go-pane/internal/layout"
)

// Window is the leaf container: it gives one Control a region of the grid.
// Windows persist across passes and keep their scroll offset; the Control
// is referenced, not owned, and may back several Windows at once.
type Window struct {
	Content Control

	// ID names the window for SetFocus and for cursor-anchored floats.
	ID string

	// Width and Height override the control's reported dimensions when
	// non-zero.
	Width  layout.Dimension
	Height layout.Dimension

	// Visible hides the window (zero dimensions) when it returns false.
	// Nil means always visible.
	Visible func() bool

	// Wrap splits long lines into multiple physical rows instead of
	// truncating.
	Wrap bool

	// ScrollMargin keeps the cursor at least this many rows away from
	// the viewport edges when scrolling.
	ScrollMargin int

	// Style paints the window's background padding.
	Style Style

	LeftMargins  []Margin
	RightMargins []Margin

	// scrollOffset is in physical rows and persists across passes so
	// unrelated redraws do not jitter the view.
	scrollOffset int
}

// NewWindow wraps a control in a window.
func NewWindow(ctl Control, opts ...func(*Window)) *Window {
	w := &Window{Content: ctl}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ScrollOffset returns the current vertical scroll position.
func (w *Window) ScrollOffset() int { return w.scrollOffset }

func (w *Window) hidden() bool {
	return w.Visible != nil && !w.Visible()
}

func (w *Window) preferredWidth(maxWidth int) layout.Dimension {
	if w.hidden() {
		return layout.Zero()
	}
	if !w.Width.IsZero() {
		return w.Width
	}
	var d layout.Dimension
	if w.Content != nil {
		d = w.Content.PreferredWidth(maxWidth)
	} else {
		d = layout.Flex()
	}
	// Margins consume fixed columns on top of the content's needs.
	if m := w.marginWidth(); m > 0 {
		d.Min += m
		d.Preferred += m
		if d.Max < layout.MaxSize {
			d.Max += m
		}
	}
	return d
}

func (w *Window) preferredHeight(width int) layout.Dimension {
	if w.hidden() {
		return layout.Zero()
	}
	if !w.Height.IsZero() {
		return w.Height
	}
	if w.Content == nil {
		return layout.Flex()
	}
	inner := width - w.marginWidth()
	if inner < 0 {
		inner = 0
	}
	return w.Content.PreferredHeight(inner)
}

// marginInput returns the input margins size themselves from. Widths are
// derived from the control's declared line count so reservation and paint
// agree even though the exact row total is only known after reading.
func (w *Window) marginInput() MarginInput {
	var total int
	if w.Content != nil {
		total, _ = w.Content.LineCount()
	}
	return MarginInput{TotalRows: total}
}

// marginWidth sums the columns the margins consume.
func (w *Window) marginWidth() int {
	in := w.marginInput()
	total := 0
	for _, m := range w.LeftMargins {
		total += m.Width(in)
	}
	for _, m := range w.RightMargins {
		total += m.Width(in)
	}
	return total
}

func (w *Window) paint(ctx *renderContext, g *Grid, wp WritePosition) {
	if w.hidden() || wp.Rect.IsEmpty() {
		return
	}
	if w.Content == nil {
		g.Fill(wp.Rect, BlankCell(w.Style), wp.Z)
		return
	}

	// Reserve margin columns before the content sees its width.
	widthIn := w.marginInput()
	leftW := 0
	for _, m := range w.LeftMargins {
		leftW += m.Width(widthIn)
	}
	rightW := 0
	for _, m := range w.RightMargins {
		rightW += m.Width(widthIn)
	}
	content := layout.NewRect(wp.Rect.X+leftW, wp.Rect.Y, wp.Rect.Width-leftW-rightW, wp.Rect.Height)
	if content.Width <= 0 {
		g.Fill(wp.Rect, BlankCell(w.Style), wp.Z)
		return
	}

	reader := newRowReader(w.Content, content.Width, w.Wrap, ctx.reportErr)

	// Inside a scrollable pane the window paints its full content into
	// the extended region and leaves scrolling to the pane.
	visible := content.Height
	extended := wp.ExtendedHeight > wp.Rect.Height
	if extended {
		visible = wp.ExtendedHeight
	}

	cursor, hasCursor := w.Content.CursorPosition()
	cursorRow, cursorCol := 0, 0
	if hasCursor {
		cursorRow, cursorCol = reader.cursorRow(cursor.Y, cursor.X)
	}

	if extended {
		w.scrollOffset = 0
	} else if hasCursor {
		w.scrollTo(cursorRow, visible, reader)
	} else if w.scrollOffset > 0 {
		// Keep a stale offset from scrolling past the end.
		if total, ok := reader.totalUpTo(w.scrollOffset + visible); ok && w.scrollOffset > total-visible {
			w.scrollOffset = max(total-visible, 0)
		}
	}

	w.paintRows(g, content, wp.Z, visible, extended, reader)

	totalRows, known := reader.known()
	marginRows := visible
	if extended && known && totalRows < marginRows {
		marginRows = totalRows
	}
	w.paintMargins(g, wp, widthIn, marginRows, totalRows)

	if hasCursor {
		sx := content.X + min(cursorCol, content.Width-1)
		sy := content.Y + cursorRow - w.scrollOffset
		onScreen := cursorRow >= w.scrollOffset && cursorRow < w.scrollOffset+visible
		if onScreen {
			if w.ID != "" {
				ctx.cursors[w.ID] = layout.Point{X: sx, Y: sy}
			}
			if w.ID != "" && w.ID == ctx.focusID {
				g.SetCursor(layout.Point{X: sx, Y: sy}, CursorBlock)
			}
		}
	}
	debug.Logf("window %q painted rect=%+v offset=%d", w.ID, content, w.scrollOffset)
}

// scrollTo moves scrollOffset by the minimum amount that brings row inside
// the viewport, honoring the scroll margin. An already-visible cursor
// never moves the offset.
func (w *Window) scrollTo(row, height int, reader *rowReader) {
	margin := w.ScrollMargin
	if margin > (height-1)/2 {
		margin = (height - 1) / 2
	}
	if margin < 0 {
		margin = 0
	}

	top := w.scrollOffset + margin
	bottom := w.scrollOffset + height - 1 - margin
	switch {
	case row < top:
		w.scrollOffset = max(row-margin, 0)
	case row > bottom:
		w.scrollOffset = row - (height - 1) + margin
	}

	// Never show blank rows past the end while content above could fill
	// the viewport.
	if total, ok := reader.totalUpTo(w.scrollOffset + height); ok && w.scrollOffset > total-height {
		w.scrollOffset = max(total-height, 0)
	}
}

func (w *Window) paintRows(g *Grid, content layout.Rect, z, visible int, extended bool, reader *rowReader) {
	blank := BlankCell(w.Style)
	right := content.X + content.Width
	for vy := 0; vy < visible; vy++ {
		cells, ok := reader.row(w.scrollOffset + vy)
		if !ok && extended {
			// Painting into a virtual region: stop at the end of
			// content instead of materializing blank rows.
			return
		}
		y := content.Y + vy
		x := content.X
		for i := 0; i < len(cells) && x < right; i++ {
			c := cells[i]
			if c.Width == 2 && x == right-1 {
				// A wide cluster truncated at the edge cannot show
				// half; pad the last column instead.
				break
			}
			g.Set(x, y, c, z)
			x++
		}
		for ; x < right; x++ {
			g.Set(x, y, blank, z)
		}
	}
}

func (w *Window) paintMargins(g *Grid, wp WritePosition, widthIn MarginInput, visible, totalRows int) {
	in := MarginInput{
		ScrollOffset:  w.scrollOffset,
		TotalRows:     max(totalRows, w.scrollOffset+visible),
		VisibleHeight: visible,
	}
	x := wp.Rect.X
	for _, m := range w.LeftMargins {
		width := m.Width(widthIn)
		w.paintMargin(g, m, x, width, wp, visible, in)
		x += width
	}
	x = wp.Rect.Right()
	for i := len(w.RightMargins) - 1; i >= 0; i-- {
		m := w.RightMargins[i]
		width := m.Width(widthIn)
		x -= width
		w.paintMargin(g, m, x, width, wp, visible, in)
	}
}

func (w *Window) paintMargin(g *Grid, m Margin, x, width int, wp WritePosition, visible int, in MarginInput) {
	blank := BlankCell(w.Style)
	for vy := 0; vy < visible; vy++ {
		y := wp.Rect.Y + vy
		cells := m.Line(vy, in).Cells()
		cx := x
		for _, c := range cells {
			if cx >= x+width {
				break
			}
			g.Set(cx, y, c, wp.Z)
			cx++
		}
		for ; cx < x+width; cx++ {
			g.Set(cx, y, blank, wp.Z)
		}
	}
}
