package pane

import "errors"

// physRow is one physical (display) row produced by wrapping a control's
// logical lines.
type physRow struct {
	cells []Cell
	// line is the logical line index this row came from.
	line int
	// startCol is the content column of the row's first cell, nonzero
	// only on wrapped continuation rows.
	startCol int
}

// rowReader adapts a control's logical lines to physical rows for one
// paint, wrapping when enabled.
//
// Laziness: without wrapping, rows map one-to-one to logical lines and are
// fetched directly by index, so only the resolved viewport touches the
// control. With wrapping, rows must be materialized in order (the wrap
// layout of a line depends on nothing, but row indices depend on every
// line before it), so lines are pulled sequentially up to the last row the
// viewport needs.
type rowReader struct {
	ctl   Control
	width int
	wrap  bool

	// Wrapped-mode state.
	rows     []physRow
	nextLine int
	done     bool

	onError func(error)
}

func newRowReader(ctl Control, width int, wrap bool, onError func(error)) *rowReader {
	return &rowReader{ctl: ctl, width: width, wrap: wrap, onError: onError}
}

// row returns physical row i, or ok=false past the end of content.
func (r *rowReader) row(i int) (cells []Cell, ok bool) {
	if i < 0 {
		return nil, false
	}
	if !r.wrap {
		line, err := r.ctl.Line(i, r.width)
		if err != nil {
			if errors.Is(err, ErrEndOfContent) {
				return nil, false
			}
			r.report(err)
			return nil, true // failed lines paint blank
		}
		return line.Cells(), true
	}
	if r.ensure(i+1) <= i {
		return nil, false
	}
	return r.rows[i].cells, true
}

// totalUpTo returns the physical row count when it can be known without
// materializing more than limit rows.
func (r *rowReader) totalUpTo(limit int) (int, bool) {
	if !r.wrap {
		return r.ctl.LineCount()
	}
	r.ensure(limit)
	if r.done {
		return len(r.rows), true
	}
	return len(r.rows), false
}

// known returns however many physical rows have been established so far,
// and whether that count is final.
func (r *rowReader) known() (int, bool) {
	if !r.wrap {
		return r.ctl.LineCount()
	}
	return len(r.rows), r.done
}

// cursorRow maps a content cursor (logical line, content column) to its
// physical row and the column within that row.
func (r *rowReader) cursorRow(line, col int) (row, rowCol int) {
	if !r.wrap {
		return line, col
	}
	for r.nextLine <= line && !r.done {
		r.fetchLine()
	}

	lineStart, lineEnd := -1, -1
	for i := range r.rows {
		if r.rows[i].line != line {
			continue
		}
		if lineStart < 0 {
			lineStart = i
		}
		lineEnd = i
	}
	if lineStart < 0 {
		// Content ended before the cursor's line.
		if r.width > 0 {
			return len(r.rows) + col/r.width, col % r.width
		}
		return len(r.rows), col
	}

	for i := lineStart; i <= lineEnd; i++ {
		if i == lineEnd {
			inRow := col - r.rows[i].startCol
			// Columns past the end of the line stay on the last row
			// until they spill past the row width.
			if r.width > 0 && inRow >= r.width {
				return i + inRow/r.width, inRow % r.width
			}
			return i, inRow
		}
		if col < r.rows[i].startCol+countCols(r.rows[i].cells) {
			return i, col - r.rows[i].startCol
		}
	}
	return lineEnd, col - r.rows[lineEnd].startCol
}

// ensure materializes wrapped rows until at least n exist or the content
// ends, returning the number now available.
func (r *rowReader) ensure(n int) int {
	for len(r.rows) < n && !r.done {
		r.fetchLine()
	}
	return len(r.rows)
}

func (r *rowReader) fetchLine() {
	lineno := r.nextLine
	r.nextLine++

	line, err := r.ctl.Line(lineno, r.width)
	if err != nil {
		if errors.Is(err, ErrEndOfContent) {
			r.done = true
			return
		}
		r.report(err)
		r.rows = append(r.rows, physRow{line: lineno})
		return
	}

	// Wrap at cell boundaries; a double-width cluster that does not fit
	// at the end of a row moves whole to the next row.
	cells := line.Cells()
	startCol := 0
	for {
		row, rest := splitRow(cells, r.width)
		r.rows = append(r.rows, physRow{cells: row, line: lineno, startCol: startCol})
		startCol += countCols(row)
		if len(rest) == 0 {
			return
		}
		cells = rest
	}
}

func (r *rowReader) report(err error) {
	if r.onError != nil {
		r.onError(err)
	}
}

// splitRow takes up to width columns of cells off the front of cells,
// never splitting a wide cluster.
func splitRow(cells []Cell, width int) (row, rest []Cell) {
	cols, i := 0, 0
	for i < len(cells) {
		w := int(cells[i].Width)
		span := 1
		if w == 2 {
			span = 2 // content cell plus its continuation
		}
		if cols+w > width {
			break
		}
		cols += w
		i += span
		if i > len(cells) {
			i = len(cells)
		}
	}
	if i == 0 && len(cells) > 0 {
		// Narrower than a single cluster; emit it anyway so the reader
		// always makes progress.
		i = 1
	}
	return cells[:i], cells[i:]
}

// countCols returns the number of columns row occupies. Every cell spans
// exactly one column; a wide cluster is already two cells, its content
// cell plus a continuation.
func countCols(row []Cell) int {
	return len(row)
}
