package pane

import (
	"fmt"

	"github.com/grindlemire/go-pane/internal/layout"
)

// CursorShape selects the rendered cursor glyph.
type CursorShape int

const (
	CursorBlock CursorShape = iota
	CursorUnderline
	CursorBar
)

// DefaultMaxRows caps how many rows a grid will materialize when painted
// with an extended height (scrollable content of unknown length).
const DefaultMaxRows = 10000

// Grid is a rectangular buffer of styled cells with per-cell z-order
// tracking. Containers paint into a Grid; the Renderer diffs successive
// grids to produce minimal terminal updates.
//
// A grid has a fixed width. Rows materialize on demand up to maxRows, so a
// scrollable pane can paint a tall child without committing memory for
// rows that stay blank.
type Grid struct {
	width   int
	height  int
	maxRows int

	cells []Cell
	zbuf  []int

	// Cursor state recorded by the focused window during painting.
	CursorPos     layout.Point
	CursorVisible bool
	CursorShape   CursorShape

	maxZ int
}

// NewGrid creates a fixed-size grid filled with blank cells at z 0.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{width: width, maxRows: height}
	g.grow(height)
	return g
}

// NewVirtualGrid creates a grid that starts with zero rows and grows as
// cells are written, up to maxRows.
func NewVirtualGrid(width, maxRows int) *Grid {
	if width < 0 {
		width = 0
	}
	if maxRows < 0 {
		maxRows = 0
	}
	return &Grid{width: width, maxRows: maxRows}
}

func (g *Grid) grow(rows int) {
	if rows <= g.height {
		return
	}
	if rows > g.maxRows {
		rows = g.maxRows
	}
	cells := make([]Cell, g.width*rows)
	copy(cells, g.cells)
	blank := BlankCell(Style{})
	for i := g.width * g.height; i < len(cells); i++ {
		cells[i] = blank
	}
	zbuf := make([]int, g.width*rows)
	copy(zbuf, g.zbuf)
	g.cells = cells
	g.zbuf = zbuf
	g.height = rows
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of materialized rows.
func (g *Grid) Height() int { return g.height }

// MaxZ returns the highest z value written so far.
func (g *Grid) MaxZ() int { return g.maxZ }

// InBounds reports whether (x, y) addresses a materialized cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y). Reads outside the materialized area
// return a blank cell.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return BlankCell(Style{})
	}
	return g.cells[y*g.width+x]
}

// Set writes cell at (x, y) with z-order z, materializing rows as needed.
// Writes below the current z of the cell are discarded, as are writes
// outside the column range or beyond the row cap. Ties go to the later
// writer.
func (g *Grid) Set(x, y int, cell Cell, z int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.maxRows {
		return
	}
	if y >= g.height {
		g.grow(y + 1)
	}
	i := y*g.width + x
	if z < g.zbuf[i] {
		return
	}
	g.cells[i] = cell
	g.zbuf[i] = z
	if z > g.maxZ {
		g.maxZ = z
	}
}

// Fill paints every cell of r with cell at z-order z, clipped to the grid.
func (g *Grid) Fill(r layout.Rect, cell Cell, z int) {
	clipped := r.Intersect(layout.NewRect(0, 0, g.width, g.maxRows))
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			g.Set(x, y, cell, z)
		}
	}
}

// SetCursor records the cursor position for the focused window. The cell
// under the cursor is tagged so tests can locate it; the tag does not
// participate in diff equality.
func (g *Grid) SetCursor(p layout.Point, shape CursorShape) {
	g.CursorPos = p
	g.CursorVisible = true
	g.CursorShape = shape
	if g.InBounds(p.X, p.Y) {
		g.cells[p.Y*g.width+p.X].Flags |= FlagCursor
	}
}

// ChangeRun is a horizontal run of cells on one row that differ between
// two grids.
type ChangeRun struct {
	X, Y  int
	Cells []Cell
	// ClearToEnd is set when every cell from the end of the run to the
	// right edge of the row became blank with default style, so the
	// transport may erase to end of line instead of writing spaces.
	ClearToEnd bool
}

// Diff compares g (the new frame) against prev row by row and returns the
// runs that changed, ordered top to bottom, left to right. Rows present
// only in prev yield a single clear-to-end run; rows present only in g are
// diffed against a blank row. A width mismatch returns the full grid as
// changed, since the caller clears the screen on resize.
func (g *Grid) Diff(prev *Grid) []ChangeRun {
	if prev == nil || prev.width != g.width {
		return g.fullRuns()
	}
	var runs []ChangeRun
	for y := 0; y < g.height; y++ {
		runs = appendRowRuns(runs, g.rowSlice(y), prev.rowSlice(y), y)
	}
	for y := g.height; y < prev.height; y++ {
		runs = append(runs, ChangeRun{Y: y, ClearToEnd: true})
	}
	return runs
}

func (g *Grid) rowSlice(y int) []Cell {
	if y >= g.height {
		return nil
	}
	return g.cells[y*g.width : (y+1)*g.width]
}

func (g *Grid) fullRuns() []ChangeRun {
	runs := make([]ChangeRun, 0, g.height)
	for y := 0; y < g.height; y++ {
		runs = append(runs, ChangeRun{Y: y, Cells: g.Row(y)})
	}
	return runs
}

func appendRowRuns(runs []ChangeRun, cur, prev []Cell, y int) []ChangeRun {
	blank := BlankCell(Style{})
	at := func(row []Cell, x int) Cell {
		if x < len(row) {
			return row[x]
		}
		return blank
	}
	x := 0
	for x < len(cur) {
		if cur[x].Equal(at(prev, x)) {
			x++
			continue
		}
		start := x
		for x < len(cur) && !cur[x].Equal(at(prev, x)) {
			x++
		}
		run := ChangeRun{
			X:     start,
			Y:     y,
			Cells: append([]Cell(nil), cur[start:x]...),
		}
		if x == len(cur) {
			run.trimToClear()
		}
		runs = append(runs, run)
	}
	return runs
}

// trimToClear checks whether the run's tail is all blank default-style
// cells reaching the row edge and, if so, drops them in favor of the
// clear-to-end marker.
func (r *ChangeRun) trimToClear() {
	blank := BlankCell(Style{})
	end := len(r.Cells)
	for end > 0 && r.Cells[end-1].Equal(blank) {
		end--
	}
	if end == len(r.Cells) {
		return
	}
	r.Cells = r.Cells[:end]
	r.ClearToEnd = true
}

// Apply replays run onto g, used by transports that mirror grid state and
// by tests verifying diff correctness by replay. Replay bypasses z-order:
// a run is already the final painted result.
func (g *Grid) Apply(run ChangeRun) {
	if run.Y < 0 || run.Y >= g.maxRows {
		return
	}
	if run.Y >= g.height {
		g.grow(run.Y + 1)
	}
	x := run.X
	for _, c := range run.Cells {
		if x >= 0 && x < g.width {
			g.cells[run.Y*g.width+x] = c
		}
		x++
	}
	if run.ClearToEnd {
		blank := BlankCell(Style{})
		for x = max(x, 0); x < g.width; x++ {
			g.cells[run.Y*g.width+x] = blank
		}
	}
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	row := make([]Cell, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row
}

// String renders the grid's text content for debugging and tests, one
// line per row, styles and continuations omitted.
func (g *Grid) String() string {
	out := make([]byte, 0, g.width*g.height+g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.IsContinuation() {
				continue
			}
			out = append(out, c.Content...)
		}
		out = append(out, '\n')
	}
	return string(out)
}

// GoString implements fmt.GoStringer for test failure output.
func (g *Grid) GoString() string {
	return fmt.Sprintf("Grid(%dx%d)\n%s", g.width, g.height, g.String())
}
