package pane

import (
	"fmt"

	"github.com/grindlemire/go-pane/internal/debug"
	"github.com/grindlemire/go-pane/internal/layout"
)

// Renderer drives render passes: it paints the container tree into a
// fresh grid, diffs it against the previous pass, and translates the
// changed runs into a minimal operation stream on the Output.
//
// The renderer is single-threaded and cooperative: exactly one pass runs
// at a time, and a Redraw arriving while a pass is in flight coalesces
// into exactly one follow-up pass. Callers on other goroutines must
// serialize access themselves.
type Renderer struct {
	root Container
	out  Output

	cols, rows int
	focusID    string
	onError    func(error)
	shape      CursorShape

	prev *Grid

	rendering     bool
	redrawPending bool

	// Terminal-side state tracked across passes so a pass that changes
	// nothing emits nothing.
	outRow, outCol int
	outKnown       bool
	curStyle       Style
	styleKnown     bool
	cursorShown    bool
	shownKnown     bool
	curShape       CursorShape
	shapeKnown     bool
}

// Option configures a Renderer.
type Option func(*Renderer) error

// WithOnError installs the callback render-pass errors are funneled to.
// Errors degrade fidelity, never availability; the callback is the only
// place they surface.
func WithOnError(fn func(error)) Option {
	return func(r *Renderer) error {
		if fn == nil {
			return fmt.Errorf("pane: nil error callback")
		}
		r.onError = fn
		return nil
	}
}

// WithCursorShape sets the shape used when the focused window shows a
// cursor.
func WithCursorShape(shape CursorShape) Option {
	return func(r *Renderer) error {
		r.shape = shape
		return nil
	}
}

// WithFocus sets the initially focused window ID.
func WithFocus(windowID string) Option {
	return func(r *Renderer) error {
		r.focusID = windowID
		return nil
	}
}

// WithSize fixes the initial grid size instead of querying the output.
func WithSize(cols, rows int) Option {
	return func(r *Renderer) error {
		if cols < 0 || rows < 0 {
			return fmt.Errorf("pane: invalid size %dx%d", cols, rows)
		}
		r.cols, r.rows = cols, rows
		return nil
	}
}

// NewRenderer creates a renderer for the given tree and transport.
func NewRenderer(root Container, out Output, opts ...Option) (*Renderer, error) {
	if root == nil {
		return nil, fmt.Errorf("pane: nil root container")
	}
	if out == nil {
		return nil, fmt.Errorf("pane: nil output")
	}
	r := &Renderer{root: root, out: out, cols: -1}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if r.cols < 0 {
		cols, rows, err := out.Size()
		if err != nil {
			return nil, fmt.Errorf("pane: query terminal size: %w", err)
		}
		r.cols, r.rows = cols, rows
	}
	return r, nil
}

// SetFocus selects which window's reported cursor becomes the terminal
// cursor. Takes effect on the next pass.
func (r *Renderer) SetFocus(windowID string) {
	r.focusID = windowID
}

// Resize updates the target dimensions used by the next pass. A resize
// arriving mid-pass lets the in-flight pass complete at its original size
// and schedules a follow-up at the new one.
func (r *Renderer) Resize(cols, rows int) {
	if cols == r.cols && rows == r.rows {
		return
	}
	r.cols, r.rows = cols, rows
	if r.rendering {
		r.redrawPending = true
	}
}

// Redraw runs a render pass. Called while a pass is in flight it is
// recorded and coalesced: at most one follow-up pass runs afterward,
// reflecting the latest tree state.
func (r *Renderer) Redraw() {
	if r.rendering {
		r.redrawPending = true
		return
	}
	r.rendering = true
	r.pass()
	for r.redrawPending {
		r.redrawPending = false
		r.pass()
	}
	r.rendering = false
}

func (r *Renderer) pass() {
	cols, rows := r.cols, r.rows
	grid := NewGrid(cols, rows)
	ctx := newRenderContext(r.focusID, r.onError)

	r.root.paint(ctx, grid, WritePosition{
		Rect:           layout.NewRect(0, 0, cols, rows),
		ExtendedHeight: rows,
	})

	runs := grid.Diff(r.prev)
	if debug.Enabled() {
		debug.Logf("pass %dx%d: %d change runs", cols, rows, len(runs))
		for _, run := range runs {
			debug.Logf("  run y=%d x=%d cells=%d clear=%t", run.Y, run.X, len(run.Cells), run.ClearToEnd)
		}
	}
	for _, run := range runs {
		r.emitRun(run)
	}
	r.placeCursor(grid)

	if err := r.out.Flush(); err != nil {
		r.report(fmt.Errorf("pane: flush: %w", err))
	}
	r.prev = grid
}

func (r *Renderer) report(err error) {
	debug.Logf("renderer error: %v", err)
	if r.onError != nil {
		r.onError(err)
	}
}

// emitRun writes one change run, minimizing cursor moves and style
// switches against the tracked terminal state.
func (r *Renderer) emitRun(run ChangeRun) {
	r.moveTo(run.Y, run.X)

	i := 0
	col := run.X
	for i < len(run.Cells) {
		c := run.Cells[i]
		if c.IsContinuation() {
			// A continuation is painted as part of its cluster and
			// carries no text of its own.
			i++
			col++
			continue
		}
		// Batch consecutive cells sharing a style into one write.
		style := c.Style
		text := make([]byte, 0, 16)
		cols := 0
		for i < len(run.Cells) {
			c = run.Cells[i]
			if !c.IsContinuation() && c.Style != style {
				break
			}
			if !c.IsContinuation() {
				text = append(text, c.Content...)
				cols += max(int(c.Width), 1)
			}
			i++
		}
		r.moveTo(run.Y, col)
		r.setStyle(style)
		r.out.WriteText(string(text))
		col += cols
		r.outCol = col
	}

	if run.ClearToEnd {
		r.setStyle(Style{})
		r.out.ClearToEndOfLine()
	}
}

func (r *Renderer) moveTo(row, col int) {
	if r.outKnown && r.outRow == row && r.outCol == col {
		return
	}
	r.out.MoveCursor(row, col)
	r.outRow, r.outCol = row, col
	r.outKnown = true
}

func (r *Renderer) setStyle(s Style) {
	if r.styleKnown && r.curStyle == s {
		return
	}
	r.out.SetStyle(s)
	r.curStyle = s
	r.styleKnown = true
}

// placeCursor positions, shows or hides the terminal cursor to match the
// grid's reported cursor.
func (r *Renderer) placeCursor(g *Grid) {
	if !g.CursorVisible {
		if !r.shownKnown || r.cursorShown {
			r.out.ShowCursor(false)
			r.cursorShown = false
			r.shownKnown = true
		}
		return
	}

	r.moveTo(g.CursorPos.Y, g.CursorPos.X)
	shape := g.CursorShape
	if shape == CursorBlock && r.shape != CursorBlock {
		shape = r.shape
	}
	if !r.shapeKnown || r.curShape != shape {
		r.out.SetCursorShape(shape)
		r.curShape = shape
		r.shapeKnown = true
	}
	if !r.shownKnown || !r.cursorShown {
		r.out.ShowCursor(true)
		r.cursorShown = true
		r.shownKnown = true
	}
}
