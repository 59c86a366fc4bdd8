package pane

import (
	"fmt"

	"github.com/grindlemire/go-pane/internal/layout"
)

// Output is the transport the Renderer drives. Implementations translate
// the primitive operations into whatever the backing terminal needs; the
// renderer itself never emits escape bytes.
type Output interface {
	// Size returns the current terminal dimensions.
	Size() (width, height int, err error)

	// MoveCursor positions the write cursor (0-based row, column).
	MoveCursor(row, col int)

	// SetStyle switches the style applied to subsequent writes.
	SetStyle(s Style)

	// WriteText writes text at the current cursor, advancing it.
	WriteText(text string)

	// ClearToEndOfLine blanks from the cursor to the right edge.
	ClearToEndOfLine()

	// ShowCursor toggles terminal cursor visibility.
	ShowCursor(visible bool)

	// SetCursorShape changes the cursor glyph.
	SetCursorShape(shape CursorShape)

	// Flush pushes buffered operations to the terminal.
	Flush() error
}

// MockOutput records the operation stream and mirrors it into a grid so
// tests can assert on both the ops a render pass emitted and the screen
// state they produce.
type MockOutput struct {
	Rows, Cols int

	// Ops is the recorded operation log, one human-readable entry per
	// primitive call.
	Ops []string

	// Screen mirrors the writes; rebuilt lazily on first access after
	// a size change.
	Screen *Grid

	CursorRow, CursorCol int
	CursorShown          bool
	Shape                CursorShape
	Flushes              int

	style Style
}

// NewMockOutput creates a mock transport reporting the given size.
func NewMockOutput(cols, rows int) *MockOutput {
	return &MockOutput{
		Rows:   rows,
		Cols:   cols,
		Screen: NewGrid(cols, rows),
	}
}

func (m *MockOutput) Size() (int, int, error) {
	return m.Cols, m.Rows, nil
}

// SetSize simulates a terminal resize. The mirror grid resets, as a real
// terminal's content is undefined after a resize.
func (m *MockOutput) SetSize(cols, rows int) {
	m.Cols, m.Rows = cols, rows
	m.Screen = NewGrid(cols, rows)
}

func (m *MockOutput) MoveCursor(row, col int) {
	m.Ops = append(m.Ops, fmt.Sprintf("move %d,%d", row, col))
	m.CursorRow, m.CursorCol = row, col
}

func (m *MockOutput) SetStyle(s Style) {
	m.Ops = append(m.Ops, fmt.Sprintf("style %+v", s))
	m.style = s
}

func (m *MockOutput) WriteText(text string) {
	m.Ops = append(m.Ops, "write "+text)
	for _, c := range SegmentCells(text, m.style) {
		if m.CursorCol >= m.Cols {
			break
		}
		m.Screen.Set(m.CursorCol, m.CursorRow, c, 0)
		m.CursorCol++
	}
}

func (m *MockOutput) ClearToEndOfLine() {
	m.Ops = append(m.Ops, "clear-eol")
	blank := BlankCell(Style{})
	for x := m.CursorCol; x < m.Cols; x++ {
		m.Screen.Set(x, m.CursorRow, blank, 0)
	}
}

func (m *MockOutput) ShowCursor(visible bool) {
	m.Ops = append(m.Ops, fmt.Sprintf("show-cursor %t", visible))
	m.CursorShown = visible
}

func (m *MockOutput) SetCursorShape(shape CursorShape) {
	m.Ops = append(m.Ops, fmt.Sprintf("cursor-shape %d", shape))
	m.Shape = shape
}

func (m *MockOutput) Flush() error {
	m.Ops = append(m.Ops, "flush")
	m.Flushes++
	return nil
}

// OpCount returns how many non-flush operations have been recorded since
// the last call to ResetOps.
func (m *MockOutput) OpCount() int {
	n := 0
	for _, op := range m.Ops {
		if op != "flush" {
			n++
		}
	}
	return n
}

// ResetOps clears the recorded log, keeping the mirrored screen.
func (m *MockOutput) ResetOps() {
	m.Ops = nil
}

// CursorPoint returns the final cursor position as a grid point.
func (m *MockOutput) CursorPoint() layout.Point {
	return layout.Point{X: m.CursorCol, Y: m.CursorRow}
}
