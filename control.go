package pane

import (
	"errors"

	"github.com/grindlemire/go-pane/internal/layout"
)

// ErrEndOfContent is returned by Control.Line when lineno is at or past
// the end of the content. Windows use it to paginate controls whose line
// count is unknown up front.
var ErrEndOfContent = errors.New("pane: end of content")

// Segment is a span of text rendered with one style.
type Segment struct {
	Text  string
	Style Style
}

// Line is the styled content of one logical line.
type Line []Segment

// Width returns the number of terminal columns the line occupies.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += DisplayWidth(s.Text)
	}
	return w
}

// Cells flattens the line into grid cells.
func (l Line) Cells() []Cell {
	var cells []Cell
	for _, s := range l {
		cells = append(cells, SegmentCells(s.Text, s.Style)...)
	}
	return cells
}

// Control produces the content a Window displays. Controls are owned by
// the caller and may be shared between Windows; the tree holds non-owning
// references.
//
// Line is called lazily, only for the logical lines inside the resolved
// viewport (plus the rows needed to place the cursor when wrapping).
// Implementations whose line count is expensive or unknown may return
// ok=false from LineCount and rely on Line returning ErrEndOfContent.
type Control interface {
	// PreferredWidth reports how wide the control would like to be,
	// given at most maxWidth columns.
	PreferredWidth(maxWidth int) layout.Dimension

	// PreferredHeight reports how tall the control would like to be
	// when rendered at the given width.
	PreferredHeight(width int) layout.Dimension

	// Line returns logical line lineno rendered for the given width.
	// ErrEndOfContent signals lineno is past the last line; any other
	// error blanks the line and is surfaced to the render error
	// callback.
	Line(lineno, width int) (Line, error)

	// LineCount returns the number of logical lines, ok=false when the
	// count is unknown until the content is paginated.
	LineCount() (int, bool)

	// CursorPosition returns the cursor in content coordinates
	// (X column, Y logical line), ok=false when the control has no
	// cursor.
	CursorPosition() (layout.Point, bool)

	// Focusable reports whether the control accepts focus.
	Focusable() bool
}

// TextControl is a static Control over pre-styled lines, with an optional
// cursor position. The zero value is an empty, unfocusable control.
type TextControl struct {
	Lines  []Line
	Cursor layout.Point
	// ShowCursor makes the control focusable and report Cursor.
	ShowCursor bool
}

// NewTextControl builds a TextControl from plain text, one Line per
// newline-separated row, all in the given style.
func NewTextControl(text string, style Style) *TextControl {
	var lines []Line
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			lines = append(lines, Line{{Text: text[start:i], Style: style}})
			start = i + 1
		}
	}
	return &TextControl{Lines: lines}
}

func (t *TextControl) PreferredWidth(maxWidth int) layout.Dimension {
	widest := 0
	for _, l := range t.Lines {
		if w := l.Width(); w > widest {
			widest = w
		}
	}
	if widest > maxWidth {
		widest = maxWidth
	}
	return layout.Dimension{Preferred: widest, Max: layout.MaxSize, Weight: 1}
}

func (t *TextControl) PreferredHeight(width int) layout.Dimension {
	return layout.Dimension{Preferred: len(t.Lines), Max: layout.MaxSize, Weight: 1}
}

func (t *TextControl) Line(lineno, width int) (Line, error) {
	if lineno < 0 || lineno >= len(t.Lines) {
		return nil, ErrEndOfContent
	}
	return t.Lines[lineno], nil
}

func (t *TextControl) LineCount() (int, bool) {
	return len(t.Lines), true
}

func (t *TextControl) CursorPosition() (layout.Point, bool) {
	if !t.ShowCursor {
		return layout.Point{}, false
	}
	return t.Cursor, true
}

func (t *TextControl) Focusable() bool {
	return t.ShowCursor
}

// FillControl paints an unbounded field of one character, used for
// spacers, separators, and backgrounds.
type FillControl struct {
	Char  rune
	Style Style
}

func (f *FillControl) PreferredWidth(maxWidth int) layout.Dimension {
	return layout.Flex()
}

func (f *FillControl) PreferredHeight(width int) layout.Dimension {
	return layout.Flex()
}

func (f *FillControl) Line(lineno, width int) (Line, error) {
	if lineno < 0 || width <= 0 {
		return nil, ErrEndOfContent
	}
	ch := f.Char
	if ch == 0 {
		ch = ' '
	}
	cell := NewCell(ch, f.Style)
	cols := width / max(int(cell.Width), 1)
	buf := make([]byte, 0, cols*len(cell.Content))
	for i := 0; i < cols; i++ {
		buf = append(buf, cell.Content...)
	}
	return Line{{Text: string(buf), Style: f.Style}}, nil
}

func (f *FillControl) LineCount() (int, bool) {
	return 0, false
}

func (f *FillControl) CursorPosition() (layout.Point, bool) {
	return layout.Point{}, false
}

func (f *FillControl) Focusable() bool {
	return false
}
