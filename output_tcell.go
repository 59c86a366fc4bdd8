package pane

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellOutput drives a tcell.Screen, mapping the renderer's stream of
// primitive operations onto tcell's cell-based API. tcell owns the
// terminal setup and teardown; callers Init and Fini the screen.
type TcellOutput struct {
	screen tcell.Screen

	row, col int
	style    tcell.Style
	shown    bool
}

// NewTcellOutput wraps an initialized screen.
func NewTcellOutput(screen tcell.Screen) *TcellOutput {
	return &TcellOutput{screen: screen, style: tcell.StyleDefault}
}

// NewTcellScreenOutput allocates, initializes and wraps a new screen.
func NewTcellScreenOutput() (*TcellOutput, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("pane: create tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("pane: init tcell screen: %w", err)
	}
	return NewTcellOutput(screen), nil
}

// Screen exposes the underlying screen for event polling and teardown.
func (t *TcellOutput) Screen() tcell.Screen {
	return t.screen
}

func (t *TcellOutput) Size() (int, int, error) {
	w, h := t.screen.Size()
	return w, h, nil
}

func (t *TcellOutput) MoveCursor(row, col int) {
	t.row, t.col = row, col
}

func (t *TcellOutput) SetStyle(s Style) {
	st := tcell.StyleDefault.
		Foreground(tcellColor(s.Fg)).
		Background(tcellColor(s.Bg)).
		Bold(s.HasAttr(AttrBold)).
		Dim(s.HasAttr(AttrDim)).
		Italic(s.HasAttr(AttrItalic)).
		Underline(s.HasAttr(AttrUnderline)).
		Blink(s.HasAttr(AttrBlink)).
		Reverse(s.HasAttr(AttrReverse)).
		StrikeThrough(s.HasAttr(AttrStrikethrough))
	t.style = st
}

func tcellColor(c Color) tcell.Color {
	switch c.Type() {
	case ColorANSI:
		return tcell.PaletteColor(int(c.Index()))
	case ColorRGB:
		r, g, b := c.RGBA()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}

func (t *TcellOutput) WriteText(text string) {
	for _, c := range SegmentCells(text, Style{}) {
		if c.IsContinuation() {
			// The preceding wide cluster already advanced past it.
			continue
		}
		runes := []rune(c.Content)
		if len(runes) == 0 {
			continue
		}
		t.screen.SetContent(t.col, t.row, runes[0], runes[1:], t.style)
		t.col += max(int(c.Width), 1)
	}
}

func (t *TcellOutput) ClearToEndOfLine() {
	w, _ := t.screen.Size()
	for x := t.col; x < w; x++ {
		t.screen.SetContent(x, t.row, ' ', nil, tcell.StyleDefault)
	}
}

func (t *TcellOutput) ShowCursor(visible bool) {
	t.shown = visible
	if visible {
		t.screen.ShowCursor(t.col, t.row)
	} else {
		t.screen.HideCursor()
	}
}

func (t *TcellOutput) SetCursorShape(shape CursorShape) {
	switch shape {
	case CursorUnderline:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyUnderline)
	case CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	default:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

func (t *TcellOutput) Flush() error {
	t.screen.Show()
	return nil
}
