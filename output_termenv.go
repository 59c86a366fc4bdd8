package pane

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// TermenvOutput emits ANSI escape sequences through termenv, buffered and
// pushed to the terminal on Flush. Color values degrade to the detected
// terminal profile.
type TermenvOutput struct {
	buf     *bufio.Writer
	out     *termenv.Output
	profile termenv.Profile
	fd      int
}

// TermenvOption configures a TermenvOutput.
type TermenvOption func(*TermenvOutput)

// WithProfile overrides the detected color profile.
func WithProfile(p termenv.Profile) TermenvOption {
	return func(t *TermenvOutput) {
		t.profile = p
	}
}

// NewTermenvOutput creates the ANSI transport on top of f, normally
// os.Stdout.
func NewTermenvOutput(f *os.File, opts ...TermenvOption) *TermenvOutput {
	buf := bufio.NewWriterSize(f, 32*1024)
	t := &TermenvOutput{
		buf:     buf,
		profile: termenv.EnvColorProfile(),
		fd:      int(f.Fd()),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.out = termenv.NewOutput(buf, termenv.WithProfile(t.profile))
	return t
}

// NewTermenvOutputWriter creates the transport on an arbitrary writer with
// a fixed size, for tests and non-tty sinks.
func NewTermenvOutputWriter(w io.Writer, profile termenv.Profile) *TermenvOutput {
	buf := bufio.NewWriterSize(w, 32*1024)
	return &TermenvOutput{
		buf:     buf,
		out:     termenv.NewOutput(buf, termenv.WithProfile(profile)),
		profile: profile,
		fd:      -1,
	}
}

func (t *TermenvOutput) Size() (int, int, error) {
	if t.fd < 0 {
		return 0, 0, fmt.Errorf("pane: output is not a terminal")
	}
	cols, rows, err := term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("pane: query terminal size: %w", err)
	}
	return cols, rows, nil
}

func (t *TermenvOutput) MoveCursor(row, col int) {
	t.out.MoveCursor(row+1, col+1)
}

func (t *TermenvOutput) SetStyle(s Style) {
	params := []string{termenv.ResetSeq}
	if s.HasAttr(AttrBold) {
		params = append(params, termenv.BoldSeq)
	}
	if s.HasAttr(AttrDim) {
		params = append(params, termenv.FaintSeq)
	}
	if s.HasAttr(AttrItalic) {
		params = append(params, termenv.ItalicSeq)
	}
	if s.HasAttr(AttrUnderline) {
		params = append(params, termenv.UnderlineSeq)
	}
	if s.HasAttr(AttrBlink) {
		params = append(params, termenv.BlinkSeq)
	}
	if s.HasAttr(AttrReverse) {
		params = append(params, termenv.ReverseSeq)
	}
	if s.HasAttr(AttrStrikethrough) {
		params = append(params, termenv.CrossOutSeq)
	}
	if fg := t.convert(s.Fg); fg != nil {
		params = append(params, fg.Sequence(false))
	}
	if bg := t.convert(s.Bg); bg != nil {
		params = append(params, bg.Sequence(true))
	}
	fmt.Fprintf(t.buf, "%s%sm", termenv.CSI, strings.Join(params, ";"))
}

// convert degrades a Color to what the terminal profile supports; default
// colors convert to nil (no sequence).
func (t *TermenvOutput) convert(c Color) termenv.Color {
	switch c.Type() {
	case ColorANSI:
		return t.profile.Convert(termenv.ANSI256Color(c.Index()))
	case ColorRGB:
		r, g, b := c.RGBA()
		return t.profile.Convert(termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
	default:
		return nil
	}
}

func (t *TermenvOutput) WriteText(text string) {
	io.WriteString(t.buf, text)
}

func (t *TermenvOutput) ClearToEndOfLine() {
	t.out.ClearLineRight()
}

func (t *TermenvOutput) ShowCursor(visible bool) {
	if visible {
		t.out.ShowCursor()
	} else {
		t.out.HideCursor()
	}
}

// SetCursorShape emits DECSCUSR; steady variants keep redraws from
// restarting the blink cycle.
func (t *TermenvOutput) SetCursorShape(shape CursorShape) {
	n := 2 // steady block
	switch shape {
	case CursorUnderline:
		n = 4
	case CursorBar:
		n = 6
	}
	fmt.Fprintf(t.buf, "%s%d q", termenv.CSI, n)
}

func (t *TermenvOutput) Flush() error {
	if err := t.buf.Flush(); err != nil {
		return fmt.Errorf("pane: flush terminal output: %w", err)
	}
	return nil
}

// EnterAltScreen switches to the alternate screen, clears it and hides the
// cursor until the first render pass decides its visibility.
func (t *TermenvOutput) EnterAltScreen() error {
	t.out.AltScreen()
	t.out.ClearScreen()
	t.out.HideCursor()
	return t.Flush()
}

// ExitAltScreen restores the primary screen, default style and cursor.
func (t *TermenvOutput) ExitAltScreen() error {
	t.out.Reset()
	t.out.ShowCursor()
	t.out.ExitAltScreen()
	return t.Flush()
}
