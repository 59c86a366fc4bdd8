package pane

import (
	"errors"
	"strings"
	"testing"

	"github.com/grindlemire/go-pane/internal/layout"
)

func paintInto(t *testing.T, c Container, cols, rows int, focus ...string) (*Grid, *renderContext) {
	t.Helper()
	focusID := ""
	if len(focus) > 0 {
		focusID = focus[0]
	}
	g := NewGrid(cols, rows)
	ctx := newRenderContext(focusID, func(err error) {
		t.Logf("render error: %v", err)
	})
	c.paint(ctx, g, WritePosition{Rect: layout.NewRect(0, 0, cols, rows), ExtendedHeight: rows})
	return g, ctx
}

func gridRowText(g *Grid, y int) string {
	var b strings.Builder
	for _, c := range g.Row(y) {
		if c.IsContinuation() {
			continue
		}
		b.WriteString(c.Content)
	}
	return b.String()
}

func TestWindow_Paint_TruncatesAndPads(t *testing.T) {
	w := NewWindow(NewTextControl("this line is far too long\nshort", Style{}))
	g, _ := paintInto(t, w, 10, 3)

	if got := gridRowText(g, 0); got != "this line " {
		t.Errorf("row 0 = %q, want %q", got, "this line ")
	}
	if got := gridRowText(g, 1); got != "short     " {
		t.Errorf("row 1 = %q, want %q", got, "short     ")
	}
	if got := gridRowText(g, 2); got != "          " {
		t.Errorf("row 2 = %q, want blank padding", got)
	}
}

func TestWindow_Wrap_CursorColumn200(t *testing.T) {
	// A single 200-column line wrapped at width 80 yields rows of
	// 80, 80 and 40 columns, with a cursor at column 200 landing on the
	// third row.
	ctl := &TextControl{
		Lines:      []Line{{{Text: strings.Repeat("x", 200)}}},
		Cursor:     layout.Point{X: 200, Y: 0},
		ShowCursor: true,
	}
	w := NewWindow(ctl)
	w.ID = "input"
	w.Wrap = true

	g, _ := paintInto(t, w, 80, 10, "input")

	if got := strings.TrimRight(gridRowText(g, 0), " "); len(got) != 80 {
		t.Errorf("row 0 has %d content columns, want 80", len(got))
	}
	if got := strings.TrimRight(gridRowText(g, 1), " "); len(got) != 80 {
		t.Errorf("row 1 has %d content columns, want 80", len(got))
	}
	if got := strings.TrimRight(gridRowText(g, 2), " "); len(got) != 40 {
		t.Errorf("row 2 has %d content columns, want 40", len(got))
	}
	if !g.CursorVisible {
		t.Fatal("focused window should set the grid cursor")
	}
	if g.CursorPos.Y != 2 {
		t.Errorf("cursor on row %d, want 2", g.CursorPos.Y)
	}
	if g.CursorPos.X != 40 {
		t.Errorf("cursor at column %d, want 40", g.CursorPos.X)
	}
}

func TestWindow_Wrap_WideClusters(t *testing.T) {
	// Four double-width clusters wrapped at width 4 fill two rows of two
	// clusters each; a cursor at display column 4 starts the second row.
	ctl := &TextControl{
		Lines:      []Line{{{Text: "世世世世"}}},
		Cursor:     layout.Point{X: 4, Y: 0},
		ShowCursor: true,
	}
	w := NewWindow(ctl)
	w.ID = "cjk"
	w.Wrap = true

	g, _ := paintInto(t, w, 4, 3, "cjk")

	if got := gridRowText(g, 0); got != "世世" {
		t.Errorf("row 0 = %q, want %q", got, "世世")
	}
	if got := gridRowText(g, 1); got != "世世" {
		t.Errorf("row 1 = %q, want %q", got, "世世")
	}
	if !g.CursorVisible {
		t.Fatal("focused window should set the grid cursor")
	}
	if g.CursorPos.Y != 1 || g.CursorPos.X != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 1)", g.CursorPos.X, g.CursorPos.Y)
	}
}

func TestWindow_Scroll_MinimalAdjustment(t *testing.T) {
	lines := make([]Line, 50)
	for i := range lines {
		lines[i] = Line{{Text: "line"}}
	}
	ctl := &TextControl{Lines: lines, ShowCursor: true}
	w := NewWindow(ctl)
	w.ID = "w"

	// Cursor below the viewport scrolls down just enough.
	ctl.Cursor = layout.Point{Y: 15}
	paintInto(t, w, 10, 10, "w")
	if w.ScrollOffset() != 6 {
		t.Errorf("offset = %d after scrolling to row 15 in 10 rows, want 6", w.ScrollOffset())
	}

	// A cursor already visible must not move the offset, whatever it is.
	ctl.Cursor = layout.Point{Y: 8}
	paintInto(t, w, 10, 10, "w")
	if w.ScrollOffset() != 6 {
		t.Errorf("offset changed to %d with cursor already visible, want 6", w.ScrollOffset())
	}

	// Cursor above the viewport scrolls up to it exactly.
	ctl.Cursor = layout.Point{Y: 2}
	paintInto(t, w, 10, 10, "w")
	if w.ScrollOffset() != 2 {
		t.Errorf("offset = %d after scrolling to row 2, want 2", w.ScrollOffset())
	}
}

func TestWindow_Scroll_Margin(t *testing.T) {
	lines := make([]Line, 50)
	for i := range lines {
		lines[i] = Line{{Text: "line"}}
	}
	ctl := &TextControl{Lines: lines, ShowCursor: true, Cursor: layout.Point{Y: 20}}
	w := NewWindow(ctl)
	w.ID = "w"
	w.ScrollMargin = 2

	paintInto(t, w, 10, 10, "w")
	// Cursor must sit 2 rows above the bottom edge: offset 13 puts row
	// 20 at viewport row 7 of 0..9.
	if w.ScrollOffset() != 13 {
		t.Errorf("offset = %d, want 13 (cursor 2 rows from the edge)", w.ScrollOffset())
	}
}

func TestWindow_Hidden_ZeroDimensions(t *testing.T) {
	w := NewWindow(NewTextControl("content", Style{}))
	w.Visible = func() bool { return false }

	if d := w.preferredWidth(80); !d.IsZero() {
		t.Errorf("hidden window width = %+v, want zero", d)
	}
	if d := w.preferredHeight(80); !d.IsZero() {
		t.Errorf("hidden window height = %+v, want zero", d)
	}
}

func TestWindow_DimensionOverrides(t *testing.T) {
	w := NewWindow(NewTextControl("x", Style{}))
	w.Width = layout.Exact(30)
	w.Height = layout.Range(2, 5, 10)

	if d := w.preferredWidth(80); d != layout.Exact(30) {
		t.Errorf("width override not honored: %+v", d)
	}
	if d := w.preferredHeight(30); d.Min != 2 || d.Max != 10 {
		t.Errorf("height override not honored: %+v", d)
	}
}

func TestWindow_NumberMargin(t *testing.T) {
	w := NewWindow(NewTextControl("aa\nbb\ncc", Style{}))
	w.LeftMargins = []Margin{&NumberMargin{}}

	g, _ := paintInto(t, w, 8, 3)

	if got := gridRowText(g, 0); got != "1 aa    " {
		t.Errorf("row 0 = %q, want %q", got, "1 aa    ")
	}
	if got := gridRowText(g, 2); got != "3 cc    " {
		t.Errorf("row 2 = %q, want %q", got, "3 cc    ")
	}
}

type failingControl struct {
	TextControl
}

func (f *failingControl) Line(lineno, width int) (Line, error) {
	if lineno == 0 {
		return nil, errors.New("backing store unavailable")
	}
	if lineno == 1 {
		return Line{{Text: "ok"}}, nil
	}
	return nil, ErrEndOfContent
}

func (f *failingControl) LineCount() (int, bool) { return 2, true }

func TestWindow_ProducerError_BlanksAndContinues(t *testing.T) {
	var reported error
	w := NewWindow(&failingControl{})
	g := NewGrid(6, 2)
	ctx := newRenderContext("", func(err error) { reported = err })
	w.paint(ctx, g, WritePosition{Rect: layout.NewRect(0, 0, 6, 2), ExtendedHeight: 2})

	if reported == nil {
		t.Error("producer error was not surfaced")
	}
	if got := gridRowText(g, 0); got != "      " {
		t.Errorf("failed line painted %q, want blank", got)
	}
	if got := gridRowText(g, 1); got != "ok    " {
		t.Errorf("row after failure = %q, want %q", got, "ok    ")
	}
}

// Laziness: a window over a control with a known line count must only ask
// for the lines inside the resolved viewport.
type countingControl struct {
	TextControl
	fetched map[int]bool
}

func (c *countingControl) Line(lineno, width int) (Line, error) {
	if c.fetched == nil {
		c.fetched = make(map[int]bool)
	}
	c.fetched[lineno] = true
	return c.TextControl.Line(lineno, width)
}

func TestWindow_LazyLineFetch(t *testing.T) {
	lines := make([]Line, 1000)
	for i := range lines {
		lines[i] = Line{{Text: "row"}}
	}
	ctl := &countingControl{TextControl: TextControl{Lines: lines}}
	w := NewWindow(ctl)
	w.scrollOffset = 500

	paintInto(t, w, 10, 5, "")

	for lineno := range ctl.fetched {
		if lineno < 500 || lineno >= 505 {
			t.Errorf("line %d fetched outside viewport [500, 505)", lineno)
		}
	}
	if len(ctl.fetched) == 0 {
		t.Error("no lines fetched at all")
	}
}
