package pane

import (
	"strings"
	"testing"

	"github.com/grindlemire/go-pane/internal/layout"
)

func menuWindow(lines ...string) *Window {
	w := NewWindow(NewTextControl(strings.Join(lines, "\n"), NewStyle().Reverse()))
	w.Style = NewStyle().Reverse()
	return w
}

func TestFloatContainer_FixedOffsets(t *testing.T) {
	fc := &FloatContainer{
		Base: flexWindow("", 1),
		Floats: []Float{{
			Content: menuWindow("menu"),
			Left:    Cells(2),
			Top:     Cells(1),
			Width:   Cells(4),
			Height:  Cells(1),
		}},
	}

	g, _ := paintInto(t, fc, 20, 5)

	if got := gridRowText(g, 1)[2:6]; got != "menu" {
		t.Errorf("float content at row 1 = %q, want %q", got, "menu")
	}
	// The float must occlude the base: its z is above z 0.
	if g.Get(2, 1).Style != NewStyle().Reverse() {
		t.Error("float cell did not occlude the base")
	}
}

func TestFloatContainer_ClipsToBase(t *testing.T) {
	fc := &FloatContainer{
		Base: flexWindow("", 1),
		Floats: []Float{{
			Content: menuWindow("wide float content"),
			Left:    Cells(15),
			Top:     Cells(3),
			Width:   Cells(30),
			Height:  Cells(10),
		}},
	}

	g, _ := paintInto(t, fc, 20, 5)

	// Painting happened and nothing panicked; the grid is only 20x5, so
	// containment is structural. Check the float was pulled inside: its
	// natural right edge (15+30) exceeds the base, so it slides left to
	// fit what it can and clips.
	if g.Width() != 20 || g.Height() != 5 {
		t.Fatalf("grid resized to %dx%d", g.Width(), g.Height())
	}
	found := false
	for y := 0; y < 5; y++ {
		if strings.Contains(gridRowText(g, y), "wide") {
			found = true
		}
	}
	if !found {
		t.Error("clipped float painted nothing inside the base")
	}
}

func TestFloatContainer_CursorAnchor_Below(t *testing.T) {
	ctl := &TextControl{
		Lines:      []Line{{{Text: "prompt> "}}},
		Cursor:     layout.Point{X: 8, Y: 0},
		ShowCursor: true,
	}
	input := NewWindow(ctl)
	input.ID = "input"

	fc := &FloatContainer{
		Base: input,
		Floats: []Float{{
			Content:      menuWindow("first", "second"),
			CursorAnchor: "input",
			Width:        Cells(6),
			Height:       Cells(2),
		}},
	}

	g, _ := paintInto(t, fc, 40, 10, "input")

	// Cursor is at (8, 0); the float hangs one row below, left-aligned
	// to the cursor column.
	if got := gridRowText(g, 1)[8:14]; got != "first " {
		t.Errorf("float row 1 = %q, want %q", got, "first ")
	}
	if got := gridRowText(g, 2)[8:14]; got != "second" {
		t.Errorf("float row 2 = %q, want %q", got, "second")
	}
}

func TestFloatContainer_CursorAnchor_FlipsAbove(t *testing.T) {
	// Put the cursor on the last row: no room below, so the float must
	// open upward instead of being clipped away.
	lines := make([]Line, 10)
	for i := range lines {
		lines[i] = Line{{Text: "line"}}
	}
	ctl := &TextControl{Lines: lines, Cursor: layout.Point{X: 0, Y: 9}, ShowCursor: true}
	input := NewWindow(ctl)
	input.ID = "input"

	fc := &FloatContainer{
		Base: input,
		Floats: []Float{{
			Content:      menuWindow("aa", "bb"),
			CursorAnchor: "input",
			Width:        Cells(2),
			Height:       Cells(2),
		}},
	}

	g, _ := paintInto(t, fc, 20, 10, "input")

	// Flipped: float occupies rows 7 and 8, directly above the cursor.
	if got := gridRowText(g, 7)[:2]; got != "aa" {
		t.Errorf("row 7 = %q, want %q (float should flip above)", got, "aa")
	}
	if got := gridRowText(g, 8)[:2]; got != "bb" {
		t.Errorf("row 8 = %q, want %q", got, "bb")
	}
	if strings.HasPrefix(gridRowText(g, 9), "aa") {
		t.Error("float painted over the cursor row instead of flipping")
	}
}

func TestFloatContainer_MissingAnchorSkipsFloat(t *testing.T) {
	fc := &FloatContainer{
		Base: flexWindow("base", 1),
		Floats: []Float{{
			Content:      menuWindow("menu"),
			CursorAnchor: "nonexistent",
			Width:        Cells(4),
			Height:       Cells(1),
		}},
	}

	g, _ := paintInto(t, fc, 20, 5)

	for y := 0; y < 5; y++ {
		if strings.Contains(gridRowText(g, y), "menu") {
			t.Fatal("float with unresolved anchor must not paint")
		}
	}
}

func TestFloatContainer_LaterFloatsOccludeEarlier(t *testing.T) {
	a := menuWindow("aaaa")
	b := NewWindow(NewTextControl("bbbb", Style{}))
	fc := &FloatContainer{
		Base: flexWindow("", 1),
		Floats: []Float{
			{Content: a, Left: Cells(0), Top: Cells(0), Width: Cells(4), Height: Cells(1), Z: 1},
			{Content: b, Left: Cells(0), Top: Cells(0), Width: Cells(4), Height: Cells(1), Z: 2},
		},
	}

	g, _ := paintInto(t, fc, 10, 3)

	if got := gridRowText(g, 0)[:4]; got != "bbbb" {
		t.Errorf("top cells = %q, want %q (higher z paints later)", got, "bbbb")
	}
}
