package pane

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-pane/internal/layout"
)

func TestTextControl_Lines(t *testing.T) {
	ctl := NewTextControl("one\ntwo\n", Style{})

	if n, ok := ctl.LineCount(); !ok || n != 3 {
		t.Errorf("LineCount() = %d, %t, want 3, true", n, ok)
	}

	line, err := ctl.Line(1, 80)
	if err != nil {
		t.Fatalf("Line(1): %v", err)
	}
	if line[0].Text != "two" {
		t.Errorf("Line(1) = %q, want %q", line[0].Text, "two")
	}

	if _, err := ctl.Line(3, 80); !errors.Is(err, ErrEndOfContent) {
		t.Errorf("Line past end returned %v, want ErrEndOfContent", err)
	}
}

func TestTextControl_PreferredDimensions(t *testing.T) {
	ctl := NewTextControl("short\na longer line here\nmid", Style{})

	if d := ctl.PreferredWidth(80); d.Preferred != 18 {
		t.Errorf("PreferredWidth = %d, want 18", d.Preferred)
	}
	if d := ctl.PreferredWidth(10); d.Preferred != 10 {
		t.Errorf("PreferredWidth capped = %d, want 10", d.Preferred)
	}
	if d := ctl.PreferredHeight(80); d.Preferred != 3 {
		t.Errorf("PreferredHeight = %d, want 3", d.Preferred)
	}
}

func TestTextControl_Cursor(t *testing.T) {
	ctl := NewTextControl("x", Style{})
	if _, ok := ctl.CursorPosition(); ok {
		t.Error("control without ShowCursor reported a cursor")
	}
	if ctl.Focusable() {
		t.Error("control without ShowCursor should not be focusable")
	}

	ctl.ShowCursor = true
	ctl.Cursor = layout.Point{X: 1}
	if p, ok := ctl.CursorPosition(); !ok || p.X != 1 {
		t.Errorf("CursorPosition() = %+v, %t", p, ok)
	}
}

func TestFillControl_Line(t *testing.T) {
	f := &FillControl{Char: '-'}

	line, err := f.Line(123456, 5)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if line[0].Text != "-----" {
		t.Errorf("fill line = %q, want -----", line[0].Text)
	}

	if _, ok := f.LineCount(); ok {
		t.Error("fill content must report an unknown line count")
	}
}
