package pane

import (
	"testing"
)

func TestSegmentCells_ASCII(t *testing.T) {
	cells := SegmentCells("abc", Style{})
	if len(cells) != 3 {
		t.Fatalf("SegmentCells returned %d cells, want 3", len(cells))
	}
	for i, want := range []string{"a", "b", "c"} {
		if cells[i].Content != want {
			t.Errorf("cell %d content = %q, want %q", i, cells[i].Content, want)
		}
		if cells[i].Width != 1 {
			t.Errorf("cell %d width = %d, want 1", i, cells[i].Width)
		}
	}
}

func TestSegmentCells_WideCluster(t *testing.T) {
	cells := SegmentCells("日本", Style{})
	if len(cells) != 4 {
		t.Fatalf("SegmentCells returned %d cells, want 4 (2 wide + 2 continuations)", len(cells))
	}
	if cells[0].Width != 2 {
		t.Errorf("cell 0 width = %d, want 2", cells[0].Width)
	}
	if !cells[1].IsContinuation() {
		t.Error("cell 1 should be a continuation")
	}
	if cells[2].Width != 2 || !cells[3].IsContinuation() {
		t.Error("second cluster not followed by its continuation")
	}
}

func TestSegmentCells_JoinedEmoji(t *testing.T) {
	// Family emoji: four code points joined by ZWJ, one cluster.
	cells := SegmentCells("\U0001F468‍\U0001F469‍\U0001F467", Style{})
	if len(cells) != 2 {
		t.Fatalf("SegmentCells returned %d cells, want 2 (cluster + continuation)", len(cells))
	}
	if cells[0].Flags&FlagJoined == 0 {
		t.Error("joined cluster missing FlagJoined")
	}
	if cells[0].Width != 2 {
		t.Errorf("cluster width = %d, want 2", cells[0].Width)
	}
}

func TestSegmentCells_ControlCharCaretEscape(t *testing.T) {
	cells := SegmentCells("a\x03b", Style{})
	if len(cells) != 4 {
		t.Fatalf("SegmentCells returned %d cells, want 4", len(cells))
	}
	if cells[1].Content != "^" || cells[2].Content != "C" {
		t.Errorf("control char rendered as %q%q, want ^C", cells[1].Content, cells[2].Content)
	}
}

func TestNewCell_ControlChar(t *testing.T) {
	c := NewCell('\x1b', Style{})
	if c.Content != "^[" {
		t.Errorf("escape cell content = %q, want %q", c.Content, "^[")
	}
	if c.Width != 2 {
		t.Errorf("escape cell width = %d, want 2", c.Width)
	}
}

func TestCell_Equal_IgnoresCursorFlag(t *testing.T) {
	a := NewCell('x', Style{})
	b := a
	b.Flags |= FlagCursor

	if !a.Equal(b) {
		t.Error("cells differing only in FlagCursor should be equal")
	}

	c := a
	c.Style = NewStyle().Bold()
	if a.Equal(c) {
		t.Error("cells with different styles should not be equal")
	}
}

func TestLine_Width(t *testing.T) {
	l := Line{
		{Text: "ab", Style: Style{}},
		{Text: "日", Style: Style{}},
	}
	if w := l.Width(); w != 4 {
		t.Errorf("Line.Width() = %d, want 4", w)
	}
}
