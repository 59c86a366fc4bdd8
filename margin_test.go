package pane

import "testing"

func TestNumberMargin_Width(t *testing.T) {
	m := &NumberMargin{}

	cases := []struct {
		total int
		want  int
	}{
		{5, 2},
		{99, 3},
		{100, 4},
		{0, 2},
	}
	for _, tc := range cases {
		if got := m.Width(MarginInput{TotalRows: tc.total}); got != tc.want {
			t.Errorf("Width(total=%d) = %d, want %d", tc.total, got, tc.want)
		}
	}

	padded := &NumberMargin{MinDigits: 4}
	if got := padded.Width(MarginInput{TotalRows: 5}); got != 5 {
		t.Errorf("Width with MinDigits=4 = %d, want 5", got)
	}
}

func TestNumberMargin_Line(t *testing.T) {
	m := &NumberMargin{}
	in := MarginInput{ScrollOffset: 10, TotalRows: 200, VisibleHeight: 5}

	// Viewport row 0 shows line 11 (1-based).
	line := m.Line(0, in)
	if len(line) != 1 || line[0].Text != " 11 " {
		t.Errorf("Line(0) = %+v, want %q", line, " 11 ")
	}

	// Rows past the content show nothing.
	if got := m.Line(0, MarginInput{ScrollOffset: 5, TotalRows: 5}); got != nil {
		t.Errorf("Line past content = %+v, want nil", got)
	}
}

func TestScrollbarMargin_Thumb(t *testing.T) {
	// 100 rows in a 10-row viewport: thumb of 1 cell, proportional.
	top := MarginInput{ScrollOffset: 0, TotalRows: 100, VisibleHeight: 10}
	start, length := scrollThumb(top)
	if start != 0 || length != 1 {
		t.Errorf("thumb at top = (%d, %d), want (0, 1)", start, length)
	}

	bottom := MarginInput{ScrollOffset: 90, TotalRows: 100, VisibleHeight: 10}
	start, _ = scrollThumb(bottom)
	if start != 9 {
		t.Errorf("thumb at bottom starts at %d, want 9", start)
	}

	// Content that fits entirely has a full-height thumb.
	fits := MarginInput{TotalRows: 5, VisibleHeight: 10}
	start, length = scrollThumb(fits)
	if start != 0 || length != 10 {
		t.Errorf("thumb for fitting content = (%d, %d), want (0, 10)", start, length)
	}
}
