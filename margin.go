package pane

import "strconv"

// MarginInput is the window scroll state a margin renders from.
type MarginInput struct {
	ScrollOffset  int
	TotalRows     int
	VisibleHeight int
}

// Margin is a fixed-width decoration painted beside a window's content,
// between the write position edge and the content columns.
type Margin interface {
	// Width returns the number of columns the margin consumes.
	Width(in MarginInput) int

	// Line returns the margin content for viewport row row (0-based
	// from the top of the visible area).
	Line(row int, in MarginInput) Line
}

// NumberMargin shows 1-based row numbers, right-aligned.
type NumberMargin struct {
	Style Style
	// MinDigits pads the gutter to at least this many digits so the
	// width does not jump when crossing a power of ten.
	MinDigits int
}

func (m *NumberMargin) Width(in MarginInput) int {
	digits := len(strconv.Itoa(max(in.TotalRows, 1)))
	if digits < m.MinDigits {
		digits = m.MinDigits
	}
	return digits + 1 // trailing space before the content
}

func (m *NumberMargin) Line(row int, in MarginInput) Line {
	n := in.ScrollOffset + row
	if n >= in.TotalRows {
		return nil
	}
	w := m.Width(in)
	s := strconv.Itoa(n + 1)
	for len(s) < w-1 {
		s = " " + s
	}
	return Line{{Text: s + " ", Style: m.Style}}
}

// ScrollbarMargin shows a one-column scrollbar with a proportional thumb.
type ScrollbarMargin struct {
	Style      Style
	ThumbStyle Style
}

func (m *ScrollbarMargin) Width(in MarginInput) int { return 1 }

func (m *ScrollbarMargin) Line(row int, in MarginInput) Line {
	start, length := scrollThumb(in)
	if row >= start && row < start+length {
		return Line{{Text: "█", Style: m.ThumbStyle}}
	}
	return Line{{Text: "░", Style: m.Style}}
}

// scrollThumb computes the thumb's first row and length within the visible
// height, proportional to the viewport's share of the content.
func scrollThumb(in MarginInput) (start, length int) {
	if in.TotalRows <= in.VisibleHeight || in.TotalRows == 0 || in.VisibleHeight == 0 {
		return 0, in.VisibleHeight
	}
	length = in.VisibleHeight * in.VisibleHeight / in.TotalRows
	if length < 1 {
		length = 1
	}
	maxStart := in.VisibleHeight - length
	maxOffset := in.TotalRows - in.VisibleHeight
	start = in.ScrollOffset * maxStart / maxOffset
	if start > maxStart {
		start = maxStart
	}
	return start, length
}
