package pane

// Attr is a bitfield of text attributes. Each transport maps the bits it
// supports onto the terminal's modes and drops the rest.
type Attr uint8

const (
	AttrNone Attr = 0

	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

// Style is the styling token attached to every cell: foreground,
// background and attribute bits. The layout tree and the diff treat it as
// an opaque comparable value; only the transports read the fields, when a
// change run is written out. The zero value is the terminal default.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the default style.
func NewStyle() Style {
	return Style{}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Attribute toggles. Rarely used bits (blink, strikethrough) have no
// builder; set them through Attrs directly.

func (s Style) Bold() Style      { s.Attrs |= AttrBold; return s }
func (s Style) Dim() Style       { s.Attrs |= AttrDim; return s }
func (s Style) Italic() Style    { s.Attrs |= AttrItalic; return s }
func (s Style) Underline() Style { s.Attrs |= AttrUnderline; return s }
func (s Style) Reverse() Style   { s.Attrs |= AttrReverse; return s }

// HasAttr reports whether every bit of a is set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
