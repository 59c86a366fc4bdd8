package pane

// ColorType identifies how a Color value should be interpreted.
type ColorType uint8

const (
	// ColorDefault uses the terminal's default foreground/background.
	ColorDefault ColorType = iota
	// ColorANSI is an index into the 256-color palette (0-15 are the
	// classic ANSI colors).
	ColorANSI
	// ColorRGB is a 24-bit color.
	ColorRGB
)

// Color represents a terminal color. The zero value is the terminal
// default. Colors are plain comparable values; output transports decide
// how to degrade them for limited terminals.
type Color struct {
	typ     ColorType
	index   uint8
	r, g, b uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{}
}

// ANSI returns a palette color (0-255). Indexes 0-15 map to the classic
// ANSI colors.
func ANSI(index uint8) Color {
	return Color{typ: ColorANSI, index: index}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// Type returns how this color should be interpreted.
func (c Color) Type() ColorType {
	return c.typ
}

// Index returns the palette index for ColorANSI colors.
func (c Color) Index() uint8 {
	return c.index
}

// RGBA returns the color channels for ColorRGB colors.
func (c Color) RGBA() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// IsDefault returns true for the terminal default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}
