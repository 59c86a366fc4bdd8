package layout

// Point represents an (X, Y) coordinate. Y is the row, X the column.
type Point struct {
	X, Y int
}
