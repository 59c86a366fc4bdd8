package pane

import "github.com/grindlemire/go-pane/internal/layout"

// Re-exports so callers build trees without importing internal/layout.

type (
	Dimension = layout.Dimension
	Rect      = layout.Rect
	Point     = layout.Point
)

var (
	Flex    = layout.Flex
	Exact   = layout.Exact
	Zero    = layout.Zero
	Range   = layout.Range
	NewRect = layout.NewRect
)
