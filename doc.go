// Package pane provides the layout and rendering core for text-mode
// terminal interfaces.
//
// A tree of containers (Window, HSplit, VSplit, FloatContainer,
// ScrollablePane) negotiates space and paints styled cells into a Grid;
// the Renderer diffs successive grids and emits a minimal stream of update
// operations to an Output transport. Input handling, text buffers, and the
// event loop are external collaborators: the core is driven synchronously
// through Renderer.Redraw, Resize, and SetFocus.
package pane
