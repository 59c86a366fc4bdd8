package pane

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CellFlags carries per-cell markers that are not part of the displayed
// content.
type CellFlags uint8

const (
	// FlagJoined marks a cell whose grapheme cluster contains a
	// zero-width joiner (multi-rune emoji sequences and the like).
	FlagJoined CellFlags = 1 << iota
	// FlagCursor marks the cell under the reported cursor. It is
	// excluded from diff equality so that cursor movement alone never
	// repaints cells.
	FlagCursor
)

// Cell represents a single character cell in a Grid.
//
// Content holds one grapheme cluster (possibly several runes for joined
// sequences). Wide clusters occupy two cells: the first holds the content,
// the second is a continuation with Width 0 and empty content.
type Cell struct {
	Content string
	Style   Style
	Width   uint8
	Flags   CellFlags
}

// displayMapping rewrites control characters that may leak into content
// (e.g. after a quoted insert) into their caret notation.
var displayMapping = map[rune]string{
	0x00: "^@", 0x01: "^A", 0x02: "^B", 0x03: "^C", 0x04: "^D",
	0x05: "^E", 0x06: "^F", 0x07: "^G", 0x08: "^H", 0x09: "^I",
	0x0a: "^J", 0x0b: "^K", 0x0c: "^L", 0x0d: "^M", 0x0e: "^N",
	0x0f: "^O", 0x10: "^P", 0x11: "^Q", 0x12: "^R", 0x13: "^S",
	0x14: "^T", 0x15: "^U", 0x16: "^V", 0x17: "^W", 0x18: "^X",
	0x19: "^Y", 0x1a: "^Z", 0x1b: "^[", 0x1c: "^\\", 0x1d: "^]",
	0x1f: "^_", 0x7f: "^?",
}

// NewCell creates a Cell for a single rune with automatic width detection.
func NewCell(r rune, style Style) Cell {
	if mapped, ok := displayMapping[r]; ok {
		return Cell{Content: mapped, Style: style, Width: uint8(len(mapped))}
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return Cell{Content: string(r), Style: style, Width: uint8(w)}
}

// BlankCell returns the cell used for padding and cleared regions.
func BlankCell(style Style) Cell {
	return Cell{Content: " ", Style: style, Width: 1}
}

// ContinuationCell returns the trailing cell of a double-width cluster.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// IsContinuation returns true if this cell is the second column of a
// double-width cluster.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells paint identically. The FlagCursor bit
// is ignored; continuation/joined markers are not.
func (c Cell) Equal(other Cell) bool {
	const mask = ^FlagCursor
	return c.Content == other.Content &&
		c.Style == other.Style &&
		c.Width == other.Width &&
		c.Flags&mask == other.Flags&mask
}

// SegmentCells splits s into cells, one per grapheme cluster, appending a
// continuation cell after each double-width cluster. Control characters
// are rewritten to caret notation and occupy one cell per caret column.
func SegmentCells(s string, style Style) []Cell {
	cells := make([]Cell, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)

		runes := []rune(cluster)
		if len(runes) == 1 {
			if mapped, ok := displayMapping[runes[0]]; ok {
				for _, cr := range mapped {
					cells = append(cells, Cell{Content: string(cr), Style: style, Width: 1})
				}
				continue
			}
		}

		if width < 1 {
			// Zero-width clusters (stray combining marks) cannot
			// occupy a cell of their own; show a space instead.
			cells = append(cells, BlankCell(style))
			continue
		}
		if width > 2 {
			width = 2
		}

		cell := Cell{Content: cluster, Style: style, Width: uint8(width)}
		if containsZWJ(runes) {
			cell.Flags |= FlagJoined
		}
		cells = append(cells, cell)
		if width == 2 {
			cells = append(cells, ContinuationCell(style))
		}
	}
	return cells
}

func containsZWJ(runes []rune) bool {
	for _, r := range runes {
		if r == '\u200d' {
			return true
		}
	}
	return false
}

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}
