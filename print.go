package pane

// PrintLines writes styled lines straight to a transport, outside any
// renderer. Useful for emitting styled text before the application starts
// or after it exits, with the same Style values the tree uses.
func PrintLines(out Output, lines ...Line) error {
	for _, line := range lines {
		for _, seg := range line {
			out.SetStyle(seg.Style)
			out.WriteText(seg.Text)
		}
		out.SetStyle(Style{})
		out.WriteText("\r\n")
	}
	return out.Flush()
}
