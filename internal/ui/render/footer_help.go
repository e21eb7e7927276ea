package render

import "strings"

// buildFooterHelpText returns the key hint string with leading/trailing padding.
func buildFooterHelpText(dual bool) string {
	parts := buildFooterHelpSegments(dual)
	return " " + strings.Join(parts, "  ") + " "
}

func buildFooterHelpSegments(dual bool) []string {
	pane := "Tab: split"
	if dual {
		pane = "Tab: other pane"
	}
	return []string{
		"↑↓/jk: move",
		"↵/l: open",
		"←/h: parent",
		pane,
		"s: sort",
		"y: yank",
		"q: quit",
	}
}
