package tui

import (
	"unicode/utf8"
)

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 10
)

// Layout breakpoints for adaptive rendering.
const (
	// CompactWidth triggers compact mode for the footer and chart.
	CompactWidth = 60
	// ChipMaxName is the longest name a chip shows before truncating.
	ChipMaxName = 24
	// ChartMaxWidth caps the longest bar regardless of terminal width.
	ChartMaxWidth = 48
)

// TruncateWithEllipsis truncates s to maxLen runes, appending "..." if truncated.
// If maxLen is less than 4, returns s truncated to maxLen runes without ellipsis.
// Returns s unchanged if it fits within maxLen runes.
func TruncateWithEllipsis(s string, maxLen int) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount <= maxLen {
		return s
	}
	if maxLen < 4 {
		if maxLen <= 0 {
			return ""
		}
		return truncateToNRunes(s, maxLen)
	}
	return truncateToNRunes(s, maxLen-3) + "..."
}

// truncateToNRunes returns the first n runes of s as a string.
func truncateToNRunes(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// chartWidth sizes the chart's longest bar for a panel of the given inner
// width, leaving room for the label column and the printed value.
func chartWidth(inner int) int {
	w := inner - 26
	if w > ChartMaxWidth {
		w = ChartMaxWidth
	}
	if w < 8 {
		w = 8
	}
	return w
}
