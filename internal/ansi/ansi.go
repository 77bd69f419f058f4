// Package ansi provides ANSI escape code constants for plain terminal output.
// Colored printing outside the TUI should reference these constants to avoid
// duplication.
package ansi

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Yellow = "\033[33m"
	Red    = "\033[31m"
	Cyan   = "\033[36m"
)

// Wrap surrounds s with code and a trailing Reset. An empty code returns s
// unchanged.
func Wrap(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + Reset
}
