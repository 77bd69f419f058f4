package roster

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize title-cases a character name: every whitespace-delimited token
// gets an upper-case first rune and lower-case remainder, and tokens are
// re-joined with single spaces. Normalize is idempotent.
func Normalize(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		fields[i] = titleToken(f)
	}
	return strings.Join(fields, " ")
}

func titleToken(tok string) string {
	r, size := utf8.DecodeRuneInString(tok)
	var b strings.Builder
	b.Grow(len(tok))
	b.WriteRune(unicode.ToUpper(r))
	for _, rest := range tok[size:] {
		b.WriteRune(unicode.ToLower(rest))
	}
	return b.String()
}
