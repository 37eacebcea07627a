package match

import (
	"strings"
	"unicode"
)

// NormalizeHeader folds a header for loose comparison: lower case,
// separators (_, -, space) removed. Structural characters are kept.
func NormalizeHeader(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
