package textutil

import (
	"strings"
	"unicode"
)

// Truncate shortens text to at most max runes, replacing the tail with an
// ellipsis when the text is longer. Values of max too small to hold the
// ellipsis return the ellipsis alone.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return "..."
	}
	return string(runes[:max-3]) + "..."
}

// CollapseWhitespace trims the input and replaces every run of whitespace
// with a single space.
func CollapseWhitespace(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	prevSpace := false
	for _, r := range strings.TrimSpace(value) {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		b.WriteRune(r)
		prevSpace = false
	}
	return b.String()
}
