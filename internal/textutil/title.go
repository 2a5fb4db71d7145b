package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase converts a free-form string into title case for display.
// Runs of whitespace are collapsed first so user queries render cleanly.
// A fresh caser is built per call because cases.Caser is stateful.
func TitleCase(value string) string {
	cleaned := CollapseWhitespace(value)
	if cleaned == "" {
		return ""
	}
	return cases.Title(language.Und).String(cleaned)
}
