package analyzer

import "moviemood/internal/textutil"

// fallbackTitle derives a display title from the raw user query when TMDB
// returns a match without one.
func fallbackTitle(query string) string {
	title := textutil.TitleCase(query)
	if title == "" {
		return "Unknown"
	}
	return title
}
