package analyzer

import (
	"sort"

	"moviemood/internal/sentiment"
)

// TopSamples returns up to n reviews of the requested classification,
// most extreme polarity first: descending for positive, ascending for
// negative. Ties keep original review order. The input slice is never
// modified.
func TopSamples(reviews []ScoredReview, class sentiment.Classification, n int) []ScoredReview {
	if n <= 0 {
		return nil
	}
	matched := make([]ScoredReview, 0, len(reviews))
	for _, review := range reviews {
		if review.Class == class {
			matched = append(matched, review)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if class == sentiment.Negative {
			return matched[i].Polarity < matched[j].Polarity
		}
		return matched[i].Polarity > matched[j].Polarity
	})
	if len(matched) > n {
		matched = matched[:n]
	}
	return matched
}
