package analyzer

import (
	"math"

	"moviemood/internal/sentiment"
)

// Fixed verdict thresholds. These are a decision table, not a model.
const (
	goodRatingFloor   = 7.0
	goodPositiveFloor = 60.0
	badRatingCeiling  = 5.0
	badNegativeFloor  = 50.0
)

// Summarize computes the classification breakdown for a scored review
// set. An empty set yields a zero Breakdown.
func Summarize(reviews []ScoredReview) Breakdown {
	b := Breakdown{Total: len(reviews)}
	if b.Total == 0 {
		return b
	}
	var sum float64
	for _, review := range reviews {
		sum += review.Polarity
		switch review.Class {
		case sentiment.Positive:
			b.Positive++
		case sentiment.Negative:
			b.Negative++
		default:
			b.Neutral++
		}
	}
	total := float64(b.Total)
	b.PositivePercent = round1(float64(b.Positive) / total * 100)
	b.NegativePercent = round1(float64(b.Negative) / total * 100)
	b.NeutralPercent = round1(float64(b.Neutral) / total * 100)
	b.MeanPolarity = round2(sum / total)
	return b
}

// DecideVerdict applies the verdict decision table; first match wins.
// The reason string is suitable for direct display.
func DecideVerdict(rating float64, b Breakdown) (Verdict, string) {
	switch {
	case rating >= goodRatingFloor && b.PositivePercent >= goodPositiveFloor:
		return VerdictGood, "Most viewers like this movie."
	case rating < badRatingCeiling || b.NegativePercent >= badNegativeFloor:
		return VerdictMostlyNegative, "Most viewers did not enjoy this movie."
	default:
		return VerdictMixed, "Viewers have mixed opinions about this movie."
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
