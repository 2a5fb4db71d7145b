package analyzer

import "moviemood/internal/sentiment"

// ScoredReview is a user review with its sentiment attached. Immutable
// once scored.
type ScoredReview struct {
	Author   string
	Body     string
	Polarity float64
	Class    sentiment.Classification
}

// Breakdown aggregates classification counts across a scored review set.
// Percentages are rounded to one decimal place and sum to 100 within
// rounding tolerance; MeanPolarity is rounded to two decimal places.
type Breakdown struct {
	Total           int
	Positive        int
	Negative        int
	Neutral         int
	PositivePercent float64
	NegativePercent float64
	NeutralPercent  float64
	MeanPolarity    float64
}

// Verdict is the categorical outcome of an analysis.
type Verdict int

const (
	VerdictMixed Verdict = iota
	VerdictGood
	VerdictMostlyNegative
)

func (v Verdict) String() string {
	switch v {
	case VerdictGood:
		return "GOOD"
	case VerdictMostlyNegative:
		return "MOSTLY NEGATIVE"
	default:
		return "MIXED/OKAY"
	}
}

// Report is the complete result of analyzing one movie. Constructed once
// per run and never mutated afterwards.
type Report struct {
	Title          string
	Year           string
	Rating         float64
	Overview       string
	Reviews        []ScoredReview
	Breakdown      Breakdown
	Verdict        Verdict
	VerdictReason  string
	SamplePositive []ScoredReview
	SampleNegative []ScoredReview
}
