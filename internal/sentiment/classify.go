package sentiment

// Classification buckets a polarity score.
type Classification int

const (
	Neutral Classification = iota
	Positive
	Negative
)

// Polarity thresholds for classification. Scores within (-0.1, 0.1] on
// either side of zero read as neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Classify maps a polarity score in [-1, 1] onto a classification. The
// function is total: any float maps to exactly one bucket.
func Classify(polarity float64) Classification {
	switch {
	case polarity > positiveThreshold:
		return Positive
	case polarity < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

func (c Classification) String() string {
	switch c {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}
