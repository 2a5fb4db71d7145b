package sentiment_test

import (
	"testing"

	"moviemood/internal/sentiment"
)

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		name     string
		polarity float64
		want     sentiment.Classification
	}{
		{"strongly positive", 0.9, sentiment.Positive},
		{"just above threshold", 0.11, sentiment.Positive},
		{"at positive threshold", 0.1, sentiment.Neutral},
		{"zero", 0, sentiment.Neutral},
		{"at negative threshold", -0.1, sentiment.Neutral},
		{"just below threshold", -0.11, sentiment.Negative},
		{"strongly negative", -1.0, sentiment.Negative},
		{"upper bound", 1.0, sentiment.Positive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sentiment.Classify(tc.polarity); got != tc.want {
				t.Fatalf("Classify(%v) = %v, want %v", tc.polarity, got, tc.want)
			}
		})
	}
}

func TestClassificationString(t *testing.T) {
	if got := sentiment.Positive.String(); got != "positive" {
		t.Fatalf("Positive.String() = %q", got)
	}
	if got := sentiment.Negative.String(); got != "negative" {
		t.Fatalf("Negative.String() = %q", got)
	}
	if got := sentiment.Neutral.String(); got != "neutral" {
		t.Fatalf("Neutral.String() = %q", got)
	}
}
