package sentiment_test

import (
	"testing"

	"moviemood/internal/sentiment"
)

func TestVADERScorerBlankText(t *testing.T) {
	scorer := sentiment.NewVADERScorer()
	if got := scorer.Score(""); got != 0 {
		t.Fatalf("Score(\"\") = %v, want 0", got)
	}
	if got := scorer.Score("   \t\n"); got != 0 {
		t.Fatalf("Score(whitespace) = %v, want 0", got)
	}
}

func TestVADERScorerPolarityDirection(t *testing.T) {
	scorer := sentiment.NewVADERScorer()

	positive := scorer.Score("An absolutely wonderful film, brilliant and deeply moving. I loved it.")
	if positive <= 0.1 {
		t.Fatalf("expected clearly positive score, got %v", positive)
	}

	negative := scorer.Score("Terrible, boring, and a complete waste of time. I hated every minute.")
	if negative >= -0.1 {
		t.Fatalf("expected clearly negative score, got %v", negative)
	}
}

func TestVADERScorerRange(t *testing.T) {
	scorer := sentiment.NewVADERScorer()
	texts := []string{
		"best movie ever made, a masterpiece",
		"the worst thing I have ever seen",
		"the movie has a runtime of two hours",
	}
	for _, text := range texts {
		score := scorer.Score(text)
		if score < -1 || score > 1 {
			t.Fatalf("Score(%q) = %v outside [-1, 1]", text, score)
		}
	}
}
