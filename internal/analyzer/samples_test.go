package analyzer_test

import (
	"testing"

	"moviemood/internal/analyzer"
	"moviemood/internal/sentiment"
)

func classified(author string, polarity float64) analyzer.ScoredReview {
	return analyzer.ScoredReview{
		Author:   author,
		Polarity: polarity,
		Class:    sentiment.Classify(polarity),
	}
}

func TestTopSamplesPositiveOrdering(t *testing.T) {
	reviews := []analyzer.ScoredReview{
		classified("a", 0.3),
		classified("b", 0.9),
		classified("c", -0.8),
		classified("d", 0.5),
	}
	samples := analyzer.TopSamples(reviews, sentiment.Positive, 2)
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Author != "b" || samples[1].Author != "d" {
		t.Fatalf("unexpected ordering: %q, %q", samples[0].Author, samples[1].Author)
	}
}

func TestTopSamplesNegativeOrdering(t *testing.T) {
	reviews := []analyzer.ScoredReview{
		classified("a", -0.2),
		classified("b", -0.9),
		classified("c", 0.8),
		classified("d", -0.5),
	}
	samples := analyzer.TopSamples(reviews, sentiment.Negative, 2)
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Author != "b" || samples[1].Author != "d" {
		t.Fatalf("unexpected ordering: %q, %q", samples[0].Author, samples[1].Author)
	}
}

func TestTopSamplesFewerThanRequested(t *testing.T) {
	reviews := []analyzer.ScoredReview{
		classified("a", 0.4),
		classified("b", -0.4),
	}
	samples := analyzer.TopSamples(reviews, sentiment.Positive, 5)
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
}

func TestTopSamplesTieKeepsOriginalOrder(t *testing.T) {
	reviews := []analyzer.ScoredReview{
		classified("first", 0.5),
		classified("second", 0.5),
		classified("third", 0.5),
	}
	samples := analyzer.TopSamples(reviews, sentiment.Positive, 2)
	if samples[0].Author != "first" || samples[1].Author != "second" {
		t.Fatalf("tie break lost original order: %q, %q", samples[0].Author, samples[1].Author)
	}
}

func TestTopSamplesNonPositiveCount(t *testing.T) {
	reviews := []analyzer.ScoredReview{classified("a", 0.4)}
	if samples := analyzer.TopSamples(reviews, sentiment.Positive, 0); samples != nil {
		t.Fatalf("expected nil for n=0, got %#v", samples)
	}
}

func TestTopSamplesDoesNotMutateInput(t *testing.T) {
	reviews := []analyzer.ScoredReview{
		classified("a", 0.2),
		classified("b", 0.9),
	}
	_ = analyzer.TopSamples(reviews, sentiment.Positive, 2)
	if reviews[0].Author != "a" || reviews[1].Author != "b" {
		t.Fatalf("input slice was reordered: %#v", reviews)
	}
}
