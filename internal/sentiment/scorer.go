package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Scorer produces a polarity score in [-1, 1] for a piece of text.
type Scorer interface {
	Score(text string) float64
}

// VADERScorer scores text with the VADER lexicon model. The zero value is
// not usable; construct with NewVADERScorer.
type VADERScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ Scorer = (*VADERScorer)(nil)

// NewVADERScorer builds a scorer with the default VADER lexicon.
func NewVADERScorer() *VADERScorer {
	return &VADERScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity for text. Blank or whitespace-only
// text scores zero.
func (s *VADERScorer) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return s.analyzer.PolarityScores(text).Compound
}
