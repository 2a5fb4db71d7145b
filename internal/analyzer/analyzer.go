package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"moviemood/internal/logging"
	"moviemood/internal/sentiment"
	"moviemood/internal/tmdb"
)

const defaultSampleCount = 2

// Analyzer orchestrates one analysis run: fetch, score, aggregate.
type Analyzer struct {
	api         tmdb.API
	scorer      sentiment.Scorer
	logger      *slog.Logger
	sampleCount int
}

// New builds an Analyzer. A nil logger is replaced with a no-op logger;
// a non-positive sampleCount falls back to the default of 2.
func New(api tmdb.API, scorer sentiment.Scorer, logger *slog.Logger, sampleCount int) *Analyzer {
	if sampleCount <= 0 {
		sampleCount = defaultSampleCount
	}
	return &Analyzer{
		api:         api,
		scorer:      scorer,
		logger:      logging.NewComponentLogger(logger, "analyzer"),
		sampleCount: sampleCount,
	}
}

// Analyze resolves a movie by title, scores its reviews, and returns the
// aggregated report. Returns ErrMovieNotFound when the search has no
// results and *NoReviewsError when the movie has no usable reviews.
func (a *Analyzer) Analyze(ctx context.Context, query string) (*Report, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("movie title must not be empty")
	}
	logger := logging.WithContext(ctx, a.logger)

	search, err := a.api.SearchMovie(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search movie: %w", err)
	}
	if len(search.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMovieNotFound, query)
	}
	best := search.Results[0]
	logger.Info("movie resolved",
		logging.String("query", query),
		logging.String("title", best.Title),
		logging.Int64("tmdb_id", best.ID),
		logging.Int("candidates", len(search.Results)),
	)

	details, err := a.api.GetMovieDetails(ctx, best.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch movie details: %w", err)
	}
	title, year, overview := describeMovie(query, best, details)

	reviews, err := a.api.GetMovieReviews(ctx, best.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch movie reviews: %w", err)
	}

	scored := a.scoreReviews(reviews)
	if len(scored) == 0 {
		logger.Info("no usable reviews",
			logging.String("title", title),
			logging.Int("fetched", len(reviews)),
		)
		return nil, &NoReviewsError{Title: title, Year: year, Rating: round1(details.VoteAverage)}
	}

	breakdown := Summarize(scored)
	verdict, reason := DecideVerdict(details.VoteAverage, breakdown)
	logger.Info("analysis complete",
		logging.String("title", title),
		logging.Int("reviews", breakdown.Total),
		logging.Float64("rating", details.VoteAverage),
		logging.Float64("positive_percent", breakdown.PositivePercent),
		logging.Float64("negative_percent", breakdown.NegativePercent),
		logging.Float64("mean_polarity", breakdown.MeanPolarity),
		logging.String("verdict", verdict.String()),
	)

	return &Report{
		Title:          title,
		Year:           year,
		Rating:         round1(details.VoteAverage),
		Overview:       overview,
		Reviews:        scored,
		Breakdown:      breakdown,
		Verdict:        verdict,
		VerdictReason:  reason,
		SamplePositive: TopSamples(scored, sentiment.Positive, a.sampleCount),
		SampleNegative: TopSamples(scored, sentiment.Negative, a.sampleCount),
	}, nil
}

// scoreReviews scores every review with a non-blank body, preserving the
// original TMDB ordering.
func (a *Analyzer) scoreReviews(reviews []tmdb.Review) []ScoredReview {
	scored := make([]ScoredReview, 0, len(reviews))
	for _, review := range reviews {
		body := strings.TrimSpace(review.Content)
		if body == "" {
			continue
		}
		author := strings.TrimSpace(review.Author)
		if author == "" {
			author = "Anonymous"
		}
		polarity := a.scorer.Score(body)
		scored = append(scored, ScoredReview{
			Author:   author,
			Body:     body,
			Polarity: polarity,
			Class:    sentiment.Classify(polarity),
		})
	}
	return scored
}

func describeMovie(query string, best tmdb.Movie, details *tmdb.Movie) (title, year, overview string) {
	title = strings.TrimSpace(details.Title)
	if title == "" {
		title = strings.TrimSpace(best.Title)
	}
	if title == "" {
		title = fallbackTitle(query)
	}
	year = details.Year()
	if year == "Unknown" {
		year = best.Year()
	}
	overview = strings.TrimSpace(details.Overview)
	if overview == "" {
		overview = strings.TrimSpace(best.Overview)
	}
	return title, year, overview
}
