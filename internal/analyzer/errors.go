package analyzer

import (
	"errors"
	"fmt"
)

// ErrMovieNotFound reports that no TMDB entry matched the query.
var ErrMovieNotFound = errors.New("movie not found")

// NoReviewsError reports a movie that resolved on TMDB but has no usable
// user reviews. It carries the resolved metadata so callers can still
// present basic movie information.
type NoReviewsError struct {
	Title  string
	Year   string
	Rating float64
}

func (e *NoReviewsError) Error() string {
	return fmt.Sprintf("no reviews found for %s (%s)", e.Title, e.Year)
}
