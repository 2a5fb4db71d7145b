// Package tmdb provides the minimal TMDB API client used to fetch movie
// metadata and user reviews.
//
// It authenticates requests and exposes movie search, detail retrieval,
// and review listing. Responses are strongly typed so the analysis stage
// can score them. Options allow tests to supply custom HTTP clients or
// tighten timeouts without modifying production code.
package tmdb
