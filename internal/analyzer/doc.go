// Package analyzer runs the fetch, score, and aggregate stages for a
// single movie and assembles the final report.
//
// It resolves the movie through the TMDB client, scores every review body
// with the sentiment scorer, buckets the scores into classifications,
// computes the percentage breakdown and mean polarity, applies the fixed
// verdict decision table, and selects the most extreme reviews from each
// polarity bucket as display samples. Reports are immutable once built.
package analyzer
