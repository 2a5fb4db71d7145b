// Package sentiment scores review text and buckets polarity scores into
// positive, negative, and neutral classifications.
//
// Scoring is backed by the VADER lexicon model, which returns a compound
// polarity in [-1, 1]. The Scorer interface lets tests substitute a
// deterministic implementation without touching the model. Classification
// thresholds are fixed constants shared by the aggregation stage.
package sentiment
