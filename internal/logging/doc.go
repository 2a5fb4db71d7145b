// Package logging assembles the structured slog loggers used across the
// analyzer and CLI.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so analysis code can tag every
// log line with the run correlation ID. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every
// component emits data with the same shape.
package logging
