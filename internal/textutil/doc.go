// Package textutil provides text processing utilities for report display
// and query handling.
//
// The primary use cases are:
//   - Truncating review bodies to display-safe snippets
//   - Collapsing runs of whitespace in free-form user input
//   - Title-casing fallback display titles
//
// Truncation counts runes rather than bytes so multi-byte text is never
// cut mid-character.
package textutil
