package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"moviemood/internal/analyzer"
	"moviemood/internal/textutil"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

const (
	reportWidth      = 60
	snippetMaxLength = 300
)

func colorizeOutput() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderReport formats the full analysis report for terminal display.
func renderReport(report *analyzer.Report, colorize bool) string {
	var b strings.Builder
	banner := strings.Repeat("=", reportWidth)
	rule := strings.Repeat("-", reportWidth)

	b.WriteString(banner + "\n")
	b.WriteString("MOVIE SENTIMENT ANALYSIS REPORT\n")
	b.WriteString(banner + "\n\n")

	fmt.Fprintf(&b, "Movie: %s (%s)\n", report.Title, report.Year)
	fmt.Fprintf(&b, "TMDb rating: %.1f / 10\n", report.Rating)
	fmt.Fprintf(&b, "Reviews analyzed: %d\n\n", report.Breakdown.Total)

	b.WriteString(renderBreakdownTable([][3]string{
		{"Positive", strconv.Itoa(report.Breakdown.Positive), formatPercent(report.Breakdown.PositivePercent)},
		{"Negative", strconv.Itoa(report.Breakdown.Negative), formatPercent(report.Breakdown.NegativePercent)},
		{"Neutral", strconv.Itoa(report.Breakdown.Neutral), formatPercent(report.Breakdown.NeutralPercent)},
	}, strconv.Itoa(report.Breakdown.Total)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Average sentiment score: %.2f (range: -1.0 to 1.0)\n\n", report.Breakdown.MeanPolarity)

	verdictLine := fmt.Sprintf("VERDICT: %s - %s", report.Verdict, report.VerdictReason)
	if colorize {
		verdictLine = verdictColor(report.Verdict) + verdictLine + ansiReset
	}
	b.WriteString(verdictLine + "\n")

	writeSampleSection(&b, rule, "Example Positive Reviews:", report.SamplePositive)
	writeSampleSection(&b, rule, "Example Negative Reviews:", report.SampleNegative)

	if report.Overview != "" {
		b.WriteString("\n" + rule + "\n")
		b.WriteString("Movie Overview:\n")
		b.WriteString(rule + "\n")
		b.WriteString(report.Overview + "\n")
	}

	b.WriteString("\n" + banner + "\n")
	return b.String()
}

// renderNoReviews formats the basic-info fallback shown when a movie
// resolved but carries no usable reviews.
func renderNoReviews(err *analyzer.NoReviewsError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Movie: %s (%s)\n", err.Title, err.Year)
	fmt.Fprintf(&b, "TMDb rating: %.1f / 10\n\n", err.Rating)
	b.WriteString("No reviews found for this movie.\n")
	return b.String()
}

func writeSampleSection(b *strings.Builder, rule, heading string, samples []analyzer.ScoredReview) {
	if len(samples) == 0 {
		return
	}
	b.WriteString("\n" + rule + "\n")
	b.WriteString(heading + "\n")
	b.WriteString(rule + "\n")
	for i, review := range samples {
		fmt.Fprintf(b, "\n[%d] By %s:\n", i+1, review.Author)
		fmt.Fprintf(b, "%q\n", snippet(review.Body))
	}
}

func snippet(body string) string {
	return textutil.Truncate(strings.TrimSpace(body), snippetMaxLength)
}

func verdictColor(verdict analyzer.Verdict) string {
	switch verdict {
	case analyzer.VerdictGood:
		return ansiGreen
	case analyzer.VerdictMostlyNegative:
		return ansiRed
	default:
		return ansiYellow
	}
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64) + "%"
}
