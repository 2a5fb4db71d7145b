package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"moviemood/internal/analyzer"
	"moviemood/internal/logging"
	"moviemood/internal/sentiment"
	"moviemood/internal/tmdb"
)

// movieAnalyzer is the surface the CLI needs from the analysis stage.
type movieAnalyzer interface {
	Analyze(ctx context.Context, title string) (*analyzer.Report, error)
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [title]",
		Short: "Analyze review sentiment for a movie",
		Long: `Analyze fetches a movie's TMDB rating and user reviews, scores each
review's sentiment, and prints a verdict report.

With a title argument it analyzes once and exits. Without arguments it
enters an interactive session that prompts for titles until you quit.

Examples:
  moviemood analyze "The Matrix"      # One-shot analysis
  moviemood analyze                   # Interactive session`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := logging.NewForDir(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.LogDir)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
				tmdb.WithTimeout(time.Duration(cfg.TMDB.RequestTimeout)*time.Second),
				tmdb.WithMaxReviews(cfg.Analysis.MaxReviews),
			)
			if err != nil {
				return fmt.Errorf("create TMDB client: %w", err)
			}

			an := analyzer.New(client, sentiment.NewVADERScorer(), logger, cfg.Analysis.SampleCount)

			title := strings.TrimSpace(strings.Join(args, " "))
			if title != "" {
				return runOnce(cmd, an, title)
			}
			return runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), an, colorizeOutput())
		},
	}
	return cmd
}

func runOnce(cmd *cobra.Command, an movieAnalyzer, title string) error {
	runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())
	report, err := an.Analyze(runCtx, title)
	if err != nil {
		var noReviews *analyzer.NoReviewsError
		if errors.As(err, &noReviews) {
			fmt.Fprint(cmd.OutOrStdout(), renderNoReviews(noReviews))
			return nil
		}
		return describeAnalysisError(err, title)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderReport(report, colorizeOutput()))
	return nil
}

func runInteractive(ctx context.Context, in io.Reader, out io.Writer, an movieAnalyzer, colorize bool) error {
	banner := strings.Repeat("=", reportWidth)
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "MOVIE SENTIMENT ANALYZER")
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "This tool analyzes movie reviews to determine if a movie is 'good'.")
	fmt.Fprintln(out, "It uses TMDb ratings and sentiment analysis of user reviews.")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter a movie title (or 'quit' to exit): ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		title := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(title) {
		case "quit", "exit", "q":
			fmt.Fprintln(out, "\nThank you for using the movie sentiment analyzer!")
			return nil
		case "":
			fmt.Fprintln(out, "Please enter a movie title.")
			fmt.Fprintln(out)
			continue
		}

		fmt.Fprintf(out, "\nAnalyzing %q...\n\n", title)
		runCtx := logging.WithRunID(ctx, uuid.NewString())
		report, err := an.Analyze(runCtx, title)
		if err != nil {
			var noReviews *analyzer.NoReviewsError
			if errors.As(err, &noReviews) {
				fmt.Fprint(out, renderNoReviews(noReviews))
			} else {
				fmt.Fprintf(out, "%v\n", describeAnalysisError(err, title))
			}
			fmt.Fprintln(out)
			continue
		}
		fmt.Fprint(out, renderReport(report, colorize))

		again, err := promptYesNo(scanner, out, "Would you like to analyze another movie? (y/n): ")
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(out, "\nThank you for using the movie sentiment analyzer!")
			return nil
		}
		fmt.Fprintln(out)
	}
}

func promptYesNo(scanner *bufio.Scanner, out io.Writer, prompt string) (bool, error) {
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return false, scanner.Err()
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(out, "Please enter 'y' or 'n'.")
		}
	}
}

// describeAnalysisError converts stage failures into the single
// user-facing message the CLI reports.
func describeAnalysisError(err error, title string) error {
	switch {
	case errors.Is(err, analyzer.ErrMovieNotFound):
		return fmt.Errorf("movie %q not found; try a different title", title)
	case errors.Is(err, tmdb.ErrInvalidAPIKey):
		return errors.New("TMDB rejected the API key; check tmdb.api_key in your config or the TMDB_API_KEY env var")
	default:
		return fmt.Errorf("analyze %q: %w", title, err)
	}
}
