package batch

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tsawler/polarity"
)

// DefaultWorkers is the number of articles fetched concurrently when the
// caller does not choose.
const DefaultWorkers = 4

// Analyzer classifies raw article text.
type Analyzer interface {
	Run(text string) (*polarity.Analysis, bool)
}

// TextSource returns the article text for a target, or "" when none could
// be retrieved.
type TextSource interface {
	Text(ctx context.Context, target string) string
}

// Result is the outcome for one target. Analysis is nil when no text was
// retrieved.
type Result struct {
	Target   string
	Analysis *polarity.Analysis
}

// Runner classifies many targets with bounded concurrency.
type Runner struct {
	analyzer Analyzer
	source   TextSource
	workers  int
	fetches  singleflight.Group
}

// NewRunner creates a runner. Non-positive workers selects DefaultWorkers.
func NewRunner(analyzer Analyzer, source TextSource, workers int) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Runner{
		analyzer: analyzer,
		source:   source,
		workers:  workers,
	}
}

// Run fetches and classifies every target. Results keep the order of
// targets; concurrent fetches of the same target are shared. Run only
// fails when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, targets []string) ([]Result, error) {
	results := make([]Result, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, target := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			text, _, _ := r.fetches.Do(target, func() (any, error) {
				return r.source.Text(ctx, target), nil
			})

			analysis, ok := r.analyzer.Run(text.(string))
			if !ok {
				slog.Warn("No article text retrieved", "target", target)
			}
			results[i] = Result{Target: target, Analysis: analysis}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize aggregates the verdicts of results.
func Summarize(results []Result) polarity.Summary {
	analyses := make([]*polarity.Analysis, len(results))
	for i, r := range results {
		analyses[i] = r.Analysis
	}
	return polarity.Summarize(analyses)
}
