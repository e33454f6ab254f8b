// Package batch aligns many independent pairs concurrently.
//
// Each pair is still aligned by the single-threaded core with matrices
// owned by one goroutine; only the loop over pairs is split.
package batch

import (
	"context"
	"sync/atomic"

	"github.com/exascience/pargo/parallel"
	"github.com/google/uuid"

	"github.com/aria-lang/nwaffine/internal/alignment"
	"github.com/aria-lang/nwaffine/internal/loader"
)

// Result is the alignment of one input pair.
type Result struct {
	ID        uuid.UUID
	Label     string
	Alignment *alignment.Alignment
}

// Run is the outcome of one Runner.Run call, results in input order.
type Run struct {
	ID      uuid.UUID
	Results []Result
}

// Alignments returns the alignments of r in input order.
func (r *Run) Alignments() []*alignment.Alignment {
	out := make([]*alignment.Alignment, len(r.Results))
	for i := range r.Results {
		out[i] = r.Results[i].Alignment
	}
	return out
}

// Runner aligns pairs with a fixed cost model and traceback mode.
type Runner struct {
	Scoring *alignment.ScoringMatrix
	Mode    alignment.TracebackMode
	// Grain is the number of batches handed to parallel.Range;
	// 0 lets pargo pick one based on GOMAXPROCS.
	Grain int
}

// NewRunner returns a runner using scoring, or the default costs if nil.
func NewRunner(scoring *alignment.ScoringMatrix) *Runner {
	if scoring == nil {
		scoring = alignment.Default()
	}
	return &Runner{Scoring: scoring, Mode: alignment.TraceAffine}
}

// Run aligns every pair. Cancellation is checked between pairs; once ctx
// is done the remaining pairs are skipped and ctx.Err() is returned.
func (r *Runner) Run(ctx context.Context, pairs []loader.Pair) (*Run, error) {
	scoring := r.Scoring
	if scoring == nil {
		scoring = alignment.Default()
	}

	run := &Run{
		ID:      uuid.New(),
		Results: make([]Result, len(pairs)),
	}
	if len(pairs) == 0 {
		return run, ctx.Err()
	}

	var cancelled int32
	parallel.Range(0, len(pairs), r.Grain, func(low, high int) {
		for i := low; i < high; i++ {
			if atomic.LoadInt32(&cancelled) != 0 {
				return
			}
			if ctx.Err() != nil {
				atomic.StoreInt32(&cancelled, 1)
				return
			}

			p := pairs[i]
			a := alignment.GlobalWithMode(p.Seq1, p.Seq2, scoring, r.Mode)
			a.ID1, a.ID2 = p.Label, p.Label
			run.Results[i] = Result{
				ID:        uuid.New(),
				Label:     p.Label,
				Alignment: a,
			}
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return run, nil
}
