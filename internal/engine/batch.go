package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-engine/internal/types"
)

// defaultConcurrency bounds batch fan-out when the caller passes 0
const defaultConcurrency = 4

// Pair is one (resume, job) evaluation request
type Pair struct {
	Resume *types.ResumeProfile  `json:"resume"`
	Job    *types.JobRequirement `json:"job"`
}

// EvaluateBatch evaluates many independent pairs concurrently. Evaluations
// share the engine's read-only lookup tables and nothing else, so no
// coordination is needed beyond bounding the fan-out. Results are returned in
// input order; the first failing pair cancels the rest.
func (e *Engine) EvaluateBatch(ctx context.Context, pairs []Pair, concurrency int) ([]*Evaluation, error) {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]*Evaluation, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			eval, err := e.Evaluate(pair.Resume, pair.Job)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			results[i] = eval
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
