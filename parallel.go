package fill

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SolveParallel is Solve with the first branching level fanned out across at
// most `workers` goroutines. Each candidate of the first slot is explored on
// an independent snapshot of the domains, so sibling branches never observe
// each other's pruning; the first complete assignment wins and cancels the
// rest. Results are equivalent to Solve up to which of several solutions is
// returned.
func (s *Solver) SolveParallel(ctx context.Context, workers int) (Assignment, bool) {
	if workers <= 1 {
		return s.Solve(ctx)
	}

	s.EnforceNodeConsistency()
	if !s.EnforceArcConsistency(nil) {
		return nil, false
	}

	root := Assignment{}
	if s.puzzle.Complete(root) {
		return root, true
	}
	slot, ok := selectUnassignedSlot(s.puzzle, s.domains, root)
	if !ok {
		return nil, false
	}
	values := orderValues(s.puzzle, s.domains, root, slot)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan Assignment, len(values))
	g := &errgroup.Group{}
	g.SetLimit(workers)

	for _, word := range values {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			a := Assignment{slot: word}
			if !s.puzzle.Consistent(a) {
				return nil
			}
			branch, viable := s.extend(s.domains, a, slot, word)
			if !viable {
				return nil
			}
			if result, found := s.backtrack(ctx, a, branch); found {
				results <- result
				cancel()
			}
			return nil
		})
	}

	g.Wait()
	close(results)
	for result := range results {
		return result, true
	}
	return nil, false
}
