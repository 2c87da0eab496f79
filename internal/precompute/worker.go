package precompute

import (
	"context"

	"rod-cutting-optimizer/internal/rodcut"
)

// solveWorker solves problems by index until indices is closed.
// Each index is owned by exactly one worker, so writes to outcomes never overlap.
func solveWorker(ctx context.Context, solver rodcut.Solver, problems []Problem, outcomes []Outcome, indices <-chan int, done chan<- int) error {
	for i := range indices {
		if err := ctx.Err(); err != nil {
			return err
		}

		p := problems[i]
		res, err := solver.Solve(p.Length, p.Prices)
		outcomes[i] = Outcome{Problem: p, Result: res, Err: err}

		select {
		case done <- i:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
