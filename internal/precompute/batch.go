package precompute

import (
	"context"
	"fmt"
	"runtime"

	"rod-cutting-optimizer/internal/rodcut"

	"golang.org/x/sync/errgroup"
)

// Progress reporting interval for the solving phase
const progressReportInterval = 1000

// Outcome is the result of solving one Problem.
// Err is set when the problem itself was invalid; Result is then zero.
type Outcome struct {
	Problem Problem
	Result  rodcut.Result
	Err     error
}

// SolveAll solves every problem with the given strategy using a worker pool.
//
// Outcomes are returned in the same order as problems. Invalid problems do
// not stop the batch; their error is recorded on the Outcome instead.
//
// workers: Number of parallel workers. If 0 or negative, uses runtime.NumCPU().
func SolveAll(ctx context.Context, problems []Problem, strategy rodcut.Strategy, progressCallback func(string), workers int) ([]Outcome, error) {
	solver, err := rodcut.NewSolver(strategy)
	if err != nil {
		return nil, err
	}

	workerPoolSize := workers
	if workerPoolSize <= 0 {
		workerPoolSize = runtime.NumCPU()
	}
	if workerPoolSize > len(problems) {
		workerPoolSize = max(1, len(problems))
	}

	if progressCallback != nil {
		progressCallback(fmt.Sprintf("Solving %d problems with %d workers (%s strategy)...", len(problems), workerPoolSize, strategy))
	}

	outcomes := make([]Outcome, len(problems))
	indices := make(chan int, workerPoolSize)
	done := make(chan int, workerPoolSize)

	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < workerPoolSize; i++ {
		eg.Go(func() error {
			return solveWorker(egCtx, solver, problems, outcomes, indices, done)
		})
	}

	// Feed problem indices to the workers
	eg.Go(func() error {
		defer close(indices)
		for i := range problems {
			select {
			case indices <- i:
			case <-egCtx.Done():
				return egCtx.Err()
			}
		}
		return nil
	})

	// Collect completions in a separate goroutine for progress reporting
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		count := 0
		for range done {
			count++
			if progressCallback != nil && (count%progressReportInterval == 0 || count == len(problems)) {
				progressCallback(fmt.Sprintf("    Solved %d/%d problems", count, len(problems)))
			}
		}
	}()

	err = eg.Wait()
	close(done)
	<-collected

	if err != nil {
		return nil, err
	}

	return outcomes, nil
}

// Failed counts outcomes whose problem could not be solved.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
