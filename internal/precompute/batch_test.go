package precompute

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"rod-cutting-optimizer/internal/rodcut"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProblems() []Problem {
	return []Problem{
		{Line: 1, Length: 5, Prices: []int{2, 5, 7, 8, 10}},
		{Line: 2, Length: 3, Prices: []int{1, 3, 8}},
		{Line: 3, Length: 4, Prices: []int{3, 5, 6, 7}},
		{Line: 4, Length: 4, Prices: []int{1, 2}},
		{Line: 5, Length: 0},
	}
}

func randomProblems(n int) []Problem {
	r := rand.New(rand.NewSource(99))
	problems := make([]Problem, n)
	for i := range problems {
		length := r.Intn(60)
		prices := make([]int, length)
		for j := range prices {
			prices[j] = r.Intn(100)
		}
		problems[i] = Problem{Line: i + 1, Length: length, Prices: prices}
	}
	return problems
}

func TestSolveAll(t *testing.T) {
	for _, strategy := range []rodcut.Strategy{rodcut.StrategyMemo, rodcut.StrategyTable} {
		t.Run(string(strategy), func(t *testing.T) {
			outcomes, err := SolveAll(context.Background(), sampleProblems(), strategy, nil, 2)
			require.NoError(t, err)
			require.Len(t, outcomes, 5)

			assert.Equal(t, 12, outcomes[0].Result.MaxProfit)
			assert.Equal(t, []int{3}, outcomes[1].Result.Cuts)
			assert.Equal(t, 12, outcomes[2].Result.MaxProfit)
			assert.ErrorIs(t, outcomes[3].Err, rodcut.ErrInsufficientPriceData)
			assert.Equal(t, 0, outcomes[4].Result.MaxProfit)
			assert.Empty(t, outcomes[4].Result.Cuts)

			for i, o := range outcomes {
				assert.Equal(t, i+1, o.Problem.Line, "outcomes must keep input order")
			}
			assert.Equal(t, 1, Failed(outcomes))
		})
	}
}

func TestSolveAll_DifferentWorkerCounts(t *testing.T) {
	problems := randomProblems(300)

	want, err := SolveAll(context.Background(), problems, rodcut.StrategyTable, nil, 1)
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 8, 1000} {
		got, err := SolveAll(context.Background(), problems, rodcut.StrategyTable, nil, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestSolveAll_StrategiesAgree(t *testing.T) {
	problems := randomProblems(200)

	memo, err := SolveAll(context.Background(), problems, rodcut.StrategyMemo, nil, 4)
	require.NoError(t, err)
	table, err := SolveAll(context.Background(), problems, rodcut.StrategyTable, nil, 4)
	require.NoError(t, err)

	for i := range problems {
		assert.Equal(t, memo[i].Result.MaxProfit, table[i].Result.MaxProfit, "problem %d", i)
	}
}

func TestSolveAll_Empty(t *testing.T) {
	outcomes, err := SolveAll(context.Background(), nil, rodcut.StrategyTable, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestSolveAll_UnknownStrategy(t *testing.T) {
	_, err := SolveAll(context.Background(), sampleProblems(), "greedy", nil, 1)
	assert.ErrorIs(t, err, rodcut.ErrUnknownStrategy)
}

func TestSolveAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SolveAll(ctx, randomProblems(50), rodcut.StrategyTable, nil, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveAll_WithProgress(t *testing.T) {
	var mu sync.Mutex
	var messages []string
	progress := func(msg string) {
		mu.Lock()
		defer mu.Unlock()
		messages = append(messages, msg)
	}

	_, err := SolveAll(context.Background(), sampleProblems(), rodcut.StrategyTable, progress, 2)
	require.NoError(t, err)

	require.NotEmpty(t, messages)
	assert.Contains(t, messages[0], "Solving 5 problems")
	assert.True(t, strings.Contains(messages[len(messages)-1], "Solved 5/5"))
}

// Benchmarks

func BenchmarkSolveAll_SingleWorker(b *testing.B) {
	problems := randomProblems(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SolveAll(context.Background(), problems, rodcut.StrategyTable, nil, 1); err != nil {
			b.Fatalf("SolveAll() error = %v", err)
		}
	}
}

func BenchmarkSolveAll_MultipleWorkers(b *testing.B) {
	problems := randomProblems(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SolveAll(context.Background(), problems, rodcut.StrategyTable, nil, 0); err != nil {
			b.Fatalf("SolveAll() error = %v", err)
		}
	}
}
