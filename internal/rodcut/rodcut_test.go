package rodcut

import (
	"math"
	"math/rand"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solvers = map[string]Solver{
	"memo":  Memo{},
	"table": Table{},
}

func sum(cuts []int) int {
	total := 0
	for _, c := range cuts {
		total += c
	}
	return total
}

// bruteForce enumerates every composition of length.
func bruteForce(length int, prices []int) int {
	if length == 0 {
		return 0
	}
	best := 0
	for i := 1; i <= length; i++ {
		if p := prices[i-1] + bruteForce(length-i, prices); p > best {
			best = p
		}
	}
	return best
}

func randomPrices(r *rand.Rand, n int) []int {
	prices := make([]int, n)
	for i := range prices {
		prices[i] = r.Intn(30)
	}
	return prices
}

func TestSolve_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		prices     []int
		wantProfit int
		wantCuts   []int
		wantNumber int
	}{
		{
			name:       "base case",
			length:     5,
			prices:     []int{2, 5, 7, 8, 10},
			wantProfit: 12,
			wantCuts:   []int{1, 2, 2},
			wantNumber: 2,
		},
		{
			name:       "no cut is optimal",
			length:     3,
			prices:     []int{1, 3, 8},
			wantProfit: 8,
			wantCuts:   []int{3},
			wantNumber: 0,
		},
		{
			name:       "unit cuts",
			length:     4,
			prices:     []int{3, 5, 6, 7},
			wantProfit: 12,
			wantCuts:   []int{1, 1, 1, 1},
			wantNumber: 3,
		},
		{
			name:       "zero length",
			length:     0,
			prices:     nil,
			wantProfit: 0,
			wantCuts:   []int{},
			wantNumber: 0,
		},
		{
			name:       "single segment",
			length:     1,
			prices:     []int{4},
			wantProfit: 4,
			wantCuts:   []int{1},
			wantNumber: 0,
		},
		{
			name:       "all zero prices",
			length:     3,
			prices:     []int{0, 0, 0},
			wantProfit: 0,
			wantCuts:   []int{1, 1, 1},
			wantNumber: 2,
		},
		{
			name:       "extra prices ignored",
			length:     2,
			prices:     []int{1, 5, 100, -1},
			wantProfit: 5,
			wantCuts:   []int{2},
			wantNumber: 0,
		},
		{
			name:       "classic textbook table",
			length:     8,
			prices:     []int{1, 5, 8, 9, 10, 17, 17, 20},
			wantProfit: 22,
			wantCuts:   []int{2, 6},
			wantNumber: 1,
		},
	}

	for _, tt := range tests {
		for name, s := range solvers {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				got, err := s.Solve(tt.length, tt.prices)
				require.NoError(t, err)
				assert.Equal(t, tt.wantProfit, got.MaxProfit)
				assert.Equal(t, tt.wantCuts, got.Cuts)
				assert.Equal(t, tt.wantNumber, got.NumberOfCuts)
			})
		}
	}
}

func TestSolve_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		prices  []int
		wantErr error
	}{
		{
			name:    "negative length",
			length:  -1,
			prices:  []int{1},
			wantErr: ErrInvalidLength,
		},
		{
			name:    "price table too short",
			length:  4,
			prices:  []int{1, 2},
			wantErr: ErrInsufficientPriceData,
		},
		{
			name:    "nil prices for positive length",
			length:  1,
			prices:  nil,
			wantErr: ErrInsufficientPriceData,
		},
		{
			name:    "negative price",
			length:  3,
			prices:  []int{1, -2, 3},
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		for name, s := range solvers {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				got, err := s.Solve(tt.length, tt.prices)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Result{}, got)
			})
		}
	}
}

func TestSolve_ProfitOverflow(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		prices     []int
		wantErr    error
		wantProfit int
		wantCuts   []int
	}{
		{
			name:    "two halves exceed max int",
			length:  2,
			prices:  []int{math.MaxInt/2 + 1, 0},
			wantErr: ErrProfitOverflow,
		},
		{
			name:    "many small segments exceed max int",
			length:  4,
			prices:  []int{math.MaxInt / 3, 0, 0, 0},
			wantErr: ErrProfitOverflow,
		},
		{
			name:       "max int as a single segment fits",
			length:     2,
			prices:     []int{0, math.MaxInt},
			wantProfit: math.MaxInt,
			wantCuts:   []int{2},
		},
		{
			name:       "sum just below max int fits",
			length:     2,
			prices:     []int{math.MaxInt / 2, 0},
			wantProfit: math.MaxInt - 1,
			wantCuts:   []int{1, 1},
		},
	}

	for _, tt := range tests {
		for name, s := range solvers {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				got, err := s.Solve(tt.length, tt.prices)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.Equal(t, Result{}, got)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.wantProfit, got.MaxProfit)
				assert.Equal(t, tt.wantCuts, got.Cuts)
			})
		}
	}
}

func TestMemo_LinearMemory(t *testing.T) {
	const length = 3000
	prices := make([]int, length)
	for i := range prices {
		prices[i] = 1
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	res, err := Memo{}.Solve(length, prices)

	runtime.ReadMemStats(&after)
	require.NoError(t, err)
	assert.Len(t, res.Cuts, length)

	// Storing a cut list per sub-length would need about length²/2 ints (~36 MB here).
	allocated := after.TotalAlloc - before.TotalAlloc
	assert.Less(t, allocated, uint64(4<<20), "memo allocated %d bytes", allocated)
}

func TestSolve_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		length := r.Intn(12)
		prices := randomPrices(r, length+r.Intn(3))

		memo, err := Memo{}.Solve(length, prices)
		require.NoError(t, err)
		table, err := Table{}.Solve(length, prices)
		require.NoError(t, err)

		want := bruteForce(length, prices)
		for _, res := range []Result{memo, table} {
			assert.Equal(t, want, res.MaxProfit, "length=%d prices=%v", length, prices)
			assert.Equal(t, length, sum(res.Cuts))
			assert.Equal(t, max(0, len(res.Cuts)-1), res.NumberOfCuts)
			if length == 0 {
				assert.Empty(t, res.Cuts)
			}

			profit := 0
			for _, c := range res.Cuts {
				assert.Positive(t, c)
				profit += prices[c-1]
			}
			assert.Equal(t, res.MaxProfit, profit, "cuts must realise the reported profit")
		}

		// Both scans settle on the smallest first cut among ties.
		assert.Equal(t, memo.Cuts, table.Cuts, "length=%d prices=%v", length, prices)
	}
}

func TestSolve_Monotonic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	prices := randomPrices(r, 40)

	for name, s := range solvers {
		t.Run(name, func(t *testing.T) {
			prev := 0
			for length := 0; length <= len(prices); length++ {
				res, err := s.Solve(length, prices[:length])
				require.NoError(t, err)
				assert.GreaterOrEqual(t, res.MaxProfit, prev, "length=%d", length)
				prev = res.MaxProfit
			}
		})
	}
}

func TestSolve_DoesNotMutatePrices(t *testing.T) {
	prices := []int{2, 5, 7, 8, 10}
	orig := append([]int(nil), prices...)

	for _, s := range solvers {
		_, err := s.Solve(len(prices), prices)
		require.NoError(t, err)
	}
	assert.Equal(t, orig, prices)
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Strategy
		wantErr bool
	}{
		{name: "empty defaults to table", in: "", want: StrategyTable},
		{name: "table", in: "table", want: StrategyTable},
		{name: "memo", in: "memo", want: StrategyMemo},
		{name: "unknown", in: "greedy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSolver(t *testing.T) {
	s, err := NewSolver(StrategyMemo)
	require.NoError(t, err)
	assert.IsType(t, Memo{}, s)

	s, err = NewSolver(StrategyTable)
	require.NoError(t, err)
	assert.IsType(t, Table{}, s)

	_, err = NewSolver("other")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestCompare(t *testing.T) {
	c, err := Compare(5, []int{2, 5, 7, 8, 10})
	require.NoError(t, err)
	assert.True(t, c.Consistent)
	assert.True(t, c.SameCuts)
	assert.Equal(t, 12, c.Memo.MaxProfit)
	assert.Equal(t, 12, c.Table.MaxProfit)

	_, err = Compare(4, []int{1, 2})
	assert.ErrorIs(t, err, ErrInsufficientPriceData)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(0, nil))
	assert.NoError(t, Validate(2, []int{0, 0}))
	assert.ErrorIs(t, Validate(-5, nil), ErrInvalidLength)
	assert.ErrorIs(t, Validate(3, []int{1, 2}), ErrInsufficientPriceData)
	assert.ErrorIs(t, Validate(2, []int{1, -1}), ErrInvalidPrice)
}

// Benchmarks

func benchmarkSolver(b *testing.B, s Solver, length int) {
	prices := randomPrices(rand.New(rand.NewSource(1)), length)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(length, prices); err != nil {
			b.Fatalf("Solve() error = %v", err)
		}
	}
}

func BenchmarkMemo_500(b *testing.B)  { benchmarkSolver(b, Memo{}, 500) }
func BenchmarkTable_500(b *testing.B) { benchmarkSolver(b, Table{}, 500) }

func BenchmarkMemo_10000(b *testing.B)  { benchmarkSolver(b, Memo{}, 10_000) }
func BenchmarkTable_10000(b *testing.B) { benchmarkSolver(b, Table{}, 10_000) }
