package rodcut

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrInvalidLength is returned when the requested rod length is negative.
	ErrInvalidLength = errors.New("invalid rod length")
	// ErrInsufficientPriceData is returned when the price table is shorter than the rod.
	ErrInsufficientPriceData = errors.New("insufficient price data")
	// ErrInvalidPrice is returned when a consulted price is negative.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrProfitOverflow is returned when an achievable profit does not fit in an int.
	ErrProfitOverflow = errors.New("profit overflows int")
	// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Result is the outcome of a single solve.
// Cuts lists segment lengths left to right and NumberOfCuts counts the cut
// points between them, not the segments.
type Result struct {
	MaxProfit    int
	Cuts         []int
	NumberOfCuts int
}

// Solver computes the most profitable way to cut a rod.
type Solver interface {
	Solve(length int, prices []int) (Result, error)
}

// Strategy names a Solver implementation.
type Strategy string

const (
	StrategyMemo  Strategy = "memo"
	StrategyTable Strategy = "table"
)

// ParseStrategy converts a name into a Strategy. An empty name selects the table solver.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", StrategyTable:
		return StrategyTable, nil
	case StrategyMemo:
		return StrategyMemo, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// NewSolver returns the Solver for the given strategy.
func NewSolver(s Strategy) (Solver, error) {
	switch s {
	case StrategyMemo:
		return Memo{}, nil
	case StrategyTable:
		return Table{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Validate checks the inputs shared by every solver.
// Only prices[0:length] are consulted, so entries past the rod length are ignored.
func Validate(length int, prices []int) error {
	if length < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if len(prices) < length {
		return fmt.Errorf("%w: have %d prices, need %d", ErrInsufficientPriceData, len(prices), length)
	}
	for i, p := range prices[:length] {
		if p < 0 {
			return fmt.Errorf("%w: price for length %d is %d", ErrInvalidPrice, i+1, p)
		}
	}
	return nil
}

// addProfit adds a segment price to a sub-rod profit.
// Both operands are non-negative, so only overflow past math.MaxInt is possible.
func addProfit(price, rest, length int) (int, error) {
	if price > math.MaxInt-rest {
		return 0, fmt.Errorf("%w: rod length %d", ErrProfitOverflow, length)
	}
	return price + rest, nil
}

func newResult(profit int, cuts []int) Result {
	if cuts == nil {
		cuts = []int{}
	}
	n := 0
	if len(cuts) > 0 {
		n = len(cuts) - 1
	}
	return Result{MaxProfit: profit, Cuts: cuts, NumberOfCuts: n}
}

// Comparison holds the results of running both strategies on one input.
type Comparison struct {
	Memo  Result
	Table Result
	// Consistent reports whether both strategies found the same profit.
	Consistent bool
	// SameCuts reports whether both strategies reconstructed the same cut sequence.
	SameCuts bool
}

// Compare solves the input with both strategies.
// A profit mismatch is reported through Consistent rather than reconciled.
func Compare(length int, prices []int) (Comparison, error) {
	m, err := Memo{}.Solve(length, prices)
	if err != nil {
		return Comparison{}, err
	}
	t, err := Table{}.Solve(length, prices)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		Memo:       m,
		Table:      t,
		Consistent: m.MaxProfit == t.MaxProfit,
		SameCuts:   slices.Equal(m.Cuts, t.Cuts),
	}, nil
}
