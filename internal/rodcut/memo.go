package rodcut

// Memo solves rod cutting with a per-call memo keyed by remaining length.
//
// Sub-problems are filled in increasing order of length rather than by
// recursion, so stack depth stays constant regardless of rod length.
// For each length the first cuts are tried from 1 upward and only a strictly
// better profit replaces the current choice, so ties keep the smallest first cut.
type Memo struct{}

// memoEntry records the best profit for a remaining length and the first cut
// achieving it; the full cut list is the first cut followed by the entry for
// the remainder.
type memoEntry struct {
	profit   int
	firstCut int
}

// Solve implements Solver.
func (Memo) Solve(length int, prices []int) (Result, error) {
	if err := Validate(length, prices); err != nil {
		return Result{}, err
	}

	memo := make(map[int]memoEntry, length+1)
	memo[0] = memoEntry{}

	for n := 1; n <= length; n++ {
		best := memoEntry{}
		for i := 1; i <= n; i++ {
			profit, err := addProfit(prices[i-1], memo[n-i].profit, length)
			if err != nil {
				return Result{}, err
			}
			if best.firstCut == 0 || profit > best.profit {
				best = memoEntry{profit: profit, firstCut: i}
			}
		}
		memo[n] = best
	}

	cuts := make([]int, 0)
	for rem := length; rem > 0; rem -= memo[rem].firstCut {
		cuts = append(cuts, memo[rem].firstCut)
	}

	return newResult(memo[length].profit, cuts), nil
}
