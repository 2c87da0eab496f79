package rodcut

// Table solves rod cutting by bottom-up tabulation.
//
// Candidate first cuts for each length are scanned from longest to shortest
// with a non-strict comparison, so among equally profitable choices the
// shortest first cut, examined last, is the one recorded.
type Table struct{}

// Solve implements Solver.
func (Table) Solve(length int, prices []int) (Result, error) {
	if err := Validate(length, prices); err != nil {
		return Result{}, err
	}

	bestProfit := make([]int, length+1)
	firstCut := make([]int, length+1)

	for j := 1; j <= length; j++ {
		best := -1
		for i := j; i >= 1; i-- {
			profit, err := addProfit(prices[i-1], bestProfit[j-i], length)
			if err != nil {
				return Result{}, err
			}
			if profit >= best {
				best = profit
				firstCut[j] = i
			}
		}
		bestProfit[j] = best
	}

	cuts := make([]int, 0)
	for rem := length; rem > 0; rem -= firstCut[rem] {
		cuts = append(cuts, firstCut[rem])
	}
	// Reconstruction walks from the right end of the rod.
	for l, r := 0, len(cuts)-1; l < r; l, r = l+1, r-1 {
		cuts[l], cuts[r] = cuts[r], cuts[l]
	}

	return newResult(bestProfit[length], cuts), nil
}
