package count

import "math/big"

// Reducer strategy: a bottom-up dynamic program for A(n,l), the number of
// non-decreasing length-l sequences over 1..n.
//
// Recurrence (condition on the maximum symbol actually allowed):
//
//	A(m, 1) = m                       — one sequence per symbol
//	A(m, l) = Σ_{k=1}^{m} A(k, l−1)   — pick the last symbol k ≤ m; the
//	                                    prefix is any non-decreasing
//	                                    sequence over 1..k
//
// The fill iterates level by level from l=1 upward, so the working state is
// a single row of n cells and there is no recursion depth to worry about.
// Each level is one running prefix sum over the previous row.

// reduceNonDecreasing evaluates A(n,l) bottom-up.
//
// Contracts:
//   - n ≥ 1, l ≥ 1 (validated by the public entry points).
//
// Complexity: O(n·l) big-int additions, O(n) live cells.
func reduceNonDecreasing(n, l int) *big.Int {
	// row[k-1] holds A(k, level) for the level filled so far.
	row := make([]*big.Int, n)
	for k := 1; k <= n; k++ {
		row[k-1] = big.NewInt(int64(k)) // A(k,1) = k
	}

	run := new(big.Int)
	for level := 2; level <= l; level++ {
		// In-place prefix sum: run accumulates the previous level's values
		// left to right while fresh cells receive the new level's.
		run.SetInt64(0)
		for k := 0; k < n; k++ {
			run.Add(run, row[k])
			row[k] = new(big.Int).Set(run)
		}
	}

	return row[n-1]
}
