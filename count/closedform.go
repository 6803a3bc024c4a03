package count

import (
	"math/big"

	"github.com/katalvlaran/monotone/exact"
)

// Closed-form strategy: A(n,l) evaluated directly, without filling the DP
// grid. Unrolling the reducer's prefix sums twice pulls the length out of
// the iteration entirely:
//
//	A(n, l) = Σ_{i=0}^{n−1} G(n−i) · λ_i     for l ≥ 3,
//
// where G(m) = m(m+1)/2 is the triangular number (A's own value at l=2) and
// the coefficient row is λ_i = C(i+l−3, i). The row satisfies the Pascal
// recurrence λ_i^l = λ_i^{l−1} + λ_{i−1}^l, which is what the reducer's
// repeated prefix sums compute level by level; the closed form just jumps to
// the final row. Lengths 1 and 2 are the seed cases: A(n,1) = n and
// A(n,2) = G(n).

// lambdaRow materializes the coefficient row λ_0..λ_{width−1} for a fixed
// length l, rolling each binomial into the next:
//
//	λ_0 = 1
//	λ_i = λ_{i−1} · (i + l − 3) / i
//
// The division is exact by construction (it is the usual factorial
// cancellation inside C(i+l−3, i)); exact.QuoExact turns that argument into
// a checked invariant rather than trusting it silently.
//
// Contracts:
//   - l ≥ 3, width ≥ 1 (callers dispatch the short lengths beforehand).
//
// Errors: exact.ErrInexactDivision would indicate a broken recurrence; it is
// forwarded, never swallowed.
//
// Complexity: O(width) big-int multiply/divide steps.
func lambdaRow(l, width int) ([]*big.Int, error) {
	row := make([]*big.Int, width)
	row[0] = big.NewInt(1)

	prod := new(big.Int)
	for i := 1; i < width; i++ {
		prod.Mul(row[i-1], big.NewInt(int64(i+l-3)))
		q, err := exact.QuoExact(prod, big.NewInt(int64(i)))
		if err != nil {
			return nil, err
		}
		row[i] = q
	}

	return row, nil
}

// closedFormNonDecreasing evaluates A(n,l) via the binomial identity above.
//
// Contracts:
//   - n ≥ 1, l ≥ 1 (validated by the public entry points).
//
// Complexity: O(n) big-int operations; the length l enters only through
// operand size, never through iteration count.
func closedFormNonDecreasing(n, l int) (*big.Int, error) {
	switch l {
	case 1:
		return big.NewInt(int64(n)), nil
	case 2:
		return exact.Triangular(n)
	}

	lambda, err := lambdaRow(l, n)
	if err != nil {
		return nil, err
	}

	total := new(big.Int)
	term := new(big.Int)
	for i := 0; i < n; i++ {
		tri, terr := exact.Triangular(n - i)
		if terr != nil {
			return nil, terr
		}
		total.Add(total, term.Mul(tri, lambda[i]))
	}

	return total, nil
}
