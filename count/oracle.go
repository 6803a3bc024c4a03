package count

import (
	"context"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/monotone/exact"
)

// Consistency oracle: the strategies are only trustworthy together. Each one
// can be wrong alone; three independent derivations agreeing on a whole grid
// of inputs is the package's primary correctness mechanism, so the oracle is
// a first-class operation rather than a test helper.

// CrossCheck replays every cell of the grid [1..maxN]×[1..maxL] through all
// strategies and reports the first disagreement. Per cell it verifies:
//
//  1. NonMonotone agrees across brute force, reducer and closed form.
//  2. NonDecreasing agrees across brute force, reducer and closed form.
//  3. The brute-forced NonIncreasing count equals NonDecreasing (the
//     reversal symmetry, enumerated rather than assumed).
//  4. Totality: the enumerated classes partition the sequence space,
//     B + A_up + A_down − n == n^l (constants sit in both monotone classes).
//
// Cells are independent, so they run in parallel under an errgroup; the
// first failing cell cancels the rest via ctx. Options are forwarded to the
// per-cell evaluations (the strategy itself is overridden per check, so
// passing WithStrategy here has no effect; the brute-force guard options do).
//
// Contracts:
//   - maxN ≥ 1, maxL ≥ 1.
//   - The grid must be small enough for brute force under the configured
//     limit, or the guard fires and surfaces as the cell's error.
//
// Errors: ErrDomain, ErrUnknownStrategy, ErrIntractable (from a cell), and
// ErrMismatch wrapped with the offending cell and both values.
//
// Complexity: dominated by the three brute-force enumerations per cell,
// Θ(Σ n^l) over the grid.
func CrossCheck(ctx context.Context, maxN, maxL int, opts ...Option) error {
	if _, err := gatherOptions(opts...); err != nil {
		return err
	}
	if maxN < 1 || maxL < 1 {
		return ErrDomain
	}

	g, ctx := errgroup.WithContext(ctx)
	for n := 1; n <= maxN; n++ {
		for l := 1; l <= maxL; l++ {
			n, l := n, l
			g.Go(func() error {
				// Skip queued cells once a peer failed or the caller gave up.
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				return verifyCell(n, l, opts)
			})
		}
	}

	return g.Wait()
}

// verifyCell runs every per-cell check listed on CrossCheck for one (n, l).
func verifyCell(n, l int, opts []Option) error {
	// Per-strategy option lists are rebuilt here instead of appending to the
	// shared opts slice: cells run concurrently and append could race on a
	// shared backing array.
	forced := func(s Strategy) []Option {
		out := make([]Option, 0, len(opts)+1)
		out = append(out, opts...)

		return append(out, WithStrategy(s))
	}

	eval := func(f func(int, int, ...Option) (*big.Int, error), s Strategy) (*big.Int, error) {
		v, err := f(n, l, forced(s)...)
		if err != nil {
			return nil, fmt.Errorf("cell (n=%d, l=%d) %s: %w", n, l, s, err)
		}

		return v, nil
	}

	bruteB, err := eval(NonMonotone, BruteForce)
	if err != nil {
		return err
	}
	reducedB, err := eval(NonMonotone, Reducer)
	if err != nil {
		return err
	}
	closedB, err := eval(NonMonotone, ClosedForm)
	if err != nil {
		return err
	}
	if bruteB.Cmp(reducedB) != 0 {
		return mismatch(n, l, "non-monotone", BruteForce, bruteB, Reducer, reducedB)
	}
	if bruteB.Cmp(closedB) != 0 {
		return mismatch(n, l, "non-monotone", BruteForce, bruteB, ClosedForm, closedB)
	}

	bruteUp, err := eval(NonDecreasing, BruteForce)
	if err != nil {
		return err
	}
	reducedA, err := eval(NonDecreasing, Reducer)
	if err != nil {
		return err
	}
	closedA, err := eval(NonDecreasing, ClosedForm)
	if err != nil {
		return err
	}
	if bruteUp.Cmp(reducedA) != 0 {
		return mismatch(n, l, "non-decreasing", BruteForce, bruteUp, Reducer, reducedA)
	}
	if bruteUp.Cmp(closedA) != 0 {
		return mismatch(n, l, "non-decreasing", BruteForce, bruteUp, ClosedForm, closedA)
	}

	bruteDown, err := eval(NonIncreasing, BruteForce)
	if err != nil {
		return err
	}
	if bruteDown.Cmp(bruteUp) != 0 {
		return fmt.Errorf("cell (n=%d, l=%d): non-increasing %s vs non-decreasing %s: %w",
			n, l, bruteDown, bruteUp, ErrMismatch)
	}

	// Totality over the raw enumeration counts.
	space, err := exact.Pow(n, l)
	if err != nil {
		return err
	}
	sum := new(big.Int).Add(bruteB, bruteUp)
	sum.Add(sum, bruteDown)
	sum.Sub(sum, big.NewInt(int64(n)))
	if sum.Cmp(space) != 0 {
		return fmt.Errorf("cell (n=%d, l=%d): classes sum to %s, space is %s: %w",
			n, l, sum, space, ErrMismatch)
	}

	return nil
}

// mismatch wraps ErrMismatch with the cell, the quantity and both values.
func mismatch(n, l int, what string, s1 Strategy, v1 *big.Int, s2 Strategy, v2 *big.Int) error {
	return fmt.Errorf("cell (n=%d, l=%d) %s: %s=%s, %s=%s: %w",
		n, l, what, s1, v1, s2, v2, ErrMismatch)
}
