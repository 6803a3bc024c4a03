package count

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/monotone/exact"
)

// Brute-force strategy: enumerate every length-l sequence over 1..n and
// classify each one with the exported predicates. This is the ground truth
// the other strategies are checked against, and it is deliberately the most
// literal implementation possible — no shortcuts that could share a bug with
// the reducer or the closed form.

// guardStates computes the total state count n^l and enforces the
// practicality limit unless the caller opted out.
//
// Contracts:
//   - n ≥ 1, l ≥ 1 (validated by the public entry points).
//
// Errors:
//   - ErrIntractable (wrapped with the offending state count) when n^l
//     exceeds o.bruteForceLimit and o.unbounded is false.
//
// Complexity: one big-int exponentiation; O(l) multiplications.
func guardStates(n, l int, o Options) (*big.Int, error) {
	states, err := exact.Pow(n, l)
	if err != nil {
		return nil, err
	}

	if o.unbounded {
		return states, nil
	}
	if states.Cmp(big.NewInt(o.bruteForceLimit)) > 0 {
		return nil, fmt.Errorf("%d^%d = %s states, limit %d: %w",
			n, l, states.String(), o.bruteForceLimit, ErrIntractable)
	}

	return states, nil
}

// enumerate visits all n^l sequences over the alphabet 1..n in odometer
// order: the rightmost position varies fastest, so the walk goes
// [1,1,...,1], [1,1,...,2], ..., [n,n,...,n].
//
// The slice passed to visit is a single reused buffer; visit must inspect
// it synchronously and never retain it.
//
// Complexity: Θ(n^l) visits; amortized O(1) odometer steps per visit;
// O(l) space.
func enumerate(n, l int, visit func(seq []int)) {
	seq := make([]int, l)
	for i := range seq {
		seq[i] = 1
	}

	for {
		visit(seq)

		// Advance the odometer: carry over every maxed-out position.
		i := l - 1
		for i >= 0 && seq[i] == n {
			seq[i] = 1
			i--
		}
		if i < 0 {
			return // wrapped past [n,n,...,n]; enumeration complete
		}
		seq[i]++
	}
}

// bruteCount enumerates the full sequence space and counts the sequences
// accepted by keep. The accumulator is an int64: the state guard admits at
// most bruteForceLimit states, and even an unbounded run cannot complete
// 2^63 visits, so the count cannot overflow before the enumeration itself
// becomes impossible. The result is still returned as *big.Int to keep the
// strategy surfaces identical.
//
// Errors: ErrIntractable via guardStates.
//
// Complexity: Θ(n^l · l) time, O(l) space.
func bruteCount(n, l int, o Options, keep func(seq []int) bool) (*big.Int, error) {
	if _, err := guardStates(n, l, o); err != nil {
		return nil, err
	}

	var kept int64
	enumerate(n, l, func(seq []int) {
		if keep(seq) {
			kept++
		}
	})

	return big.NewInt(kept), nil
}
