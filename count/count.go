// Package count - unified dispatchers for the counting strategies.
//
// This file provides the canonical entry points:
//
//   - NonMonotone:   B(n,l), sequences that wander up and down at least once.
//   - NonDecreasing: A(n,l), sequences that never step down.
//   - NonIncreasing: sequences that never step up (equals A(n,l) by the
//     reversal bijection; the brute-force path re-derives it independently).
//
// Design principles:
//   - Deterministic: no global state, no randomness, pure functions of (n,l).
//   - Strict sentinels: only errors from errors.go; fmt.Errorf wrapping only
//     where cell context is essential (intractability, oracle mismatch).
//   - Exactness: results are *big.Int end to end; no fixed-width value ever
//     sits on the result path.
package count

import (
	"math/big"

	"github.com/katalvlaran/monotone/exact"
)

// NonMonotone computes B(n,l): the number of length-l sequences over an
// ordered alphabet of n symbols that are neither non-decreasing nor
// non-increasing.
//
// The reducer and closed-form strategies derive it from A(n,l) by
// inclusion–exclusion,
//
//	B(n,l) = n^l − 2·A(n,l) + n,
//
// adding the n constant sequences back because both monotone classes contain
// them. The brute-force strategy never touches the identity: it enumerates
// and tests every sequence with the exported predicates, which is exactly
// what makes it worth keeping as ground truth.
//
// Contracts:
//   - n ≥ 1 and l ≥ 1, checked before any computation.
//
// Errors: ErrUnknownStrategy, ErrDomain, ErrIntractable (brute force only;
// see WithBruteForceLimit / WithUnboundedBruteForce).
//
// Complexity: per strategy — ClosedForm O(n), Reducer O(n·l), BruteForce
// Θ(n^l · l) big-int/word operations.
func NonMonotone(n, l int, opts ...Option) (*big.Int, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if n < 1 || l < 1 {
		return nil, ErrDomain
	}

	switch o.strategy {
	case BruteForce:
		// Conjunction of negated predicates, not a negated disjunction:
		// "neither monotone class" stays literally visible in the test.
		return bruteCount(n, l, o, func(seq []int) bool {
			return !IsNonDecreasing(seq) && !IsNonIncreasing(seq)
		})

	case Reducer:
		return composeNonMonotone(n, l, reduceNonDecreasing(n, l))

	case ClosedForm:
		a, cerr := closedFormNonDecreasing(n, l)
		if cerr != nil {
			return nil, cerr
		}

		return composeNonMonotone(n, l, a)

	default:
		// Unreachable: gatherOptions validated the strategy already.
		return nil, ErrUnknownStrategy
	}
}

// NonDecreasing computes A(n,l): the number of length-l sequences over an
// ordered alphabet of n symbols that never step down.
//
// Contracts:
//   - n ≥ 1 and l ≥ 1, checked before any computation.
//
// Errors: ErrUnknownStrategy, ErrDomain, ErrIntractable (brute force only).
//
// Complexity: per strategy, as documented on NonMonotone.
func NonDecreasing(n, l int, opts ...Option) (*big.Int, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if n < 1 || l < 1 {
		return nil, ErrDomain
	}

	switch o.strategy {
	case BruteForce:
		return bruteCount(n, l, o, IsNonDecreasing)
	case Reducer:
		return reduceNonDecreasing(n, l), nil
	case ClosedForm:
		return closedFormNonDecreasing(n, l)
	default:
		return nil, ErrUnknownStrategy
	}
}

// NonIncreasing computes the number of length-l sequences over an ordered
// alphabet of n symbols that never step up.
//
// Reversing a sequence is a bijection between the non-increasing and
// non-decreasing classes, so the reducer and closed-form strategies reuse
// A(n,l) outright. The brute-force strategy deliberately enumerates with
// IsNonIncreasing instead: the symmetry stays a claim the oracle can test,
// not a definition it must assume.
//
// Contracts:
//   - n ≥ 1 and l ≥ 1, checked before any computation.
//
// Errors: ErrUnknownStrategy, ErrDomain, ErrIntractable (brute force only).
func NonIncreasing(n, l int, opts ...Option) (*big.Int, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if n < 1 || l < 1 {
		return nil, ErrDomain
	}

	switch o.strategy {
	case BruteForce:
		return bruteCount(n, l, o, IsNonIncreasing)
	case Reducer:
		return reduceNonDecreasing(n, l), nil
	case ClosedForm:
		return closedFormNonDecreasing(n, l)
	default:
		return nil, ErrUnknownStrategy
	}
}

// composeNonMonotone applies the inclusion–exclusion identity
// B = n^l − 2·A + n to an already-computed A(n,l).
//
// The short lengths need no special case: for l=1 the identity collapses to
// n − 2n + n = 0 and for l=2 to n² − n(n+1) + n = 0, matching the fact that
// every sequence shorter than three elements is monotone.
//
// Complexity: one exponentiation, one shift, two additions.
func composeNonMonotone(n, l int, a *big.Int) (*big.Int, error) {
	total, err := exact.Pow(n, l)
	if err != nil {
		return nil, err
	}

	total.Sub(total, new(big.Int).Lsh(a, 1)) // subtract both monotone classes
	total.Add(total, big.NewInt(int64(n)))   // constants were subtracted twice

	return total, nil
}
