// Package count computes exact counts of monotone and non-monotone
// sequences over an ordered alphabet, using arbitrary-precision integers.
//
// 🚀 What does it count?
//
//	Fix an alphabet of n totally ordered symbols (think 1..n) and a
//	length l. Among all n^l sequences, some are non-decreasing, some are
//	non-increasing, and the rest wander up AND down at least once.
//	count answers, exactly:
//	  • NonDecreasing(n, l) — sequences that never step down (A(n,l))
//	  • NonIncreasing(n, l) — sequences that never step up (equal by symmetry)
//	  • NonMonotone(n, l)   — sequences that are neither (B(n,l))
//	via the inclusion–exclusion identity
//	  B(n,l) = n^l − 2·A(n,l) + n
//	(the n constant sequences are subtracted twice, so they are added back).
//
// ✨ Key features:
//   - three independent strategies: ClosedForm (default, linear in n),
//     Reducer (O(n·l) dynamic programming), BruteForce (ground truth,
//     exponential, guarded by a state limit)
//   - every result is an exact *big.Int; no overflow at any input size
//   - exported predicates IsNonDecreasing / IsNonIncreasing / IsMonotone
//   - CrossCheck oracle that replays a whole (n, l) grid through all
//     strategies and reports the first disagreement
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/monotone/count"
//
//	// 11596390 of the 11881376 five-letter words wander up and down.
//	b, err := count.NonMonotone(26, 5)
//
//	// Force a specific strategy / lift the brute-force guard:
//	a, err := count.NonDecreasing(26, 5, count.WithStrategy(count.Reducer))
//	g, err := count.NonMonotone(4, 12,
//	  count.WithStrategy(count.BruteForce),
//	  count.WithUnboundedBruteForce())
//
// Performance:
//
//   - ClosedForm: O(n) big-int multiply/divide steps
//   - Reducer:    O(n·l) big-int additions, O(n) working cells
//   - BruteForce: Θ(n^l · l); refuses above the configured state limit
//     unless explicitly overridden
//
// Errors are package-level sentinels (ErrDomain, ErrIntractable,
// ErrUnknownStrategy, ErrMismatch) matched via errors.Is.
package count
