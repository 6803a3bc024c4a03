// Package monotone counts, exactly, the sequences over an ordered alphabet
// that are not monotone — neither entirely non-decreasing nor entirely
// non-increasing — using three independent strategies that must agree.
//
// 🚀 What is monotone?
//
//	A small, exact combinatorics library built around one question:
//	of the n^l sequences of length l over an n-symbol ordered alphabet,
//	how many are non-monotone?
//		• Brute force: enumerate all n^l tuples and classify each one
//		• Reducer: bottom-up dynamic programming over A(n,l), the count
//		  of non-decreasing sequences
//		• Closed form: A(n,l) as a binomial-coefficient sum, linear in l
//
// ✨ Why choose monotone?
//
//   - Exact forever – every result is an arbitrary-precision *big.Int;
//     no overflow, no float drift, at any n and l
//   - Self-checking – the three strategies cross-validate each other;
//     count.CrossCheck sweeps a whole (n,l) grid and reports the first
//     disagreement
//   - Pure Go core – the counting packages depend on math/big alone
//   - Honest about cost – brute force refuses intractable inputs unless
//     explicitly overridden
//
// Under the hood, everything is organized under the subpackages:
//
//	count/ — the three counting strategies, monotonicity predicates,
//	         and the cross-strategy consistency oracle
//	exact/ — arbitrary-precision helpers: power, binomial coefficient,
//	         triangular number, exact integer division
//
// plus the command-line front-end:
//
//	cmd/monotone/ — count, classify, verify and bench commands
//
// Quick ASCII example:
//
//	1 3 5 2   rises then falls  → non-monotone
//	5 3 3 2   never rises       → monotone (non-increasing)
//	1 1 1 1   constant          → monotone (both directions)
//
//	go get github.com/katalvlaran/monotone/count
package monotone
