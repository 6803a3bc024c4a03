// SPDX-License-Identifier: MIT

package count

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose the unexported strategy kernels and the resolved options state
//     to count_test ONLY, without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds; it is in
//     package count, so it can reach private symbols.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields; tests catch drift.

import "math/big"

// LambdaRow_TestOnly forwards to the private lambdaRow kernel so tests can
// compare the rolled coefficients against independent binomials.
func LambdaRow_TestOnly(l, width int) ([]*big.Int, error) {
	return lambdaRow(l, width)
}

// ReduceNonDecreasing_TestOnly forwards to the private DP kernel.
func ReduceNonDecreasing_TestOnly(n, l int) *big.Int {
	return reduceNonDecreasing(n, l)
}

// Enumerate_TestOnly forwards to the private odometer walker.
func Enumerate_TestOnly(n, l int, visit func(seq []int)) {
	enumerate(n, l, visit)
}

// Panic message export to avoid "magic strings" in tests.
const PanicBruteForceLimit_TestOnly = panicBruteForceLimit

// OptionsSnapshot is a stable, test-facing copy of the resolved Options.
type OptionsSnapshot struct {
	Strategy        Strategy
	BruteForceLimit int64
	Unbounded       bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the public entry
// points do and returns a read-only snapshot plus the validation error.
func GatherOptionsSnapshot_TestOnly(opts ...Option) (OptionsSnapshot, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return OptionsSnapshot{}, err
	}

	return OptionsSnapshot{
		Strategy:        o.strategy,
		BruteForceLimit: o.bruteForceLimit,
		Unbounded:       o.unbounded,
	}, nil
}
