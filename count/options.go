// SPDX-License-Identifier: MIT

// Package count: functional configuration for the counting strategies.
// This file defines:
//   - Strategy (explicit enum; no "auto" value),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values — programmer error),
//   - gatherOptions helper (internal) that resolves and validates options.

package count

import "fmt"

// Strategy selects which of the three independent evaluation paths computes
// a count. Strategies are interchangeable on results and wildly different in
// cost; see the package documentation for complexities.
type Strategy int

const (
	// ClosedForm evaluates A(n,l) as a sum of n binomial-weighted triangular
	// terms. Fastest; the default.
	ClosedForm Strategy = iota

	// Reducer evaluates A(n,l) by a bottom-up dynamic program over sequence
	// length. Independent of the closed form; O(n·l) big-int additions.
	Reducer

	// BruteForce enumerates all n^l sequences and classifies each one.
	// Ground truth for small inputs; guarded by the state limit.
	BruteForce
)

// strategyNames maps Strategy values to their stable CLI/rendering names.
var strategyNames = map[Strategy]string{
	ClosedForm: "closed",
	Reducer:    "reducer",
	BruteForce: "brute",
}

// String returns the stable lowercase name of the strategy
// ("closed", "reducer", "brute"), or "unknown(v)" outside the enum.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("unknown(%d)", int(s))
}

// ParseStrategy maps a stable name back onto its Strategy value.
// Returns ErrUnknownStrategy for anything else; matching is exact
// (callers normalize case/whitespace at their own boundary).
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return 0, ErrUnknownStrategy
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStrategy is the strategy used when none is requested.
	DefaultStrategy = ClosedForm

	// DefaultBruteForceLimit caps the number of states (n^l) the brute-force
	// strategy will enumerate without an explicit override. Ten million
	// states keep a test-suite run comfortably under a second on commodity
	// hardware while still covering every scenario the oracle needs.
	DefaultBruteForceLimit int64 = 10_000_000
)

// Internal panic message (no magic strings).
const panicBruteForceLimit = "count: WithBruteForceLimit: limit must be positive"

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	strategy        Strategy
	bruteForceLimit int64
	unbounded       bool
}

// WithStrategy selects the evaluation strategy.
// The value is validated when options are resolved, not here, so that a bad
// strategy surfaces as ErrUnknownStrategy on the public API rather than a
// panic inside an option list.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// WithBruteForceLimit replaces the default cap on the number of states the
// brute-force strategy may enumerate. Panics if limit is not positive
// (use WithUnboundedBruteForce to remove the cap, never a fake "big" limit).
//
// Complexity: O(1).
func WithBruteForceLimit(limit int64) Option {
	if limit <= 0 {
		panic(panicBruteForceLimit)
	}

	return func(o *Options) { o.bruteForceLimit = limit }
}

// WithUnboundedBruteForce removes the state-limit guard entirely. The caller
// accepts that enumeration of n^l states may run for an impractical time;
// nothing else about the computation changes.
func WithUnboundedBruteForce() Option {
	return func(o *Options) { o.unbounded = true }
}

// DefaultOptions returns the documented defaults (single source of truth):
//
//	– strategy        = ClosedForm
//	– bruteForceLimit = DefaultBruteForceLimit
//	– unbounded       = false
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		strategy:        DefaultStrategy,
		bruteForceLimit: DefaultBruteForceLimit,
		unbounded:       false,
	}
}

// gatherOptions applies user-provided setters on top of defaults and
// validates the resolved state. This is the canonical internal entry for
// every public operation.
//
// Returns ErrUnknownStrategy when the resolved strategy is outside the enum.
//
// Complexity: O(k) for k = len(user).
func gatherOptions(user ...Option) (Options, error) {
	o := DefaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	if _, ok := strategyNames[o.strategy]; !ok {
		return Options{}, ErrUnknownStrategy
	}

	return o, nil
}
