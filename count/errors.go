// SPDX-License-Identifier: MIT
// Package count: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the count
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package count

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "count: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// unknown strategy -> domain -> intractability.
// Option mistakes outrank input mistakes, and both outrank resource guards.

var (
	// ErrDomain is returned when n < 1 or l < 1. Counting is defined only for
	// a non-empty alphabet and a positive length; the boundary check runs
	// before any computation, so no partial results ever escape.
	ErrDomain = errors.New("count: n and l must be at least 1")

	// ErrIntractable is returned when the brute-force strategy is asked to
	// enumerate more states than its configured limit allows. The caller must
	// opt in via WithUnboundedBruteForce (or raise the limit) to proceed.
	ErrIntractable = errors.New("count: brute force exceeds state limit")

	// ErrUnknownStrategy is returned when options carry a Strategy value
	// outside the declared enum.
	ErrUnknownStrategy = errors.New("count: unknown strategy")

	// ErrMismatch is returned by the CrossCheck oracle when two strategies
	// disagree on the same input. It is always wrapped with the offending
	// cell and both values; match with errors.Is.
	ErrMismatch = errors.New("count: strategies disagree")
)
