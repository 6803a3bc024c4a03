// Package exact provides the arbitrary-precision integer helpers the
// counting strategies are built on: integer power, binomial coefficient,
// triangular number, and division that is known to be exact.
//
// Everything returns a fresh *big.Int; inputs are never aliased or
// mutated. Invalid arguments are reported through package sentinels
// (ErrNegativeExponent, ErrNegativeArgument, ErrDivisionByZero,
// ErrInexactDivision) matched with errors.Is — no panics on user input.
//
// Two conventions matter to callers:
//
//   - Binomial(a, b) returns exact zero for b > a. The zero extension is
//     an explicit guarded case in this package, not an assumption about
//     math/big behavior, because boundary terms of the closed-form
//     counter rely on it.
//   - QuoExact(x, y) fails with ErrInexactDivision when y does not divide
//     x. Callers use it where divisibility is a structural invariant, so
//     a nonzero remainder means a broken derivation, not bad input.
//
// Values grow fast here: 26^10 already exceeds 10^14 and n^l keeps
// climbing super-exponentially, which is why nothing in this package
// touches fixed-width arithmetic on the result path.
package exact
