package exact

import (
	"errors"
	"math/big"
)

// Sentinel errors for exact arithmetic. All helpers in this package return
// these (and only these) on invalid input; tests and callers match them
// via errors.Is.
var (
	// ErrNegativeExponent is returned by Pow when exp < 0.
	ErrNegativeExponent = errors.New("exact: negative exponent")

	// ErrNegativeArgument is returned by Binomial and Triangular when an
	// argument is below the function's domain.
	ErrNegativeArgument = errors.New("exact: negative argument")

	// ErrDivisionByZero is returned by QuoExact when the divisor is zero.
	ErrDivisionByZero = errors.New("exact: division by zero")

	// ErrInexactDivision is returned by QuoExact when the division leaves
	// a remainder. Seeing it means a caller's divisibility invariant broke.
	ErrInexactDivision = errors.New("exact: division is not exact")
)

// Pow returns base**exp as a fresh *big.Int.
//
// Contract:
//   - exp ≥ 0; negative exponents return ErrNegativeExponent.
//   - Pow(0, 0) == 1 (empty product).
//
// Complexity: O(M(b)·log exp) where M(b) is big-int multiplication cost
// at the operand bit size b.
func Pow(base, exp int) (*big.Int, error) {
	if exp < 0 {
		return nil, ErrNegativeExponent
	}

	b := big.NewInt(int64(base))
	e := big.NewInt(int64(exp))

	// Exp with a nil modulus performs plain integer exponentiation.
	return new(big.Int).Exp(b, e, nil), nil
}

// Binomial returns the binomial coefficient C(a, b) as a fresh *big.Int.
//
// Contract:
//   - a ≥ 0 and b ≥ 0; anything negative returns ErrNegativeArgument.
//   - b > a returns exact zero. The guard is deliberate and local: the
//     closed-form counter leans on this convention at boundary terms, so
//     it must hold here regardless of what math/big would do.
//
// Complexity: O(min(b, a−b)) big-int multiplications.
func Binomial(a, b int) (*big.Int, error) {
	if a < 0 || b < 0 {
		return nil, ErrNegativeArgument
	}
	if b > a {
		// Zero extension: there are no b-subsets of an a-set when b > a.
		return new(big.Int), nil
	}

	return new(big.Int).Binomial(int64(a), int64(b)), nil
}

// Triangular returns the m-th triangular number m(m+1)/2 — equivalently,
// the count of non-decreasing length-2 sequences over an m-symbol
// alphabet.
//
// Contract:
//   - m ≥ 0; negative m returns ErrNegativeArgument.
//   - Triangular(0) == 0.
//
// The halving is exact by parity: one of m, m+1 is even.
//
// Complexity: one big-int multiplication and one shift.
func Triangular(m int) (*big.Int, error) {
	if m < 0 {
		return nil, ErrNegativeArgument
	}

	t := big.NewInt(int64(m))
	u := new(big.Int).Add(t, big.NewInt(1))
	t.Mul(t, u)

	return t.Rsh(t, 1), nil
}

// QuoExact returns x/y as a fresh *big.Int when y divides x exactly.
//
// Contract:
//   - y != 0, otherwise ErrDivisionByZero.
//   - y must divide x; a nonzero remainder returns ErrInexactDivision.
//
// Complexity: one big-int division.
func QuoExact(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 {
		return nil, ErrInexactDivision
	}

	return q, nil
}
