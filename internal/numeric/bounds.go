// Package numeric supplies the host numeric parameters the evaluator is
// configured with — minint/maxint/minreal/maxreal and a string2real
// decoder — plus the checked arithmetic used to detect overflow exactly.
package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Bounds parameterizes the evaluator's arithmetic primops. Eval never
// hard-codes a numeric range: every overflow check goes through a Bounds
// value supplied by the caller.
type Bounds struct {
	MinInt  int64
	MaxInt  int64
	MinReal float64
	MaxReal float64

	// String2Real decodes a Real literal's decimal-string payload. Nil
	// means DefaultBounds' decoder (strconv.ParseFloat) is used.
	String2Real func(s string) (float64, error)
}

// DefaultBounds returns the classic tagged-fixnum range used by SML/NJ's
// native CPS back end: 31-bit signed integers, one bit reserved by the
// collector to distinguish a boxed pointer from an immediate integer. A
// full 64-bit range is available by constructing a Bounds value with
// math.MinInt64/MaxInt64 directly — DefaultBounds models the tagged
// runtime Appel's book describes, not "whatever the host word is".
func DefaultBounds() Bounds {
	return Bounds{
		MinInt:      -(1 << 30),
		MaxInt:      (1 << 30) - 1,
		MinReal:     -math.MaxFloat64,
		MaxReal:     math.MaxFloat64,
		String2Real: defaultString2Real,
	}
}

func defaultString2Real(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// DecodeReal applies the configured (or default) string2real decoder.
func (b Bounds) DecodeReal(s string) (float64, error) {
	if b.String2Real != nil {
		return b.String2Real(s)
	}
	return defaultString2Real(s)
}

// ErrOverflow is returned by the checked arithmetic helpers below when a
// mathematical result falls outside the configured integer bounds. It
// never escapes to a caller as a Go error in normal operation — the
// evaluator's arithmetic primops turn it into an object-language
// exception via do_raise(overflow_exn), per spec.md §4.5/§4.7.
var ErrOverflow = fmt.Errorf("integer overflow")

// CheckedAdd, CheckedSub, CheckedMul, and CheckedNeg compute the exact
// mathematical result in math/big (no host-width arithmetic is performed
// on the operands themselves, so there is no risk of the check itself
// overflowing) and report ErrOverflow if that result falls outside
// [b.MinInt, b.MaxInt].
//
// No arbitrary-precision library appears anywhere in the example corpus;
// math/big (standard library) is used here because exact overflow
// detection against a caller-supplied, possibly-narrower-than-int64 bound
// cannot be done safely in int64 arithmetic alone.
func (b Bounds) CheckedAdd(x, y int64) (int64, error) {
	return b.checkedBinary(x, y, (*big.Int).Add)
}

func (b Bounds) CheckedSub(x, y int64) (int64, error) {
	return b.checkedBinary(x, y, (*big.Int).Sub)
}

func (b Bounds) CheckedMul(x, y int64) (int64, error) {
	return b.checkedBinary(x, y, (*big.Int).Mul)
}

func (b Bounds) CheckedNeg(x int64) (int64, error) {
	r := new(big.Int).Neg(big.NewInt(x))
	return b.narrow(r)
}

func (b Bounds) checkedBinary(x, y int64, op func(z, x, y *big.Int) *big.Int) (int64, error) {
	r := op(new(big.Int), big.NewInt(x), big.NewInt(y))
	return b.narrow(r)
}

func (b Bounds) narrow(r *big.Int) (int64, error) {
	lo := big.NewInt(b.MinInt)
	hi := big.NewInt(b.MaxInt)
	if r.Cmp(lo) < 0 || r.Cmp(hi) > 0 {
		return 0, ErrOverflow
	}
	return r.Int64(), nil
}

// NarrowQuotient computes x/y exactly (y is already known nonzero by the
// caller) and checks the result against the configured integer bounds,
// the same way the other checked-arithmetic helpers do.
func (b Bounds) NarrowQuotient(x, y int64) (int64, error) {
	r := new(big.Int).Quo(big.NewInt(x), big.NewInt(y))
	return b.narrow(r)
}

// CheckedRealBinary applies op to x and y and reports ErrOverflow if the
// result falls outside [b.MinReal, b.MaxReal] or is not finite.
func (b Bounds) CheckedRealBinary(x, y float64, op func(a, b float64) float64) (float64, error) {
	r := op(x, y)
	if math.IsNaN(r) || math.IsInf(r, 0) || r < b.MinReal || r > b.MaxReal {
		return 0, ErrOverflow
	}
	return r, nil
}
