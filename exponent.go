package quantity

import "math"

// exponent is a power of a single dimension.
type exponent int8

const (
	maxExponent = math.MaxInt8
	minExponent = math.MinInt8
)

// add calculates x + y and checks overflow.
func (x exponent) add(y exponent) (z exponent, ok bool) {
	s := int(x) + int(y)
	if s < minExponent || s > maxExponent {
		return 0, false
	}
	return exponent(s), true
}

// sub calculates x - y and checks overflow.
func (x exponent) sub(y exponent) (z exponent, ok bool) {
	s := int(x) - int(y)
	if s < minExponent || s > maxExponent {
		return 0, false
	}
	return exponent(s), true
}

// mul calculates x * y and checks overflow.
func (x exponent) mul(y int) (z exponent, ok bool) {
	p := int(x) * y
	if y != 0 && p/y != int(x) {
		return 0, false
	}
	if p < minExponent || p > maxExponent {
		return 0, false
	}
	return exponent(p), true
}

// quo calculates x / y and checks inexact division.
func (x exponent) quo(y int) (z exponent, ok bool) {
	if y == 0 {
		return 0, false
	}
	q := int(x) / y
	if q*y != int(x) {
		return 0, false
	}
	return exponent(q), true
}

// neg calculates -x and checks overflow.
func (x exponent) neg() (z exponent, ok bool) {
	if x == minExponent {
		return 0, false
	}
	return -x, true
}

// newExponent converts an integer into an exponent and checks overflow.
func newExponent(n int) (exponent, bool) {
	if n < minExponent || n > maxExponent {
		return 0, false
	}
	return exponent(n), true
}
