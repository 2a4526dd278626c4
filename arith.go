package quantity

import (
	"fmt"
	"math"
)

// Add returns the sum of q and r expressed in the units of q.
// Before adding, r is converted into the units of q.
//
// Add returns an error if:
//   - q and r have different exponents;
//   - an offset conversion of temperature would be required for a
//     temperature combined with other dimensions.
func (q Quantity) Add(r Quantity) (Quantity, error) {
	s, err := r.alignTo(q)
	if err != nil {
		return Quantity{}, fmt.Errorf("computing [%v + %v]: %w", q, r, err)
	}
	q.mag += s.mag
	return q, nil
}

// Sub returns the difference of q and r expressed in the units of q.
// See [Quantity.Add] for the conditions under which an error is returned.
func (q Quantity) Sub(r Quantity) (Quantity, error) {
	s, err := r.alignTo(q)
	if err != nil {
		return Quantity{}, fmt.Errorf("computing [%v - %v]: %w", q, r, err)
	}
	q.mag -= s.mag
	return q, nil
}

// alignTo converts r into the units of q.
// Unlike conversion, no bridges between interchangeable dimensions
// are applied.
func (r Quantity) alignTo(q Quantity) (Quantity, error) {
	if r.exp != q.exp {
		return Quantity{}, fmt.Errorf("%q and %q have different dimensions: %w", q.UnitString(), r.UnitString(), ErrValueConversion)
	}
	return r.convertUnits(q)
}

// Mul returns the product of q and r.
// Dimensions present only in r keep the units of r, dimensions present
// in both operands are expressed in the units of q.
// A dimensionless angle in radians is transparent: multiplying a
// quantity without an angle by it scales the magnitude only.
//
// Mul returns an error if:
//   - an exponent of the product overflows;
//   - an offset conversion of temperature would be required for a
//     temperature combined with other dimensions.
func (q Quantity) Mul(r Quantity) (Quantity, error) {
	f, err := q.combine(r, 1)
	if err != nil {
		return Quantity{}, fmt.Errorf("computing [%v * %v]: %w", q, r, err)
	}
	return f, nil
}

// Quo returns the quotient of q and r.
// See [Quantity.Mul] for the rules applied to units.
//
// Quo returns an error if:
//   - r is 0;
//   - an exponent of the quotient overflows;
//   - an offset conversion of temperature would be required for a
//     temperature combined with other dimensions.
func (q Quantity) Quo(r Quantity) (Quantity, error) {
	if r.IsZero() {
		return Quantity{}, fmt.Errorf("computing [%v / %v]: %w", q, r, ErrDivisionByZero)
	}
	f, err := q.combine(r, -1)
	if err != nil {
		return Quantity{}, fmt.Errorf("computing [%v / %v]: %w", q, r, err)
	}
	return f, nil
}

// combine computes q * r^sign, where sign is 1 or -1.
func (q Quantity) combine(r Quantity, sign int) (Quantity, error) {

	// Special case: radians as a scalar
	switch {
	case r.isPureRadian() && q.exp[Angle] == 0:
		if sign > 0 {
			q.mag *= r.radians()
		} else {
			q.mag /= r.radians()
		}
		return q, nil
	case q.isPureRadian() && r.exp[Angle] == 0:
		if sign < 0 {
			var err error
			r, err = r.Inv()
			if err != nil {
				return Quantity{}, err
			}
		}
		r.mag *= q.radians()
		return r, nil
	}

	// General case
	var (
		f     Quantity
		rmag  float64
		alone bool
		err   error
	)

	f = q
	rmag = r.mag
	alone = q.Mask().Count() == 1 && q.Mask() == r.Mask()

	for d := Dimension(0); d < NumDimensions; d++ {
		re := r.exp[d]
		if re == 0 {
			continue
		}
		qe := q.exp[d]
		var (
			e  exponent
			ok bool
		)
		if sign > 0 {
			e, ok = qe.add(re)
		} else {
			e, ok = qe.sub(re)
		}
		if !ok {
			return Quantity{}, fmt.Errorf("%v: %w", d, ErrExponentRange)
		}
		if qe == 0 {
			f.set(d, e, r.units[d])
			continue
		}
		rmag, err = rescale(rmag, d, re, r.units[d], q.units[d], alone)
		if err != nil {
			return Quantity{}, err
		}
		f.set(d, e, q.units[d])
	}

	if sign > 0 {
		f.mag = q.mag * rmag
	} else {
		if rmag == 0 {
			return Quantity{}, ErrDivisionByZero
		}
		f.mag = q.mag / rmag
	}
	return f, nil
}

// radians returns the magnitude of a pure angle in radians.
func (q Quantity) radians() float64 {
	return q.mag * q.units[Angle].factor()
}

// Inv returns the reciprocal of q.
// Every exponent is negated; units are unchanged.
//
// Inv returns an error if q is 0.
func (q Quantity) Inv() (Quantity, error) {
	if q.IsZero() {
		return Quantity{}, fmt.Errorf("inverting %v: %w", q, ErrDivisionByZero)
	}
	for d, e := range q.exp {
		n, ok := e.neg()
		if !ok {
			return Quantity{}, fmt.Errorf("inverting %v: %w", q, ErrExponentRange)
		}
		q.exp[d] = n
	}
	q.mag = 1 / q.mag
	return q, nil
}

// Pow returns q raised to the integer power n.
// Every exponent is multiplied by n.
// If n is 0, the result is a dimensionless 1.
//
// Pow returns an error if:
//   - an exponent of the result overflows;
//   - 0 is raised to a negative power.
func (q Quantity) Pow(n int) (Quantity, error) {
	// Special case: zero power
	if n == 0 {
		return Quantity{mag: 1}, nil
	}
	// Special case: zero base
	if q.IsZero() && n < 0 {
		return Quantity{}, fmt.Errorf("computing [%v^%v]: zero base and negative power: %w", q, n, ErrInvalidOperation)
	}
	// General case
	for d, e := range q.exp {
		m, ok := e.mul(n)
		if !ok {
			return Quantity{}, fmt.Errorf("computing [%v^%v]: %w", q, n, ErrExponentRange)
		}
		q.exp[d] = m
	}
	q.mag = math.Pow(q.mag, float64(n))
	return q, nil
}

// Sqrt returns the square root of q.
// Every exponent is halved.
//
// Sqrt returns an error if:
//   - an exponent of q is odd;
//   - q is negative.
func (q Quantity) Sqrt() (Quantity, error) {
	if q.IsNeg() {
		return Quantity{}, fmt.Errorf("computing sqrt(%v): negative magnitude: %w", q, ErrInvalidOperation)
	}
	f, err := q.root(2)
	if err != nil {
		return Quantity{}, fmt.Errorf("computing sqrt(%v): %w", q, err)
	}
	f.mag = math.Sqrt(q.mag)
	return f, nil
}

// Cbrt returns the cube root of q.
// Every exponent is divided by 3.
//
// Cbrt returns an error if an exponent of q is not divisible by 3.
func (q Quantity) Cbrt() (Quantity, error) {
	f, err := q.root(3)
	if err != nil {
		return Quantity{}, fmt.Errorf("computing cbrt(%v): %w", q, err)
	}
	f.mag = math.Cbrt(q.mag)
	return f, nil
}

// root divides every exponent of q by n.
func (q Quantity) root(n int) (Quantity, error) {
	for d, e := range q.exp {
		m, ok := e.quo(n)
		if !ok {
			return Quantity{}, fmt.Errorf("%v^%v is not divisible by %v: %w", Dimension(d), e, n, ErrValueConversion)
		}
		q.exp[d] = m
	}
	return q, nil
}

// Scale returns q with its magnitude multiplied by f.
func (q Quantity) Scale(f float64) Quantity {
	q.mag *= f
	return q
}

// Neg returns q with opposite sign.
func (q Quantity) Neg() Quantity {
	q.mag = -q.mag
	return q
}

// Abs returns absolute value of q.
func (q Quantity) Abs() Quantity {
	q.mag = math.Abs(q.mag)
	return q
}

// Sign returns:
//
//	-1 if q < 0
//	 0 if q == 0
//	+1 if q > 0
func (q Quantity) Sign() int {
	switch {
	case q.mag < 0:
		return -1
	case q.mag > 0:
		return 1
	}
	return 0
}

// IsZero returns true if the magnitude of q is 0.
func (q Quantity) IsZero() bool {
	return q.mag == 0
}

// IsPos returns true if the magnitude of q is greater than 0.
func (q Quantity) IsPos() bool {
	return q.mag > 0
}

// IsNeg returns true if the magnitude of q is less than 0.
func (q Quantity) IsNeg() bool {
	return q.mag < 0
}

// Cmp compares q and r numerically and returns:
//
//	-1 if q < r
//	 0 if q == r
//	+1 if q > r
//
// Before comparing, r is converted into the units of q.
// Cmp returns an error under the same conditions as [Quantity.Sub].
func (q Quantity) Cmp(r Quantity) (int, error) {
	s, err := r.alignTo(q)
	if err != nil {
		return 0, fmt.Errorf("comparing %v and %v: %w", q, r, err)
	}
	switch {
	case q.mag < s.mag:
		return -1, nil
	case q.mag > s.mag:
		return 1, nil
	}
	return 0, nil
}
