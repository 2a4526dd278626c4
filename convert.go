package quantity

import (
	"fmt"
	"math"
)

// cubicMetersPerLiter is the number of cubic meters in one liter.
const cubicMetersPerLiter = 1e-3

// Convert returns q expressed in units, for example:
//
//	MustNew(20, "mph").Convert("km/hr") // 32.18688 km/hr
//
// The units must describe the same dimensions as q.
// Volume may be converted to length cubed, frequency to inverse time,
// and a dimensionless quantity to an angle in radians, and vice versa.
// Temperatures alone are converted with an offset, so that 0 °C is 273.15 K.
//
// Convert returns an error if:
//   - units cannot be parsed;
//   - q and units are not dimensionally equal;
//   - an offset conversion of temperature would be required for a
//     temperature combined with other dimensions.
func (q Quantity) Convert(units string) (Quantity, error) {
	t, err := parseUnits(units)
	if err != nil {
		return Quantity{}, err
	}
	f, err := q.convert(t)
	if err != nil {
		return Quantity{}, fmt.Errorf("converting %v to %q: %w", q, units, err)
	}
	return f, nil
}

// ConvertUnit returns q with the dimension of u expressed in u.
// Other dimensions are left unchanged.
//
//	MustNew(400, "cal").ConvertUnit(Joule) // 1673.6 J
//
// ConvertUnit returns an error if q does not have the dimension of u.
func (q Quantity) ConvertUnit(u Unit) (Quantity, error) {
	return q.ConvertPrefixedUnit(None, u)
}

// ConvertPrefixedUnit is like [Quantity.ConvertUnit] but converts
// to u with metric prefix p.
func (q Quantity) ConvertPrefixedUnit(p Prefix, u Unit) (Quantity, error) {
	switch {
	case !u.valid():
		return Quantity{}, fmt.Errorf("converting %v: unit %v: %w", q, u, ErrUnsupportedUnit)
	case !p.valid(), p != None && !u.Prefixable():
		return Quantity{}, fmt.Errorf("converting %v: unit %v with prefix %v: %w", q, u, p, ErrUnsupportedMetric)
	}
	d := u.Dimension()
	to := PrefixedUnit{Prefix: p, Unit: u}
	if q.exp[d] == 0 {
		return Quantity{}, fmt.Errorf("converting %v to %v: no %v: %w", q, to, d, ErrValueConversion)
	}
	mag, err := rescale(q.mag, d, q.exp[d], q.units[d], to, q.only(d))
	if err != nil {
		return Quantity{}, fmt.Errorf("converting %v to %v: %w", q, to, err)
	}
	q.mag = mag
	q.units[d] = to
	return q, nil
}

// convert re-expresses q in the units of t.
func (q Quantity) convert(t Quantity) (Quantity, error) {
	q, err := q.bridge(t)
	if err != nil {
		return Quantity{}, err
	}
	if q.exp != t.exp {
		return Quantity{}, fmt.Errorf("%q is not compatible with %q: %w", q.UnitString(), t.UnitString(), ErrValueConversion)
	}
	return q.convertUnits(t)
}

// convertUnits converts every dimension of q into the unit used by t.
// The exponents of q and t must be identical.
func (q Quantity) convertUnits(t Quantity) (Quantity, error) {
	alone := q.Mask().Count() == 1
	for d := Dimension(0); d < NumDimensions; d++ {
		e := q.exp[d]
		if e == 0 || q.units[d] == t.units[d] {
			continue
		}
		mag, err := rescale(q.mag, d, e, q.units[d], t.units[d], alone)
		if err != nil {
			return Quantity{}, err
		}
		q.mag = mag
		q.units[d] = t.units[d]
	}
	return q, nil
}

// rescale converts magnitude x of a quantity whose dimension d has
// power e from unit from to unit to.
// Temperatures are converted only if d is the only dimension of the
// quantity (alone) and e is 1; offsets are applied through Celsius.
func rescale(x float64, d Dimension, e exponent, from, to PrefixedUnit, alone bool) (float64, error) {
	if from == to {
		return x, nil
	}
	if d == Temperature && (!alone || e != 1) {
		return 0, fmt.Errorf("conversion from %v to %v is undefined for %v^%v combined with other dimensions: %w", from, to, d, e, ErrValueConversion)
	}
	if from.Unit.Affine() || to.Unit.Affine() {
		return to.fromCelsius(from.toCelsius(x)), nil
	}
	return x * math.Pow(ratio(from, to), float64(e)), nil
}

// bridge rewrites the exponents of q to match t when q and t are
// dimensionally equal but use interchangeable dimensions.
// If no bridge applies, q is returned unchanged.
func (q Quantity) bridge(t Quantity) (Quantity, error) {
	if q.exp == t.exp {
		return q, nil
	}

	rad := PrefixedUnit{Unit: Radian}

	// Dimensionless and radians
	switch {
	case q.IsDimensionless() && t.only(Angle) && t.exp[Angle] == 1:
		q.set(Angle, 1, rad)
		return q, nil
	case t.IsDimensionless() && q.only(Angle) && q.exp[Angle] == 1:
		mag, err := rescale(q.mag, Angle, 1, q.units[Angle], rad, true)
		if err != nil {
			return Quantity{}, err
		}
		return Quantity{mag: mag}, nil
	}

	// Volume and frequency
	qs, ok := q.shape()
	if !ok {
		return Quantity{}, fmt.Errorf("%q: %w", q.UnitString(), ErrExponentRange)
	}
	ts, ok := t.shape()
	if !ok {
		return Quantity{}, fmt.Errorf("%q: %w", t.UnitString(), ErrExponentRange)
	}
	if qs != ts {
		return q, nil
	}
	return q.fold().unfold(t), nil
}

// fold rewrites volume as length cubed in meters and frequency as
// inverse time in seconds.
// The caller guarantees that the resulting exponents do not overflow.
func (q Quantity) fold() Quantity {
	if v := q.exp[Volume]; v != 0 {
		q.toCoherent(Length)
		q.mag *= math.Pow(q.units[Volume].factor()*cubicMetersPerLiter, float64(v))
		q.set(Length, q.exp[Length]+3*v, coherent[Length])
		q.set(Volume, 0, PrefixedUnit{})
	}
	if f := q.exp[Frequency]; f != 0 {
		q.toCoherent(Time)
		q.mag *= math.Pow(q.units[Frequency].factor(), float64(f))
		q.set(Time, q.exp[Time]-f, coherent[Time])
		q.set(Frequency, 0, PrefixedUnit{})
	}
	return q
}

// unfold moves powers of length and time of q into volume in liters and
// frequency in hertz, as used by t.
// The caller guarantees that the resulting exponents do not overflow.
func (q Quantity) unfold(t Quantity) Quantity {
	if v := t.exp[Volume]; v != 0 {
		q.toCoherent(Length)
		q.mag /= math.Pow(cubicMetersPerLiter, float64(v))
		q.set(Length, q.exp[Length]-3*v, coherent[Length])
		q.set(Volume, v, coherent[Volume])
	}
	if f := t.exp[Frequency]; f != 0 {
		q.toCoherent(Time)
		q.set(Time, q.exp[Time]+f, coherent[Time])
		q.set(Frequency, f, coherent[Frequency])
	}
	return q
}

// toCoherent converts dimension d of q into its coherent SI unit.
// Dimensions with units that need an offset are left unchanged.
func (q *Quantity) toCoherent(d Dimension) {
	e := q.exp[d]
	if e == 0 || q.units[d] == coherent[d] || q.units[d].Unit.Affine() {
		return
	}
	q.mag *= math.Pow(ratio(q.units[d], coherent[d]), float64(e))
	q.units[d] = coherent[d]
}
