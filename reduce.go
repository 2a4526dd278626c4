package quantity

import "fmt"

// part is a dimension raised to a power within a decomposition.
type part struct {
	dim Dimension
	exp exponent
}

// decomposition expresses a named derived dimension as a product of
// other dimensions.
// The decomposition is used by [Quantity.Reduce] if any of the dimensions
// listed in when is active in the target units.
type decomposition struct {
	from  Dimension
	when  []Dimension
	parts []part
}

// decompositions is ordered by priority.
// For every named dimension, the first entry matching the target units
// wins, and [Quantity.Complex] collapses to the first entry matching
// the quantity.
var decompositions = []decomposition{
	// Force
	{Force, []Dimension{Mass}, []part{{Mass, 1}, {Length, 1}, {Time, -2}}},

	// Pressure
	{Pressure, []Dimension{Force}, []part{{Force, 1}, {Length, -2}}},
	{Pressure, []Dimension{Mass}, []part{{Mass, 1}, {Length, -1}, {Time, -2}}},

	// Energy
	{Energy, []Dimension{Force}, []part{{Force, 1}, {Length, 1}}},
	{Energy, []Dimension{Potential, Charge}, []part{{Potential, 1}, {Charge, 1}}},
	{Energy, []Dimension{Power}, []part{{Power, 1}, {Time, 1}}},
	{Energy, []Dimension{Mass}, []part{{Mass, 1}, {Length, 2}, {Time, -2}}},

	// Power
	{Power, []Dimension{Energy}, []part{{Energy, 1}, {Time, -1}}},
	{Power, []Dimension{Potential, Current}, []part{{Potential, 1}, {Current, 1}}},
	{Power, []Dimension{Mass}, []part{{Mass, 1}, {Length, 2}, {Time, -3}}},

	// Charge
	{Charge, []Dimension{Current}, []part{{Current, 1}, {Time, 1}}},

	// Potential
	{Potential, []Dimension{Power}, []part{{Power, 1}, {Current, -1}}},
	{Potential, []Dimension{Energy}, []part{{Energy, 1}, {Charge, -1}}},
	{Potential, []Dimension{Mass}, []part{{Mass, 1}, {Length, 2}, {Time, -3}, {Current, -1}}},

	// Capacitance
	{Capacitance, []Dimension{Charge}, []part{{Charge, 1}, {Potential, -1}}},
	{Capacitance, []Dimension{Mass}, []part{{Mass, -1}, {Length, -2}, {Time, 4}, {Current, 2}}},

	// Resistance
	{Resistance, []Dimension{Potential}, []part{{Potential, 1}, {Current, -1}}},
	{Resistance, []Dimension{Mass}, []part{{Mass, 1}, {Length, 2}, {Time, -3}, {Current, -2}}},

	// Conductance
	{Conductance, []Dimension{Potential}, []part{{Current, 1}, {Potential, -1}}},
	{Conductance, []Dimension{Resistance}, []part{{Resistance, -1}}},
	{Conductance, []Dimension{Mass}, []part{{Mass, -1}, {Length, -2}, {Time, 3}, {Current, 2}}},

	// Magnetic flux
	{MagneticFlux, []Dimension{Potential}, []part{{Potential, 1}, {Time, 1}}},
	{MagneticFlux, []Dimension{FluxDensity}, []part{{FluxDensity, 1}, {Length, 2}}},
	{MagneticFlux, []Dimension{Mass}, []part{{Mass, 1}, {Length, 2}, {Time, -2}, {Current, -1}}},

	// Flux density
	{FluxDensity, []Dimension{MagneticFlux}, []part{{MagneticFlux, 1}, {Length, -2}}},
	{FluxDensity, []Dimension{Mass}, []part{{Mass, 1}, {Time, -2}, {Current, -1}}},

	// Inductance
	{Inductance, []Dimension{MagneticFlux}, []part{{MagneticFlux, 1}, {Current, -1}}},
	{Inductance, []Dimension{Resistance}, []part{{Resistance, 1}, {Time, 1}}},
	{Inductance, []Dimension{Mass}, []part{{Mass, 1}, {Length, 2}, {Time, -2}, {Current, -2}}},

	// Illuminance
	{Illuminance, []Dimension{LuminousFlux}, []part{{LuminousFlux, 1}, {Length, -2}}},

	// Catalytic activity
	{CatalyticActivity, []Dimension{Substance}, []part{{Substance, 1}, {Time, -1}}},
}

// reducible is the set of dimensions that have at least one decomposition.
var reducible = func() Mask {
	var m Mask
	for _, dec := range decompositions {
		m |= maskOf(dec.from)
	}
	return m
}()

// findDecomposition returns the first decomposition of d that is
// triggered by the dimensions of mask m.
func findDecomposition(d Dimension, m Mask) (decomposition, bool) {
	for _, dec := range decompositions {
		if dec.from != d {
			continue
		}
		for _, w := range dec.when {
			if m.Has(w) {
				return dec, true
			}
		}
	}
	return decomposition{}, false
}

// Reducible returns true if q has exactly one active dimension and that
// dimension is a named derived dimension, such as force or energy,
// that can be decomposed by [Quantity.Reduce].
func (q Quantity) Reducible() bool {
	m := q.Mask()
	return m.Count() == 1 && m&reducible == m
}

// Reduce expands a named derived dimension of q into other dimensions
// and then converts the result into units, for example:
//
//	MustNew(24.525, "N").Reduce("kg*m/s^2") // 24.525 m*kg/s^2
//	MustNew(1, "kWh").Reduce("W*s")         // 3.6e+06 s*W
//
// The decomposition is chosen by the dimensions that units activate.
// For example, energy is decomposed into force times length for "N*m",
// but into potential times charge for "V*C".
//
// Reduce returns an error if:
//   - units cannot be parsed;
//   - q is not reducible;
//   - no decomposition of q matches units.
func (q Quantity) Reduce(units string) (Quantity, error) {
	t, err := parseUnits(units)
	if err != nil {
		return Quantity{}, err
	}
	f, err := q.reduce(t)
	if err != nil {
		return Quantity{}, fmt.Errorf("reducing %v to %q: %w", q, units, err)
	}
	return f, nil
}

func (q Quantity) reduce(t Quantity) (Quantity, error) {
	if !q.Reducible() {
		return Quantity{}, fmt.Errorf("%q is not a named derived unit: %w", q.UnitString(), ErrUnitReduction)
	}
	d := q.Mask().Dimensions()[0]
	n := q.exp[d]
	dec, ok := findDecomposition(d, t.Mask())
	if !ok {
		return Quantity{}, fmt.Errorf("no decomposition of %v into %q: %w", d, t.UnitString(), ErrUnitReduction)
	}

	// Named dimension in coherent units
	mag, err := rescale(q.mag, d, n, q.units[d], coherent[d], true)
	if err != nil {
		return Quantity{}, err
	}

	// Decomposition in coherent units
	var r Quantity
	r.mag = mag
	for _, p := range dec.parts {
		e, ok := p.exp.mul(int(n))
		if !ok {
			return Quantity{}, fmt.Errorf("%v: %w", p.dim, ErrExponentRange)
		}
		r.set(p.dim, e, coherent[p.dim])
	}

	f, err := r.convert(t)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %w", ErrUnitReduction, err)
	}
	return f, nil
}

// Complex is the inverse of [Quantity.Reduce].
// It collapses a quantity that is expressed as a decomposition into the
// named derived dimension, using its coherent SI unit, for example:
//
//	MustNew(24.525, "kg*m/s^2").Complex() // 24.525 N
//	MustNew(2, "N*m").Complex()           // 2 J
//	MustNew(2, "A/V").Complex()           // 2 S
//
// If several named dimensions match, the first one in the priority order
// of decompositions is used.
// Powers of decompositions collapse into powers of the named dimension,
// so "kg^2*m^2/s^4" becomes "N^2".
//
// Complex returns an error if q does not match any decomposition.
func (q Quantity) Complex() (Quantity, error) {
	for _, dec := range decompositions {
		n, ok := q.multipleOf(dec.parts)
		if !ok {
			continue
		}
		var t Quantity
		t.exp = q.exp
		for d, e := range q.exp {
			if e != 0 {
				t.units[d] = coherent[d]
			}
		}
		c, err := q.convertUnits(t)
		if err != nil {
			return Quantity{}, fmt.Errorf("collapsing %v: %w", q, err)
		}
		var f Quantity
		f.mag = c.mag
		f.set(dec.from, n, coherent[dec.from])
		return f, nil
	}
	return Quantity{}, fmt.Errorf("collapsing %v: no named dimension matches %q: %w", q, q.UnitString(), ErrUnitReduction)
}

// multipleOf returns n > 0 such that the exponents of q are exactly
// the exponents of parts multiplied by n.
func (q Quantity) multipleOf(parts []part) (exponent, bool) {
	first := parts[0]
	n, ok := q.exp[first.dim].quo(int(first.exp))
	if !ok || n <= 0 {
		return 0, false
	}
	var want [NumDimensions]exponent
	for _, p := range parts {
		e, ok := p.exp.mul(int(n))
		if !ok {
			return 0, false
		}
		want[p.dim] = e
	}
	return n, q.exp == want
}
