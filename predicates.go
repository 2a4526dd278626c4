package quantity

// signature is a set of exponents that denotes a physical quantity.
type signature [NumDimensions]exponent

// is returns true if the exponents of q equal any of the signatures.
func (q Quantity) is(sigs ...signature) bool {
	for _, s := range sigs {
		if q.exp == s {
			return true
		}
	}
	return false
}

// IsLength returns true if q is a length.
func (q Quantity) IsLength() bool {
	return q.is(signature{Length: 1})
}

// IsTime returns true if q is a duration.
func (q Quantity) IsTime() bool {
	return q.is(signature{Time: 1})
}

// IsMass returns true if q is a mass.
func (q Quantity) IsMass() bool {
	return q.is(signature{Mass: 1})
}

// IsCurrent returns true if q is an electric current, such as A or C/s.
func (q Quantity) IsCurrent() bool {
	return q.is(
		signature{Current: 1},
		signature{Charge: 1, Time: -1},
	)
}

// IsCharge returns true if q is an electric charge, such as C or A*s.
func (q Quantity) IsCharge() bool {
	return q.is(
		signature{Charge: 1},
		signature{Current: 1, Time: 1},
	)
}

// IsPotential returns true if q is an electric potential,
// such as V, W/A, J/C, or kg*m^2/(s^3*A).
func (q Quantity) IsPotential() bool {
	return q.is(
		signature{Potential: 1},
		signature{Power: 1, Current: -1},
		signature{Energy: 1, Charge: -1},
		signature{Mass: 1, Length: 2, Time: -3, Current: -1},
	)
}

// IsConductance returns true if q is an electric conductance,
// such as S, 1/Ω, or A/V.
func (q Quantity) IsConductance() bool {
	return q.is(
		signature{Conductance: 1},
		signature{Resistance: -1},
		signature{Current: 1, Potential: -1},
		signature{Mass: -1, Length: -2, Time: 3, Current: 2},
	)
}

// IsCapacitance returns true if q is a capacitance, such as F or C/V.
func (q Quantity) IsCapacitance() bool {
	return q.is(
		signature{Capacitance: 1},
		signature{Charge: 1, Potential: -1},
		signature{Mass: -1, Length: -2, Time: 4, Current: 2},
	)
}

// IsResistance returns true if q is an electric resistance, such as Ω or V/A.
func (q Quantity) IsResistance() bool {
	return q.is(
		signature{Resistance: 1},
		signature{Potential: 1, Current: -1},
		signature{Mass: 1, Length: 2, Time: -3, Current: -2},
	)
}

// IsInductance returns true if q is an inductance, such as H, Wb/A, or Ω*s.
func (q Quantity) IsInductance() bool {
	return q.is(
		signature{Inductance: 1},
		signature{MagneticFlux: 1, Current: -1},
		signature{Resistance: 1, Time: 1},
		signature{Mass: 1, Length: 2, Time: -2, Current: -2},
	)
}

// IsMagneticFlux returns true if q is a magnetic flux, such as Wb, V*s, or T*m^2.
func (q Quantity) IsMagneticFlux() bool {
	return q.is(
		signature{MagneticFlux: 1},
		signature{Potential: 1, Time: 1},
		signature{FluxDensity: 1, Length: 2},
		signature{Mass: 1, Length: 2, Time: -2, Current: -1},
	)
}

// IsFluxDensity returns true if q is a magnetic flux density, such as T or Wb/m^2.
func (q Quantity) IsFluxDensity() bool {
	return q.is(
		signature{FluxDensity: 1},
		signature{MagneticFlux: 1, Length: -2},
		signature{Mass: 1, Time: -2, Current: -1},
	)
}

// IsTemperature returns true if q is a temperature.
func (q Quantity) IsTemperature() bool {
	return q.is(signature{Temperature: 1})
}

// IsSubstance returns true if q is an amount of substance.
func (q Quantity) IsSubstance() bool {
	return q.is(signature{Substance: 1})
}

// IsLuminousIntensity returns true if q is a luminous intensity.
func (q Quantity) IsLuminousIntensity() bool {
	return q.is(signature{LuminousIntensity: 1})
}

// IsLuminousFlux returns true if q is a luminous flux, such as lm or cd*sr.
func (q Quantity) IsLuminousFlux() bool {
	return q.is(
		signature{LuminousFlux: 1},
		signature{LuminousIntensity: 1, SolidAngle: 1},
	)
}

// IsIlluminance returns true if q is an illuminance, such as lx or lm/m^2.
func (q Quantity) IsIlluminance() bool {
	return q.is(
		signature{Illuminance: 1},
		signature{LuminousFlux: 1, Length: -2},
	)
}

// IsVolume returns true if q is a volume, such as L or m^3.
func (q Quantity) IsVolume() bool {
	return q.is(
		signature{Volume: 1},
		signature{Length: 3},
	)
}

// IsPressure returns true if q is a pressure, such as Pa, N/m^2, or kg/(m*s^2).
func (q Quantity) IsPressure() bool {
	return q.is(
		signature{Pressure: 1},
		signature{Force: 1, Length: -2},
		signature{Mass: 1, Length: -1, Time: -2},
	)
}

// IsAngle returns true if q is a plane angle.
func (q Quantity) IsAngle() bool {
	return q.is(signature{Angle: 1})
}

// IsFrequency returns true if q is a frequency, such as Hz or 1/s.
func (q Quantity) IsFrequency() bool {
	return q.is(
		signature{Frequency: 1},
		signature{Time: -1},
	)
}

// IsForce returns true if q is a force, such as N or kg*m/s^2.
func (q Quantity) IsForce() bool {
	return q.is(
		signature{Force: 1},
		signature{Mass: 1, Length: 1, Time: -2},
	)
}

// IsEnergy returns true if q is an energy,
// such as J, N*m, V*C, W*s, or kg*m^2/s^2.
func (q Quantity) IsEnergy() bool {
	return q.is(
		signature{Energy: 1},
		signature{Force: 1, Length: 1},
		signature{Potential: 1, Charge: 1},
		signature{Power: 1, Time: 1},
		signature{Mass: 1, Length: 2, Time: -2},
	)
}

// IsPower returns true if q is a power,
// such as W, J/s, V*A, or kg*m^2/s^3.
func (q Quantity) IsPower() bool {
	return q.is(
		signature{Power: 1},
		signature{Energy: 1, Time: -1},
		signature{Energy: 1, Frequency: 1},
		signature{Potential: 1, Current: 1},
		signature{Mass: 1, Length: 2, Time: -3},
	)
}

// IsRadioactivity returns true if q is a radioactivity.
func (q Quantity) IsRadioactivity() bool {
	return q.is(signature{Radioactivity: 1})
}

// IsAbsorbedDose returns true if q is an absorbed dose, such as Gy or J/kg.
func (q Quantity) IsAbsorbedDose() bool {
	return q.is(
		signature{AbsorbedDose: 1},
		signature{Energy: 1, Mass: -1},
	)
}

// IsEquivalentDose returns true if q is an equivalent dose, such as Sv or J/kg.
func (q Quantity) IsEquivalentDose() bool {
	return q.is(
		signature{EquivalentDose: 1},
		signature{Energy: 1, Mass: -1},
	)
}

// IsCatalyticActivity returns true if q is a catalytic activity, such as kat or mol/s.
func (q Quantity) IsCatalyticActivity() bool {
	return q.is(
		signature{CatalyticActivity: 1},
		signature{Substance: 1, Time: -1},
	)
}

// IsSoundLevel returns true if q is a sound level.
func (q Quantity) IsSoundLevel() bool {
	return q.is(signature{SoundLevel: 1})
}

// IsInformation returns true if q is an amount of information.
func (q Quantity) IsInformation() bool {
	return q.is(signature{Information: 1})
}

// IsSolidAngle returns true if q is a solid angle.
func (q Quantity) IsSolidAngle() bool {
	return q.is(signature{SolidAngle: 1})
}

// IsArea returns true if q is an area.
func (q Quantity) IsArea() bool {
	return q.is(signature{Length: 2})
}

// IsVelocity returns true if q is a velocity, such as m/s or mph.
func (q Quantity) IsVelocity() bool {
	return q.is(
		signature{Length: 1, Time: -1},
		signature{Length: 1, Frequency: 1},
	)
}

// IsAcceleration returns true if q is an acceleration.
func (q Quantity) IsAcceleration() bool {
	return q.is(signature{Length: 1, Time: -2})
}

// IsJerk returns true if q is a jerk.
func (q Quantity) IsJerk() bool {
	return q.is(signature{Length: 1, Time: -3})
}

// IsMomentum returns true if q is a momentum, such as kg*m/s or N*s.
func (q Quantity) IsMomentum() bool {
	return q.is(
		signature{Mass: 1, Length: 1, Time: -1},
		signature{Force: 1, Time: 1},
	)
}

// IsDensity returns true if q is a mass density, such as kg/L or kg/m^3.
func (q Quantity) IsDensity() bool {
	return q.is(
		signature{Mass: 1, Volume: -1},
		signature{Mass: 1, Length: -3},
	)
}

// IsTorque returns true if q is a torque, such as N*m.
// Torque is dimensionally equal to energy, but it is never expressed in J.
func (q Quantity) IsTorque() bool {
	return q.is(
		signature{Force: 1, Length: 1},
		signature{Mass: 1, Length: 2, Time: -2},
	)
}

// IsAngularVelocity returns true if q is an angular velocity, such as rad/s.
func (q Quantity) IsAngularVelocity() bool {
	return q.is(
		signature{Angle: 1, Time: -1},
		signature{Angle: 1, Frequency: 1},
	)
}

// IsFlowRate returns true if q is a volumetric flow rate, such as L/s or m^3/s.
func (q Quantity) IsFlowRate() bool {
	return q.is(
		signature{Volume: 1, Time: -1},
		signature{Length: 3, Time: -1},
	)
}
