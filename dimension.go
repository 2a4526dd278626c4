package quantity

import (
	"math/bits"
	"strings"
)

// Dimension is one of the independent physical quantities tracked by
// a [Quantity].
type Dimension uint8

const (
	Length Dimension = iota
	Time
	Mass
	Current
	Charge
	Potential
	Conductance
	Capacitance
	Resistance
	Inductance
	MagneticFlux
	FluxDensity
	Temperature
	Substance
	LuminousIntensity
	LuminousFlux
	Illuminance
	Volume
	Pressure
	Angle
	Frequency
	Force
	Energy
	Power
	Radioactivity
	AbsorbedDose
	EquivalentDose
	CatalyticActivity
	SoundLevel
	Information
	SolidAngle
	NumDimensions = iota // number of dimensions
)

var dimensionNames = [NumDimensions]string{
	Length:            "length",
	Time:              "time",
	Mass:              "mass",
	Current:           "electric current",
	Charge:            "electric charge",
	Potential:         "electric potential",
	Conductance:       "electric conductance",
	Capacitance:       "electric capacitance",
	Resistance:        "electric resistance",
	Inductance:        "electric inductance",
	MagneticFlux:      "magnetic flux",
	FluxDensity:       "magnetic flux density",
	Temperature:       "temperature",
	Substance:         "amount of substance",
	LuminousIntensity: "luminous intensity",
	LuminousFlux:      "luminous flux",
	Illuminance:       "illuminance",
	Volume:            "volume",
	Pressure:          "pressure",
	Angle:             "angle",
	Frequency:         "frequency",
	Force:             "force",
	Energy:            "energy",
	Power:             "power",
	Radioactivity:     "radioactivity",
	AbsorbedDose:      "absorbed dose",
	EquivalentDose:    "equivalent dose",
	CatalyticActivity: "catalytic activity",
	SoundLevel:        "sound level",
	Information:       "information",
	SolidAngle:        "solid angle",
}

// String returns a human-readable name of the dimension.
func (d Dimension) String() string {
	if d >= NumDimensions {
		return "unknown dimension"
	}
	return dimensionNames[d]
}

// ParseDimension returns the dimension with the given name.
// The comparison is case-insensitive and accepts either spaces or
// underscores between words.
func ParseDimension(name string) (Dimension, bool) {
	name = strings.ToLower(strings.ReplaceAll(name, "_", " "))
	for d, n := range dimensionNames {
		if n == name {
			return Dimension(d), true
		}
	}
	return 0, false
}

// Mask is a set of dimensions.
// Bit d is set if dimension d is active.
type Mask uint32

// Has returns true if dimension d is in the mask.
func (m Mask) Has(d Dimension) bool {
	return m&(1<<d) != 0
}

// Count returns the number of dimensions in the mask.
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Dimensions returns dimensions of the mask in index order.
func (m Mask) Dimensions() []Dimension {
	dims := make([]Dimension, 0, m.Count())
	for d := Dimension(0); d < NumDimensions; d++ {
		if m.Has(d) {
			dims = append(dims, d)
		}
	}
	return dims
}

// maskOf returns a mask with the given dimensions.
func maskOf(dims ...Dimension) Mask {
	var m Mask
	for _, d := range dims {
		m |= 1 << d
	}
	return m
}
