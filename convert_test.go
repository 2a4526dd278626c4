package quantity

import (
	"errors"
	"math"
	"testing"
)

func TestQuantity_Convert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			q, units string
			want     string
		}{
			// Same dimensions
			{"20 mph", "km/hr", "32.18688 km/hr"},
			{"1.04 ATM", "psi", "15.283786726533988 psi"},
			{"1 m/s", "mph", "2.236936292054402 mi/hr"},
			{"1 km", "m", "1000 m"},
			{"1 m^2", "cm^2", "10000 cm^2"},
			{"1 kWh", "J", "3.6e+06 J"},
			{"1 kg/m^3", "g/cm^3", "0.001 g/cm^3"},
			{"1 rev", "deg", "360 deg"},
			{"1 B", "bit", "8 bit"},
			{"5", "", "5"},

			// Temperature alone
			{"0 °C", "K", "273.15 K"},
			{"0 °C", "°F", "32 °F"},
			{"100 °C", "°F", "212 °F"},
			{"-40 °F", "°C", "-40 °C"},
			{"0 K", "°R", "0 °R"},
			{"1 K", "°R", "1.8 °R"},
			{"300 K", "mK", "300000 mK"},

			// Temperature with other dimensions and same units
			{"1 J/K", "kJ/K", "0.001 kJ/K"},

			// Volume and length cubed
			{"1 L", "m^3", "0.001 m^3"},
			{"1 m^3", "L", "1000 L"},
			{"1 gal", "in^3", "231 in^3"},
			{"1 L/s", "m^3/s", "0.001 m^3/s"},
			{"2 m^3/hr", "L/s", "0.5555555555555556 L/s"},
			{"1 L/m", "m^2", "0.001 m^2"},

			// Frequency and inverse time
			{"120 rpm", "1/s", "2 1/s"},
			{"2 1/min", "Hz", "0.03333333333333333 Hz"},
			{"1 kHz", "1/ms", "1 1/ms"},
			{"1 m*Hz", "m/s", "1 m/s"},

			// Dimensionless and radians
			{"2", "deg", "114.59155902616465 deg"},
			{"180 deg", "", "3.141592653589793"},
			{"1 rad", "", "1"},
		}
		for _, tt := range tests {
			q := MustParse(tt.q)
			got, err := q.Convert(tt.units)
			if err != nil {
				t.Errorf("%q.Convert(%q) failed: %v", q, tt.units, err)
				continue
			}
			want := MustParse(tt.want)
			if !got.SameUnits(want) || !approx(got.Magnitude(), want.Magnitude()) {
				t.Errorf("%q.Convert(%q) = %q, want %q", q, tt.units, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			q, units string
			want     error
		}{
			"parsing":         {"1 m", "m/s/s", ErrParsing},
			"unit":            {"1 m", "kx", ErrUnsupportedUnit},
			"dimensions":      {"1 m", "s", ErrValueConversion},
			"named":           {"1 N", "kg*m/s^2", ErrValueConversion},
			"volume squared":  {"1 L", "m^2", ErrValueConversion},
			"offset combined": {"1 J/°C", "J/K", ErrValueConversion},
			"offset power":    {"1 °C^2", "K^2", ErrValueConversion},
			"temperature":     {"1 J/K", "J/°R", ErrValueConversion},
			"temperature sq":  {"1 K^2", "°R^2", ErrValueConversion},
			"angle power":     {"1 rad^2", "", ErrValueConversion},
			"angle combined":  {"1 rad/s", "1/s", ErrValueConversion},
		}
		for name, tt := range tests {
			q := MustParse(tt.q)
			_, err := q.Convert(tt.units)
			if !errors.Is(err, tt.want) {
				t.Errorf("%q.Convert(%q) error = %v, want %v (%v)", q, tt.units, err, tt.want, name)
			}
		}
	})
}

func TestQuantity_Convert_Temperature(t *testing.T) {
	tests := []struct {
		q, units string
		want     float64
	}{
		{"0 °C", "°F", 32},
		{"100 °C", "°F", 212},
		{"-40 °C", "°F", -40},
		{"32 °F", "°C", 0},
		{"212 °F", "°C", 100},
		{"0 °C", "K", 273.15},
		{"273.15 K", "°C", 0},
	}
	for _, tt := range tests {
		q := MustParse(tt.q)
		got, err := q.Convert(tt.units)
		if err != nil {
			t.Errorf("%q.Convert(%q) failed: %v", q, tt.units, err)
			continue
		}
		if got.Magnitude() != tt.want {
			t.Errorf("%q.Convert(%q) = %v, want exactly %v", q, tt.units, got.Magnitude(), tt.want)
		}
	}
}

func TestQuantity_Convert_RoundTrip(t *testing.T) {
	tests := []struct {
		q, units string
	}{
		{"20 mph", "km/hr"},
		{"1.5 L", "in^3"},
		{"37 °C", "°F"},
		{"3 rpm", "1/hr"},
		{"5 N*m", "lbf*ft"},
		{"2.5 atm", "mmHg"},
	}
	for _, tt := range tests {
		q := MustParse(tt.q)
		f, err := q.Convert(tt.units)
		if err != nil {
			t.Errorf("%q.Convert(%q) failed: %v", q, tt.units, err)
			continue
		}
		got, err := f.Convert(q.UnitString())
		if err != nil {
			t.Errorf("%q.Convert(%q) failed: %v", f, q.UnitString(), err)
			continue
		}
		if !got.SameUnits(q) || !approx(got.Magnitude(), q.Magnitude()) {
			t.Errorf("%q.Convert(%q).Convert(%q) = %q, want %q", q, tt.units, q.UnitString(), got, q)
		}
	}
}

func TestQuantity_ConvertUnit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			q    string
			u    Unit
			want string
		}{
			{"400 cal", Joule, "1673.6 J"},
			{"1 km/hr", Meter, "1000 m/hr"},
			{"1 km/hr", Second, "0.0002777777777777778 km/s"},
			{"1 m/s^2", Minute, "3600 m/min^2"},
			{"25 °C", Kelvin, "298.15 K"},
			{"1 lb", Gram, "453.59237 g"},
		}
		for _, tt := range tests {
			q := MustParse(tt.q)
			got, err := q.ConvertUnit(tt.u)
			if err != nil {
				t.Errorf("%q.ConvertUnit(%v) failed: %v", q, tt.u, err)
				continue
			}
			want := MustParse(tt.want)
			if !got.SameUnits(want) || !approx(got.Magnitude(), want.Magnitude()) {
				t.Errorf("%q.ConvertUnit(%v) = %q, want %q", q, tt.u, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			q    string
			u    Unit
			want error
		}{
			"missing dimension": {"1 m", Second, ErrValueConversion},
			"invalid unit":      {"1 m", Unit(0), ErrUnsupportedUnit},
			"offset combined":   {"1 J/K", Celsius, ErrValueConversion},
		}
		for name, tt := range tests {
			q := MustParse(tt.q)
			_, err := q.ConvertUnit(tt.u)
			if !errors.Is(err, tt.want) {
				t.Errorf("%q.ConvertUnit(%v) error = %v, want %v (%v)", q, tt.u, err, tt.want, name)
			}
		}
	})
}

func TestQuantity_ConvertPrefixedUnit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			q    string
			p    Prefix
			u    Unit
			want string
		}{
			{"1 m", Kilo, Meter, "0.001 km"},
			{"1 ft", Centi, Meter, "30.48 cm"},
			{"1 kWh", Mega, Joule, "3.6 MJ"},
			{"1 MB", Kilo, Byte, "1000 kB"},
			{"2 km^2", None, Meter, "2e+06 m^2"},
		}
		for _, tt := range tests {
			q := MustParse(tt.q)
			got, err := q.ConvertPrefixedUnit(tt.p, tt.u)
			if err != nil {
				t.Errorf("%q.ConvertPrefixedUnit(%v, %v) failed: %v", q, tt.p, tt.u, err)
				continue
			}
			want := MustParse(tt.want)
			if !got.SameUnits(want) || !approx(got.Magnitude(), want.Magnitude()) {
				t.Errorf("%q.ConvertPrefixedUnit(%v, %v) = %q, want %q", q, tt.p, tt.u, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			q    string
			p    Prefix
			u    Unit
			want error
		}{
			"not prefixable": {"1 m", Kilo, Foot, ErrUnsupportedMetric},
			"invalid prefix": {"1 m", Prefix(4), Meter, ErrUnsupportedMetric},
		}
		for name, tt := range tests {
			q := MustParse(tt.q)
			_, err := q.ConvertPrefixedUnit(tt.p, tt.u)
			if !errors.Is(err, tt.want) {
				t.Errorf("%q.ConvertPrefixedUnit(%v, %v) error = %v, want %v (%v)", q, tt.p, tt.u, err, tt.want, name)
			}
		}
	})
}

func TestRescale(t *testing.T) {
	tests := []struct {
		x        float64
		e        exponent
		from, to PrefixedUnit
		want     float64
	}{
		{1, 1, PrefixedUnit{Unit: Foot}, PrefixedUnit{Unit: Meter}, 0.3048},
		{1, 2, PrefixedUnit{Unit: Foot}, PrefixedUnit{Unit: Meter}, 0.3048 * 0.3048},
		{1, -1, PrefixedUnit{Unit: Foot}, PrefixedUnit{Unit: Meter}, 1 / 0.3048},
		{1, 3, PrefixedUnit{Prefix: Kilo, Unit: Meter}, PrefixedUnit{Unit: Meter}, 1e9},
	}
	for _, tt := range tests {
		got, err := rescale(tt.x, Length, tt.e, tt.from, tt.to, true)
		if err != nil {
			t.Errorf("rescale(%v, %v, %v, %v) failed: %v", tt.x, tt.e, tt.from, tt.to, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9*tt.want {
			t.Errorf("rescale(%v, %v, %v, %v) = %v, want %v", tt.x, tt.e, tt.from, tt.to, got, tt.want)
		}
	}
}
