package quantity

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func TestParseUnits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			units string
			want  string
		}{
			// Empty and placeholders
			{"", ""},
			{"   ", ""},
			{"1", ""},
			{"1/s", "1/s"},
			{"1/mmHg", "1/mmHg"},

			// Products and quotients
			{"m", "m"},
			{"km/hr", "km/hr"},
			{"kg*m/s^2", "m*kg/s^2"},
			{" kg * m / s ^ 2 ", "m*kg/s^2"},
			{"m^-2", "1/m^2"},
			{"s^2/m", "s^2/m"},
			{"m/s^-1", "m*s"},
			{"N*m", "m*N"},

			// Groups
			{"(m/s)", "m/s"},
			{"(m/s)^2", "m^2/s^2"},
			{"(m/s)^-1", "s/m"},
			{"kg/(m*s^2)", "kg/m*s^2"},
			{"(kg*m^2)/(s^2*K)", "m^2*kg/s^2*K"},
			{"1/(1/s)", "s"},
			{"((m))", "m"},

			// Compound units
			{"mph", "mi/hr"},
			{"1/mph", "hr/mi"},
			{"kph", "km/hr"},
			{"kn", "nmi/hr"},

			// Prefixes
			{"km", "km"},
			{"μs", "μs"},
			{"us", "μs"},
			{"µs", "μs"},
			{"dam", "dam"},
			{"daL", "daL"},
			{"kΩ", "kΩ"},
			{"MeV", "MeV"},
			{"kWh", "kWh"},
			{"mmol", "mmol"},
			{"Gbit", "Gbit"},
			{"kB", "kB"},

			// Aliases
			{"ohm", "Ω"},
			{"degC", "°C"},
			{"l", "L"},
			{"ATM", "atm"},
			{"torr", "Torr"},
			{"°", "deg"},
			{"lbs", "lb"},

			// Exact symbols that look prefixed
			{"ft", "ft"},
			{"pt", "pt"},
			{"qt", "qt"},
			{"dB", "dB"},
			{"min", "min"},
			{"day", "day"},
			{"mmHg", "mmHg"},
			{"Cal", "Cal"},
			{"kcal", "kcal"},
			{"Pa", "Pa"},

			// Repeated dimensions overwrite
			{"m*m", "m"},
			{"m*ft", "ft"},
		}
		for _, tt := range tests {
			q, err := parseUnits(tt.units)
			if err != nil {
				t.Errorf("parseUnits(%q) failed: %v", tt.units, err)
				continue
			}
			got := q.UnitString()
			if got != tt.want {
				t.Errorf("parseUnits(%q).UnitString() = %q, want %q", tt.units, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			units string
			want  error
		}{
			"second slash":       {"m/s/kg", ErrParsing},
			"trailing slash":     {"J/mol/", ErrParsing},
			"missing paren":      {"(m", ErrParsing},
			"extra paren":        {"m)", ErrParsing},
			"reversed parens":    {")m(", ErrParsing},
			"paren in symbol":    {"m(s)", ErrParsing},
			"symbol after group": {"(m)s", ErrParsing},
			"empty group":        {"()", ErrParsing},
			"empty token 1":      {"m**s", ErrParsing},
			"empty token 2":      {"*m", ErrParsing},
			"empty token 3":      {"m/", ErrParsing},
			"no exponent":        {"m^", ErrParsing},
			"bad exponent":       {"m^x", ErrParsing},
			"float exponent":     {"m^1.5", ErrParsing},
			"zero exponent":      {"m^0", ErrParsing},
			"no symbol":          {"^2", ErrParsing},
			"number":             {"2m", ErrParsing},
			"group zero":         {"(m/s)^0", ErrParsing},
			"unknown prefix":     {"xyz", ErrUnsupportedMetric},
			"prefix on foot":     {"kft", ErrUnsupportedMetric},
			"prefix on celsius":  {"m°C", ErrUnsupportedMetric},
			"prefix on compound": {"kmph", ErrUnsupportedMetric},
			"prefix stacking 1":  {"kkm", ErrUnsupportedUnit},
			"prefix stacking 2":  {"mμs", ErrUnsupportedUnit},
			"unknown unit 1":     {"kx", ErrUnsupportedUnit},
			"unknown unit 2":     {"x", ErrUnsupportedUnit},
			"too long":           {"abcdefg", ErrUnsupportedUnit},
			"compound power":     {"mph^2", ErrUnsupportedUnit},
			"exponent overflow":  {"m^200", ErrExponentRange},
			"group overflow":     {"(m^100)^2", ErrExponentRange},
			"group wraparound":   {"(m^4611686018427387904)^4", ErrExponentRange},
			"nested overflow":    {"((m^2)^8)^8", ErrExponentRange},
		}
		for name, tt := range tests {
			_, err := parseUnits(tt.units)
			if !errors.Is(err, tt.want) {
				t.Errorf("parseUnits(%q) error = %v, want %v (%v)", tt.units, err, tt.want, name)
			}
		}
	})
}

func TestParseUnits_Exponents(t *testing.T) {
	tests := []struct {
		units string
		want  map[Dimension]int
	}{
		{"m^127", map[Dimension]int{Length: 127}},
		{"m^-128", map[Dimension]int{Length: -128}},
		{"(m*s)^-3", map[Dimension]int{Length: -3, Time: -3}},
		{"kg/(m/s)", map[Dimension]int{Mass: 1, Length: -1, Time: 1}},
		{"mph^-1", map[Dimension]int{Length: -1, Time: 1}},
		{"W/(m^2*K^4)", map[Dimension]int{Power: 1, Length: -2, Temperature: -4}},
	}
	for _, tt := range tests {
		q, err := parseUnits(tt.units)
		if err != nil {
			t.Errorf("parseUnits(%q) failed: %v", tt.units, err)
			continue
		}
		for d := Dimension(0); d < NumDimensions; d++ {
			if got := q.Exponent(d); got != tt.want[d] {
				t.Errorf("parseUnits(%q).Exponent(%v) = %v, want %v", tt.units, d, got, tt.want[d])
			}
		}
	}
}

// TestParseUnits_Prefixes checks that every prefix combined with every
// unit that accepts prefixes is resolved back to the same prefix and unit.
// Combinations that spell another registry symbol, such as "ft", are skipped.
func TestParseUnits_Prefixes(t *testing.T) {
	skipped := 0
	for _, u := range Units() {
		if !u.Prefixable() {
			continue
		}
		for _, p := range Prefixes() {
			sym := p.Symbol() + u.Symbol()
			if _, ok := lookupSymbol(sym, utf8.RuneCountInString(sym)); ok {
				skipped++
				continue
			}
			q, err := parseUnits(sym)
			if err != nil {
				t.Errorf("parseUnits(%q) failed: %v", sym, err)
				continue
			}
			want := PrefixedUnit{Prefix: p, Unit: u}
			got, ok := q.Unit(u.Dimension())
			if !ok || got != want || q.Exponent(u.Dimension()) != 1 {
				t.Errorf("parseUnits(%q) = %q, want %q", sym, q.UnitString(), want)
			}
			if s := q.UnitString(); s != sym {
				t.Errorf("parseUnits(%q).UnitString() = %q, want %q", sym, s, sym)
			}
		}
	}
	// ft, pt, qt, dB
	if skipped != 4 {
		t.Errorf("skipped %v symbols, want 4", skipped)
	}
}

func TestParseUnits_Units(t *testing.T) {
	for _, u := range Units() {
		syms := append([]string{u.Symbol()}, u.Aliases()...)
		for _, sym := range syms {
			q, err := parseUnits(sym)
			if err != nil {
				t.Errorf("parseUnits(%q) failed: %v", sym, err)
				continue
			}
			got, ok := q.Unit(u.Dimension())
			if !ok || got != (PrefixedUnit{Unit: u}) {
				t.Errorf("parseUnits(%q) = %q, want %q", sym, q.UnitString(), u)
			}
		}
	}
}
