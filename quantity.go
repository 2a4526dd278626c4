package quantity

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Quantity type is a representation of a physical quantity.
// The zero value is a dimensionless 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A quantity is a struct with three parameters:
//
//   - Magnitude: a floating-point number.
//   - Exponents: a signed integer power for each [Dimension].
//   - Units: a concrete unit with a metric prefix for each dimension
//     with a non-zero exponent.
//
// The units determine how the magnitude is interpreted along each dimension.
// For example, 5 ft and 1.524 m are dimensionally equal, but they are not
// equal, because they use different units of length.
type Quantity struct {
	mag   float64                     // the magnitude of the quantity
	exp   [NumDimensions]exponent     // the power of every dimension
	units [NumDimensions]PrefixedUnit // the unit of every active dimension
}

var (
	// ErrUnsupportedUnit is returned when a unit symbol cannot be resolved.
	ErrUnsupportedUnit = errors.New("unsupported unit")
	// ErrUnsupportedMetric is returned when a metric prefix is unknown or
	// cannot be applied to the unit.
	ErrUnsupportedMetric = errors.New("unsupported metric prefix")
	// ErrParsing is returned for malformed unit expressions and quantities.
	ErrParsing = errors.New("parsing error")
	// ErrValueConversion is returned when quantities are dimensionally
	// incompatible for the requested operation.
	ErrValueConversion = errors.New("value conversion error")
	// ErrUnitReduction is returned when no decomposition matches.
	ErrUnitReduction = errors.New("unit reduction error")
	// ErrDivisionByZero is returned when dividing by a zero magnitude.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrExponentRange is returned when a dimension exponent overflows.
	ErrExponentRange = errors.New("exponent out of range")
	// ErrInvalidOperation is returned when the result is not a real number.
	ErrInvalidOperation = errors.New("invalid operation")
)

// New returns a quantity with magnitude mag measured in units.
// The units are written as a product of unit symbols, for example
// "kg*m/s^2", "1/mmHg", or "N*m". See [Quantity] package documentation
// for the grammar.
// An empty units string gives a dimensionless quantity.
//
// New returns an error if units cannot be parsed.
func New(mag float64, units string) (Quantity, error) {
	q, err := parseUnits(units)
	if err != nil {
		return Quantity{}, err
	}
	q.mag = mag
	return q, nil
}

// MustNew is like [New] but panics if the units cannot be parsed.
// It simplifies safe initialization of global variables holding quantities.
func MustNew(mag float64, units string) Quantity {
	q, err := New(mag, units)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %q) failed: %v", mag, units, err))
	}
	return q
}

// NewFromUnit returns a quantity with magnitude mag measured in u.
//
// NewFromUnit panics if u is not a valid unit.
func NewFromUnit(mag float64, u Unit) Quantity {
	return NewFromPrefixedUnit(mag, None, u)
}

// NewFromPrefixedUnit returns a quantity with magnitude mag measured in
// u with metric prefix p, for example NewFromPrefixedUnit(5, Kilo, Meter).
//
// NewFromPrefixedUnit panics if:
//   - u is not a valid unit;
//   - p is not a valid prefix or u does not accept a prefix.
func NewFromPrefixedUnit(mag float64, p Prefix, u Unit) Quantity {
	switch {
	case !u.valid():
		panic(fmt.Sprintf("NewFromPrefixedUnit(%v, %v, %v) failed: %v", mag, p, u, ErrUnsupportedUnit))
	case !p.valid(), p != None && !u.Prefixable():
		panic(fmt.Sprintf("NewFromPrefixedUnit(%v, %v, %v) failed: %v", mag, p, u, ErrUnsupportedMetric))
	}
	var q Quantity
	q.mag = mag
	q.set(u.Dimension(), 1, PrefixedUnit{Prefix: p, Unit: u})
	return q
}

// Parse converts a string to a quantity.
// The input string must be a number optionally followed by units:
//
//	20 mph
//	-1.5e3 kg*m/s^2
//	5eV
//	0.25
//
// Whitespace between the number and the units is optional.
// Parse accepts the output of [Quantity.String].
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	pos := scanNumber(s)
	if pos == 0 {
		return Quantity{}, fmt.Errorf("no magnitude in %q: %w", s, ErrParsing)
	}
	mag, err := strconv.ParseFloat(s[:pos], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("magnitude %q: %w", s[:pos], ErrParsing)
	}
	return New(mag, s[pos:])
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) Quantity {
	q, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return q
}

// scanNumber returns the length of the leading number in s.
// The exponent part is consumed only if it has digits, so that
// "5eV" is read as 5 electronvolts.
func scanNumber(s string) int {
	var (
		pos    int
		width  int
		digits bool
	)

	width = len(s)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		pos++
	}

	// Integer
	for pos < width && isDigit(s[pos]) {
		digits = true
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && isDigit(s[pos]) {
			digits = true
			pos++
		}
	}

	if !digits {
		return 0
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		p := pos + 1
		if p < width && (s[p] == '-' || s[p] == '+') {
			p++
		}
		if p < width && isDigit(s[p]) {
			for p < width && isDigit(s[p]) {
				p++
			}
			pos = p
		}
	}

	return pos
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// set assigns exponent e and unit pu to dimension d.
// A zero exponent deactivates the dimension.
func (q *Quantity) set(d Dimension, e exponent, pu PrefixedUnit) {
	if e == 0 {
		q.exp[d] = 0
		q.units[d] = PrefixedUnit{}
		return
	}
	q.exp[d] = e
	q.units[d] = pu
}

// Magnitude returns the magnitude of q expressed in its units.
func (q Quantity) Magnitude() float64 {
	return q.mag
}

// Exponent returns the power of dimension d.
func (q Quantity) Exponent(d Dimension) int {
	if d >= NumDimensions {
		return 0
	}
	return int(q.exp[d])
}

// Unit returns the unit used for dimension d.
// The second result is false if d is not active.
func (q Quantity) Unit(d Dimension) (PrefixedUnit, bool) {
	if d >= NumDimensions || q.exp[d] == 0 {
		return PrefixedUnit{}, false
	}
	return q.units[d], true
}

// Mask returns the set of active dimensions.
func (q Quantity) Mask() Mask {
	var m Mask
	for d, e := range q.exp {
		if e != 0 {
			m |= 1 << d
		}
	}
	return m
}

// IsDimensionless returns true if q has no active dimensions.
func (q Quantity) IsDimensionless() bool {
	return q.Mask() == 0
}

// only returns true if d is the only active dimension of q.
func (q Quantity) only(d Dimension) bool {
	return q.Mask() == maskOf(d)
}

// isPureRadian returns true if q is an angle of exponent 1 measured in radians.
func (q Quantity) isPureRadian() bool {
	return q.only(Angle) && q.exp[Angle] == 1 && q.units[Angle].Unit == Radian
}

// Equal returns true if q and r have the same magnitude, exponents and units.
// Also see methods [Quantity.SameUnits] and [Quantity.Cmp].
func (q Quantity) Equal(r Quantity) bool {
	return q == r
}

// SameUnits returns true if q and r have the same exponents and every
// active dimension uses the same unit, including the metric prefix.
func (q Quantity) SameUnits(r Quantity) bool {
	return q.exp == r.exp && q.units == r.units
}

// SameDimension returns true if q and r are dimensionally equal.
// Volume is interchangeable with length cubed and frequency is
// interchangeable with inverse time.
func (q Quantity) SameDimension(r Quantity) bool {
	if q.exp == r.exp {
		return true
	}
	qs, ok := q.shape()
	if !ok {
		return false
	}
	rs, ok := r.shape()
	if !ok {
		return false
	}
	return qs == rs
}

// shape returns exponents of q with volume folded into length
// and frequency folded into time.
func (q Quantity) shape() ([NumDimensions]exponent, bool) {
	s := q.exp
	var ok bool
	if v := s[Volume]; v != 0 {
		var l exponent
		if l, ok = v.mul(3); !ok {
			return s, false
		}
		if s[Length], ok = s[Length].add(l); !ok {
			return s, false
		}
		s[Volume] = 0
	}
	if f := s[Frequency]; f != 0 {
		if s[Time], ok = s[Time].sub(f); !ok {
			return s, false
		}
		s[Frequency] = 0
	}
	return s, true
}

// UnitString returns units of q in the format accepted by [New],
// for example "m*kg/s^2".
// The result is empty for dimensionless quantities.
func (q Quantity) UnitString() string {
	var num, den []string
	for d, e := range q.exp {
		switch {
		case e > 0:
			num = append(num, unitTerm(q.units[d], int(e)))
		case e < 0:
			den = append(den, unitTerm(q.units[d], -int(e)))
		}
	}
	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, "*")
	case len(num) == 0:
		return "1/" + strings.Join(den, "*")
	}
	return strings.Join(num, "*") + "/" + strings.Join(den, "*")
}

func unitTerm(pu PrefixedUnit, e int) string {
	if e == 1 {
		return pu.String()
	}
	return pu.String() + "^" + strconv.Itoa(e)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a quantity: the shortest magnitude that
// reads back exactly, followed by a space and the units.
// Dimensionless quantities are rendered as the bare magnitude.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Quantity) String() string {
	mag := strconv.FormatFloat(q.mag, 'g', -1, 64)
	u := q.UnitString()
	if u == "" {
		return mag
	}
	return mag + " " + u
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v:     20 mi/hr
//	%q:        "20 mi/hr"
//	%e, %f, %g: magnitude formatted as by [strconv.FormatFloat]
//
// Precision is only supported for %e, %f and %g verbs.
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (q Quantity) Format(state fmt.State, verb rune) {

	// Magnitude
	var mag string
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		prec := -1
		if p, ok := state.Precision(); ok {
			prec = p
		}
		fmtc := byte(verb)
		if fmtc == 'F' {
			fmtc = 'f'
		}
		mag = strconv.FormatFloat(q.mag, fmtc, prec, 64)
	case 's', 'S', 'v', 'V', 'q', 'Q':
		mag = strconv.FormatFloat(q.mag, 'g', -1, 64)
	default:
		fmt.Fprintf(state, "%%!%c(quantity.Quantity=%s)", verb, q.String())
		return
	}

	// Arithmetic sign
	sign := ""
	if strings.HasPrefix(mag, "-") {
		sign, mag = "-", mag[1:]
	} else if state.Flag('+') {
		sign = "+"
	} else if state.Flag(' ') {
		sign = " "
	}

	// Units
	tail := ""
	if u := q.UnitString(); u != "" {
		tail = " " + u
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(sign) + len(mag) + utf8.RuneCountInString(tail) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && quote == "":
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	// Writing result
	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(quote)
	buf.WriteString(sign)
	buf.WriteString(strings.Repeat("0", lzeroes))
	buf.WriteString(mag)
	buf.WriteString(tail)
	buf.WriteString(quote)
	buf.WriteString(strings.Repeat(" ", tspaces))
	state.Write([]byte(buf.String()))
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (q *Quantity) UnmarshalText(text []byte) error {
	var err error
	*q, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Quantity.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (q Quantity) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// Also see method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (q *Quantity) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*q, err = Parse(value)
	case []byte:
		*q, err = Parse(string(value))
	default:
		err = fmt.Errorf("cannot scan %T into %T: %w", value, q, ErrParsing)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Also see method [Quantity.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (q Quantity) Value() (driver.Value, error) {
	return q.String(), nil
}
