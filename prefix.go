package quantity

// Prefix is a metric prefix represented by its decimal exponent.
// The zero value means no prefix.
type Prefix int8

const (
	Quecto Prefix = -30
	Ronto  Prefix = -27
	Yocto  Prefix = -24
	Zepto  Prefix = -21
	Atto   Prefix = -18
	Femto  Prefix = -15
	Pico   Prefix = -12
	Nano   Prefix = -9
	Micro  Prefix = -6
	Milli  Prefix = -3
	Centi  Prefix = -2
	Deci   Prefix = -1
	None   Prefix = 0
	Deca   Prefix = 1
	Hecto  Prefix = 2
	Kilo   Prefix = 3
	Mega   Prefix = 6
	Giga   Prefix = 9
	Tera   Prefix = 12
	Peta   Prefix = 15
	Exa    Prefix = 18
	Zetta  Prefix = 21
	Yotta  Prefix = 24
	Ronna  Prefix = 27
	Quetta Prefix = 30
)

// prefixes lists all prefixes from the largest to the smallest.
var prefixes = [...]Prefix{
	Quetta, Ronna, Yotta, Zetta, Exa, Peta, Tera, Giga, Mega, Kilo, Hecto, Deca,
	Deci, Centi, Milli, Micro, Nano, Pico, Femto, Atto, Zepto, Yocto, Ronto, Quecto,
}

var prefixSymbols = map[Prefix]string{
	Quetta: "Q",
	Ronna:  "R",
	Yotta:  "Y",
	Zetta:  "Z",
	Exa:    "E",
	Peta:   "P",
	Tera:   "T",
	Giga:   "G",
	Mega:   "M",
	Kilo:   "k",
	Hecto:  "h",
	Deca:   "da",
	Deci:   "d",
	Centi:  "c",
	Milli:  "m",
	Micro:  "μ",
	Nano:   "n",
	Pico:   "p",
	Femto:  "f",
	Atto:   "a",
	Zepto:  "z",
	Yocto:  "y",
	Ronto:  "r",
	Quecto: "q",
}

// prefixLetters maps the leading rune of a unit symbol to a prefix.
// Deca is not here, its symbol has two letters.
var prefixLetters = map[rune]Prefix{
	'Q': Quetta,
	'R': Ronna,
	'Y': Yotta,
	'Z': Zetta,
	'E': Exa,
	'P': Peta,
	'T': Tera,
	'G': Giga,
	'M': Mega,
	'k': Kilo,
	'h': Hecto,
	'd': Deci,
	'c': Centi,
	'm': Milli,
	'μ': Micro,
	'µ': Micro, // micro sign, U+00B5
	'u': Micro,
	'n': Nano,
	'p': Pico,
	'f': Femto,
	'a': Atto,
	'z': Zepto,
	'y': Yocto,
	'r': Ronto,
	'q': Quecto,
}

// pow10 is a cache of powers of 10, where pow10[x+30] = 10^x.
var pow10 = [...]float64{
	1e-30, 1e-29, 1e-28, 1e-27, 1e-26, 1e-25, 1e-24, 1e-23, 1e-22, 1e-21,
	1e-20, 1e-19, 1e-18, 1e-17, 1e-16, 1e-15, 1e-14, 1e-13, 1e-12, 1e-11,
	1e-10, 1e-9, 1e-8, 1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1,
	1,
	1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20,
	1e21, 1e22, 1e23, 1e24, 1e25, 1e26, 1e27, 1e28, 1e29, 1e30,
}

// Prefixes returns all metric prefixes from the largest to the smallest.
func Prefixes() []Prefix {
	return append([]Prefix(nil), prefixes[:]...)
}

// Symbol returns the prefix symbol, for example "k" for [Kilo].
// The symbol of [None] is an empty string.
func (p Prefix) Symbol() string {
	return prefixSymbols[p]
}

// String implements the [fmt.Stringer] interface.
func (p Prefix) String() string {
	if p == None {
		return "none"
	}
	if s, ok := prefixSymbols[p]; ok {
		return s
	}
	return "invalid"
}

// Factor returns 10^p.
func (p Prefix) Factor() float64 {
	if p < Quecto || p > Quetta {
		return 0
	}
	return pow10[int(p)+30]
}

// valid returns true if p is one of the defined prefixes or [None].
func (p Prefix) valid() bool {
	if p == None {
		return true
	}
	_, ok := prefixSymbols[p]
	return ok
}
