package quantity

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Unit is a concrete unit of measurement, such as meter or foot.
// Every unit belongs to exactly one [Dimension].
// The zero value is not a valid unit.
type Unit uint8

const (
	invalidUnit Unit = iota

	// Length
	Meter
	Foot
	Inch
	Yard
	Mile
	NauticalMile
	AstronomicalUnit
	LightYear
	Parsec
	Angstrom

	// Time
	Second
	Minute
	Hour
	Day
	Week
	Year

	// Mass
	Gram
	Pound
	Ounce
	Tonne
	ShortTon
	Slug
	Grain
	Dalton

	// Electric current and charge
	Ampere
	Coulomb
	AmpereHour

	// Electromagnetism
	Volt
	Siemens
	Farad
	Ohm
	Henry
	Weber
	Maxwell
	Tesla
	Gauss

	// Temperature
	Kelvin
	Celsius
	Fahrenheit
	Rankine

	// Amount of substance and photometry
	Mole
	Candela
	Lumen
	Lux
	FootCandle

	// Volume
	Liter
	Gallon
	Quart
	Pint
	Cup
	FluidOunce
	Tablespoon
	Teaspoon

	// Pressure
	Pascal
	Bar
	Atmosphere
	PoundPerSquareInch
	Torr
	MillimeterOfMercury
	InchOfMercury

	// Angle
	Radian
	Degree
	Gradian
	Arcminute
	Arcsecond
	Revolution

	// Frequency
	Hertz
	RevolutionPerMinute

	// Force
	Newton
	PoundForce
	Dyne
	KilogramForce

	// Energy
	Joule
	Calorie
	KiloCalorie
	Electronvolt
	WattHour
	BritishThermalUnit
	Erg

	// Power
	Watt
	Horsepower

	// Radiation
	Becquerel
	Curie
	Gray
	Sievert
	Rem

	// Miscellaneous
	Katal
	Decibel
	Bit
	Byte
	Steradian

	numUnits
)

// affine describes a temperature scale with an offset from Celsius:
// celsius = (x - zero) * num / den.
type affine struct {
	zero, num, den float64
}

// celsiusZero is 0 °C in kelvin.
const celsiusZero = 273.15

type unitInfo struct {
	symbol     string
	aliases    []string
	name       string
	dim        Dimension
	ratio      float64 // number of base units in one unit
	prefixable bool
	affine     *affine
}

var unitInfos = [numUnits]unitInfo{
	Meter:            {symbol: "m", name: "meter", dim: Length, ratio: 1, prefixable: true},
	Foot:             {symbol: "ft", name: "foot", dim: Length, ratio: 0.3048},
	Inch:             {symbol: "in", name: "inch", dim: Length, ratio: 0.0254},
	Yard:             {symbol: "yd", name: "yard", dim: Length, ratio: 0.9144},
	Mile:             {symbol: "mi", name: "mile", dim: Length, ratio: 1609.344},
	NauticalMile:     {symbol: "nmi", name: "nautical mile", dim: Length, ratio: 1852},
	AstronomicalUnit: {symbol: "AU", name: "astronomical unit", dim: Length, ratio: 1.495978707e11},
	LightYear:        {symbol: "ly", name: "light-year", dim: Length, ratio: 9.4607304725808e15},
	Parsec:           {symbol: "pc", name: "parsec", dim: Length, ratio: 3.0856775814913673e16},
	Angstrom:         {symbol: "Å", name: "ångström", dim: Length, ratio: 1e-10},

	Second: {symbol: "s", name: "second", dim: Time, ratio: 1, prefixable: true},
	Minute: {symbol: "min", name: "minute", dim: Time, ratio: 60},
	Hour:   {symbol: "hr", name: "hour", dim: Time, ratio: 3600},
	Day:    {symbol: "day", name: "day", dim: Time, ratio: 86400},
	Week:   {symbol: "wk", name: "week", dim: Time, ratio: 604800},
	Year:   {symbol: "yr", name: "julian year", dim: Time, ratio: 31557600},

	Gram:     {symbol: "g", name: "gram", dim: Mass, ratio: 1, prefixable: true},
	Pound:    {symbol: "lb", aliases: []string{"lbs"}, name: "pound", dim: Mass, ratio: 453.59237},
	Ounce:    {symbol: "oz", name: "ounce", dim: Mass, ratio: 28.349523125},
	Tonne:    {symbol: "t", name: "tonne", dim: Mass, ratio: 1e6, prefixable: true},
	ShortTon: {symbol: "ton", name: "short ton", dim: Mass, ratio: 907184.74},
	Slug:     {symbol: "slug", name: "slug", dim: Mass, ratio: 14593.902937206364},
	Grain:    {symbol: "gr", name: "grain", dim: Mass, ratio: 0.06479891},
	Dalton:   {symbol: "Da", name: "dalton", dim: Mass, ratio: 1.66053906660e-24, prefixable: true},

	Ampere:     {symbol: "A", name: "ampere", dim: Current, ratio: 1, prefixable: true},
	Coulomb:    {symbol: "C", name: "coulomb", dim: Charge, ratio: 1, prefixable: true},
	AmpereHour: {symbol: "Ah", name: "ampere-hour", dim: Charge, ratio: 3600, prefixable: true},

	Volt:    {symbol: "V", name: "volt", dim: Potential, ratio: 1, prefixable: true},
	Siemens: {symbol: "S", name: "siemens", dim: Conductance, ratio: 1, prefixable: true},
	Farad:   {symbol: "F", name: "farad", dim: Capacitance, ratio: 1, prefixable: true},
	Ohm:     {symbol: "Ω", aliases: []string{"ohm"}, name: "ohm", dim: Resistance, ratio: 1, prefixable: true},
	Henry:   {symbol: "H", name: "henry", dim: Inductance, ratio: 1, prefixable: true},
	Weber:   {symbol: "Wb", name: "weber", dim: MagneticFlux, ratio: 1, prefixable: true},
	Maxwell: {symbol: "Mx", name: "maxwell", dim: MagneticFlux, ratio: 1e-8},
	Tesla:   {symbol: "T", name: "tesla", dim: FluxDensity, ratio: 1, prefixable: true},
	Gauss:   {symbol: "G", name: "gauss", dim: FluxDensity, ratio: 1e-4},

	Kelvin:     {symbol: "K", name: "kelvin", dim: Temperature, ratio: 1, prefixable: true},
	Celsius:    {symbol: "°C", aliases: []string{"degC"}, name: "degree Celsius", dim: Temperature, ratio: 1, affine: &affine{zero: 0, num: 1, den: 1}},
	Fahrenheit: {symbol: "°F", aliases: []string{"degF"}, name: "degree Fahrenheit", dim: Temperature, ratio: 5.0 / 9.0, affine: &affine{zero: 32, num: 5, den: 9}},
	Rankine:    {symbol: "°R", aliases: []string{"degR"}, name: "degree Rankine", dim: Temperature, ratio: 5.0 / 9.0},

	Mole:       {symbol: "mol", name: "mole", dim: Substance, ratio: 1, prefixable: true},
	Candela:    {symbol: "cd", name: "candela", dim: LuminousIntensity, ratio: 1, prefixable: true},
	Lumen:      {symbol: "lm", name: "lumen", dim: LuminousFlux, ratio: 1, prefixable: true},
	Lux:        {symbol: "lx", name: "lux", dim: Illuminance, ratio: 1, prefixable: true},
	FootCandle: {symbol: "fc", name: "foot-candle", dim: Illuminance, ratio: 10.763910416709722},

	Liter:      {symbol: "L", aliases: []string{"l"}, name: "liter", dim: Volume, ratio: 1, prefixable: true},
	Gallon:     {symbol: "gal", name: "US gallon", dim: Volume, ratio: 3.785411784},
	Quart:      {symbol: "qt", name: "US quart", dim: Volume, ratio: 0.946352946},
	Pint:       {symbol: "pt", name: "US pint", dim: Volume, ratio: 0.473176473},
	Cup:        {symbol: "cup", name: "US cup", dim: Volume, ratio: 0.2365882365},
	FluidOunce: {symbol: "floz", name: "US fluid ounce", dim: Volume, ratio: 0.0295735295625},
	Tablespoon: {symbol: "tbsp", name: "US tablespoon", dim: Volume, ratio: 0.01478676478125},
	Teaspoon:   {symbol: "tsp", name: "US teaspoon", dim: Volume, ratio: 0.00492892159375},

	Pascal:              {symbol: "Pa", name: "pascal", dim: Pressure, ratio: 1, prefixable: true},
	Bar:                 {symbol: "bar", name: "bar", dim: Pressure, ratio: 1e5, prefixable: true},
	Atmosphere:          {symbol: "atm", aliases: []string{"ATM"}, name: "standard atmosphere", dim: Pressure, ratio: 101325},
	PoundPerSquareInch:  {symbol: "psi", name: "pound per square inch", dim: Pressure, ratio: 6894.757293168361},
	Torr:                {symbol: "Torr", aliases: []string{"torr"}, name: "torr", dim: Pressure, ratio: 101325.0 / 760.0},
	MillimeterOfMercury: {symbol: "mmHg", name: "millimeter of mercury", dim: Pressure, ratio: 133.322387415},
	InchOfMercury:       {symbol: "inHg", name: "inch of mercury", dim: Pressure, ratio: 3386.389},

	Radian:     {symbol: "rad", name: "radian", dim: Angle, ratio: 1, prefixable: true},
	Degree:     {symbol: "deg", aliases: []string{"°"}, name: "degree", dim: Angle, ratio: math.Pi / 180},
	Gradian:    {symbol: "gon", name: "gradian", dim: Angle, ratio: math.Pi / 200},
	Arcminute:  {symbol: "arcmin", name: "arcminute", dim: Angle, ratio: math.Pi / 10800},
	Arcsecond:  {symbol: "arcsec", name: "arcsecond", dim: Angle, ratio: math.Pi / 648000},
	Revolution: {symbol: "rev", name: "revolution", dim: Angle, ratio: 2 * math.Pi},

	Hertz:               {symbol: "Hz", name: "hertz", dim: Frequency, ratio: 1, prefixable: true},
	RevolutionPerMinute: {symbol: "rpm", name: "revolution per minute", dim: Frequency, ratio: 1.0 / 60.0},

	Newton:        {symbol: "N", name: "newton", dim: Force, ratio: 1, prefixable: true},
	PoundForce:    {symbol: "lbf", name: "pound-force", dim: Force, ratio: 4.4482216152605},
	Dyne:          {symbol: "dyn", name: "dyne", dim: Force, ratio: 1e-5},
	KilogramForce: {symbol: "kgf", name: "kilogram-force", dim: Force, ratio: 9.80665},

	Joule:              {symbol: "J", name: "joule", dim: Energy, ratio: 1, prefixable: true},
	Calorie:            {symbol: "cal", name: "calorie", dim: Energy, ratio: 4.184, prefixable: true},
	KiloCalorie:        {symbol: "Cal", name: "food calorie", dim: Energy, ratio: 4184},
	Electronvolt:       {symbol: "eV", name: "electronvolt", dim: Energy, ratio: 1.602176634e-19, prefixable: true},
	WattHour:           {symbol: "Wh", name: "watt-hour", dim: Energy, ratio: 3600, prefixable: true},
	BritishThermalUnit: {symbol: "BTU", aliases: []string{"Btu"}, name: "british thermal unit", dim: Energy, ratio: 1055.05585262},
	Erg:                {symbol: "erg", name: "erg", dim: Energy, ratio: 1e-7},

	Watt:       {symbol: "W", name: "watt", dim: Power, ratio: 1, prefixable: true},
	Horsepower: {symbol: "hp", name: "horsepower", dim: Power, ratio: 745.69987158227022},

	Becquerel: {symbol: "Bq", name: "becquerel", dim: Radioactivity, ratio: 1, prefixable: true},
	Curie:     {symbol: "Ci", name: "curie", dim: Radioactivity, ratio: 3.7e10},
	Gray:      {symbol: "Gy", name: "gray", dim: AbsorbedDose, ratio: 1, prefixable: true},
	Sievert:   {symbol: "Sv", name: "sievert", dim: EquivalentDose, ratio: 1, prefixable: true},
	Rem:       {symbol: "rem", name: "rem", dim: EquivalentDose, ratio: 0.01},

	Katal:     {symbol: "kat", name: "katal", dim: CatalyticActivity, ratio: 1, prefixable: true},
	Decibel:   {symbol: "dB", name: "decibel", dim: SoundLevel, ratio: 1},
	Bit:       {symbol: "bit", aliases: []string{"b"}, name: "bit", dim: Information, ratio: 1, prefixable: true},
	Byte:      {symbol: "B", aliases: []string{"byte"}, name: "byte", dim: Information, ratio: 8, prefixable: true},
	Steradian: {symbol: "sr", name: "steradian", dim: SolidAngle, ratio: 1, prefixable: true},
}

// coherent holds the unit every dimension is expressed in when a quantity
// is rewritten into base units.
var coherent = [NumDimensions]PrefixedUnit{
	Length:            {Unit: Meter},
	Time:              {Unit: Second},
	Mass:              {Prefix: Kilo, Unit: Gram},
	Current:           {Unit: Ampere},
	Charge:            {Unit: Coulomb},
	Potential:         {Unit: Volt},
	Conductance:       {Unit: Siemens},
	Capacitance:       {Unit: Farad},
	Resistance:        {Unit: Ohm},
	Inductance:        {Unit: Henry},
	MagneticFlux:      {Unit: Weber},
	FluxDensity:       {Unit: Tesla},
	Temperature:       {Unit: Kelvin},
	Substance:         {Unit: Mole},
	LuminousIntensity: {Unit: Candela},
	LuminousFlux:      {Unit: Lumen},
	Illuminance:       {Unit: Lux},
	Volume:            {Unit: Liter},
	Pressure:          {Unit: Pascal},
	Angle:             {Unit: Radian},
	Frequency:         {Unit: Hertz},
	Force:             {Unit: Newton},
	Energy:            {Unit: Joule},
	Power:             {Unit: Watt},
	Radioactivity:     {Unit: Becquerel},
	AbsorbedDose:      {Unit: Gray},
	EquivalentDose:    {Unit: Sievert},
	CatalyticActivity: {Unit: Katal},
	SoundLevel:        {Unit: Decibel},
	Information:       {Unit: Bit},
	SolidAngle:        {Unit: Steradian},
}

// compoundTerm is one of the dimensions set by a compound symbol.
type compoundTerm struct {
	unit PrefixedUnit
	sign int8
}

// symbolEntry is the result of an exact symbol lookup.
// Either unit or compound is set.
type symbolEntry struct {
	unit     Unit
	compound []compoundTerm
}

var compounds = map[string][]compoundTerm{
	"mph": {{unit: PrefixedUnit{Unit: Mile}, sign: 1}, {unit: PrefixedUnit{Unit: Hour}, sign: -1}},
	"kph": {{unit: PrefixedUnit{Prefix: Kilo, Unit: Meter}, sign: 1}, {unit: PrefixedUnit{Unit: Hour}, sign: -1}},
	"kn":  {{unit: PrefixedUnit{Unit: NauticalMile}, sign: 1}, {unit: PrefixedUnit{Unit: Hour}, sign: -1}},
}

// maxSymbolLen is the maximum length of a unit symbol in runes,
// including its metric prefix.
const maxSymbolLen = 6

// symbols holds exact symbol lookup tables, where symbols[n-1]
// contains symbols of length n.
var symbols = newSymbolTables()

func newSymbolTables() [maxSymbolLen]map[string]symbolEntry {
	var tables [maxSymbolLen]map[string]symbolEntry
	for i := range tables {
		tables[i] = make(map[string]symbolEntry)
	}
	add := func(sym string, e symbolEntry) {
		n := utf8.RuneCountInString(sym)
		if n < 1 || n > maxSymbolLen {
			panic(fmt.Sprintf("symbol %q has %v rune(s)", sym, n)) // unexpected by design
		}
		if _, ok := tables[n-1][sym]; ok {
			panic(fmt.Sprintf("symbol %q is defined twice", sym)) // unexpected by design
		}
		tables[n-1][sym] = e
	}
	for u := Meter; u < numUnits; u++ {
		info := &unitInfos[u]
		add(info.symbol, symbolEntry{unit: u})
		for _, alias := range info.aliases {
			add(alias, symbolEntry{unit: u})
		}
	}
	for sym, terms := range compounds {
		add(sym, symbolEntry{compound: terms})
	}
	return tables
}

// lookupSymbol returns an exact match for the symbol of length n runes.
func lookupSymbol(sym string, n int) (symbolEntry, bool) {
	if n < 1 || n > maxSymbolLen {
		return symbolEntry{}, false
	}
	e, ok := symbols[n-1][sym]
	return e, ok
}

// Units returns all units known to the registry.
func Units() []Unit {
	all := make([]Unit, 0, numUnits-1)
	for u := Meter; u < numUnits; u++ {
		all = append(all, u)
	}
	return all
}

// UnitsOf returns all units that belong to dimension d.
func UnitsOf(d Dimension) []Unit {
	var all []Unit
	for u := Meter; u < numUnits; u++ {
		if unitInfos[u].dim == d {
			all = append(all, u)
		}
	}
	return all
}

func (u Unit) valid() bool {
	return u > invalidUnit && u < numUnits
}

// Symbol returns the canonical symbol of the unit, for example "ft".
func (u Unit) Symbol() string {
	if !u.valid() {
		return ""
	}
	return unitInfos[u].symbol
}

// Aliases returns alternative symbols accepted by the parser.
func (u Unit) Aliases() []string {
	if !u.valid() {
		return nil
	}
	return append([]string(nil), unitInfos[u].aliases...)
}

// Name returns the name of the unit, for example "foot".
func (u Unit) Name() string {
	if !u.valid() {
		return ""
	}
	return unitInfos[u].name
}

// String implements the [fmt.Stringer] interface.
func (u Unit) String() string {
	if !u.valid() {
		return "invalid"
	}
	return unitInfos[u].symbol
}

// Dimension returns the dimension the unit measures.
func (u Unit) Dimension() Dimension {
	return unitInfos[u].dim
}

// Ratio returns the number of base units in one u.
// Base units are the units with ratio 1, such as meter, gram, or liter.
// For temperature units with an offset, Ratio returns the size of one degree
// in kelvins.
func (u Unit) Ratio() float64 {
	return unitInfos[u].ratio
}

// Prefixable returns true if the unit accepts a metric prefix.
func (u Unit) Prefixable() bool {
	return unitInfos[u].prefixable
}

// Affine returns true if conversion of the unit requires an offset.
func (u Unit) Affine() bool {
	return unitInfos[u].affine != nil
}

// PrefixedUnit is a unit together with its metric prefix,
// for example kilometer.
// The zero value means no unit.
type PrefixedUnit struct {
	Prefix Prefix
	Unit   Unit
}

// IsZero returns true if no unit is set.
func (pu PrefixedUnit) IsZero() bool {
	return pu.Unit == invalidUnit
}

// String returns the prefixed symbol, for example "km".
func (pu PrefixedUnit) String() string {
	if pu.IsZero() {
		return ""
	}
	return pu.Prefix.Symbol() + pu.Unit.Symbol()
}

// factor returns the number of base units in one pu.
func (pu PrefixedUnit) factor() float64 {
	return unitInfos[pu.Unit].ratio * pu.Prefix.Factor()
}

// toCelsius converts a temperature x from pu to degrees Celsius.
func (pu PrefixedUnit) toCelsius(x float64) float64 {
	x *= pu.Prefix.Factor()
	if a := unitInfos[pu.Unit].affine; a != nil {
		return (x - a.zero) * a.num / a.den
	}
	return x*unitInfos[pu.Unit].ratio - celsiusZero
}

// fromCelsius is the inverse of toCelsius.
func (pu PrefixedUnit) fromCelsius(c float64) float64 {
	var x float64
	if a := unitInfos[pu.Unit].affine; a != nil {
		x = c*a.den/a.num + a.zero
	} else {
		x = (c + celsiusZero) / unitInfos[pu.Unit].ratio
	}
	return x / pu.Prefix.Factor()
}

// ratio returns the factor converting a magnitude expressed in from
// into a magnitude expressed in to, ignoring offsets.
func ratio(from, to PrefixedUnit) float64 {
	if from == to {
		return 1
	}
	return from.factor() / to.factor()
}
