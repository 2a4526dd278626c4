/*
Package quantity implements immutable physical quantities with
runtime dimensional analysis.
It is designed for engineering and scientific calculations where mixing up
feet and meters, or joules and newtons, must be detected rather than
silently propagated.

# Representation

[Quantity] is a struct with three fields:

  - Magnitude: a float64 number.
  - Exponents: a signed integer power for each of the 31 [Dimension]
    values, such as [Length], [Time], [Mass], or [Energy].
    A dimension with a non-zero exponent is called active.
    For example, an acceleration has length 1 and time -2.
  - Units: a [PrefixedUnit] for every active dimension, for example
    kilometer for length and hour for time.

The magnitude is interpreted in the units of each active dimension.
In this approach, the same physical quantity can have multiple representations.
For example, 5 ft and 1.524 m are dimensionally equal, but they are not
equal, because they use different units of length.
Use [Quantity.SameDimension], [Quantity.SameUnits], [Quantity.Equal], and
[Quantity.Cmp] to compare quantities.

Named derived dimensions, such as [Force] or [Pressure], are independent
dimensions.
A force can be stored either as 1 N or as 1 kg*m/s^2.
The two forms are dimensionally different, but [Quantity.Reduce] and
[Quantity.Complex] move values between them, and predicates such as
[Quantity.IsForce] recognize both.

# Units

Units are written as products and quotients of unit symbols:

	m
	km/hr
	kg*m/s^2
	1/mmHg
	(kg*m^2)/(s^2*K)

The grammar is:

  - Terms are separated by '*' and '/'.
    Terms after the first '/' belong to the denominator.
    A second '/' outside parentheses is an error.
  - A term is a unit symbol or a parenthesized expression, optionally followed
    by '^' and a non-zero integer exponent, such as s^2 or (m/s)^-1.
  - The term "1" is a placeholder, so "1/s" is a frequency.
  - Whitespace is ignored, and an empty expression means dimensionless.

A unit symbol is either a symbol from the registry, see [Units],
or a metric prefix followed by a symbol that accepts prefixes, such as km,
μs or daL.
Only one prefix is allowed.
Some symbols, such as "ft", "pt", "qt", and "dB", are registry units
and are never read as a prefix followed by a unit.

# Conversions

The package provides methods for converting quantities:

  - from/to string:
    [New], [Parse], [Quantity.String], [Quantity.Format].
  - from units:
    [NewFromUnit], [NewFromPrefixedUnit].
  - between units:
    [Quantity.Convert], [Quantity.ConvertUnit], [Quantity.ConvertPrefixedUnit].
  - between named dimensions and their decompositions:
    [Quantity.Reduce], [Quantity.Complex].

[Quantity.Convert] treats volume as length cubed, frequency as inverse time,
and dimensionless values as angles in radians.
Temperatures are converted only when temperature is the only dimension of
the quantity and its exponent is 1, so 0 °C is 273.15 K and 32 °F,
but 1 J/K cannot be converted to J/°R.

# Operations

Arithmetic operations follow these rules:

  - [Quantity.Add], [Quantity.Sub], [Quantity.Cmp]:
    Both operands must have identical exponents.
    The second operand is converted into the units of the first one.
  - [Quantity.Mul], [Quantity.Quo]:
    Exponents are added or subtracted.
    Dimensions present only in the second operand keep its units,
    dimensions present in both operands use the units of the first one.
    An angle in radians multiplies a quantity without angles as a plain number.
  - [Quantity.Inv], [Quantity.Pow], [Quantity.Sqrt], [Quantity.Cbrt]:
    Exponents are negated, multiplied or divided.
    Roots require exponents that divide evenly.

# Errors

All methods are pure and return errors instead of panicking,
except for the Must variants, such as [MustNew] or [Quantity.MustAdd].
Errors wrap one of the following values:

  - [ErrParsing]: malformed expression or number.
  - [ErrUnsupportedUnit]: unknown symbol or more than one prefix.
  - [ErrUnsupportedMetric]: unknown prefix or prefix on a unit that
    does not accept one.
  - [ErrValueConversion]: dimensionally incompatible quantities.
  - [ErrUnitReduction]: no decomposition matches.
  - [ErrDivisionByZero], [ErrExponentRange], [ErrInvalidOperation]:
    arithmetic failures.

Use [errors.Is] to distinguish them.
*/
package quantity
