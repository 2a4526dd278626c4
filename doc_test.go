package quantity_test

import (
	"errors"
	"fmt"

	"github.com/govalues/quantity"
)

// This example converts a speed limit between imperial and metric units.
func Example_speedLimit() {
	limit := quantity.MustNew(20, "mph")
	kph, err := limit.Convert("km/hr")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.5f\n", kph)
	mps, err := limit.Convert("m/s")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f\n", mps)
	// Output:
	// 32.18688 km/hr
	// 8.941 m/s
}

// This example calculates the kinetic energy of a car and expresses it
// in kilowatt-hours.
func Example_kineticEnergy() {
	m := quantity.MustNew(1200, "kg")
	v := quantity.MustNew(100, "km/hr")
	v2, err := v.Pow(2)
	if err != nil {
		panic(err)
	}
	e := m.MustMul(v2).Scale(0.5)
	j, err := e.Convert("kg*m^2/s^2")
	if err != nil {
		panic(err)
	}
	joules, err := j.Complex()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f\n", joules)
	kwh, err := joules.ConvertPrefixedUnit(quantity.Kilo, quantity.WattHour)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f\n", kwh)
	// Output:
	// 462963 J
	// 0.129 kWh
}

func ExampleMustNew() {
	fmt.Println(quantity.MustNew(20, "mph"))
	// Output: 20 mi/hr
}

func ExampleNew() {
	fmt.Println(quantity.New(9.81, "m/s^2"))
	_, err := quantity.New(1, "m/s/s")
	fmt.Println(errors.Is(err, quantity.ErrParsing))
	// Output:
	// 9.81 m/s^2 <nil>
	// true
}

func ExampleNewFromUnit() {
	fmt.Println(quantity.NewFromUnit(5, quantity.Foot))
	// Output: 5 ft
}

func ExampleNewFromPrefixedUnit() {
	fmt.Println(quantity.NewFromPrefixedUnit(3, quantity.Kilo, quantity.Meter))
	// Output: 3 km
}

func ExampleParse() {
	fmt.Println(quantity.Parse("1.5e3 kg*m/s^2"))
	fmt.Println(quantity.Parse("5eV"))
	// Output:
	// 1500 m*kg/s^2 <nil>
	// 5 eV <nil>
}

func ExampleMustParse() {
	fmt.Println(quantity.MustParse("-0.5 kg/(m*s^2)"))
	// Output: -0.5 kg/m*s^2
}

func ExampleQuantity_String() {
	q := quantity.MustNew(2, "kg*m/s^2")
	fmt.Println(q.String())
	// Output: 2 m*kg/s^2
}

func ExampleQuantity_UnitString() {
	q := quantity.MustNew(2, "1/(s*m)")
	fmt.Println(q.UnitString())
	// Output: 1/m*s
}

func ExampleQuantity_Format() {
	q := quantity.MustNew(20, "mph")
	fmt.Printf("%v\n", q)
	fmt.Printf("%q\n", q)
	fmt.Printf("%.2f\n", q)
	fmt.Printf("%+.1e\n", q)
	// Output:
	// 20 mi/hr
	// "20 mi/hr"
	// 20.00 mi/hr
	// +2.0e+01 mi/hr
}

func ExampleQuantity_MarshalText() {
	b, err := quantity.MustNew(1.5, "km").MarshalText()
	fmt.Println(string(b), err)
	// Output: 1.5 km <nil>
}

func ExampleQuantity_UnmarshalText() {
	var q quantity.Quantity
	err := q.UnmarshalText([]byte("1.5 km"))
	fmt.Println(q, err)
	// Output: 1.5 km <nil>
}

func ExampleQuantity_Scan() {
	var q quantity.Quantity
	err := q.Scan("25 °C")
	fmt.Println(q, err)
	// Output: 25 °C <nil>
}

func ExampleQuantity_Value() {
	fmt.Println(quantity.MustNew(25, "°C").Value())
	// Output: 25 °C <nil>
}

func ExampleQuantity_Magnitude() {
	fmt.Println(quantity.MustNew(2.5, "kg").Magnitude())
	// Output: 2.5
}

func ExampleQuantity_Exponent() {
	q := quantity.MustNew(9.81, "m/s^2")
	fmt.Println(q.Exponent(quantity.Length))
	fmt.Println(q.Exponent(quantity.Time))
	fmt.Println(q.Exponent(quantity.Mass))
	// Output:
	// 1
	// -2
	// 0
}

func ExampleQuantity_Unit() {
	q := quantity.MustNew(9.81, "km/s^2")
	fmt.Println(q.Unit(quantity.Length))
	_, ok := q.Unit(quantity.Mass)
	fmt.Println(ok)
	// Output:
	// km true
	// false
}

func ExampleQuantity_Convert() {
	fmt.Printf("%.6f\n", quantity.MustNew(1.04, "ATM").MustConvert("psi"))
	fmt.Printf("%.1f\n", quantity.MustNew(37, "°C").MustConvert("°F"))
	fmt.Printf("%.1f\n", quantity.MustNew(1, "gal").MustConvert("in^3"))
	fmt.Printf("%.5f\n", quantity.MustNew(180, "deg").MustConvert(""))
	_, err := quantity.MustNew(1, "m").Convert("s")
	fmt.Println(errors.Is(err, quantity.ErrValueConversion))
	// Output:
	// 15.283787 psi
	// 98.6 °F
	// 231.0 in^3
	// 3.14159
	// true
}

func ExampleQuantity_ConvertUnit() {
	fmt.Printf("%.1f\n", quantity.MustNew(400, "cal").MustConvertUnit(quantity.Joule))
	fmt.Printf("%.2f\n", quantity.MustNew(25, "°C").MustConvertUnit(quantity.Kelvin))
	fmt.Printf("%.0f\n", quantity.MustNew(1, "km/hr").MustConvertUnit(quantity.Meter))
	// Output:
	// 1673.6 J
	// 298.15 K
	// 1000 m/hr
}

func ExampleQuantity_ConvertPrefixedUnit() {
	q := quantity.MustNew(1, "kWh")
	fmt.Printf("%.1f\n", q.MustConvert("MJ"))
	_, err := q.ConvertPrefixedUnit(quantity.Kilo, quantity.Foot)
	fmt.Println(errors.Is(err, quantity.ErrUnsupportedMetric))
	// Output:
	// 3.6 MJ
	// true
}

func ExampleQuantity_Reducible() {
	fmt.Println(quantity.MustNew(1, "N").Reducible())
	fmt.Println(quantity.MustNew(1, "N*m").Reducible())
	fmt.Println(quantity.MustNew(1, "m").Reducible())
	// Output:
	// true
	// false
	// false
}

func ExampleQuantity_Reduce() {
	fmt.Printf("%.3f\n", quantity.MustNew(24.525, "N").MustReduce("kg*m/s^2"))
	fmt.Printf("%.0f\n", quantity.MustNew(1, "kWh").MustReduce("W*s"))
	fmt.Printf("%.0f\n", quantity.MustNew(2, "J").MustReduce("V*C"))
	// Output:
	// 24.525 m*kg/s^2
	// 3600000 s*W
	// 2 C*V
}

func ExampleQuantity_Complex() {
	fmt.Printf("%.3f\n", quantity.MustNew(24.525, "kg*m/s^2").MustComplex())
	fmt.Printf("%.0f\n", quantity.MustNew(2, "N*m").MustComplex())
	fmt.Printf("%.0f\n", quantity.MustNew(2, "A/V").MustComplex())
	// Output:
	// 24.525 N
	// 2 J
	// 2 S
}

func ExampleQuantity_Add() {
	a := quantity.MustNew(1, "m")
	b := quantity.MustNew(1, "ft")
	fmt.Printf("%.4f\n", a.MustAdd(b))
	_, err := a.Add(quantity.MustNew(1, "s"))
	fmt.Println(errors.Is(err, quantity.ErrValueConversion))
	// Output:
	// 1.3048 m
	// true
}

func ExampleQuantity_Sub() {
	a := quantity.MustNew(1, "km")
	b := quantity.MustNew(300, "m")
	fmt.Printf("%.1f\n", a.MustSub(b))
	// Output: 0.7 km
}

func ExampleQuantity_Mul() {
	a := quantity.MustNew(2, "m")
	b := quantity.MustNew(3, "m")
	fmt.Printf("%.0f\n", a.MustMul(b))
	fmt.Printf("%.0f\n", quantity.MustNew(2, "rad").MustMul(b))
	// Output:
	// 6 m^2
	// 6 m
}

func ExampleQuantity_Quo() {
	a := quantity.MustNew(100, "km")
	b := quantity.MustNew(2, "hr")
	fmt.Printf("%.0f\n", a.MustQuo(b))
	_, err := a.Quo(quantity.MustNew(0, "hr"))
	fmt.Println(errors.Is(err, quantity.ErrDivisionByZero))
	// Output:
	// 50 km/hr
	// true
}

func ExampleQuantity_Inv() {
	fmt.Println(quantity.MustNew(4, "s").MustInv())
	// Output: 0.25 1/s
}

func ExampleQuantity_Pow() {
	fmt.Println(quantity.MustNew(3, "m").MustPow(2))
	fmt.Println(quantity.MustNew(2, "m/s").MustPow(-1))
	// Output:
	// 9 m^2
	// 0.5 s/m
}

func ExampleQuantity_Sqrt() {
	fmt.Println(quantity.MustNew(16, "m^2").MustSqrt())
	_, err := quantity.MustNew(16, "m").Sqrt()
	fmt.Println(errors.Is(err, quantity.ErrValueConversion))
	// Output:
	// 4 m
	// true
}

func ExampleQuantity_Cbrt() {
	fmt.Println(quantity.MustNew(27, "m^3").MustCbrt())
	// Output: 3 m
}

func ExampleQuantity_Cmp() {
	a := quantity.MustNew(1, "mi")
	b := quantity.MustNew(1, "km")
	fmt.Println(a.Cmp(b))
	fmt.Println(b.Cmp(a))
	fmt.Println(a.Cmp(a))
	// Output:
	// 1 <nil>
	// -1 <nil>
	// 0 <nil>
}

func ExampleQuantity_Scale() {
	fmt.Println(quantity.MustNew(1.5, "km").Scale(2))
	// Output: 3 km
}

func ExampleQuantity_Neg() {
	fmt.Println(quantity.MustNew(1.5, "km").Neg())
	// Output: -1.5 km
}

func ExampleQuantity_Abs() {
	fmt.Println(quantity.MustNew(-1.5, "km").Abs())
	// Output: 1.5 km
}

func ExampleQuantity_Sign() {
	fmt.Println(quantity.MustNew(-1.5, "km").Sign())
	fmt.Println(quantity.MustNew(0, "km").Sign())
	fmt.Println(quantity.MustNew(1.5, "km").Sign())
	// Output:
	// -1
	// 0
	// 1
}

func ExampleQuantity_SameUnits() {
	a := quantity.MustNew(1, "km")
	fmt.Println(a.SameUnits(quantity.MustNew(2, "km")))
	fmt.Println(a.SameUnits(quantity.MustNew(2, "mi")))
	// Output:
	// true
	// false
}

func ExampleQuantity_SameDimension() {
	a := quantity.MustNew(1, "km")
	fmt.Println(a.SameDimension(quantity.MustNew(2, "mi")))
	fmt.Println(a.SameDimension(quantity.MustNew(2, "s")))
	// Output:
	// true
	// false
}

func ExampleQuantity_IsEnergy() {
	fmt.Println(quantity.MustNew(1, "N*m").IsEnergy())
	fmt.Println(quantity.MustNew(1, "kWh").IsEnergy())
	fmt.Println(quantity.MustNew(1, "W").IsEnergy())
	// Output:
	// true
	// true
	// false
}

func ExampleParseDimension() {
	fmt.Println(quantity.ParseDimension("Magnetic_Flux"))
	fmt.Println(quantity.ParseDimension("flux"))
	// Output:
	// magnetic flux true
	// length false
}

func ExampleUnitsOf() {
	fmt.Println(quantity.UnitsOf(quantity.Temperature))
	// Output: [K °C °F °R]
}
