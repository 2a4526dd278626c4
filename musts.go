package quantity

import "fmt"

// MustAdd is like [Quantity.Add] but panics if computing error.
func (q Quantity) MustAdd(r Quantity) Quantity {
	f, err := q.Add(r)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", r, err))
	}
	return f
}

// MustSub is like [Quantity.Sub] but panics if computing error.
func (q Quantity) MustSub(r Quantity) Quantity {
	f, err := q.Sub(r)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", r, err))
	}
	return f
}

// MustMul is like [Quantity.Mul] but panics if computing error.
func (q Quantity) MustMul(r Quantity) Quantity {
	f, err := q.Mul(r)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", r, err))
	}
	return f
}

// MustQuo is like [Quantity.Quo] but panics if computing error.
func (q Quantity) MustQuo(r Quantity) Quantity {
	f, err := q.Quo(r)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", r, err))
	}
	return f
}

// MustInv is like [Quantity.Inv] but panics if computing error.
func (q Quantity) MustInv() Quantity {
	f, err := q.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv() failed: %v", err))
	}
	return f
}

// MustPow is like [Quantity.Pow] but panics if computing error.
func (q Quantity) MustPow(n int) Quantity {
	f, err := q.Pow(n)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", n, err))
	}
	return f
}

// MustSqrt is like [Quantity.Sqrt] but panics if computing error.
func (q Quantity) MustSqrt() Quantity {
	f, err := q.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return f
}

// MustCbrt is like [Quantity.Cbrt] but panics if computing error.
func (q Quantity) MustCbrt() Quantity {
	f, err := q.Cbrt()
	if err != nil {
		panic(fmt.Sprintf("MustCbrt() failed: %v", err))
	}
	return f
}

// MustConvert is like [Quantity.Convert] but panics if conversion error.
func (q Quantity) MustConvert(units string) Quantity {
	f, err := q.Convert(units)
	if err != nil {
		panic(fmt.Sprintf("MustConvert(%q) failed: %v", units, err))
	}
	return f
}

// MustConvertUnit is like [Quantity.ConvertUnit] but panics if conversion error.
func (q Quantity) MustConvertUnit(u Unit) Quantity {
	f, err := q.ConvertUnit(u)
	if err != nil {
		panic(fmt.Sprintf("MustConvertUnit(%v) failed: %v", u, err))
	}
	return f
}

// MustReduce is like [Quantity.Reduce] but panics if reduction error.
func (q Quantity) MustReduce(units string) Quantity {
	f, err := q.Reduce(units)
	if err != nil {
		panic(fmt.Sprintf("MustReduce(%q) failed: %v", units, err))
	}
	return f
}

// MustComplex is like [Quantity.Complex] but panics if reduction error.
func (q Quantity) MustComplex() Quantity {
	f, err := q.Complex()
	if err != nil {
		panic(fmt.Sprintf("MustComplex() failed: %v", err))
	}
	return f
}
