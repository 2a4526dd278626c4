// Package rpn evaluates expressions over quantities written in reverse
// Polish notation, such as "100km 2hr / >m/s".
//
// Operands are quantities without spaces between the number and the units.
// The following operators are supported:
//
//	+ - * /      binary arithmetic
//	pow          raises the second operand to the dimensionless integer on top
//	inv neg abs  unary arithmetic
//	sqrt cbrt    roots
//	complex      collapses the top into a named derived unit
//	>units       converts the top into units
//	>>units      reduces the top into units
package rpn

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/govalues/quantity"
)

var (
	// ErrNoTokens is returned for an empty expression.
	ErrNoTokens = errors.New("no tokens")

	// ErrStack is returned when an operator lacks operands or the
	// expression leaves more than one value.
	ErrStack = errors.New("unbalanced stack")
)

// Evaluator evaluates postfix expressions.
// The zero value is ready to use.
type Evaluator struct {
	// Expand, if set, maps user-defined unit names to unit expressions
	// before conversion and reduction.
	Expand func(units string) string
}

// Evaluate is a shortcut for evaluating input with the zero Evaluator.
func Evaluate(input string) (quantity.Quantity, error) {
	var e Evaluator
	return e.Evaluate(input)
}

// Evaluate splits input into tokens and evaluates them.
func (e Evaluator) Evaluate(input string) (quantity.Quantity, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := e.processTokens(tokens)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return quantity.Quantity{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item: %w", stack, ErrStack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	return tokens, nil
}

func (e Evaluator) processTokens(tokens []string) ([]quantity.Quantity, error) {
	stack := make([]quantity.Quantity, 0, len(tokens))
	var err error
	for _, token := range tokens {
		switch {
		case token == "+", token == "-", token == "*", token == "/", token == "pow":
			stack, err = processBinary(stack, token)
		case token == "inv", token == "neg", token == "abs", token == "sqrt", token == "cbrt", token == "complex":
			stack, err = processUnary(stack, token)
		case strings.HasPrefix(token, ">>"):
			stack, err = e.processConversion(stack, ">>", token[2:])
		case strings.HasPrefix(token, ">"):
			stack, err = e.processConversion(stack, ">", token[1:])
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processBinary(stack []quantity.Quantity, token string) ([]quantity.Quantity, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands: %w", ErrStack)
	}
	left := stack[len(stack)-2]
	right := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result quantity.Quantity
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "pow":
		var n int
		n, err = integer(right)
		if err == nil {
			result, err = left.Pow(n)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%v %v %v\": %w", left, right, token, err)
	}
	return append(stack, result), nil
}

// integer returns the magnitude of a dimensionless whole number.
func integer(q quantity.Quantity) (int, error) {
	x := q.Magnitude()
	if !q.IsDimensionless() || x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
		return 0, fmt.Errorf("exponent %v is not a dimensionless integer: %w", q, quantity.ErrInvalidOperation)
	}
	return int(x), nil
}

func processUnary(stack []quantity.Quantity, token string) ([]quantity.Quantity, error) {
	if len(stack) < 1 {
		return nil, fmt.Errorf("not enough operands: %w", ErrStack)
	}
	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	var result quantity.Quantity
	var err error
	switch token {
	case "inv":
		result, err = top.Inv()
	case "neg":
		result = top.Neg()
	case "abs":
		result = top.Abs()
	case "sqrt":
		result, err = top.Sqrt()
	case "cbrt":
		result, err = top.Cbrt()
	case "complex":
		result, err = top.Complex()
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%v %v\": %w", top, token, err)
	}
	return append(stack, result), nil
}

func (e Evaluator) processConversion(stack []quantity.Quantity, op, units string) ([]quantity.Quantity, error) {
	if len(stack) < 1 {
		return nil, fmt.Errorf("not enough operands: %w", ErrStack)
	}
	if e.Expand != nil {
		units = e.Expand(units)
	}
	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	var result quantity.Quantity
	var err error
	switch op {
	case ">":
		result, err = top.Convert(units)
	case ">>":
		result, err = top.Reduce(units)
	}
	if err != nil {
		return nil, err
	}
	return append(stack, result), nil
}

func processOperand(stack []quantity.Quantity, token string) ([]quantity.Quantity, error) {
	q, err := quantity.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, q), nil
}
