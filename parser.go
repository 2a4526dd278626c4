package quantity

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// term is a unit symbol raised to a power.
type term struct {
	symbol string
	exp    int
}

// parseUnits converts a unit expression into a dimensionless quantity
// of magnitude 0 carrying the exponents and units of the expression.
func parseUnits(expr string) (Quantity, error) {
	terms, err := splitNumeratorDenominator(expr)
	if err != nil {
		return Quantity{}, err
	}
	var q Quantity
	for _, t := range terms {
		if err := q.resolveUnit(t.symbol, t.exp); err != nil {
			return Quantity{}, err
		}
	}
	return q, nil
}

// splitNumeratorDenominator breaks a unit expression into terms.
// Terms of the denominator have their exponents negated.
func splitNumeratorDenominator(expr string) ([]term, error) {
	expr = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
	if expr == "" {
		return nil, nil
	}
	return tokenize(expr, 1)
}

// piece is a depth-0 token of an expression together with its side:
// +1 for the numerator and -1 for the denominator.
type piece struct {
	text string
	side int
}

// tokenize splits s at depth-0 separators.
// The first '/' moves all following tokens to the side opposite to sign.
func tokenize(s string, sign int) ([]term, error) {
	var (
		pieces  []piece
		depth   int
		start   int
		side    int
		slashed bool
	)

	side = sign

	// Separators
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unexpected ')' at position %v in %q: %w", i, s, ErrParsing)
			}
		case '*', '/':
			if depth > 0 {
				continue
			}
			pieces = append(pieces, piece{text: s[start:i], side: side})
			if s[i] == '/' {
				if slashed {
					return nil, fmt.Errorf("more than one '/' in %q: %w", s, ErrParsing)
				}
				slashed = true
				side = -sign
			}
			start = i + 1
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("missing ')' in %q: %w", s, ErrParsing)
	}
	pieces = append(pieces, piece{text: s[start:], side: side})

	// Terms
	var terms []term
	for _, p := range pieces {
		ts, err := parsePiece(p)
		if err != nil {
			return nil, err
		}
		terms = append(terms, ts...)
	}
	return terms, nil
}

// parsePiece converts a single token, either "symbol[^N]" or "(expr)[^N]",
// into terms.
func parsePiece(p piece) ([]term, error) {
	if p.text == "" {
		return nil, fmt.Errorf("empty token: %w", ErrParsing)
	}

	// Group
	if p.text[0] == '(' {
		end := closingParen(p.text)
		inner, rest := p.text[1:end], p.text[end+1:]
		n := 1
		if rest != "" {
			if rest[0] != '^' {
				return nil, fmt.Errorf("unexpected %q after group %q: %w", rest, p.text[:end+1], ErrParsing)
			}
			var err error
			n, err = parseExponent(rest[1:])
			if err != nil {
				return nil, err
			}
		}
		if inner == "" {
			return nil, fmt.Errorf("empty group: %w", ErrParsing)
		}
		terms, err := tokenize(inner, p.side)
		if err != nil {
			return nil, err
		}
		for i := range terms {
			e, ok := newExponent(terms[i].exp)
			if ok {
				e, ok = e.mul(n)
			}
			if !ok {
				return nil, fmt.Errorf("group %q with exponent %v: %w", p.text[:end+1], n, ErrExponentRange)
			}
			terms[i].exp = int(e)
		}
		return terms, nil
	}

	// Symbol
	if strings.ContainsAny(p.text, "()") {
		return nil, fmt.Errorf("unexpected parenthesis in %q: %w", p.text, ErrParsing)
	}
	symbol, n := p.text, 1
	if i := strings.IndexByte(p.text, '^'); i >= 0 {
		var err error
		symbol = p.text[:i]
		n, err = parseExponent(p.text[i+1:])
		if err != nil {
			return nil, err
		}
	}
	switch {
	case symbol == "":
		return nil, fmt.Errorf("no unit before exponent in %q: %w", p.text, ErrParsing)
	case symbol == "1":
		return nil, nil
	case isDigit(symbol[0]):
		return nil, fmt.Errorf("unexpected number %q: %w", symbol, ErrParsing)
	}
	return []term{{symbol: symbol, exp: p.side * n}}, nil
}

// closingParen returns the index of the parenthesis closing s[0].
// The caller guarantees that the parentheses of s are balanced.
func closingParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(s) - 1
}

// parseExponent converts the text after '^' into a non-zero integer.
func parseExponent(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("no exponent after '^': %w", ErrParsing)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid exponent %q: %w", s, ErrParsing)
	}
	if n == 0 {
		return 0, fmt.Errorf("zero exponent: %w", ErrParsing)
	}
	return n, nil
}

// resolveUnit sets the dimension identified by the symbol to power e.
func (q *Quantity) resolveUnit(sym string, e int) error {
	exp, ok := newExponent(e)
	if !ok {
		return fmt.Errorf("unit %q with exponent %v: %w", sym, e, ErrExponentRange)
	}
	return q.resolve(sym, exp, None, false)
}

// resolve looks the symbol up by its length in runes.
// If there is no exact match, the first rune is interpreted as a metric
// prefix and the rest of the symbol is resolved recursively.
func (q *Quantity) resolve(sym string, e exponent, p Prefix, prefixed bool) error {
	n := utf8.RuneCountInString(sym)
	if n > maxSymbolLen {
		return fmt.Errorf("unit %q: %w", p.Symbol()+sym, ErrUnsupportedUnit)
	}

	// Exact match
	if entry, ok := lookupSymbol(sym, n); ok {
		return q.apply(sym, entry, e, p)
	}
	if n == 1 {
		return fmt.Errorf("unit %q: %w", p.Symbol()+sym, ErrUnsupportedUnit)
	}

	// Prefix
	pp, size := Deca, 2
	if n == 2 || !strings.HasPrefix(sym, "da") {
		var (
			r  rune
			ok bool
		)
		r, size = utf8.DecodeRuneInString(sym)
		pp, ok = prefixLetters[r]
		if !ok {
			if prefixed {
				return fmt.Errorf("unit %q: %w", p.Symbol()+sym, ErrUnsupportedUnit)
			}
			return fmt.Errorf("prefix %q of unit %q: %w", r, sym, ErrUnsupportedMetric)
		}
	}
	if prefixed {
		if _, ok := lookupSymbol(sym[size:], n-utf8.RuneCountInString(sym[:size])); ok {
			return fmt.Errorf("unit %q has more than one metric prefix: %w", p.Symbol()+sym, ErrUnsupportedUnit)
		}
		return fmt.Errorf("unit %q: %w", p.Symbol()+sym, ErrUnsupportedUnit)
	}
	return q.resolve(sym[size:], e, pp, true)
}

// apply sets the dimensions of an exactly matched symbol.
// Resolving a dimension twice overwrites the previous assignment.
func (q *Quantity) apply(sym string, entry symbolEntry, e exponent, p Prefix) error {
	if entry.compound != nil {
		if p != None {
			return fmt.Errorf("compound unit %q does not accept a prefix: %w", p.Symbol()+sym, ErrUnsupportedMetric)
		}
		if e != 1 && e != -1 {
			return fmt.Errorf("compound unit %q with exponent %v: %w", sym, e, ErrUnsupportedUnit)
		}
		for _, t := range entry.compound {
			q.set(t.unit.Unit.Dimension(), e*exponent(t.sign), t.unit)
		}
		return nil
	}
	if p != None && !entry.unit.Prefixable() {
		return fmt.Errorf("unit %q does not accept prefix %q: %w", sym, p.Symbol(), ErrUnsupportedMetric)
	}
	q.set(entry.unit.Dimension(), e, PrefixedUnit{Prefix: p, Unit: entry.unit})
	return nil
}
