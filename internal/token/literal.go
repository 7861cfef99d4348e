package token

import (
	"math"
	"strconv"
)

// Literal is a constant value carried by a token or a literal expression.
// The set of implementations is closed: Identifier, Str, Number, Bool and Nil.
type Literal interface {
	literal()
	String() string
}

// Identifier is the name payload of an identifier token
type Identifier string

// Str is a string literal
type Str string

// Number is a double precision numeric literal
type Number float64

// Bool is a boolean literal
type Bool bool

// Nil is the absent value
type Nil struct{}

func (Identifier) literal() {}
func (Str) literal()        {}
func (Number) literal()     {}
func (Bool) literal()       {}
func (Nil) literal()        {}

func (i Identifier) String() string {
	return string(i)
}

func (s Str) String() string {
	return string(s)
}

func (n Number) String() string {
	return FormatNumber(float64(n))
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (Nil) String() string {
	return "nil"
}

// FormatNumber renders f as the shortest decimal that parses back to f.
// Integral values carry no fractional part and no exponent is used.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Equal compares two literals by variant and value
func Equal(a, b Literal) bool {
	switch x := a.(type) {
	case Identifier:
		y, ok := b.(Identifier)
		return ok && x == y
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Nil:
		_, ok := b.(Nil)
		return ok
	}
	return false
}
