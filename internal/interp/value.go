package interp

import (
	"reflect"

	"loxcore/internal/errs"
	"loxcore/internal/token"
)

// Value is a runtime value: Nil, Bool, Number, String or a Callable
type Value interface {
	value()
	String() string
}

type Nil struct{}

type Bool bool

type Number float64

type String string

func (Nil) value()    {}
func (Bool) value()   {}
func (Number) value() {}
func (String) value() {}

func (Nil) String() string {
	return "nil"
}

func (b Bool) String() string {
	return token.Bool(b).String()
}

func (n Number) String() string {
	return token.FormatNumber(float64(n))
}

func (s String) String() string {
	return string(s)
}

// FromLiteral converts a literal payload into its runtime value.
// Identifier payloads evaluate to their name as a string.
func FromLiteral(l token.Literal) (Value, error) {
	switch lit := l.(type) {
	case token.Number:
		return Number(lit), nil
	case token.Str:
		return String(lit), nil
	case token.Identifier:
		return String(lit), nil
	case token.Bool:
		return Bool(lit), nil
	case token.Nil:
		return Nil{}, nil
	}
	return nil, errs.MalformedTree.New(token.Token{}, "literal without value")
}

// Truthy reports the boolean meaning of v: nil and false are falsy,
// every other value is truthy
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil, Nil:
		return false
	case Bool:
		return bool(val)
	}
	return true
}

// Equal compares values of the same kind by value, callables by identity.
// Values of different kinds are never equal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Callable:
		y, ok := b.(Callable)
		return ok && sameCallable(x, y)
	}
	return false
}

// sameCallable compares identities without panicking on callables whose
// dynamic type holds funcs, maps or slices. Those are never equal.
func sameCallable(x, y Callable) bool {
	if reflect.TypeOf(x) != reflect.TypeOf(y) || !reflect.ValueOf(x).Comparable() || !reflect.ValueOf(y).Comparable() {
		return false
	}
	return x == y
}

// Stringify renders v the way the REPL prints results
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// TypeName returns the user facing name of v's kind
func TypeName(v Value) string {
	switch v.(type) {
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Callable:
		return "function"
	}
	return "nil"
}
