package interp

import "fmt"

// Callable is a value that can be invoked by a call expression
type Callable interface {
	Value
	Arity() int
	Call(i *Interpreter, arguments []Value) (Value, error)
}

// NativeFn is a callable implemented in Go
type NativeFn struct {
	Name       string
	ArityValue int
	CallFn     func(i *Interpreter, arguments []Value) (Value, error)
}

func (n *NativeFn) value() {}

func (n *NativeFn) Arity() int {
	return n.ArityValue
}

func (n *NativeFn) Call(i *Interpreter, arguments []Value) (Value, error) {
	return n.CallFn(i, arguments)
}

func (n *NativeFn) String() string {
	if n.Name == "" {
		return "<native fn>"
	}
	return fmt.Sprintf("<native fn %s>", n.Name)
}
