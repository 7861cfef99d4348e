package interp

import (
	"sync"

	"loxcore/internal/errs"
	"loxcore/internal/token"
)

// Environment resolves and updates named bindings for the evaluator.
// Both methods fail with an UndefinedName error when name is not bound.
type Environment interface {
	Lookup(name string) (Value, error)
	Assign(name string, value Value) error
}

// Env is a scope chain of bindings. It is safe for concurrent use.
type Env struct {
	mx sync.RWMutex

	enclosing *Env
	values    map[string]Value
}

func NewEnv(enclosing *Env) *Env {
	return &Env{
		enclosing: enclosing,
		values:    make(map[string]Value),
	}
}

// Define binds name in this scope, shadowing outer bindings
func (e *Env) Define(name string, value Value) {
	e.mx.Lock()
	defer e.mx.Unlock()
	e.values[name] = value
}

func (e *Env) Lookup(name string) (Value, error) {
	e.mx.RLock()
	value, ok := e.values[name]
	e.mx.RUnlock()
	if ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Lookup(name)
	}
	return nil, undefinedVar(name)
}

func (e *Env) Assign(name string, value Value) error {
	e.mx.Lock()
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		e.mx.Unlock()
		return nil
	}
	e.mx.Unlock()
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return undefinedVar(name)
}

func undefinedVar(name string) error {
	return errs.UndefinedName.Errorf(token.Token{}, "undefined variable '%s'", name)
}
