package interp

import (
	"time"
	"unicode/utf8"

	"loxcore/internal/errs"
	"loxcore/internal/token"
)

// DefineGlobals binds the native functions every session starts with
func DefineGlobals(e *Env) {
	defineClock(e)
	defineType(e)
	defineStr(e)
	defineLen(e)
}

func defineClock(e *Env) {
	e.Define("clock", &NativeFn{
		Name:       "clock",
		ArityValue: 0,
		CallFn: func(i *Interpreter, arguments []Value) (Value, error) {
			return Number(float64(time.Now().UnixNano()) / float64(time.Second)), nil
		},
	})
}

func defineType(e *Env) {
	e.Define("type", &NativeFn{
		Name:       "type",
		ArityValue: 1,
		CallFn: func(i *Interpreter, arguments []Value) (Value, error) {
			return String(TypeName(arguments[0])), nil
		},
	})
}

func defineStr(e *Env) {
	e.Define("str", &NativeFn{
		Name:       "str",
		ArityValue: 1,
		CallFn: func(i *Interpreter, arguments []Value) (Value, error) {
			return String(Stringify(arguments[0])), nil
		},
	})
}

func defineLen(e *Env) {
	e.Define("len", &NativeFn{
		Name:       "len",
		ArityValue: 1,
		CallFn: func(i *Interpreter, arguments []Value) (Value, error) {
			s, ok := arguments[0].(String)
			if !ok {
				return nil, errs.TypeError.Errorf(token.Token{}, "len expects a string, got %s", TypeName(arguments[0]))
			}
			return Number(utf8.RuneCountInString(string(s))), nil
		},
	})
}
