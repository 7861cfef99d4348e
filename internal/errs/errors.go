// Package errs holds the error taxonomy shared by the tree consumers and
// the scanner/parser collaborators. Every error carries its Kind and, when
// known, the token it was raised at.
package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"loxcore/internal/token"
)

const (
	Undefined = Kind(iota)
	TypeError
	UndefinedName
	NotCallable
	ArityMismatch
	MalformedTree
	DepthExceeded
	SyntaxError
)

// Kind classifies an error raised while scanning, parsing or evaluating
type Kind uint

var kindNames = [...]string{
	Undefined:     "Error",
	TypeError:     "TypeError",
	UndefinedName: "UndefinedName",
	NotCallable:   "NotCallable",
	ArityMismatch: "ArityMismatch",
	MalformedTree: "MalformedTree",
	DepthExceeded: "DepthExceeded",
	SyntaxError:   "SyntaxError",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[Undefined]
}

type evaluationError struct {
	kind          Kind
	token         token.Token
	hasToken      bool
	originalError error
}

func (e evaluationError) Error() string {
	if !e.hasToken {
		return fmt.Sprintf("%s: %s", e.kind, e.originalError)
	}
	where := e.token.Lexeme
	if e.token.Kind == token.EOF {
		where = "end"
	}
	return fmt.Sprintf(
		"[line %d:%d] %s at '%s': %s",
		e.token.Line,
		e.token.Column,
		e.kind,
		where,
		e.originalError,
	)
}

func (e evaluationError) Unwrap() error {
	return e.originalError
}

func newError(k Kind, tk token.Token, err error) error {
	return evaluationError{
		kind:          k,
		token:         tk,
		hasToken:      tk.Line > 0,
		originalError: err,
	}
}

// New creates an error of kind k raised at tk. A zero token means the
// position is not known yet, see WithToken.
func (k Kind) New(tk token.Token, msg string) error {
	return newError(k, tk, errors.New(msg))
}

func (k Kind) Errorf(tk token.Token, msg string, args ...interface{}) error {
	return newError(k, tk, errors.Errorf(msg, args...))
}

func (k Kind) Wrap(err error, tk token.Token, msg string) error {
	return newError(k, tk, errors.Wrap(err, msg))
}

// KindOf returns the kind of the first classified error in the chain
func KindOf(err error) Kind {
	var ee evaluationError
	if errors.As(err, &ee) {
		return ee.kind
	}
	return Undefined
}

// Is reports whether err was classified as k
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// TokenOf returns the token an error was raised at
func TokenOf(err error) (token.Token, bool) {
	var ee evaluationError
	if errors.As(err, &ee) && ee.hasToken {
		return ee.token, true
	}
	return token.Token{}, false
}

// WithToken attaches tk to err when err has no position yet.
// Errors that already carry a position are returned untouched. A
// classified error behind foreign wrappers keeps those wrappers in its
// chain and their text in its message.
func WithToken(err error, tk token.Token) error {
	if err == nil {
		return nil
	}
	var ee evaluationError
	if !errors.As(err, &ee) {
		return newError(Undefined, tk, err)
	}
	if ee.hasToken || tk.Line <= 0 {
		return err
	}
	if direct, ok := err.(evaluationError); ok {
		direct.token = tk
		direct.hasToken = true
		return direct
	}
	msg := err.Error()
	if prefix := strings.TrimSuffix(msg, ee.Error()); prefix != msg {
		msg = prefix + ee.originalError.Error()
	}
	return newError(ee.kind, tk, wrapped{msg: msg, err: err})
}

// wrapped renders msg and unwraps to err
type wrapped struct {
	msg string
	err error
}

func (w wrapped) Error() string {
	return w.msg
}

func (w wrapped) Unwrap() error {
	return w.err
}

// Message returns the error text without kind and position
func Message(err error) string {
	var ee evaluationError
	if errors.As(err, &ee) {
		return ee.originalError.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
