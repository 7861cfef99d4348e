// Package ast defines the expression tree and the visitor protocol used to
// consume it. The node set is closed: nodes dispatch through an unexported
// interface, so a new node type cannot compile until every Visitor handles it.
//
// expr.go is generated, edit the table in cmd/astgen instead.
package ast

//go:generate go run ../../cmd/astgen -o expr.go

import (
	"loxcore/internal/errs"
	"loxcore/internal/token"
)

// adapter turns the result-less dispatch of accept into a typed result
type adapter[R any] struct {
	visitor Visitor[R]
	result  R
	err     error
}

// Evaluate dispatches e to the visitor method matching its node type
func Evaluate[R any](v Visitor[R], e Expr) (R, error) {
	if e == nil {
		var zero R
		return zero, errs.MalformedTree.New(token.Token{}, "missing expression")
	}
	a := &adapter[R]{visitor: v}
	e.accept(a)
	return a.result, a.err
}

func malformed(variant string) error {
	return errs.MalformedTree.Errorf(token.Token{}, "nil %s node", variant)
}
