package ast

import (
	"fmt"
	"strings"

	"loxcore/internal/errs"
	"loxcore/internal/token"
)

// DefaultMaxDepth bounds tree nesting for walkers that were not given a limit
const DefaultMaxDepth = 1024

// Printer renders an expression as a fully parenthesized string.
// It never modifies the tree.
type Printer struct {
	// MaxDepth bounds the nesting of the rendered tree, zero means
	// DefaultMaxDepth and a negative value disables the bound
	MaxDepth int

	depth int
}

// Print renders one expression
func (p Printer) Print(e Expr) (string, error) {
	limit := p.MaxDepth
	if limit == 0 {
		limit = DefaultMaxDepth
	}
	if limit > 0 && p.depth >= limit {
		return "", errs.DepthExceeded.Errorf(token.Token{}, "expression nested deeper than %d levels", limit)
	}
	p.depth++
	return Evaluate[string](p, e)
}

// PrintAll renders every expression on its own line
func (p Printer) PrintAll(exprs []Expr) (string, error) {
	var out strings.Builder
	for _, e := range exprs {
		line, err := p.Print(e)
		if err != nil {
			return "", err
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String(), nil
}

func (p Printer) VisitAssignExpr(expr *Assign) (string, error) {
	value, err := p.Print(expr.Value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s = %s", expr.Name.Lexeme, value), nil
}

func (p Printer) VisitBinaryExpr(expr *Binary) (string, error) {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (p Printer) VisitGroupingExpr(expr *Grouping) (string, error) {
	inner, err := p.Print(expr.Expression)
	if err != nil {
		return "", err
	}
	return "(group " + inner + ")", nil
}

func (p Printer) VisitLiteralExpr(expr *Literal) (string, error) {
	if expr.Value == nil {
		return "", errs.MalformedTree.New(token.Token{}, "literal without value")
	}
	return expr.Value.String(), nil
}

func (p Printer) VisitLogicalExpr(expr *Logical) (string, error) {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (p Printer) VisitUnaryExpr(expr *Unary) (string, error) {
	operand, err := p.Print(expr.Right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s %s)", expr.Operator.Lexeme, operand), nil
}

func (p Printer) VisitCallExpr(expr *Call) (string, error) {
	callee, err := p.Print(expr.Callee)
	if err != nil {
		return "", err
	}
	out := "(call " + callee
	for _, arg := range expr.Arguments {
		rendered, err := p.Print(arg)
		if err != nil {
			return "", err
		}
		out += " " + rendered
	}
	return out + ")", nil
}

func (p Printer) VisitVariableExpr(expr *Variable) (string, error) {
	return expr.Name.Lexeme, nil
}

// parenthesize renders infix operators as (left op right)
func (p Printer) parenthesize(operator string, left, right Expr) (string, error) {
	l, err := p.Print(left)
	if err != nil {
		return "", err
	}
	r, err := p.Print(right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s %s %s)", l, operator, r), nil
}
