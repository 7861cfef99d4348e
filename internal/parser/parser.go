// Package parser builds one expression tree from a token stream using
// recursive descent, lowest precedence first:
//
//	assignment → or → and → equality → comparison → term → factor → unary → call → primary
package parser

import (
	"errors"

	"loxcore/internal/ast"
	"loxcore/internal/errs"
	"loxcore/internal/token"
)

const (
	maxFunctionArgs = 255
	maxNesting      = 256
)

// errAbort unwinds the descent after a fatal syntax error
var errAbort = errors.New("parse aborted")

// parser stores parser data
type parser struct {
	tokens  []token.Token
	current int
	nesting int

	errors []error
}

// Parse returns the expression spanning the whole token stream.
// The tree is nil whenever errors is not empty.
func Parse(tokens []token.Token) (expr ast.Expr, problems []error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		tokens = append(tokens[:len(tokens):len(tokens)], token.Token{Kind: token.EOF})
	}
	p := &parser{tokens: tokens}

	defer func() {
		if r := recover(); r != nil {
			if r != errAbort {
				panic(r)
			}
			expr, problems = nil, p.errors
		}
	}()

	expr = p.expression()
	p.match(token.SEMICOLON)
	if !p.isAtEnd() {
		p.fatalError(p.peek(), "expect end of expression")
	}
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return expr, nil
}

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

func (p *parser) assignment() ast.Expr {
	expr := p.or()
	if p.match(token.EQUAL) {
		equal := p.previous()
		p.enter(equal)
		defer p.leave()
		value := p.assignment()

		if variable, isVar := expr.(*ast.Variable); isVar {
			return &ast.Assign{
				Name:  variable.Name,
				Value: value,
			}
		}

		p.setError(equal, "invalid assignment target")
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		operator := p.previous()
		right := p.and()
		expr = &ast.Logical{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EQUAL_EQUAL, token.BANG_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		p.enter(operator)
		defer p.leave()
		right := p.unary()
		return &ast.Unary{
			Operator: operator,
			Right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for p.match(token.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	p.enter(p.previous())
	defer p.leave()

	arguments := make([]ast.Expr, 0)
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(arguments) >= maxFunctionArgs {
				p.setError(p.peek(), "can't have more than 255 arguments")
			}
			arguments = append(arguments, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "expect ')' after arguments")
	return &ast.Call{
		Callee:    callee,
		Paren:     paren,
		Arguments: arguments,
	}
}

func (p *parser) primary() ast.Expr {
	if p.match(token.FALSE) {
		return &ast.Literal{Value: token.Bool(false)}
	}
	if p.match(token.TRUE) {
		return &ast.Literal{Value: token.Bool(true)}
	}
	if p.match(token.NIL) {
		return &ast.Literal{Value: token.Nil{}}
	}
	if p.match(token.NUMBER, token.STRING) {
		return &ast.Literal{Value: p.previous().Literal}
	}
	if p.match(token.IDENTIFIER) {
		return &ast.Variable{Name: p.previous()}
	}
	if p.match(token.LEFT_PAREN) {
		p.enter(p.previous())
		defer p.leave()
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "expect ')' after expression")
		return &ast.Grouping{Expression: expr}
	}

	p.fatalError(p.peek(), "expect expression")
	return nil
}

// enter guards against input nested deep enough to exhaust the stack
func (p *parser) enter(at token.Token) {
	p.nesting++
	if p.nesting > maxNesting {
		p.fatalError(at, "expression nested too deeply")
	}
}

func (p *parser) leave() {
	p.nesting--
}

func (p *parser) consume(kind token.Kind, msg string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fatalError(p.peek(), msg)
	return token.Token{}
}

func (p *parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *parser) setError(at token.Token, msg string) {
	p.errors = append(p.errors, errs.SyntaxError.New(at, msg))
}

func (p *parser) fatalError(at token.Token, msg string) {
	p.setError(at, msg)
	panic(errAbort)
}
