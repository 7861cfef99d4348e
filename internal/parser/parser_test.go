package parser

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxcore/internal/ast"
	"loxcore/internal/errs"
	"loxcore/internal/lexer"
	"loxcore/internal/token"
)

func parse(t *testing.T, source string) ast.Expr {
	t.Helper()
	tokens, scanErrs := lexer.Scan(source)
	require.Empty(t, scanErrs)
	expr, parseErrs := Parse(tokens)
	require.Empty(t, parseErrs)
	return expr
}

func render(t *testing.T, source string) string {
	t.Helper()
	out, err := ast.Printer{}.Print(parse(t, source))
	require.NoError(t, err)
	return out
}

func TestPrecedence(t *testing.T) {
	tests := map[string]string{
		"-123 * (45.67)":         "((- 123) * (group 45.67))",
		"-11.22 == (11.22)":      "((- 11.22) == (group 11.22))",
		"1 + 2 * 3":              "(1 + (2 * 3))",
		"1 - 2 - 3":              "((1 - 2) - 3)",
		"a or b and c":           "(a or (b and c))",
		"1 < 2 == true":          "((1 < 2) == true)",
		"!!x":                    "(! (! x))",
		"x = y = 3":              "x = y = 3",
		"f(1, g(2))(3)":          "(call (call f 1 (call g 2)) 3)",
		"f()":                    "(call f)",
		`"a" + "b";`:             "(a + b)",
		"nil != false":           "(nil != false)",
		"a >= 1 and b <= 2 or c": "(((a >= 1) and (b <= 2)) or c)",
	}
	for source, expected := range tests {
		assert.Equal(t, expected, render(t, source), source)
	}
}

func TestParseTree(t *testing.T) {
	expr := parse(t, "x = -1")
	expected := &ast.Assign{
		Name: token.Token{Kind: token.IDENTIFIER, Lexeme: "x", Literal: token.Identifier("x"), Line: 1, Column: 1},
		Value: &ast.Unary{
			Operator: token.Token{Kind: token.MINUS, Lexeme: "-", Line: 1, Column: 5},
			Right:    &ast.Literal{Value: token.Number(1)},
		},
	}
	assert.Nil(t, deep.Equal(expected, expr))
}

func TestCallKeepsClosingParen(t *testing.T) {
	call, ok := parse(t, "f(1,\n2)").(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, token.RIGHT_PAREN, call.Paren.Kind)
	assert.Equal(t, "2:2", call.Paren.Pos())
	assert.Len(t, call.Arguments, 2)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"1 +":       "[line 1:4] SyntaxError at 'end': expect expression",
		"(1 + 2":    "[line 1:7] SyntaxError at 'end': expect ')' after expression",
		"1 = 2":     "[line 1:3] SyntaxError at '=': invalid assignment target",
		"f(1":       "[line 1:4] SyntaxError at 'end': expect ')' after arguments",
		"1 2":       "[line 1:3] SyntaxError at '2': expect end of expression",
		"var":       "[line 1:1] SyntaxError at 'var': expect expression",
		"(a) = nil": "[line 1:5] SyntaxError at '=': invalid assignment target",
	}
	for source, msg := range tests {
		tokens, scanErrs := lexer.Scan(source)
		require.Empty(t, scanErrs)
		expr, parseErrs := Parse(tokens)
		assert.Nil(t, expr, source)
		require.Len(t, parseErrs, 1, source)
		assert.True(t, errs.Is(parseErrs[0], errs.SyntaxError))
		assert.EqualError(t, parseErrs[0], msg, source)
	}
}

func TestTooManyArguments(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = "1"
	}
	tokens, _ := lexer.Scan("f(" + strings.Join(args, ",") + ")")
	_, parseErrs := Parse(tokens)
	require.Len(t, parseErrs, 1)
	assert.Contains(t, parseErrs[0].Error(), "can't have more than 255 arguments")
}

func TestNestingLimit(t *testing.T) {
	tokens, _ := lexer.Scan(strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300))
	_, parseErrs := Parse(tokens)
	require.Len(t, parseErrs, 1)
	assert.Contains(t, parseErrs[0].Error(), "expression nested too deeply")

	tokens, _ = lexer.Scan(strings.Repeat("-", 100) + "1")
	_, parseErrs = Parse(tokens)
	assert.Empty(t, parseErrs)

	nested := map[string]string{
		strings.Repeat("f(", 1000) + "1" + strings.Repeat(")", 1000): "[line 1:514] SyntaxError at '(': expression nested too deeply",
		strings.Repeat("a = ", 1000) + "1":                           "[line 1:1027] SyntaxError at '=': expression nested too deeply",
		strings.Repeat("f(-", 200) + "1" + strings.Repeat(")", 200):  "[line 1:386] SyntaxError at '(': expression nested too deeply",
	}
	for source, msg := range nested {
		tokens, _ = lexer.Scan(source)
		expr, parseErrs := Parse(tokens)
		assert.Nil(t, expr)
		require.Len(t, parseErrs, 1, source[:8])
		assert.EqualError(t, parseErrs[0], msg)
	}

	tokens, _ = lexer.Scan(strings.Repeat("f(", 200) + "1" + strings.Repeat(")", 200))
	_, parseErrs = Parse(tokens)
	assert.Empty(t, parseErrs)

	tokens, _ = lexer.Scan("f(1)(2)(3)")
	_, parseErrs = Parse(tokens)
	assert.Empty(t, parseErrs)
}

func TestParseWithoutEOF(t *testing.T) {
	tokens := []token.Token{{Kind: token.NUMBER, Lexeme: "1", Literal: token.Number(1), Line: 1, Column: 1}}
	expr, parseErrs := Parse(tokens)
	require.Empty(t, parseErrs)
	assert.Equal(t, &ast.Literal{Value: token.Number(1)}, expr)
	assert.Len(t, tokens, 1)

	_, parseErrs = Parse(nil)
	require.Len(t, parseErrs, 1)
	assert.EqualError(t, parseErrs[0], "SyntaxError: expect expression")
}
