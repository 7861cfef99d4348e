package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxcore/internal/errs"
	"loxcore/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tk := range tokens {
		out[i] = tk.Kind
	}
	return out
}

func TestScanOperators(t *testing.T) {
	tokens, errors := Scan("( ) { } , . - + ; / * ! != = == > >= < <=")
	require.Empty(t, errors)
	assert.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.SLASH, token.STAR, token.BANG, token.BANG_EQUAL, token.EQUAL,
		token.EQUAL_EQUAL, token.GREATER, token.GREATER_EQUAL, token.LESS,
		token.LESS_EQUAL, token.EOF,
	}, kinds(tokens))
}

func TestScanLiterals(t *testing.T) {
	tokens, errors := Scan(`-123 * (45.67) "hi" name_1 and nil`)
	require.Empty(t, errors)
	require.Len(t, tokens, 11)

	assert.Equal(t, token.Token{Kind: token.MINUS, Lexeme: "-", Line: 1, Column: 1}, tokens[0])
	assert.Equal(t, token.Token{Kind: token.NUMBER, Lexeme: "123", Literal: token.Number(123), Line: 1, Column: 2}, tokens[1])
	assert.Equal(t, token.STAR, tokens[2].Kind)
	assert.Equal(t, 6, tokens[2].Column)
	assert.Equal(t, token.Number(45.67), tokens[4].Literal)
	assert.Equal(t, token.Token{Kind: token.STRING, Lexeme: `"hi"`, Literal: token.Str("hi"), Line: 1, Column: 16}, tokens[6])
	assert.Equal(t, token.Token{Kind: token.IDENTIFIER, Lexeme: "name_1", Literal: token.Identifier("name_1"), Line: 1, Column: 21}, tokens[7])
	assert.Equal(t, token.AND, tokens[8].Kind)
	assert.Nil(t, tokens[8].Literal)
	assert.Equal(t, token.NIL, tokens[9].Kind)
	assert.Equal(t, token.EOF, tokens[10].Kind)
}

func TestScanNumberWithTrailingDot(t *testing.T) {
	tokens, errors := Scan("12.")
	require.Empty(t, errors)
	assert.Equal(t, []token.Kind{token.NUMBER, token.DOT, token.EOF}, kinds(tokens))
	assert.Equal(t, token.Number(12), tokens[0].Literal)
}

func TestScanPositions(t *testing.T) {
	tokens, errors := Scan("a\n  b // comment\n\"x\ny\" c")
	require.Empty(t, errors)
	require.Equal(t, []token.Kind{token.IDENTIFIER, token.IDENTIFIER, token.STRING, token.IDENTIFIER, token.EOF}, kinds(tokens))

	assert.Equal(t, "1:1", tokens[0].Pos())
	assert.Equal(t, "2:3", tokens[1].Pos())
	assert.Equal(t, "3:1", tokens[2].Pos())
	assert.Equal(t, token.Str("x\ny"), tokens[2].Literal)
	assert.Equal(t, "4:4", tokens[3].Pos())
}

func TestScanFrom(t *testing.T) {
	tokens, errors := ScanFrom("x", 7)
	require.Empty(t, errors)
	assert.Equal(t, 7, tokens[0].Line)
	assert.Equal(t, 7, tokens[1].Line)
}

func TestScanErrors(t *testing.T) {
	tokens, errors := Scan("1 @ 2 \"open")
	require.Len(t, errors, 2)
	assert.True(t, errs.Is(errors[0], errs.SyntaxError))
	assert.EqualError(t, errors[0], "[line 1:3] SyntaxError at '@': unexpected character '@'")
	assert.EqualError(t, errors[1], "[line 1:7] SyntaxError at '\"open': unterminated string")
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(tokens))
}

func TestScanNonASCII(t *testing.T) {
	tokens, errors := Scan("x = é + \"ü\" y")
	require.Len(t, errors, 1)
	assert.EqualError(t, errors[0], "[line 1:5] SyntaxError at 'é': unexpected character 'é'")

	require.Equal(t, []token.Kind{token.IDENTIFIER, token.EQUAL, token.PLUS, token.STRING, token.IDENTIFIER, token.EOF}, kinds(tokens))
	assert.Equal(t, "1:7", tokens[2].Pos())
	assert.Equal(t, "1:9", tokens[3].Pos())
	assert.Equal(t, token.Str("ü"), tokens[3].Literal)
	assert.Equal(t, "1:13", tokens[4].Pos())
	assert.Equal(t, "1:14", tokens[5].Pos())

	_, errors = Scan("\xff")
	require.Len(t, errors, 1)
	assert.EqualError(t, errors[0], "[line 1:1] SyntaxError at '\xff': unexpected character '\uFFFD'")
}

func TestScanEmpty(t *testing.T) {
	tokens, errors := Scan("")
	require.Empty(t, errors)
	assert.Equal(t, []token.Token{{Kind: token.EOF, Line: 1, Column: 1}}, tokens)
}
