package token

import "fmt"

// Token is one lexical unit. Tokens are values and are never mutated
// once the scanner has produced them.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal Literal
	Line    int
	Column  int
}

// New returns a token without literal payload
func New(kind Kind, lexeme string, line, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
}

// Pos renders the 1-based source position as line:col
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

func (t Token) String() string {
	literal := "none"
	if t.Literal != nil {
		literal = t.Literal.String()
	}
	return fmt.Sprintf(
		"Token{kind: %s, lexeme: '%s', literal: %s, line: %d, col: %d}",
		t.Kind,
		t.Lexeme,
		literal,
		t.Line,
		t.Column,
	)
}
