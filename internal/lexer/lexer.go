// Package lexer turns source text into tokens with 1-based line/column
// positions. Scanning never stops at the first problem: every bad
// character or unterminated string is collected as a SyntaxError.
package lexer

import (
	"strconv"
	"unicode/utf8"

	"loxcore/internal/errs"
	"loxcore/internal/token"
)

type Lexer struct {
	source    string
	start     int
	current   int
	line      int
	col       int // runes consumed on the current line

	startLine int
	startCol  int

	tokens []token.Token
	errors []error
}

// NewLexer returns a lexer whose first line is numbered line
func NewLexer(source string, line int) *Lexer {
	if line < 1 {
		line = 1
	}
	return &Lexer{
		source: source,
		line:   line,
	}
}

// Scan tokenizes source starting at line 1
func Scan(source string) ([]token.Token, []error) {
	return NewLexer(source, 1).Scan()
}

// ScanFrom tokenizes source numbering its first line as line
func ScanFrom(source string, line int) ([]token.Token, []error) {
	return NewLexer(source, line).Scan()
}

// Scan returns the tokens terminated by EOF and every error found
func (l *Lexer) Scan() ([]token.Token, []error) {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.startCol = l.column()
		l.scanToken()
	}
	l.tokens = append(l.tokens, token.Token{
		Kind:   token.EOF,
		Line:   l.line,
		Column: l.column(),
	})
	return l.tokens, l.errors
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(token.LEFT_PAREN, nil)
	case ')':
		l.emit(token.RIGHT_PAREN, nil)
	case '{':
		l.emit(token.LEFT_BRACE, nil)
	case '}':
		l.emit(token.RIGHT_BRACE, nil)
	case ',':
		l.emit(token.COMMA, nil)
	case '.':
		l.emit(token.DOT, nil)
	case '-':
		l.emit(token.MINUS, nil)
	case '+':
		l.emit(token.PLUS, nil)
	case ';':
		l.emit(token.SEMICOLON, nil)
	case '*':
		l.emit(token.STAR, nil)
	case '/':
		if l.match('/') {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else {
			l.emit(token.SLASH, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(token.BANG_EQUAL, nil)
		} else {
			l.emit(token.BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(token.EQUAL_EQUAL, nil)
		} else {
			l.emit(token.EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(token.LESS_EQUAL, nil)
		} else {
			l.emit(token.LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(token.GREATER_EQUAL, nil)
		} else {
			l.emit(token.GREATER, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.newline()

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.unexpected(c)
		}
	}
}

func (l *Lexer) string() {
	for !l.isAtEnd() && l.peek() != '"' {
		if l.advance() == '\n' {
			l.newline()
		}
	}

	if l.isAtEnd() {
		l.setError("unterminated string")
		return
	}

	// Consume ending "
	l.advance()

	l.emit(token.STRING, token.Str(l.source[l.start+1:l.current-1]))
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, err := strconv.ParseFloat(l.source[l.start:l.current], 64)
	if err != nil {
		l.setError("invalid number '%s'", l.source[l.start:l.current])
		return
	}

	l.emit(token.NUMBER, token.Number(literal))
}

func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	if kind, ok := token.Keywords[identifier]; ok {
		l.emit(kind, nil)
		return
	}
	l.emit(token.IDENTIFIER, token.Identifier(identifier))
}

// unexpected reports one error per bad rune, not per byte
func (l *Lexer) unexpected(c byte) {
	r := rune(c)
	if c >= utf8.RuneSelf {
		var size int
		r, size = utf8.DecodeRuneInString(l.source[l.start:])
		for i := 1; i < size; i++ {
			l.advance()
		}
	}
	l.setError("unexpected character '%c'", r)
}

func (l *Lexer) advance() byte {
	current := l.source[l.current]
	l.current++
	if utf8.RuneStart(current) {
		l.col++
	}
	return current
}

func (l *Lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) newline() {
	l.line++
	l.col = 0
}

func (l *Lexer) column() int {
	return l.col + 1
}

func (l *Lexer) emit(kind token.Kind, literal token.Literal) {
	l.tokens = append(l.tokens, token.Token{
		Kind:    kind,
		Lexeme:  l.source[l.start:l.current],
		Literal: literal,
		Line:    l.startLine,
		Column:  l.startCol,
	})
}

func (l *Lexer) setError(msg string, args ...interface{}) {
	at := token.Token{
		Kind:   token.ILLEGAL,
		Lexeme: l.source[l.start:l.current],
		Line:   l.startLine,
		Column: l.startCol,
	}
	l.errors = append(l.errors, errs.SyntaxError.Errorf(at, msg, args...))
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
