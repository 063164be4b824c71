/*
File    : loxwalk/token/token.go
*/
package token

import (
	"fmt"

	"github.com/riverstone-labs/loxwalk/internal/numfmt"
)

// Token is the triple (kind, line, lexeme) spec.md's data model describes,
// plus the resolved payload literals (number/string) a few kinds carry.
//
// Line is 1-based and marks where the token's first character occurred; a
// multi-line string literal carries the line of its opening quote, per the
// lexer's invariant.
type Token struct {
	Kind   Kind
	Line   int
	Lexeme string // exact source slice; empty for EOF

	NumberValue float64 // valid when Kind == Number
	StringValue string  // valid when Kind == String: lexeme without quotes

	// ErrorChar carries the offending character for ErrorUnknownCharacter.
	ErrorChar byte
}

// New builds a token with no payload (structural punctuation, operators,
// keywords, identifiers, EOF).
func New(kind Kind, line int, lexeme string) Token {
	return Token{Kind: kind, Line: line, Lexeme: lexeme}
}

// NewNumber builds a NUMBER token carrying its resolved float64 value.
func NewNumber(line int, lexeme string, value float64) Token {
	return Token{Kind: Number, Line: line, Lexeme: lexeme, NumberValue: value}
}

// NewString builds a STRING token; lexeme is the source form including
// the surrounding quotes, content is the same text with them stripped.
func NewString(line int, lexeme, content string) Token {
	return Token{Kind: String, Line: line, Lexeme: lexeme, StringValue: content}
}

// NewUnknownCharacter builds the "unknown character" lexical-error token.
func NewUnknownCharacter(line int, c byte) Token {
	return Token{Kind: ErrorUnknownCharacter, Line: line, Lexeme: string(c), ErrorChar: c}
}

// NewUnterminatedString builds the "unterminated string" lexical-error
// token; line is the line the lexer was on when it ran out of input.
func NewUnterminatedString(line int) Token {
	return Token{Kind: ErrorUnterminatedString, Line: line}
}

// NewInvalidNumber builds the "invalid number" lexical-error token for a
// candidate with more than one '.'.
func NewInvalidNumber(line int, lexeme string) Token {
	return Token{Kind: ErrorInvalidNumber, Line: line, Lexeme: lexeme}
}

// TokenizeLine renders the line the tokenize sub-command prints for a
// non-error token, per spec.md §6's table.
func (t Token) TokenizeLine() string {
	switch t.Kind {
	case String:
		// Lexeme already carries its surrounding quotes (see NewString).
		return fmt.Sprintf("STRING %s %s", t.Lexeme, t.StringValue)
	case Number:
		return fmt.Sprintf("NUMBER %s %s", t.Lexeme, numfmt.WithDecimal(t.NumberValue))
	case Identifier:
		return fmt.Sprintf("IDENTIFIER %s null", t.Lexeme)
	case EOF:
		return "EOF  null"
	default:
		return fmt.Sprintf("%s %s null", t.Kind, t.Lexeme)
	}
}

// TokenizeError renders the stderr line for a lexical-error token, per
// spec.md §6.
func (t Token) TokenizeError() string {
	switch t.Kind {
	case ErrorUnknownCharacter:
		return fmt.Sprintf("[line %d] Error: Unexpected character: %c", t.Line, t.ErrorChar)
	case ErrorUnterminatedString:
		return fmt.Sprintf("[line %d] Error: Unterminated string.", t.Line)
	case ErrorInvalidNumber:
		return fmt.Sprintf("[line %d] Error: Invalid number: %s", t.Line, t.Lexeme)
	default:
		return fmt.Sprintf("[line %d] Error: %s", t.Line, t.Lexeme)
	}
}
