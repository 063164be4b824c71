/*
File    : loxwalk/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riverstone-labs/loxwalk/token"
)

type tokenizeCase struct {
	Input    string
	Expected []token.Kind
}

func TestTokenize_Punctuation(t *testing.T) {
	tests := []tokenizeCase{
		{
			Input:    `(){}*.,+-;/`,
			Expected: []token.Kind{token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace, token.Star, token.Dot, token.Comma, token.Plus, token.Minus, token.Semicolon, token.Slash, token.EOF},
		},
		{
			Input:    `= == ! != < <= > >=`,
			Expected: []token.Kind{token.Equal, token.EqualEqual, token.Bang, token.BangEqual, token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.EOF},
		},
	}

	for _, tc := range tests {
		tokens := Tokenize(tc.Input)
		var got []token.Kind
		for _, tok := range tokens {
			got = append(got, tok.Kind)
		}
		assert.Equal(t, tc.Expected, got, "input: %q", tc.Input)
	}
}

func TestTokenize_ExactlyOneEOF(t *testing.T) {
	tokens := Tokenize(`1 + 2`)
	eofCount := 0
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			eofCount++
			assert.Equal(t, len(tokens)-1, i, "EOF must be the last token")
		}
	}
	assert.Equal(t, 1, eofCount)
}

func TestTokenize_LineTracking(t *testing.T) {
	tokens := Tokenize("1\n2\n3")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}

func TestTokenize_LinesMonotonic(t *testing.T) {
	tokens := Tokenize("var a = 1;\nvar b = 2;\n// comment\nprint a + b;")
	last := 0
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, tok.Line, last)
		last = tok.Line
	}
}

func TestTokenize_String(t *testing.T) {
	tokens := Tokenize(`"hello world"`)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].StringValue)
	assert.Equal(t, `"hello world"`, tokens[0].Lexeme)
}

func TestTokenize_StringSpansLines(t *testing.T) {
	tokens := Tokenize("\"line one\nline two\" 1")
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "line one\nline two", tokens[0].StringValue)
	// the NUMBER token after the string must be on line 2
	assert.Equal(t, token.Number, tokens[1].Kind)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	tokens := Tokenize(`"abc`)
	assert.Equal(t, token.ErrorUnterminatedString, tokens[0].Kind)
	assert.Equal(t, 1, tokens[0].Line)
}

func TestTokenize_Numbers(t *testing.T) {
	tokens := Tokenize(`65 65.1234 65.`)
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, float64(65), tokens[0].NumberValue)

	assert.Equal(t, token.Number, tokens[1].Kind)
	assert.Equal(t, 65.1234, tokens[1].NumberValue)

	// trailing '.' with no digits after: not consumed into the number
	assert.Equal(t, token.Number, tokens[2].Kind)
	assert.Equal(t, float64(65), tokens[2].NumberValue)
	assert.Equal(t, token.Dot, tokens[3].Kind)
}

func TestTokenize_InvalidNumber(t *testing.T) {
	tokens := Tokenize(`1.2.3`)
	assert.Equal(t, token.ErrorInvalidNumber, tokens[0].Kind)
}

func TestTokenize_IdentifiersAndKeywords(t *testing.T) {
	tokens := Tokenize(`var foo and print _bar123`)
	assert.Equal(t, token.Var, tokens[0].Kind)
	assert.Equal(t, token.Identifier, tokens[1].Kind)
	assert.Equal(t, token.And, tokens[2].Kind)
	assert.Equal(t, token.Print, tokens[3].Kind)
	assert.Equal(t, token.Identifier, tokens[4].Kind)
}

func TestTokenize_LineComment(t *testing.T) {
	tokens := Tokenize("1 // this is a comment\n2")
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, token.Number, tokens[1].Kind)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestTokenize_UnknownCharacter(t *testing.T) {
	tokens := Tokenize(`@`)
	assert.Equal(t, token.ErrorUnknownCharacter, tokens[0].Kind)
	assert.Equal(t, byte('@'), tokens[0].ErrorChar)
}
