/*
File    : loxwalk/lexer/lexer_utils.go
*/
package lexer

import "strconv"

// parseFloat converts a digit-led number lexeme to its float64 value. The
// lexeme is always well-formed by construction (readNumber only calls
// this on a candidate that passed the digit/dot scan), so a parse failure
// here would be a lexer bug, not a user-facing error.
func parseFloat(lexeme string) float64 {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		panic("lexer: malformed number lexeme " + lexeme)
	}
	return v
}
