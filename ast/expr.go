/*
File    : loxwalk/ast/expr.go

Package ast holds the tagged-variant syntax tree the parser builds and the
evaluator walks: expressions, statements, declarations, and the Program
they form. Each variant renders itself as the Polish-notation text the
parse sub-command prints, and reports whether it (or any child) is an
Invalid node — the parser's simple-mode error recovery never discards
tokens, it just wraps the failure in place and lets it propagate.
*/
package ast

import (
	"fmt"
	"strings"

	"github.com/riverstone-labs/loxwalk/internal/numfmt"
	"github.com/riverstone-labs/loxwalk/token"
)

// ExprKind tags which variant an Expr holds.
type ExprKind int

const (
	ExprLiteral ExprKind = iota
	ExprUnary
	ExprBinary
	ExprGrouping
	ExprVariable
	ExprAssign
	ExprInvalid
)

// LiteralKind tags which literal payload an ExprLiteral carries.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralTrue
	LiteralFalse
	LiteralNil
)

// Expr is one node of an expression tree. Exactly the fields matching Kind
// are meaningful; the rest are zero.
type Expr struct {
	Kind ExprKind
	Line int

	// ExprLiteral
	LiteralKind LiteralKind
	NumberValue float64
	StringValue string

	// ExprUnary / ExprBinary: Operator is the operator token's kind.
	Operator token.Kind
	Left     *Expr // ExprBinary
	Right    *Expr // ExprUnary, ExprBinary

	// ExprGrouping
	Inner *Expr

	// ExprVariable / ExprAssign
	Name string
	// ExprAssign
	Value *Expr

	// ExprInvalid
	Message string
}

// Literal builds an ExprLiteral node.
func Literal(line int, kind LiteralKind) Expr {
	return Expr{Kind: ExprLiteral, Line: line, LiteralKind: kind}
}

// NumberLiteral builds a numeric ExprLiteral.
func NumberLiteral(line int, v float64) Expr {
	return Expr{Kind: ExprLiteral, Line: line, LiteralKind: LiteralNumber, NumberValue: v}
}

// StringLiteral builds a string ExprLiteral.
func StringLiteral(line int, s string) Expr {
	return Expr{Kind: ExprLiteral, Line: line, LiteralKind: LiteralString, StringValue: s}
}

// Unary builds an ExprUnary node (operator is Minus or Bang).
func Unary(line int, operator token.Kind, right *Expr) Expr {
	return Expr{Kind: ExprUnary, Line: line, Operator: operator, Right: right}
}

// Binary builds an ExprBinary node.
func Binary(line int, left *Expr, operator token.Kind, right *Expr) Expr {
	return Expr{Kind: ExprBinary, Line: line, Left: left, Operator: operator, Right: right}
}

// Grouping builds an ExprGrouping node for a parenthesized expression.
func Grouping(line int, inner *Expr) Expr {
	return Expr{Kind: ExprGrouping, Line: line, Inner: inner}
}

// Variable builds an ExprVariable node referencing name.
func Variable(line int, name string) Expr {
	return Expr{Kind: ExprVariable, Line: line, Name: name}
}

// Assign builds an ExprAssign node (name = value).
func Assign(line int, name string, value *Expr) Expr {
	return Expr{Kind: ExprAssign, Line: line, Name: name, Value: value}
}

// InvalidExpr builds an Invalid expression node carrying a diagnostic.
func InvalidExpr(line int, message string) Expr {
	return Expr{Kind: ExprInvalid, Line: line, Message: message}
}

// operatorLexeme renders the operator token kind the way source wrote it,
// for use inside Render's Polish-notation output.
func operatorLexeme(k token.Kind) string {
	switch k {
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Star:
		return "*"
	case token.Slash:
		return "/"
	case token.Bang:
		return "!"
	case token.BangEqual:
		return "!="
	case token.Equal:
		return "="
	case token.EqualEqual:
		return "=="
	case token.Less:
		return "<"
	case token.LessEqual:
		return "<="
	case token.Greater:
		return ">"
	case token.GreaterEqual:
		return ">="
	default:
		return k.String()
	}
}

// Render produces the Polish-notation text the parse sub-command prints
// for this expression, e.g. "(+ 1 2)", "(group (- 3))", "true", "nil".
// A nested Invalid node renders inline as its own diagnostic text rather
// than aborting the parent's render.
func (e *Expr) Render() string {
	if e == nil {
		return "nil"
	}
	switch e.Kind {
	case ExprLiteral:
		switch e.LiteralKind {
		case LiteralNumber:
			return numfmt.Minimal(e.NumberValue)
		case LiteralString:
			return e.StringValue
		case LiteralTrue:
			return "true"
		case LiteralFalse:
			return "false"
		case LiteralNil:
			return "nil"
		}
	case ExprUnary:
		return fmt.Sprintf("(%s %s)", operatorLexeme(e.Operator), e.Right.Render())
	case ExprBinary:
		return fmt.Sprintf("(%s %s %s)", operatorLexeme(e.Operator), e.Left.Render(), e.Right.Render())
	case ExprGrouping:
		return fmt.Sprintf("(group %s)", e.Inner.Render())
	case ExprVariable:
		return e.Name
	case ExprAssign:
		return fmt.Sprintf("(%s = %s)", e.Name, e.Value.Render())
	case ExprInvalid:
		return fmt.Sprintf("Parse error: %s", e.Message)
	}
	return ""
}

// ContainsError reports whether e, or any descendant, is an Invalid node.
func (e *Expr) ContainsError() bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case ExprInvalid:
		return true
	case ExprUnary:
		return e.Right.ContainsError()
	case ExprBinary:
		return e.Left.ContainsError() || e.Right.ContainsError()
	case ExprGrouping:
		return e.Inner.ContainsError()
	case ExprAssign:
		return e.Value.ContainsError()
	}
	return false
}

// FirstError returns the message of the first Invalid node found in a
// depth-first walk of e, and true if one exists.
func (e *Expr) FirstError() (string, bool) {
	if e == nil {
		return "", false
	}
	switch e.Kind {
	case ExprInvalid:
		return e.Message, true
	case ExprUnary:
		return e.Right.FirstError()
	case ExprBinary:
		if msg, ok := e.Left.FirstError(); ok {
			return msg, true
		}
		return e.Right.FirstError()
	case ExprGrouping:
		return e.Inner.FirstError()
	case ExprAssign:
		return e.Value.FirstError()
	}
	return "", false
}

// FirstInvalid returns the line and message of the first Invalid node
// found in a depth-first walk of e, and true if one exists. It is the
// line-carrying counterpart to FirstError, used where a caller needs to
// render the "[line N] Error: <message>" form tokenize's errors use.
func (e *Expr) FirstInvalid() (int, string, bool) {
	if e == nil {
		return 0, "", false
	}
	switch e.Kind {
	case ExprInvalid:
		return e.Line, e.Message, true
	case ExprUnary:
		return e.Right.FirstInvalid()
	case ExprBinary:
		if line, msg, ok := e.Left.FirstInvalid(); ok {
			return line, msg, true
		}
		return e.Right.FirstInvalid()
	case ExprGrouping:
		return e.Inner.FirstInvalid()
	case ExprAssign:
		return e.Value.FirstInvalid()
	}
	return 0, "", false
}

// String mirrors Render so an Expr satisfies fmt.Stringer; handy in tests.
func (e Expr) String() string {
	return strings.TrimSpace((&e).Render())
}
