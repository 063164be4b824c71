/*
File    : loxwalk/value/value.go

Package value holds the runtime values the evaluator produces: numbers,
booleans, strings, and nil. Each can carry an optional back-reference to
the token it was produced at; the evaluator builds every value with no
source token and takes a runtime error's line from the AST node instead.
*/
package value

import (
	"github.com/riverstone-labs/loxwalk/internal/numfmt"
	"github.com/riverstone-labs/loxwalk/token"
)

// Kind tags which concrete value a Value holds.
type Kind int

const (
	KindNumber Kind = iota
	KindBoolean
	KindString
	KindNil
)

// Value is the runtime representation of every loxwalk expression result.
type Value struct {
	Kind Kind

	NumberValue  float64
	BooleanValue bool
	StringValue  string

	// Source is the token this value was produced at, when known, and nil
	// otherwise. The evaluator always passes nil here; runtime-error lines
	// come from the AST node being evaluated.
	Source *token.Token
}

// Number builds a numeric Value, optionally tagged with its source token.
func Number(v float64, src *token.Token) Value {
	return Value{Kind: KindNumber, NumberValue: v, Source: src}
}

// Boolean builds a boolean Value, optionally tagged with its source token.
func Boolean(v bool, src *token.Token) Value {
	return Value{Kind: KindBoolean, BooleanValue: v, Source: src}
}

// String builds a string Value, optionally tagged with its source token.
func String(v string, src *token.Token) Value {
	return Value{Kind: KindString, StringValue: v, Source: src}
}

// Nil builds the Nil value, optionally tagged with its source token.
func Nil(src *token.Token) Value {
	return Value{Kind: KindNil, Source: src}
}

// IsTruthy implements the language's truthiness rule: nil and false are
// falsey, everything else (including 0 and "") is truthy.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBoolean:
		return v.BooleanValue
	default:
		return true
	}
}

// String renders v the way the print statement and the evaluate/run
// sub-commands display a result: numbers use the minimal (no trailing
// ".0" on integral doubles) format, not tokenize's always-decimal one.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return numfmt.Minimal(v.NumberValue)
	case KindBoolean:
		if v.BooleanValue {
			return "true"
		}
		return "false"
	case KindString:
		return v.StringValue
	case KindNil:
		return "nil"
	}
	return ""
}

// TypeName names v's kind the way a runtime-error message would refer to
// it, e.g. for operand-type diagnostics.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	default:
		return "nil"
	}
}

// Equal implements the language's equality: same kind and same payload
// compare structurally; different kinds are simply unequal — equality
// never errors, unlike the arithmetic and comparison operators.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNumber:
		return a.NumberValue == b.NumberValue
	case KindBoolean:
		return a.BooleanValue == b.BooleanValue
	case KindString:
		return a.StringValue == b.StringValue
	case KindNil:
		return true
	}
	return false
}
