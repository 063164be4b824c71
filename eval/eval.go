/*
File    : loxwalk/eval/eval.go

Package eval tree-walks the ast package's nodes and produces value.Value
results, threading a chain of environment.Environment scopes for variable
storage and an io.Writer for print output. Evaluation of a Program halts
eagerly at the first RuntimeError: every declaration already executed
keeps its effect (bindings stay defined, prior print output stays
written), but nothing after the failing statement runs.
*/
package eval

import (
	"io"
	"strings"

	"github.com/riverstone-labs/loxwalk/ast"
	"github.com/riverstone-labs/loxwalk/environment"
	"github.com/riverstone-labs/loxwalk/token"
	"github.com/riverstone-labs/loxwalk/value"
)

// Evaluator walks ast nodes against one environment chain, writing print
// statement output to Out.
type Evaluator struct {
	Env *environment.Environment
	Out io.Writer
}

// New creates an Evaluator with a fresh global scope, writing print
// output to out.
func New(out io.Writer) *Evaluator {
	return &Evaluator{Env: environment.New(nil), Out: out}
}

// EvaluateExpr computes expr's value. It is the entry point the evaluate
// sub-command uses against a bare expression with no surrounding program.
func (e *Evaluator) EvaluateExpr(expr *ast.Expr) (value.Value, error) {
	if expr == nil {
		return value.Nil(nil), nil
	}

	switch expr.Kind {
	case ast.ExprInvalid:
		// Should not reach the evaluator: parse errors are checked and
		// reported before evaluation begins. Treated as nil defensively.
		return value.Nil(nil), nil

	case ast.ExprLiteral:
		return e.evalLiteral(expr), nil

	case ast.ExprGrouping:
		return e.EvaluateExpr(expr.Inner)

	case ast.ExprUnary:
		return e.evalUnary(expr)

	case ast.ExprBinary:
		return e.evalBinary(expr)

	case ast.ExprVariable:
		v, err := e.Env.Get(expr.Name)
		if err != nil {
			return value.Value{}, runtimeErrorf(expr.Line, "%s", err.Error())
		}
		return v, nil

	case ast.ExprAssign:
		v, err := e.EvaluateExpr(expr.Value)
		if err != nil {
			return value.Value{}, err
		}
		if err := e.Env.Assign(expr.Name, v); err != nil {
			return value.Value{}, runtimeErrorf(expr.Line, "%s", err.Error())
		}
		return v, nil
	}

	return value.Nil(nil), nil
}

func (e *Evaluator) evalLiteral(expr *ast.Expr) value.Value {
	switch expr.LiteralKind {
	case ast.LiteralNumber:
		return value.Number(expr.NumberValue, nil)
	case ast.LiteralString:
		return value.String(expr.StringValue, nil)
	case ast.LiteralTrue:
		return value.Boolean(true, nil)
	case ast.LiteralFalse:
		return value.Boolean(false, nil)
	default:
		return value.Nil(nil)
	}
}

func (e *Evaluator) evalUnary(expr *ast.Expr) (value.Value, error) {
	right, err := e.EvaluateExpr(expr.Right)
	if err != nil {
		return value.Value{}, err
	}

	switch expr.Operator {
	case token.Minus:
		if right.Kind != value.KindNumber {
			return value.Value{}, runtimeErrorf(expr.Line, "Operand must be a number.")
		}
		return value.Number(-right.NumberValue, nil), nil
	case token.Bang:
		return e.evalBang(expr.Line, right)
	}
	return value.Value{}, runtimeErrorf(expr.Line, "Unknown unary operator.")
}

// evalBang implements '!' per operand kind rather than generic
// truthiness: a number negates to whether it equals zero (so !0 is
// true, unlike the language's truthy/falsey rule elsewhere), nil
// negates to true, a boolean negates logically, and a string has no '!'
// operator at all.
func (e *Evaluator) evalBang(line int, right value.Value) (value.Value, error) {
	switch right.Kind {
	case value.KindNumber:
		return value.Boolean(right.NumberValue == 0.0, nil), nil
	case value.KindNil:
		return value.Boolean(true, nil), nil
	case value.KindBoolean:
		return value.Boolean(!right.BooleanValue, nil), nil
	default:
		return value.Value{}, runtimeErrorf(line, "Operator cannot be used on string")
	}
}

func (e *Evaluator) evalBinary(expr *ast.Expr) (value.Value, error) {
	left, err := e.EvaluateExpr(expr.Left)
	if err != nil {
		return value.Value{}, err
	}
	right, err := e.EvaluateExpr(expr.Right)
	if err != nil {
		return value.Value{}, err
	}

	switch expr.Operator {
	case token.Plus:
		return e.evalPlus(expr.Line, left, right)
	case token.Minus:
		return e.numericBinary(expr.Line, left, right, func(a, b float64) float64 { return a - b })
	case token.Star:
		return e.evalStar(expr.Line, left, right)
	case token.Slash:
		return e.numericBinary(expr.Line, left, right, func(a, b float64) float64 { return a / b })
	case token.Greater:
		return e.comparisonBinary(expr.Line, left, right, func(a, b float64) bool { return a > b })
	case token.GreaterEqual:
		return e.comparisonBinary(expr.Line, left, right, func(a, b float64) bool { return a >= b })
	case token.Less:
		return e.comparisonBinary(expr.Line, left, right, func(a, b float64) bool { return a < b })
	case token.LessEqual:
		return e.comparisonBinary(expr.Line, left, right, func(a, b float64) bool { return a <= b })
	case token.EqualEqual:
		return value.Boolean(value.Equal(left, right), nil), nil
	case token.BangEqual:
		return value.Boolean(!value.Equal(left, right), nil), nil
	}
	return value.Value{}, runtimeErrorf(expr.Line, "Unknown binary operator.")
}

// evalPlus implements '+': number+number adds, string+string concatenates.
// Mixed or non-numeric/non-string operands are a runtime error.
func (e *Evaluator) evalPlus(line int, left, right value.Value) (value.Value, error) {
	if left.Kind == value.KindNumber && right.Kind == value.KindNumber {
		return value.Number(left.NumberValue+right.NumberValue, nil), nil
	}
	if left.Kind == value.KindString && right.Kind == value.KindString {
		return value.String(left.StringValue+right.StringValue, nil), nil
	}
	return value.Value{}, runtimeErrorf(line, "Operands must be two numbers or two strings.")
}

// evalStar implements '*': number*number multiplies; a string paired with
// a number repeats the string that many times (floor of the number, or
// zero for a negative count), in either operand order.
func (e *Evaluator) evalStar(line int, left, right value.Value) (value.Value, error) {
	if left.Kind == value.KindNumber && right.Kind == value.KindNumber {
		return value.Number(left.NumberValue*right.NumberValue, nil), nil
	}
	if left.Kind == value.KindString && right.Kind == value.KindNumber {
		return value.String(repeatString(left.StringValue, right.NumberValue), nil), nil
	}
	if left.Kind == value.KindNumber && right.Kind == value.KindString {
		return value.String(repeatString(right.StringValue, left.NumberValue), nil), nil
	}
	return value.Value{}, runtimeErrorf(line, "Operands must be numbers.")
}

func repeatString(s string, count float64) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, int(count))
}

func (e *Evaluator) numericBinary(line int, left, right value.Value, op func(a, b float64) float64) (value.Value, error) {
	if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
		return value.Value{}, runtimeErrorf(line, "Operands must be numbers.")
	}
	return value.Number(op(left.NumberValue, right.NumberValue), nil), nil
}

func (e *Evaluator) comparisonBinary(line int, left, right value.Value, op func(a, b float64) bool) (value.Value, error) {
	if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
		return value.Value{}, runtimeErrorf(line, "Operands must be numbers.")
	}
	return value.Boolean(op(left.NumberValue, right.NumberValue), nil), nil
}
