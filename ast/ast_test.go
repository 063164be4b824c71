/*
File    : loxwalk/ast/ast_test.go
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riverstone-labs/loxwalk/token"
)

func TestExprRender_Literal(t *testing.T) {
	n := NumberLiteral(1, 3)
	assert.Equal(t, "3", n.Render())

	f := NumberLiteral(1, 3.5)
	assert.Equal(t, "3.5", f.Render())

	s := StringLiteral(1, "hi")
	assert.Equal(t, "hi", s.Render())

	tru := Literal(1, LiteralTrue)
	assert.Equal(t, "true", tru.Render())

	nilExpr := Literal(1, LiteralNil)
	assert.Equal(t, "nil", nilExpr.Render())
}

func TestExprRender_Binary(t *testing.T) {
	left := NumberLiteral(1, 1)
	right := NumberLiteral(1, 2)
	b := Binary(1, &left, token.Plus, &right)
	assert.Equal(t, "(+ 1 2)", b.Render())
}

func TestExprRender_UnaryAndGrouping(t *testing.T) {
	inner := NumberLiteral(1, 3)
	u := Unary(1, token.Minus, &inner)
	assert.Equal(t, "(- 3)", u.Render())

	g := Grouping(1, &u)
	assert.Equal(t, "(group (- 3))", g.Render())
}

func TestExprRender_Assignment(t *testing.T) {
	value := NumberLiteral(1, 3)
	a := Assign(1, "x", &value)
	assert.Equal(t, "(x = 3)", a.Render())
}

func TestExprContainsError_Nested(t *testing.T) {
	invalid := InvalidExpr(2, "Expect expression.")
	left := NumberLiteral(1, 1)
	b := Binary(1, &left, token.Plus, &invalid)

	assert.True(t, b.ContainsError())
	msg, ok := b.FirstError()
	assert.True(t, ok)
	assert.Equal(t, "Expect expression.", msg)
}

func TestExprContainsError_CleanTree(t *testing.T) {
	left := NumberLiteral(1, 1)
	right := NumberLiteral(1, 2)
	b := Binary(1, &left, token.Plus, &right)
	assert.False(t, b.ContainsError())
	_, ok := b.FirstError()
	assert.False(t, ok)
}

func TestProgramContainsError(t *testing.T) {
	good := StmtDecl(ExpressionStmt(1, ptr(NumberLiteral(1, 1))))
	invalid := InvalidExpr(2, "Expect ';' after expression.")
	bad := StmtDecl(ExpressionStmt(2, &invalid))

	p := &Program{Declarations: []Decl{good, bad}}
	assert.True(t, p.ContainsError())

	msg, ok := p.FirstError()
	assert.True(t, ok)
	assert.Equal(t, "Expect ';' after expression.", msg)
}

func TestExprFirstInvalid_CarriesLine(t *testing.T) {
	invalid := InvalidExpr(2, "Expect expression.")
	left := NumberLiteral(1, 1)
	b := Binary(1, &left, token.Plus, &invalid)

	line, msg, ok := b.FirstInvalid()
	assert.True(t, ok)
	assert.Equal(t, 2, line)
	assert.Equal(t, "Expect expression.", msg)
}

func ptr(e Expr) *Expr { return &e }
