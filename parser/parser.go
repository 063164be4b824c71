/*
File    : loxwalk/parser/parser.go

Package parser turns a token stream into the ast package's tagged-variant
tree via straightforward recursive descent, one method per grammar level.
It runs in simple mode: a parse failure is wrapped in an Invalid node in
place of the node that failed, and parsing continues from there — there
is no synchronization or token discarding. A lexical-error token reaching
the parser becomes an Invalid node the same way a syntax error does.

Two entry points cover the two grammars the CLI sub-commands need: Parse
builds a full Program (declaration* EOF), the grammar parse and run use;
ParseExpression parses a single bare expression with no trailing
semicolon or statement wrapper, the grammar evaluate uses.
*/
package parser

import (
	"fmt"

	"github.com/riverstone-labs/loxwalk/ast"
	"github.com/riverstone-labs/loxwalk/token"
)

// Parser consumes a token slice (as produced by lexer.Tokenize, including
// its trailing EOF) and builds ast nodes from it.
type Parser struct {
	tokens  []token.Token
	current int
}

// New creates a Parser over tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds a full Program: every declaration up to EOF.
func Parse(tokens []token.Token) *ast.Program {
	p := New(tokens)
	return p.Parse()
}

// ParseExpression parses tokens as a single bare expression — the entry
// point the evaluate sub-command uses, since its grammar has no semicolon
// or statement wrapper.
func ParseExpression(tokens []token.Token) ast.Expr {
	p := New(tokens)
	return p.expression()
}

// Parse is the instance-method form of the package-level Parse function.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		prog.Declarations = append(prog.Declarations, p.declaration())
	}
	return prog
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// matchAny advances and returns true if the current token is one of kinds.
func (p *Parser) matchAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// lexErrorMessage renders a lexical-error token's message body, without
// the "[line N] Error: " prefix TokenizeError uses for the tokenize
// sub-command — parse-time Invalid nodes carry the bare message, same as
// every other diagnostic this package produces.
func lexErrorMessage(tok token.Token) string {
	switch tok.Kind {
	case token.ErrorUnknownCharacter:
		return fmt.Sprintf("Unexpected character: %c", tok.ErrorChar)
	case token.ErrorUnterminatedString:
		return "Unterminated string."
	case token.ErrorInvalidNumber:
		return fmt.Sprintf("Invalid number: %s", tok.Lexeme)
	default:
		return "Unknown lexical error."
	}
}

// declaration -> varDecl | statement
func (p *Parser) declaration() ast.Decl {
	if p.matchAny(token.Var) {
		return p.varDecl()
	}
	stmt := p.statement()
	return ast.StmtDecl(stmt)
}

// varDecl -> "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDecl() ast.Decl {
	line := p.previous().Line
	if p.peek().Kind.IsError() {
		tok := p.advance()
		return ast.VarDecl(line, "", invalidExprPtr(line, lexErrorMessage(tok)))
	}
	if !p.check(token.Identifier) {
		return ast.VarDecl(line, "", invalidExprPtr(p.peek().Line, "Expect variable name."))
	}
	name := p.advance().Lexeme

	var initializer *ast.Expr
	if p.matchAny(token.Equal) {
		expr := p.expression()
		initializer = &expr
	}

	if !p.matchAny(token.Semicolon) {
		msg := invalidExpr(p.peek().Line, "Expect ';' after variable declaration.")
		return ast.VarDecl(line, name, &msg)
	}
	return ast.VarDecl(line, name, initializer)
}

// statement -> exprStmt | printStmt | block
func (p *Parser) statement() ast.Stmt {
	if p.matchAny(token.Print) {
		return p.printStmt()
	}
	if p.matchAny(token.LeftBrace) {
		return p.block()
	}
	return p.exprStmt()
}

// printStmt -> "print" expression ";"
func (p *Parser) printStmt() ast.Stmt {
	line := p.previous().Line
	expr := p.expression()
	if !p.matchAny(token.Semicolon) {
		return ast.InvalidStmt(p.peek().Line, "Expect ';' after expression.")
	}
	return ast.PrintStmt(line, &expr)
}

// block -> "{" declaration* "}"
func (p *Parser) block() ast.Stmt {
	line := p.previous().Line
	var decls []ast.Decl
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		decls = append(decls, p.declaration())
	}
	if !p.matchAny(token.RightBrace) {
		return ast.InvalidStmt(p.peek().Line, "Expect '}' after block.")
	}
	return ast.BlockStmt(line, decls)
}

// exprStmt -> expression ";"
func (p *Parser) exprStmt() ast.Stmt {
	line := p.peek().Line
	expr := p.expression()
	if !p.matchAny(token.Semicolon) {
		return ast.InvalidStmt(p.peek().Line, "Expect ';' after expression.")
	}
	return ast.ExpressionStmt(line, &expr)
}

// expression -> assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment -> IDENTIFIER "=" assignment | equality
//
// Parsed by first parsing an equality-or-lower expression, then, if an
// '=' follows, re-interpreting that already-parsed expression as an
// assignment target. This avoids needing unbounded lookahead to tell an
// assignment from a plain expression up front.
func (p *Parser) assignment() ast.Expr {
	expr := p.equality()

	if p.matchAny(token.Equal) {
		equalsLine := p.previous().Line
		value := p.assignment()
		if expr.Kind == ast.ExprVariable {
			return ast.Assign(expr.Line, expr.Name, &value)
		}
		return invalidExpr(equalsLine, "Invalid assignment target.")
	}
	return expr
}

// equality -> comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.matchAny(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		left := expr
		expr = ast.Binary(op.Line, &left, op.Kind, &right)
	}
	return expr
}

// comparison -> term ( ( "<" | "<=" | ">" | ">=" ) term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.matchAny(token.Less, token.LessEqual, token.Greater, token.GreaterEqual) {
		op := p.previous()
		right := p.term()
		left := expr
		expr = ast.Binary(op.Line, &left, op.Kind, &right)
	}
	return expr
}

// term -> factor ( ( "+" | "-" ) factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.matchAny(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		left := expr
		expr = ast.Binary(op.Line, &left, op.Kind, &right)
	}
	return expr
}

// factor -> unary ( ( "*" | "/" ) unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.matchAny(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		left := expr
		expr = ast.Binary(op.Line, &left, op.Kind, &right)
	}
	return expr
}

// unary -> ( "!" | "-" ) unary | primary
func (p *Parser) unary() ast.Expr {
	if p.matchAny(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return ast.Unary(op.Line, op.Kind, &right)
	}
	return p.primary()
}

// primary -> NUMBER | STRING | "true" | "false" | "nil"
//          | "(" expression ")" | IDENTIFIER
func (p *Parser) primary() ast.Expr {
	tok := p.peek()

	switch tok.Kind {
	case token.Number:
		p.advance()
		return ast.NumberLiteral(tok.Line, tok.NumberValue)
	case token.String:
		p.advance()
		return ast.StringLiteral(tok.Line, tok.StringValue)
	case token.True:
		p.advance()
		return ast.Literal(tok.Line, ast.LiteralTrue)
	case token.False:
		p.advance()
		return ast.Literal(tok.Line, ast.LiteralFalse)
	case token.Nil:
		p.advance()
		return ast.Literal(tok.Line, ast.LiteralNil)
	case token.Identifier:
		p.advance()
		return ast.Variable(tok.Line, tok.Lexeme)
	case token.LeftParen:
		p.advance()
		inner := p.expression()
		if !p.matchAny(token.RightParen) {
			return invalidExpr(p.peek().Line, "Expect ')' after expression.")
		}
		return ast.Grouping(tok.Line, &inner)
	}

	if tok.Kind.IsError() {
		p.advance()
		return invalidExpr(tok.Line, lexErrorMessage(tok))
	}

	// No primary alternative matches. Consume the offending token so the
	// declaration loop always makes forward progress even with no
	// synchronization to a recovery point.
	p.advance()
	return invalidExpr(tok.Line, "Expect expression.")
}

func invalidExpr(line int, message string) ast.Expr {
	return ast.InvalidExpr(line, message)
}

func invalidExprPtr(line int, message string) *ast.Expr {
	e := ast.InvalidExpr(line, message)
	return &e
}
