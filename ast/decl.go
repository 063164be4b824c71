/*
File    : loxwalk/ast/decl.go
*/
package ast

// DeclKind tags which variant a Decl holds.
type DeclKind int

const (
	DeclVar DeclKind = iota
	DeclStatement
)

// Decl is one top-level declaration: a var declaration, or a plain
// statement wearing the declaration grammar level (every statement is
// also a declaration, per the grammar's declaration -> statement rule).
type Decl struct {
	Kind DeclKind
	Line int

	// DeclVar
	Name        string
	Initializer *Expr // nil when the declaration has no '= expr'

	// DeclStatement
	Statement *Stmt
}

// VarDecl builds a variable-declaration node. Initializer may be nil for
// "var x;" with no initializer.
func VarDecl(line int, name string, initializer *Expr) Decl {
	return Decl{Kind: DeclVar, Line: line, Name: name, Initializer: initializer}
}

// StmtDecl wraps a Stmt as a Decl, for the declaration -> statement rule.
func StmtDecl(stmt Stmt) Decl {
	return Decl{Kind: DeclStatement, Line: stmt.Line, Statement: &stmt}
}

// ContainsError reports whether d wraps an Invalid node anywhere beneath it.
func (d *Decl) ContainsError() bool {
	if d == nil {
		return false
	}
	switch d.Kind {
	case DeclVar:
		return d.Initializer.ContainsError()
	case DeclStatement:
		return d.Statement.ContainsError()
	}
	return false
}

// FirstError returns the message of the first Invalid node reachable from
// d, and true if one exists.
func (d *Decl) FirstError() (string, bool) {
	if d == nil {
		return "", false
	}
	switch d.Kind {
	case DeclVar:
		return d.Initializer.FirstError()
	case DeclStatement:
		return d.Statement.FirstError()
	}
	return "", false
}

// FirstInvalid is the line-carrying counterpart to FirstError.
func (d *Decl) FirstInvalid() (int, string, bool) {
	if d == nil {
		return 0, "", false
	}
	switch d.Kind {
	case DeclVar:
		return d.Initializer.FirstInvalid()
	case DeclStatement:
		return d.Statement.FirstInvalid()
	}
	return 0, "", false
}
