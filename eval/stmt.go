/*
File    : loxwalk/eval/stmt.go
*/
package eval

import (
	"fmt"

	"github.com/riverstone-labs/loxwalk/ast"
	"github.com/riverstone-labs/loxwalk/environment"
)

// Run executes every declaration in prog against the Evaluator's current
// environment, in order, halting eagerly at the first RuntimeError. Prior
// side effects (print output already written, variables already bound)
// are kept; nothing after the failing declaration runs.
func (e *Evaluator) Run(prog *ast.Program) error {
	for i := range prog.Declarations {
		if err := e.ExecuteDecl(&prog.Declarations[i]); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteDecl runs one declaration: a var declaration binds its
// initializer's value (or nil, if none) in the current scope; a plain
// statement declaration just executes the statement.
func (e *Evaluator) ExecuteDecl(decl *ast.Decl) error {
	switch decl.Kind {
	case ast.DeclVar:
		v, err := e.EvaluateExpr(decl.Initializer)
		if err != nil {
			return err
		}
		e.Env.Define(decl.Name, v)
		return nil
	case ast.DeclStatement:
		return e.ExecuteStmt(decl.Statement)
	}
	return nil
}

// ExecuteStmt runs one statement. A block runs its declarations in a
// fresh child scope that is discarded on exit, restoring the enclosing
// environment whether the block completes or halts on error.
func (e *Evaluator) ExecuteStmt(stmt *ast.Stmt) error {
	switch stmt.Kind {
	case ast.StmtExpression:
		_, err := e.EvaluateExpr(stmt.Expression)
		return err

	case ast.StmtPrint:
		v, err := e.EvaluateExpr(stmt.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.Out, v.String())
		return nil

	case ast.StmtBlock:
		return e.executeBlock(stmt.Declarations)
	}
	return nil
}

func (e *Evaluator) executeBlock(decls []ast.Decl) error {
	previous := e.Env
	e.Env = environment.New(previous)
	defer func() { e.Env = previous }()

	for i := range decls {
		if err := e.ExecuteDecl(&decls[i]); err != nil {
			return err
		}
	}
	return nil
}
