/*
File    : loxwalk/cmd/loxwalk/main.go

Package main is the entry point for the loxwalk interpreter. It dispatches
on the first command-line argument to one of five sub-commands:

	loxwalk tokenize <file>  - lex only, print one line per token
	loxwalk parse <file>     - parse a full program, print its AST
	loxwalk evaluate <file>  - parse and run one bare expression
	loxwalk run <file>       - parse and run a full program
	loxwalk repl             - start an interactive session

Each file-based sub-command reads its argument once, then routes it
through the lexer/parser/eval pipeline, using the exit codes 0 (success),
65 (lexical or syntax error), and 70 (runtime error) to tell a test
harness which stage failed.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/riverstone-labs/loxwalk/ast"
	"github.com/riverstone-labs/loxwalk/eval"
	"github.com/riverstone-labs/loxwalk/lexer"
	"github.com/riverstone-labs/loxwalk/parser"
	"github.com/riverstone-labs/loxwalk/repl"
)

// Exit codes the CLI reports to its caller.
const (
	exitSuccess     = 0
	exitSyntaxOrLex = 65
	exitRuntime     = 70
)

var (
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
	blueColor  = color.New(color.FgBlue)
)

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	if command == "repl" {
		repl.New().Start(os.Stdin, os.Stdout)
		return
	}

	if len(os.Args) < 3 {
		redColor.Fprintf(os.Stderr, "Usage: loxwalk %s <filename>\n", command)
		os.Exit(1)
	}

	filename := os.Args[2]
	source, err := os.ReadFile(filename)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "tokenize":
		os.Exit(runTokenize(string(source)))
	case "parse":
		os.Exit(runParse(string(source)))
	case "evaluate":
		os.Exit(runEvaluate(string(source)))
	case "run":
		os.Exit(runRun(string(source)))
	default:
		redColor.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		showUsage()
		os.Exit(1)
	}
}

func showUsage() {
	cyanColor.Println("loxwalk - a tree-walking interpreter")
	blueColor.Println("Usage:")
	fmt.Println("  loxwalk tokenize <file>")
	fmt.Println("  loxwalk parse <file>")
	fmt.Println("  loxwalk evaluate <file>")
	fmt.Println("  loxwalk run <file>")
	fmt.Println("  loxwalk repl")
}

// runTokenize prints one TokenizeLine per token to stdout and each
// lexical-error token's TokenizeError to stderr, exiting 65 if any
// lexical error was seen.
func runTokenize(source string) int {
	tokens := lexer.Tokenize(source)

	exitCode := exitSuccess
	for _, tok := range tokens {
		if tok.Kind.IsError() {
			fmt.Fprintln(os.Stderr, tok.TokenizeError())
			exitCode = exitSyntaxOrLex
			continue
		}
		fmt.Println(tok.TokenizeLine())
	}
	return exitCode
}

// runParse parses a full program and prints each declaration's rendered
// form to stdout. A syntax error prints to stderr instead and the
// sub-command exits 65.
func runParse(source string) int {
	tokens := lexer.Tokenize(source)
	prog := parser.Parse(tokens)

	if prog.ContainsError() {
		if line, msg, ok := prog.FirstInvalid(); ok {
			redColor.Fprintf(os.Stderr, "[line %d] Error: %s\n", line, msg)
		}
		return exitSyntaxOrLex
	}

	for _, decl := range prog.Declarations {
		fmt.Println(renderDecl(decl))
	}
	return exitSuccess
}

// runEvaluate parses tokens as a single bare expression (no statement
// grammar) and prints its value. A syntax error exits 65; a runtime
// error exits 70, and takes priority only when no syntax error precedes
// it — evaluate never reaches evaluation unless parsing already succeeded.
func runEvaluate(source string) int {
	tokens := lexer.Tokenize(source)
	expr := parser.ParseExpression(tokens)

	if expr.ContainsError() {
		if line, msg, ok := expr.FirstInvalid(); ok {
			redColor.Fprintf(os.Stderr, "[line %d] Error: %s\n", line, msg)
		}
		return exitSyntaxOrLex
	}

	e := eval.New(os.Stdout)
	v, err := e.EvaluateExpr(&expr)
	if err != nil {
		// Unlike run's runtime-error path, evaluate's error text ends at
		// "[Line N]" with no trailing newline.
		redColor.Fprintf(os.Stderr, "%s", err.Error())
		return exitRuntime
	}
	fmt.Println(v.String())
	return exitSuccess
}

// runRun parses a full program and executes it, with print statements the
// only source of stdout output. A syntax error exits 65 without running
// anything; a runtime error exits 70, after whatever output already ran.
func runRun(source string) int {
	tokens := lexer.Tokenize(source)
	prog := parser.Parse(tokens)

	if prog.ContainsError() {
		if line, msg, ok := prog.FirstInvalid(); ok {
			redColor.Fprintf(os.Stderr, "[line %d] Error: %s\n", line, msg)
		}
		return exitSyntaxOrLex
	}

	e := eval.New(os.Stdout)
	if err := e.Run(prog); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		return exitRuntime
	}
	return exitSuccess
}

// renderDecl renders one top-level declaration the way parse prints it: a
// var declaration as "(var name initializer)" (or without an initializer
// clause for "var x;"), a statement declaration as its statement's form.
func renderDecl(decl ast.Decl) string {
	switch decl.Kind {
	case ast.DeclVar:
		if decl.Initializer == nil {
			return fmt.Sprintf("(var %s)", decl.Name)
		}
		return fmt.Sprintf("(var %s %s)", decl.Name, decl.Initializer.Render())
	case ast.DeclStatement:
		return renderStmt(*decl.Statement)
	}
	return ""
}

func renderStmt(stmt ast.Stmt) string {
	switch stmt.Kind {
	case ast.StmtExpression:
		return stmt.Expression.Render()
	case ast.StmtPrint:
		return fmt.Sprintf("(print %s)", stmt.Expression.Render())
	case ast.StmtBlock:
		rendered := make([]string, 0, len(stmt.Declarations))
		for _, d := range stmt.Declarations {
			rendered = append(rendered, renderDecl(d))
		}
		return fmt.Sprintf("(block %s)", strings.Join(rendered, " "))
	case ast.StmtInvalid:
		return fmt.Sprintf("Parse error: %s", stmt.Message)
	}
	return ""
}
