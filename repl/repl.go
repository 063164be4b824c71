/*
File    : loxwalk/repl/repl.go

Package repl implements an interactive Read-Eval-Print Loop for loxwalk.
It reads one line at a time, parses it as a full program (so a var
declaration on one line stays visible to later lines), and evaluates it
against a single Environment that persists for the session — so a
variable bound on one line is still there on the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/riverstone-labs/loxwalk/eval"
	"github.com/riverstone-labs/loxwalk/lexer"
	"github.com/riverstone-labs/loxwalk/parser"
)

// Color definitions for REPL output: blue for banner separators, green
// for the banner itself, cyan for instructions, red for diagnostics.
var (
	blueColor = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	cyanColor = color.New(color.FgCyan)
	redColor  = color.New(color.FgRed)
)

const (
	prompt = "loxwalk> "
	line   = "----------------------------------------------------------------"
)

// Repl holds the configuration for one interactive session.
type Repl struct {
	Prompt string
}

// New creates a Repl with the default prompt.
func New() *Repl {
	return &Repl{Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintln(w, "loxwalk")
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type loxwalk source and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the REPL loop until the user exits or closes input. writer
// receives both the banner/diagnostics and any print statement output
// from evaluated code.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New(writer)

	for {
		input, err := rl.Readline()
		if err != nil {
			io.WriteString(writer, "Goodbye!\n")
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			io.WriteString(writer, "Goodbye!\n")
			return
		}

		rl.SaveHistory(input)
		r.evalLine(writer, input, evaluator)
	}
}

// evalLine parses one line of input as a full program and runs it against
// the session's persistent environment. Parse errors and runtime errors
// are printed in red and never stop the loop — unlike file mode, the
// REPL keeps going so the user can correct a mistake and retry.
func (r *Repl) evalLine(writer io.Writer, input string, evaluator *eval.Evaluator) {
	tokens := lexer.Tokenize(input)
	prog := parser.Parse(tokens)

	if prog.ContainsError() {
		if line, msg, ok := prog.FirstInvalid(); ok {
			redColor.Fprintf(writer, "[line %d] Error: %s\n", line, msg)
		}
		return
	}

	if err := evaluator.Run(prog); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
