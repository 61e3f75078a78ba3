/*
File    : go-lox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the Lox interpreter.
The REPL provides an interactive environment where users can:
- Enter Lox code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and runs every line through the full pipeline (parse, resolve, evaluate).
Interpreter state persists across lines: the evaluator's global scope and
its resolution map live for the whole session, so functions and variables
defined on earlier lines stay usable, and closures from earlier lines keep
their bindings.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages
// - greenColor: Banner
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner      string // ASCII art banner displayed at startup
	Version     string // Version string of the interpreter
	Author      string // Author contact information
	Line        string // Separator line for visual formatting
	License     string // Software license information
	Prompt      string // Command prompt shown to the user (e.g., "lox >>> ")
	HistoryFile string // Where readline persists history; empty disables it
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt, historyFile string) *Repl {
	return &Repl{
		Banner:      banner,
		Version:     version,
		Author:      author,
		Line:        line,
		License:     license,
		Prompt:      prompt,
		HistoryFile: historyFile,
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Go-Lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates the session's evaluator
// 4. Reads, resolves and evaluates lines until exit
//
// The loop continues until the user types '.exit' or EOF is encountered
// (Ctrl+D). Errors never terminate the session: static errors are printed
// and the line discarded; runtime errors are printed and the session's
// state up to the failing statement is kept.
//
// Parameters:
//
//	reader - Input source (unused directly; readline owns the terminal)
//	writer - Output destination (typically os.Stdout)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: r.HistoryFile,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// One evaluator for the whole session: globals and resolution entries
	// accumulate across lines
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g. Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		ExecuteLine(writer, line, evaluator)
	}
}

// ExecuteLine runs one line of input through parse, resolve and evaluate
// against a persistent evaluator, reporting errors without aborting the
// session.
//
// When the line's last statement is a bare expression, its value is echoed
// in yellow; declarations and statements stay silent (their effect is the
// point). This mirrors scratchpad usage: "1 + 2;" answers back, "var a = 1;"
// does not.
func ExecuteLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	par := parser.NewParser(line)
	root := par.Parse()
	if len(par.Errors) > 0 {
		for _, msg := range par.Errors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	res := resolver.NewResolver()
	locals := res.Resolve(root)
	if len(res.Errors) > 0 {
		for _, msg := range res.Errors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}
	evaluator.AddLocals(locals)

	result := evaluator.Eval(root)
	if eval.IsError(result) {
		redColor.Fprintf(writer, "%s\n", result.ToObject())
		return
	}

	// Echo the value of a trailing bare expression
	if len(root.Statements) > 0 {
		if _, ok := root.Statements[len(root.Statements)-1].(*parser.ExpressionStatementNode); ok {
			if result.GetType() != objects.NilType {
				yellowColor.Fprintf(writer, "%s\n", result.ToString())
			}
		}
	}
}
