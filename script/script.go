/*
File    : go-lox/script/script.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package script implements script-file execution: it reads a Lox source
// file, runs the full pipeline (parse -> resolve -> evaluate), reports
// errors on stderr, and maps the outcome to the interpreter's exit code
// contract.
package script

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/resolver"
	"github.com/fatih/color"
	"github.com/mna/mainer"
)

// Exit codes of the interpreter, following the sysexits convention:
// 64 for bad command lines, 65 for malformed input (static errors),
// 70 for software faults (runtime errors), 74 for I/O failures.
const (
	ExitSuccess      = mainer.Success
	ExitUsage        = mainer.ExitCode(64)
	ExitStaticError  = mainer.ExitCode(65)
	ExitRuntimeError = mainer.ExitCode(70)
	ExitIOError      = mainer.ExitCode(74)
)

// Color definitions for error reporting
var redColor = color.New(color.FgRed)

// Run reads and executes a Lox script file.
//
// Parameters:
//   - path: Filesystem path of the script
//   - stdio: Standard streams; program output goes to Stdout, error
//     reports to Stderr
//
// Returns:
//   - mainer.ExitCode: ExitSuccess, ExitStaticError for scan/parse/resolve
//     errors, ExitRuntimeError for runtime errors, ExitIOError when the
//     file cannot be read
func Run(path string, stdio mainer.Stdio) mainer.ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(stdio.Stderr, "could not read script: %v\n", err)
		return ExitIOError
	}
	return RunSource(string(src), stdio)
}

// RunSource executes Lox source text through the whole pipeline.
//
// Static errors (scan, parse, resolve) are all reported, one per line, and
// prevent execution entirely. A runtime error aborts execution at the
// failing statement and is reported as the message followed by its source
// line.
func RunSource(src string, stdio mainer.Stdio) mainer.ExitCode {
	par := parser.NewParser(src)
	root := par.Parse()
	if len(par.Errors) > 0 {
		reportStatic(stdio, par.Errors)
		return ExitStaticError
	}

	res := resolver.NewResolver()
	locals := res.Resolve(root)
	if len(res.Errors) > 0 {
		reportStatic(stdio, res.Errors)
		return ExitStaticError
	}

	ev := eval.NewEvaluator()
	ev.SetWriter(stdio.Stdout)
	ev.AddLocals(locals)

	result := ev.Eval(root)
	if eval.IsError(result) {
		redColor.Fprintf(stdio.Stderr, "%s\n", result.ToObject())
		return ExitRuntimeError
	}

	return ExitSuccess
}

// reportStatic prints collected static errors, one per line.
func reportStatic(stdio mainer.Stdio, errors []string) {
	for _, msg := range errors {
		redColor.Fprintf(stdio.Stderr, "%s\n", msg)
	}
	fmt.Fprintf(stdio.Stderr, "%d error(s) found.\n", len(errors))
}
