/*
File    : go-lox/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Go-Lox interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. Script Mode: Execute a Lox source file given as the single argument

The interpreter uses a lexer-parser-resolver-evaluator pipeline; this
package only wires arguments, configuration and standard streams to it.
Exit codes follow the sysexits convention: 64 for usage errors, 65 for
static (scan/parse/resolve) errors, 70 for runtime errors, 74 for a
script file that cannot be read.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-lox/config"
	"github.com/akashmaji946/go-lox/repl"
	"github.com/akashmaji946/go-lox/script"
	"github.com/fatih/color"
	"github.com/mna/mainer"
)

// VERSION represents the current version of the Go-Lox interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license (MIT License)
var LICENSE = "MIT"

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
   ▄▄▄▄                     ▄▄▄▄
 ██▀▀▀▀█                    ▀▀██
██         ▄████▄             ██       ▄████▄   ▀██  ██▀
██  ▄▄▄▄  ██▀  ▀██            ██      ██▀  ▀██    ████
██  ▀▀██  ██    ██  █████     ██      ██    ██    ▄██▄
 ██▄▄▄██  ▀██▄▄██▀            ██▄▄▄   ▀██▄▄██▀   ▄█▀▀█▄
   ▀▀▀▀     ▀▀▀▀               ▀▀▀▀     ▀▀▀▀    ▀▀▀  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for driver output
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Cmd carries the parsed command line. Flags are bound by mainer's parser
// via struct tags; the remaining positional arguments land in args.
type Cmd struct {
	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

// SetArgs receives the positional arguments (without flags) from the
// mainer parser.
func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

// Main runs the interpreter against the given arguments and stdio and
// returns the process exit code. It is the testable core of the driver:
// main() only connects it to the real process environment.
//
// Modes:
//   - no argument: interactive REPL (exit 0 on quit)
//   - one argument: execute the script file (exit 0 / 65 / 70 / 74)
//   - more arguments: usage error (exit 64)
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n", err)
		showUsage(stdio)
		return script.ExitUsage
	}

	switch {
	case c.Help:
		showHelp(stdio)
		return mainer.Success
	case c.Version:
		showVersion(stdio)
		return mainer.Success
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid configuration: %s\n", err)
		return script.ExitUsage
	}
	color.NoColor = color.NoColor || cfg.NoColor

	switch len(c.args) {
	case 0:
		// REPL mode: interactive interpreter on the terminal
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, cfg.Prompt, cfg.HistoryFile)
		repler.Start(stdio.Stdin, stdio.Stdout)
		return mainer.Success
	case 1:
		// Script mode: run the file and map the outcome to an exit code
		return script.Run(c.args[0], stdio)
	default:
		redColor.Fprintf(stdio.Stderr, "[USAGE ERROR] Expected at most one script path\n")
		showUsage(stdio)
		return script.ExitUsage
	}
}

// showUsage prints the one-line usage summary to stderr.
func showUsage(stdio mainer.Stdio) {
	fmt.Fprintf(stdio.Stderr, "Usage: go-lox [script]\n")
}

// showHelp displays the help information for the Go-Lox interpreter
func showHelp(stdio mainer.Stdio) {
	cyanColor.Fprintln(stdio.Stdout, "Go-Lox - A Tree-Walking Interpreter for the Lox Language")
	cyanColor.Fprintln(stdio.Stdout, "")
	cyanColor.Fprintln(stdio.Stdout, "USAGE:")
	yellowColor.Fprintln(stdio.Stdout, "  go-lox                    Start interactive REPL mode")
	yellowColor.Fprintln(stdio.Stdout, "  go-lox <path-to-file>     Execute a Lox file (.lox)")
	yellowColor.Fprintln(stdio.Stdout, "  go-lox --help             Display this help message")
	yellowColor.Fprintln(stdio.Stdout, "  go-lox --version          Display version information")
	cyanColor.Fprintln(stdio.Stdout, "")
	cyanColor.Fprintln(stdio.Stdout, "ENVIRONMENT:")
	yellowColor.Fprintln(stdio.Stdout, "  GOLOX_PROMPT              REPL prompt string")
	yellowColor.Fprintln(stdio.Stdout, "  GOLOX_HISTORY             REPL history file path")
	yellowColor.Fprintln(stdio.Stdout, "  GOLOX_NO_COLOR            Disable colored output (true/false)")
	cyanColor.Fprintln(stdio.Stdout, "")
	cyanColor.Fprintln(stdio.Stdout, "EXIT CODES:")
	yellowColor.Fprintln(stdio.Stdout, "  0   success")
	yellowColor.Fprintln(stdio.Stdout, "  64  usage error")
	yellowColor.Fprintln(stdio.Stdout, "  65  scan, parse or resolve error")
	yellowColor.Fprintln(stdio.Stdout, "  70  runtime error")
	yellowColor.Fprintln(stdio.Stdout, "  74  script file cannot be read")
}

// showVersion displays the version information for the Go-Lox interpreter
func showVersion(stdio mainer.Stdio) {
	cyanColor.Fprintln(stdio.Stdout, "Go-Lox - A Tree-Walking Interpreter for the Lox Language")
	cyanColor.Fprintf(stdio.Stdout, "Version: %s\n", VERSION)
	cyanColor.Fprintf(stdio.Stdout, "License: %s\n", LICENSE)
	cyanColor.Fprintf(stdio.Stdout, "Author : %s\n", AUTHOR)
}

// main is the entry point of the Go-Lox interpreter.
func main() {
	c := &Cmd{}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
