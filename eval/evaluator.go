/*
File    : go-lox/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator for Lox.
// It walks the parsed AST against a chain of scopes, consulting the
// resolver's depth map for every variable access, and produces runtime
// values (or error objects) for expressions and side effects for
// statements.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// Evaluator holds the state for evaluating Lox AST nodes: the scope chain,
// the resolution map, and the output writer. It serves as the main
// execution engine for the interpreter.
//
// Fields:
//   - Globals: The root scope holding globals and the native functions.
//     Unresolved (depth-less) references go straight here.
//   - Scp: The current scope; changes as blocks and calls are entered
//     and restored on exit.
//   - Locals: The resolver's map from expression node id to lexical depth.
//     Drivers merge new entries in before each evaluation (the REPL keeps
//     one evaluator alive across lines).
//   - Writer: Output sink for the 'print' statement (default: os.Stdout).
type Evaluator struct {
	Globals *scope.Scope
	Scp     *scope.Scope
	Locals  map[int]int
	Writer  io.Writer
}

// NewEvaluator creates and initializes a new Evaluator instance:
// - Creates the global scope and makes it current
// - Installs the native functions (clock) into the globals
// - Sets the output writer to os.Stdout
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute Lox code
//
// Example usage:
//
//	ev := NewEvaluator()
//	ev.AddLocals(locals)
//	result := ev.Eval(root)
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	for _, native := range function.Natives {
		globals.Define(native.Name, native)
	}
	return &Evaluator{
		Globals: globals,
		Scp:     globals,
		Locals:  make(map[int]int),
		Writer:  os.Stdout,
	}
}

// SetWriter configures the output destination for the 'print' statement.
//
// This is particularly useful for:
// - Testing: capturing output to verify program behavior
// - Embedding: sending program output to buffers or network streams
//
// Parameters:
//   - w: An io.Writer implementation that will receive print output
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// AddLocals merges resolution entries into the evaluator's map. Node ids
// are globally unique, so merging never collides; the REPL relies on this
// to accumulate resolutions line by line while closures from earlier lines
// stay valid.
func (e *Evaluator) AddLocals(locals map[int]int) {
	for id, depth := range locals {
		e.Locals[id] = depth
	}
}

// Eval is the main dispatch of the evaluator. It walks the given node and
// returns its runtime value: expressions and expression statements produce
// the expression's value, other statements produce Nil (or the pending
// error / return signal that is unwinding).
//
// Error objects short-circuit everything: each case checks sub-results and
// propagates errors immediately, so a runtime error unwinds to the
// top-level statement boundary untouched.
func (e *Evaluator) Eval(n parser.Node) objects.LoxObject {
	switch n := n.(type) {
	case *parser.RootNode:
		return e.evalStatements(n.Statements)
	case *parser.NumberLiteralExpressionNode:
		return n.Value
	case *parser.StringLiteralExpressionNode:
		return n.Value
	case *parser.BooleanLiteralExpressionNode:
		return n.Value
	case *parser.NilLiteralExpressionNode:
		return &objects.Nil{}
	case *parser.ParenthesizedExpressionNode:
		return e.Eval(n.Expr)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(n)
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(n)
	case *parser.AssignmentExpressionNode:
		return e.evalAssignmentExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	case *parser.GetExpressionNode:
		return e.evalGetExpression(n)
	case *parser.SetExpressionNode:
		return e.evalSetExpression(n)
	case *parser.ThisExpressionNode:
		return e.evalThisExpression(n)
	case *parser.SuperExpressionNode:
		return e.evalSuperExpression(n)
	case *parser.ExpressionStatementNode:
		return e.Eval(n.Expr)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(n)
	case *parser.DeclarativeStatementNode:
		return e.evalDeclarativeStatement(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.WhileLoopStatementNode:
		return e.evalWhileLoop(n)
	case *parser.FunctionStatementNode:
		return e.evalFunctionStatement(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)
	case *parser.ClassStatementNode:
		return e.evalClassStatement(n)
	default:
		return &objects.Nil{}
	}
}

// evalStatements executes a statement list in order. An error or a return
// signal stops execution immediately and propagates to the caller; the
// value of the last executed statement is returned otherwise (the REPL uses
// it to echo expression results).
func (e *Evaluator) evalStatements(statements []parser.StatementNode) objects.LoxObject {
	var result objects.LoxObject = &objects.Nil{}
	for _, stmt := range statements {
		result = e.Eval(stmt)
		if IsError(result) || result.GetType() == objects.ReturnType {
			return result
		}
	}
	return result
}
