/*
File    : go-lox/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// evalPrintStatement evaluates the expression and writes its stringified
// value plus a newline to the output sink. This is the interpreter's only
// implicit output.
func (e *Evaluator) evalPrintStatement(n *parser.PrintStatementNode) objects.LoxObject {
	value := e.Eval(n.Expr)
	if IsError(value) {
		return value
	}
	fmt.Fprintf(e.Writer, "%s\n", value.ToString())
	return &objects.Nil{}
}

// evalDeclarativeStatement evaluates 'var name = init;'. A declaration
// without initializer binds nil. Define always inserts into the current
// scope, which is what makes an inner declaration shadow an outer one.
func (e *Evaluator) evalDeclarativeStatement(n *parser.DeclarativeStatementNode) objects.LoxObject {
	var value objects.LoxObject = &objects.Nil{}
	if n.Initializer != nil {
		value = e.Eval(n.Initializer)
		if IsError(value) {
			return value
		}
	}
	e.Scp.Define(n.Name, value)
	return &objects.Nil{}
}

// evalBlockStatement executes the block's statements in a fresh child
// scope. The previous scope is restored afterwards whether the block ran
// to completion or an error / return signal cut it short.
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) objects.LoxObject {
	previous := e.Scp
	e.Scp = scope.NewScope(previous)
	result := e.evalStatements(n.Statements)
	e.Scp = previous
	return result
}

// evalIfStatement evaluates the condition with truthiness and executes the
// matching branch. The branch result passes through untouched so pending
// errors and return signals keep unwinding.
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) objects.LoxObject {
	condition := e.Eval(n.Condition)
	if IsError(condition) {
		return condition
	}
	if Truthy(condition) {
		return e.Eval(n.Then)
	}
	if n.Else != nil {
		return e.Eval(n.Else)
	}
	return &objects.Nil{}
}

// evalWhileLoop re-evaluates the condition before every iteration and runs
// the body while it stays truthy. Errors and return signals from either
// the condition or the body stop the loop and propagate.
func (e *Evaluator) evalWhileLoop(n *parser.WhileLoopStatementNode) objects.LoxObject {
	for {
		condition := e.Eval(n.Condition)
		if IsError(condition) {
			return condition
		}
		if !Truthy(condition) {
			return &objects.Nil{}
		}
		result := e.Eval(n.Body)
		if IsError(result) || result.GetType() == objects.ReturnType {
			return result
		}
	}
}

// evalFunctionStatement creates a Function value capturing the current
// scope as its closure and binds it under the declared name. Capturing
// happens at declaration time, which is what gives Lox lexical rather than
// dynamic scoping.
func (e *Evaluator) evalFunctionStatement(n *parser.FunctionStatementNode) objects.LoxObject {
	fn := &function.Function{
		Declaration: n,
		Scp:         e.Scp, // reference the current scope directly, not a copy
	}
	e.Scp.Define(n.Name, fn)
	return &objects.Nil{}
}

// evalReturnStatement evaluates the optional value (nil when absent) and
// wraps it in the return signal that unwinds to the nearest call boundary.
// The resolver already rejected returns outside any function.
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.LoxObject {
	var value objects.LoxObject = &objects.Nil{}
	if n.Value != nil {
		value = e.Eval(n.Value)
		if IsError(value) {
			return value
		}
	}
	return &objects.ReturnValue{Value: value}
}
