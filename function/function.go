/*
File    : go-lox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines the callable runtime values of Lox: user-defined
// functions (closures), native built-ins, classes, and class instances.
// The evaluator dispatches calls over these types; this package only holds
// their state and binding logic.
package function

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// Function represents a user-defined function object in Lox.
// It captures the function's declaration and the scope in which it was
// defined (for closure support).
//
// Fields:
//   - Declaration: The function's AST node (name, parameters, body).
//   - Scp: A pointer to the scope in which the function was defined.
//     This enables closure behavior, allowing the function to access
//     variables from its enclosing scope even after that scope has
//     finished executing. Methods get this scope extended with a
//     'this' binding via Bind.
//   - IsInitializer: Whether this function is a class 'init' method.
//     Calls to initializers always produce the bound instance, even
//     when the body executes a bare 'return;'.
type Function struct {
	Declaration   *parser.FunctionStatementNode // Name, parameters and body
	Scp           *scope.Scope                  // Captured scope for closures
	IsInitializer bool                          // True for 'init' methods
}

// GetType returns the type identifier for this Function object.
// This implements the objects.LoxObject interface.
func (f *Function) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the printed representation of the function: "<fn name>".
func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name)
}

// ToObject returns a detailed string representation of the function,
// including its name and parameter names.
//
// Example:
//
//	For fun add(a, b) this returns: "<fn add(a, b)>"
func (f *Function) ToObject() string {
	args := ""
	for i, param := range f.Declaration.Params {
		if i > 0 {
			args += ", "
		}
		args += param.Name
	}
	return fmt.Sprintf("<fn %s(%s)>", f.Declaration.Name, args)
}

// Arity returns the number of parameters the function declares.
// Calls must supply exactly this many arguments.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Bind produces a bound method: a copy of this function whose closure is
// extended by one scope defining 'this' as the given instance. The resolver
// accounts for this extra scope when computing 'this' depths, so the body's
// 'this' references land exactly here.
func (f *Function) Bind(instance objects.LoxObject) *Function {
	bound := scope.NewScope(f.Scp)
	bound.Define("this", instance)
	return &Function{
		Declaration:   f.Declaration,
		Scp:           bound,
		IsInitializer: f.IsInitializer,
	}
}
