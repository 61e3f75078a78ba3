/*
File    : go-lox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static resolution pass that runs between
// parsing and evaluation.
//
// In order for variables to always evaluate to the same binding (closures
// included), variable references cannot be looked up by walking the runtime
// scope chain name-by-name: a later declaration could change what a name
// means. Instead, this pass walks the AST once, carrying a stack of
// compile-time scopes, and records for every local variable reference how
// many scopes separate the use from the declaration. At runtime the
// evaluator hops exactly that many parent links, so every reference is
// bound at its declaration site forever.
//
// References that resolve to no local scope are globals: they get no map
// entry and the evaluator falls back to the (late-bound) globals table.
//
// The same walk enforces the static rules that need scope context:
// reading a variable in its own initializer, redeclaring a local,
// 'return' outside a function, returning a value from 'init',
// 'this'/'super' outside their permitted contexts, and self-inheritance.
package resolver

import (
	"fmt"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/parser"
)

// FunctionType tracks what kind of function body (if any) the walk is
// currently inside. It drives the 'return' placement rules.
type FunctionType int

const (
	FunctionTypeNone        FunctionType = iota // not inside any function
	FunctionTypeFunction                        // inside a plain function
	FunctionTypeMethod                          // inside a class method
	FunctionTypeInitializer                     // inside an 'init' method
)

// ClassType tracks what kind of class body (if any) the walk is currently
// inside. It drives the 'this'/'super' placement rules.
type ClassType int

const (
	ClassTypeNone     ClassType = iota // not inside any class
	ClassTypeClass                     // inside a class without superclass
	ClassTypeSubclass                  // inside a class with a superclass
)

// Resolver walks the AST and produces the resolution map consumed by the
// evaluator. Static errors are collected in Errors; a non-empty slice means
// the program must not be executed.
//
// Fields:
//   - scopes: Stack of compile-time scopes. Each scope maps a name to
//     whether its initializer has finished (declared=false, defined=true).
//     The global scope is deliberately NOT on the stack.
//   - locals: The resolution map from expression node id to lexical depth.
//   - funcType / classType: Context state for placement rules.
//   - Errors: Static resolution errors in report order.
type Resolver struct {
	scopes    []map[string]bool
	locals    map[int]int
	funcType  FunctionType
	classType ClassType
	Errors    []string
}

// NewResolver creates a resolver with an empty scope stack, positioned at
// the global (top-level) context.
func NewResolver() *Resolver {
	return &Resolver{
		scopes: make([]map[string]bool, 0),
		locals: make(map[int]int),
		Errors: make([]string, 0),
	}
}

// Resolve walks a parsed program and returns the resolution map. The map
// is only meaningful when Errors stayed empty.
func (r *Resolver) Resolve(root *parser.RootNode) map[int]int {
	r.resolveStatements(root.Statements)
	return r.locals
}

// addErrorAt records a static error located at the given token, using the
// same report format as the parser.
func (r *Resolver) addErrorAt(token lexer.Token, message string) {
	r.Errors = append(r.Errors, fmt.Sprintf("[line %d] Error at '%s': %s", token.Line, token.Literal, message))
}

// beginScope pushes a fresh compile-time scope.
func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

// endScope pops the innermost compile-time scope.
func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks a name as existing-but-not-ready in the innermost scope.
// Between declare and define, reading the name is the use-in-own-initializer
// error. Redeclaring a name already present in the same non-global scope is
// an error. At global scope (empty stack) this is a no-op: globals may be
// redeclared freely.
func (r *Resolver) declare(token lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[token.Literal]; exists {
		r.addErrorAt(token, "Already a variable with this name in this scope.")
	}
	scope[token.Literal] = false
}

// define marks a previously declared name as ready for use.
func (r *Resolver) define(token lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][token.Literal] = true
}

// defineName is define for synthesized names ('this', 'super', parameters
// already validated elsewhere) that need no redeclaration check.
func (r *Resolver) defineName(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal searches the scope stack innermost-first for the name and,
// when found, records the hop count for the node id. Not finding the name
// is not an error here: the reference is assumed global and left to the
// runtime undefined-variable check.
func (r *Resolver) resolveLocal(id int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

// resolveStatements resolves a statement list in order.
func (r *Resolver) resolveStatements(statements []parser.StatementNode) {
	for _, stmt := range statements {
		r.resolveStatement(stmt)
	}
}

// resolveStatement dispatches on the statement node type.
func (r *Resolver) resolveStatement(stmt parser.StatementNode) {
	switch n := stmt.(type) {
	case *parser.ExpressionStatementNode:
		r.resolveExpression(n.Expr)
	case *parser.PrintStatementNode:
		r.resolveExpression(n.Expr)
	case *parser.DeclarativeStatementNode:
		// Declare first, then resolve the initializer, then define:
		// this is what makes 'var a = a;' in a local scope an error
		r.declare(n.Token)
		if n.Initializer != nil {
			r.resolveExpression(n.Initializer)
		}
		r.define(n.Token)
	case *parser.BlockStatementNode:
		r.beginScope()
		r.resolveStatements(n.Statements)
		r.endScope()
	case *parser.IfStatementNode:
		r.resolveExpression(n.Condition)
		r.resolveStatement(n.Then)
		if n.Else != nil {
			r.resolveStatement(n.Else)
		}
	case *parser.WhileLoopStatementNode:
		r.resolveExpression(n.Condition)
		r.resolveStatement(n.Body)
	case *parser.FunctionStatementNode:
		// A function may refer to itself recursively, so its name is
		// defined before its body is resolved
		r.declare(n.Token)
		r.define(n.Token)
		r.resolveFunction(n, FunctionTypeFunction)
	case *parser.ReturnStatementNode:
		r.resolveReturn(n)
	case *parser.ClassStatementNode:
		r.resolveClass(n)
	}
}

// resolveExpression dispatches on the expression node type.
func (r *Resolver) resolveExpression(expr parser.ExpressionNode) {
	switch n := expr.(type) {
	case *parser.NumberLiteralExpressionNode, *parser.StringLiteralExpressionNode,
		*parser.BooleanLiteralExpressionNode, *parser.NilLiteralExpressionNode:
		// literals bind nothing
	case *parser.ParenthesizedExpressionNode:
		r.resolveExpression(n.Expr)
	case *parser.UnaryExpressionNode:
		r.resolveExpression(n.Right)
	case *parser.BinaryExpressionNode:
		r.resolveExpression(n.Left)
		r.resolveExpression(n.Right)
	case *parser.LogicalExpressionNode:
		r.resolveExpression(n.Left)
		r.resolveExpression(n.Right)
	case *parser.IdentifierExpressionNode:
		// Reading a local between its declare and define is the
		// use-in-own-initializer error
		if len(r.scopes) > 0 {
			if defined, exists := r.scopes[len(r.scopes)-1][n.Name]; exists && !defined {
				r.addErrorAt(n.Token, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n.ID, n.Name)
	case *parser.AssignmentExpressionNode:
		r.resolveExpression(n.Value)
		r.resolveLocal(n.ID, n.Name)
	case *parser.CallExpressionNode:
		r.resolveExpression(n.Callee)
		for _, arg := range n.Args {
			r.resolveExpression(arg)
		}
	case *parser.GetExpressionNode:
		// The property name is looked up dynamically at runtime;
		// only the object expression resolves statically
		r.resolveExpression(n.Object)
	case *parser.SetExpressionNode:
		r.resolveExpression(n.Value)
		r.resolveExpression(n.Object)
	case *parser.ThisExpressionNode:
		if r.classType == ClassTypeNone {
			r.addErrorAt(n.Token, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(n.ID, "this")
	case *parser.SuperExpressionNode:
		if r.classType == ClassTypeNone {
			r.addErrorAt(n.Token, "Can't use 'super' outside of a class.")
			return
		}
		if r.classType != ClassTypeSubclass {
			r.addErrorAt(n.Token, "Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(n.ID, "super")
	}
}

// resolveReturn enforces 'return' placement: not at top level, and no
// value-carrying return inside an initializer (a bare 'return;' there is
// allowed and yields the instance).
func (r *Resolver) resolveReturn(n *parser.ReturnStatementNode) {
	if r.funcType == FunctionTypeNone {
		r.addErrorAt(n.Token, "Can't return from top-level code.")
		return
	}
	if n.Value != nil {
		if r.funcType == FunctionTypeInitializer {
			r.addErrorAt(n.Token, "Can't return a value from an initializer.")
			return
		}
		r.resolveExpression(n.Value)
	}
}

// resolveFunction resolves a function or method body in a fresh parameter
// scope, with the function-kind state swapped in for the duration.
func (r *Resolver) resolveFunction(n *parser.FunctionStatementNode, funcType FunctionType) {
	enclosing := r.funcType
	r.funcType = funcType

	r.beginScope()
	for _, param := range n.Params {
		r.declare(param.Token)
		r.define(param.Token)
	}
	r.resolveStatements(n.Body)
	r.endScope()

	r.funcType = enclosing
}

// resolveClass resolves a class declaration.
//
// The scope layout mirrors what the evaluator builds at runtime: when a
// superclass is present an extra scope defines 'super', and every method
// body sits under a scope defining 'this'. Because the resolver pushes the
// same scopes in the same order, the depths it records index correctly into
// the runtime chain no matter how deeply a method body nests.
func (r *Resolver) resolveClass(n *parser.ClassStatementNode) {
	enclosing := r.classType
	r.classType = ClassTypeClass

	r.declare(n.Token)
	r.define(n.Token)

	if n.Superclass != nil {
		if n.Superclass.Name == n.Name {
			r.addErrorAt(n.Superclass.Token, "A class can't inherit from itself.")
		}
		r.classType = ClassTypeSubclass
		r.resolveExpression(n.Superclass)

		r.beginScope()
		r.defineName("super")
	}

	r.beginScope()
	r.defineName("this")

	for _, method := range n.Methods {
		funcType := FunctionTypeMethod
		if method.Name == "init" {
			funcType = FunctionTypeInitializer
		}
		r.resolveFunction(method, funcType)
	}

	r.endScope()

	if n.Superclass != nil {
		r.endScope()
	}

	r.classType = enclosing
}
