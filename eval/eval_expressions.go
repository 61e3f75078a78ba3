/*
File    : go-lox/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// evalUnaryExpression evaluates -x and !x.
// Negation requires a number operand; logical not applies truthiness and
// so accepts any operand.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.LoxObject {
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operator {
	case lexer.MINUS_OP:
		number, ok := right.(*objects.Number)
		if !ok {
			return e.CreateError(n.Token.Line, "Operand must be a number.")
		}
		return &objects.Number{Value: -number.Value}
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !Truthy(right)}
	default:
		return e.CreateError(n.Token.Line, "Unknown unary operator '%s'.", n.Operator)
	}
}

// evalBinaryExpression evaluates the arithmetic, comparison and equality
// operators. Both operands are evaluated (left first) before any type
// checking happens.
//
// '+' is overloaded: number addition or string concatenation, never a mix.
// The ordering operators and '-', '*', '/' require two numbers. Division
// by zero is not an error: it yields IEEE infinity or NaN.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.LoxObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operator {
	case lexer.EQ_OP:
		return &objects.Boolean{Value: IsEqual(left, right)}
	case lexer.NE_OP:
		return &objects.Boolean{Value: !IsEqual(left, right)}
	case lexer.PLUS_OP:
		if leftNum, ok := left.(*objects.Number); ok {
			if rightNum, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: leftNum.Value + rightNum.Value}
			}
		}
		if leftStr, ok := left.(*objects.String); ok {
			if rightStr, ok := right.(*objects.String); ok {
				return &objects.String{Value: leftStr.Value + rightStr.Value}
			}
		}
		return e.CreateError(n.Token.Line, "Operands must be two numbers or two strings.")
	}

	// The remaining operators all require two numbers
	leftNum, ok := left.(*objects.Number)
	if !ok {
		return e.CreateError(n.Token.Line, "Operands must be numbers.")
	}
	rightNum, ok := right.(*objects.Number)
	if !ok {
		return e.CreateError(n.Token.Line, "Operands must be numbers.")
	}

	switch n.Operator {
	case lexer.MINUS_OP:
		return &objects.Number{Value: leftNum.Value - rightNum.Value}
	case lexer.MUL_OP:
		return &objects.Number{Value: leftNum.Value * rightNum.Value}
	case lexer.DIV_OP:
		return &objects.Number{Value: leftNum.Value / rightNum.Value}
	case lexer.LT_OP:
		return &objects.Boolean{Value: leftNum.Value < rightNum.Value}
	case lexer.LE_OP:
		return &objects.Boolean{Value: leftNum.Value <= rightNum.Value}
	case lexer.GT_OP:
		return &objects.Boolean{Value: leftNum.Value > rightNum.Value}
	case lexer.GE_OP:
		return &objects.Boolean{Value: leftNum.Value >= rightNum.Value}
	default:
		return e.CreateError(n.Token.Line, "Unknown binary operator '%s'.", n.Operator)
	}
}

// evalLogicalExpression evaluates 'and'/'or' with short-circuiting.
// The result is the actual value of the last operand evaluated, not a
// coerced boolean: "nil or 2" is 2, "0 and x" is x.
func (e *Evaluator) evalLogicalExpression(n *parser.LogicalExpressionNode) objects.LoxObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}

	if n.Operator == lexer.OR_KEY {
		if Truthy(left) {
			return left
		}
	} else {
		if !Truthy(left) {
			return left
		}
	}

	return e.Eval(n.Right)
}

// evalIdentifierExpression reads a variable. A resolved reference hops the
// scope chain by the precomputed depth; an unresolved one is a global and
// goes straight to the globals table, where a missing name is the
// undefined-variable runtime error.
func (e *Evaluator) evalIdentifierExpression(n *parser.IdentifierExpressionNode) objects.LoxObject {
	if depth, ok := e.Locals[n.ID]; ok {
		return e.Scp.GetAt(depth, n.Name)
	}
	if value, ok := e.Globals.Get(n.Name); ok {
		return value
	}
	return e.CreateError(n.Token.Line, "Undefined variable '%s'.", n.Name)
}

// evalAssignmentExpression evaluates the right-hand side and overwrites the
// target binding, using the same resolved/global split as variable reads.
// The assigned value is also the expression's value, so assignments chain.
func (e *Evaluator) evalAssignmentExpression(n *parser.AssignmentExpressionNode) objects.LoxObject {
	value := e.Eval(n.Value)
	if IsError(value) {
		return value
	}

	if depth, ok := e.Locals[n.ID]; ok {
		e.Scp.AssignAt(depth, n.Name, value)
		return value
	}
	if e.Globals.Assign(n.Name, value) {
		return value
	}
	return e.CreateError(n.Token.Line, "Undefined variable '%s'.", n.Name)
}

// evalCallExpression evaluates the callee, then the arguments strictly
// left-to-right, and dispatches on the callable kind. Calling anything
// that is not a function, native or class is a runtime error, as is an
// argument count differing from the callee's arity.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.LoxObject {
	callee := e.Eval(n.Callee)
	if IsError(callee) {
		return callee
	}

	args := make([]objects.LoxObject, 0, len(n.Args))
	for _, arg := range n.Args {
		value := e.Eval(arg)
		if IsError(value) {
			return value
		}
		args = append(args, value)
	}

	line := n.Token.Line
	switch fn := callee.(type) {
	case *function.Native:
		if len(args) != fn.Arity() {
			return e.CreateError(line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return fn.Callback(args)
	case *function.Function:
		if len(args) != fn.Arity() {
			return e.CreateError(line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return e.callFunction(fn, args)
	case *function.Class:
		return e.constructInstance(fn, args, line)
	default:
		return e.CreateError(line, "Can only call functions and classes.")
	}
}

// callFunction executes a user function: a fresh scope is chained onto the
// function's closure, parameters are bound to the (already evaluated)
// arguments, and the body runs with that scope current. The previous scope
// is restored no matter how the body exits.
//
// A return signal is caught here (this is the call boundary) and unwrapped;
// a body that falls off the end yields nil. Initializers are special: the
// call always yields the bound 'this', even after a bare 'return;'.
func (e *Evaluator) callFunction(fn *function.Function, args []objects.LoxObject) objects.LoxObject {
	callScope := scope.NewScope(fn.Scp)
	for i, param := range fn.Declaration.Params {
		callScope.Define(param.Name, args[i])
	}

	previous := e.Scp
	e.Scp = callScope
	result := e.evalStatements(fn.Declaration.Body)
	e.Scp = previous

	if IsError(result) {
		return result
	}
	if fn.IsInitializer {
		return fn.Scp.GetAt(0, "this")
	}
	if ret, ok := result.(*objects.ReturnValue); ok {
		return ret.Value
	}
	return &objects.Nil{}
}
