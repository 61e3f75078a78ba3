/*
File    : go-lox/eval/eval_classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// evalClassStatement evaluates a class declaration.
//
// When a superclass clause is present it must evaluate to a class value.
// Before the methods are turned into function values, a synthetic scope
// defining 'super' is pushed so every method closes over the superclass;
// the resolver mirrors this scope when computing 'super' depths. The class
// name is bound in the surrounding scope, first to nil so the methods'
// closure already contains the slot, then to the finished class.
func (e *Evaluator) evalClassStatement(n *parser.ClassStatementNode) objects.LoxObject {
	var superclass *function.Class
	if n.Superclass != nil {
		value := e.evalIdentifierExpression(n.Superclass)
		if IsError(value) {
			return value
		}
		sc, ok := value.(*function.Class)
		if !ok {
			return e.CreateError(n.Superclass.Token.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	e.Scp.Define(n.Name, &objects.Nil{})

	enclosing := e.Scp
	if superclass != nil {
		e.Scp = scope.NewScope(enclosing)
		e.Scp.Define("super", superclass)
	}

	methods := make(map[string]*function.Function, len(n.Methods))
	for _, method := range n.Methods {
		methods[method.Name] = &function.Function{
			Declaration:   method,
			Scp:           e.Scp,
			IsInitializer: method.Name == "init",
		}
	}

	class := &function.Class{
		Name:       n.Name,
		Superclass: superclass,
		Methods:    methods,
	}

	e.Scp = enclosing
	e.Scp.Define(n.Name, class)
	return &objects.Nil{}
}

// constructInstance handles calling a class: allocate a fresh instance,
// then run the 'init' initializer (own or inherited) bound to it with the
// call's arguments. Without an initializer the construction takes no
// arguments. The call always yields the instance.
func (e *Evaluator) constructInstance(class *function.Class, args []objects.LoxObject, line int) objects.LoxObject {
	instance := function.NewInstance(class)

	if init := class.FindMethod("init"); init != nil {
		bound := init.Bind(instance)
		if len(args) != bound.Arity() {
			return e.CreateError(line, "Expected %d arguments but got %d.", bound.Arity(), len(args))
		}
		result := e.callFunction(bound, args)
		if IsError(result) {
			return result
		}
	} else if len(args) != 0 {
		return e.CreateError(line, "Expected 0 arguments but got %d.", len(args))
	}

	return instance
}

// evalGetExpression evaluates a property read. Only instances have
// properties; lookup order is instance fields first, then methods up the
// class chain. A method found this way is returned bound to the instance,
// so it can be stored and called later with 'this' intact.
func (e *Evaluator) evalGetExpression(n *parser.GetExpressionNode) objects.LoxObject {
	object := e.Eval(n.Object)
	if IsError(object) {
		return object
	}

	instance, ok := object.(*function.Instance)
	if !ok {
		return e.CreateError(n.Token.Line, "Only instances have properties.")
	}

	if value, found := instance.GetField(n.Name); found {
		return value
	}
	if method := instance.Class.FindMethod(n.Name); method != nil {
		return method.Bind(instance)
	}

	return e.CreateError(n.Token.Line, "Undefined property '%s'.", n.Name)
}

// evalSetExpression evaluates a property write. Only instances have
// fields; the field is created when absent. Writes never reach methods: a
// field of the same name simply shadows the method from then on.
func (e *Evaluator) evalSetExpression(n *parser.SetExpressionNode) objects.LoxObject {
	object := e.Eval(n.Object)
	if IsError(object) {
		return object
	}

	instance, ok := object.(*function.Instance)
	if !ok {
		return e.CreateError(n.Token.Line, "Only instances have fields.")
	}

	value := e.Eval(n.Value)
	if IsError(value) {
		return value
	}

	instance.SetField(n.Name, value)
	return value
}

// evalThisExpression reads 'this' through the resolution map, landing in
// the scope Bind pushed when the enclosing method was looked up.
func (e *Evaluator) evalThisExpression(n *parser.ThisExpressionNode) objects.LoxObject {
	if depth, ok := e.Locals[n.ID]; ok {
		return e.Scp.GetAt(depth, "this")
	}
	// unreachable on resolved programs; the resolver rejects stray 'this'
	return e.CreateError(n.Token.Line, "Undefined variable 'this'.")
}

// evalSuperExpression evaluates 'super.method': the superclass is read at
// the resolved depth, the current instance sits one scope closer (the
// 'this' scope Bind pushed), and the method is looked up starting from the
// superclass so a subclass override is skipped. The result is the method
// bound to the current instance.
func (e *Evaluator) evalSuperExpression(n *parser.SuperExpressionNode) objects.LoxObject {
	depth, ok := e.Locals[n.ID]
	if !ok {
		// unreachable on resolved programs
		return e.CreateError(n.Token.Line, "Undefined variable 'super'.")
	}

	superclass, ok := e.Scp.GetAt(depth, "super").(*function.Class)
	if !ok {
		return e.CreateError(n.Token.Line, "Undefined variable 'super'.")
	}
	object := e.Scp.GetAt(depth-1, "this")

	method := superclass.FindMethod(n.Method)
	if method == nil {
		return e.CreateError(n.Token.Line, "Undefined property '%s'.", n.Method)
	}
	return method.Bind(object)
}
