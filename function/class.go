/*
File    : go-lox/function/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"github.com/akashmaji946/go-lox/objects"
)

// Class represents a class object in Lox. A class is itself a callable:
// calling it allocates a new instance and runs the 'init' initializer when
// one exists anywhere on the superclass chain.
//
// Class values are shared: every instance holds a reference to its class,
// and methods hold a reference to the scope current at class definition
// (including the synthetic 'super' scope for subclasses).
//
// Fields:
//   - Name: The class name as declared
//   - Superclass: The inherited class, nil for base classes
//   - Methods: Method name to function, this-unbound until lookup
type Class struct {
	Name       string               // Declared class name
	Superclass *Class               // Single inheritance chain, nil at the root
	Methods    map[string]*Function // Methods declared directly on this class
}

// GetType returns the type identifier for class objects.
func (c *Class) GetType() objects.LoxType { return objects.ClassType }

// ToString returns the printed representation of a class: its bare name.
func (c *Class) ToString() string { return c.Name }

// ToObject returns a detailed representation of the class.
func (c *Class) ToObject() string {
	if c.Superclass != nil {
		return "<class " + c.Name + " < " + c.Superclass.Name + ">"
	}
	return "<class " + c.Name + ">"
}

// FindMethod looks up a method by name, walking up the superclass chain.
// Methods declared on a subclass shadow superclass methods of the same
// name. Returns nil when no class on the chain declares the method.
func (c *Class) FindMethod(name string) *Function {
	if method, ok := c.Methods[name]; ok {
		return method
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity returns the number of arguments a construction call requires:
// the initializer's arity, or zero when no 'init' exists on the chain.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}
