/*
File    : go-lox/function/instance.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"github.com/akashmaji946/go-lox/objects"
	"github.com/dolthub/swiss"
)

// Instance represents an instance of a Lox class.
//
// Instances are shared by reference: every holder sees field mutations
// immediately, and fields may freely reference other instances (including
// cycles, which are never collected before process exit).
//
// Field storage is a swiss-table map rather than a built-in Go map: field
// sets are tiny but read-heavy, and property access sits on the hottest
// path of the evaluator.
//
// Property lookup order is fields first, then methods up the class chain;
// that logic lives in the evaluator, this type only stores state.
type Instance struct {
	Class  *Class                                  // The instantiating class
	Fields *swiss.Map[string, objects.LoxObject] // Mutable field storage
}

// NewInstance allocates a fresh instance of the given class with an empty
// field map.
func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		Fields: swiss.NewMap[string, objects.LoxObject](8),
	}
}

// GetType returns the type identifier for instances.
func (i *Instance) GetType() objects.LoxType { return objects.InstanceType }

// ToString returns the printed representation: "<class-name> instance".
func (i *Instance) ToString() string { return i.Class.Name + " instance" }

// ToObject returns a detailed representation of the instance.
func (i *Instance) ToObject() string { return "<instance of " + i.Class.Name + ">" }

// GetField reads a field by name.
//
// Returns:
//   - objects.LoxObject: The field value (if present)
//   - bool: true when the field exists on this instance
func (i *Instance) GetField(name string) (objects.LoxObject, bool) {
	return i.Fields.Get(name)
}

// SetField writes a field by name, creating it when absent. Property
// writes never touch the class or its methods.
func (i *Instance) SetField(name string, value objects.LoxObject) {
	i.Fields.Put(name, value)
}
