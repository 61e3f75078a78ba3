/*
File    : go-lox/function/native.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"time"

	"github.com/akashmaji946/go-lox/objects"
)

// Native represents a built-in function implemented in Go.
// Natives live in the global scope and are called with already-evaluated
// arguments; they cannot fail at arity time because the evaluator checks
// the declared arity before invoking the callback.
type Native struct {
	Name     string                                         // Name bound in the global scope
	ArityN   int                                            // Number of arguments required
	Callback func(args []objects.LoxObject) objects.LoxObject // Implementation
}

// GetType returns the type identifier for native functions.
func (n *Native) GetType() objects.LoxType { return objects.NativeType }

// ToString returns the printed representation of a native function.
func (n *Native) ToString() string { return "<native fn>" }

// ToObject returns a detailed representation of the native function.
func (n *Native) ToObject() string { return "<native fn " + n.Name + ">" }

// Arity returns the number of arguments the native requires.
func (n *Native) Arity() int { return n.ArityN }

// Natives lists every built-in function the interpreter installs into the
// global scope at startup. Lox ships exactly one: clock().
var Natives = []*Native{
	{
		// clock() returns the current wall-clock time in (fractional)
		// seconds since the Unix epoch
		Name:   "clock",
		ArityN: 0,
		Callback: func(args []objects.LoxObject) objects.LoxObject {
			return &objects.Number{Value: float64(time.Now().UnixNano()) / 1e9}
		},
	},
}
