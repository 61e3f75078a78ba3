/*
File    : go-lox/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
)

// IsError checks if a LoxObject represents a runtime error.
//
// This helper is used throughout the evaluator to detect error objects and
// enable early termination: when an error is detected it is propagated up
// the call stack rather than continuing evaluation.
//
// Parameters:
//   - obj: The LoxObject to check (can be nil)
//
// Returns:
//   - bool: true if the object is non-nil and has type ErrorType
func IsError(obj objects.LoxObject) bool {
	if obj != nil {
		return obj.GetType() == objects.ErrorType
	}
	return false
}

// UnwrapReturnValue extracts the actual value from a ReturnValue wrapper;
// any other object is returned as it is.
func UnwrapReturnValue(obj objects.LoxObject) objects.LoxObject {
	if ret, ok := obj.(*objects.ReturnValue); ok {
		return ret.Value
	}
	return obj
}

// Truthy implements Lox truthiness: nil and false are falsey, every other
// value (including 0 and "") is truthy.
func Truthy(obj objects.LoxObject) bool {
	switch v := obj.(type) {
	case *objects.Nil:
		return false
	case *objects.Boolean:
		return v.Value
	default:
		return true
	}
}

// IsEqual implements Lox equality:
// - nil equals only nil
// - values of different variants are never equal
// - numbers compare by IEEE equality (NaN != NaN)
// - strings compare by content, booleans by value
// - functions, classes and instances compare by reference identity
func IsEqual(a, b objects.LoxObject) bool {
	switch left := a.(type) {
	case *objects.Nil:
		_, ok := b.(*objects.Nil)
		return ok
	case *objects.Boolean:
		right, ok := b.(*objects.Boolean)
		return ok && left.Value == right.Value
	case *objects.Number:
		right, ok := b.(*objects.Number)
		return ok && left.Value == right.Value
	case *objects.String:
		right, ok := b.(*objects.String)
		return ok && left.Value == right.Value
	default:
		// callables and instances: reference identity
		return a == b
	}
}

// CreateError builds a runtime error object carrying the source line of
// the failing operation.
//
// Parameters:
//   - line: Source line for the "[line N]" part of the report
//   - format, a: The error message (fmt.Sprintf style)
func (e *Evaluator) CreateError(line int, format string, a ...interface{}) *objects.Error {
	return &objects.Error{
		Message: fmt.Sprintf(format, a...),
		Line:    line,
	}
}
