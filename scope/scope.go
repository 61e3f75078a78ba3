/*
File    : go-lox/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-lox/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and closures.
// Each scope maintains its own variable bindings and can access variables from parent scopes.
// This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
// - Block scoping: each block (function body, method body, etc.) has its own scope
//
// Scopes are shared by every closure that captures them: a closure holds a
// reference to its declaration-time scope, so an assignment made through one
// closure is observable by every other closure sharing that capture. The
// chain forms a DAG rooted in the global scope; a scope lives for as long as
// any closure still references it.
//
// Two lookup paths exist:
//   - Get/Assign walk the chain name-by-name. They are used for global
//     references only (names the resolver produced no depth entry for).
//   - GetAt/AssignAt hop a precomputed number of parent links and then access
//     the scope directly. The resolver guarantees the name is present at that
//     depth, so these never fail on resolved programs.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.LoxObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: Creates a global (root) scope with no parent
// - parent != nil: Creates a nested scope that can access parent variables
//
// Each new scope starts with empty variable bindings but inherits access to
// all variables in parent scopes through the lookup chain.
//
// Parameters:
//   - parent: The enclosing scope, or nil for a global scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globalScope := NewScope(nil)              // Create global scope
//	functionScope := NewScope(globalScope)    // Create function scope
//	blockScope := NewScope(functionScope)     // Create nested block scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.LoxObject),
		Parent:    parent,
	}
}

// Define creates a new variable binding in the current scope.
//
// The insert is unconditional: defining a name that already exists in this
// scope overwrites the previous binding (this is how the global scope allows
// redeclaration, and how parameters and 'this'/'super' scopes are seeded).
// Parent scopes are never affected, so an inner Define shadows any outer
// binding of the same name.
//
// Parameters:
//   - name: The variable name to bind
//   - value: The value to bind it to
func (s *Scope) Define(name string, value objects.LoxObject) {
	s.Variables[name] = value
}

// Get searches for a variable by name in this scope and all parent scopes.
//
// This method implements the classic variable resolution algorithm for
// lexical scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// It is used for the globals path only: references the resolver left without
// a depth entry. Resolved locals go through GetAt instead.
//
// Parameters:
//   - name: The name of the variable to look up
//
// Returns:
//   - objects.LoxObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
func (s *Scope) Get(name string) (objects.LoxObject, bool) {
	obj, ok := s.Variables[name]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.Get(name)
	}
	return obj, ok
}

// Assign overwrites an existing variable binding, searching the scope chain.
//
// Unlike Define, Assign never creates a binding: it walks outward until it
// finds the scope holding the name and overwrites the value there. Assigning
// to a name that exists nowhere in the chain is the caller's error to report
// (an undefined-variable runtime error).
//
// Parameters:
//   - name: The name of the variable to assign
//   - value: The new value
//
// Returns:
//   - bool: true if a binding was found and overwritten, false otherwise
func (s *Scope) Assign(name string, value objects.LoxObject) bool {
	if _, ok := s.Variables[name]; ok {
		s.Variables[name] = value
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, value)
	}
	return false
}

// Ancestor returns the scope reached by hopping the given number of parent
// links from this scope. Depth 0 is the scope itself.
//
// The resolver computes these depths statically, so on resolved programs the
// requested ancestor always exists; a nil return indicates a resolver bug.
func (s *Scope) Ancestor(depth int) *Scope {
	scp := s
	for i := 0; i < depth; i++ {
		if scp == nil {
			return nil
		}
		scp = scp.Parent
	}
	return scp
}

// GetAt reads a variable from the scope exactly depth hops up the chain.
//
// This is the fast path for resolved local variables: no name search is
// needed because the resolver already determined which scope holds the
// binding. The resolver guarantees the name is defined there.
//
// Parameters:
//   - depth: Number of parent links to traverse
//   - name: The variable name
//
// Returns:
//   - objects.LoxObject: The bound value, or nil if the resolver lied
func (s *Scope) GetAt(depth int, name string) objects.LoxObject {
	scp := s.Ancestor(depth)
	if scp == nil {
		return nil
	}
	return scp.Variables[name]
}

// AssignAt overwrites a variable in the scope exactly depth hops up the
// chain. Like GetAt, this trusts the resolver's depth computation.
//
// Parameters:
//   - depth: Number of parent links to traverse
//   - name: The variable name
//   - value: The new value
func (s *Scope) AssignAt(depth int, name string, value objects.LoxObject) {
	scp := s.Ancestor(depth)
	if scp == nil {
		return
	}
	scp.Variables[name] = value
}
