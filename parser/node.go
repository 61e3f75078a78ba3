/*
File    : go-lox/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// NodeVisitor: implements the Visitor design pattern for traversing the Abstract Syntax Tree (AST)
// Each Visit method processes a specific node type, enabling operations like printing or inspection
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Literal value visitors - handle primitive data types
	VisitNumberLiteralExpressionNode(node NumberLiteralExpressionNode)   // Number literals: 42, 3.14
	VisitStringLiteralExpressionNode(node StringLiteralExpressionNode)   // String literals: "hello"
	VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) // Boolean literals: true, false
	VisitNilLiteralExpressionNode(node NilLiteralExpressionNode)         // Nil literal

	// Expression visitors - handle operations and computations
	VisitBinaryExpressionNode(node BinaryExpressionNode)               // Binary operations: + - * / == != < <= > >=
	VisitUnaryExpressionNode(node UnaryExpressionNode)                 // Unary operations: - !
	VisitLogicalExpressionNode(node LogicalExpressionNode)             // Short-circuit operations: and, or
	VisitParenthesizedExpressionNode(node ParenthesizedExpressionNode) // Parenthesized expressions: (expr)
	VisitIdentifierExpressionNode(node IdentifierExpressionNode)       // Variable references: x, myVar
	VisitAssignmentExpressionNode(node AssignmentExpressionNode)       // Assignments: x = 10
	VisitCallExpressionNode(node CallExpressionNode)                   // Calls: funcName(arg1, arg2)
	VisitGetExpressionNode(node GetExpressionNode)                     // Property reads: obj.field
	VisitSetExpressionNode(node SetExpressionNode)                     // Property writes: obj.field = v
	VisitThisExpressionNode(node ThisExpressionNode)                   // 'this' inside methods
	VisitSuperExpressionNode(node SuperExpressionNode)                 // 'super.method' inside subclass methods

	// Statement visitors
	VisitExpressionStatementNode(node ExpressionStatementNode) // Expression statements: expr;
	VisitPrintStatementNode(node PrintStatementNode)           // Print statements: print expr;
	VisitDeclarativeStatementNode(node DeclarativeStatementNode)
	VisitBlockStatementNode(node BlockStatementNode)       // Code blocks: { stmt1; stmt2; }
	VisitIfStatementNode(node IfStatementNode)             // Conditionals: if (cond) ... else ...
	VisitWhileLoopStatementNode(node WhileLoopStatementNode)
	VisitFunctionStatementNode(node FunctionStatementNode) // Function declarations: fun name(params) { body }
	VisitReturnStatementNode(node ReturnStatementNode)     // Return statements: return expr;
	VisitClassStatementNode(node ClassStatementNode)       // Class declarations: class Name < Super { methods }
}

// Node: base interface for all nodes of the AST
// Literal(): returns the string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
// Statement(): marker method distinguishing statements
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// Expression(): marker method distinguishing expressions
type ExpressionNode interface {
	Node
	Expression()
}

// nodeIDCounter hands out unique identifiers for resolvable expressions
// (identifiers, assignments, this, super). The resolver keys its depth map
// by these ids, so they must stay unique for the lifetime of the process:
// in REPL mode ASTs from earlier lines survive inside closures, and a reused
// id would let a later line clobber their resolution entries.
var nodeIDCounter int

// nextNodeID returns the next unique expression node id.
func nextNodeID() int {
	nodeIDCounter++
	return nodeIDCounter
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of statements in the program
type RootNode struct {
	Statements []StatementNode // every top-level declaration or statement
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	parts := make([]string, 0, len(root.Statements))
	for _, stmt := range root.Statements {
		parts = append(parts, stmt.Literal())
	}
	return strings.Join(parts, " ")
}

// RootNode.Accept(): accepts a visitor (eg the test traversal visitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// NumberLiteralExpressionNode: represents a number literal
// Example: 42, 3.14
type NumberLiteralExpressionNode struct {
	Token lexer.Token     // The number token with its source text
	Value *objects.Number // The number object value
}

func (n *NumberLiteralExpressionNode) Literal() string            { return n.Value.ToString() }
func (n *NumberLiteralExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitNumberLiteralExpressionNode(*n) }
func (n *NumberLiteralExpressionNode) Expression()                {}

// StringLiteralExpressionNode: represents a string literal
// Example: "hello"
type StringLiteralExpressionNode struct {
	Token lexer.Token     // The string token (Literal holds the content)
	Value *objects.String // The string object value
}

func (n *StringLiteralExpressionNode) Literal() string            { return "\"" + n.Value.Value + "\"" }
func (n *StringLiteralExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitStringLiteralExpressionNode(*n) }
func (n *StringLiteralExpressionNode) Expression()                {}

// BooleanLiteralExpressionNode: represents a boolean literal
// Example: true, false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token      // The true/false keyword token
	Value *objects.Boolean // The boolean object value
}

func (n *BooleanLiteralExpressionNode) Literal() string { return n.Value.ToString() }
func (n *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralExpressionNode(*n)
}
func (n *BooleanLiteralExpressionNode) Expression() {}

// NilLiteralExpressionNode: represents the nil literal
type NilLiteralExpressionNode struct {
	Token lexer.Token // The nil keyword token
}

func (n *NilLiteralExpressionNode) Literal() string            { return "nil" }
func (n *NilLiteralExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitNilLiteralExpressionNode(*n) }
func (n *NilLiteralExpressionNode) Expression()                {}

// ParenthesizedExpressionNode: represents a grouped expression
// Example: (1 + 2)
type ParenthesizedExpressionNode struct {
	Token lexer.Token    // The '(' token
	Expr  ExpressionNode // The inner expression
}

func (n *ParenthesizedExpressionNode) Literal() string { return "(" + n.Expr.Literal() + ")" }
func (n *ParenthesizedExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitParenthesizedExpressionNode(*n)
}
func (n *ParenthesizedExpressionNode) Expression() {}

// UnaryExpressionNode: represents a prefix operation
// Example: -x, !done
type UnaryExpressionNode struct {
	Token    lexer.Token     // The operator token ('-' or '!')
	Operator lexer.TokenType // Operator kind
	Right    ExpressionNode  // The operand
}

func (n *UnaryExpressionNode) Literal() string {
	return "(" + string(n.Operator) + n.Right.Literal() + ")"
}
func (n *UnaryExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitUnaryExpressionNode(*n) }
func (n *UnaryExpressionNode) Expression()                {}

// BinaryExpressionNode: represents an infix operation
// Example: a + b, x == y
type BinaryExpressionNode struct {
	Token    lexer.Token     // The operator token
	Operator lexer.TokenType // Operator kind
	Left     ExpressionNode  // Left operand
	Right    ExpressionNode  // Right operand
}

func (n *BinaryExpressionNode) Literal() string {
	return "(" + n.Left.Literal() + " " + string(n.Operator) + " " + n.Right.Literal() + ")"
}
func (n *BinaryExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitBinaryExpressionNode(*n) }
func (n *BinaryExpressionNode) Expression()                {}

// LogicalExpressionNode: represents a short-circuiting 'and'/'or' operation.
// The right operand is only evaluated when the left operand does not decide
// the result, and the produced value is the last operand evaluated.
type LogicalExpressionNode struct {
	Token    lexer.Token     // The 'and'/'or' keyword token
	Operator lexer.TokenType // AND_KEY or OR_KEY
	Left     ExpressionNode  // Left operand
	Right    ExpressionNode  // Right operand
}

func (n *LogicalExpressionNode) Literal() string {
	return "(" + n.Left.Literal() + " " + string(n.Operator) + " " + n.Right.Literal() + ")"
}
func (n *LogicalExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitLogicalExpressionNode(*n) }
func (n *LogicalExpressionNode) Expression()                {}

// IdentifierExpressionNode: represents a variable reference.
// ID is the unique node identifier the resolver keys its depth map by.
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The referenced name
	ID    int         // Unique id for resolution lookup
}

func (n *IdentifierExpressionNode) Literal() string            { return n.Name }
func (n *IdentifierExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitIdentifierExpressionNode(*n) }
func (n *IdentifierExpressionNode) Expression()                {}

// AssignmentExpressionNode: represents assignment to a variable.
// ID is the unique node identifier the resolver keys its depth map by.
// Example: x = 10
type AssignmentExpressionNode struct {
	Token lexer.Token    // The target identifier token
	Name  string         // The assigned variable name
	ID    int            // Unique id for resolution lookup
	Value ExpressionNode // Right-hand side expression
}

func (n *AssignmentExpressionNode) Literal() string {
	return "(" + n.Name + " = " + n.Value.Literal() + ")"
}
func (n *AssignmentExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentExpressionNode(*n)
}
func (n *AssignmentExpressionNode) Expression() {}

// CallExpressionNode: represents a call
// Example: square(3), Foo(1, 2), getCallback()()
type CallExpressionNode struct {
	Token  lexer.Token      // The '(' token (carries the call's source line)
	Callee ExpressionNode   // The expression being invoked
	Args   []ExpressionNode // Argument expressions, evaluated left-to-right
}

func (n *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(n.Args))
	for _, arg := range n.Args {
		args = append(args, arg.Literal())
	}
	return n.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}
func (n *CallExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitCallExpressionNode(*n) }
func (n *CallExpressionNode) Expression()                {}

// GetExpressionNode: represents a property read
// Example: point.x
type GetExpressionNode struct {
	Token  lexer.Token    // The property name token
	Object ExpressionNode // The expression producing the instance
	Name   string         // The property name
}

func (n *GetExpressionNode) Literal() string            { return n.Object.Literal() + "." + n.Name }
func (n *GetExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitGetExpressionNode(*n) }
func (n *GetExpressionNode) Expression()                {}

// SetExpressionNode: represents a property write
// Example: point.x = 3
type SetExpressionNode struct {
	Token  lexer.Token    // The property name token
	Object ExpressionNode // The expression producing the instance
	Name   string         // The property name
	Value  ExpressionNode // Right-hand side expression
}

func (n *SetExpressionNode) Literal() string {
	return "(" + n.Object.Literal() + "." + n.Name + " = " + n.Value.Literal() + ")"
}
func (n *SetExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitSetExpressionNode(*n) }
func (n *SetExpressionNode) Expression()                {}

// ThisExpressionNode: represents 'this' inside a method body.
// ID is the unique node identifier the resolver keys its depth map by.
type ThisExpressionNode struct {
	Token lexer.Token // The 'this' keyword token
	ID    int         // Unique id for resolution lookup
}

func (n *ThisExpressionNode) Literal() string            { return "this" }
func (n *ThisExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitThisExpressionNode(*n) }
func (n *ThisExpressionNode) Expression()                {}

// SuperExpressionNode: represents 'super.method' inside a subclass method.
// ID is the unique node identifier the resolver keys its depth map by.
type SuperExpressionNode struct {
	Token  lexer.Token // The 'super' keyword token
	Method string      // The superclass method name being accessed
	ID     int         // Unique id for resolution lookup
}

func (n *SuperExpressionNode) Literal() string            { return "super." + n.Method }
func (n *SuperExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitSuperExpressionNode(*n) }
func (n *SuperExpressionNode) Expression()                {}

// ExpressionStatementNode: an expression evaluated for its side effects
// Example: counter();
type ExpressionStatementNode struct {
	Token lexer.Token    // First token of the expression
	Expr  ExpressionNode // The expression
}

func (n *ExpressionStatementNode) Literal() string            { return n.Expr.Literal() + ";" }
func (n *ExpressionStatementNode) Accept(visitor NodeVisitor) { visitor.VisitExpressionStatementNode(*n) }
func (n *ExpressionStatementNode) Statement()                 {}

// PrintStatementNode: writes the stringified value of an expression,
// followed by a newline, to the interpreter's output sink
// Example: print "hi";
type PrintStatementNode struct {
	Token lexer.Token    // The 'print' keyword token
	Expr  ExpressionNode // The expression to print
}

func (n *PrintStatementNode) Literal() string            { return "print " + n.Expr.Literal() + ";" }
func (n *PrintStatementNode) Accept(visitor NodeVisitor) { visitor.VisitPrintStatementNode(*n) }
func (n *PrintStatementNode) Statement()                 {}

// DeclarativeStatementNode: declares a variable with an optional initializer
// Example: var x = 10;  var y;
type DeclarativeStatementNode struct {
	Token       lexer.Token    // The variable name token
	Name        string         // The declared name
	Initializer ExpressionNode // Initializer expression, nil when absent
}

func (n *DeclarativeStatementNode) Literal() string {
	if n.Initializer == nil {
		return "var " + n.Name + ";"
	}
	return "var " + n.Name + " = " + n.Initializer.Literal() + ";"
}
func (n *DeclarativeStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitDeclarativeStatementNode(*n)
}
func (n *DeclarativeStatementNode) Statement() {}

// BlockStatementNode: a brace-delimited list of statements executed in a
// fresh child scope
type BlockStatementNode struct {
	Token      lexer.Token     // The '{' token
	Statements []StatementNode // Statements in source order
}

func (n *BlockStatementNode) Literal() string {
	parts := make([]string, 0, len(n.Statements))
	for _, stmt := range n.Statements {
		parts = append(parts, stmt.Literal())
	}
	return "{ " + strings.Join(parts, " ") + " }"
}
func (n *BlockStatementNode) Accept(visitor NodeVisitor) { visitor.VisitBlockStatementNode(*n) }
func (n *BlockStatementNode) Statement()                 {}

// IfStatementNode: conditional execution with an optional else branch
type IfStatementNode struct {
	Token     lexer.Token    // The 'if' keyword token
	Condition ExpressionNode // The tested condition
	Then      StatementNode  // Executed when the condition is truthy
	Else      StatementNode  // Executed otherwise, nil when absent
}

func (n *IfStatementNode) Literal() string {
	res := "if (" + n.Condition.Literal() + ") " + n.Then.Literal()
	if n.Else != nil {
		res += " else " + n.Else.Literal()
	}
	return res
}
func (n *IfStatementNode) Accept(visitor NodeVisitor) { visitor.VisitIfStatementNode(*n) }
func (n *IfStatementNode) Statement()                 {}

// WhileLoopStatementNode: loops while the condition stays truthy.
// 'for' loops desugar to this node wrapped in blocks.
type WhileLoopStatementNode struct {
	Token     lexer.Token    // The 'while' (or originating 'for') keyword token
	Condition ExpressionNode // The loop condition
	Body      StatementNode  // The loop body
}

func (n *WhileLoopStatementNode) Literal() string {
	return "while (" + n.Condition.Literal() + ") " + n.Body.Literal()
}
func (n *WhileLoopStatementNode) Accept(visitor NodeVisitor) { visitor.VisitWhileLoopStatementNode(*n) }
func (n *WhileLoopStatementNode) Statement()                 {}

// FunctionStatementNode: declares a named function (or a class method).
// The body is the list of statements inside the braces; the function value
// created at runtime captures the scope current at declaration.
type FunctionStatementNode struct {
	Token  lexer.Token                 // The function name token
	Name   string                      // Function name
	Params []*IdentifierExpressionNode // Parameter names (max 255)
	Body   []StatementNode             // Body statements
}

func (n *FunctionStatementNode) Literal() string {
	params := make([]string, 0, len(n.Params))
	for _, param := range n.Params {
		params = append(params, param.Name)
	}
	parts := make([]string, 0, len(n.Body))
	for _, stmt := range n.Body {
		parts = append(parts, stmt.Literal())
	}
	return "fun " + n.Name + "(" + strings.Join(params, ", ") + ") { " + strings.Join(parts, " ") + " }"
}
func (n *FunctionStatementNode) Accept(visitor NodeVisitor) { visitor.VisitFunctionStatementNode(*n) }
func (n *FunctionStatementNode) Statement()                 {}

// ReturnStatementNode: unwinds to the nearest enclosing call boundary
// Example: return x*x;  return;
type ReturnStatementNode struct {
	Token lexer.Token    // The 'return' keyword token
	Value ExpressionNode // Returned expression, nil for a bare 'return;'
}

func (n *ReturnStatementNode) Literal() string {
	if n.Value == nil {
		return "return;"
	}
	return "return " + n.Value.Literal() + ";"
}
func (n *ReturnStatementNode) Accept(visitor NodeVisitor) { visitor.VisitReturnStatementNode(*n) }
func (n *ReturnStatementNode) Statement()                 {}

// ClassStatementNode: declares a class with optional superclass and methods.
// The superclass clause is an identifier expression so the resolver and
// evaluator treat it like any other variable reference.
type ClassStatementNode struct {
	Token      lexer.Token               // The class name token
	Name       string                    // Class name
	Superclass *IdentifierExpressionNode // Superclass reference, nil when absent
	Methods    []*FunctionStatementNode  // Method declarations
}

func (n *ClassStatementNode) Literal() string {
	res := "class " + n.Name
	if n.Superclass != nil {
		res += " < " + n.Superclass.Name
	}
	parts := make([]string, 0, len(n.Methods))
	for _, method := range n.Methods {
		parts = append(parts, method.Literal())
	}
	return res + " { " + strings.Join(parts, " ") + " }"
}
func (n *ClassStatementNode) Accept(visitor NodeVisitor) { visitor.VisitClassStatementNode(*n) }
func (n *ClassStatementNode) Statement()                 {}
