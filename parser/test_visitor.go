/*
File    : go-lox/parser/test_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package parser

import "fmt"

// TraversalVisitor is a NodeVisitor that records the pre-order traversal of
// an AST as a list of node labels. Parser tests use it to assert that source
// text produced the expected tree shape without poking at node internals.
type TraversalVisitor struct {
	Visited []string // Node labels in visit order
}

// NewTraversalVisitor creates an empty traversal recorder.
func NewTraversalVisitor() *TraversalVisitor {
	return &TraversalVisitor{Visited: make([]string, 0)}
}

// record appends a node label to the traversal.
func (tv *TraversalVisitor) record(format string, a ...interface{}) {
	tv.Visited = append(tv.Visited, fmt.Sprintf(format, a...))
}

func (tv *TraversalVisitor) VisitRootNode(node RootNode) {
	tv.record("Root")
	for _, stmt := range node.Statements {
		stmt.Accept(tv)
	}
}

func (tv *TraversalVisitor) VisitNumberLiteralExpressionNode(node NumberLiteralExpressionNode) {
	tv.record("Number(%s)", node.Value.ToString())
}

func (tv *TraversalVisitor) VisitStringLiteralExpressionNode(node StringLiteralExpressionNode) {
	tv.record("String(%s)", node.Value.Value)
}

func (tv *TraversalVisitor) VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) {
	tv.record("Boolean(%s)", node.Value.ToString())
}

func (tv *TraversalVisitor) VisitNilLiteralExpressionNode(node NilLiteralExpressionNode) {
	tv.record("Nil")
}

func (tv *TraversalVisitor) VisitBinaryExpressionNode(node BinaryExpressionNode) {
	tv.record("Binary(%s)", node.Operator)
	node.Left.Accept(tv)
	node.Right.Accept(tv)
}

func (tv *TraversalVisitor) VisitUnaryExpressionNode(node UnaryExpressionNode) {
	tv.record("Unary(%s)", node.Operator)
	node.Right.Accept(tv)
}

func (tv *TraversalVisitor) VisitLogicalExpressionNode(node LogicalExpressionNode) {
	tv.record("Logical(%s)", node.Operator)
	node.Left.Accept(tv)
	node.Right.Accept(tv)
}

func (tv *TraversalVisitor) VisitParenthesizedExpressionNode(node ParenthesizedExpressionNode) {
	tv.record("Group")
	node.Expr.Accept(tv)
}

func (tv *TraversalVisitor) VisitIdentifierExpressionNode(node IdentifierExpressionNode) {
	tv.record("Identifier(%s)", node.Name)
}

func (tv *TraversalVisitor) VisitAssignmentExpressionNode(node AssignmentExpressionNode) {
	tv.record("Assign(%s)", node.Name)
	node.Value.Accept(tv)
}

func (tv *TraversalVisitor) VisitCallExpressionNode(node CallExpressionNode) {
	tv.record("Call(%d)", len(node.Args))
	node.Callee.Accept(tv)
	for _, arg := range node.Args {
		arg.Accept(tv)
	}
}

func (tv *TraversalVisitor) VisitGetExpressionNode(node GetExpressionNode) {
	tv.record("Get(%s)", node.Name)
	node.Object.Accept(tv)
}

func (tv *TraversalVisitor) VisitSetExpressionNode(node SetExpressionNode) {
	tv.record("Set(%s)", node.Name)
	node.Object.Accept(tv)
	node.Value.Accept(tv)
}

func (tv *TraversalVisitor) VisitThisExpressionNode(node ThisExpressionNode) {
	tv.record("This")
}

func (tv *TraversalVisitor) VisitSuperExpressionNode(node SuperExpressionNode) {
	tv.record("Super(%s)", node.Method)
}

func (tv *TraversalVisitor) VisitExpressionStatementNode(node ExpressionStatementNode) {
	tv.record("ExpressionStatement")
	node.Expr.Accept(tv)
}

func (tv *TraversalVisitor) VisitPrintStatementNode(node PrintStatementNode) {
	tv.record("Print")
	node.Expr.Accept(tv)
}

func (tv *TraversalVisitor) VisitDeclarativeStatementNode(node DeclarativeStatementNode) {
	tv.record("Var(%s)", node.Name)
	if node.Initializer != nil {
		node.Initializer.Accept(tv)
	}
}

func (tv *TraversalVisitor) VisitBlockStatementNode(node BlockStatementNode) {
	tv.record("Block")
	for _, stmt := range node.Statements {
		stmt.Accept(tv)
	}
}

func (tv *TraversalVisitor) VisitIfStatementNode(node IfStatementNode) {
	tv.record("If")
	node.Condition.Accept(tv)
	node.Then.Accept(tv)
	if node.Else != nil {
		node.Else.Accept(tv)
	}
}

func (tv *TraversalVisitor) VisitWhileLoopStatementNode(node WhileLoopStatementNode) {
	tv.record("While")
	node.Condition.Accept(tv)
	node.Body.Accept(tv)
}

func (tv *TraversalVisitor) VisitFunctionStatementNode(node FunctionStatementNode) {
	tv.record("Function(%s/%d)", node.Name, len(node.Params))
	for _, stmt := range node.Body {
		stmt.Accept(tv)
	}
}

func (tv *TraversalVisitor) VisitReturnStatementNode(node ReturnStatementNode) {
	tv.record("Return")
	if node.Value != nil {
		node.Value.Accept(tv)
	}
}

func (tv *TraversalVisitor) VisitClassStatementNode(node ClassStatementNode) {
	if node.Superclass != nil {
		tv.record("Class(%s < %s)", node.Name, node.Superclass.Name)
	} else {
		tv.record("Class(%s)", node.Name)
	}
	for _, method := range node.Methods {
		method.Accept(tv)
	}
}
