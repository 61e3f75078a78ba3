/*
File    : go-lox/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for expression parsing
// Input: source code of a single expression statement
// Expected: the Literal() rendering of the parsed expression
type TestParseExpression struct {
	Input    string
	Expected string
}

// TestParser_Precedence verifies operator precedence and associativity
// through the parenthesized Literal() rendering of the AST
func TestParser_Precedence(t *testing.T) {
	tests := []TestParseExpression{
		{"1 + 2 * 3;", "((1 + (2 * 3)));"},
		{"1 * 2 + 3;", "(((1 * 2) + 3));"},
		{"1 + 2 - 3;", "(((1 + 2) - 3));"},
		{"8 / 4 / 2;", "(((8 / 4) / 2));"},
		{"-a * b;", "(((-a) * b));"},
		{"!!true;", "((!(!true)));"},
		{"a == b != c;", "(((a == b) != c));"},
		{"a < b == c > d;", "(((a < b) == (c > d)));"},
		{"1 + 2 < 3 * 4;", "(((1 + 2) < (3 * 4)));"},
		{"a or b and c;", "((a or (b and c)));"},
		{"a and b or c;", "(((a and b) or c));"},
		{"a = b = c;", "((a = (b = c)));"},
		{"a = b or c;", "((a = (b or c)));"},
		{"(1 + 2) * 3;", "((((1 + 2)) * 3));"},
		{"f(1)(2);", "(f(1)(2));"},
		{"a.b.c;", "(a.b.c);"},
		{"a.b = c;", "((a.b = c));"},
		{"-a.b;", "((-a.b));"},
		{"square(1 + 2, x);", "(square((1 + 2), x));"},
		{"super.cook();", "(super.cook());"},
		{"this.x;", "(this.x);"},
	}

	for _, test := range tests {
		par := NewParser(test.Input)
		root := par.Parse()
		assert.Empty(t, par.Errors, "input: %s", test.Input)
		assert.Equal(t, 1, len(root.Statements), "input: %s", test.Input)
		// the expected "(expr);" form is built here by wrapping the
		// statement's expression Literal in parens and appending ';'
		got := "(" + root.Statements[0].(*ExpressionStatementNode).Expr.Literal() + ");"
		assert.Equal(t, test.Expected, got, "input: %s", test.Input)
	}
}

// TestParser_Statements verifies statement parsing via tree traversal
func TestParser_Statements(t *testing.T) {
	tests := []struct {
		Input    string
		Expected []string
	}{
		{
			Input:    `var x = 10;`,
			Expected: []string{"Root", "Var(x)", "Number(10)"},
		},
		{
			Input:    `var y;`,
			Expected: []string{"Root", "Var(y)"},
		},
		{
			Input:    `print "hi";`,
			Expected: []string{"Root", "Print", "String(hi)"},
		},
		{
			Input:    `{ var a = 1; print a; }`,
			Expected: []string{"Root", "Block", "Var(a)", "Number(1)", "Print", "Identifier(a)"},
		},
		{
			Input:    `if (a) print 1; else print 2;`,
			Expected: []string{"Root", "If", "Identifier(a)", "Print", "Number(1)", "Print", "Number(2)"},
		},
		{
			Input:    `while (a < 3) a = a + 1;`,
			Expected: []string{"Root", "While", "Binary(<)", "Identifier(a)", "Number(3)", "ExpressionStatement", "Assign(a)", "Binary(+)", "Identifier(a)", "Number(1)"},
		},
		{
			Input:    `fun square(x) { return x * x; }`,
			Expected: []string{"Root", "Function(square/1)", "Return", "Binary(*)", "Identifier(x)", "Identifier(x)"},
		},
		{
			Input:    `return;`,
			Expected: []string{"Root", "Return"},
		},
		{
			Input:    `class Foo { bar() { return 1; } }`,
			Expected: []string{"Root", "Class(Foo)", "Function(bar/0)", "Return", "Number(1)"},
		},
		{
			Input:    `class B < D { cook() { super.cook(); } }`,
			Expected: []string{"Root", "Class(B < D)", "Function(cook/0)", "ExpressionStatement", "Call(0)", "Super(cook)"},
		},
	}

	for _, test := range tests {
		par := NewParser(test.Input)
		root := par.Parse()
		assert.Empty(t, par.Errors, "input: %s", test.Input)

		visitor := NewTraversalVisitor()
		root.Accept(visitor)
		assert.Equal(t, test.Expected, visitor.Visited, "input: %s", test.Input)
	}
}

// TestParser_ForDesugar verifies that for loops desugar into while + block
func TestParser_ForDesugar(t *testing.T) {
	par := NewParser(`for (var i = 0; i < 3; i = i + 1) print i;`)
	root := par.Parse()
	assert.Empty(t, par.Errors)

	visitor := NewTraversalVisitor()
	root.Accept(visitor)
	assert.Equal(t, []string{
		"Root",
		"Block",                 // { init; while ... }
		"Var(i)", "Number(0)",   // var i = 0;
		"While",                 // while (i < 3)
		"Binary(<)", "Identifier(i)", "Number(3)",
		"Block",                 // { body; incr; }
		"Print", "Identifier(i)",
		"ExpressionStatement", "Assign(i)", "Binary(+)", "Identifier(i)", "Number(1)",
	}, visitor.Visited)
}

// TestParser_ForDesugar_EmptyClauses verifies the default condition and the
// clause-free form
func TestParser_ForDesugar_EmptyClauses(t *testing.T) {
	par := NewParser(`for (;;) print 1;`)
	root := par.Parse()
	assert.Empty(t, par.Errors)

	visitor := NewTraversalVisitor()
	root.Accept(visitor)
	assert.Equal(t, []string{
		"Root", "While", "Boolean(true)", "Print", "Number(1)",
	}, visitor.Visited)
}

// TestParser_UniqueNodeIDs verifies that every resolvable expression node
// receives a distinct id at construction time
func TestParser_UniqueNodeIDs(t *testing.T) {
	par := NewParser(`var a = b; a = a + b;`)
	root := par.Parse()
	assert.Empty(t, par.Errors)

	seen := map[int]bool{}
	var walk func(expr ExpressionNode)
	walk = func(expr ExpressionNode) {
		switch n := expr.(type) {
		case *IdentifierExpressionNode:
			assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
			seen[n.ID] = true
		case *AssignmentExpressionNode:
			assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
			seen[n.ID] = true
			walk(n.Value)
		case *BinaryExpressionNode:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(root.Statements[0].(*DeclarativeStatementNode).Initializer)
	walk(root.Statements[1].(*ExpressionStatementNode).Expr)
	assert.Equal(t, 4, len(seen))
}

// TestParser_Errors verifies error reporting and panic-mode recovery:
// several broken statements produce several errors in one pass, and
// later valid statements still parse
func TestParser_Errors(t *testing.T) {
	tests := []struct {
		Input          string
		ExpectedErrors []string
	}{
		{
			Input:          `var = 3;`,
			ExpectedErrors: []string{"[line 1] Error at '=': Expect variable name."},
		},
		{
			Input:          `print 1`,
			ExpectedErrors: []string{"[line 1] Error at end: Expect ';' after value."},
		},
		{
			Input:          `a + b = c;`,
			ExpectedErrors: []string{"[line 1] Error at '=': Invalid assignment target."},
		},
		{
			Input:          `(1 + 2;`,
			ExpectedErrors: []string{"[line 1] Error at ';': Expect ')' after expression."},
		},
		{
			Input:          `super;`,
			ExpectedErrors: []string{"[line 1] Error at ';': Expect '.' after 'super'."},
		},
		{
			Input: "var = 1;\nprint (;\nvar ok = 2;",
			ExpectedErrors: []string{
				"[line 1] Error at '=': Expect variable name.",
				"[line 2] Error at ';': Expect expression.",
			},
		},
	}

	for _, test := range tests {
		par := NewParser(test.Input)
		par.Parse()
		assert.Equal(t, test.ExpectedErrors, par.Errors, "input: %s", test.Input)
	}
}

// TestParser_RecoveryKeepsGoodStatements verifies that statements after a
// recovered error still make it into the AST
func TestParser_RecoveryKeepsGoodStatements(t *testing.T) {
	par := NewParser("var = 1;\nvar ok = 2;\nprint ok;")
	root := par.Parse()

	assert.Equal(t, 1, len(par.Errors))
	assert.Equal(t, 2, len(root.Statements))
	assert.Equal(t, "var ok = 2;", root.Statements[0].Literal())
	assert.Equal(t, "print ok;", root.Statements[1].Literal())
}

// TestParser_ScanErrorsSurface verifies that lexical errors travel through
// Parse() ahead of parse errors
func TestParser_ScanErrorsSurface(t *testing.T) {
	par := NewParser(`var a = @; print 1`)
	par.Parse()

	assert.Equal(t, []string{
		"[line 1] Error: Unexpected character: '@'",
		"[line 1] Error at ';': Expect expression.",
		"[line 1] Error at end: Expect ';' after value.",
	}, par.Errors)
}
