/*
File    : go-lox/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-lox/lexer"

// Operator precedence constants
// Higher number = higher precedence (binds tighter)
//
// Precedence Hierarchy (lowest to highest):
// 1. Assignment (right-to-left associativity)
// 2. Logical OR
// 3. Logical AND
// 4. Equality operators
// 5. Relational operators
// 6. Additive operators
// 7. Multiplicative operators
// 8. Unary/Prefix operators
// 9. Call and property access (postfix)
//
// Example: In "a + b * c", multiplication has higher precedence than addition,
// so it's parsed as "a + (b * c)" rather than "(a + b) * c"
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Assignment: = (right-to-left)
	// Example: a = b = 5 is parsed as a = (b = 5)
	ASSIGN_PRIORITY = 10

	// Logical OR: or
	OR_PRIORITY = 40

	// Logical AND: and
	AND_PRIORITY = 50

	// Equality operators: == !=
	EQUALITY_PRIORITY = 90

	// Relational operators: < > <= >=
	RELATIONAL_PRIORITY = 100

	// Additive operators: + -
	PLUS_PRIORITY = 120

	// Multiplicative operators: * /
	MUL_PRIORITY = 130

	// Unary/prefix operators: - !
	UNARY_PRIORITY = 140

	// Calls and property access: f(x), obj.field
	CALL_PRIORITY = 150
)

// PRIORITIES_MAP maps infix token types to their binding priority.
// Tokens absent from this map do not continue an expression, which is how
// the Pratt loop knows an expression has ended.
var PRIORITIES_MAP = map[lexer.TokenType]int{
	lexer.ASSIGN_OP: ASSIGN_PRIORITY,
	lexer.OR_KEY:    OR_PRIORITY,
	lexer.AND_KEY:   AND_PRIORITY,
	lexer.EQ_OP:     EQUALITY_PRIORITY,
	lexer.NE_OP:     EQUALITY_PRIORITY,
	lexer.LT_OP:     RELATIONAL_PRIORITY,
	lexer.LE_OP:     RELATIONAL_PRIORITY,
	lexer.GT_OP:     RELATIONAL_PRIORITY,
	lexer.GE_OP:     RELATIONAL_PRIORITY,
	lexer.PLUS_OP:   PLUS_PRIORITY,
	lexer.MINUS_OP:  PLUS_PRIORITY,
	lexer.MUL_OP:    MUL_PRIORITY,
	lexer.DIV_OP:    MUL_PRIORITY,
	lexer.LEFT_PAREN: CALL_PRIORITY,
	lexer.DOT_OP:     CALL_PRIORITY,
}

// currPriority returns the binding priority of the current token.
func (par *Parser) currPriority() int {
	if priority, ok := PRIORITIES_MAP[par.CurrToken.Type]; ok {
		return priority
	}
	return MINIMUM_PRIORITY
}

// nextPriority returns the binding priority of the lookahead token.
func (par *Parser) nextPriority() int {
	if priority, ok := PRIORITIES_MAP[par.NextToken.Type]; ok {
		return priority
	}
	return MINIMUM_PRIORITY
}
