/*
File    : go-lox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// parseExpression is the heart of the Pratt parser. It parses an expression
// whose operators all bind tighter than the given priority.
//
// Protocol: on entry the current token is the FIRST token of the expression;
// on exit the current token is its LAST token. Every parse function below
// follows the same convention.
//
// The loop keeps folding infix operators into the left operand for as long
// as the lookahead operator binds tighter than the caller's priority. Since
// operators of equal priority do not continue the loop, binary operators are
// left-associative; right associativity (assignment) is achieved by the
// infix function recursing with its own priority minus one.
func (par *Parser) parseExpression(priority int) ExpressionNode {
	prefix := par.UnaryFuncs[par.CurrToken.Type]
	if prefix == nil {
		par.addErrorAt(par.CurrToken, "Expect expression.")
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for priority < par.nextPriority() {
		infix := par.BinaryFuncs[par.NextToken.Type]
		if infix == nil {
			return left
		}
		par.Advance()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parseNumberLiteral parses a number literal token into its node.
// All Lox numbers are float64; the lexer guarantees the literal text is a
// valid digits[.digits] form.
func (par *Parser) parseNumberLiteral() ExpressionNode {
	value, err := strconv.ParseFloat(par.CurrToken.Literal, 64)
	if err != nil {
		par.addErrorAt(par.CurrToken, "Invalid number literal.")
		return nil
	}
	return &NumberLiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.Number{Value: value},
	}
}

// parseStringLiteral parses a string literal token into its node.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.String{Value: par.CurrToken.Literal},
	}
}

// parseBooleanLiteral parses 'true' or 'false' into its node.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.Boolean{Value: par.currIs(lexer.TRUE_KEY)},
	}
}

// parseNilLiteral parses 'nil' into its node.
func (par *Parser) parseNilLiteral() ExpressionNode {
	return &NilLiteralExpressionNode{Token: par.CurrToken}
}

// parseParenthesizedExpression parses a grouped expression: ( expr )
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	token := par.CurrToken
	par.Advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	if !par.expectNext(lexer.RIGHT_PAREN, "Expect ')' after expression.") {
		return nil
	}
	return &ParenthesizedExpressionNode{Token: token, Expr: expr}
}

// parseIdentifierExpression parses a variable reference. Each reference
// gets a unique node id so the resolver can record its lexical depth.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
		ID:    nextNodeID(),
	}
}

// parseUnaryExpression parses a prefix operation: -x or !x.
// The operand is parsed at UNARY_PRIORITY, so '-a * b' groups as '(-a) * b'
// while '-a.b' still groups as '-(a.b)' because property access binds
// tighter.
func (par *Parser) parseUnaryExpression() ExpressionNode {
	token := par.CurrToken
	par.Advance()
	right := par.parseExpression(UNARY_PRIORITY)
	if right == nil {
		return nil
	}
	return &UnaryExpressionNode{Token: token, Operator: token.Type, Right: right}
}

// parseBinaryExpression parses an infix arithmetic or comparison operation.
// Called with the current token on the operator; parses the right operand
// at the operator's own priority (left associativity).
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	token := par.CurrToken
	priority := par.currPriority()
	par.Advance()
	right := par.parseExpression(priority)
	if right == nil {
		return nil
	}
	return &BinaryExpressionNode{Token: token, Operator: token.Type, Left: left, Right: right}
}

// parseLogicalExpression parses 'and'/'or'. Identical shape to binary
// operators at parse time; short-circuiting happens in the evaluator.
func (par *Parser) parseLogicalExpression(left ExpressionNode) ExpressionNode {
	token := par.CurrToken
	priority := par.currPriority()
	par.Advance()
	right := par.parseExpression(priority)
	if right == nil {
		return nil
	}
	return &LogicalExpressionNode{Token: token, Operator: token.Type, Left: left, Right: right}
}

// parseAssignmentExpression parses an assignment. The left side has already
// been parsed as an ordinary expression; only a plain variable reference or
// a property access is a valid target. Anything else ("a + b = c") is an
// error reported at the '=' token, without entering panic mode for the
// right-hand side (it is still parsed for further error reporting).
//
// The right-hand side is parsed at ASSIGN_PRIORITY-1, making assignment
// right-associative: a = b = c groups as a = (b = c).
func (par *Parser) parseAssignmentExpression(left ExpressionNode) ExpressionNode {
	equals := par.CurrToken
	par.Advance()
	value := par.parseExpression(ASSIGN_PRIORITY - 1)
	if value == nil {
		return nil
	}

	switch target := left.(type) {
	case *IdentifierExpressionNode:
		return &AssignmentExpressionNode{
			Token: target.Token,
			Name:  target.Name,
			ID:    nextNodeID(),
			Value: value,
		}
	case *GetExpressionNode:
		return &SetExpressionNode{
			Token:  target.Token,
			Object: target.Object,
			Name:   target.Name,
			Value:  value,
		}
	default:
		par.addErrorAt(equals, "Invalid assignment target.")
		return nil
	}
}

// parseCallExpression parses a call's argument list. The current token is
// the '(' that follows the callee; its line is recorded on the node for
// runtime error reporting. At most 255 arguments are allowed; exceeding the
// limit is reported but parsing continues.
func (par *Parser) parseCallExpression(callee ExpressionNode) ExpressionNode {
	token := par.CurrToken
	args := make([]ExpressionNode, 0)

	if !par.nextIs(lexer.RIGHT_PAREN) {
		for {
			par.Advance()
			arg := par.parseExpression(MINIMUM_PRIORITY)
			if arg == nil {
				return nil
			}
			if len(args) >= 255 {
				par.addErrorAt(par.CurrToken, "Can't have more than 255 arguments.")
			}
			args = append(args, arg)
			if !par.nextIs(lexer.COMMA_DELIM) {
				break
			}
			par.Advance()
		}
	}

	if !par.expectNext(lexer.RIGHT_PAREN, "Expect ')' after arguments.") {
		return nil
	}

	return &CallExpressionNode{Token: token, Callee: callee, Args: args}
}

// parseGetExpression parses a property read: obj.name. If the read turns
// out to be the target of an assignment, parseAssignmentExpression rewrites
// it into a SetExpressionNode.
func (par *Parser) parseGetExpression(object ExpressionNode) ExpressionNode {
	if !par.expectNext(lexer.IDENTIFIER_ID, "Expect property name after '.'.") {
		return nil
	}
	return &GetExpressionNode{
		Token:  par.CurrToken,
		Object: object,
		Name:   par.CurrToken.Literal,
	}
}

// parseThisExpression parses 'this'. Valid placement (inside a method) is
// enforced by the resolver, not the parser.
func (par *Parser) parseThisExpression() ExpressionNode {
	return &ThisExpressionNode{Token: par.CurrToken, ID: nextNodeID()}
}

// parseSuperExpression parses 'super.method'. A bare 'super' is not an
// expression; the method name is required.
func (par *Parser) parseSuperExpression() ExpressionNode {
	token := par.CurrToken
	if !par.expectNext(lexer.DOT_OP, "Expect '.' after 'super'.") {
		return nil
	}
	if !par.expectNext(lexer.IDENTIFIER_ID, "Expect superclass method name.") {
		return nil
	}
	return &SuperExpressionNode{
		Token:  token,
		Method: par.CurrToken.Literal,
		ID:     nextNodeID(),
	}
}
