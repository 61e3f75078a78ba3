/*
File    : go-lox/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// parseDeclaration parses one declaration or statement, with panic-mode
// recovery. If the underlying parse recorded any new error, the produced
// (partial) node is discarded and the token stream is resynchronized to the
// next statement boundary, so one bad statement doesn't cascade into a wall
// of spurious errors.
//
// Protocol: the current token is the first token of the declaration on
// entry, and its last token (or the recovery boundary) on exit.
func (par *Parser) parseDeclaration() StatementNode {
	errCount := len(par.Errors)
	stmt := par.parseDeclarationInner()
	if len(par.Errors) > errCount {
		par.synchronize()
		return nil
	}
	return stmt
}

// parseDeclarationInner dispatches on the declaration keywords; everything
// else is a plain statement.
func (par *Parser) parseDeclarationInner() StatementNode {
	switch par.CurrToken.Type {
	case lexer.VAR_KEY:
		return par.parseVarStatement()
	case lexer.FUN_KEY:
		return par.parseFunctionStatement()
	case lexer.CLASS_KEY:
		return par.parseClassStatement()
	default:
		return par.parseStatement()
	}
}

// parseStatement dispatches on the statement keywords; everything else is
// an expression statement. Declarations are not valid here, which is what
// makes 'if (c) var x;' a parse error.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.PRINT_KEY:
		return par.parsePrintStatement()
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.FOR_KEY:
		return par.parseForStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseVarStatement parses: var IDENT ( "=" expression )? ";"
func (par *Parser) parseVarStatement() StatementNode {
	if !par.expectNext(lexer.IDENTIFIER_ID, "Expect variable name.") {
		return nil
	}
	name := par.CurrToken

	var initializer ExpressionNode
	if par.nextIs(lexer.ASSIGN_OP) {
		par.Advance()
		par.Advance()
		initializer = par.parseExpression(MINIMUM_PRIORITY)
		if initializer == nil {
			return nil
		}
	}

	if !par.expectNext(lexer.SEMICOLON_DELIM, "Expect ';' after variable declaration.") {
		return nil
	}

	return &DeclarativeStatementNode{Token: name, Name: name.Literal, Initializer: initializer}
}

// parsePrintStatement parses: print expression ";"
func (par *Parser) parsePrintStatement() StatementNode {
	token := par.CurrToken
	par.Advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	if !par.expectNext(lexer.SEMICOLON_DELIM, "Expect ';' after value.") {
		return nil
	}
	return &PrintStatementNode{Token: token, Expr: expr}
}

// parseExpressionStatement parses: expression ";"
func (par *Parser) parseExpressionStatement() StatementNode {
	token := par.CurrToken
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	if !par.expectNext(lexer.SEMICOLON_DELIM, "Expect ';' after expression.") {
		return nil
	}
	return &ExpressionStatementNode{Token: token, Expr: expr}
}

// parseBlockStatement parses: "{" declaration* "}"
// Each statement inside goes through parseDeclaration, so errors inside a
// block recover locally and the rest of the block still parses.
func (par *Parser) parseBlockStatement() StatementNode {
	token := par.CurrToken
	statements := make([]StatementNode, 0)

	for !par.nextIs(lexer.RIGHT_BRACE) && !par.nextIs(lexer.EOF_TYPE) {
		par.Advance()
		stmt := par.parseDeclaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}

	if !par.expectNext(lexer.RIGHT_BRACE, "Expect '}' after block.") {
		return nil
	}

	return &BlockStatementNode{Token: token, Statements: statements}
}

// parseIfStatement parses: if "(" expression ")" statement ( else statement )?
// The else binds to the nearest if, which falls out of the recursion.
func (par *Parser) parseIfStatement() StatementNode {
	token := par.CurrToken
	if !par.expectNext(lexer.LEFT_PAREN, "Expect '(' after 'if'.") {
		return nil
	}
	par.Advance()
	condition := par.parseExpression(MINIMUM_PRIORITY)
	if condition == nil {
		return nil
	}
	if !par.expectNext(lexer.RIGHT_PAREN, "Expect ')' after if condition.") {
		return nil
	}

	par.Advance()
	then := par.parseStatement()
	if then == nil {
		return nil
	}

	var els StatementNode
	if par.nextIs(lexer.ELSE_KEY) {
		par.Advance()
		par.Advance()
		els = par.parseStatement()
		if els == nil {
			return nil
		}
	}

	return &IfStatementNode{Token: token, Condition: condition, Then: then, Else: els}
}

// parseWhileStatement parses: while "(" expression ")" statement
func (par *Parser) parseWhileStatement() StatementNode {
	token := par.CurrToken
	if !par.expectNext(lexer.LEFT_PAREN, "Expect '(' after 'while'.") {
		return nil
	}
	par.Advance()
	condition := par.parseExpression(MINIMUM_PRIORITY)
	if condition == nil {
		return nil
	}
	if !par.expectNext(lexer.RIGHT_PAREN, "Expect ')' after condition.") {
		return nil
	}

	par.Advance()
	body := par.parseStatement()
	if body == nil {
		return nil
	}

	return &WhileLoopStatementNode{Token: token, Condition: condition, Body: body}
}

// parseForStatement parses the C-style for loop and desugars it at parse
// time; no dedicated AST node exists for it:
//
//	for (init; cond; incr) body
//
// becomes
//
//	{ init; while (cond) { body; incr; } }
//
// with a missing condition defaulting to true. Each clause may be empty.
func (par *Parser) parseForStatement() StatementNode {
	token := par.CurrToken
	if !par.expectNext(lexer.LEFT_PAREN, "Expect '(' after 'for'.") {
		return nil
	}

	// Initializer clause: empty, a var declaration, or an expression
	var initializer StatementNode
	if par.nextIs(lexer.SEMICOLON_DELIM) {
		par.Advance()
	} else if par.nextIs(lexer.VAR_KEY) {
		par.Advance()
		initializer = par.parseVarStatement()
		if initializer == nil {
			return nil
		}
	} else {
		par.Advance()
		initializer = par.parseExpressionStatement()
		if initializer == nil {
			return nil
		}
	}

	// Condition clause: empty means loop forever
	var condition ExpressionNode
	if par.nextIs(lexer.SEMICOLON_DELIM) {
		par.Advance()
	} else {
		par.Advance()
		condition = par.parseExpression(MINIMUM_PRIORITY)
		if condition == nil {
			return nil
		}
		if !par.expectNext(lexer.SEMICOLON_DELIM, "Expect ';' after loop condition.") {
			return nil
		}
	}

	// Increment clause: runs after every iteration of the body
	var increment ExpressionNode
	if par.nextIs(lexer.RIGHT_PAREN) {
		par.Advance()
	} else {
		par.Advance()
		increment = par.parseExpression(MINIMUM_PRIORITY)
		if increment == nil {
			return nil
		}
		if !par.expectNext(lexer.RIGHT_PAREN, "Expect ')' after for clauses.") {
			return nil
		}
	}

	par.Advance()
	body := par.parseStatement()
	if body == nil {
		return nil
	}

	// Desugar inside-out: append the increment to the body, wrap in while,
	// prepend the initializer
	if increment != nil {
		body = &BlockStatementNode{
			Token:      token,
			Statements: []StatementNode{body, &ExpressionStatementNode{Token: token, Expr: increment}},
		}
	}
	if condition == nil {
		condition = &BooleanLiteralExpressionNode{Token: token, Value: &objects.Boolean{Value: true}}
	}
	var loop StatementNode = &WhileLoopStatementNode{Token: token, Condition: condition, Body: body}
	if initializer != nil {
		loop = &BlockStatementNode{Token: token, Statements: []StatementNode{initializer, loop}}
	}
	return loop
}

// parseReturnStatement parses: return expression? ";"
// Whether a return is legal at all (and whether it may carry a value inside
// an initializer) is the resolver's concern.
func (par *Parser) parseReturnStatement() StatementNode {
	token := par.CurrToken

	var value ExpressionNode
	if par.nextIs(lexer.SEMICOLON_DELIM) {
		par.Advance()
	} else {
		par.Advance()
		value = par.parseExpression(MINIMUM_PRIORITY)
		if value == nil {
			return nil
		}
		if !par.expectNext(lexer.SEMICOLON_DELIM, "Expect ';' after return value.") {
			return nil
		}
	}

	return &ReturnStatementNode{Token: token, Value: value}
}

// parseFunctionStatement parses: fun IDENT "(" params? ")" block
func (par *Parser) parseFunctionStatement() StatementNode {
	if !par.expectNext(lexer.IDENTIFIER_ID, "Expect function name.") {
		return nil
	}
	return par.parseFunctionRest(par.CurrToken, "function")
}

// parseFunctionRest parses the parameter list and body shared by function
// declarations and class methods. The current token is the name; kind is
// "function" or "method" and only affects error wording. At most 255
// parameters are allowed; exceeding the limit is reported but parsing
// continues.
func (par *Parser) parseFunctionRest(name lexer.Token, kind string) *FunctionStatementNode {
	if !par.expectNext(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.") {
		return nil
	}

	params := make([]*IdentifierExpressionNode, 0)
	if !par.nextIs(lexer.RIGHT_PAREN) {
		for {
			if !par.expectNext(lexer.IDENTIFIER_ID, "Expect parameter name.") {
				return nil
			}
			if len(params) >= 255 {
				par.addErrorAt(par.CurrToken, "Can't have more than 255 parameters.")
			}
			params = append(params, &IdentifierExpressionNode{
				Token: par.CurrToken,
				Name:  par.CurrToken.Literal,
				ID:    nextNodeID(),
			})
			if !par.nextIs(lexer.COMMA_DELIM) {
				break
			}
			par.Advance()
		}
	}

	if !par.expectNext(lexer.RIGHT_PAREN, "Expect ')' after parameters.") {
		return nil
	}
	if !par.expectNext(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.") {
		return nil
	}

	block := par.parseBlockStatement()
	if block == nil {
		return nil
	}

	return &FunctionStatementNode{
		Token:  name,
		Name:   name.Literal,
		Params: params,
		Body:   block.(*BlockStatementNode).Statements,
	}
}

// parseClassStatement parses: class IDENT ( "<" IDENT )? "{" method* "}"
// Methods are plain functions without the 'fun' keyword. The superclass
// clause becomes an identifier expression so that resolution and evaluation
// treat it as a normal variable reference.
func (par *Parser) parseClassStatement() StatementNode {
	if !par.expectNext(lexer.IDENTIFIER_ID, "Expect class name.") {
		return nil
	}
	name := par.CurrToken

	var superclass *IdentifierExpressionNode
	if par.nextIs(lexer.LT_OP) {
		par.Advance()
		if !par.expectNext(lexer.IDENTIFIER_ID, "Expect superclass name.") {
			return nil
		}
		superclass = &IdentifierExpressionNode{
			Token: par.CurrToken,
			Name:  par.CurrToken.Literal,
			ID:    nextNodeID(),
		}
	}

	if !par.expectNext(lexer.LEFT_BRACE, "Expect '{' before class body.") {
		return nil
	}

	methods := make([]*FunctionStatementNode, 0)
	for !par.nextIs(lexer.RIGHT_BRACE) && !par.nextIs(lexer.EOF_TYPE) {
		if !par.expectNext(lexer.IDENTIFIER_ID, "Expect method name.") {
			return nil
		}
		method := par.parseFunctionRest(par.CurrToken, "method")
		if method == nil {
			return nil
		}
		methods = append(methods, method)
	}

	if !par.expectNext(lexer.RIGHT_BRACE, "Expect '}' after class body.") {
		return nil
	}

	return &ClassStatementNode{Token: name, Name: name.Literal, Superclass: superclass, Methods: methods}
}
