/*
File    : go-lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (also known as top-down operator precedence parser)
for the Lox programming language.

The parser converts a stream of tokens from the lexer into an Abstract Syntax Tree (AST).
It handles:
- Expressions (binary, unary, logical, literals, identifiers, calls, property access)
- Statements (declarations, assignments, control flow, blocks)
- Functions and classes (declarations, methods, 'this'/'super')
- Operator precedence and associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Error collection with panic-mode recovery (doesn't stop on first error)
- 'for' loops desugared at parse time into while + block
- Unique node ids handed to every resolvable expression, consumed by the resolver

Parsing always returns the best-effort statement list; callers check Errors
to decide whether the program may be executed.
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// unaryParseFunction parses a token in prefix position into an expression.
type unaryParseFunction func() ExpressionNode

// binaryParseFunction parses a token in infix position, combining the
// already-parsed left operand into a larger expression.
type binaryParseFunction func(left ExpressionNode) ExpressionNode

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Lox source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and literals
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix operators, calls, property access

	// Collect parsing errors instead of panicking
	// This allows reporting multiple errors in a single parse
	Errors []string
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The Lox source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	// Create the parser with the lexer
	par := &Parser{
		Lex: lex,
	}

	// Initialize all parser state (maps, tokens, etc.)
	par.init()

	return par
}

// init initializes the parser's internal state:
// 1. Function maps for Pratt parsing
// 2. Error collection
// 3. Initial two-token lookahead
//
// The registrations below establish the expression grammar of Lox;
// statements are dispatched by keyword in parser_statements.go.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Literals: 42, 3.14, "hello", true, false, nil
	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.NUMBER_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)
	par.registerUnaryFuncs(par.parseNilLiteral, lexer.NIL_KEY)

	// Identifiers: variable, function and class names
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)

	// Prefix operators: -x, !x
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.MINUS_OP, lexer.NOT_OP)

	// Method-context keywords: this, super.method
	par.registerUnaryFuncs(par.parseThisExpression, lexer.THIS_KEY)
	par.registerUnaryFuncs(par.parseSuperExpression, lexer.SUPER_KEY)

	// Register binary/infix parsing functions

	// Arithmetic: + - * /
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP)

	// Equality and comparison: == != < <= > >=
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.EQ_OP, lexer.NE_OP, lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP)

	// Short-circuit logic: and, or
	par.registerBinaryFuncs(par.parseLogicalExpression, lexer.AND_KEY, lexer.OR_KEY)

	// Assignment: x = v, obj.field = v (right-associative)
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.ASSIGN_OP)

	// Postfix-like forms: calls and property access
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)
	par.registerBinaryFuncs(par.parseGetExpression, lexer.DOT_OP)

	// Prime the two-token lookahead
	par.Advance()
	par.Advance()
}

// registerUnaryFuncs associates a prefix parse function with token types.
func (par *Parser) registerUnaryFuncs(fn unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = fn
	}
}

// registerBinaryFuncs associates an infix parse function with token types.
func (par *Parser) registerBinaryFuncs(fn binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = fn
	}
}

// Parse processes the whole token stream and returns the program root.
//
// Each top-level declaration is parsed in turn; when a declaration fails,
// panic-mode recovery skips to the next statement boundary and parsing
// resumes, so a single pass reports as many errors as possible. The
// returned AST is the best-effort list of statements that parsed cleanly.
//
// After the pass, lexical errors collected by the lexer are merged in front
// of the parser's own errors (scan errors happened first). Callers must not
// execute the program when Errors is non-empty.
//
// Returns:
//
//	*RootNode - the program root holding all successfully parsed statements
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: make([]StatementNode, 0)}

	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseDeclaration()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		par.Advance()
	}

	// Scan errors precede parse errors in the report
	if len(par.Lex.Errors) > 0 {
		par.Errors = append(append([]string{}, par.Lex.Errors...), par.Errors...)
	}

	return root
}
