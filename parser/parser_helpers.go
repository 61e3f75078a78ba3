/*
File    : go-lox/parser/parser_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-lox/lexer"
)

// Advance moves the token window one token forward: the lookahead becomes
// the current token and a fresh token is pulled from the lexer. Once the
// lexer is exhausted it keeps producing EOF, so advancing past the end is
// safe.
func (par *Parser) Advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// currIs reports whether the current token has the given type.
func (par *Parser) currIs(tokenType lexer.TokenType) bool {
	return par.CurrToken.Type == tokenType
}

// nextIs reports whether the lookahead token has the given type.
func (par *Parser) nextIs(tokenType lexer.TokenType) bool {
	return par.NextToken.Type == tokenType
}

// expectNext consumes the lookahead token when it has the expected type.
// Otherwise it records a parse error at the lookahead and leaves the token
// window unchanged (the caller's surrounding parseDeclaration will enter
// panic-mode recovery because the error count grew).
//
// Parameters:
//   - tokenType: The expected lookahead type
//   - message: Error message used when the expectation fails
//
// Returns:
//   - bool: true when the token was consumed
func (par *Parser) expectNext(tokenType lexer.TokenType, message string) bool {
	if par.nextIs(tokenType) {
		par.Advance()
		return true
	}
	par.addErrorAt(par.NextToken, message)
	return false
}

// addErrorAt records a parse error located at the given token, in the
// interpreter's static error format: "[line N] Error at 'lexeme': message"
// (or "at end" for the EOF token).
func (par *Parser) addErrorAt(token lexer.Token, message string) {
	if token.Type == lexer.EOF_TYPE {
		par.Errors = append(par.Errors, fmt.Sprintf("[line %d] Error at end: %s", token.Line, message))
		return
	}
	par.Errors = append(par.Errors, fmt.Sprintf("[line %d] Error at '%s': %s", token.Line, token.Literal, message))
}

// synchronize implements panic-mode recovery: after a parse error, tokens
// are skipped until a likely statement boundary so parsing can resume and
// further errors can be reported. The window stops ON the boundary token
// (a semicolon, or the token right before a declaration keyword); the main
// parse loop's Advance then lands on the start of the next statement.
func (par *Parser) synchronize() {
	for par.CurrToken.Type != lexer.EOF_TYPE {
		if par.currIs(lexer.SEMICOLON_DELIM) {
			return
		}
		switch par.NextToken.Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY,
			lexer.EOF_TYPE:
			return
		}
		par.Advance()
	}
}
