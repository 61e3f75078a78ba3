/*
File    : go-lox/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// isWhitespace checks if the given byte is a whitespace character.
// Lox treats space, tab, carriage return and newline as insignificant.
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\t' || curr == '\r' || curr == '\n'
}

// isNumeric checks if the given byte is an ASCII decimal digit (0-9).
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII alphabetic character (a-z, A-Z).
// Identifiers in Lox are ASCII-only; the underscore is handled by the callers.
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isAlphanumeric checks if the given byte may continue an identifier:
// an ASCII letter, digit, or underscore.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr) || curr == '_'
}

// readStringLiteral scans a string literal starting at the opening quote.
//
// Lox strings have no escape sequences and may span multiple lines; every
// byte up to the closing quote is taken verbatim. The produced token's
// Literal holds the string content without the surrounding quotes, and its
// Line/Column point at the opening quote.
//
// If the end of the source is reached before a closing quote, an
// "Unterminated string." error is recorded and an INVALID token returned,
// letting the scan continue so later errors still surface in the same pass.
func readStringLiteral(lex *Lexer) Token {
	startLine := lex.Line
	startColumn := lex.Column

	// Skip the opening quote
	lex.Advance()

	start := lex.Position
	for lex.Current != '"' && lex.Current != 0 {
		lex.Advance()
	}

	if lex.Current == 0 {
		// Ran off the end of the source without a closing quote
		lex.AddError(startLine, "Unterminated string.")
		return NewTokenWithMetadata(INVALID_TYPE, lex.Src[start:lex.Position], startLine, startColumn)
	}

	literal := lex.Src[start:lex.Position]

	// Skip the closing quote
	lex.Advance()

	return NewTokenWithMetadata(STRING_LIT, literal, startLine, startColumn)
}

// readNumber scans a number literal starting at the current digit.
//
// A Lox number is one or more digits with at most one fractional part:
// digits '.' digits. A trailing '.' is not consumed as part of the number
// (so "123." scans as the number 123 followed by a dot token), and a
// leading '.' never reaches this function because '.' is its own token.
//
// The token's Literal holds the exact source text of the number; conversion
// to a float64 happens in the parser.
func readNumber(lex *Lexer) Token {
	startLine := lex.Line
	startColumn := lex.Column

	start := lex.Position
	for isNumeric(lex.Current) {
		lex.Advance()
	}

	// A fractional part requires a digit after the dot
	if lex.Current == '.' && isNumeric(lex.Peek()) {
		lex.Advance() // consume '.'
		for isNumeric(lex.Current) {
			lex.Advance()
		}
	}

	return NewTokenWithMetadata(NUMBER_LIT, lex.Src[start:lex.Position], startLine, startColumn)
}

// readIdentifier scans an identifier or keyword starting at the current
// character. Identifiers match [A-Za-z_][A-Za-z_0-9]*. After scanning, the
// text is checked against KEYWORDS_MAP: a match promotes the token to the
// corresponding keyword type, otherwise it is a plain identifier.
func readIdentifier(lex *Lexer) Token {
	startLine := lex.Line
	startColumn := lex.Column

	start := lex.Position
	for isAlphanumeric(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	if keyword, ok := KEYWORDS_MAP[literal]; ok {
		return NewTokenWithMetadata(keyword, literal, startLine, startColumn)
	}
	return NewTokenWithMetadata(IDENTIFIER_ID, literal, startLine, startColumn)
}
