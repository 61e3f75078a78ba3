/*
File    : go-lox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens (EOF excluded)
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
			},
		},
		{
			Input: ` { } + ( )  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: ` <= >= == != < > = ! `,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(GE_OP, ">="),
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(LT_OP, "<"),
				NewToken(GT_OP, ">"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NOT_OP, "!"),
			},
		},
		{
			Input: `fun class if else for while abc123 "hello!" __KEY__`,
			ExpectedTokens: []Token{
				NewToken(FUN_KEY, "fun"),
				NewToken(CLASS_KEY, "class"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(FOR_KEY, "for"),
				NewToken(WHILE_KEY, "while"),
				NewToken(IDENTIFIER_ID, "abc123"),
				NewToken(STRING_LIT, "hello!"),
				NewToken(IDENTIFIER_ID, "__KEY__"),
			},
		},
		{
			Input: `var x = 1.25; print x.y;`,
			ExpectedTokens: []Token{
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "1.25"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(PRINT_KEY, "print"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			// a trailing '.' is not part of the number literal
			Input: `123. .5`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(DOT_OP, "."),
				NewToken(DOT_OP, "."),
				NewToken(NUMBER_LIT, "5"),
			},
		},
		{
			Input: `and or nil this super true false return`,
			ExpectedTokens: []Token{
				NewToken(AND_KEY, "and"),
				NewToken(OR_KEY, "or"),
				NewToken(NIL_KEY, "nil"),
				NewToken(THIS_KEY, "this"),
				NewToken(SUPER_KEY, "super"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(RETURN_KEY, "return"),
			},
		},
		{
			// comments run to the end of the line
			Input: "1 + 2 // this is ignored\n- 3",
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "3"),
			},
		},
	}

	for _, test := range tests {
		lexer := NewLexer(test.Input)
		gotTokens := lexer.ConsumeTokens()
		// drop the trailing EOF for comparison
		assert.Equal(t, EOF_TYPE, gotTokens[len(gotTokens)-1].Type)
		gotTokens = gotTokens[:len(gotTokens)-1]
		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens), "input: %s", test.Input)
		for i, token := range test.ExpectedTokens {
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
		assert.Empty(t, lexer.Errors)
	}
}

// TestNewLexer_LineTracking verifies that tokens carry the correct source line
func TestNewLexer_LineTracking(t *testing.T) {
	lexer := NewLexer("var a = 1;\nvar b = 2;\n// comment\nprint c;")
	tokens := lexer.ConsumeTokens()

	lines := map[string]int{}
	for _, tok := range tokens {
		if tok.Type == IDENTIFIER_ID || tok.Type == PRINT_KEY {
			lines[tok.Literal] = tok.Line
		}
	}
	assert.Equal(t, 1, lines["a"])
	assert.Equal(t, 2, lines["b"])
	assert.Equal(t, 4, lines["print"])
	assert.Equal(t, 4, lines["c"])
}

// TestNewLexer_MultiLineString verifies that string literals may span lines
// and keep their content verbatim (no escape processing)
func TestNewLexer_MultiLineString(t *testing.T) {
	lexer := NewLexer("\"one\ntwo\\n\"")
	tokens := lexer.ConsumeTokens()

	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, "one\ntwo\\n", tokens[0].Literal)
	assert.Empty(t, lexer.Errors)
}

// TestNewLexer_Errors verifies error collection for bad input.
// Scanning continues past an error so one pass reports every problem.
func TestNewLexer_Errors(t *testing.T) {
	tests := []struct {
		Input          string
		ExpectedErrors []string
	}{
		{
			Input:          `var a = @;`,
			ExpectedErrors: []string{"[line 1] Error: Unexpected character: '@'"},
		},
		{
			Input:          "#\n$",
			ExpectedErrors: []string{"[line 1] Error: Unexpected character: '#'", "[line 2] Error: Unexpected character: '$'"},
		},
		{
			Input:          `"no closing quote`,
			ExpectedErrors: []string{"[line 1] Error: Unterminated string."},
		},
	}

	for _, test := range tests {
		lexer := NewLexer(test.Input)
		lexer.ConsumeTokens()
		assert.Equal(t, test.ExpectedErrors, lexer.Errors)
	}
}
