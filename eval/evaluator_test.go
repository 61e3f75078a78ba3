/*
File    : go-lox/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/resolver"
)

// runProgram pushes a source string through the whole pipeline
// (parse -> resolve -> evaluate) with output captured in a buffer.
// Static errors fail the test; the captured output and the value of the
// last evaluated statement are returned.
func runProgram(t *testing.T, src string) (string, objects.LoxObject) {
	t.Helper()

	par := parser.NewParser(src)
	root := par.Parse()
	if len(par.Errors) > 0 {
		t.Fatalf("parse errors for %q: %v", src, par.Errors)
	}

	res := resolver.NewResolver()
	locals := res.Resolve(root)
	if len(res.Errors) > 0 {
		t.Fatalf("resolve errors for %q: %v", src, res.Errors)
	}

	var buf bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&buf)
	ev.AddLocals(locals)
	result := ev.Eval(root)
	return buf.String(), result
}

// TestEvaluator_Numbers verifies number literal evaluation and arithmetic
func TestEvaluator_Numbers(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"2;", 2},
		{"-2;", -2},
		{"1 + 1;", 2},
		{"1 - 3;", -2},
		{"2 * 15;", 30},
		{"15 / 3;", 5},
		{"1 + 2 * 3;", 7},
		{"(1 + 2) * 3;", 9},
		{"5 * 4 / (3 + 2);", 4},
		{"1.5 + 2.25;", 3.75},
		{"--3;", 3},
	}

	for _, tt := range tests {
		_, result := runProgram(t, tt.input)
		if result.GetType() != objects.NumberType {
			t.Errorf("%s: expected %s, got %s", tt.input, objects.NumberType, result.GetType())
			continue
		}
		if result.(*objects.Number).Value != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.input, tt.expected, result.(*objects.Number).Value)
		}
	}
}

// TestEvaluator_Strings verifies string literals and concatenation
func TestEvaluator_Strings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello";`, "hello"},
		{`"foo" + "bar";`, "foobar"},
		{`"Hello" + " " + "World!";`, "Hello World!"},
		{`"" + "";`, ""},
	}

	for _, tt := range tests {
		_, result := runProgram(t, tt.input)
		if result.GetType() != objects.StringType {
			t.Errorf("%s: expected %s, got %s", tt.input, objects.StringType, result.GetType())
			continue
		}
		if result.(*objects.String).Value != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.input, tt.expected, result.(*objects.String).Value)
		}
	}
}

// TestEvaluator_Booleans verifies comparisons, equality and truthiness
func TestEvaluator_Booleans(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true;", true},
		{"false;", false},
		{"1 < 2;", true},
		{"2 <= 2;", true},
		{"3 > 4;", false},
		{"4 >= 4;", true},
		{"1 == 1;", true},
		{"1 != 1;", false},
		{`"a" == "a";`, true},
		{`"a" == "b";`, false},
		{`1 == "1";`, false},
		{"nil == nil;", true},
		{"nil == false;", false},
		{"(0 / 0) == (0 / 0);", false}, // NaN != NaN
		// truthiness: only nil and false are falsey
		{"!nil;", true},
		{"!false;", true},
		{"!true;", false},
		{"!0;", false},
		{`!"";`, false},
		{"!!nil;", false},
		{"!!0;", true},
	}

	for _, tt := range tests {
		_, result := runProgram(t, tt.input)
		if result.GetType() != objects.BooleanType {
			t.Errorf("%s: expected %s, got %s", tt.input, objects.BooleanType, result.GetType())
			continue
		}
		if result.(*objects.Boolean).Value != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.input, tt.expected, result.(*objects.Boolean).Value)
		}
	}
}

// TestEvaluator_Logical verifies that and/or return the deciding operand
// itself and short-circuit the right side
func TestEvaluator_Logical(t *testing.T) {
	tests := []struct {
		input    string
		expected string // printed form of the result value
	}{
		{`nil or 2;`, "2"},
		{`1 or 2;`, "1"},
		{`false or "fallback";`, "fallback"},
		{`nil and 2;`, "nil"},
		{`1 and 2;`, "2"},
		{`false and explodes();`, "false"}, // right side never evaluated
		{`true or explodes();`, "true"},
	}

	for _, tt := range tests {
		_, result := runProgram(t, tt.input)
		if got := result.ToString(); got != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

// TestEvaluator_Programs verifies whole programs against their stdout
func TestEvaluator_Programs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "string concatenation",
			input:    `print "Hello" + " " + "World!";`,
			expected: "Hello World!\n",
		},
		{
			name:     "integer-valued division",
			input:    `print 5 * 4 / (3 + 2);`,
			expected: "4\n",
		},
		{
			name:     "function calls",
			input:    `fun square(x) { return x * x; } print square(3); print square(6);`,
			expected: "9\n36\n",
		},
		{
			name: "counter closure shares its capture",
			input: `
fun makeCounter() {
  var i = 0;
  fun count() {
    i = i + 1;
    print i;
  }
  return count;
}
var counter = makeCounter();
counter();
counter();`,
			expected: "1\n2\n",
		},
		{
			name: "lexical scoping binds at declaration site",
			input: `
var a = "global";
{
  fun showA() {
    print a;
  }
  showA();
  var a = "block";
  showA();
}`,
			expected: "global\nglobal\n",
		},
		{
			name: "two closures share one capture",
			input: `
fun makePair() {
  var n = 0;
  fun set() { n = 10; }
  fun get() { print n; }
  set();
  get();
}
makePair();`,
			expected: "10\n",
		},
		{
			name:     "print forms",
			input:    `print nil; print true; print false; print 2.5; print clock;`,
			expected: "nil\ntrue\nfalse\n2.5\n<native fn>\n",
		},
		{
			name:     "function prints as fn name",
			input:    `fun add(a, b) { return a + b; } print add;`,
			expected: "<fn add>\n",
		},
		{
			name: "if else",
			input: `
if (1 < 2) print "yes"; else print "no";
if (nil) print "truthy"; else print "falsey";`,
			expected: "yes\nfalsey\n",
		},
		{
			name: "while loop",
			input: `
var i = 0;
while (i < 3) {
  print i;
  i = i + 1;
}`,
			expected: "0\n1\n2\n",
		},
		{
			name:     "for loop desugars and runs",
			input:    `for (var i = 0; i < 3; i = i + 1) print i;`,
			expected: "0\n1\n2\n",
		},
		{
			name: "recursion",
			input: `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(10);`,
			expected: "55\n",
		},
		{
			name: "return unwinds through nested blocks and loops",
			input: `
fun find() {
  var i = 0;
  while (true) {
    if (i == 2) {
      return i;
    }
    i = i + 1;
  }
}
print find();`,
			expected: "2\n",
		},
		{
			name:     "bare return yields nil",
			input:    `fun noop() { return; } print noop();`,
			expected: "nil\n",
		},
		{
			name:     "function without return yields nil",
			input:    `fun last() { 42; } print last();`,
			expected: "nil\n",
		},
		{
			name:     "assignment is an expression",
			input:    `var a = 1; print a = 2; print a;`,
			expected: "2\n2\n",
		},
		{
			name:     "argument evaluation is left to right",
			input:    `var s = ""; fun tag(x) { s = s + x; return x; } fun pair(a, b) {} pair(tag("a"), tag("b")); print s;`,
			expected: "ab\n",
		},
	}

	for _, tt := range tests {
		output, result := runProgram(t, tt.input)
		if IsError(result) {
			t.Errorf("%s: unexpected runtime error: %s", tt.name, result.ToString())
			continue
		}
		if output != tt.expected {
			t.Errorf("%s: expected output %q, got %q", tt.name, tt.expected, output)
		}
	}
}

// TestEvaluator_DivisionByZero verifies IEEE semantics: no runtime error
func TestEvaluator_DivisionByZero(t *testing.T) {
	output, result := runProgram(t, `print 1 / 0; print -1 / 0;`)
	if IsError(result) {
		t.Fatalf("unexpected error: %s", result.ToString())
	}
	if output != "+Inf\n-Inf\n" {
		t.Errorf("expected +Inf/-Inf output, got %q", output)
	}
}

// TestEvaluator_RuntimeErrors verifies the runtime error taxonomy with
// message and source line
func TestEvaluator_RuntimeErrors(t *testing.T) {
	tests := []struct {
		input        string
		expectedMsg  string
		expectedLine int
	}{
		{`"a" - 1;`, "Operands must be numbers.", 1},
		{`1 + "a";`, "Operands must be two numbers or two strings.", 1},
		{`"a" < "b";`, "Operands must be numbers.", 1},
		{`-"a";`, "Operand must be a number.", 1},
		{`print missing;`, "Undefined variable 'missing'.", 1},
		{`missing = 1;`, "Undefined variable 'missing'.", 1},
		{`"not a function"();`, "Can only call functions and classes.", 1},
		{`fun f() {} f(1);`, "Expected 0 arguments but got 1.", 1},
		{`fun g(a, b) {} g(1);`, "Expected 2 arguments but got 1.", 1},
		{`clock(1);`, "Expected 0 arguments but got 1.", 1},
		{"var a = 1;\nvar b = 2;\na + \"x\";", "Operands must be two numbers or two strings.", 3},
	}

	for _, tt := range tests {
		_, result := runProgram(t, tt.input)
		err, ok := result.(*objects.Error)
		if !ok {
			t.Errorf("%s: expected runtime error, got %s", tt.input, result.ToObject())
			continue
		}
		if err.Message != tt.expectedMsg {
			t.Errorf("%s: expected message %q, got %q", tt.input, tt.expectedMsg, err.Message)
		}
		if err.Line != tt.expectedLine {
			t.Errorf("%s: expected line %d, got %d", tt.input, tt.expectedLine, err.Line)
		}
	}
}

// TestEvaluator_ErrorsStopExecution verifies that a runtime error aborts
// the remaining statements (no output after the failing one)
func TestEvaluator_ErrorsStopExecution(t *testing.T) {
	output, result := runProgram(t, `print "before"; "a" - 1; print "after";`)
	if !IsError(result) {
		t.Fatal("expected a runtime error")
	}
	if output != "before\n" {
		t.Errorf("expected output to stop at the error, got %q", output)
	}
}

// TestEvaluator_Clock verifies the native clock() returns seconds
func TestEvaluator_Clock(t *testing.T) {
	_, result := runProgram(t, `clock();`)
	if result.GetType() != objects.NumberType {
		t.Fatalf("expected number, got %s", result.GetType())
	}
	// sanity: sometime after 2020-01-01 in epoch seconds
	if result.(*objects.Number).Value < 1577836800 {
		t.Errorf("clock() too small: %v", result.(*objects.Number).Value)
	}
}
