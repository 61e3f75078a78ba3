/*
File    : go-lox/eval/eval_classes_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/go-lox/objects"
)

// TestEvaluator_Classes verifies instances, fields, methods and 'this'
func TestEvaluator_Classes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "class and instance print forms",
			input:    `class Bagel {} print Bagel; print Bagel();`,
			expected: "Bagel\nBagel instance\n",
		},
		{
			name:     "fields are created on write",
			input:    `class Bag {} var b = Bag(); b.x = 1; b.y = b.x + 2; print b.y;`,
			expected: "3\n",
		},
		{
			name: "methods see the instance through this",
			input: `
class Person {
  greet() {
    print "Hi, " + this.name + "!";
  }
}
var p = Person();
p.name = "Ada";
p.greet();`,
			expected: "Hi, Ada!\n",
		},
		{
			name: "bound method keeps its receiver",
			input: `
class Cake {
  flavor() {
    print this.kind;
  }
}
var cake = Cake();
cake.kind = "chocolate";
var m = cake.flavor;
m();`,
			expected: "chocolate\n",
		},
		{
			name: "fields shadow methods once written",
			input: `
class Box {
  label() {
    return "method";
  }
}
var box = Box();
print box.label();
box.label = "field";
print box.label;`,
			expected: "method\nfield\n",
		},
		{
			name: "instances are shared by reference",
			input: `
class Shared {}
var a = Shared();
var b = a;
a.value = 42;
print b.value;`,
			expected: "42\n",
		},
		{
			name: "cyclic fields are allowed",
			input: `
class Node {}
var n = Node();
n.next = n;
print n.next.next == n;`,
			expected: "true\n",
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

// TestEvaluator_Initializers verifies construction and init semantics
func TestEvaluator_Initializers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "init runs with constructor arguments",
			input: `
class Foo {
  init(x, y) {
    this.x = this.bar(x);
    this.y = y + 2;
  }
  bar(z) {
    return z * 2;
  }
}
var f = Foo(5, 6);
print f.x;
print f.y;`,
			expected: "10\n8\n",
		},
		{
			name: "bare return in init yields the instance",
			input: `
class Early {
  init() {
    this.done = true;
    return;
    this.done = false;
  }
}
print Early().done;`,
			expected: "true\n",
		},
		{
			name: "calling init again returns the same instance",
			input: `
class Counter {
  init() {
    this.n = 0;
  }
}
var c = Counter();
c.n = 5;
var d = c.init();
print d == c;
print c.n;`,
			expected: "true\n0\n",
		},
		{
			name: "inherited init runs for subclass construction",
			input: `
class Base {
  init(v) {
    this.v = v;
  }
}
class Derived < Base {}
print Derived(7).v;`,
			expected: "7\n",
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

// TestEvaluator_Inheritance verifies method inheritance and super dispatch
func TestEvaluator_Inheritance(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "inherited method invokes the ancestor's definition",
			input: `
class Doughnut {
  cook() {
    print "Fry until golden brown.";
  }
}
class BostonCream < Doughnut {}
BostonCream().cook();`,
			expected: "Fry until golden brown.\n",
		},
		{
			name: "super calls the superclass method bound to this",
			input: `
class Doughnut {
  cook() {
    print "Fry until golden brown.";
  }
}
class BostonCream < Doughnut {
  cook() {
    super.cook();
    print "Pipe full of custard and coat with chocolate.";
  }
}
BostonCream().cook();`,
			expected: "Fry until golden brown.\nPipe full of custard and coat with chocolate.\n",
		},
		{
			name: "super skips the override even via an inherited caller",
			input: `
class A {
  method() {
    print "A method";
  }
}
class B < A {
  method() {
    print "B method";
  }
  test() {
    super.method();
  }
}
class C < B {}
C().test();`,
			expected: "A method\n",
		},
		{
			name: "super sees this of the actual receiver",
			input: `
class Base {
  name() {
    return this.who;
  }
}
class Sub < Base {
  name() {
    return "sub " + super.name();
  }
}
var s = Sub();
s.who = "ada";
print s.name();`,
			expected: "sub ada\n",
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

// TestEvaluator_ClassRuntimeErrors verifies the class-related runtime
// error taxonomy
func TestEvaluator_ClassRuntimeErrors(t *testing.T) {
	tests := []struct {
		input       string
		expectedMsg string
	}{
		{`var x = 1; print x.field;`, "Only instances have properties."},
		{`var x = 1; x.field = 2;`, "Only instances have fields."},
		{`class Empty {} print Empty().missing;`, "Undefined property 'missing'."},
		{`var NotAClass = 1; class Sub < NotAClass {}`, "Superclass must be a class."},
		{`class Foo { init(x) {} } Foo();`, "Expected 1 arguments but got 0."},
		{`class Bare {} Bare(1);`, "Expected 0 arguments but got 1."},
		{
			`class D { m() {} } class B < D { m() { super.gone(); } } B().m();`,
			"Undefined property 'gone'.",
		},
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
	}
}
