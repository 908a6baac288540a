package evaluator

import (
	"testing"

	"github.com/shire-lang/shire-core/internal/ast"
)

func call(receiver ast.Value, method string, args ...ast.Value) (EvalValue, error) {
	return Evaluate(ast.MethodCall{Receiver: receiver, Method: ast.IdentifierValue{Name: method}, Args: args}, Scope{})
}

func TestMethodTrim(t *testing.T) {
	got, err := call(ast.StringValue{Text: "  padded  "}, "trim")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if text, _ := got.Text(); text != "padded" {
		t.Errorf("trim = %q, want %q", text, "padded")
	}
}

func TestMethodContains(t *testing.T) {
	got, err := call(ast.StringValue{Text: "hello world"}, "contains", ast.StringValue{Text: "wor"})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if b, _ := got.Bool(); !b {
		t.Errorf("contains = false, want true")
	}
}

func TestMethodEndsWith(t *testing.T) {
	got, err := call(ast.StringValue{Text: "report.log"}, "endsWith", ast.StringValue{Text: ".log"})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if b, _ := got.Bool(); !b {
		t.Errorf("endsWith = false, want true")
	}
}

func TestMethodLowercaseUppercase(t *testing.T) {
	got, err := call(ast.StringValue{Text: "MiXeD"}, "lowercase")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if text, _ := got.Text(); text != "mixed" {
		t.Errorf("lowercase = %q, want %q", text, "mixed")
	}

	got, err = call(ast.StringValue{Text: "MiXeD"}, "uppercase")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if text, _ := got.Text(); text != "MIXED" {
		t.Errorf("uppercase = %q, want %q", text, "MIXED")
	}
}

func TestMethodIsEmptyIsNotEmpty(t *testing.T) {
	got, _ := call(ast.StringValue{Text: ""}, "isEmpty")
	if b, _ := got.Bool(); !b {
		t.Errorf("isEmpty on \"\" = false, want true")
	}
	got, _ = call(ast.StringValue{Text: "x"}, "isNotEmpty")
	if b, _ := got.Bool(); !b {
		t.Errorf("isNotEmpty on \"x\" = false, want true")
	}
}

func TestMethodFirstLast(t *testing.T) {
	got, err := call(ast.StringValue{Text: "hello"}, "first")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if text, _ := got.Text(); text != "h" {
		t.Errorf("first = %q, want %q", text, "h")
	}

	got, err = call(ast.StringValue{Text: "hello"}, "last")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if text, _ := got.Text(); text != "o" {
		t.Errorf("last = %q, want %q", text, "o")
	}
}

func TestMethodFirstLastOnEmptyErrors(t *testing.T) {
	if _, err := call(ast.StringValue{Text: ""}, "first"); err == nil {
		t.Errorf("first on empty text: error = nil, want EmptyInputError")
	}
	if _, err := call(ast.StringValue{Text: ""}, "last"); err == nil {
		t.Errorf("last on empty text: error = nil, want EmptyInputError")
	}
}

func TestMethodMatches(t *testing.T) {
	got, err := call(ast.StringValue{Text: "build-42.log"}, "matches", ast.StringValue{Text: `^build-\d+\.log$`})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if b, _ := got.Bool(); !b {
		t.Errorf("matches = false, want true")
	}
}

func TestMethodUnknownErrors(t *testing.T) {
	if _, err := call(ast.StringValue{Text: "x"}, "frobnicate"); err == nil {
		t.Errorf("unknown method: error = nil, want UnknownMethodError")
	}
}

func TestMethodReceiverMustBeStringOrVariable(t *testing.T) {
	stmt := ast.MethodCall{Receiver: ast.NumberValue{N: 1}, Method: ast.IdentifierValue{Name: "length"}}
	if _, err := Evaluate(stmt, Scope{}); err == nil {
		t.Errorf("non-string/variable receiver: error = nil, want TypeError")
	}
}
