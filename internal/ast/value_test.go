package ast

import "testing"

func TestStringValueDisplay(t *testing.T) {
	v := StringValue{Text: "demo"}
	if got, want := v.Display(), `"demo"`; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
	as, err := v.AsValue()
	if err != nil {
		t.Fatalf("AsValue() error = %v", err)
	}
	if as.(string) != "demo" {
		t.Errorf("AsValue() = %v, want %q", as, "demo")
	}
}

func TestNumberValueDisplay(t *testing.T) {
	v := NumberValue{N: 42}
	if got, want := v.Display(), "42"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestEmptyValueAsValueErrors(t *testing.T) {
	if _, err := (EmptyValue{}).AsValue(); err == nil {
		t.Errorf("AsValue() error = nil, want error for EmptyValue")
	}
}

func TestErrorValueAsValueReturnsError(t *testing.T) {
	v := ErrorValue{Message: "went wrong"}
	_, err := v.AsValue()
	if err == nil || err.Error() != "went wrong" {
		t.Errorf("AsValue() error = %v, want %q", err, "went wrong")
	}
}

func TestVariableValueDisplay(t *testing.T) {
	v := VariableValue{Name: "x"}
	if got, want := v.Display(), "$x"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestArrayValueDisplay(t *testing.T) {
	v := ArrayValue{Items: []Value{StringValue{Text: "a"}, NumberValue{N: 1}}}
	if got, want := v.Display(), `["a", 1]`; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestObjectValueLookup(t *testing.T) {
	v := ObjectValue{Entries: []ObjectEntry{
		{Key: "a", Value: StringValue{Text: "1"}},
		{Key: "b", Value: NumberValue{N: 2}},
	}}
	got, ok := v.Lookup("b")
	if !ok {
		t.Fatalf("Lookup(%q) ok = false", "b")
	}
	if got.Display() != "2" {
		t.Errorf("Lookup(%q) = %v, want Display() == \"2\"", "b", got)
	}
	if _, ok := v.Lookup("missing"); ok {
		t.Errorf("Lookup(%q) ok = true, want false", "missing")
	}
}

func TestPatternValueDisplayJoinsFunctionNamesOnly(t *testing.T) {
	v := PatternValue{Rule: PatternRule{
		Regex: ".*.java",
		Processors: []Processor{
			{Func: Grep{Patterns: []string{"error.log"}}},
			{Func: Sort{}},
		},
	}}
	if got, want := v.Display(), ".*.java -> grep, sort"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestCaseMatchValueDisplayPanicsOnNonPattern(t *testing.T) {
	v := CaseMatchValue{Entries: []CaseMatchEntry{
		{Key: "k", Value: StringValue{Text: "not a pattern"}},
	}}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Display() did not panic on non-Pattern entry")
		}
	}()
	_ = v.Display()
}

func TestExpressionValueAsValueErrors(t *testing.T) {
	v := ExpressionValue{Stmt: ValueStmt{Val: BooleanValue{B: true}}}
	if _, err := v.AsValue(); err == nil {
		t.Errorf("AsValue() error = nil, want error for ExpressionValue")
	}
	if v.Display() != "true" {
		t.Errorf("Display() = %q, want %q", v.Display(), "true")
	}
}

func TestQueryStatementValueDisplay(t *testing.T) {
	v := QueryStatementValue{Query: QueryStatement{
		From:   []VariableElement{{Name: "x"}, {Name: "y"}},
		Where:  ValueStmt{Val: BooleanValue{B: true}},
		Select: []Statement{ValueStmt{Val: StringValue{Text: "x"}}},
	}}
	got := v.Display()
	want := "from {\n    x, y\n}\nwhere {\n    true\n}\nselect \"x\""
	if got != want {
		t.Errorf("Display() =\n%q\nwant\n%q", got, want)
	}
}
