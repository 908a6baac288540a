// Package ast defines the closed value, pattern-action, and statement
// models the Shire parser produces. Value, PatternActionFunction, and
// Statement live in one package, keeping cross-referencing closed
// enumerations together rather than splitting them across packages and
// fighting forward-declaration order: Value wraps Statement
// (ExpressionValue) and Statement operands are Values (Comparison,
// MethodCall), so there is no acyclic package split that doesn't
// introduce an import cycle.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the closed set of runtime/AST values Shire programs produce.
// Every variant renders back to source-like text via Display and exposes
// its underlying Go value via AsValue.
type Value interface {
	// Display renders the value back to source-like text.
	Display() string
	// AsValue returns the value's underlying Go value, or an error for
	// the variants that carry none (Empty, Error, Expression).
	AsValue() (interface{}, error)
	isValue()
}

// StringValue is a string literal.
type StringValue struct{ Text string }

func (v StringValue) isValue() {}
func (v StringValue) Display() string          { return `"` + v.Text + `"` }
func (v StringValue) AsValue() (interface{}, error) { return v.Text, nil }

// NumberValue is a 32-bit signed integer literal.
type NumberValue struct{ N int32 }

func (v NumberValue) isValue() {}
func (v NumberValue) Display() string          { return strconv.FormatInt(int64(v.N), 10) }
func (v NumberValue) AsValue() (interface{}, error) { return v.N, nil }

// DateValue is a date literal carried as opaque text; the core does not
// interpret calendar semantics or support date arithmetic.
type DateValue struct{ Text string }

func (v DateValue) isValue() {}
func (v DateValue) Display() string          { return v.Text }
func (v DateValue) AsValue() (interface{}, error) { return v.Text, nil }

// BooleanValue is a boolean literal.
type BooleanValue struct{ B bool }

func (v BooleanValue) isValue() {}
func (v BooleanValue) Display() string          { return strconv.FormatBool(v.B) }
func (v BooleanValue) AsValue() (interface{}, error) { return v.B, nil }

// EmptyValue is the absent-value marker.
type EmptyValue struct{}

func (v EmptyValue) isValue() {}
func (v EmptyValue) Display() string { return "" }
func (v EmptyValue) AsValue() (interface{}, error) {
	return nil, fmt.Errorf("empty value has no scalar accessor")
}

// ErrorValue carries a textual error produced during parsing or
// construction (distinct from diagnostics.Error, which is the Go error
// type returned from functions; ErrorValue is a first-class AST value).
type ErrorValue struct{ Message string }

func (v ErrorValue) isValue() {}
func (v ErrorValue) Display() string { return v.Message }
func (v ErrorValue) AsValue() (interface{}, error) {
	return nil, fmt.Errorf("%s", v.Message)
}

// ArrayValue is an ordered sequence of values.
type ArrayValue struct{ Items []Value }

func (v ArrayValue) isValue() {}
func (v ArrayValue) Display() string {
	parts := make([]string, len(v.Items))
	for i, item := range v.Items {
		parts[i] = item.Display()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (v ArrayValue) AsValue() (interface{}, error) { return v.Items, nil }

// ObjectEntry is a single key/value pair of an ObjectValue. Insertion
// order is preserved for deterministic Display output, though it carries
// no semantic significance.
type ObjectEntry struct {
	Key   string
	Value Value
}

// ObjectValue is a mapping from text key to Value.
type ObjectValue struct{ Entries []ObjectEntry }

func (v ObjectValue) isValue() {}
func (v ObjectValue) Display() string {
	parts := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		parts[i] = fmt.Sprintf("%q: %s", e.Key, e.Value.Display())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (v ObjectValue) AsValue() (interface{}, error) { return v.Entries, nil }

// Lookup returns the value bound to key, if present.
func (v ObjectValue) Lookup(key string) (Value, bool) {
	for _, e := range v.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// IdentifierValue is a bare name referring to a declarative tag.
type IdentifierValue struct{ Name string }

func (v IdentifierValue) isValue() {}
func (v IdentifierValue) Display() string          { return v.Name }
func (v IdentifierValue) AsValue() (interface{}, error) { return v.Name, nil }

// VariableValue is a reference `$name` to a named scope binding.
type VariableValue struct{ Name string }

func (v VariableValue) isValue() {}
func (v VariableValue) Display() string          { return "$" + v.Name }
func (v VariableValue) AsValue() (interface{}, error) { return v.Name, nil }

// Processor is a single pipeline step: a pattern-action function identity
// plus its arguments (the arguments are already bound into the function
// struct itself, per the closed catalogue in patternaction.go).
type Processor struct {
	Func PatternActionFunction
}

// PatternRule is a regex paired with an ordered pipeline of processors. A
// PatternRule's Regex is always non-empty (the parser rejects an empty
// `//` regex in a pattern-action rule); the pipeline may be empty, in which case the rule resolves to the
// un-transformed match.
type PatternRule struct {
	Regex      string
	Processors []Processor
}

// PatternValue wraps a PatternRule as a first-class value.
type PatternValue struct{ Rule PatternRule }

func (v PatternValue) isValue() {}

// Display renders a lossy `{regex} -> {names}` debug form: it joins only
// the processors' function names, not their arguments, and is not a
// round-trippable pipeline render.
func (v PatternValue) Display() string {
	names := make([]string, len(v.Rule.Processors))
	for i, p := range v.Rule.Processors {
		names[i] = p.Func.FuncName()
	}
	return fmt.Sprintf("%s -> %s", v.Rule.Regex, strings.Join(names, ", "))
}
func (v PatternValue) AsValue() (interface{}, error) { return v.Rule, nil }

// CaseMatchEntry is a single key to Value binding of a CaseMatchValue.
// Value must always be a PatternValue; any other variant is a programming
// error, not a parse or evaluation outcome, caught the first time Display
// renders the offending entry. Evaluation does not inspect entries.
type CaseMatchEntry struct {
	Key   string
	Value Value
}

// CaseMatchValue is a mapping from text key to Value, where every Value
// must be a PatternValue.
type CaseMatchValue struct{ Entries []CaseMatchEntry }

func (v CaseMatchValue) isValue() {}

// Display renders `case "$0" { "key" { f | g } ... }`. It panics if any
// entry's Value is not a PatternValue; a violation can only happen via
// direct struct construction bypassing the parser, which is a programming
// error, not a recoverable parse/evaluation condition.
func (v CaseMatchValue) Display() string {
	lines := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		pattern, ok := e.Value.(PatternValue)
		if !ok {
			panic(fmt.Sprintf("CaseMatch entry %q is not a Pattern value: %T", e.Key, e.Value))
		}
		names := make([]string, len(pattern.Rule.Processors))
		for j, p := range pattern.Rule.Processors {
			names[j] = p.Func.FuncName()
		}
		lines[i] = fmt.Sprintf("%q { %s }", e.Key, strings.Join(names, " | "))
	}
	return fmt.Sprintf("case \"$0\" {\n%s\n}", strings.Join(lines, "\n"))
}
func (v CaseMatchValue) AsValue() (interface{}, error) { return v.Entries, nil }

// ExpressionValue wraps a Statement for deferred evaluation.
type ExpressionValue struct{ Stmt Statement }

func (v ExpressionValue) isValue() {}
func (v ExpressionValue) Display() string { return v.Stmt.Display() }
func (v ExpressionValue) AsValue() (interface{}, error) {
	return nil, fmt.Errorf("expression value has no scalar accessor; evaluate it instead")
}

// VariableElement names a single `from` binding in a QueryStatement.
type VariableElement struct{ Name string }

// QueryStatement is a structured from/where/select query.
type QueryStatement struct {
	From   []VariableElement
	Where  Statement
	Select []Statement
}

// QueryStatementValue wraps a QueryStatement as a first-class value.
type QueryStatementValue struct{ Query QueryStatement }

func (v QueryStatementValue) isValue() {}
func (v QueryStatementValue) Display() string {
	names := make([]string, len(v.Query.From))
	for i, e := range v.Query.From {
		names[i] = e.Name
	}
	selects := make([]string, len(v.Query.Select))
	for i, s := range v.Query.Select {
		selects[i] = s.Display()
	}
	where := ""
	if v.Query.Where != nil {
		where = v.Query.Where.Display()
	}
	return fmt.Sprintf("from {\n    %s\n}\nwhere {\n    %s\n}\nselect %s",
		strings.Join(names, ", "), where, strings.Join(selects, ", "))
}
func (v QueryStatementValue) AsValue() (interface{}, error) { return v.Query, nil }
