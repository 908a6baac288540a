package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// PatternActionFunction is the closed enumeration of named pipeline
// transformation operations. FuncName returns the bare pipeline
// identifier used to parse and re-identify the call (e.g. "grep", "sed");
// Display renders its canonical textual form.
type PatternActionFunction interface {
	Display() string
	FuncName() string
	isPatternActionFunction()
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strconv.Quote(s)
	}
	return out
}

func debugList(ss []string) string {
	return "[" + strings.Join(quoteAll(ss), ", ") + "]"
}

// CaseKeyValuePair is the (key, value) argument shape used by the
// CaseMatch pattern-action function; it is distinct from the statement
// model's CaseKeyValueStmt, which carries full Values rather than bare
// argument text.
type CaseKeyValuePair struct{ Key, Value string }

type Prompt struct{ Message string }

func (Prompt) isPatternActionFunction() {}
func (Prompt) FuncName() string         { return "prompt" }
func (p Prompt) Display() string        { return fmt.Sprintf("Prompt { message: %s }", strconv.Quote(p.Message)) }

type Grep struct{ Patterns []string }

func (Grep) isPatternActionFunction() {}
func (Grep) FuncName() string         { return "grep" }
func (g Grep) Display() string        { return fmt.Sprintf("Grep { patterns: %s }", debugList(g.Patterns)) }

type Sed struct {
	Pattern     string
	Replacement string
	IsRegex     bool
}

func (Sed) isPatternActionFunction() {}
func (Sed) FuncName() string         { return "sed" }
func (s Sed) Display() string {
	return fmt.Sprintf("Sed { pattern: %s, replacement: %s, is_regex: %t }",
		strconv.Quote(s.Pattern), strconv.Quote(s.Replacement), s.IsRegex)
}

type Sort struct{ Args []string }

func (Sort) isPatternActionFunction() {}
func (Sort) FuncName() string         { return "sort" }
func (s Sort) Display() string        { return fmt.Sprintf("Sort { arguments: %s }", debugList(s.Args)) }

type Uniq struct{ Texts []string }

func (Uniq) isPatternActionFunction() {}
func (Uniq) FuncName() string         { return "uniq" }
func (u Uniq) Display() string        { return fmt.Sprintf("Uniq { texts: %s }", debugList(u.Texts)) }

type Head struct{ N int }

func (Head) isPatternActionFunction() {}
func (Head) FuncName() string         { return "head" }
func (h Head) Display() string        { return fmt.Sprintf("Head { number: %d }", h.N) }

type Tail struct{ N int }

func (Tail) isPatternActionFunction() {}
func (Tail) FuncName() string         { return "tail" }
func (t Tail) Display() string        { return fmt.Sprintf("Tail { number: %d }", t.N) }

type Xargs struct{ Variables []string }

func (Xargs) isPatternActionFunction() {}
func (Xargs) FuncName() string         { return "xargs" }
func (x Xargs) Display() string        { return fmt.Sprintf("Xargs { variables: %s }", debugList(x.Variables)) }

type Print struct{ Texts []string }

func (Print) isPatternActionFunction() {}
func (Print) FuncName() string         { return "print" }
func (p Print) Display() string        { return fmt.Sprintf("Print { texts: %s }", debugList(p.Texts)) }

type Cat struct{ Paths []string }

func (Cat) isPatternActionFunction() {}
func (Cat) FuncName() string         { return "cat" }
func (c Cat) Display() string        { return fmt.Sprintf("Cat { paths: %s }", debugList(c.Paths)) }

type From struct{ Variables []string }

func (From) isPatternActionFunction() {}
func (From) FuncName() string         { return "from" }
func (f From) Display() string        { return fmt.Sprintf("From { variables: %s }", debugList(f.Variables)) }

type Where struct{ Stmt Statement }

func (Where) isPatternActionFunction() {}
func (Where) FuncName() string         { return "where" }
func (w Where) Display() string {
	body := ""
	if w.Stmt != nil {
		body = w.Stmt.Display()
	}
	return fmt.Sprintf("Where { statement: %s }", body)
}

type Select struct{ Stmts []Statement }

func (Select) isPatternActionFunction() {}
func (Select) FuncName() string         { return "select" }
func (s Select) Display() string {
	parts := make([]string, len(s.Stmts))
	for i, st := range s.Stmts {
		parts[i] = st.Display()
	}
	return fmt.Sprintf("Select { statements: [%s] }", strings.Join(parts, ", "))
}

type ExecuteShire struct {
	Filename      string
	VariableNames []string
}

func (ExecuteShire) isPatternActionFunction() {}
func (ExecuteShire) FuncName() string         { return "executeShire" }
func (e ExecuteShire) Display() string {
	return fmt.Sprintf("ExecuteShire { filename: %s, variable_names: %s }",
		strconv.Quote(e.Filename), debugList(e.VariableNames))
}

type Notify struct{ Message string }

func (Notify) isPatternActionFunction() {}
func (Notify) FuncName() string         { return "notify" }
func (n Notify) Display() string        { return fmt.Sprintf("Notify { message: %s }", strconv.Quote(n.Message)) }

type CaseMatchFunc struct{ KeyValues []CaseKeyValuePair }

func (CaseMatchFunc) isPatternActionFunction() {}
func (CaseMatchFunc) FuncName() string         { return "caseMatch" }
func (c CaseMatchFunc) Display() string {
	parts := make([]string, len(c.KeyValues))
	for i, kv := range c.KeyValues {
		parts[i] = fmt.Sprintf("(%s, %s)", strconv.Quote(kv.Key), strconv.Quote(kv.Value))
	}
	return fmt.Sprintf("CaseMatch { key_value: [%s] }", strings.Join(parts, ", "))
}

type Splitting struct{ Paths []string }

func (Splitting) isPatternActionFunction() {}
func (Splitting) FuncName() string         { return "splitting" }
func (s Splitting) Display() string        { return fmt.Sprintf("Splitting { paths: %s }", debugList(s.Paths)) }

type Embedding struct{ Entries []string }

func (Embedding) isPatternActionFunction() {}
func (Embedding) FuncName() string         { return "embedding" }
func (e Embedding) Display() string {
	return fmt.Sprintf("Embedding { entries: %s }", debugList(e.Entries))
}

type Searching struct {
	Text      string
	Threshold float64
}

func (Searching) isPatternActionFunction() {}
func (Searching) FuncName() string         { return "searching" }
func (s Searching) Display() string {
	return fmt.Sprintf("Searching { text: %s, threshold: %v }", strconv.Quote(s.Text), s.Threshold)
}

type Caching struct{ Text string }

func (Caching) isPatternActionFunction() {}
func (Caching) FuncName() string         { return "caching" }
func (c Caching) Display() string        { return fmt.Sprintf("Caching { text: %s }", strconv.Quote(c.Text)) }

type Reranking struct{ Kind string }

func (Reranking) isPatternActionFunction() {}
func (Reranking) FuncName() string         { return "reranking" }
func (r Reranking) Display() string        { return fmt.Sprintf("Reranking { type: %s }", strconv.Quote(r.Kind)) }

type Redact struct{ Strategy string }

func (Redact) isPatternActionFunction() {}
func (Redact) FuncName() string         { return "redact" }
func (r Redact) Display() string        { return fmt.Sprintf("Redact { strategy: %s }", strconv.Quote(r.Strategy)) }

type Crawl struct{ Urls []string }

func (Crawl) isPatternActionFunction() {}
func (Crawl) FuncName() string         { return "crawl" }
func (c Crawl) Display() string        { return fmt.Sprintf("Crawl { urls: %s }", debugList(c.Urls)) }

type Capture struct {
	FileName string
	NodeType string
}

func (Capture) isPatternActionFunction() {}
func (Capture) FuncName() string         { return "capture" }
func (c Capture) Display() string {
	return fmt.Sprintf("Capture { file_name: %s, node_type: %s }", strconv.Quote(c.FileName), strconv.Quote(c.NodeType))
}

type Thread struct {
	FileName      string
	VariableNames []string
}

func (Thread) isPatternActionFunction() {}
func (Thread) FuncName() string         { return "thread" }
func (t Thread) Display() string {
	return fmt.Sprintf("Thread { file_name: %s, variable_names: %s }", strconv.Quote(t.FileName), debugList(t.VariableNames))
}

// JsonPath's Obj is optional: nil means "apply to the implicit current
// value" rather than a named object.
type JsonPath struct {
	Obj  *string
	Path string
}

func (JsonPath) isPatternActionFunction() {}
func (JsonPath) FuncName() string         { return "jsonPath" }
func (j JsonPath) Display() string {
	obj := "None"
	if j.Obj != nil {
		obj = fmt.Sprintf("Some(%s)", strconv.Quote(*j.Obj))
	}
	return fmt.Sprintf("JsonPath { obj: %s, path: %s }", obj, strconv.Quote(j.Path))
}

// ToolchainFunction is the open escape hatch for toolchain-registered
// functions. Unlike every other variant, its Display renders as a call
// expression, not a debug struct dump.
type ToolchainFunction struct {
	Name string
	Args []string
}

func (ToolchainFunction) isPatternActionFunction() {}
func (t ToolchainFunction) FuncName() string        { return t.Name }
func (t ToolchainFunction) Display() string {
	return fmt.Sprintf("%s(%s)", t.Name, strings.Join(t.Args, ", "))
}
