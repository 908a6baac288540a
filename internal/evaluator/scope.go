// Package evaluator implements pure Statement-to-value evaluation: given
// a parsed ast.Statement and a Scope, it produces a typed EvalValue or a
// diagnostics.Error. It holds no persistent state of its own; every call
// is pure with respect to the Scope it is given.
package evaluator

// Scope is the transient, read-only binding environment supplied at
// evaluation time: a mapping from variable name to text.
type Scope map[string]string

// Lookup returns the text bound to name, or "" if name is unbound — a
// missing key resolves to empty text rather than an error.
func (s Scope) Lookup(name string) string {
	return s[name]
}
