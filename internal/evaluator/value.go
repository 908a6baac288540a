package evaluator

import (
	"fmt"

	"github.com/shire-lang/shire-core/internal/ast"
	"github.com/shire-lang/shire-core/internal/diagnostics"
)

// kind tags the shape an EvalValue actually holds: callers ask for a
// specific kind via the typed accessors (Bool, Text, Int, Processors,
// Pair, PairSeq) and get a typed error on mismatch
// instead of a failed downcast.
type kind int

const (
	kindBool kind = iota
	kindText
	kindInt
	kindProcessors
	kindPair
	kindPairSeq
)

// EvalValue is the tagged union an evaluation produces: Bool, Text, Int,
// Processors, a (Text, Text) Pair, or a (Vec<Text>, Vec<Text>) PairSeq.
type EvalValue struct {
	k      kind
	b      bool
	text   string
	n      int32
	procs  []ast.PatternActionFunction
	pairA  string
	pairB  string
	seqA   []string
	seqB   []string
}

func boolValue(b bool) EvalValue   { return EvalValue{k: kindBool, b: b} }
func textValue(s string) EvalValue { return EvalValue{k: kindText, text: s} }
func intValue(n int32) EvalValue   { return EvalValue{k: kindInt, n: n} }
func processorsValue(fns []ast.PatternActionFunction) EvalValue {
	return EvalValue{k: kindProcessors, procs: fns}
}
func pairValue(a, b string) EvalValue { return EvalValue{k: kindPair, pairA: a, pairB: b} }
func pairSeqValue(a, b []string) EvalValue {
	return EvalValue{k: kindPairSeq, seqA: a, seqB: b}
}

func (v EvalValue) kindName() string {
	switch v.k {
	case kindBool:
		return "Bool"
	case kindText:
		return "Text"
	case kindInt:
		return "Int"
	case kindProcessors:
		return "Processors"
	case kindPair:
		return "Pair"
	case kindPairSeq:
		return "PairSeq"
	default:
		return "?"
	}
}

func (v EvalValue) mismatch(want string) error {
	return diagnostics.NewEvalError(diagnostics.CodeTypeError,
		"expected %s result, got %s", want, v.kindName())
}

// Bool returns the boolean payload, or a TypeError if v is not a Bool.
func (v EvalValue) Bool() (bool, error) {
	if v.k != kindBool {
		return false, v.mismatch("Bool")
	}
	return v.b, nil
}

// Text returns the text payload, or a TypeError if v is not a Text.
func (v EvalValue) Text() (string, error) {
	if v.k != kindText {
		return "", v.mismatch("Text")
	}
	return v.text, nil
}

// Int returns the integer payload, or a TypeError if v is not an Int.
func (v EvalValue) Int() (int32, error) {
	if v.k != kindInt {
		return 0, v.mismatch("Int")
	}
	return v.n, nil
}

// Processors returns the pipeline payload, or a TypeError if v is not a
// Processors result.
func (v EvalValue) Processors() ([]ast.PatternActionFunction, error) {
	if v.k != kindProcessors {
		return nil, v.mismatch("Processors")
	}
	return v.procs, nil
}

// Pair returns the (text, text) payload, or a TypeError if v is not a
// Pair.
func (v EvalValue) Pair() (string, string, error) {
	if v.k != kindPair {
		return "", "", v.mismatch("Pair")
	}
	return v.pairA, v.pairB, nil
}

// PairSeq returns the ([]text, []text) payload, or a TypeError if v is
// not a PairSeq.
func (v EvalValue) PairSeq() ([]string, []string, error) {
	if v.k != kindPairSeq {
		return nil, nil, v.mismatch("PairSeq")
	}
	return v.seqA, v.seqB, nil
}

func (v EvalValue) String() string {
	switch v.k {
	case kindBool:
		return fmt.Sprintf("%t", v.b)
	case kindText:
		return v.text
	case kindInt:
		return fmt.Sprintf("%d", v.n)
	case kindProcessors:
		return fmt.Sprintf("%d processors", len(v.procs))
	case kindPair:
		return fmt.Sprintf("(%s, %s)", v.pairA, v.pairB)
	case kindPairSeq:
		return fmt.Sprintf("(%v, %v)", v.seqA, v.seqB)
	default:
		return ""
	}
}
