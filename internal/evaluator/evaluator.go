package evaluator

import (
	"strings"

	"github.com/shire-lang/shire-core/internal/ast"
	"github.com/shire-lang/shire-core/internal/diagnostics"
)

// Evaluate dispatches stmt to its evaluation rule via a type switch over
// the closed ast.Statement set. The AST carries no Evaluate method of its
// own; switching on node type from this package keeps evaluation
// behavior out of the parse tree.
func Evaluate(stmt ast.Statement, scope Scope) (EvalValue, error) {
	switch s := stmt.(type) {
	case ast.OperatorStmt:
		return textValue(s.Kind.Symbol()), nil
	case ast.StringOperatorStmt:
		return textValue(s.Kind.Symbol()), nil
	case ast.ValueStmt:
		return evalValueStmt(s)
	case ast.Comparison:
		return evalComparison(s, scope)
	case ast.StringComparison:
		return evalStringComparison(s)
	case ast.Logical:
		return evalLogical(s, scope)
	case ast.NotStmt:
		return evalNot(s, scope)
	case ast.MethodCall:
		return evalMethodCall(s, scope)
	case ast.ProcessorStmt:
		return processorsValue(append([]ast.PatternActionFunction(nil), s.Funcs...)), nil
	case ast.CaseKeyValueStmt:
		return pairValue(s.Key.Display(), s.Value.Display()), nil
	case ast.ConditionCase:
		conds := make([]string, len(s.Conditions))
		for i, v := range s.Conditions {
			conds[i] = v.Display()
		}
		cases := make([]string, len(s.Cases))
		for i, v := range s.Cases {
			cases[i] = v.Display()
		}
		return pairSeqValue(conds, cases), nil
	default:
		return EvalValue{}, diagnostics.NewEvalError(diagnostics.CodeTypeError,
			"unevaluable statement type %T", stmt)
	}
}

func evalValueStmt(s ast.ValueStmt) (EvalValue, error) {
	switch v := s.Val.(type) {
	case ast.StringValue:
		return textValue(v.Text), nil
	case ast.DateValue:
		return textValue(v.Text), nil
	case ast.NumberValue:
		return intValue(v.N), nil
	case ast.BooleanValue:
		return boolValue(v.B), nil
	default:
		return EvalValue{}, diagnostics.NewEvalError(diagnostics.CodeTypeError,
			"cannot unwrap value of kind %T", s.Val)
	}
}

// resolveText implements the shared receiver-resolution rule used by
// Comparison's left operand and MethodCall's receiver: a Variable looks
// up scope (missing key resolves to empty text); a String uses its
// literal text; any other kind is a TypeError.
func resolveText(v ast.Value, scope Scope) (string, error) {
	switch val := v.(type) {
	case ast.VariableValue:
		return scope.Lookup(val.Name), nil
	case ast.StringValue:
		return val.Text, nil
	default:
		return "", diagnostics.NewEvalError(diagnostics.CodeTypeError,
			"cannot resolve %T to text", v)
	}
}

func evalComparison(c ast.Comparison, scope Scope) (EvalValue, error) {
	left, err := resolveText(c.Left, scope)
	if err != nil {
		return EvalValue{}, err
	}
	rightStr, ok := c.Right.(ast.StringValue)
	if !ok {
		return EvalValue{}, diagnostics.NewEvalError(diagnostics.CodeTypeError,
			"comparison right operand must be a string, got %T", c.Right)
	}
	right := rightStr.Text
	switch c.Op {
	case ast.OpEq:
		return boolValue(left == right), nil
	case ast.OpNotEq:
		return boolValue(left != right), nil
	case ast.OpLt:
		return boolValue(left < right), nil
	case ast.OpGt:
		return boolValue(left > right), nil
	case ast.OpLe:
		return boolValue(left <= right), nil
	case ast.OpGe:
		return boolValue(left >= right), nil
	default:
		return EvalValue{}, diagnostics.NewEvalError(diagnostics.CodeInvalidOperator,
			"%s is not a valid comparison operator", c.Op.Symbol())
	}
}

// evalStringComparison takes Variable as literal text, not a scope
// lookup — an intentional asymmetry with Comparison, preserved
// bug-compatibly.
func evalStringComparison(c ast.StringComparison) (EvalValue, error) {
	switch c.Op {
	case ast.StrOpContains:
		return boolValue(strings.Contains(c.Variable, c.Value)), nil
	case ast.StrOpStartsWith:
		return boolValue(strings.HasPrefix(c.Variable, c.Value)), nil
	case ast.StrOpEndsWith:
		return boolValue(strings.HasSuffix(c.Variable, c.Value)), nil
	case ast.StrOpMatches:
		re, err := compileRegex(c.Value)
		if err != nil {
			return EvalValue{}, err
		}
		return boolValue(re.MatchString(c.Variable)), nil
	default:
		return EvalValue{}, diagnostics.NewEvalError(diagnostics.CodeInvalidOperator,
			"%s is not a valid string operator", c.Op.Symbol())
	}
}

func evalLogical(l ast.Logical, scope Scope) (EvalValue, error) {
	if l.Op != ast.OpAnd && l.Op != ast.OpOr {
		return EvalValue{}, diagnostics.NewEvalError(diagnostics.CodeInvalidOperator,
			"%s is not a valid logical operator", l.Op.Symbol())
	}
	leftVal, err := Evaluate(l.Left, scope)
	if err != nil {
		return EvalValue{}, err
	}
	left, err := leftVal.Bool()
	if err != nil {
		return EvalValue{}, err
	}
	rightVal, err := Evaluate(l.Right, scope)
	if err != nil {
		return EvalValue{}, err
	}
	right, err := rightVal.Bool()
	if err != nil {
		return EvalValue{}, err
	}
	if l.Op == ast.OpAnd {
		return boolValue(left && right), nil
	}
	return boolValue(left || right), nil
}

func evalNot(n ast.NotStmt, scope Scope) (EvalValue, error) {
	v, err := Evaluate(n.Operand, scope)
	if err != nil {
		return EvalValue{}, err
	}
	b, err := v.Bool()
	if err != nil {
		return EvalValue{}, err
	}
	return boolValue(!b), nil
}
