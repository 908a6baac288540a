package evaluator

import (
	"regexp"
	"strings"

	"github.com/shire-lang/shire-core/internal/ast"
	"github.com/shire-lang/shire-core/internal/diagnostics"
)

// compileRegex compiles pattern on every call; regex caching is
// deliberately out of scope here since correctness doesn't require it. A
// long-running host may choose to memoize by pattern text above this
// package.
func compileRegex(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, diagnostics.NewEvalError(diagnostics.CodeInvalidRegex,
			"invalid regex %q: %s", pattern, err)
	}
	return re, nil
}

// methodName renders method to its recognized name: an IdentifierValue
// contributes its bare Name, anything else falls back to Display with
// its surrounding quotes (if any) stripped, since method is only ever
// meaningfully written as a bare identifier in source.
func methodName(v ast.Value) string {
	if id, ok := v.(ast.IdentifierValue); ok {
		return id.Name
	}
	return strings.Trim(v.Display(), `"`)
}

// argText renders a MethodCall argument: a String argument is taken
// literally, any other kind is rendered through its Display form.
func argText(v ast.Value) string {
	if s, ok := v.(ast.StringValue); ok {
		return s.Text
	}
	return v.Display()
}

func evalMethodCall(m ast.MethodCall, scope Scope) (EvalValue, error) {
	receiver, err := resolveText(m.Receiver, scope)
	if err != nil {
		return EvalValue{}, err
	}
	name := methodName(m.Method)
	args := make([]string, len(m.Args))
	for i, a := range m.Args {
		args[i] = argText(a)
	}

	switch name {
	case "length":
		return intValue(int32(len([]rune(receiver)))), nil
	case "trim":
		return textValue(strings.TrimSpace(receiver)), nil
	case "contains":
		return boolValue(strings.Contains(receiver, arg0(args))), nil
	case "startsWith":
		return boolValue(strings.HasPrefix(receiver, arg0(args))), nil
	case "endsWith":
		return boolValue(strings.HasSuffix(receiver, arg0(args))), nil
	case "lowercase":
		return textValue(strings.ToLower(receiver)), nil
	case "uppercase":
		return textValue(strings.ToUpper(receiver)), nil
	case "isEmpty":
		return boolValue(len(receiver) == 0), nil
	case "isNotEmpty":
		return boolValue(len(receiver) != 0), nil
	case "first":
		runes := []rune(receiver)
		if len(runes) == 0 {
			return EvalValue{}, diagnostics.NewEvalError(diagnostics.CodeEmptyInput,
				"first called on empty text")
		}
		return textValue(string(runes[0])), nil
	case "last":
		runes := []rune(receiver)
		if len(runes) == 0 {
			return EvalValue{}, diagnostics.NewEvalError(diagnostics.CodeEmptyInput,
				"last called on empty text")
		}
		return textValue(string(runes[len(runes)-1])), nil
	case "matches":
		re, err := compileRegex(arg0(args))
		if err != nil {
			return EvalValue{}, err
		}
		return boolValue(re.MatchString(receiver)), nil
	default:
		return EvalValue{}, diagnostics.NewEvalError(diagnostics.CodeUnknownMethod,
			"unknown method %q", name)
	}
}

func arg0(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
