// Package diagnostics defines the typed error taxonomy the core returns
// instead of logging or panicking: parse errors carry a source position,
// evaluation errors carry a code identifying what went wrong.
package diagnostics

import (
	"fmt"

	"github.com/shire-lang/shire-core/internal/token"
)

// Phase identifies which stage of processing produced an error.
type Phase string

const (
	PhaseLexer     Phase = "lexer"
	PhaseParser    Phase = "parser"
	PhaseEvaluator Phase = "evaluator"
)

// Code identifies the kind of error within a phase.
type Code string

const (
	CodeParseError      Code = "PARSE_ERROR"
	CodeTypeError       Code = "TYPE_ERROR"
	CodeUnknownMethod   Code = "UNKNOWN_METHOD"
	CodeInvalidOperator Code = "INVALID_OPERATOR"
	CodeInvalidRegex    Code = "INVALID_REGEX"
	CodeEmptyInput      Code = "EMPTY_INPUT"
	CodeIntegerOverflow Code = "INTEGER_OVERFLOW"
)

// Error is the core's single error type: a phase, a code, an optional
// source position, and a human-readable message. Parser errors are fatal
// for the file being parsed; evaluator errors are returned to the caller
// without side effects.
type Error struct {
	Phase   Phase
	Code    Code
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	if e.Pos.Line == 0 && e.Pos.Column == 0 {
		return fmt.Sprintf("[%s:%s] %s", e.Phase, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: [%s:%s] %s", e.Pos, e.Phase, e.Code, e.Message)
}

// NewParseError builds a fatal parse-phase error at the given position.
func NewParseError(pos token.Position, format string, a ...interface{}) *Error {
	return &Error{Phase: PhaseParser, Code: CodeParseError, Pos: pos, Message: fmt.Sprintf(format, a...)}
}

// NewLexError builds a fatal lexer-phase error with an explicit code,
// rather than the catch-all CodeParseError, so callers further up the
// parser can distinguish it (e.g. CodeIntegerOverflow) instead of seeing
// an undifferentiated parse failure.
func NewLexError(code Code, pos token.Position, format string, a ...interface{}) *Error {
	return &Error{Phase: PhaseLexer, Code: code, Pos: pos, Message: fmt.Sprintf(format, a...)}
}

// NewEvalError builds an evaluation-phase error with the given code.
func NewEvalError(code Code, format string, a ...interface{}) *Error {
	return &Error{Phase: PhaseEvaluator, Code: code, Message: fmt.Sprintf(format, a...)}
}
