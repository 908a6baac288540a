// Package parser implements the recursive-descent parsers for Shire
// source text: the header ("hobbit hole"), the variable-transform
// right-hand sides, and the file as a whole. Each parser is driven
// directly off lexer primitives rather than a precomputed token stream,
// since the grammar is context sensitive: a header value's shape depends
// on its key, and a variable right-hand side's shape depends on its
// leading character.
package parser

import (
	"github.com/shire-lang/shire-core/internal/ast"
	"github.com/shire-lang/shire-core/internal/diagnostics"
	"github.com/shire-lang/shire-core/internal/lexer"
)

// wrapLexErr lifts a lexer-level error into a parse-phase error, unless
// err already carries its own diagnostics code (e.g. CodeIntegerOverflow)
// — in that case it's passed through untouched so callers can still
// distinguish it from a generic parse failure.
func wrapLexErr(l *lexer.Lexer, err error) error {
	if de, ok := err.(*diagnostics.Error); ok {
		return de
	}
	return diagnostics.NewParseError(l.Pos(), "%s", err)
}

// parseFunctionCall matches `function := identifier ws ( '(' args? ')' )?`.
func parseFunctionCall(l *lexer.Lexer) (ast.FunctionCall, error) {
	l.SkipWhitespace()
	nameTok, ok := l.Identifier()
	if !ok {
		return ast.FunctionCall{}, diagnostics.NewParseError(l.Pos(), "expected function name")
	}
	l.SkipWhitespace()
	var args []string
	if l.Peek() == '(' {
		l.Advance()
		l.SkipWhitespace()
		if l.Peek() != ')' {
			for {
				l.SkipWhitespace()
				argTok, err := l.QuotedString()
				if err != nil {
					return ast.FunctionCall{}, wrapLexErr(l, err)
				}
				args = append(args, argTok.Lexeme)
				l.SkipWhitespace()
				if l.Peek() == ',' {
					l.Advance()
					continue
				}
				break
			}
		}
		l.SkipWhitespace()
		if l.Peek() != ')' {
			return ast.FunctionCall{}, diagnostics.NewParseError(l.Pos(), "expected ')' to close argument list")
		}
		l.Advance()
	}
	return ast.FunctionCall{Name: nameTok.Lexeme, Args: args}, nil
}

// parsePipeline matches `pipeline := function (ws '|' ws function)*`. An
// empty pipeline (immediately followed by '}') is accepted and yields a
// nil sequence.
func parsePipeline(l *lexer.Lexer) (ast.Pipeline, error) {
	l.SkipWhitespace()
	if l.Peek() == '}' {
		return nil, nil
	}
	var pipeline ast.Pipeline
	for {
		fc, err := parseFunctionCall(l)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, fc)
		l.SkipWhitespace()
		if l.Peek() == '|' {
			l.Advance()
			l.SkipWhitespace()
			continue
		}
		break
	}
	return pipeline, nil
}
