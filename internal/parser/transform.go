package parser

import (
	"github.com/shire-lang/shire-core/internal/ast"
	"github.com/shire-lang/shire-core/internal/diagnostics"
	"github.com/shire-lang/shire-core/internal/lexer"
)

func isDigitByte(ch byte) bool { return ch >= '0' && ch <= '9' }

// ParseVariableTransform matches
// `variable_rhs := pattern_action | case_block | quoted_string | integer`.
func ParseVariableTransform(l *lexer.Lexer) (ast.VariableTransform, error) {
	l.SkipWhitespace()
	switch {
	case l.Peek() == '"':
		tok, err := l.QuotedString()
		if err != nil {
			return nil, wrapLexErr(l, err)
		}
		return ast.StringLitTransform{Text: tok.Lexeme}, nil
	case l.Peek() == '/':
		return parseRegexTransform(l)
	case isDigitByte(l.Peek()):
		_, n, err := l.Integer()
		if err != nil {
			return nil, wrapLexErr(l, err)
		}
		return ast.IntLitTransform{N: n}, nil
	default:
		return nil, diagnostics.NewParseError(l.Pos(), "expected a string, integer, or /regex/ variable value")
	}
}

// parseRegexTransform matches either `pattern_action` or `case_block`,
// both of which begin `regex_lit ws '{'`. Disambiguation is by one
// token of lookahead past the opening brace: a quoted string can only
// begin a case_entries key, since a pipeline function always starts
// with an identifier, so no partial parse is backtracked. A case block
// is recognized only when its first arm is a quoted key; a block holding
// only a `default` arm is read as a pipeline and fails to parse.
func parseRegexTransform(l *lexer.Lexer) (ast.VariableTransform, error) {
	regexTok, err := l.RegexLiteral()
	if err != nil {
		return nil, wrapLexErr(l, err)
	}
	l.SkipWhitespace()
	if l.Peek() != '{' {
		return nil, diagnostics.NewParseError(l.Pos(), "expected '{' after /%s/", regexTok.Lexeme)
	}
	l.Advance()
	l.SkipWhitespace()
	if l.Peek() == '"' {
		return parseCaseBlock(l, regexTok.Lexeme)
	}
	if regexTok.Lexeme == "" {
		return nil, diagnostics.NewParseError(regexTok.Pos, "empty regex in pattern-action rule")
	}
	pipeline, err := parsePipeline(l)
	if err != nil {
		return nil, err
	}
	l.SkipWhitespace()
	if l.Peek() != '}' {
		return nil, diagnostics.NewParseError(l.Pos(), "expected '}' to close pattern-action block")
	}
	l.Advance()
	return ast.PatternActionTransform{Regex: regexTok.Lexeme, Pipeline: pipeline}, nil
}

// parseCaseBlock matches
// `case_entries := ( '"' key '"' ws1 function ws )*` followed by an
// optional `default := 'default' ws1 function`. Each arm holds exactly
// one function, never a pipeline — a documented grammar limitation
// preserved bug-compatibly.
func parseCaseBlock(l *lexer.Lexer, regex string) (ast.VariableTransform, error) {
	var arms []ast.CaseArm
	for {
		l.SkipWhitespace()
		if l.Peek() != '"' {
			break
		}
		keyTok, err := l.QuotedString()
		if err != nil {
			return nil, wrapLexErr(l, err)
		}
		if !l.SkipWhitespace1() {
			return nil, diagnostics.NewParseError(l.Pos(), "expected whitespace after case key %q", keyTok.Lexeme)
		}
		fc, err := parseFunctionCall(l)
		if err != nil {
			return nil, err
		}
		arms = append(arms, ast.CaseArm{Key: keyTok.Lexeme, Value: ast.ActionTransform{Pipeline: ast.Pipeline{fc}}})
	}

	var def *ast.FunctionCall
	l.SkipWhitespace()
	save := l.Save()
	if ident, ok := l.Identifier(); ok && ident.Lexeme == "default" {
		if !l.SkipWhitespace1() {
			return nil, diagnostics.NewParseError(l.Pos(), "expected whitespace after 'default'")
		}
		fc, err := parseFunctionCall(l)
		if err != nil {
			return nil, err
		}
		def = &fc
	} else {
		l.Restore(save)
	}

	l.SkipWhitespace()
	if l.Peek() != '}' {
		return nil, diagnostics.NewParseError(l.Pos(), "expected '}' to close case block")
	}
	l.Advance()
	return ast.CaseTransform{Regex: regex, Cases: arms, Default: def}, nil
}
