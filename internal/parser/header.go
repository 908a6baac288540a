package parser

import (
	"strings"

	"github.com/shire-lang/shire-core/internal/ast"
	"github.com/shire-lang/shire-core/internal/diagnostics"
	"github.com/shire-lang/shire-core/internal/lexer"
)

// ParseHeader parses the "hobbit hole" bracketed by two `---` fences.
// Recognized keys are name, description, interaction, actionLocation,
// and variables; any other key is folded into name, reproducing lossy
// behavior bug-for-bug.
func ParseHeader(l *lexer.Lexer) (ast.HeaderRecord, error) {
	header := ast.NewHeaderRecord()
	if !l.Fence() {
		return header, diagnostics.NewParseError(l.Pos(), "expected opening '---' fence")
	}

	for {
		l.SkipWhitespace()
		if l.Done() {
			break
		}
		if l.Fence() {
			break
		}

		keyTok, ok := l.Identifier()
		if !ok {
			return header, diagnostics.NewParseError(l.Pos(), "expected a header key")
		}
		key := keyTok.Lexeme
		l.SkipWhitespace()
		if l.Peek() != ':' {
			return header, diagnostics.NewParseError(l.Pos(), "expected ':' after header key %q", key)
		}
		l.Advance()
		l.SkipWhitespace()

		switch key {
		case "name":
			tok, err := l.QuotedString()
			if err != nil {
				return header, wrapLexErr(l, err)
			}
			header.Name = tok.Lexeme
		case "description":
			tok := l.UnquotedRun("|")
			text := strings.TrimRight(tok.Lexeme, " \t\r")
			header.Description = &text
		case "interaction":
			tok := l.UnquotedRun("|")
			kind := ast.ParseInteractionKind(tok.Lexeme)
			header.Interaction = &kind
		case "actionLocation":
			tok := l.UnquotedRun("|")
			loc := ast.ParseActionLocation(strings.TrimSpace(tok.Lexeme))
			header.ActionLocation = &loc
		case "variables":
			vars, err := parseVariablesBlock(l)
			if err != nil {
				return header, err
			}
			for k, v := range vars {
				header.Variables[k] = v // duplicate keys: last write wins
			}
		default:
			tok, err := l.QuotedString()
			if err != nil {
				return header, wrapLexErr(l, err)
			}
			header.Name = tok.Lexeme
		}
	}

	return header, nil
}

// parseVariablesBlock matches the indented `"key": variable_rhs` entries
// of a `variables:` value.
func parseVariablesBlock(l *lexer.Lexer) (map[string]ast.VariableTransform, error) {
	vars := make(map[string]ast.VariableTransform)
	for {
		l.SkipWhitespace()
		if l.Peek() != '"' {
			break
		}
		keyTok, err := l.QuotedString()
		if err != nil {
			return nil, wrapLexErr(l, err)
		}
		l.SkipWhitespace()
		if l.Peek() != ':' {
			return nil, diagnostics.NewParseError(l.Pos(), "expected ':' after variable key %q", keyTok.Lexeme)
		}
		l.Advance()
		transform, err := ParseVariableTransform(l)
		if err != nil {
			return nil, err
		}
		vars[keyTok.Lexeme] = transform
	}
	return vars, nil
}
