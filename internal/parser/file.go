package parser

import (
	"github.com/shire-lang/shire-core/internal/ast"
	"github.com/shire-lang/shire-core/internal/lexer"
)

// ParseFile parses a complete Shire source text into header and body:
// header parser, then zero or more body lines consumed via the
// unquoted_run primitive.
func ParseFile(src string) (ast.ShireFile, error) {
	l := lexer.New(src)
	header, err := ParseHeader(l)
	if err != nil {
		return ast.ShireFile{}, err
	}
	return ast.ShireFile{Header: header, Body: parseBody(l)}, nil
}

func parseBody(l *lexer.Lexer) []string {
	if l.Peek() == '\r' {
		l.Advance()
	}
	if l.Peek() == '\n' {
		l.Advance()
	}
	var lines []string
	for !l.Done() {
		tok := l.UnquotedRun("")
		lines = append(lines, tok.Lexeme)
		if l.Peek() == '\n' {
			l.Advance()
			continue
		}
		break
	}
	return lines
}

func isIdentByte(ch byte) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

// ExtractVariableReferences returns the distinct `$name` references
// found in body, in first-occurrence order. Substitution itself belongs
// to an external executor.
func ExtractVariableReferences(body []string) []string {
	seen := make(map[string]bool)
	var refs []string
	for _, line := range body {
		for i := 0; i < len(line); i++ {
			if line[i] != '$' {
				continue
			}
			j := i + 1
			for j < len(line) && isIdentByte(line[j]) {
				j++
			}
			if j > i+1 {
				name := line[i+1 : j]
				if !seen[name] {
					seen[name] = true
					refs = append(refs, name)
				}
				i = j - 1
			}
		}
	}
	return refs
}
