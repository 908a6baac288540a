// Package lexer provides the primitive matchers the Shire parser is built
// from: bare identifiers, quoted strings, integers, regex literals,
// unquoted runs, whitespace, and frontmatter fences. Unlike a classical
// token-stream lexer, callers drive these primitives directly — the Shire
// grammar is context sensitive (a header value's shape depends on its key,
// a variable's shape depends on its leading character) so there is no
// single fixed tokenization to precompute ahead of parsing.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/shire-lang/shire-core/internal/diagnostics"
	"github.com/shire-lang/shire-core/internal/token"
)

// Lexer scans a Shire source string one byte at a time, tracking line and
// column for error reporting. It has no notion of the grammar above the
// primitive level.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// New creates a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// State is an opaque snapshot of the lexer's position, used to backtrack
// when a primitive match attempt fails (e.g. checking whether an
// identifier in a case block is the `default` keyword).
type State struct {
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// Save captures the current position for later restoration.
func (l *Lexer) Save() State {
	return State{l.position, l.readPosition, l.ch, l.line, l.column}
}

// Restore rewinds the lexer to a previously saved state.
func (l *Lexer) Restore(s State) {
	l.position, l.readPosition, l.ch, l.line, l.column = s.position, s.readPosition, s.ch, s.line, s.column
}

// Pos returns the current source position.
func (l *Lexer) Pos() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

// Done reports whether the lexer has consumed all input.
func (l *Lexer) Done() bool {
	return l.ch == 0
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func isDigit(ch byte) bool      { return ch >= '0' && ch <= '9' }
func isAlphaNumeric(ch byte) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}
func isWhitespace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' }

// SkipWhitespace consumes zero or more whitespace characters, including
// newlines (the `ws` primitive of §4.1).
func (l *Lexer) SkipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// SkipWhitespace1 consumes one or more whitespace characters; it reports
// whether at least one was consumed (the `ws1` primitive of §4.1).
func (l *Lexer) SkipWhitespace1() bool {
	if !isWhitespace(l.ch) {
		return false
	}
	l.SkipWhitespace()
	return true
}

// Identifier matches one or more ASCII alphanumeric characters.
func (l *Lexer) Identifier() (token.Token, bool) {
	pos := l.Pos()
	start := l.position
	if !isAlphaNumeric(l.ch) {
		return token.Token{}, false
	}
	for isAlphaNumeric(l.ch) {
		l.readChar()
	}
	return token.Token{Kind: token.IDENT, Lexeme: l.input[start:l.position], Pos: pos}, true
}

// QuotedString matches `"`, a run of characters not `"`, `"`. No escape
// sequences are recognized.
func (l *Lexer) QuotedString() (token.Token, error) {
	pos := l.Pos()
	if l.ch != '"' {
		return token.Token{}, fmt.Errorf("expected '\"' at %s, got %q", pos, l.ch)
	}
	l.readChar()
	start := l.position
	for l.ch != '"' {
		if l.ch == 0 {
			return token.Token{}, fmt.Errorf("unterminated string starting at %s", pos)
		}
		l.readChar()
	}
	text := l.input[start:l.position]
	l.readChar() // consume closing quote
	return token.Token{Kind: token.STRING, Lexeme: text, Pos: pos}, nil
}

// Integer matches one or more decimal digits and parses them into a signed
// 32-bit integer; overflow is reported as an error.
func (l *Lexer) Integer() (token.Token, int32, error) {
	pos := l.Pos()
	start := l.position
	if !isDigit(l.ch) {
		return token.Token{}, 0, fmt.Errorf("expected digit at %s, got %q", pos, l.ch)
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	text := l.input[start:l.position]
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return token.Token{}, 0, diagnostics.NewLexError(diagnostics.CodeIntegerOverflow, pos,
			"integer literal %q overflows 32-bit signed range", text)
	}
	return token.Token{Kind: token.INT, Lexeme: text, Pos: pos}, int32(n), nil
}

// RegexLiteral matches `/`, a run of characters not `/`, `/`. The interior
// is not validated as a regex at this stage.
func (l *Lexer) RegexLiteral() (token.Token, error) {
	pos := l.Pos()
	if l.ch != '/' {
		return token.Token{}, fmt.Errorf("expected '/' at %s, got %q", pos, l.ch)
	}
	l.readChar()
	start := l.position
	for l.ch != '/' {
		if l.ch == 0 {
			return token.Token{}, fmt.Errorf("unterminated regex literal starting at %s", pos)
		}
		l.readChar()
	}
	text := l.input[start:l.position]
	l.readChar() // consume closing slash
	return token.Token{Kind: token.REGEX, Lexeme: text, Pos: pos}, nil
}

// UnquotedRun matches a run of characters, stopping before any byte in
// stopAt or before a newline. Used for unquoted header values and body
// lines.
func (l *Lexer) UnquotedRun(stopAt string) token.Token {
	pos := l.Pos()
	start := l.position
	for l.ch != 0 && l.ch != '\n' && indexByte(stopAt, l.ch) < 0 {
		l.readChar()
	}
	return token.Token{Kind: token.UNQUOTED, Lexeme: l.input[start:l.position], Pos: pos}
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// Peek returns the current byte without consuming it (0 at end of input).
func (l *Lexer) Peek() byte { return l.ch }

// PeekAhead returns the byte following the current one without consuming
// anything (0 at end of input).
func (l *Lexer) PeekAhead() byte { return l.peekChar() }

// Advance consumes the current byte unconditionally.
func (l *Lexer) Advance() { l.readChar() }

// TryConsume attempts to match the literal string s at the current
// position (after skipping no whitespace). On success it consumes s and
// returns true; on failure the lexer position is unchanged.
func (l *Lexer) TryConsume(s string) bool {
	save := l.Save()
	for i := 0; i < len(s); i++ {
		if l.ch != s[i] {
			l.Restore(save)
			return false
		}
		l.readChar()
	}
	return true
}

// Fence matches the frontmatter delimiter: optional leading whitespace
// followed by three hyphens, `---`. Whitespace after the hyphens is left
// for the caller, and the byte after the third hyphen is not checked.
func (l *Lexer) Fence() bool {
	save := l.Save()
	l.SkipWhitespace()
	if !l.TryConsume("---") {
		l.Restore(save)
		return false
	}
	return true
}

// Remainder returns the unconsumed tail of the input, for callers (such as
// the body parser) that want to take over raw slicing after the lexer has
// positioned itself.
func (l *Lexer) Remainder() string {
	return l.input[l.position:]
}
