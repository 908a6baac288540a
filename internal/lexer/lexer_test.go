package lexer

import (
	"testing"

	"github.com/shire-lang/shire-core/internal/diagnostics"
)

func TestIdentifier(t *testing.T) {
	l := New("grep123 rest")
	tok, ok := l.Identifier()
	if !ok {
		t.Fatalf("Identifier() ok = false, want true")
	}
	if tok.Lexeme != "grep123" {
		t.Errorf("Lexeme = %q, want %q", tok.Lexeme, "grep123")
	}
	if l.Peek() != ' ' {
		t.Errorf("Peek() after Identifier = %q, want ' '", l.Peek())
	}
}

func TestIdentifierNoMatch(t *testing.T) {
	l := New("\"quoted\"")
	if _, ok := l.Identifier(); ok {
		t.Errorf("Identifier() ok = true on quoted input, want false")
	}
}

func TestQuotedString(t *testing.T) {
	l := New(`"hello world" tail`)
	tok, err := l.QuotedString()
	if err != nil {
		t.Fatalf("QuotedString() error = %v", err)
	}
	if tok.Lexeme != "hello world" {
		t.Errorf("Lexeme = %q, want %q", tok.Lexeme, "hello world")
	}
}

func TestQuotedStringUnterminated(t *testing.T) {
	l := New(`"hello`)
	if _, err := l.QuotedString(); err == nil {
		t.Errorf("QuotedString() error = nil, want unterminated error")
	}
}

func TestInteger(t *testing.T) {
	cases := []struct {
		in   string
		want int32
	}{
		{"0", 0},
		{"42", 42},
		{"2147483647", 2147483647},
	}
	for _, c := range cases {
		l := New(c.in)
		_, n, err := l.Integer()
		if err != nil {
			t.Fatalf("Integer(%q) error = %v", c.in, err)
		}
		if n != c.want {
			t.Errorf("Integer(%q) = %d, want %d", c.in, n, c.want)
		}
	}
}

func TestIntegerOverflow(t *testing.T) {
	l := New("99999999999999999999")
	_, _, err := l.Integer()
	if err == nil {
		t.Fatalf("Integer() error = nil, want overflow error")
	}
	de, ok := err.(*diagnostics.Error)
	if !ok {
		t.Fatalf("Integer() error type = %T, want *diagnostics.Error", err)
	}
	if de.Code != diagnostics.CodeIntegerOverflow {
		t.Errorf("Integer() error code = %s, want %s", de.Code, diagnostics.CodeIntegerOverflow)
	}
}

func TestRegexLiteral(t *testing.T) {
	l := New(`/.*\.java/ rest`)
	tok, err := l.RegexLiteral()
	if err != nil {
		t.Fatalf("RegexLiteral() error = %v", err)
	}
	if tok.Lexeme != `.*\.java` {
		t.Errorf("Lexeme = %q, want %q", tok.Lexeme, `.*\.java`)
	}
}

func TestRegexLiteralUnterminated(t *testing.T) {
	l := New(`/abc`)
	if _, err := l.RegexLiteral(); err == nil {
		t.Errorf("RegexLiteral() error = nil, want unterminated error")
	}
}

func TestUnquotedRun(t *testing.T) {
	l := New("Generate Summary|rest")
	tok := l.UnquotedRun("|")
	if tok.Lexeme != "Generate Summary" {
		t.Errorf("Lexeme = %q, want %q", tok.Lexeme, "Generate Summary")
	}
	if l.Peek() != '|' {
		t.Errorf("Peek() = %q, want '|'", l.Peek())
	}
}

func TestUnquotedRunStopsAtNewline(t *testing.T) {
	l := New("line one\nline two")
	tok := l.UnquotedRun("")
	if tok.Lexeme != "line one" {
		t.Errorf("Lexeme = %q, want %q", tok.Lexeme, "line one")
	}
}

func TestFence(t *testing.T) {
	l := New("   ---\nrest")
	if !l.Fence() {
		t.Fatalf("Fence() = false, want true")
	}
	if l.Peek() != '\n' {
		t.Errorf("Peek() after Fence = %q, want '\\n'", l.Peek())
	}
}

func TestFenceNoMatch(t *testing.T) {
	l := New("not-a-fence")
	if l.Fence() {
		t.Errorf("Fence() = true, want false")
	}
	if l.Peek() != 'n' {
		t.Errorf("position moved after failed Fence(): Peek() = %q", l.Peek())
	}
}

func TestSaveRestore(t *testing.T) {
	l := New("abcdef")
	save := l.Save()
	l.Advance()
	l.Advance()
	if l.Peek() != 'c' {
		t.Fatalf("Peek() = %q, want 'c'", l.Peek())
	}
	l.Restore(save)
	if l.Peek() != 'a' {
		t.Errorf("Peek() after Restore = %q, want 'a'", l.Peek())
	}
}

func TestTryConsume(t *testing.T) {
	l := New("default rest")
	if !l.TryConsume("default") {
		t.Fatalf("TryConsume(\"default\") = false, want true")
	}
	if l.Peek() != ' ' {
		t.Errorf("Peek() = %q, want ' '", l.Peek())
	}
}

func TestTryConsumeFailureRestores(t *testing.T) {
	l := New("defaultX")
	if l.TryConsume("defaulty") {
		t.Fatalf("TryConsume(\"defaulty\") = true, want false")
	}
	if l.Peek() != 'd' {
		t.Errorf("position moved after failed TryConsume(): Peek() = %q", l.Peek())
	}
}

func TestDone(t *testing.T) {
	l := New("a")
	if l.Done() {
		t.Fatalf("Done() = true before consuming input")
	}
	l.Advance()
	if !l.Done() {
		t.Errorf("Done() = false after consuming all input")
	}
}
