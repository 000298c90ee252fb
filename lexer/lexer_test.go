package lexer

import (
	"strings"
	"testing"

	"github.com/skx/rv32-compiler/token"
)

// Trivial test of the lexing of integer literals.
func TestLexNumbers(t *testing.T) {
	input := []byte(`3 43 0`)

	tests := []struct {
		expectedType  token.Type
		expectedValue string
	}{
		{token.Int, "3"},
		{token.Int, "43"},
		{token.Int, "0"},
		{token.EndOfInput, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %s", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong, expected=%q, got=%q", i, tt.expectedValue, tok.Value)
		}
	}
}

// Trivial test of the lexing of separators and operators.
func TestLexSeparatorsAndOperators(t *testing.T) {
	input := []byte(`; , ( ) { } = + - * / %`)

	tests := []struct {
		expectedType  token.Type
		expectedValue string
	}{
		{token.Separator, ";"},
		{token.Separator, ","},
		{token.Separator, "("},
		{token.Separator, ")"},
		{token.Separator, "{"},
		{token.Separator, "}"},
		{token.Operator, "="},
		{token.Operator, "+"},
		{token.Operator, "-"},
		{token.Operator, "*"},
		{token.Operator, "/"},
		{token.Operator, "%"},
		{token.EndOfInput, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %s", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong, expected=%q, got=%q", i, tt.expectedValue, tok.Value)
		}
	}
}

// Trivial test of keyword and comparator recognition, plus plain
// identifiers.
func TestLexKeywordsAndIdentifiers(t *testing.T) {
	input := []byte(`exit int if while write eq neq less greater counter`)

	tests := []struct {
		expectedType  token.Type
		expectedValue string
	}{
		{token.Keyword, token.EXIT},
		{token.Keyword, token.INT},
		{token.Keyword, token.IF},
		{token.Keyword, token.WHILE},
		{token.Keyword, token.WRITE},
		{token.Comparator, token.EQ},
		{token.Comparator, token.NEQ},
		{token.Comparator, token.LESS},
		{token.Comparator, token.GREATER},
		{token.Identifier, "counter"},
		{token.EndOfInput, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %s", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong, expected=%q, got=%q", i, tt.expectedValue, tok.Value)
		}
	}
}

// Test line-number attribution across newlines, and that CR is
// treated as whitespace (CRLF doesn't double-count lines).
func TestLexLineNumbers(t *testing.T) {
	input := []byte("1\n2\r\n3")

	l := New(input)
	tokens, err := l.Tokens()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []int{1, 2, 3, 3}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Line != want[i] {
			t.Errorf("token %d: expected line %d, got %d", i, want[i], tok.Line)
		}
	}
}

// Test string literals, including multi-line ones.
func TestLexString(t *testing.T) {
	l := New([]byte(`"hello" "multi
line"`))

	tok, err := l.next()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tok.Type != token.String || tok.Value != "hello" {
		t.Fatalf("expected String(hello), got %s(%s)", tok.Type, tok.Value)
	}

	tok, err = l.next()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tok.Type != token.String || tok.Value != "multi\nline" {
		t.Fatalf("expected String(multi\\nline), got %s(%q)", tok.Type, tok.Value)
	}
}

// Test that an unterminated string is a fatal error reporting the
// line the string began on.
func TestLexUnterminatedString(t *testing.T) {
	l := New([]byte("1;\n\"oops\nstill open"))

	// consume "1" and ";" first
	if _, err := l.next(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := l.next(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err := l.next()
	if err == nil {
		t.Fatalf("expected an error for the unterminated string, got none")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected the error to name the starting line 2, got %q", err)
	}
}

// Test that an unrecognized byte is warned about and skipped, rather
// than being fatal.
func TestLexUnrecognizedByte(t *testing.T) {
	l := New([]byte(`3 ` + "`" + ` 4`))

	tokens, err := l.Tokens()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []string{"3", "4", ""}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Value != want[i] {
			t.Errorf("token %d: expected value %q, got %q", i, want[i], tok.Value)
		}
	}

	if len(l.Warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(l.Warnings))
	}
}
