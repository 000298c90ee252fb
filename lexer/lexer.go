// Package lexer converts a byte stream into a linear token sequence
// with line-number attribution.
package lexer

import (
	"fmt"
	"os"

	"github.com/skx/rv32-compiler/token"
)

// Lexer holds our object-state.
type Lexer struct {
	position     int    // current byte position
	readPosition int    // next byte position
	ch           byte   // current byte
	characters   []byte // the entire input

	// line is the 1-based line number of the current byte. CR is
	// treated as ordinary whitespace; only LF advances it, so CRLF
	// line endings are handled without double-counting.
	line int

	// Warnings collects the diagnostics emitted for unrecognized
	// bytes, in addition to being written to os.Stderr as they are
	// found. Exposed so callers (and tests) can inspect them without
	// scraping stderr.
	Warnings []string
}

// New builds a Lexer over the entire source buffer.
func New(input []byte) *Lexer {
	l := &Lexer{characters: input, line: 1}
	l.readChar()
	return l
}

// readChar advances the cursor by one byte.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.characters) {
		l.ch = 0
	} else {
		l.ch = l.characters[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// Tokens lexes the entire input and returns the resulting sequence,
// always terminated by a single token.EndOfInput. The only fatal
// failure mode is an unterminated string literal; unrecognized bytes
// are warned about and skipped.
func (l *Lexer) Tokens() ([]token.Token, error) {
	var out []token.Token

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Type == token.EndOfInput {
			return out, nil
		}
	}
}

// next returns the next token, skipping whitespace and any
// unrecognized bytes.
func (l *Lexer) next() (token.Token, error) {

	for {
		l.skipWhitespace()

		line := l.line

		switch {
		case l.ch == 0:
			return token.Token{Type: token.EndOfInput, Value: "", Line: line}, nil

		case isSeparator(l.ch):
			tok := token.Token{Type: token.Separator, Value: string(l.ch), Line: line}
			l.readChar()
			return tok, nil

		case isOperator(l.ch):
			tok := token.Token{Type: token.Operator, Value: string(l.ch), Line: line}
			l.readChar()
			return tok, nil

		case l.ch == '"':
			return l.readString()

		case isDigit(l.ch):
			return l.readInt(), nil

		case isLetter(l.ch):
			return l.readWord(), nil

		default:
			l.warn(fmt.Sprintf("unrecognized character %q on line %d", rune(l.ch), line))
			l.readChar()
			// The byte is skipped rather than emitted as a token;
			// loop around for the next one.
		}
	}
}

// warn records and prints a non-fatal diagnostic.
func (l *Lexer) warn(message string) {
	l.Warnings = append(l.Warnings, message)
	fmt.Fprintf(os.Stderr, "Warning: %s\n", message)
}

// skipWhitespace consumes spaces, tabs, CR and LF, counting lines on LF.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		if l.ch == '\n' {
			l.line++
		}
		l.readChar()
	}
}

// readInt consumes the maximal run of digits.
func (l *Lexer) readInt() token.Token {
	line := l.line
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.Int, Value: string(l.characters[start:l.position]), Line: line}
}

// readWord consumes the maximal run of letters and classifies it as a
// keyword, comparator, or identifier.
func (l *Lexer) readWord() token.Token {
	line := l.line
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	word := string(l.characters[start:l.position])

	typ, val := token.LookupIdentifier(word)
	return token.Token{Type: typ, Value: val, Line: line}
}

// readString consumes a double-quoted string literal, tracking
// embedded newlines. An unterminated string is a fatal lex error that
// reports the line the string began on.
func (l *Lexer) readString() (token.Token, error) {
	startLine := l.line

	// Skip the opening quote.
	l.readChar()

	start := l.position
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\n' {
			l.line++
		}
		l.readChar()
	}

	if l.ch == 0 {
		return token.Token{}, fmt.Errorf("unterminated string literal starting on line %d", startLine)
	}

	value := string(l.characters[start:l.position])

	// Skip the closing quote.
	l.readChar()

	return token.Token{Type: token.String, Value: value, Line: startLine}, nil
}

func isSeparator(ch byte) bool {
	switch ch {
	case ';', ',', '(', ')', '{', '}':
		return true
	}
	return false
}

func isOperator(ch byte) bool {
	switch ch {
	case '=', '+', '-', '*', '/', '%':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
