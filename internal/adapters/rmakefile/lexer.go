// Package rmakefile reads the line-oriented RMakefile format.
package rmakefile

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// TokenType classifies one significant line of an RMakefile.
type TokenType uint8

const (
	// TokenEOF marks the end of input.
	TokenEOF TokenType = iota
	// TokenRule is a `target: deps...` line.
	TokenRule
	// TokenCommand is a tab-indented command line.
	TokenCommand
	// TokenAssignment is a `NAME = value` line.
	TokenAssignment
)

// String returns a short name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "eof"
	case TokenRule:
		return "rule"
	case TokenCommand:
		return "command"
	case TokenAssignment:
		return "assignment"
	default:
		return "unknown"
	}
}

// Token is one classified line. Data has trailing whitespace removed, and
// leading whitespace too for commands.
type Token struct {
	Type TokenType
	Data string
	Line int
}

// maxLineSize bounds the length of a single line.
const maxLineSize = 16 << 20

// Lexer splits an RMakefile into tokens, skipping blank and comment lines.
type Lexer struct {
	scanner *bufio.Scanner
	line    int
}

// NewLexer creates a Lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &Lexer{scanner: scanner}
}

// Next returns the next token, or a TokenEOF token once the input is exhausted.
func (l *Lexer) Next() (Token, error) {
	for l.scanner.Scan() {
		l.line++
		line := strings.TrimRightFunc(l.scanner.Text(), unicode.IsSpace)

		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "\t"):
			return Token{Type: TokenCommand, Data: strings.TrimLeftFunc(line, unicode.IsSpace), Line: l.line}, nil
		case strings.Contains(line, "="):
			return Token{Type: TokenAssignment, Data: line, Line: l.line}, nil
		default:
			return Token{Type: TokenRule, Data: line, Line: l.line}, nil
		}
	}
	if err := l.scanner.Err(); err != nil {
		return Token{}, zerr.With(zerr.Wrap(err, "failed to read line"), "line", l.line+1)
	}
	return Token{Type: TokenEOF, Line: l.line}, nil
}
