package token

import (
	"tokdump/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Lexeme returns the exact source text of the token.
func (t Token) Lexeme() string { return t.Text }

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t.Kind == EOF }
