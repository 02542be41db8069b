package tokprint

import (
	"fmt"
	"io"
	"os"
)

// Token is anything that can report the exact source text it was lexed from.
type Token interface {
	Lexeme() string
}

// Text is a plain lexeme. It lets callers holding strings use the printer directly.
type Text string

// Lexeme returns the text unchanged.
func (t Text) Lexeme() string { return string(t) }

// Texts converts plain strings into a token sequence.
func Texts(lexemes ...string) []Text {
	out := make([]Text, len(lexemes))
	for i, s := range lexemes {
		out[i] = Text(s)
	}
	return out
}

// Fprint writes every token's lexeme to w, one per line, in order.
// Each record goes out in a single Write call. The first failing write stops
// the traversal and is returned wrapped with the token index.
//
// Lexemes are written verbatim, so a lexeme that itself contains line breaks
// (a raw string spanning lines, say) occupies several physical lines. Callers
// that need the record count must count tokens, not output lines.
func Fprint[T Token](w io.Writer, tokens []T) error {
	var buf []byte
	for i, tok := range tokens {
		buf = append(buf[:0], tok.Lexeme()...)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("tokprint: write token %d: %w", i, err)
		}
	}
	return nil
}

// Fprintln is Fprint for plain strings.
func Fprintln(w io.Writer, lexemes ...string) error {
	return Fprint(w, Texts(lexemes...))
}

// Print writes the tokens to standard output.
// A broken output stream is not something a debugging aid can recover from,
// so a write error panics.
func Print[T Token](tokens []T) {
	if err := Fprint(os.Stdout, tokens); err != nil {
		panic(err)
	}
}
