package token

import (
	"testing"

	"tokdump/pkg/tokprint"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Invalid, "Invalid"},
		{EOF, "EOF"},
		{Ident, "Ident"},
		{Number, "Number"},
		{String, "String"},
		{Char, "Char"},
		{Punct, "Punct"},
		{Kind(200), "Kind(?)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTokenLexeme(t *testing.T) {
	var tok tokprint.Token = Token{Kind: String, Text: `"hi\n"`}
	if got := tok.Lexeme(); got != `"hi\n"` {
		t.Errorf("expected raw text, got %q", got)
	}
}

func TestIsEOF(t *testing.T) {
	for _, k := range []Kind{Invalid, Ident, Number, String, Char, Punct} {
		if (Token{Kind: k}).IsEOF() {
			t.Errorf("%s should not report IsEOF", k)
		}
	}
	if !(Token{Kind: EOF}).IsEOF() {
		t.Error("expected EOF token to report IsEOF")
	}
}
