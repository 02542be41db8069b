package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"tokdump/internal/token"
)

// scanOperatorOrPunct: сначала самый длинный оператор из opts.Operators,
// иначе одиночный символ пунктуации. Прочее: Invalid, один символ.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	for _, op := range lx.ops {
		if lx.cursor.EatPrefix(op) {
			return lx.tokenFrom(token.Punct, start)
		}
	}

	r, _ := lx.peekRune()
	lx.bumpRune()
	if r != utf8.RuneError && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
		return lx.tokenFrom(token.Punct, start)
	}

	tok := lx.tokenFrom(token.Invalid, start)
	lx.report(CodeUnknownChar, tok.Span, "unexpected character "+quoteRune(r, tok.Text))
	return tok
}

func quoteRune(r rune, text string) string {
	if r == utf8.RuneError {
		return "(invalid UTF-8)"
	}
	if !unicode.IsPrint(r) {
		return fmt.Sprintf("U+%04X", r)
	}
	return "'" + text + "'"
}
