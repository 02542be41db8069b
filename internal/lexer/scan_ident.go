package lexer

import (
	"golang.org/x/text/unicode/norm"

	"tokdump/internal/token"
)

// scanIdent сканирует идентификатор; ключевые слова лексер не различает.
// Token.Text это ровно исходный срез, без нормализации.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	ascii := lx.cursor.Peek() < utf8RuneSelf

	lx.bumpRune()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		ascii = false
		lx.bumpRune()
	}

	tok := lx.tokenFrom(token.Ident, start)
	if !ascii && !norm.NFC.IsNormalString(tok.Text) {
		lx.report(CodeNonNFCIdent, tok.Span, "identifier "+tok.Text+" is not in NFC form")
	}
	return tok
}
