package lexer

import (
	"tokdump/internal/token"
)

// scanString сканирует "..." (однострочная, с escape) или `...` (сырая, многострочная).
// Token.Text включает кавычки и escape-последовательности как есть.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	if quote == '`' {
		for !lx.cursor.EOF() {
			if lx.cursor.Bump() == '`' {
				return lx.tokenFrom(token.String, start)
			}
		}
		tok := lx.tokenFrom(token.Invalid, start)
		lx.report(CodeUnterminatedString, tok.Span, "unterminated raw string")
		return tok
	}

	if lx.scanQuoted(quote) {
		return lx.tokenFrom(token.String, start)
	}
	tok := lx.tokenFrom(token.Invalid, start)
	lx.report(CodeUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanChar сканирует '...'. Содержимое не проверяется: 'ab' тоже Char.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Eat('\'')
	if lx.scanQuoted('\'') {
		return lx.tokenFrom(token.Char, start)
	}
	tok := lx.tokenFrom(token.Invalid, start)
	lx.report(CodeUnterminatedChar, tok.Span, "unterminated character literal")
	return tok
}

// scanQuoted съедает тело литерала до закрывающей кавычки включительно.
// Перевод строки или EOF до кавычки дают false, сам '\n' не съедается.
func (lx *Lexer) scanQuoted(quote byte) bool {
	for !lx.cursor.EOF() {
		if lx.cursor.Eat(quote) {
			return true
		}
		switch lx.cursor.Peek() {
		case '\n':
			return false
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.Peek() == '\n' {
				return false
			}
			lx.bumpRune()
		default:
			lx.bumpRune()
		}
	}
	return false
}
