package lexer

import (
	"tokdump/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., 1.0, .5, 1e-3, 1.0e+10.
// Суффиксы (u8, f32, n и т.д.) остаются в Token.Text.
// Неверные формы: репорт в opts.Reporter, токен Invalid с исходным текстом.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		var digit func(byte) bool
		switch lx.cursor.Peek() {
		case 'b', 'B':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o', 'O':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'x', 'X':
			digit = isHex
		}
		if digit != nil {
			lx.cursor.Bump()
			if !lx.eatDigits(digit) {
				lx.eatSuffix()
				tok := lx.tokenFrom(token.Invalid, start)
				lx.report(CodeBadNumber, tok.Span, "expected digits after base prefix in "+tok.Text)
				return tok
			}
			lx.eatSuffix()
			return lx.tokenFrom(token.Number, start)
		}
	}

	// десятичная целая часть (может быть пустой для ".5")
	lx.eatDigits(isDec)

	// дробная часть только если после точки цифра: "1..2" и "x.0.1" остаются операторами
	if lx.isNumberAfterDot() {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if !lx.eatDigits(isDec) {
			// "1e" или "1ex": 'e' уходит в суффикс
			lx.cursor.Reset(mark)
		}
	}

	lx.eatSuffix()
	return lx.tokenFrom(token.Number, start)
}

// eatDigits съедает цифры и '_' и сообщает, была ли хотя бы одна цифра.
func (lx *Lexer) eatDigits(digit func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		switch {
		case digit(b):
			seen = true
		case b == '_':
		default:
			return seen
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) eatSuffix() {
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
