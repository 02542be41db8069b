package lexer

import (
	"unicode"
)

// skipTrivia пропускает подряд идущие пробелы и комментарии перед значимым токеном.
// Незакрытый блочный комментарий: репорт и обрезаем на EOF.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
			lx.cursor.Bump()
			continue
		case b >= utf8RuneSelf:
			if r, _ := lx.peekRune(); unicode.IsSpace(r) {
				lx.bumpRune()
				continue
			}
		}

		if lx.skipLineComment() || lx.skipBlockComment() {
			continue
		}
		return
	}
}

func (lx *Lexer) skipLineComment() bool {
	for _, prefix := range lx.opts.LineComments {
		if !lx.cursor.EatPrefix(prefix) {
			continue
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true
	}
	return false
}

func (lx *Lexer) skipBlockComment() bool {
	for _, bc := range lx.opts.BlockComments {
		if bc.Open == "" || bc.Close == "" {
			continue
		}
		start := lx.cursor.Mark()
		if !lx.cursor.EatPrefix(bc.Open) {
			continue
		}
		depth := 1
		for depth > 0 {
			switch {
			case lx.cursor.EOF():
				lx.report(CodeUnterminatedComment, lx.cursor.SpanFrom(start), "unterminated block comment")
				return true
			case lx.cursor.EatPrefix(bc.Close):
				depth--
			case bc.Nested && lx.cursor.EatPrefix(bc.Open):
				depth++
			default:
				lx.cursor.Bump()
			}
		}
		return true
	}
	return false
}
