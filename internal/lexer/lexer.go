package lexer

import (
	"tokdump/internal/source"
	"tokdump/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	ops    []string // Operators, самые длинные первыми
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		ops:    sortOperators(opts.Operators),
	}
}

// Next возвращает следующий значимый токен; пробелы и комментарии пропускаются.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdent()
	case ch >= utf8RuneSelf:
		// Unicode: буква → идентификатор, иначе символ/пунктуация
		if r, _ := lx.peekRune(); isIdentStartRune(r) {
			return lx.scanIdent()
		}
		return lx.scanOperatorOrPunct()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"' || ch == '`':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// All lexes the rest of the file. The trailing EOF token is not included.
func (lx *Lexer) All() []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.IsEOF() {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) tokenFrom(kind token.Kind, m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: kind, Span: sp, Text: lx.file.Text(sp)}
}
