package lexer

import (
	"cmp"
	"slices"

	"tokdump/internal/source"
)

// Codes passed to Reporter.Report.
const (
	CodeUnterminatedString  = "UnterminatedString"
	CodeUnterminatedChar    = "UnterminatedChar"
	CodeUnterminatedComment = "UnterminatedComment"
	CodeBadNumber           = "BadNumber"
	CodeUnknownChar         = "UnknownChar"
	CodeNonNFCIdent         = "NonNFCIdent"
)

// Reporter это тонкий интерфейс, чтобы лексер не знал, куда уходят сообщения.
// Лексер **только вызывает** его; форматирует внешний слой.
type Reporter interface {
	Report(code string, span source.Span, msg string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(code string, span source.Span, msg string)

func (f ReporterFunc) Report(code string, span source.Span, msg string) { f(code, span, msg) }

// BlockComment describes a block comment delimiter pair.
type BlockComment struct {
	Open   string
	Close  string
	Nested bool
}

type Options struct {
	Reporter      Reporter // может быть nil, тогда ошибки игнорируем (но продолжаем лексить)
	LineComments  []string
	BlockComments []BlockComment
	// Operators lists multi-byte operators matched greedily (longest first).
	// Single punctuation characters are always recognized.
	Operators []string
}

// DefaultOperators is the operator set used by DefaultOptions.
var DefaultOperators = []string{
	"...", "<<=", ">>=", "&&=", "||=", "**=", "===", "!==",
	"==", "!=", "<=", ">=", "&&", "||", "<<", ">>", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"->", "=>", "::", ":=", "..", "**", "??", "?.",
}

// DefaultOptions returns C-family comments and DefaultOperators.
func DefaultOptions() Options {
	return Options{
		LineComments:  []string{"//"},
		BlockComments: []BlockComment{{Open: "/*", Close: "*/"}},
		Operators:     slices.Clone(DefaultOperators),
	}
}

func (lx *Lexer) report(code string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}

// sortOperators returns a copy ordered for longest-match lookup.
func sortOperators(ops []string) []string {
	out := make([]string, 0, len(ops))
	seen := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		if _, dup := seen[op]; dup || op == "" {
			continue
		}
		seen[op] = struct{}{}
		out = append(out, op)
	}
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	return out
}
