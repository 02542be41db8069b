package driver

import (
	"tokdump/internal/lexer"
	"tokdump/internal/source"
	"tokdump/internal/token"
)

// Report is a lexer message resolved to a line/column.
type Report struct {
	Code string
	Span source.Span
	Pos  source.LineCol
	Msg  string
}

type TokenizeResult struct {
	Path    string
	FileID  source.FileID
	Tokens  []token.Token // без завершающего EOF
	Reports []Report
}

// collector собирает сообщения лексера для одного файла.
// Один collector на файл, вызывается только из горутины этого файла.
type collector struct {
	fileSet *source.FileSet
	reports []Report
}

func (c *collector) Report(code string, span source.Span, msg string) {
	pos, _ := c.fileSet.Resolve(span)
	c.reports = append(c.reports, Report{Code: code, Span: span, Pos: pos, Msg: msg})
}

// TokenizeSource lexes in-memory content (stdin, tests) as a virtual file.
func TokenizeSource(fileSet *source.FileSet, name string, content []byte, opts lexer.Options) *TokenizeResult {
	res := tokenizeFile(fileSet, fileSet.AddVirtual(name, content), opts)
	return &res
}

// tokenizeFile lexes an already loaded file until EOF.
// opts.Reporter is replaced; lexer messages land in the result.
func tokenizeFile(fileSet *source.FileSet, fileID source.FileID, opts lexer.Options) TokenizeResult {
	file := fileSet.Get(fileID)
	c := &collector{fileSet: fileSet}
	opts.Reporter = c

	tokens := lexer.New(file, opts).All()
	return TokenizeResult{
		Path:    file.Path,
		FileID:  fileID,
		Tokens:  tokens,
		Reports: c.reports,
	}
}

// Flatten concatenates the token sequences of results in order.
// Group boundaries are not marked.
func Flatten(results []TokenizeResult) []token.Token {
	n := 0
	for i := range results {
		n += len(results[i].Tokens)
	}
	out := make([]token.Token, 0, n)
	for i := range results {
		out = append(out, results[i].Tokens...)
	}
	return out
}
