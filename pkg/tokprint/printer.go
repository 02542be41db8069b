package tokprint

import "io"

// Printer binds the token printer to a fixed sink.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintTokens writes tokens to the printer's sink; see Fprint.
func (p *Printer) PrintTokens(tokens ...Token) error {
	return Fprint(p.w, tokens)
}
