// Package testkit holds checks shared by tests of the lexer and driver.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"tokdump/internal/source"
	"tokdump/internal/token"
)

// CheckTokenSpans runs a minimal set of invariants on a token sequence:
// 1) every span points to sf, is non-empty and lies within the content
// 2) spans are strictly ordered and do not overlap
// 3) token text equals the source bytes covered by its span
func CheckTokenSpans(sf *source.File, tokens []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span points to file %d, want %d", i, sp.File, sf.ID)
		}
		if sp.Empty() || sp.End < sp.Start {
			return fmt.Errorf("token %d: empty span %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous token ending at %d", i, sp, prevEnd)
		}
		if got := sf.Text(sp); got != tok.Text {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tok.Text, got)
		}
		prevEnd = sp.End
	}
	return nil
}
