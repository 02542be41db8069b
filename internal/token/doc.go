// Package token defines the tokens produced by the reference lexer.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Span (no unescaping).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and comments never appear in the token stream.
//   - Kind is coarse; consumers that only need the lexeme use Token.Lexeme.
package token
