// Package tokprint prints what a tokenizer produced, one lexeme per line.
// Invariants:
//   - Output record count equals input token count; order is preserved.
//   - Each record is the token's lexeme written verbatim, then "\n".
//     No quoting, escaping, header, footer or counter is ever added.
//   - An empty sequence writes nothing.
//   - The printer never inspects token kinds and keeps no state between calls.
package tokprint
