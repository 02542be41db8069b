package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token (unterminated literal, stray byte).
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident represents an identifier or keyword; the lexer does not tell them apart.
	Ident
	// Number represents a numeric literal.
	Number
	// String represents a double-quoted string literal.
	String
	// Char represents a single-quoted literal.
	Char
	// Punct represents an operator or punctuation.
	Punct
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:   "Ident",
	Number:  "Number",
	String:  "String",
	Char:    "Char",
	Punct:   "Punct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
