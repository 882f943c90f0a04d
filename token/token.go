// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package token

import (
	"fmt"
)

// Kind is the lexical class of a token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_OPERATOR = Kind(0) // operator
	KIND_NUMBER   = Kind(1) // number
	KIND_EOF      = Kind(2) // end of input
)

// Token is a single lexical unit of an expression.
type Token struct {
	Kind   Kind   // Lexical class.
	Offset int    // Byte offset of the token in the input.
	Text   string // Source text, only meaningful for operators.
	Value  int    // Parsed value, only meaningful for numbers.
}

// Op returns the operator character, or 0 if the token is not an operator.
func (tok Token) Op() byte {
	if tok.Kind != KIND_OPERATOR || len(tok.Text) == 0 {
		return 0
	}
	return tok.Text[0]
}

func (tok Token) String() string {
	switch tok.Kind {
	case KIND_OPERATOR:
		return fmt.Sprintf("Operator(%q)", tok.Op())
	case KIND_NUMBER:
		return fmt.Sprintf("Number(%d)", tok.Value)
	case KIND_EOF:
		return "EndOfInput"
	}
	return tok.Kind.String()
}
