package codegen

import (
	"github.com/ezrec/addsub/token"
	"github.com/ezrec/addsub/translate"
)

var f = translate.From

// ErrExpectedOperator reports a missing required operator.
type ErrExpectedOperator struct {
	Op    byte        // Required operator.
	Token token.Token // Token found at the cursor.
}

func (err *ErrExpectedOperator) Error() string {
	return f("offset %d: expected %q", err.Token.Offset, rune(err.Op))
}

// ErrExpectedNumber reports a missing required number.
type ErrExpectedNumber struct {
	Token token.Token // Token found at the cursor.
}

func (err *ErrExpectedNumber) Error() string {
	return f("offset %d: expected a number, got %v", err.Token.Offset, f(err.Token.Kind.String()))
}
