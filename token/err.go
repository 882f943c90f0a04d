package token

import (
	"unicode/utf8"

	"github.com/ezrec/addsub/translate"
)

var f = translate.From

// ErrTokenize reports a character that starts no token.
type ErrTokenize struct {
	Offset int    // Byte offset in the input.
	Char   rune   // Offending character, utf8.RuneError for invalid UTF-8.
	Text   string // Source text of the offending character.
}

func (err *ErrTokenize) Error() string {
	if !utf8.ValidString(err.Text) {
		return f("offset %d: cannot tokenize %q", err.Offset, err.Text)
	}
	return f("offset %d: cannot tokenize %q", err.Offset, err.Char)
}

// ErrNumberRange reports a digit run that does not fit a 32-bit signed value.
type ErrNumberRange struct {
	Offset int
	Text   string
	Err    error
}

func (err *ErrNumberRange) Error() string {
	return f("offset %d: number %q is out of range", err.Offset, err.Text)
}

func (err *ErrNumberRange) Unwrap() error {
	return err.Err
}
