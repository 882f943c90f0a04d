// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package token splits an additive expression into tokens.
//
// The accepted alphabet is decimal digits, the '+' and '-' operators, and
// ASCII white space. The resulting sequence always ends with a single
// KIND_EOF token. The order of numbers and operators is not checked here.
package token

import (
	"log"
	"strconv"
	"unicode/utf8"
)

// Tokenizer is a single pass scanner over an expression.
type Tokenizer struct {
	Verbose bool // If set, logs each token as it is produced.
}

// isSpace matches the C locale white space class.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Tokenize scans input with a default Tokenizer.
func Tokenize(input string) (tokens []Token, err error) {
	tk := &Tokenizer{}
	return tk.Tokenize(input)
}

// Tokenize scans input once, left to right.
func (tk *Tokenizer) Tokenize(input string) (tokens []Token, err error) {
	add := func(tok Token) {
		if tk.Verbose {
			log.Printf("%v: %v\n", tok.Offset, tok)
		}
		tokens = append(tokens, tok)
	}

	pos := 0
	for pos < len(input) {
		c := input[pos]

		switch {
		case isSpace(c):
			pos++
		case c == '+' || c == '-':
			add(Token{Kind: KIND_OPERATOR, Offset: pos, Text: input[pos : pos+1]})
			pos++
		case isDigit(c):
			start := pos
			for pos < len(input) && isDigit(input[pos]) {
				pos++
			}
			text := input[start:pos]
			var v64 int64
			v64, err = strconv.ParseInt(text, 10, 32)
			if err != nil {
				tokens, err = nil, &ErrNumberRange{Offset: start, Text: text, Err: err}
				return
			}
			add(Token{Kind: KIND_NUMBER, Offset: start, Value: int(v64)})
		default:
			char, size := utf8.DecodeRuneInString(input[pos:])
			tokens, err = nil, &ErrTokenize{Offset: pos, Char: char, Text: input[pos : pos+size]}
			return
		}
	}

	add(Token{Kind: KIND_EOF, Offset: pos})

	return
}
