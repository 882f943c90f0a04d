// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package codegen emits x86-64 assembly for a tokenized additive expression.
//
// The expression is evaluated left to right in the rax accumulator, and the
// result is returned from main:
//
//	.intel_syntax noprefix
//	.globl main
//	main:
//	  mov rax, 10
//	  sub rax, 3
//	  add rax, 2
//	  ret
package codegen

import (
	"fmt"
	"io"
	"log"

	"github.com/ezrec/addsub/token"
)

// Accumulator is the register holding the running result.
const Accumulator = "rax"

// Emitter walks a token sequence once, writing assembly as it goes.
type Emitter struct {
	Verbose bool // If set, logs each token consumed.

	tokens []token.Token
	cursor int
	err    error
}

// NewEmitter returns an emitter positioned at the first token.
//
// A sequence lacking the terminating KIND_EOF token is terminated here.
func NewEmitter(tokens []token.Token) (e *Emitter) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.KIND_EOF {
		var offset int
		if len(tokens) > 0 {
			offset = tokens[len(tokens)-1].Offset + 1
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.Token{Kind: token.KIND_EOF, Offset: offset})
	}

	e = &Emitter{
		tokens: tokens,
	}

	return
}

// Cursor returns the token currently under examination.
func (e *Emitter) Cursor() token.Token {
	return e.tokens[e.cursor]
}

// advance moves the cursor forward. It never moves past KIND_EOF.
func (e *Emitter) advance() {
	if e.Verbose {
		log.Printf("codegen: consumed %v", e.Cursor())
	}
	if e.cursor < len(e.tokens)-1 {
		e.cursor++
	}
}

// Consume advances past the current token if it is the operator op.
func (e *Emitter) Consume(op byte) bool {
	tok := e.Cursor()
	if tok.Kind != token.KIND_OPERATOR || tok.Op() != op {
		return false
	}
	e.advance()
	return true
}

// Expect is Consume, failing when the operator is absent.
func (e *Emitter) Expect(op byte) (err error) {
	if !e.Consume(op) {
		err = &ErrExpectedOperator{Op: op, Token: e.Cursor()}
	}
	return
}

// ExpectNumber returns the value of the current number token and advances.
func (e *Emitter) ExpectNumber() (value int, err error) {
	tok := e.Cursor()
	if tok.Kind != token.KIND_NUMBER {
		err = &ErrExpectedNumber{Token: tok}
		return
	}
	value = tok.Value
	e.advance()
	return
}

// AtEnd is true when the cursor is at the KIND_EOF token.
func (e *Emitter) AtEnd() bool {
	return e.Cursor().Kind == token.KIND_EOF
}

// line writes a single line of assembly, keeping the first write error.
func (e *Emitter) line(w io.Writer, format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(w, format+"\n", args...)
}

// Emit writes the program to w.
//
// Lines written before a failure are left in w.
func (e *Emitter) Emit(w io.Writer) (err error) {
	defer func() {
		if err == nil {
			err = e.err
		}
	}()

	e.line(w, ".intel_syntax noprefix")
	e.line(w, ".globl main")
	e.line(w, "main:")

	value, err := e.ExpectNumber()
	if err != nil {
		return
	}
	e.line(w, "  mov %v, %d", Accumulator, value)

	for !e.AtEnd() {
		if e.Consume('+') {
			value, err = e.ExpectNumber()
			if err != nil {
				return
			}
			e.line(w, "  add %v, %d", Accumulator, value)
			continue
		}

		err = e.Expect('-')
		if err != nil {
			return
		}
		value, err = e.ExpectNumber()
		if err != nil {
			return
		}
		e.line(w, "  sub %v, %d", Accumulator, value)
	}

	e.line(w, "  ret")

	return
}

// Compile tokenizes input and writes its program to w.
func Compile(w io.Writer, input string) (err error) {
	tokens, err := token.Tokenize(input)
	if err != nil {
		return
	}

	return NewEmitter(tokens).Emit(w)
}
