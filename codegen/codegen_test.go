package codegen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/addsub/emulator"
	"github.com/ezrec/addsub/token"
)

func num(value int) token.Token {
	return token.Token{Kind: token.KIND_NUMBER, Value: value}
}

func op(text string) token.Token {
	return token.Token{Kind: token.KIND_OPERATOR, Text: text}
}

var eof = token.Token{Kind: token.KIND_EOF}

func lines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// run assembles and executes a listing.
func run(t *testing.T, listing string) (emu *emulator.Emulator) {
	assert := assert.New(t)

	asm := &emulator.Assembler{}
	prog, err := asm.Parse(strings.NewReader(listing))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	emu = emulator.NewEmulator()
	emu.Program = prog
	_, err = emu.Run()
	assert.NoError(err)

	return
}

func TestCursor(t *testing.T) {
	assert := assert.New(t)

	e := NewEmitter([]token.Token{num(1), op("+"), num(2), eof})

	assert.False(e.Consume('+'))
	assert.Equal(token.KIND_NUMBER, e.Cursor().Kind)

	value, err := e.ExpectNumber()
	assert.NoError(err)
	assert.Equal(1, value)

	assert.False(e.Consume('-'))
	assert.Equal(byte('+'), e.Cursor().Op())
	assert.True(e.Consume('+'))

	_, err = e.ExpectNumber()
	assert.NoError(err)
	assert.True(e.AtEnd())

	// The cursor never moves past the end.
	assert.False(e.Consume('+'))
	assert.True(e.AtEnd())
}

func TestExpect(t *testing.T) {
	assert := assert.New(t)

	e := NewEmitter([]token.Token{op("-"), num(3), eof})
	err := e.Expect('+')
	var eo *ErrExpectedOperator
	if assert.True(errors.As(err, &eo)) {
		assert.Equal(byte('+'), eo.Op)
		assert.Equal(byte('-'), eo.Token.Op())
		assert.Contains(err.Error(), "+")
	}

	assert.NoError(e.Expect('-'))
	err = e.Expect('-')
	assert.True(errors.As(err, &eo))
	assert.Equal(token.KIND_NUMBER, eo.Token.Kind)
}

func TestExpectNumber(t *testing.T) {
	assert := assert.New(t)

	e := NewEmitter([]token.Token{op("+"), eof})
	_, err := e.ExpectNumber()
	var en *ErrExpectedNumber
	if assert.True(errors.As(err, &en)) {
		assert.Equal(token.KIND_OPERATOR, en.Token.Kind)
	}
	// Failures leave the cursor in place.
	assert.Equal(token.KIND_OPERATOR, e.Cursor().Kind)
}

func TestNewEmitter_Terminates(t *testing.T) {
	assert := assert.New(t)

	e := NewEmitter(nil)
	assert.True(e.AtEnd())

	tokens := []token.Token{num(7)}
	e = NewEmitter(tokens)
	assert.Equal(1, len(tokens))
	_, err := e.ExpectNumber()
	assert.NoError(err)
	assert.True(e.AtEnd())
}

func TestEmit(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	err := NewEmitter([]token.Token{num(1), op("+"), num(2), op("+"), num(3), eof}).Emit(out)
	assert.NoError(err)

	expected := []string{
		".intel_syntax noprefix",
		".globl main",
		"main:",
		"  mov rax, 1",
		"  add rax, 2",
		"  add rax, 3",
		"  ret",
	}
	assert.Equal(expected, lines(out.String()))

	emu := run(t, out.String())
	assert.Equal(int64(6), emu.Accumulator())
	assert.Equal(6, emu.ExitCode())
}

func TestEmit_LeftAssociative(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	assert.NoError(Compile(out, "10-3+2"))

	assert.Equal([]string{"  mov rax, 10", "  sub rax, 3", "  add rax, 2", "  ret"}, lines(out.String())[3:])

	emu := run(t, out.String())
	assert.Equal(int64(9), emu.Accumulator())
	assert.NotEqual(int64(10-(3+2)), emu.Accumulator())
}

func TestEmit_Order(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	assert.NoError(Compile(out, "5 - 1 + 2 - 3 + 4"))

	assert.Equal([]string{
		"  mov rax, 5",
		"  sub rax, 1",
		"  add rax, 2",
		"  sub rax, 3",
		"  add rax, 4",
		"  ret",
	}, lines(out.String())[3:])
}

func TestEmit_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		input    string
		operator bool // ErrExpectedOperator, else ErrExpectedNumber
		offset   int
		written  int // lines of assembly written before failing
	}{
		{"", false, 0, 3},
		{"+5", false, 0, 3},
		{"1+", false, 2, 4},
		{"1-", false, 2, 4},
		{"1 2", true, 2, 4},
		{"1+2 3", true, 4, 5},
		{"1++2", false, 2, 4},
	}

	for _, entry := range table {
		out := &bytes.Buffer{}
		err := Compile(out, entry.input)
		if entry.operator {
			var eo *ErrExpectedOperator
			if assert.True(errors.As(err, &eo), entry.input) {
				assert.Equal(byte('-'), eo.Op, entry.input)
				assert.Equal(entry.offset, eo.Token.Offset, entry.input)
			}
		} else {
			var en *ErrExpectedNumber
			if assert.True(errors.As(err, &en), entry.input) {
				assert.Equal(entry.offset, en.Token.Offset, entry.input)
			}
		}
		assert.Equal(entry.written, len(lines(out.String())), entry.input)
	}
}

func TestCompile_Tokenize(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	err := Compile(out, "12&3")
	var te *token.ErrTokenize
	assert.True(errors.As(err, &te))
	assert.Equal(0, out.Len())
}

type failWriter struct {
	err error
}

func (w *failWriter) Write(data []byte) (int, error) {
	return 0, w.err
}

func TestEmit_WriteError(t *testing.T) {
	assert := assert.New(t)

	failed := errors.New("disk full")
	err := Compile(&failWriter{err: failed}, "1+2")
	assert.ErrorIs(err, failed)
}
