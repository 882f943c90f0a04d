// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bufio"
	"io"
	"log"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Assembler is a single pass assembler for the Intel syntax x86-64 subset
// produced by codegen.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	Label  map[string]int  // Map of labels to opcode indexes.
	Global map[string]bool // Symbols declared by .globl.

	intel bool // Set by '.intel_syntax noprefix'.
}

// regMap is a map of register names.
var regMap = func() map[string]Register {
	regs := make(map[string]Register, REG_COUNT)
	for reg := range Register(REG_COUNT) {
		regs[reg.String()] = reg
	}
	return regs
}()

// opMap is a map of mnemonics.
var opMap = map[string]Op{
	"mov":  OP_MOV,
	"add":  OP_ADD,
	"sub":  OP_SUB,
	"push": OP_PUSH,
	"pop":  OP_POP,
	"ret":  OP_RET,
}

// valueOf returns the operand encoded by a word.
func (asm *Assembler) valueOf(word string) (arg Operand, err error) {
	reg, ok := regMap[strings.ToLower(word)]
	if ok {
		arg = Operand{IsReg: true, Reg: reg}
		return
	}

	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseValue(word)
		return
	}

	arg = Operand{Imm: v64}

	return
}

// imm32 checks that an immediate operand is sign-extendable from 32 bits.
func imm32(arg Operand) (err error) {
	if !arg.IsReg && (arg.Imm > math.MaxInt32 || arg.Imm < math.MinInt32) {
		err = ErrImmediateRange
	}
	return
}

// parseDirective handles an assembler directive.
func (asm *Assembler) parseDirective(words []string) (err error) {
	switch words[0] {
	case ".intel_syntax":
		if len(words) != 2 || words[1] != "noprefix" {
			err = ErrSyntaxMode
			return
		}
		asm.intel = true
	case ".att_syntax":
		err = ErrSyntaxMode
	case ".globl", ".global":
		if len(words) != 2 {
			err = ErrDirectiveSyntax
			return
		}
		asm.Global[words[1]] = true
	case ".text":
		if len(words) != 1 {
			err = ErrDirectiveSyntax
		}
	default:
		err = ErrDirectiveInvalid
	}

	return
}

// parseWords evaluates the words of an instruction.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	op, ok := opMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	if !asm.intel {
		err = ErrSyntaxMode
		return
	}

	var args []Operand
	if len(words) > 1 {
		for _, word := range strings.Split(strings.Join(words[1:], " "), ",") {
			word = strings.TrimSpace(word)
			if len(word) == 0 {
				err = ErrOpcodeValueMissing
				return
			}
			var arg Operand
			arg, err = asm.valueOf(word)
			if err != nil {
				return
			}
			args = append(args, arg)
		}
	}

	var need int
	switch op {
	case OP_MOV, OP_ADD, OP_SUB:
		need = 2
	case OP_PUSH, OP_POP:
		need = 1
	case OP_RET:
		need = 0
	}

	switch {
	case len(args) < need:
		err = ErrOpcodeValueMissing
		return
	case len(args) > need:
		err = ErrOpcodeExtraArgs
		return
	}

	switch op {
	case OP_MOV:
		if !args[0].IsReg {
			err = ErrRegisterInvalid
		}
	case OP_ADD, OP_SUB:
		if !args[0].IsReg {
			err = ErrRegisterInvalid
			return
		}
		err = imm32(args[1])
	case OP_PUSH:
		err = imm32(args[0])
	case OP_POP:
		if !args[0].IsReg {
			err = ErrRegisterInvalid
		}
	}
	if err != nil {
		return
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo: lineno,
		Words:  slices.Clone(words),
		Op:     op,
		Args:   args,
	})

	return
}

// parseLine parses a single line of assembly text.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	words := strings.Fields(line)

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if _, ok := asm.Label[label]; ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = len(asm.Opcode)
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	if strings.HasPrefix(words[0], ".") {
		return asm.parseDirective(words)
	}

	return asm.parseWords(words, lineno)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Label = make(map[string]int)
	asm.Global = make(map[string]bool)
	asm.intel = false

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text, _, _ = strings.Cut(text, "#")
		line = strings.TrimSpace(text)

		err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Label:   asm.Label,
		Global:  asm.Global,
	}

	return
}
