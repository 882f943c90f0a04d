// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"strings"
)

// Register is a 64-bit general purpose register, in encoding order.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_RAX = Register(0)  // rax
	REG_RCX = Register(1)  // rcx
	REG_RDX = Register(2)  // rdx
	REG_RBX = Register(3)  // rbx
	REG_RSP = Register(4)  // rsp
	REG_RBP = Register(5)  // rbp
	REG_RSI = Register(6)  // rsi
	REG_RDI = Register(7)  // rdi
	REG_R8  = Register(8)  // r8
	REG_R9  = Register(9)  // r9
	REG_R10 = Register(10) // r10
	REG_R11 = Register(11) // r11
	REG_R12 = Register(12) // r12
	REG_R13 = Register(13) // r13
	REG_R14 = Register(14) // r14
	REG_R15 = Register(15) // r15

	REG_COUNT = 16
)

// Op is an instruction mnemonic.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_MOV  = Op(0) // mov
	OP_ADD  = Op(1) // add
	OP_SUB  = Op(2) // sub
	OP_PUSH = Op(3) // push
	OP_POP  = Op(4) // pop
	OP_RET  = Op(5) // ret
)

// Operand is either a register or an immediate.
type Operand struct {
	IsReg bool
	Reg   Register
	Imm   int64
}

func (arg Operand) String() string {
	if arg.IsReg {
		return arg.Reg.String()
	}
	return fmt.Sprintf("%d", arg.Imm)
}

// Opcode is a single assembled instruction.
type Opcode struct {
	LineNo int       // Source line number.
	Words  []string  // Source words, after label removal.
	Op     Op        // Mnemonic.
	Args   []Operand // Operands, destination first.
}

func (op Opcode) String() string {
	if len(op.Args) == 0 {
		return op.Op.String()
	}

	args := make([]string, len(op.Args))
	for n, arg := range op.Args {
		args[n] = arg.String()
	}

	return op.Op.String() + " " + strings.Join(args, ", ")
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
	Label   map[string]int  // Map of labels to opcode indexes.
	Global  map[string]bool // Symbols declared global.
}

// Entry returns the opcode index of a global symbol.
func (prog *Program) Entry(symbol string) (index int, err error) {
	index, ok := prog.Label[symbol]
	if !ok || !prog.Global[symbol] {
		err = ErrEntryMissing(symbol)
		return
	}

	return
}
