// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"log"
	"strings"
)

// HOST_RETURN is the return address of the caller of the entry point.
const HOST_RETURN = int64(-1)

// Cpu is the register and stack state of a single x86-64 thread.
type Cpu struct {
	Verbose  bool             // If set, logs each executed opcode.
	Register [REG_COUNT]int64 // General purpose registers.
	Ip       int              // Index of the next opcode.
	Stack    Stack            // Memory addressed by rsp.
	Ticks    int              // Opcodes executed since reset.
}

// Reset clears the registers and calls entry from the host.
func (cpu *Cpu) Reset(entry int) {
	clear(cpu.Register[:])
	cpu.Stack.Reset()
	cpu.Register[REG_RSP] = STACK_TOP
	_ = cpu.Stack.Push(&cpu.Register[REG_RSP], HOST_RETURN)
	cpu.Ip = entry
	cpu.Ticks = 0
}

// value reads an operand.
func (cpu *Cpu) value(arg Operand) int64 {
	if arg.IsReg {
		return cpu.Register[arg.Reg]
	}
	return arg.Imm
}

// Execute runs a single opcode. done is set when the entry point returns
// to the host.
func (cpu *Cpu) Execute(op *Opcode) (done bool, err error) {
	if cpu.Verbose {
		log.Printf("%04d: %v\n", cpu.Ip, op)
	}

	cpu.Ticks++
	cpu.Ip++

	switch op.Op {
	case OP_MOV:
		cpu.Register[op.Args[0].Reg] = cpu.value(op.Args[1])
	case OP_ADD:
		cpu.Register[op.Args[0].Reg] += cpu.value(op.Args[1])
	case OP_SUB:
		cpu.Register[op.Args[0].Reg] -= cpu.value(op.Args[1])
	case OP_PUSH:
		err = cpu.Stack.Push(&cpu.Register[REG_RSP], cpu.value(op.Args[0]))
	case OP_POP:
		var value int64
		value, err = cpu.Stack.Pop(&cpu.Register[REG_RSP])
		if err != nil {
			return
		}
		cpu.Register[op.Args[0].Reg] = value
	case OP_RET:
		var ip int64
		ip, err = cpu.Stack.Pop(&cpu.Register[REG_RSP])
		if err != nil {
			return
		}
		if ip == HOST_RETURN {
			done = true
			return
		}
		cpu.Ip = int(ip)
	default:
		err = ErrOpcodeInvalid
	}

	return
}

func (cpu *Cpu) String() string {
	var regs []string
	for reg := range Register(REG_COUNT) {
		regs = append(regs, fmt.Sprintf("%v=%#x", reg, cpu.Register[reg]))
	}
	return fmt.Sprintf("ip=%d %v stack=%v", cpu.Ip, strings.Join(regs, " "), cpu.Stack.Data)
}
