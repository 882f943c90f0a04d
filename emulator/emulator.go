// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator assembles and runs the x86-64 listings emitted by codegen.
//
// Only the instructions needed for straight-line integer code are known:
// mov, add, sub, push, pop and ret on the 64-bit general purpose registers.
// The program is entered at the global main label, and the process exit code
// is the low byte of rax when main returns.
package emulator

const (
	TICK_LIMIT = 1 << 20 // Default maximum number of opcodes per run.
)

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose bool     // If set, enables verbose logging.
	*Cpu             // Reference to the CPU simulation.
	Program *Program // Reference to the currently running program listing.

	Entry     string // Entry point symbol.
	TickLimit int    // Maximum opcodes per run, zero for no limit.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:       &Cpu{},
		Program:   &Program{},
		Entry:     "main",
		TickLimit: TICK_LIMIT,
	}

	return
}

// Reset the processor to the program entry point.
func (emu *Emulator) Reset() (err error) {
	entry, err := emu.Program.Entry(emu.Entry)
	if err != nil {
		return
	}

	emu.Cpu.Reset(entry)

	return
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	if emu.Cpu.Ip >= 0 && emu.Cpu.Ip < len(emu.Program.Opcodes) {
		return emu.Program.Opcodes[emu.Cpu.Ip].LineNo
	}

	return 0
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.Cpu.Ip < 0 || emu.Cpu.Ip >= len(emu.Program.Opcodes) {
		err = ErrIpRange
		return
	}

	if emu.TickLimit > 0 && emu.Cpu.Ticks >= emu.TickLimit {
		err = ErrTickLimit
		return
	}

	return emu.Cpu.Execute(&emu.Program.Opcodes[emu.Cpu.Ip])
}

// Run resets the emulator and ticks until the entry point returns.
func (emu *Emulator) Run() (exitCode int, err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	exitCode = emu.ExitCode()

	return
}

// Accumulator returns the value of rax.
func (emu *Emulator) Accumulator() int64 {
	return emu.Cpu.Register[REG_RAX]
}

// ExitCode returns the process exit status the host would observe.
func (emu *Emulator) ExitCode() int {
	return int(emu.Accumulator() & 0xff)
}

// Check compares the accumulator against the oracle evaluation of expr.
func (emu *Emulator) Check(expr string) (err error) {
	value, err := Evaluate(expr)
	if err != nil {
		return
	}

	if value != emu.Accumulator() {
		err = &ErrMismatch{Expr: expr, Expected: value, Actual: emu.Accumulator()}
	}

	return
}
