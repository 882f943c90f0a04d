package emulator

import (
	"errors"

	"github.com/ezrec/addsub/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrSyntaxMode         = errors.New(f("intel noprefix syntax required"))
	ErrDirectiveSyntax    = errors.New(f("directive syntax"))
	ErrDirectiveInvalid   = errors.New(f("directive invalid"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrImmediateRange     = errors.New(f("immediate out of range"))

	// Runtime errors
	ErrIpRange    = errors.New(f("ip out of program"))
	ErrStackEmpty = errors.New(f("stack empty"))
	ErrStackFull  = errors.New(f("stack full"))
	ErrTickLimit  = errors.New(f("tick limit exceeded"))
)

type ErrEntryMissing string

func (err ErrEntryMissing) Error() string {
	return f("global entry %v missing", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}

// ErrMismatch reports an accumulator that disagrees with the oracle.
type ErrMismatch struct {
	Expr     string
	Expected int64
	Actual   int64
}

func (err *ErrMismatch) Error() string {
	return f("'%v' evaluates to %d, accumulator is %d", err.Expr, err.Expected, err.Actual)
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
