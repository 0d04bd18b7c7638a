package vm

import (
	"errors"

	"github.com/asmvm/asmvm/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrStackEmpty   = errors.New(f("stack empty"))
	ErrDivideByZero = errors.New(f("divide by zero"))

	// Assembler errors
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("excessive operands"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the source location of an execution fault.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err ErrRuntime) Unwrap() error {
	return err.Err
}
