package vm

import (
	"strings"
)

// Op is an instruction operation code.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP   = Op(0)  // nop
	OP_MOV   = Op(1)  // mov
	OP_INC   = Op(2)  // inc
	OP_DEC   = Op(3)  // dec
	OP_ADD   = Op(4)  // add
	OP_SUB   = Op(5)  // sub
	OP_MUL   = Op(6)  // mul
	OP_DIV   = Op(7)  // div
	OP_LABEL = Op(8)  // label
	OP_CALL  = Op(9)  // call
	OP_CMP   = Op(10) // cmp
	OP_JMP   = Op(11) // jmp
	OP_JNE   = Op(12) // jne
	OP_JE    = Op(13) // je
	OP_JGE   = Op(14) // jge
	OP_JG    = Op(15) // jg
	OP_JLE   = Op(16) // jle
	OP_JL    = Op(17) // jl
	OP_MSG   = Op(18) // msg
	OP_RET   = Op(19) // ret
	OP_END   = Op(20) // end
)

// Arity returns the operand count the op requires. A negative count is
// variadic with at least one operand.
func (op Op) Arity() (count int) {
	switch op {
	case OP_MOV, OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_CMP:
		count = 2
	case OP_INC, OP_DEC, OP_LABEL, OP_CALL,
		OP_JMP, OP_JNE, OP_JE, OP_JGE, OP_JG, OP_JLE, OP_JL:
		count = 1
	case OP_MSG:
		count = -1
	}

	return
}

// Instruction represents a single parsed line of assembly source.
// Instructions are immutable once parsed.
type Instruction struct {
	LineNo int      // Source line number.
	Op     Op       // Operation.
	Args   []string // Operand tokens, in source order.
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() (out string) {
	switch inst.Op {
	case OP_LABEL:
		out = inst.Args[0] + ":"
	case OP_NOP, OP_RET, OP_END:
		out = inst.Op.String()
	default:
		out = inst.Op.String() + " " + strings.Join(inst.Args, ", ")
	}

	return
}
