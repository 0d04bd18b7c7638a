package vm

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// opMap maps mnemonics to operation codes. Anything not listed here is
// either a label definition or dropped as a no-op.
var opMap = map[string]Op{
	"mov":  OP_MOV,
	"inc":  OP_INC,
	"dec":  OP_DEC,
	"add":  OP_ADD,
	"sub":  OP_SUB,
	"mul":  OP_MUL,
	"div":  OP_DIV,
	"call": OP_CALL,
	"cmp":  OP_CMP,
	"jmp":  OP_JMP,
	"jne":  OP_JNE,
	"je":   OP_JE,
	"jge":  OP_JGE,
	"jg":   OP_JG,
	"jle":  OP_JLE,
	"jl":   OP_JL,
	"msg":  OP_MSG,
	"ret":  OP_RET,
	"end":  OP_END,
}

// Assembler converts assembly source text into a Program.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Parse parses an input stream into a Program. Every source line yields
// exactly one instruction, so instruction indexes track line positions.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{
		Labels: make(map[string]int, 16),
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		// Strip the line comment.
		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var inst Instruction
		inst, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		prog.Instructions = append(prog.Instructions, inst)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Control transfers to the instruction after the label marker.
	// A duplicated label keeps its last definition.
	for n, inst := range prog.Instructions {
		if inst.Op == OP_LABEL {
			prog.Labels[inst.Args[0]] = n + 1
		}
	}

	return
}

// parseLine converts a single comment-stripped line into an instruction.
func (asm *Assembler) parseLine(line string, lineno int) (inst Instruction, err error) {
	inst.LineNo = lineno

	words := strings.Fields(line)
	if len(words) == 0 {
		// Blank lines keep their slot as no-ops.
		return
	}

	op, known := opMap[words[0]]
	if !known {
		if strings.HasSuffix(words[0], ":") {
			inst.Op = OP_LABEL
			inst.Args = []string{strings.TrimSuffix(words[0], ":")}
			return
		}

		// Unknown mnemonics are dropped, not rejected.
		if asm.Verbose {
			log.Printf("%v: unknown mnemonic %q", lineno, words[0])
		}
		return
	}

	inst.Op = op

	// Operand text is the line with the mnemonic removed once. Operands
	// split on commas at the top level; quoted msg literals containing
	// commas come apart here and are reassembled by the machine.
	rest := strings.TrimSpace(strings.TrimPrefix(line, words[0]))
	if len(rest) > 0 {
		for _, arg := range strings.Split(rest, ",") {
			inst.Args = append(inst.Args, strings.TrimSpace(arg))
		}
	}

	switch arity := op.Arity(); {
	case arity < 0 && len(inst.Args) == 0:
		err = ErrOperandMissing
	case arity >= 0 && len(inst.Args) < arity:
		err = ErrOperandMissing
	case arity >= 0 && len(inst.Args) > arity:
		err = ErrOperandExtra
	}
	if err != nil {
		inst = Instruction{}
		return
	}

	return
}
