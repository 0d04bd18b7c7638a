package vm

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Machine executes a parsed program. All mutable run state lives here;
// construct a fresh Machine (or Reset) per run. The Program is read-only
// and may be shared between machines.
type Machine struct {
	Program *Program // Program under execution.

	Registers map[string]int64 // Register bank; unseen names read as 0.
	Stack     Stack            // Call stack of return addresses.
	Ip        int              // Instruction pointer.
	Zf        bool             // Zero flag, set only by cmp.
	Cf        bool             // Carry flag, set only by cmp.
	Out       string           // Output buffer, replaced by each msg.

	halted bool
	logger *zap.Logger
}

type MachineOpt func(*Machine) *Machine

// LoggerOpt sets the execution trace logger.
func LoggerOpt(l *zap.Logger) MachineOpt {
	return func(m *Machine) *Machine {
		m.logger = l
		return m
	}
}

// NewMachine creates a machine ready to run prog from the first instruction.
func NewMachine(prog *Program, opts ...MachineOpt) (m *Machine) {
	m = &Machine{
		Program:   prog,
		Registers: make(map[string]int64),
		logger:    zap.L(),
	}

	for _, opt := range opts {
		m = opt(m)
	}

	m.logger = m.logger.Named("vm")

	return
}

// Interpret assembles and runs source text, returning the program output.
// ok reports whether the program reached an end instruction; a program
// that runs off the end of its instructions terminates with no output.
func Interpret(source string) (out string, ok bool, err error) {
	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	return NewMachine(prog).Run()
}

// Reset clears all run state, keeping the program.
func (m *Machine) Reset() {
	clear(m.Registers)
	m.Stack.Reset()
	m.Ip = 0
	m.Zf = false
	m.Cf = false
	m.Out = ""
	m.halted = false
}

// Run executes from the current instruction pointer to termination.
func (m *Machine) Run() (out string, ok bool, err error) {
	for {
		var done bool
		done, err = m.Step()
		if err != nil {
			return
		}
		if done {
			if m.halted {
				out = m.Out
				ok = true
			}
			return
		}
	}
}

// Step executes the instruction under the instruction pointer. done
// reports that the run terminated: either an end instruction was reached,
// or the pointer ran past the last instruction.
func (m *Machine) Step() (done bool, err error) {
	inst := m.Program.Debug(m.Ip)
	if inst == nil {
		// Running off the end is the normal no-output termination.
		done = true
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: inst.LineNo, Err: err}
		}
	}()

	m.logger.Debug("step",
		zap.Int("ip", m.Ip),
		zap.Stringer("inst", inst),
	)

	switch inst.Op {
	case OP_MOV:
		m.Registers[inst.Args[0]] = m.value(inst.Args[1])
		m.Ip += 1

	case OP_INC:
		m.Registers[inst.Args[0]] += 1
		m.Ip += 1

	case OP_DEC:
		m.Registers[inst.Args[0]] -= 1
		m.Ip += 1

	case OP_ADD:
		m.Registers[inst.Args[0]] += m.value(inst.Args[1])
		m.Ip += 1

	case OP_SUB:
		m.Registers[inst.Args[0]] -= m.value(inst.Args[1])
		m.Ip += 1

	case OP_MUL:
		m.Registers[inst.Args[0]] *= m.value(inst.Args[1])
		m.Ip += 1

	case OP_DIV:
		divisor := m.value(inst.Args[1])
		if divisor == 0 {
			err = ErrDivideByZero
			return
		}
		m.Registers[inst.Args[0]] /= divisor
		m.Ip += 1

	case OP_CMP:
		a := m.value(inst.Args[0])
		b := m.value(inst.Args[1])
		m.Zf = a == b
		m.Cf = a < b
		m.Ip += 1

	case OP_CALL:
		m.Stack.Push(m.Ip + 1)
		err = m.jump(inst.Args[0])

	case OP_RET:
		value, ok := m.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		m.Ip = value

	case OP_JMP:
		err = m.jump(inst.Args[0])
	case OP_JNE:
		err = m.jumpIf(!m.Zf, inst.Args[0])
	case OP_JE:
		err = m.jumpIf(m.Zf, inst.Args[0])
	case OP_JGE:
		err = m.jumpIf(m.Zf || !m.Cf, inst.Args[0])
	case OP_JG:
		err = m.jumpIf(!m.Zf && !m.Cf, inst.Args[0])
	case OP_JLE:
		err = m.jumpIf(m.Cf || m.Zf, inst.Args[0])
	case OP_JL:
		err = m.jumpIf(m.Cf, inst.Args[0])

	case OP_MSG:
		m.Out = m.message(inst.Args)
		m.Ip += 1

	case OP_END:
		m.halted = true
		done = true

	case OP_LABEL, OP_NOP:
		m.Ip += 1
	}

	return
}

// jump moves the instruction pointer to a label's target.
func (m *Machine) jump(label string) (err error) {
	target, ok := m.Program.Labels[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	m.Ip = target

	return
}

// jumpIf jumps when cond holds, and falls through otherwise.
func (m *Machine) jumpIf(cond bool, label string) (err error) {
	if !cond {
		m.Ip += 1
		return
	}

	return m.jump(label)
}

// value resolves an operand token as an integer literal, or as the named
// register (0 when never assigned).
func (m *Machine) value(token string) (value int64) {
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		value = m.Registers[token]
	}

	return
}

// message rebuilds the display string from msg operand tokens. The comma
// split in the assembler leaves quoted literals in pieces; a bare quote
// token toggles literal mode and stands in for the delimiter it displaced.
func (m *Machine) message(args []string) (text string) {
	var opened bool

	for _, arg := range args {
		switch {
		case arg == "'":
			if opened {
				text += " "
			} else {
				text += ","
			}
			opened = !opened
		case strings.Contains(arg, "'"):
			text += strings.Trim(arg, "'")
		default:
			text += strconv.FormatInt(m.value(arg), 10)
		}
	}

	return
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	delimiter := strings.Repeat("-", 20)

	text = "Registers:\n" + delimiter + "\n"
	for _, name := range slices.Sorted(maps.Keys(m.Registers)) {
		text += fmt.Sprintf("%-5v: %v\n", name, m.Registers[name])
	}
	text += delimiter + "\n"

	text += "\nStack:"
	if m.Stack.Empty() {
		text += " empty\n"
	} else {
		text += "\n" + delimiter + "\n"
		for n, addr := range m.Stack.Data {
			text += fmt.Sprintf("%-5v: %v\n", n, addr)
		}
		text += delimiter + "\n"
	}

	text += "\nFlags:\n" + delimiter + "\n"
	text += fmt.Sprintf("%-2v: %v\n%-2v: %v\n", "zf", m.Zf, "cf", m.Cf)
	text += delimiter + "\n"

	text += fmt.Sprintf("\nOutput: %v\n\nIP: %v\n", m.Out, m.Ip)

	return
}
