package vm

// Program is a parsed assembly program. It owns the instruction sequence
// and the label table, is never mutated after Parse, and may be shared by
// any number of Machine runs.
type Program struct {
	Instructions []Instruction  // One instruction per source line.
	Labels       map[string]int // Label name to the index after its marker.
}

// Debug returns the instruction at the given pointer, or nil when the
// pointer is outside the program.
func (prog *Program) Debug(ip int) (inst *Instruction) {
	if ip >= 0 && ip < len(prog.Instructions) {
		inst = &prog.Instructions[ip]
	}

	return
}
