package datapath

import (
	"fmt"
	"iter"
)

// Opcode is one assembled cycle: an instruction word and its input byte.
type Opcode struct {
	LineNo      int         // Source line.
	Words       []string    // Source words, after substitution.
	Instruction Instruction // Instruction word.
	Input       uint8       // External input byte, unless Tape is set.
	Tape        bool        // Read the input byte from the tape at run time.
}

// String returns the assembly language form of the opcode.
func (op Opcode) String() string {
	if op.Tape {
		return fmt.Sprintf("%v tape", op.Instruction)
	}
	return fmt.Sprintf("%v 0x%02x", op.Instruction, op.Input)
}

// Program is an assembled instruction stream, one opcode per clock cycle.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode executed at a step.
func (prog *Program) Debug(step int) (op *Opcode, ok bool) {
	if step < 0 || step >= len(prog.Opcodes) {
		return
	}

	return &prog.Opcodes[step], true
}

// Binary returns the instruction words of the program.
func (prog *Program) Binary() (bins []uint8) {
	for _, op := range prog.Steps() {
		bins = append(bins, uint8(op.Instruction))
	}

	return
}

// Steps iterates over the opcodes with their step index.
func (prog *Program) Steps() iter.Seq2[int, Opcode] {
	return func(yield func(step int, op Opcode) bool) {
		for step, op := range prog.Opcodes {
			if !yield(step, op) {
				return
			}
		}
	}
}
