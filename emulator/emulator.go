package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/pawan-git-space/Pawan-Kumar-RTL/datapath"
	"github.com/pawan-git-space/Pawan-Kumar-RTL/internal"
	"github.com/pawan-git-space/Pawan-Kumar-RTL/io"
)

const (
	REGISTER_COUNT = datapath.REG_COUNT // Registers in the bank.
	WORD_BITS      = 8                  // Width of the bus and every register.
)

var _emulator_defines = map[string]string{
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"WORD_BITS":      fmt.Sprintf("%v", WORD_BITS),
}

// Emulator state. Datapath + program + ports.
type Emulator struct {
	Verbose        bool              // If set, enables verbose logging.
	*datapath.Core                   // Reference to the datapath simulation.
	Program        *datapath.Program // Reference to the currently running program listing.

	Tape  io.Tape // Tape IO channel.
	Input io.Port // Source of 'tape' inputs. If nil, the tape is used.

	step int // Next opcode to run.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Core:    datapath.NewCore(),
		Program: &datapath.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Core.Defines(),
		emu.Tape.Defines(),
	)
}

// input returns the port 'tape' inputs are read from.
func (emu *Emulator) input() io.Port {
	if emu.Input != nil {
		return emu.Input
	}

	return &emu.Tape
}

// Reset the datapath, rewind the ports and the program.
func (emu *Emulator) Reset() (err error) {
	emu.Core.Verbose = emu.Verbose
	emu.Core.Reset()
	emu.step = 0

	err = emu.Tape.Rewind()
	if err != nil {
		return
	}

	if emu.Input != nil {
		err = emu.Input.Rewind()
		if err != nil {
			return
		}
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Core.Ticks
}

// Power returns the total power consumed.
func (emu *Emulator) Power() int {
	return emu.Core.Power
}

// Step returns the index of the next opcode to run.
func (emu *Emulator) Step() int {
	return emu.step
}

// LineNo returns the source line number of the next opcode.
func (emu *Emulator) LineNo() int {
	op, ok := emu.Program.Debug(emu.step)
	if !ok {
		return 0
	}

	return op.LineNo
}

// Tick runs the next opcode for one clock cycle.
// done is set, and nothing is run, once the program is exhausted.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Core.Verbose = emu.Verbose

	op, ok := emu.Program.Debug(emu.step)
	if !ok {
		done = true
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: op.LineNo, Err: err}
		}
	}()

	input := op.Input
	if op.Tape {
		input, err = emu.input().Read()
		if err != nil {
			return
		}
	}

	sig, err := emu.Core.Tick(op.Instruction, input)
	if err != nil {
		return
	}

	if sig.OutputLatched() {
		if emu.Verbose {
			log.Printf("emulator: output %02x", emu.Core.Output)
		}
		err = emu.Tape.Write(emu.Core.Output)
		if err != nil {
			return
		}
	}

	emu.step++

	return
}

// Run ticks until the program is exhausted.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
