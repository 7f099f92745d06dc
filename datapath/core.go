package datapath

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math/bits"
)

var _datapath_defines = map[string]string{
	"ALU_SUB":     fmt.Sprintf("%#x", uint8(ALU_SUB)),
	"ALU_ENABLE":  fmt.Sprintf("%#x", uint8(ALU_ENABLE)),
	"ALU_MASK":    fmt.Sprintf("%#x", uint8(ALU_MASK)),
	"ALU_SUB_ALT": fmt.Sprintf("%#x", uint8(ALU_SUB_ALT)),
	"LOAD_SHIFT":  fmt.Sprintf("%v", LOAD_SHIFT),
	"LOAD_MASK":   fmt.Sprintf("%#x", uint8(LOAD_MASK)),
	"DRIVE_MASK":  fmt.Sprintf("%#x", uint8(DRIVE_MASK)),
	"LOAD_OUT":    fmt.Sprintf("%v", int(LOAD_OUT)),
	"LOAD_NONE":   fmt.Sprintf("%v", int(LOAD_NONE)),
	"DRIVE_IN":    fmt.Sprintf("%v", int(DRIVE_IN)),
	"DRIVE_NONE":  fmt.Sprintf("%v", int(DRIVE_NONE)),
}

// Core is the clocked simulation of the datapath.
type Core struct {
	Verbose bool // Set to enable verbose logging.

	State // Registers and output latch.

	Power int // Power (bits flipped) counter.
	Ticks int // Clock edges since reset.
}

// NewCore creates a datapath in its reset state.
func NewCore() (core *Core) {
	core = &Core{}
	core.Reset()

	return
}

// Defines for the datapath.
func (core *Core) Defines() iter.Seq2[string, string] {
	return maps.All(_datapath_defines)
}

// Reset zeros the registers, the output latch, and the statistics counters.
func (core *Core) Reset() {
	if core.Verbose {
		log.Printf("datapath: reset")
	}

	core.State = State{}
	core.Ticks = 0
	core.Power = 0
}

// Tick evaluates one cycle and applies the clock edge.
// On error no register or the output latch changes.
func (core *Core) Tick(ins Instruction, input uint8) (sig Signals, err error) {
	next, sig, err := Step(core.State, ins, input)
	if err != nil {
		err = &ErrInstruction{Instruction: ins, Err: err}
		return
	}

	if core.Verbose {
		log.Printf("%02x: %-10v in:%02x bus:%v alu:%02x -> %v",
			uint8(ins), ins, input, sig.Bus, sig.Alu, sig.Target())
	}

	flipped := bits.OnesCount8(core.Output ^ next.Output)
	for reg, value := range next.Register {
		flipped += bits.OnesCount8(uint8(core.Register[reg] ^ value))
	}

	core.State = next
	core.Ticks++
	core.Power += flipped

	return
}

// String returns the current datapath state as a string.
func (core *Core) String() (text string) {
	regs := []string{"a", "b", "c", "d", "e", "f", "out", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "a", "b", "c", "d", "e", "f":
			val := core.Register[reg[0]-'a']
			strval = fmt.Sprintf("%02X", uint8(val))
		case "out":
			strval = fmt.Sprintf("%02X", core.Output)
		case "ticks":
			strval = fmt.Sprintf("%d", core.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
