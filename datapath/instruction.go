package datapath

import (
	"fmt"
)

// Instruction is the 8-bit control word presented to the datapath each cycle.
//
//	[7]   ALU_SUB     subtract select
//	[6]   ALU_ENABLE  arithmetic result (set) or bus passthrough (clear)
//	[5:3] load select, decoded only when [7:6] == 00
//	[2:0] drive select, always decoded
//
// During ALU instructions the load select field is not decoded, and bit 5
// (ALU_SUB_ALT) doubles as the subtract select.
type Instruction uint8

const (
	ALU_SUB     = Instruction(1 << 7) // Subtract select.
	ALU_ENABLE  = Instruction(1 << 6) // Arithmetic result select.
	ALU_MASK    = ALU_SUB | ALU_ENABLE
	ALU_SUB_ALT = Instruction(1 << 5) // Subtract select while the load field is idle.

	LOAD_SHIFT = 3
	LOAD_MASK  = Instruction(7 << LOAD_SHIFT)
	DRIVE_MASK = Instruction(7)
)

// CodeLoad is a load select: the destination that captures the bus.
type CodeLoad int

//go:generate go tool stringer -linecomment -type=CodeLoad
const (
	LOAD_OUT  = CodeLoad(0) // out
	LOAD_A    = CodeLoad(1) // a
	LOAD_B    = CodeLoad(2) // b
	LOAD_C    = CodeLoad(3) // c
	LOAD_D    = CodeLoad(4) // d
	LOAD_E    = CodeLoad(5) // e
	LOAD_F    = CodeLoad(6) // f
	LOAD_NONE = CodeLoad(7) // -
)

// CodeDrive is a drive select: the source that drives the bus.
type CodeDrive int

//go:generate go tool stringer -linecomment -type=CodeDrive
const (
	DRIVE_IN   = CodeDrive(0) // in
	DRIVE_A    = CodeDrive(1) // a
	DRIVE_B    = CodeDrive(2) // b
	DRIVE_C    = CodeDrive(3) // c
	DRIVE_D    = CodeDrive(4) // d
	DRIVE_E    = CodeDrive(5) // e
	DRIVE_F    = CodeDrive(6) // f
	DRIVE_NONE = CodeDrive(7) // -
)

// Register bank indexes.
const (
	REG_A = iota
	REG_B
	REG_C
	REG_D
	REG_E
	REG_F
	REG_COUNT
)

// Register returns the register bank index loaded by this select.
func (cl CodeLoad) Register() (reg int, ok bool) {
	if cl < LOAD_A || cl > LOAD_F {
		return
	}
	return int(cl - LOAD_A), true
}

// Register returns the register bank index driven by this select.
func (cd CodeDrive) Register() (reg int, ok bool) {
	if cd < DRIVE_A || cd > DRIVE_F {
		return
	}
	return int(cd - DRIVE_A), true
}

// MakeMove creates a bus transfer from src to dst.
func MakeMove(dst CodeLoad, src CodeDrive) Instruction {
	return (Instruction(dst&7) << LOAD_SHIFT) | Instruction(src&7)
}

// MakeAdd creates A <- A + src.
func MakeAdd(src CodeDrive) Instruction {
	return ALU_ENABLE | Instruction(src&7)
}

// MakeSub creates A <- A - src.
func MakeSub(src CodeDrive) Instruction {
	return ALU_ENABLE | ALU_SUB_ALT | Instruction(src&7)
}

// MakePass creates A <- src through the ALU passthrough.
func MakePass(src CodeDrive) Instruction {
	return ALU_SUB | Instruction(src&7)
}

// MakeHold creates an ALU cycle that latches nothing.
func MakeHold(src CodeDrive) Instruction {
	return ALU_SUB | ALU_ENABLE | Instruction(src&7)
}

// MakeNop creates a cycle with no driver and no destination.
func MakeNop() Instruction {
	return MakeMove(LOAD_NONE, DRIVE_NONE)
}

// AluSub returns the subtract select of the arithmetic unit.
func (ins Instruction) AluSub() bool {
	return ins&(ALU_SUB|ALU_SUB_ALT) != 0
}

// AluEnable returns the arithmetic-result select of the ALU output.
func (ins Instruction) AluEnable() bool {
	return ins&ALU_ENABLE != 0
}

// AluLoad returns true when the ALU control bits request an accumulator load.
// This is an XOR of the two bits: both set loads nothing.
func (ins Instruction) AluLoad() bool {
	return (ins&ALU_SUB != 0) != (ins&ALU_ENABLE != 0)
}

// LoadEnable returns true when the load select field is decoded.
func (ins Instruction) LoadEnable() bool {
	return ins&ALU_MASK == 0
}

// LoadSelect decodes the load select field.
func (ins Instruction) LoadSelect() CodeLoad {
	return CodeLoad((ins & LOAD_MASK) >> LOAD_SHIFT)
}

// DriveSelect decodes the drive select field.
func (ins Instruction) DriveSelect() CodeDrive {
	return CodeDrive(ins & DRIVE_MASK)
}

// String returns the assembly language form of the instruction.
// Words with no canonical mnemonic are shown as .byte.
func (ins Instruction) String() (out string) {
	src := ins.DriveSelect()

	var canon Instruction
	switch ins & ALU_MASK {
	case 0:
		canon = MakeMove(ins.LoadSelect(), src)
		out = fmt.Sprintf("mov %v %v", ins.LoadSelect(), src)
		if canon == MakeNop() {
			out = "nop"
		}
	case ALU_ENABLE:
		if ins&ALU_SUB_ALT != 0 {
			canon = MakeSub(src)
			out = fmt.Sprintf("sub %v", src)
		} else {
			canon = MakeAdd(src)
			out = fmt.Sprintf("add %v", src)
		}
	case ALU_SUB:
		canon = MakePass(src)
		out = fmt.Sprintf("pass %v", src)
	case ALU_MASK:
		canon = MakeHold(src)
		out = fmt.Sprintf("hold %v", src)
	}

	if canon != ins {
		out = fmt.Sprintf(".byte 0x%02x", uint8(ins))
	}

	return
}
