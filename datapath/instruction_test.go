package datapath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Fields(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name      string
		ins       Instruction
		sub       bool
		enable    bool
		aluLoad   bool
		loadOn    bool
		load      CodeLoad
		drive     CodeDrive
		canonical string
	}){
		{"mov_b_in", 0b00_010_000, false, false, false, true, LOAD_B, DRIVE_IN, "mov b in"},
		{"mov_out_b", 0b00_000_010, false, false, false, true, LOAD_OUT, DRIVE_B, "mov out b"},
		{"mov_a_in", 0b00_001_000, false, false, false, true, LOAD_A, DRIVE_IN, "mov a in"},
		{"add_in", 0b01_001_000, false, true, true, false, LOAD_A, DRIVE_IN, ".byte 0x48"},
		{"add_b", 0b01_000_010, false, true, true, false, LOAD_OUT, DRIVE_B, "add b"},
		{"sub_b", 0b01_100_010, true, true, true, false, LOAD_D, DRIVE_B, "sub b"},
		{"pass_c", 0b10_000_011, true, false, true, false, LOAD_OUT, DRIVE_C, "pass c"},
		{"hold_f", 0b11_000_110, true, true, false, false, LOAD_OUT, DRIVE_F, "hold f"},
		{"nop", 0b00_111_111, true, false, false, true, LOAD_NONE, DRIVE_NONE, "nop"},
		{"mov_none_a", 0b00_111_001, true, false, false, true, LOAD_NONE, DRIVE_A, "mov - a"},
	}

	for _, entry := range table {
		ins := entry.ins
		assert.Equal(entry.sub, ins.AluSub(), entry.name)
		assert.Equal(entry.enable, ins.AluEnable(), entry.name)
		assert.Equal(entry.aluLoad, ins.AluLoad(), entry.name)
		assert.Equal(entry.loadOn, ins.LoadEnable(), entry.name)
		assert.Equal(entry.load, ins.LoadSelect(), entry.name)
		assert.Equal(entry.drive, ins.DriveSelect(), entry.name)
		assert.Equal(entry.canonical, ins.String(), entry.name)
	}
}

func TestInstruction_AluLoadIsXor(t *testing.T) {
	assert := assert.New(t)

	assert.False(Instruction(0b00_000_000).AluLoad())
	assert.True(Instruction(0b01_000_000).AluLoad())
	assert.True(Instruction(0b10_000_000).AluLoad())
	assert.False(Instruction(0b11_000_000).AluLoad())
}

func TestInstruction_Make(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Instruction(0b00_010_000), MakeMove(LOAD_B, DRIVE_IN))
	assert.Equal(Instruction(0b00_000_010), MakeMove(LOAD_OUT, DRIVE_B))
	assert.Equal(Instruction(0b01_000_010), MakeAdd(DRIVE_B))
	assert.Equal(Instruction(0b01_100_010), MakeSub(DRIVE_B))
	assert.Equal(Instruction(0b10_000_101), MakePass(DRIVE_E))
	assert.Equal(Instruction(0b11_000_111), MakeHold(DRIVE_NONE))
	assert.Equal(Instruction(0x3f), MakeNop())
}

func TestCode_Register(t *testing.T) {
	assert := assert.New(t)

	reg, ok := LOAD_A.Register()
	assert.True(ok)
	assert.Equal(REG_A, reg)
	reg, ok = LOAD_F.Register()
	assert.True(ok)
	assert.Equal(REG_F, reg)
	_, ok = LOAD_OUT.Register()
	assert.False(ok)
	_, ok = LOAD_NONE.Register()
	assert.False(ok)

	reg, ok = DRIVE_C.Register()
	assert.True(ok)
	assert.Equal(REG_C, reg)
	_, ok = DRIVE_IN.Register()
	assert.False(ok)
	_, ok = DRIVE_NONE.Register()
	assert.False(ok)
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("out", LOAD_OUT.String())
	assert.Equal("c", LOAD_C.String())
	assert.Equal("-", LOAD_NONE.String())
	assert.Equal("CodeLoad(8)", CodeLoad(8).String())
	assert.Equal("in", DRIVE_IN.String())
	assert.Equal("f", DRIVE_F.String())
	assert.Equal("-", DRIVE_NONE.String())
	assert.Equal("CodeDrive(-1)", CodeDrive(-1).String())
}
