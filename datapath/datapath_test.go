package datapath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepOk runs one cycle that is expected to succeed.
func stepOk(t *testing.T, s State, ins Instruction, input uint8) (next State, sig Signals) {
	next, sig, err := Step(s, ins, input)
	require.NoError(t, err, "%v", ins)
	return
}

func TestStep_Scenarios(t *testing.T) {
	assert := assert.New(t)

	s := State{}

	// B <- external input
	s, _ = stepOk(t, s, 0b00_010_000, 0x55)
	assert.Equal(Register(0x55), s.Register[REG_B])
	assert.Equal(uint8(0), s.Output)

	// out <- B
	s, sig := stepOk(t, s, 0b00_000_010, 0x00)
	assert.True(sig.OutputLatched())
	assert.Equal(uint8(0x55), s.Output)
	assert.Equal(Register(0x55), s.Register[REG_B])

	// A <- external input
	s, _ = stepOk(t, s, 0b00_001_000, 0x0a)
	assert.Equal(Register(0x0a), s.Register[REG_A])

	// A <- A + B
	s, sig = stepOk(t, s, 0b01_000_010, 0x00)
	assert.Equal(Bus{Value: 0x55, Driven: true}, sig.Bus)
	assert.Equal(LOAD_A, sig.Target())
	assert.Equal(Register(0x5f), s.Register[REG_A])

	// A <- A - B
	s, _ = stepOk(t, s, 0b01_100_010, 0x00)
	assert.Equal(Register(0x0a), s.Register[REG_A])

	// Everything else untouched throughout.
	assert.Equal(Register(0x55), s.Register[REG_B])
	for reg := REG_C; reg < REG_COUNT; reg++ {
		assert.Equal(Register(0), s.Register[reg])
	}
	assert.Equal(uint8(0x55), s.Output)
}

func TestStep_AddFromInput(t *testing.T) {
	assert := assert.New(t)

	s := State{}
	s.Register[REG_A] = 0x0a

	// 0b01001000: add with the external input on the bus.
	s, sig := stepOk(t, s, 0b01_001_000, 0x55)
	assert.Equal(uint8(0x5f), sig.Result)
	assert.Equal(Register(0x5f), s.Register[REG_A])
}

func TestStep_SelfMove(t *testing.T) {
	assert := assert.New(t)

	s := State{}

	// 0b00010010 drives B onto the bus and loads B from it.
	next, sig := stepOk(t, s, 0b00_010_010, 0x55)
	assert.Equal(LOAD_B, sig.Target())
	assert.Equal(s, next)
}

func TestStep_MutualExclusion(t *testing.T) {
	assert := assert.New(t)

	s := State{}
	for reg := range s.Register {
		s.Register[reg] = Register(0x11 * (reg + 1))
	}
	s.Output = 0xee

	for word := range 256 {
		ins := Instruction(word)
		sig, err := Evaluate(s, ins, 0x99)
		assert.NoError(err)

		assert.Equal(1, sig.Drive.Count(), "%v", ins)
		assert.LessOrEqual(sig.Load.Count(), 1, "%v", ins)

		// Any ALU control bit disables the load decoder.
		if ins&ALU_MASK != 0 {
			assert.Equal(0, sig.Load.Count(), "%v", ins)
		}

		// Count the registers (and output) that change value.
		changed := 0
		for reg := range s.Register {
			if sig.Next.Register[reg] != s.Register[reg] {
				changed++
			}
		}
		if sig.Next.Output != s.Output {
			changed++
		}
		assert.LessOrEqual(changed, 1, "%v", ins)
	}
}

func TestStep_Hold(t *testing.T) {
	assert := assert.New(t)

	s := State{Output: 0x42}
	for reg := range s.Register {
		s.Register[reg] = Register(0xa0 + reg)
	}

	table := [](struct {
		name string
		ins  Instruction
	}){
		{"nop", MakeNop()},
		{"load_none", MakeMove(LOAD_NONE, DRIVE_IN)},
		{"hold_alu", MakeHold(DRIVE_B)},
		{"hold_alu_in", MakeHold(DRIVE_IN)},
		{"no_driver_b", MakeMove(LOAD_B, DRIVE_NONE)},
		{"no_driver_out", MakeMove(LOAD_OUT, DRIVE_NONE)},
		{"no_driver_a", MakeMove(LOAD_A, DRIVE_NONE)},
		{"no_driver_add", MakeAdd(DRIVE_NONE)},
		{"no_driver_sub", MakeSub(DRIVE_NONE)},
		{"no_driver_pass", MakePass(DRIVE_NONE)},
	}

	for _, entry := range table {
		next, sig := stepOk(t, s, entry.ins, 0x77)
		assert.Equal(s, next, entry.name)
		assert.Equal(LOAD_NONE, sig.Target(), entry.name)
		assert.False(sig.OutputLatched(), entry.name)
	}
}

func TestStep_NoDriver(t *testing.T) {
	assert := assert.New(t)

	s := State{}
	s.Register[REG_A] = 0x10

	sig, err := Evaluate(s, MakeAdd(DRIVE_NONE), 0x33)
	assert.NoError(err)
	assert.False(sig.Bus.Driven)
	assert.True(sig.AccLoad)
	// The load was requested, but the undefined bus is not latched.
	assert.Equal(Register(0x10), sig.Next.Register[REG_A])
}

func TestStep_Pass(t *testing.T) {
	assert := assert.New(t)

	s := State{}
	s.Register[REG_A] = 0x10
	s.Register[REG_C] = 0x3c

	s, sig := stepOk(t, s, MakePass(DRIVE_C), 0)
	assert.True(sig.AccLoad)
	assert.Equal(uint8(0x3c), sig.Alu)
	assert.Equal(Register(0x3c), s.Register[REG_A])
}

func TestStep_Transfers(t *testing.T) {
	assert := assert.New(t)

	s := State{}

	// Load B..F from the input, then chain them through the bus.
	for reg := REG_B; reg < REG_COUNT; reg++ {
		s, _ = stepOk(t, s, MakeMove(LOAD_A+CodeLoad(reg), DRIVE_IN), uint8(reg*0x10))
	}
	for reg := REG_B; reg < REG_COUNT; reg++ {
		assert.Equal(Register(reg*0x10), s.Register[reg])
	}

	s, _ = stepOk(t, s, MakeMove(LOAD_A, DRIVE_F), 0)
	assert.Equal(Register(0x50), s.Register[REG_A])

	s, _ = stepOk(t, s, MakeMove(LOAD_C, DRIVE_A), 0)
	assert.Equal(Register(0x50), s.Register[REG_C])

	s, _ = stepOk(t, s, MakeMove(LOAD_OUT, DRIVE_D), 0)
	assert.Equal(uint8(0x30), s.Output)
}

func TestStep_Idempotence(t *testing.T) {
	assert := assert.New(t)

	s := State{Output: 0x5a}
	for reg := range s.Register {
		s.Register[reg] = Register(0x0f + reg)
	}

	for _, ins := range []Instruction{MakeNop(), MakeHold(DRIVE_A), MakeMove(LOAD_NONE, DRIVE_E)} {
		next := s
		for range 16 {
			next, _ = stepOk(t, next, ins, 0xcc)
		}
		assert.Equal(s, next, "%v", ins)
	}
}

func TestStep_ReadBeforeWrite(t *testing.T) {
	assert := assert.New(t)

	s := State{}
	s.Register[REG_A] = 0x01

	// A drives the bus and A is the destination: the bus carries the pre-edge A.
	s, _ = stepOk(t, s, MakeAdd(DRIVE_A), 0)
	assert.Equal(Register(0x02), s.Register[REG_A])
	s, _ = stepOk(t, s, MakeAdd(DRIVE_A), 0)
	assert.Equal(Register(0x04), s.Register[REG_A])
	s, _ = stepOk(t, s, MakeSub(DRIVE_A), 0)
	assert.Equal(Register(0x00), s.Register[REG_A])
}

func TestEvaluate_DoesNotModify(t *testing.T) {
	assert := assert.New(t)

	s := State{}
	s.Register[REG_A] = 0x22
	before := s

	_, err := Evaluate(s, MakeMove(LOAD_A, DRIVE_IN), 0x99)
	assert.NoError(err)
	assert.Equal(before, s)
}
