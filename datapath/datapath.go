package datapath

// State is the clocked state of the datapath.
type State struct {
	Register [REG_COUNT]Register // Register bank, A through F.
	Output   uint8               // External output latch.
}

// Signals are the combinational values of one cycle, settled before the edge.
type Signals struct {
	Instruction Instruction
	Input       uint8 // External input byte.

	Load  OneHot // Load select decoder output.
	Drive OneHot // Drive select decoder output.

	Bus     Bus
	Result  uint8 // Arithmetic unit output.
	Alu     uint8 // ALU output feeding the accumulator.
	AccLoad bool  // Accumulator load enable.

	Next State // State after the edge.
}

// Evaluate computes the combinational signals of one cycle from the state
// held before the edge. Nothing in s is modified.
func Evaluate(s State, ins Instruction, input uint8) (sig Signals, err error) {
	sig.Instruction = ins
	sig.Input = input

	sig.Load = Decode(ins.LoadEnable(), uint8(ins.LoadSelect()))
	sig.Drive = Decode(true, uint8(ins.DriveSelect()))

	var drivers [8]Bus
	drivers[DRIVE_IN] = Drive(sig.Drive[DRIVE_IN], input)
	for reg, value := range s.Register {
		src := DRIVE_A + CodeDrive(reg)
		drivers[src] = Drive(sig.Drive[src], uint8(value))
	}
	// DRIVE_NONE has no driver attached.

	sig.Bus, err = Resolve(drivers[:]...)
	if err != nil {
		return
	}

	acc := uint8(s.Register[REG_A])
	sig.Result = Arithmetic(acc, sig.Bus.Value, ins.AluSub())
	sig.Alu = AluOutput(ins.AluEnable(), sig.Result, sig.Bus.Value)
	sig.AccLoad = ins.AluLoad() || sig.Load[LOAD_A]

	// An undriven bus is never latched.
	driven := sig.Bus.Driven

	next := &sig.Next
	next.Register[REG_A] = s.Register[REG_A].Next(sig.AccLoad && driven, sig.Alu)
	for reg := REG_B; reg < REG_COUNT; reg++ {
		load := sig.Load[LOAD_A+CodeLoad(reg)]
		next.Register[reg] = s.Register[reg].Next(load && driven, sig.Bus.Value)
	}
	next.Output = Select(sig.Load[LOAD_OUT] && driven, s.Output, sig.Bus.Value)

	return
}

// Step is the state transition function of the datapath. On error the
// returned state is s, unchanged.
func Step(s State, ins Instruction, input uint8) (next State, sig Signals, err error) {
	sig, err = Evaluate(s, ins, input)
	if err != nil {
		next = s
		return
	}

	next = sig.Next
	return
}

// OutputLatched returns true when the output latch captured the bus.
func (sig *Signals) OutputLatched() bool {
	return sig.Load[LOAD_OUT] && sig.Bus.Driven
}

// Target returns the destination that captured a value this cycle.
func (sig *Signals) Target() CodeLoad {
	switch {
	case !sig.Bus.Driven:
		return LOAD_NONE
	case sig.AccLoad:
		return LOAD_A
	}

	index, ok := sig.Load.Index()
	if !ok {
		return LOAD_NONE
	}

	return CodeLoad(index)
}
