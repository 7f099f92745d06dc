package datapath

// Register is a synchronous 8-bit register.
//
//	Inputs: load, data
//	Outputs: out
//	Function: out(t) = load(t-1) ? data(t-1) : out(t-1)
type Register uint8

// Next returns the value the register holds after the next clock edge.
// When load is clear the register is fed its own value.
func (r Register) Next(load bool, data uint8) Register {
	return Register(Select(load, uint8(r), data))
}

// Select is an 8-bit two-way selector.
//
//	Inputs: sel, a[8], b[8]
//	Outputs: out[8]
//	Function: if sel { out = b } else { out = a }
func Select(sel bool, a, b uint8) uint8 {
	if sel {
		return b
	}
	return a
}
