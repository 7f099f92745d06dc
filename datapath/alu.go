package datapath

// Arithmetic is the 8-bit add/subtract unit. There is no carry out.
//
//	Inputs: acc[8], bus[8], sub
//	Outputs: out[8]
//	Function: if sub { out = acc - bus } else { out = acc + bus }   (mod 256)
func Arithmetic(acc, bus uint8, sub bool) uint8 {
	if sub {
		return acc + (^bus + 1)
	}
	return acc + bus
}

// AluOutput selects what feeds the accumulator load path: the arithmetic
// result when enable is set, the raw bus value otherwise.
func AluOutput(enable bool, result, bus uint8) uint8 {
	return Select(enable, bus, result)
}
