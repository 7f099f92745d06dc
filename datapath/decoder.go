package datapath

import (
	"strings"
)

// OneHot is an 8-line decoder output. At most one line is asserted.
type OneHot [8]bool

// Decode expands a 3-bit selector into eight exclusive lines.
//
//	Inputs: enable, selector[3]
//	Outputs: out[8]
//	Function: out[i] = enable && selector == i
func Decode(enable bool, selector uint8) (out OneHot) {
	selector &= 7
	for n := range out {
		out[n] = enable && uint8(n) == selector
	}

	return
}

// Count returns the number of asserted lines.
func (oh OneHot) Count() (count int) {
	for _, line := range oh {
		if line {
			count++
		}
	}

	return
}

// Index returns the asserted line, if any.
func (oh OneHot) Index() (index int, ok bool) {
	for n, line := range oh {
		if line {
			return n, true
		}
	}

	return
}

// String renders the lines MSB first, e.g. "00000100".
func (oh OneHot) String() string {
	var sb strings.Builder
	for n := len(oh) - 1; n >= 0; n-- {
		if oh[n] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
