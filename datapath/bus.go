package datapath

import (
	"fmt"
)

// Bus is the value on the shared data bus during one cycle.
// An undriven bus carries no value; Value is meaningless when Driven is false,
// and an undriven bus is never latched into any register.
type Bus struct {
	Value  uint8
	Driven bool
}

// Drive is a gated bus driver.
//
//	Inputs: enable, value[8]
//	Outputs: bus[8]
//	Function: if enable { bus = value } else { bus = high impedance }
func Drive(enable bool, value uint8) (bus Bus) {
	if enable {
		bus = Bus{Value: value, Driven: true}
	}

	return
}

// Resolve wires together the outputs of all bus drivers.
// At most one driver may be enabled; more than one is ErrBusContention.
func Resolve(drivers ...Bus) (bus Bus, err error) {
	for _, driver := range drivers {
		if !driver.Driven {
			continue
		}
		if bus.Driven {
			err = ErrBusContention
			bus = Bus{}
			return
		}
		bus = driver
	}

	return
}

// String returns the bus value, or "--" when undriven.
func (bus Bus) String() string {
	if !bus.Driven {
		return "--"
	}
	return fmt.Sprintf("%02x", bus.Value)
}
