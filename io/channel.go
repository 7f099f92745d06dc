// Package io provides the byte ports of the datapath emulator.
// The emulator reads external input bytes from a port and writes every byte
// the output latch captures to a port.
package io

// Port defines the interface for byte-level I/O channels.
type Port interface {
	// Rewind returns the port to its first byte.
	Rewind() error
	// Read returns the next input byte.
	Read() (value uint8, err error)
	// Write emits a single output byte.
	Write(value uint8) error
}
