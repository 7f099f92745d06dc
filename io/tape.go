package io

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
)

// Tape provides sequential byte I/O over an io.Reader and an io.Writer.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Hex    bool // Write output bytes as hex text, one per line.

	Reads  int // Bytes read since rewind.
	Writes int // Bytes written since rewind.
}

var _ Port = (*Tape)(nil)

// Defines returns an iter of defines for the channel.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Rewind clears the counters. An input that has been read from is seeked
// back to its start, which fails unless it is an io.Seeker.
func (tc *Tape) Rewind() (err error) {
	if tc.Reads > 0 {
		seeker, ok := tc.Input.(io.Seeker)
		if !ok {
			err = ErrChannelInvalid
			return
		}
		_, err = seeker.Seek(0, io.SeekStart)
		if err != nil {
			err = errors.Join(ErrChannelInvalid, err)
			return
		}
	}

	tc.Reads = 0
	tc.Writes = 0
	return
}

// Read returns the next byte of the input stream.
// An exhausted or missing input is ErrChannelEmpty.
func (tc *Tape) Read() (value uint8, err error) {
	if tc.Input == nil {
		err = ErrChannelEmpty
		return
	}

	var one [1]byte
	_, err = io.ReadFull(tc.Input, one[:])
	if errors.Is(err, io.EOF) {
		err = ErrChannelEmpty
		return
	}
	if err != nil {
		err = errors.Join(ErrChannelInvalid, err)
		return
	}

	tc.Reads++
	value = one[0]
	return
}

// Write emits a byte to the output stream.
func (tc *Tape) Write(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelInvalid
		return
	}

	if tc.Hex {
		_, err = fmt.Fprintf(tc.Output, "%02x\n", value)
	} else {
		_, err = tc.Output.Write([]byte{value})
	}
	if err != nil {
		err = errors.Join(ErrChannelInvalid, err)
		return
	}

	tc.Writes++
	return
}
