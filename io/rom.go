package io

// Rom is a read-only port over a fixed byte sequence.
type Rom struct {
	Data []uint8

	index int
}

var _ Port = (*Rom)(nil)

// Remaining returns the count of unread bytes.
func (rc *Rom) Remaining() int {
	return len(rc.Data) - rc.index
}

func (rc *Rom) Rewind() error {
	rc.index = 0
	return nil
}

func (rc *Rom) Read() (value uint8, err error) {
	if rc.index >= len(rc.Data) {
		err = ErrChannelEmpty
		return
	}

	value = rc.Data[rc.index]
	rc.index++
	return
}

func (rc *Rom) Write(value uint8) error {
	return ErrChannelFull
}
