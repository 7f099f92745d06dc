package datapath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0x12), Select(false, 0x12, 0x34))
	assert.Equal(uint8(0x34), Select(true, 0x12, 0x34))
}

func TestRegister_Next(t *testing.T) {
	assert := assert.New(t)

	for value := range 256 {
		reg := Register(value)
		// Hold: fed back its own value, bit for bit.
		assert.Equal(reg, reg.Next(false, ^uint8(value)))
		assert.Equal(Register(^uint8(value)), reg.Next(true, ^uint8(value)))
	}
}
