package io

import (
	"errors"

	"github.com/pawan-git-space/Pawan-Kumar-RTL/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelEmpty   = errors.New(f("channel empty"))
	ErrChannelFull    = errors.New(f("channel full"))
	ErrChannelInvalid = errors.New(f("channel invalid"))
)
