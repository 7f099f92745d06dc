package emulator

import (
	"github.com/pawan-git-space/Pawan-Kumar-RTL/translate"
)

var f = translate.From

// ErrRuntime reports a failed clock cycle at the source line of its opcode.
type ErrRuntime struct {
	LineNo int   // Source line of the opcode that failed.
	Err    error // Port or datapath failure.
}

func (err *ErrRuntime) Error() string {
	return f("cycle at line %d: %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
