package cpu

import (
	"errors"

	"github.com/ezrec/rvcore/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcMisaligned = errors.New(f("pc misaligned"))
)

// ErrMisaligned reports a jump target that is not instruction aligned.
type ErrMisaligned uint64

func (em ErrMisaligned) Error() string {
	return f("jump target 0x%x misaligned", uint64(em))
}

func (em ErrMisaligned) Is(err error) bool {
	return err == ErrPcMisaligned
}
