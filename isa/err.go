package isa

import (
	"errors"

	"github.com/ezrec/rvcore/translate"
)

var f = translate.From

var (
	// Instruction decode errors
	ErrOpcodeDecode = errors.New(f("opcode unrecognized"))
	ErrFunct3Decode = errors.New(f("funct3 unrecognized"))
)

// ErrOpcode reports the opcode bits of an undecodable word.
type ErrOpcode uint32

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0b%07b", uint32(eo))
}

func (eo ErrOpcode) Is(err error) bool {
	return err == ErrOpcodeDecode
}

// ErrFunct3 reports a funct3 value with no operation under a known opcode.
type ErrFunct3 struct {
	Opcode Opcode
	Funct3 uint32
}

func (ef ErrFunct3) Error() string {
	return f("%v: bad funct3 0b%03b", ef.Opcode, ef.Funct3)
}

func (ef ErrFunct3) Is(err error) bool {
	return err == ErrFunct3Decode
}
