package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFromNumber(t *testing.T) {
	assert := assert.New(t)

	for n := range uint32(REGISTER_COUNT) {
		reg, ok := RegisterFromNumber(n)
		assert.True(ok, n)
		assert.Equal(n, reg.Number())
		assert.Equal(n, uint32(reg.Abi()))
		assert.Equal(reg, reg.Abi().Register())

		abi, ok := AbiFromNumber(n)
		assert.True(ok, n)
		assert.Equal(reg.Abi(), abi)
	}

	for _, n := range []uint32{32, 33, 0xff, 0x100, 0xffffffff} {
		reg, ok := RegisterFromNumber(n)
		assert.False(ok, n)
		assert.Equal(REG_X0, reg)

		_, ok = AbiFromNumber(n)
		assert.False(ok, n)
	}
}

func TestRegisterString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		reg  Register
		name string
		abi  string
	}){
		{REG_X0, "x0", "zero"},
		{REG_X1, "x1", "ra"},
		{REG_X2, "x2", "sp"},
		{REG_X3, "x3", "gp"},
		{REG_X4, "x4", "tp"},
		{REG_X5, "x5", "t0"},
		{REG_X8, "x8", "s0"},
		{REG_X10, "x10", "a0"},
		{REG_X17, "x17", "a7"},
		{REG_X18, "x18", "s2"},
		{REG_X27, "x27", "s11"},
		{REG_X28, "x28", "t3"},
		{REG_X31, "x31", "t6"},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.reg.String())
		assert.Equal(entry.abi, entry.reg.Abi().String())
	}

	assert.Equal("Register(32)", Register(32).String())
	assert.Equal("Abi(40)", Abi(40).String())
}
