package cpu

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvcore/isa"
)

func TestNewCpu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	assert.False(cpu.Verbose)
	assert.Equal(uint64(0), cpu.Pc)
	assert.Equal([isa.REGISTER_COUNT]uint64{}, cpu.Register)
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	for n := range uint32(isa.REGISTER_COUNT) {
		reg, ok := isa.RegisterFromNumber(n)
		assert.True(ok)
		cpu.WriteRegister(reg, uint64(n)<<32|uint64(n))
	}

	assert.Equal(uint64(0), cpu.ReadRegister(isa.REG_X0))
	assert.Equal(uint64(0), cpu.Register[0])
	assert.Equal(uint64(0x1_0000_0001), cpu.ReadRegister(isa.REG_X1))
	assert.Equal(uint64(0x1f_0000_001f), cpu.ReadRegister(isa.REG_X31))
	assert.Equal(cpu.Register[10], cpu.ReadRegister(isa.ABI_A0.Register()))

	// x0 reads zero even if the bank is modified directly.
	cpu.Register[0] = 0xdead_beef
	assert.Equal(uint64(0), cpu.ReadRegister(isa.REG_X0))
}

func TestPc(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	assert.Equal(uint64(4), cpu.NextPc())
	cpu.Advance()
	cpu.Advance()
	assert.Equal(uint64(8), cpu.Pc)

	err := cpu.Jump(0x8000_0000)
	assert.NoError(err)
	assert.Equal(uint64(0x8000_0000), cpu.Pc)

	err = cpu.Jump(0x8000_0002)
	assert.True(errors.Is(err, ErrPcMisaligned))
	assert.Equal(ErrMisaligned(0x8000_0002), err)
	assert.Equal(uint64(0x8000_0000), cpu.Pc)

	cpu.Pc = 0xffff_ffff_ffff_fffc
	cpu.Advance()
	assert.Equal(uint64(0), cpu.Pc)
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	cpu := NewCpu()
	cpu.Verbose = true
	cpu.WriteRegister(isa.REG_X2, 0x1000)
	cpu.Pc = 0x40

	cpu.Reset()
	assert.Equal(uint64(0), cpu.Pc)
	assert.Equal([isa.REGISTER_COUNT]uint64{}, cpu.Register)
	assert.Contains(buf.String(), "cpu: reset")
	assert.Contains(buf.String(), "x2 (sp)")
}

func TestExecuteContract(t *testing.T) {
	assert := assert.New(t)

	// addi a0, zero, -1 ; beq a0, a0, -4
	cpu := NewCpu()
	cpu.Pc = 0x100

	inst, ok := isa.Decode(0xfff00513)
	assert.True(ok)
	addi := inst.(isa.IType)
	cpu.WriteRegister(addi.Rd, cpu.ReadRegister(addi.Rs1)+uint64(addi.Imm))
	cpu.Advance()
	assert.Equal(uint64(0xffff_ffff_ffff_ffff), cpu.ReadRegister(isa.REG_X10))
	assert.Equal(uint64(0x104), cpu.Pc)

	inst, ok = isa.Decode(0xfea50ee3)
	assert.True(ok)
	beq := inst.(isa.BType)
	assert.Equal(isa.BEQ, beq.Op)
	if cpu.ReadRegister(beq.Rs1) == cpu.ReadRegister(beq.Rs2) {
		assert.NoError(cpu.Jump(cpu.Pc + uint64(beq.Imm)))
	} else {
		cpu.Advance()
	}
	assert.Equal(uint64(0x100), cpu.Pc)

	// Results written to x0 are dropped.
	inst, ok = isa.Decode(0x00100013) // addi zero, zero, 1
	assert.True(ok)
	nop := inst.(isa.IType)
	cpu.WriteRegister(nop.Rd, cpu.ReadRegister(nop.Rs1)+uint64(nop.Imm))
	assert.Equal(uint64(0), cpu.ReadRegister(isa.REG_X0))
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Pc = 0x8000_0000
	cpu.WriteRegister(isa.REG_X10, 0x0123_4567_89ab_cdef)

	text := cpu.String()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	assert.Len(lines, 33)
	assert.Equal("       pc: 0000_0000_8000_0000", lines[0])
	assert.Equal("  x0/zero: 0000_0000_0000_0000", lines[1])
	assert.Equal("   x10/a0: 0123_4567_89AB_CDEF", lines[11])
	assert.Equal("   x31/t6: 0000_0000_0000_0000", lines[32])
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range Defines() {
		defines[key] = value
	}

	assert.Equal(map[string]string{
		"XLEN":              "64",
		"INSTRUCTION_WIDTH": "4",
		"REGISTER_COUNT":    "32",
	}, defines)
}
