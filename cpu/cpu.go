package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/rvcore/isa"
)

const (
	XLEN              = 64 // Register width, in bits.
	INSTRUCTION_WIDTH = 4  // Bytes per instruction word.
)

var _cpu_defines = map[string]string{
	"XLEN":              fmt.Sprintf("%d", XLEN),
	"INSTRUCTION_WIDTH": fmt.Sprintf("%d", INSTRUCTION_WIDTH),
	"REGISTER_COUNT":    fmt.Sprintf("%d", isa.REGISTER_COUNT),
}

// Cpu is the simulation context for a single hart.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [isa.REGISTER_COUNT]uint64 // Register bank. Register[0] is always zero.
	Pc       uint64                     // Program counter.
}

// NewCpu creates a new CPU with all registers and the pc zero.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state, zeroing all registers and the pc.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Pc = 0
}

// ReadRegister returns the value of a register. x0 always reads zero.
func (cpu *Cpu) ReadRegister(reg isa.Register) uint64 {
	if reg == isa.REG_X0 {
		return 0
	}

	return cpu.Register[reg]
}

// WriteRegister sets the value of a register. Writes to x0 are discarded.
func (cpu *Cpu) WriteRegister(reg isa.Register, value uint64) {
	if reg == isa.REG_X0 {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %v (%v) <= 0x%016x", reg, reg.Abi(), value)
	}

	cpu.Register[reg] = value
}

// NextPc returns the address of the instruction following the current one.
func (cpu *Cpu) NextPc() uint64 {
	return cpu.Pc + INSTRUCTION_WIDTH
}

// Advance moves the pc to the next instruction.
func (cpu *Cpu) Advance() {
	cpu.Pc = cpu.NextPc()
}

// Jump sets the pc to the target of a taken branch or jump.
// The pc is unchanged if the target is not instruction aligned.
func (cpu *Cpu) Jump(target uint64) (err error) {
	if target%INSTRUCTION_WIDTH != 0 {
		err = ErrMisaligned(target)
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: jump 0x%x => 0x%x", cpu.Pc, target)
	}

	cpu.Pc = target

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	hex := func(val uint64) string {
		return fmt.Sprintf("%04X_%04X_%04X_%04X", val>>48, (val>>32)&0xffff, (val>>16)&0xffff, val&0xffff)
	}

	text = fmt.Sprintf("% 9s: %v\n", "pc", hex(cpu.Pc))
	for n := range uint32(isa.REGISTER_COUNT) {
		reg, _ := isa.RegisterFromNumber(n)
		name := fmt.Sprintf("%v/%v", reg, reg.Abi())
		text += fmt.Sprintf("% 9s: %v\n", name, hex(cpu.ReadRegister(reg)))
	}

	return
}
