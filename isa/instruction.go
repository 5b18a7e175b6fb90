package isa

import (
	"fmt"
)

// Instruction is a decoded instruction word.
//
// The concrete type is selected by the format: UType, JType, IType, BType
// or SType. Each carries only the operands its format encodes.
type Instruction interface {
	Format() Format     // Instruction layout.
	Mnemonic() Mnemonic // Operation.
	Opcode() Opcode     // Major opcode.
	Encode() uint32     // Raw instruction word.
	String() string

	instruction()
}

var (
	_ Instruction = UType{}
	_ Instruction = JType{}
	_ Instruction = IType{}
	_ Instruction = BType{}
	_ Instruction = SType{}
)

// UType is an upper-immediate instruction (LUI, AUIPC).
type UType struct {
	Op  Mnemonic // Operation.
	Rd  Register // Destination register.
	Imm int64    // Immediate, low 12 bits clear, sign-extended from bit 31.
}

// JType is a jump instruction (JAL).
type JType struct {
	Op  Mnemonic // Operation.
	Rd  Register // Link register.
	Imm int64    // Signed byte offset, even, 21 bits.
}

// IType is a register-immediate instruction (JALR, loads, OP_IMM).
type IType struct {
	Op  Mnemonic // Operation.
	Rd  Register // Destination register.
	Rs1 Register // Source (or base address) register.
	Imm int64    // Signed 12-bit immediate.
}

// BType is a conditional branch.
type BType struct {
	Op  Mnemonic // Operation.
	Rs1 Register // First compared register.
	Rs2 Register // Second compared register.
	Imm int64    // Signed byte offset, even, 13 bits.
}

// SType is a store.
type SType struct {
	Op  Mnemonic // Operation.
	Rs1 Register // Base address register.
	Rs2 Register // Source register.
	Imm int64    // Signed 12-bit offset.
}

func (UType) instruction() {}
func (JType) instruction() {}
func (IType) instruction() {}
func (BType) instruction() {}
func (SType) instruction() {}

func (UType) Format() Format { return FORMAT_U }
func (JType) Format() Format { return FORMAT_J }
func (IType) Format() Format { return FORMAT_I }
func (BType) Format() Format { return FORMAT_B }
func (SType) Format() Format { return FORMAT_S }

func (in UType) Mnemonic() Mnemonic { return in.Op }
func (in JType) Mnemonic() Mnemonic { return in.Op }
func (in IType) Mnemonic() Mnemonic { return in.Op }
func (in BType) Mnemonic() Mnemonic { return in.Op }
func (in SType) Mnemonic() Mnemonic { return in.Op }

func (in UType) Opcode() Opcode { return in.Op.Opcode() }
func (in JType) Opcode() Opcode { return in.Op.Opcode() }
func (in IType) Opcode() Opcode { return in.Op.Opcode() }
func (in BType) Opcode() Opcode { return in.Op.Opcode() }
func (in SType) Opcode() Opcode { return in.Op.Opcode() }

// Funct3 returns the funct3 selector of the operation.
func (in IType) Funct3() uint32 { return funct3Of(in.Op) }

// Funct3 returns the funct3 selector of the operation.
func (in BType) Funct3() uint32 { return funct3Of(in.Op) }

// Funct3 returns the funct3 selector of the operation.
func (in SType) Funct3() uint32 { return funct3Of(in.Op) }

func funct3Of(mn Mnemonic) uint32 {
	funct3, _ := mn.Funct3()
	return funct3
}

// String returns the instruction and its operands.
func (in UType) String() string {
	return fmt.Sprintf("%v.%v rd:%v imm:%#x", in.Format(), in.Op, in.Rd, in.Imm)
}

// String returns the instruction and its operands.
func (in JType) String() string {
	return fmt.Sprintf("%v.%v rd:%v imm:%d", in.Format(), in.Op, in.Rd, in.Imm)
}

// String returns the instruction and its operands.
func (in IType) String() string {
	return fmt.Sprintf("%v.%v rd:%v rs1:%v imm:%d", in.Format(), in.Op, in.Rd, in.Rs1, in.Imm)
}

// String returns the instruction and its operands.
func (in BType) String() string {
	return fmt.Sprintf("%v.%v rs1:%v rs2:%v imm:%d", in.Format(), in.Op, in.Rs1, in.Rs2, in.Imm)
}

// String returns the instruction and its operands.
func (in SType) String() string {
	return fmt.Sprintf("%v.%v rs1:%v rs2:%v imm:%d", in.Format(), in.Op, in.Rs1, in.Rs2, in.Imm)
}
