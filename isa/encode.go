// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Immediates wider than their field are truncated. The low bit of
// branch and jump offsets is not encoded.

func encodeRegs(op Mnemonic, rd, rs1, rs2 Register) (word uint32) {
	word = op.Opcode().Number()
	word |= (uint32(rd) & 0x1f) << 7
	word |= funct3Of(op) << 12
	word |= (uint32(rs1) & 0x1f) << 15
	word |= (uint32(rs2) & 0x1f) << 20
	return
}

// Encode returns the instruction word.
func (in UType) Encode() uint32 {
	return (uint32(in.Imm) & 0xfffff000) |
		(uint32(in.Rd)&0x1f)<<7 |
		in.Op.Opcode().Number()
}

// Encode returns the instruction word.
func (in JType) Encode() uint32 {
	imm := uint32(in.Imm)
	return ((imm>>20)&0x1)<<31 |
		((imm>>1)&0x3ff)<<21 |
		((imm>>11)&0x1)<<20 |
		((imm>>12)&0xff)<<12 |
		(uint32(in.Rd)&0x1f)<<7 |
		in.Op.Opcode().Number()
}

// Encode returns the instruction word.
func (in IType) Encode() uint32 {
	imm := uint32(in.Imm) & 0xfff
	return imm<<20 | encodeRegs(in.Op, in.Rd, in.Rs1, 0)
}

// Encode returns the instruction word.
func (in BType) Encode() uint32 {
	imm := uint32(in.Imm)
	return ((imm>>12)&0x1)<<31 |
		((imm>>5)&0x3f)<<25 |
		((imm>>1)&0xf)<<8 |
		((imm>>11)&0x1)<<7 |
		encodeRegs(in.Op, 0, in.Rs1, in.Rs2)
}

// Encode returns the instruction word.
func (in SType) Encode() uint32 {
	imm := uint32(in.Imm) & 0xfff
	return (imm>>5)<<25 |
		(imm&0x1f)<<7 |
		encodeRegs(in.Op, 0, in.Rs1, in.Rs2)
}
