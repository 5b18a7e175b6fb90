// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"log"
)

// Decoder decodes instruction words.
type Decoder struct {
	Verbose bool // Set to log why a word did not decode.
}

var decoder Decoder

// Decode decodes a 32-bit instruction word.
// ok is false if the opcode, or the funct3 under that opcode, is not
// recognized.
func Decode(word uint32) (inst Instruction, ok bool) {
	return decoder.Decode(word)
}

// Decode decodes a 32-bit instruction word.
// ok is false if the opcode, or the funct3 under that opcode, is not
// recognized.
func (dec Decoder) Decode(word uint32) (inst Instruction, ok bool) {
	inst, err := decode(word)
	if err != nil {
		if dec.Verbose {
			log.Printf("isa: 0x%08x: %v", word, err)
		}
		return nil, false
	}

	return inst, true
}

// decode classifies the word by opcode, then funct3, and extracts the
// operands of the resulting format.
func decode(word uint32) (inst Instruction, err error) {
	op, ok := OpcodeFromNumber(word & OPCODE_MASK)
	if !ok {
		err = ErrOpcode(word & OPCODE_MASK)
		return
	}

	mn, err := decodeFunct3(op, fieldFunct3(word))
	if err != nil {
		return
	}

	switch op.Format() {
	case FORMAT_U:
		inst = UType{Op: mn, Rd: fieldRd(word), Imm: immU(word)}
	case FORMAT_J:
		inst = JType{Op: mn, Rd: fieldRd(word), Imm: immJ(word)}
	case FORMAT_I:
		inst = IType{Op: mn, Rd: fieldRd(word), Rs1: fieldRs1(word), Imm: immI(word)}
	case FORMAT_B:
		inst = BType{Op: mn, Rs1: fieldRs1(word), Rs2: fieldRs2(word), Imm: immB(word)}
	case FORMAT_S:
		inst = SType{Op: mn, Rs1: fieldRs1(word), Rs2: fieldRs2(word), Imm: immS(word)}
	default:
		err = ErrOpcode(op)
	}

	return
}

// decodeFunct3 selects the operation of an opcode. U and J format opcodes
// have a single operation and ignore funct3 (those bits are immediate).
func decodeFunct3(op Opcode, funct3 uint32) (mn Mnemonic, err error) {
	ok := true

	switch op {
	case OPCODE_LUI:
		mn = LUI
	case OPCODE_AUIPC:
		mn = AUIPC
	case OPCODE_JAL:
		mn = JAL
	case OPCODE_JALR:
		mn = JALR
		ok = funct3 == 0b000
	case OPCODE_BRANCH:
		switch funct3 {
		case 0b000:
			mn = BEQ
		case 0b001:
			mn = BNE
		case 0b100:
			mn = BLT
		case 0b101:
			mn = BGE
		case 0b110:
			mn = BLTU
		case 0b111:
			mn = BGEU
		default:
			ok = false
		}
	case OPCODE_LOAD:
		switch funct3 {
		case 0b000:
			mn = LB
		case 0b001:
			mn = LH
		case 0b010:
			mn = LW
		case 0b100:
			mn = LBU
		case 0b101:
			mn = LHU
		default:
			ok = false
		}
	case OPCODE_STORE:
		switch funct3 {
		case 0b000:
			mn = SB
		case 0b001:
			mn = SH
		case 0b010:
			mn = SW
		default:
			ok = false
		}
	case OPCODE_OP_IMM:
		// 0b001 and 0b101 are the shift immediates, selected by funct7.
		switch funct3 {
		case 0b000:
			mn = ADDI
		case 0b010:
			mn = SLTI
		case 0b011:
			mn = SLTIU
		case 0b100:
			mn = XORI
		case 0b110:
			mn = ORI
		case 0b111:
			mn = ANDI
		default:
			ok = false
		}
	default:
		err = ErrOpcode(op)
		return
	}

	if !ok {
		err = ErrFunct3{Opcode: op, Funct3: funct3}
	}

	return
}

func fieldRd(word uint32) Register {
	return Register((word >> 7) & 0x1f)
}

func fieldFunct3(word uint32) uint32 {
	return (word >> 12) & 0x7
}

func fieldRs1(word uint32) Register {
	return Register((word >> 15) & 0x1f)
}

func fieldRs2(word uint32) Register {
	return Register((word >> 20) & 0x1f)
}

// signExtend extends the low width bits of value to 64 bits.
func signExtend(value uint32, width uint) int64 {
	shift := 64 - width
	return int64(uint64(value)<<shift) >> shift
}

// immU is imm[31:12], low 12 bits zero.
func immU(word uint32) int64 {
	return signExtend(word&0xfffff000, 32)
}

// immJ is imm[20|10:1|11|19:12] from bits 31:12.
func immJ(word uint32) int64 {
	imm := ((word>>31)&0x1)<<20 | // imm[20]
		((word>>21)&0x3ff)<<1 | // imm[10:1]
		((word>>20)&0x1)<<11 | // imm[11]
		((word>>12)&0xff)<<12 // imm[19:12]
	return signExtend(imm, 21)
}

// immI is imm[11:0] from bits 31:20.
func immI(word uint32) int64 {
	return signExtend(word>>20, 12)
}

// immB is imm[12|10:5] from bits 31:25 and imm[4:1|11] from bits 11:7.
func immB(word uint32) int64 {
	imm := ((word>>31)&0x1)<<12 | // imm[12]
		((word>>25)&0x3f)<<5 | // imm[10:5]
		((word>>8)&0xf)<<1 | // imm[4:1]
		((word>>7)&0x1)<<11 // imm[11]
	return signExtend(imm, 13)
}

// immS is imm[11:5] from bits 31:25 and imm[4:0] from bits 11:7.
func immS(word uint32) int64 {
	imm := ((word>>25)&0x7f)<<5 | // imm[11:5]
		((word>>7)&0x1f) // imm[4:0]
	return signExtend(imm, 12)
}
