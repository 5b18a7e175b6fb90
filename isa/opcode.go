package isa

import (
	"iter"
)

// Format is an instruction layout class.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R = Format(0) // R
	FORMAT_I = Format(1) // I
	FORMAT_S = Format(2) // S
	FORMAT_B = Format(3) // B
	FORMAT_U = Format(4) // U
	FORMAT_J = Format(5) // J
)

// OPCODE_MASK selects the opcode bits of an instruction word.
const OPCODE_MASK = 0x7f

// Opcode is a major opcode. Its value is the 7-bit encoding.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OPCODE_LOAD   = Opcode(0b000_0011) // LOAD
	OPCODE_OP_IMM = Opcode(0b001_0011) // OP_IMM
	OPCODE_AUIPC  = Opcode(0b001_0111) // AUIPC
	OPCODE_STORE  = Opcode(0b010_0011) // STORE
	OPCODE_LUI    = Opcode(0b011_0111) // LUI
	OPCODE_BRANCH = Opcode(0b110_0011) // BRANCH
	OPCODE_JALR   = Opcode(0b110_0111) // JALR
	OPCODE_JAL    = Opcode(0b110_1111) // JAL
)

// OpcodeFromNumber returns the opcode encoded as n.
// ok is false for any unsupported or out of range value.
func OpcodeFromNumber(n uint32) (op Opcode, ok bool) {
	if n > OPCODE_MASK {
		return
	}

	op = Opcode(n)
	switch op {
	case OPCODE_LOAD, OPCODE_OP_IMM, OPCODE_AUIPC, OPCODE_STORE,
		OPCODE_LUI, OPCODE_BRANCH, OPCODE_JALR, OPCODE_JAL:
		ok = true
	default:
		op = 0
	}

	return
}

// Number returns the 7-bit encoding of the opcode.
func (op Opcode) Number() uint32 {
	return uint32(op)
}

// Format returns the layout used by all instructions of the opcode.
func (op Opcode) Format() (format Format) {
	switch op {
	case OPCODE_LUI, OPCODE_AUIPC:
		format = FORMAT_U
	case OPCODE_JAL:
		format = FORMAT_J
	case OPCODE_BRANCH:
		format = FORMAT_B
	case OPCODE_STORE:
		format = FORMAT_S
	default:
		format = FORMAT_I
	}

	return
}

// Mnemonic names a decodable operation.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	LUI   = Mnemonic(0)  // lui
	AUIPC = Mnemonic(1)  // auipc
	JAL   = Mnemonic(2)  // jal
	JALR  = Mnemonic(3)  // jalr
	BEQ   = Mnemonic(4)  // beq
	BNE   = Mnemonic(5)  // bne
	BLT   = Mnemonic(6)  // blt
	BGE   = Mnemonic(7)  // bge
	BLTU  = Mnemonic(8)  // bltu
	BGEU  = Mnemonic(9)  // bgeu
	LB    = Mnemonic(10) // lb
	LH    = Mnemonic(11) // lh
	LW    = Mnemonic(12) // lw
	LBU   = Mnemonic(13) // lbu
	LHU   = Mnemonic(14) // lhu
	SB    = Mnemonic(15) // sb
	SH    = Mnemonic(16) // sh
	SW    = Mnemonic(17) // sw
	ADDI  = Mnemonic(18) // addi
	SLTI  = Mnemonic(19) // slti
	SLTIU = Mnemonic(20) // sltiu
	XORI  = Mnemonic(21) // xori
	ORI   = Mnemonic(22) // ori
	ANDI  = Mnemonic(23) // andi
)

// noFunct3 marks mnemonics whose format has no funct3 field.
const noFunct3 = 0xff

// mnemonicTable maps each mnemonic to its opcode and funct3 selector.
var mnemonicTable = [...]struct {
	opcode Opcode
	funct3 uint8
}{
	LUI:   {OPCODE_LUI, noFunct3},
	AUIPC: {OPCODE_AUIPC, noFunct3},
	JAL:   {OPCODE_JAL, noFunct3},
	JALR:  {OPCODE_JALR, 0b000},
	BEQ:   {OPCODE_BRANCH, 0b000},
	BNE:   {OPCODE_BRANCH, 0b001},
	BLT:   {OPCODE_BRANCH, 0b100},
	BGE:   {OPCODE_BRANCH, 0b101},
	BLTU:  {OPCODE_BRANCH, 0b110},
	BGEU:  {OPCODE_BRANCH, 0b111},
	LB:    {OPCODE_LOAD, 0b000},
	LH:    {OPCODE_LOAD, 0b001},
	LW:    {OPCODE_LOAD, 0b010},
	LBU:   {OPCODE_LOAD, 0b100},
	LHU:   {OPCODE_LOAD, 0b101},
	SB:    {OPCODE_STORE, 0b000},
	SH:    {OPCODE_STORE, 0b001},
	SW:    {OPCODE_STORE, 0b010},
	ADDI:  {OPCODE_OP_IMM, 0b000},
	SLTI:  {OPCODE_OP_IMM, 0b010},
	SLTIU: {OPCODE_OP_IMM, 0b011},
	XORI:  {OPCODE_OP_IMM, 0b100},
	ORI:   {OPCODE_OP_IMM, 0b110},
	ANDI:  {OPCODE_OP_IMM, 0b111},
}

// Mnemonics returns all of the decodable mnemonics.
func Mnemonics() iter.Seq[Mnemonic] {
	return func(yield func(Mnemonic) bool) {
		for mn := range Mnemonic(len(mnemonicTable)) {
			if !yield(mn) {
				return
			}
		}
	}
}

// Valid returns true if the mnemonic is one of the decodable mnemonics.
func (mn Mnemonic) Valid() bool {
	return mn >= 0 && int(mn) < len(mnemonicTable)
}

// Opcode returns the major opcode of the mnemonic.
func (mn Mnemonic) Opcode() Opcode {
	return mnemonicTable[mn].opcode
}

// Format returns the instruction layout of the mnemonic.
func (mn Mnemonic) Format() Format {
	return mn.Opcode().Format()
}

// Funct3 returns the funct3 selector of the mnemonic.
// ok is false for U and J format mnemonics.
func (mn Mnemonic) Funct3() (funct3 uint32, ok bool) {
	f3 := mnemonicTable[mn].funct3
	if f3 == noFunct3 {
		return
	}

	return uint32(f3), true
}
