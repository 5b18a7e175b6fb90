// Package isa decodes RV64I base instruction words.
//
// The field tables enumerate the general registers and their ABI aliases,
// the instruction formats, the supported major opcodes, and the mnemonics
// they select. Decode classifies a 32-bit word by opcode and funct3 and
// reassembles the immediate for its format, sign-extended to 64 bits.
//
// A decoded word is an Instruction: one of UType, JType, IType, BType or
// SType. Each type carries only the fields its format defines. Encode is the
// inverse, and rebuilds the raw word from those fields.
//
// Shift-immediate (funct7-selected) and register-register operations are
// not decoded.
package isa
