package isa

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

var _isa_defines = func() (defines map[string]string) {
	defines = map[string]string{
		"OPCODE_MASK": fmt.Sprintf("0x%x", OPCODE_MASK),
	}

	for _, op := range []Opcode{
		OPCODE_LOAD, OPCODE_OP_IMM, OPCODE_AUIPC, OPCODE_STORE,
		OPCODE_LUI, OPCODE_BRANCH, OPCODE_JALR, OPCODE_JAL,
	} {
		defines["OPCODE_"+op.String()] = fmt.Sprintf("0x%02x", op.Number())
	}

	for mn := range Mnemonics() {
		if funct3, ok := mn.Funct3(); ok {
			defines["FUNCT3_"+strings.ToUpper(mn.String())] = fmt.Sprintf("%d", funct3)
		}
	}

	for n := range uint32(REGISTER_COUNT) {
		reg, _ := RegisterFromNumber(n)
		defines[reg.String()] = fmt.Sprintf("%d", n)
		defines[reg.Abi().String()] = fmt.Sprintf("%d", n)
	}

	// s0 is also the frame pointer.
	defines["fp"] = fmt.Sprintf("%d", ABI_S0.Register().Number())

	return
}()

// Defines returns the opcode, funct3 and register names, with their values.
func Defines() iter.Seq2[string, string] {
	return maps.All(_isa_defines)
}
