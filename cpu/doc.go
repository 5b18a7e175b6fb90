// Package cpu holds the architectural state of an RV64I hart.
//
// The state is 32 general-purpose 64-bit registers (x0-x31) and a 64-bit
// program counter. Register x0 reads as zero and discards writes. An
// execute stage reads the rs1/rs2 operands of a decoded isa.Instruction
// with ReadRegister, writes rd with WriteRegister, and then either calls
// Advance or, for a taken branch or jump, Jump.
package cpu
