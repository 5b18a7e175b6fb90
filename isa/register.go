package isa

// REGISTER_COUNT is the number of general purpose registers.
const REGISTER_COUNT = 32

// Register is a general purpose register index.
type Register uint8

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_X0  = Register(0)  // x0
	REG_X1  = Register(1)  // x1
	REG_X2  = Register(2)  // x2
	REG_X3  = Register(3)  // x3
	REG_X4  = Register(4)  // x4
	REG_X5  = Register(5)  // x5
	REG_X6  = Register(6)  // x6
	REG_X7  = Register(7)  // x7
	REG_X8  = Register(8)  // x8
	REG_X9  = Register(9)  // x9
	REG_X10 = Register(10) // x10
	REG_X11 = Register(11) // x11
	REG_X12 = Register(12) // x12
	REG_X13 = Register(13) // x13
	REG_X14 = Register(14) // x14
	REG_X15 = Register(15) // x15
	REG_X16 = Register(16) // x16
	REG_X17 = Register(17) // x17
	REG_X18 = Register(18) // x18
	REG_X19 = Register(19) // x19
	REG_X20 = Register(20) // x20
	REG_X21 = Register(21) // x21
	REG_X22 = Register(22) // x22
	REG_X23 = Register(23) // x23
	REG_X24 = Register(24) // x24
	REG_X25 = Register(25) // x25
	REG_X26 = Register(26) // x26
	REG_X27 = Register(27) // x27
	REG_X28 = Register(28) // x28
	REG_X29 = Register(29) // x29
	REG_X30 = Register(30) // x30
	REG_X31 = Register(31) // x31
)

// RegisterFromNumber returns the register with index n.
// ok is false if n is not a register index.
func RegisterFromNumber(n uint32) (reg Register, ok bool) {
	if n >= REGISTER_COUNT {
		return
	}

	return Register(n), true
}

// Number returns the register index.
func (reg Register) Number() uint32 {
	return uint32(reg)
}

// Abi returns the calling convention alias of the register.
func (reg Register) Abi() Abi {
	return Abi(reg)
}

// Abi is the calling convention name of a register.
type Abi uint8

//go:generate go tool stringer -linecomment -type=Abi
const (
	ABI_ZERO = Abi(0)  // zero
	ABI_RA   = Abi(1)  // ra
	ABI_SP   = Abi(2)  // sp
	ABI_GP   = Abi(3)  // gp
	ABI_TP   = Abi(4)  // tp
	ABI_T0   = Abi(5)  // t0
	ABI_T1   = Abi(6)  // t1
	ABI_T2   = Abi(7)  // t2
	ABI_S0   = Abi(8)  // s0
	ABI_S1   = Abi(9)  // s1
	ABI_A0   = Abi(10) // a0
	ABI_A1   = Abi(11) // a1
	ABI_A2   = Abi(12) // a2
	ABI_A3   = Abi(13) // a3
	ABI_A4   = Abi(14) // a4
	ABI_A5   = Abi(15) // a5
	ABI_A6   = Abi(16) // a6
	ABI_A7   = Abi(17) // a7
	ABI_S2   = Abi(18) // s2
	ABI_S3   = Abi(19) // s3
	ABI_S4   = Abi(20) // s4
	ABI_S5   = Abi(21) // s5
	ABI_S6   = Abi(22) // s6
	ABI_S7   = Abi(23) // s7
	ABI_S8   = Abi(24) // s8
	ABI_S9   = Abi(25) // s9
	ABI_S10  = Abi(26) // s10
	ABI_S11  = Abi(27) // s11
	ABI_T3   = Abi(28) // t3
	ABI_T4   = Abi(29) // t4
	ABI_T5   = Abi(30) // t5
	ABI_T6   = Abi(31) // t6
)

// AbiFromNumber returns the ABI alias of register index n.
func AbiFromNumber(n uint32) (abi Abi, ok bool) {
	if n >= REGISTER_COUNT {
		return
	}

	return Abi(n), true
}

// Register returns the register the alias names.
func (abi Abi) Register() Register {
	return Register(abi)
}
