// Package isa describes the instruction set extension the mlogv32 host decodes.
//
// All host services are reached through two kinds of trapping instructions: the
// standard ECALL, which passes the syscall number in a7, and the custom-0
// opcode, whose funct3 field selects a sub-format and whose 12 bit immediate
// selects the operation. Only the custom-0 encoding is defined here; its layout
// is the RISC-V I-type:
//
//	31        20 19   15 14  12 11    7 6      0
//	| imm[11:0] |  rs1  | fmt  |  rd   | 0001011 |
//
// The guest never validates what it sends. Unknown formats, unknown immediates
// and calls that load fewer registers than the host expects are undefined
// behaviour on the host side.
package isa

// Insn is a 32 bit instruction word.
type Insn uint32

// Ecall is the standard environment call instruction.
const Ecall Insn = 0x0000_0073

// Custom0 is the major opcode reserved for the host extension.
const Custom0 = 0b000_1011

// Format is the custom-0 sub-format, encoded in funct3.
type Format uint8

const (
	FormatSys  Format = 0 // console, flush and cache control
	FormatDraw Format = 1 // immediate-coded drawing operations
)

// Reg is an integer register number.
type Reg uint8

const (
	Zero Reg = 0
	T0   Reg = 5
	A0   Reg = 10
	A1   Reg = 11
	A7   Reg = 17
)

const (
	opcodeMask = 0x7f
	rdShift    = 7
	fmtShift   = 12
	rs1Shift   = 15
	immShift   = 20
)

// Encode returns the custom-0 instruction word with rd = zero.
func Encode(f Format, rs1 Reg, imm uint16) Insn {
	return Insn(uint32(imm&0xfff)<<immShift |
		uint32(rs1&0x1f)<<rs1Shift |
		uint32(f&0x7)<<fmtShift |
		uint32(Zero)<<rdShift |
		Custom0)
}

// Fields is a decoded custom-0 instruction.
type Fields struct {
	Format Format
	Rd     Reg
	Rs1    Reg
	Imm    uint16
}

// Decode splits a custom-0 instruction into its fields. It returns false if insn
// has a different major opcode.
func (insn Insn) Decode() (f Fields, ok bool) {
	if insn&opcodeMask != Custom0 {
		return
	}
	f.Rd = Reg(insn >> rdShift & 0x1f)
	f.Format = Format(insn >> fmtShift & 0x7)
	f.Rs1 = Reg(insn >> rs1Shift & 0x1f)
	f.Imm = uint16(insn >> immShift & 0xfff)
	return f, true
}

func (f Format) String() string {
	switch f {
	case FormatSys:
		return "sys"
	case FormatDraw:
		return "draw"
	}
	return "fmt" + string(rune('0'+f&7))
}
