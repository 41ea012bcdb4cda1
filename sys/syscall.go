// Package sys provides the generic call gateway to the host and the format-0
// system instructions.
//
// The gateway, Ecall, reaches any host service through the standard ECALL
// instruction. It is flexible but costs a register and an indirect dispatch on
// the host for every call. The frequent console operations have their own
// immediate-coded instructions (PrintCharInsn, PrintFlushInsn, DrawFlushInsn).
// They share the host services of the Syscall numbers with the same name
// without the suffix. The drawing family lives in package draw.
package sys

// Syscall is the number passed in a7 to select a host service.
//
// The numeric values are part of the wire protocol. New services must be
// appended; reordering or removing names needs a matching change in the host.
// The host behaviour for numbers it does not know is undefined. Neither the
// number nor the arguments are validated by the guest.
type Syscall uint32

const (
	Halt Syscall = iota
	PrintChar
	PrintFlush
	DrawClear
	DrawColor
	DrawCol
	DrawStroke
	DrawLine
	DrawRect
	DrawLineRect
	DrawPoly
	DrawLinePoly
	DrawTriangle
	DrawImage
	DrawPrint
	DrawTranslate
	DrawScale
	DrawRotate
	DrawReset
	DrawFlush

	SyscallLast
)

var syscallNames = [...]string{
	Halt:          "Halt",
	PrintChar:     "PrintChar",
	PrintFlush:    "PrintFlush",
	DrawClear:     "DrawClear",
	DrawColor:     "DrawColor",
	DrawCol:       "DrawCol",
	DrawStroke:    "DrawStroke",
	DrawLine:      "DrawLine",
	DrawRect:      "DrawRect",
	DrawLineRect:  "DrawLineRect",
	DrawPoly:      "DrawPoly",
	DrawLinePoly:  "DrawLinePoly",
	DrawTriangle:  "DrawTriangle",
	DrawImage:     "DrawImage",
	DrawPrint:     "DrawPrint",
	DrawTranslate: "DrawTranslate",
	DrawScale:     "DrawScale",
	DrawRotate:    "DrawRotate",
	DrawReset:     "DrawReset",
	DrawFlush:     "DrawFlush",
}

func (s Syscall) String() string {
	if s < SyscallLast {
		return syscallNames[s]
	}
	return "Syscall(" + itoa(uint32(s)) + ")"
}

// Lookup returns the syscall number of the service called name.
func Lookup(name string) (Syscall, bool) {
	for i, n := range syscallNames {
		if n == name {
			return Syscall(i), true
		}
	}
	return 0, false
}

func itoa(v uint32) string {
	var buf [10]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return string(buf[i:])
}
