//go:build mlogv32 && riscv64

package mmio

import (
	hw "embedded/mmio"
	"unsafe"
)

// Window is a Bus backed by physical memory starting at Base.
type Window struct {
	Base uintptr
}

func (w Window) Load(off uintptr, width Width) uint32 {
	addr := unsafe.Pointer(w.Base + off)
	switch width {
	case Byte:
		return uint32((*hw.U8)(addr).Load())
	case Half:
		return uint32((*hw.U16)(addr).Load())
	}
	return (*hw.U32)(addr).Load()
}

func (w Window) Store(off uintptr, width Width, v uint32) {
	addr := unsafe.Pointer(w.Base + off)
	switch width {
	case Byte:
		(*hw.U8)(addr).Store(uint8(v))
	case Half:
		(*hw.U16)(addr).Store(uint16(v))
	default:
		(*hw.U32)(addr).Store(v)
	}
}
