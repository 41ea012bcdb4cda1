// Package mmio abstracts memory mapped device registers, so that drivers can be
// tested against fake devices.
package mmio

// PageSize is the granularity of memory ownership on mlogv32.
const PageSize = 1 << 12

// Width of a single register access in bytes.
type Width uint8

const (
	Byte Width = 1
	Half Width = 2
	Word Width = 4
)

// Valid reports whether w is a supported access width.
func (w Width) Valid() bool {
	return w == Byte || w == Half || w == Word
}

// Mask returns the bits covered by an access of width w.
func (w Width) Mask() uint32 {
	switch w {
	case Byte:
		return 0xff
	case Half:
		return 0xffff
	}
	return 0xffff_ffff
}

// Bus is a window of device registers. Offsets are relative to the start of the
// window. Accesses are never reordered or merged.
type Bus interface {
	Load(off uintptr, width Width) uint32
	Store(off uintptr, width Width, v uint32)
}
