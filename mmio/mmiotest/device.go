// Package mmiotest provides a fake register file implementing mmio.Bus.
package mmiotest

import (
	"fmt"

	"github.com/clktmr/mlogv32/mmio"
)

// Access is a single recorded register access.
type Access struct {
	Store bool
	Off   uintptr
	Width mmio.Width
	Value uint32
}

func (a Access) String() string {
	op := "load"
	if a.Store {
		op = "store"
	}
	return fmt.Sprintf("%s%d %#x=%#x", op, a.Width*8, a.Off, a.Value)
}

// Device is a register file which records every access.
//
// Loads return the last stored value unless OnLoad is set, which then decides
// the loaded value. OnStore is called after a store was recorded.
type Device struct {
	Regs map[uintptr]uint32
	Log  []Access

	OnLoad  func(off uintptr, v uint32) uint32
	OnStore func(off uintptr, v uint32)
}

func New() *Device {
	return &Device{Regs: make(map[uintptr]uint32)}
}

func (d *Device) Load(off uintptr, width mmio.Width) uint32 {
	if !width.Valid() {
		panic(fmt.Sprintf("mmiotest: load of width %d", width))
	}
	v := d.Regs[off]
	if d.OnLoad != nil {
		v = d.OnLoad(off, v)
	}
	v &= width.Mask()
	d.Log = append(d.Log, Access{Off: off, Width: width, Value: v})
	return v
}

func (d *Device) Store(off uintptr, width mmio.Width, v uint32) {
	if !width.Valid() {
		panic(fmt.Sprintf("mmiotest: store of width %d", width))
	}
	v &= width.Mask()
	d.Regs[off] = v
	d.Log = append(d.Log, Access{Store: true, Off: off, Width: width, Value: v})
	if d.OnStore != nil {
		d.OnStore(off, v)
	}
}

// Loads returns the number of loads from off.
func (d *Device) Loads(off uintptr) (n int) {
	for _, a := range d.Log {
		if !a.Store && a.Off == off {
			n++
		}
	}
	return
}

// Stores returns all values stored to off in order.
func (d *Device) Stores(off uintptr) (v []uint32) {
	for _, a := range d.Log {
		if a.Store && a.Off == off {
			v = append(v, a.Value)
		}
	}
	return
}

// Reset forgets the access log but keeps the register contents.
func (d *Device) Reset() { d.Log = d.Log[:0] }
