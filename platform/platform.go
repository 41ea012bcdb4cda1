// Package platform describes the mlogv32 board and tracks which firmware owns
// which part of the physical address space.
package platform

import (
	"cmp"
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"github.com/clktmr/mlogv32/mmio"
	"github.com/clktmr/mlogv32/uart"
)

// Board layout.
const (
	UART0Base         uintptr = 0xf000_0010
	UART0InputFreq            = 10_000_000
	UART0BaudRate             = 38400
	UART0RegShift             = 2
	UART0RegWidth             = mmio.Byte
	UART0FIFOCapacity         = 253

	TimerBase   uintptr = 0xf000_0000 // mtime, mtimecmp at +8
	TimerFreq           = 1000
	SysconBase  uintptr = 0xffff_fff0
	HartCount           = 1
	FirstHartID         = 0
)

var (
	ErrRegion         = errors.New("platform: invalid memory region")
	ErrRegionConflict = errors.New("platform: memory region conflict")
)

type Flags uint32

const (
	Read Flags = 1 << iota
	Write
	Exec
	MMIO
	Shared

	SharedRW = Shared | Read | Write
)

// Region is a range of physical memory with uniform permissions.
type Region struct {
	Base  uintptr
	Size  uintptr
	Flags Flags
}

func (r Region) end() uintptr { return r.Base + r.Size }

func (r Region) overlaps(o Region) bool {
	return r.Base < o.end() && o.Base < r.end()
}

func (r Region) String() string {
	return fmt.Sprintf("[%#x-%#x) %#x", r.Base, r.end(), uint32(r.Flags))
}

// Domain is the set of memory regions and devices owned by the firmware.
type Domain struct {
	regions []Region
	console uart.Port
}

// AddMemRange claims [base, base+size) rounded outwards to align, which must be
// a power of two. Overlapping claims with equal flags are merged.
func (d *Domain) AddMemRange(base, size, align uintptr, flags Flags) error {
	if size == 0 || align == 0 || bits.OnesCount64(uint64(align)) != 1 {
		return fmt.Errorf("%w: base %#x size %#x align %#x", ErrRegion, base, size, align)
	}
	start := base &^ (align - 1)
	end := (base + size + align - 1) &^ (align - 1)
	if end <= start {
		return fmt.Errorf("%w: base %#x size %#x overflows", ErrRegion, base, size)
	}

	r := Region{Base: start, Size: end - start, Flags: flags}
	for _, o := range d.regions {
		if r.overlaps(o) && o.Flags != r.Flags {
			return fmt.Errorf("%w: %v overlaps %v", ErrRegionConflict, r, o)
		}
	}

	// Merge with overlapping regions of the same kind.
	d.regions = slices.DeleteFunc(d.regions, func(o Region) bool {
		if !r.overlaps(o) {
			return false
		}
		start, end = min(start, o.Base), max(end, o.end())
		return true
	})
	r.Base, r.Size = start, end-start

	i, _ := slices.BinarySearchFunc(d.regions, r.Base, func(o Region, base uintptr) int {
		return cmp.Compare(o.Base, base)
	})
	d.regions = slices.Insert(d.regions, i, r)
	return nil
}

// AddMMIO claims the pages covering [base, base+size) as device memory.
func (d *Domain) AddMMIO(base, size uintptr) error {
	return d.AddMemRange(base, size, mmio.PageSize, MMIO|SharedRW)
}

// Regions returns all claimed regions ordered by base address.
func (d *Domain) Regions() []Region {
	return slices.Clone(d.regions)
}

// SetConsole makes p the console of the firmware.
func (d *Domain) SetConsole(p uart.Port) { d.console = p }

// Console returns the console set by the last call to SetConsole.
func (d *Domain) Console() uart.Port { return d.console }

// UART0 returns the configuration of the board's console.
func UART0() uart.Config {
	return uart.Config{
		Base:         UART0Base,
		InputFreq:    UART0InputFreq,
		BaudRate:     UART0BaudRate,
		RegShift:     UART0RegShift,
		RegWidth:     UART0RegWidth,
		FIFOCapacity: UART0FIFOCapacity,
	}
}

// EarlyInit sets up the board's console on bus, which must map UART0Base.
func EarlyInit(d *Domain, bus mmio.Bus) (*uart.NS16550, error) {
	return uart.SetupNS16550(bus, UART0(), d)
}
