// Package uart implements flow controlled serial consoles for mlogv32.
//
// Both devices buffer outgoing bytes in a FIFO of known capacity, but neither
// signals when the FIFO is full. Instead the driver counts the bytes written
// since the transmitter was last seen empty and waits for it to drain before
// the count could overflow the FIFO, so status is polled once per FIFO load.
//
// All types assume a single hart and are not safe for concurrent use.
package uart

import (
	"errors"

	"github.com/clktmr/mlogv32/hart"
	"github.com/clktmr/mlogv32/mmio"
)

var ErrConfig = errors.New("uart: invalid configuration")

// Port is a byte oriented serial console.
type Port interface {
	// Putc writes c, waiting for the transmitter only if its FIFO could
	// otherwise overflow.
	Putc(c byte)

	// Getc returns the next received byte without blocking. The second
	// result is false if no byte is available.
	Getc() (byte, bool)
}

// Platform is the part of the firmware a device registers with during setup.
type Platform interface {
	SetConsole(p Port)
	AddMMIO(base, size uintptr) error
}

// registerMMIO claims the page holding the registers at base.
func registerMMIO(plat Platform, base uintptr) error {
	return plat.AddMMIO(base&^(mmio.PageSize-1), mmio.PageSize)
}

// fifo tracks the fill level of a transmit FIFO that can't be queried.
type fifo struct {
	capacity int
	count    int
}

func newFIFO(capacity int) fifo {
	return fifo{capacity: max(capacity, 1)}
}

// wrote accounts for a single byte written to the FIFO and calls empty until it
// returns true once the FIFO is full.
func (f *fifo) wrote(empty func() bool) {
	f.count++
	if f.count < f.capacity {
		return
	}
	for !empty() {
		hart.Pause()
	}
	f.count = 0
}
