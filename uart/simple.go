package uart

import (
	"fmt"

	"github.com/clktmr/mlogv32/hart"
	"github.com/clktmr/mlogv32/mmio"
)

// Registers of the simplified UART, all byte wide.
const (
	regRX      = 0x0
	regTX      = 0x4
	regStatus  = 0x8
	regControl = 0xc
)

type status uint8

const (
	statusRXData status = 1 << iota
	statusRXFull
	statusTXEmpty
	statusTXFull
	statusIRQ
)

type control uint8

const (
	controlTXReset control = 1 << iota
	controlRXReset
	_
	_
	controlIRQ
)

// Simple is the simplified UART of the mlogv32 processor. Its geometry is
// fixed and it has no baud rate divisor.
type Simple struct {
	bus   mmio.Bus
	fifo  fifo
	irq   bool
	empty func() bool
}

// SetupSimple resets both FIFOs of the device behind bus, registers it as the
// console of plat and claims the MMIO page holding base.
func SetupSimple(bus mmio.Bus, base uintptr, capacity int, plat Platform) (*Simple, error) {
	u := &Simple{bus: bus, fifo: newFIFO(capacity)}
	u.empty = u.txEmpty
	u.setControl(controlTXReset | controlRXReset)

	plat.SetConsole(u)
	if err := registerMMIO(plat, base); err != nil {
		return nil, fmt.Errorf("uart: register %#x: %w", base, err)
	}
	return u, nil
}

func (u *Simple) setControl(c control) {
	if u.irq {
		c |= controlIRQ
	}
	u.bus.Store(regControl, mmio.Byte, uint32(c))
}

func (u *Simple) status() status {
	return status(u.bus.Load(regStatus, mmio.Byte))
}

func (u *Simple) txEmpty() bool {
	return u.status()&statusTXEmpty != 0
}

func (u *Simple) Putc(c byte) {
	u.bus.Store(regTX, mmio.Byte, uint32(c))
	u.fifo.wrote(u.empty)
}

func (u *Simple) Getc() (byte, bool) {
	if u.status()&statusRXData == 0 {
		return 0, false
	}
	return byte(u.bus.Load(regRX, mmio.Byte)), true
}

// SetIRQ enables or disables the receive interrupt.
func (u *Simple) SetIRQ(on bool) {
	u.irq = on
	u.setControl(0)
}

// Pending reports whether the device asserts its interrupt.
func (u *Simple) Pending() bool {
	return u.status()&statusIRQ != 0
}

// Drain waits until the transmitter has sent every written byte.
func (u *Simple) Drain() {
	for !u.txEmpty() {
		hart.Pause()
	}
	u.fifo.count = 0
}
