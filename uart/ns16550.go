package uart

import (
	"fmt"

	"github.com/clktmr/mlogv32/hart"
	"github.com/clktmr/mlogv32/mmio"
)

// Register indices, scaled by Config.RegShift.
const (
	regRBR = 0 // receive buffer (read), transmit holding (write), DLL if DLAB
	regIER = 1 // interrupt enable, DLM if DLAB
	regFCR = 2 // FIFO control (write)
	regLCR = 3
	regMCR = 4
	regLSR = 5
	regMSR = 6
	regSCR = 7

	regTHR = regRBR
	regDLL = regRBR
	regDLM = regIER
)

type lineStatus uint8

const (
	lsrDR   lineStatus = 1 << 0 // data ready
	lsrTHRE lineStatus = 1 << 5 // transmit holding register empty
	lsrTEMT lineStatus = 1 << 6 // transmitter empty
)

const (
	lcrDLAB = 0x80
	lcr8N1  = 0x03
	fcrFIFO = 0x01
	ierUUE  = 0x40
)

// Caps are optional features of a 16550 compatible device.
type Caps uint32

const (
	// CapUUE is set on devices which need the UART unit enable bit in IER,
	// e.g. the XScale UART.
	CapUUE Caps = 1 << iota
)

// Config describes the geometry of a 16550 compatible device.
type Config struct {
	Base      uintptr // physical address, used for MMIO registration
	InputFreq uint32  // Hz
	BaudRate  uint32  // zero keeps the divisor latch untouched
	RegShift  uint    // register n is at RegOffset + n<<RegShift
	RegWidth  mmio.Width
	RegOffset uintptr
	Caps      Caps

	// FIFOCapacity is the number of bytes the transmitter buffers. Zero
	// behaves like one.
	FIFOCapacity int
}

// Divisor returns the baud rate divisor, rounded to nearest.
func (c *Config) Divisor() uint32 {
	if c.BaudRate == 0 {
		return 0
	}
	return (c.InputFreq + 8*c.BaudRate) / (16 * c.BaudRate)
}

// NS16550 is a 16550 compatible serial console.
type NS16550 struct {
	bus   mmio.Bus
	cfg   Config
	fifo  fifo
	empty func() bool
}

// SetupNS16550 programs the device behind bus for 8N1 with FIFOs enabled,
// registers it as the console of plat and claims its MMIO page.
func SetupNS16550(bus mmio.Bus, cfg Config, plat Platform) (*NS16550, error) {
	if !cfg.RegWidth.Valid() {
		return nil, fmt.Errorf("%w: register width %d", ErrConfig, cfg.RegWidth)
	}

	u := &NS16550{bus: bus, cfg: cfg, fifo: newFIFO(cfg.FIFOCapacity)}
	u.empty = u.txEmpty

	ier := uint32(0)
	if cfg.Caps&CapUUE != 0 {
		ier = ierUUE
	}
	u.store(regIER, ier)

	u.store(regLCR, lcrDLAB)
	if div := cfg.Divisor(); div != 0 {
		u.store(regDLL, div&0xff)
		u.store(regDLM, div>>8&0xff)
	}
	u.store(regLCR, lcr8N1)
	u.store(regFCR, fcrFIFO)
	u.store(regMCR, 0)

	// Clear stale status and data.
	u.load(regLSR)
	u.load(regRBR)
	u.store(regSCR, 0)

	plat.SetConsole(u)
	if err := registerMMIO(plat, cfg.Base); err != nil {
		return nil, fmt.Errorf("uart: register %#x: %w", cfg.Base, err)
	}
	return u, nil
}

func (u *NS16550) reg(n uintptr) uintptr {
	return u.cfg.RegOffset + n<<u.cfg.RegShift
}

func (u *NS16550) load(n uintptr) uint32 {
	return u.bus.Load(u.reg(n), u.cfg.RegWidth)
}

func (u *NS16550) store(n uintptr, v uint32) {
	u.bus.Store(u.reg(n), u.cfg.RegWidth, v)
}

func (u *NS16550) status() lineStatus {
	return lineStatus(u.load(regLSR))
}

func (u *NS16550) txEmpty() bool {
	return u.status()&lsrTHRE != 0
}

func (u *NS16550) Putc(c byte) {
	u.store(regTHR, uint32(c))
	u.fifo.wrote(u.empty)
}

func (u *NS16550) Getc() (byte, bool) {
	if u.status()&lsrDR == 0 {
		return 0, false
	}
	return byte(u.load(regRBR)), true
}

// Drain waits until the transmitter has sent every written byte.
func (u *NS16550) Drain() {
	for u.status()&lsrTEMT == 0 {
		hart.Pause()
	}
	u.fifo.count = 0
}
