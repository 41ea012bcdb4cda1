// Package machine is imported by the runtime and allows the target to implement
// some hooks, most importantly the fail-safe system writer.
package machine

import (
	"github.com/clktmr/mlogv32/mmio"
)

// SysconCommand is written to the system controller to end execution.
type SysconCommand uint32

const (
	SysconHalt   SysconCommand = 0
	SysconReboot SysconCommand = 1
)

// Syscon is the system controller of the board.
type Syscon struct {
	bus mmio.Bus
}

// NewSyscon returns the system controller whose register is mapped to bus.
func NewSyscon(bus mmio.Bus) Syscon { return Syscon{bus} }

// Request asks the host to carry out cmd. The host acts on it asynchronously,
// so the caller must not rely on Request returning or not.
func (s Syscon) Request(cmd SysconCommand) {
	s.bus.Store(0, mmio.Word, uint32(cmd))
}
