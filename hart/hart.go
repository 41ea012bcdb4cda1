// Package hart is the boundary between guest code and the trapping
// instructions that reach the host.
//
// On the mlogv32 target every trap is a single instruction emitted by the
// assembly of the package that owns it (see the sys and draw packages) and this
// package is not involved. Everywhere else those call sites stage the same
// registers in a Regs value and pass it to Raise, which forwards it to the
// installed Handler. This keeps the wire shape of every call observable in
// tests without an emulator.
package hart

import (
	"errors"

	"github.com/clktmr/mlogv32/isa"
)

// Regs holds the argument registers a0..a7.
type Regs [8]uint32

// A Handler services traps. It receives the instruction word, the register file
// and the number of argument registers the call site staged. Results are
// returned in regs[0].
type Handler interface {
	Trap(insn isa.Insn, regs *Regs, staged int)
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc func(insn isa.Insn, regs *Regs, staged int)

func (f HandlerFunc) Trap(insn isa.Insn, regs *Regs, staged int) { f(insn, regs, staged) }

var ErrNoHandler = errors.New("hart: trap without handler")
