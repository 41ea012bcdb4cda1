//go:build !(mlogv32 && riscv64)

package hart

import (
	"runtime"

	"github.com/clktmr/mlogv32/isa"
)

var handler Handler

// SetHandler installs h as the receiver of all traps and returns the previously
// installed handler.
func SetHandler(h Handler) (prev Handler) {
	prev, handler = handler, h
	return
}

// Raise executes the trap insn with the given registers. The first staged
// registers were loaded by the call site, the remaining ones are zero.
//
// Like the instruction it stands in for, Raise returns only after the handler
// has serviced the trap.
func Raise(insn isa.Insn, regs *Regs, staged int) {
	if handler == nil {
		panic(ErrNoHandler)
	}
	handler.Trap(insn, regs, staged)
}

// Pause hints that the hart is spinning on a status register.
func Pause() { runtime.Gosched() }
