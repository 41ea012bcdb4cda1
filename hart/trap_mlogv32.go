//go:build mlogv32 && riscv64

package hart

import "github.com/clktmr/mlogv32/isa"

// SetHandler is a no-op on target, the host emulator services all traps.
func SetHandler(h Handler) (prev Handler) { return nil }

// Raise is never reached on target. Call sites execute their trap instruction
// directly.
func Raise(insn isa.Insn, regs *Regs, staged int) {
	panic(ErrNoHandler)
}

// Pause executes the Zihintpause hint, telling the host that the hart is
// spinning on a status register.
func Pause()
