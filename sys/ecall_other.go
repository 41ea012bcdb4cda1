//go:build !(mlogv32 && riscv64)

package sys

import (
	"github.com/clktmr/mlogv32/hart"
	"github.com/clktmr/mlogv32/isa"
)

// Ecall loads a0..a6 and which into the argument registers a0..a7, executes a
// single ECALL and returns the host's reply from a0. It blocks until the host
// has serviced the call.
func Ecall(which Syscall, a0, a1, a2, a3, a4, a5, a6 uint32) uint32 {
	regs := hart.Regs{a0, a1, a2, a3, a4, a5, a6, uint32(which)}
	hart.Raise(isa.Ecall, &regs, len(regs))
	return regs[0]
}

// PrintCharInsn appends c to the host's message buffer.
func PrintCharInsn(c rune) {
	regs := hart.Regs{uint32(c)}
	hart.Raise(isa.SysPrintChar.Insn(), &regs, 1)
}

// PrintFlushInsn moves the message buffer to the host's message display.
func PrintFlushInsn() {
	hart.Raise(isa.SysPrintFlush.Insn(), &hart.Regs{}, 0)
}

// DrawFlushInsn moves the pending drawing operations to the host's display.
func DrawFlushInsn() {
	hart.Raise(isa.SysDrawFlush.Insn(), &hart.Regs{}, 0)
}

// InitICache makes the host decode the instructions below end ahead of time.
func InitICache(end uintptr) {
	regs := hart.Regs{uint32(end)}
	hart.Raise(isa.SysInitICache.Insn(), &regs, 1)
}
