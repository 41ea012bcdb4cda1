//go:build mlogv32 && riscv64

package sys

// Ecall loads a0..a6 and which into the argument registers a0..a7, executes a
// single ECALL and returns the host's reply from a0. It blocks until the host
// has serviced the call.
func Ecall(which Syscall, a0, a1, a2, a3, a4, a5, a6 uint32) uint32

// PrintCharInsn appends c to the host's message buffer.
func PrintCharInsn(c rune)

// PrintFlushInsn moves the message buffer to the host's message display.
func PrintFlushInsn()

// DrawFlushInsn moves the pending drawing operations to the host's display.
func DrawFlushInsn()

// InitICache makes the host decode the instructions below end ahead of time.
func InitICache(end uintptr)
