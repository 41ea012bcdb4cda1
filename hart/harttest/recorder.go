// Package harttest provides a trap handler for testing code that calls into the
// host.
package harttest

import (
	"runtime"
	"testing"

	"github.com/clktmr/mlogv32/hart"
	"github.com/clktmr/mlogv32/isa"
)

// Trap is a single recorded trap.
type Trap struct {
	Insn   isa.Insn
	Regs   hart.Regs
	Staged int
}

// Args returns the registers loaded by the call site.
func (t Trap) Args() []uint32 { return t.Regs[:t.Staged] }

// Recorder is a hart.Handler that records every trap.
//
// Ecalls are answered by Ecall if set. A trap for which Stop returns true ends
// the calling goroutine, like a host that never resumes the guest.
type Recorder struct {
	Traps []Trap

	Ecall func(regs hart.Regs) uint32
	Stop  func(t Trap) bool
}

func (r *Recorder) Trap(insn isa.Insn, regs *hart.Regs, staged int) {
	t := Trap{Insn: insn, Regs: *regs, Staged: staged}
	r.Traps = append(r.Traps, t)
	if r.Stop != nil && r.Stop(t) {
		runtime.Goexit()
	}
	if insn == isa.Ecall && r.Ecall != nil {
		regs[0] = r.Ecall(t.Regs)
	}
}

// Reset forgets all recorded traps.
func (r *Recorder) Reset() { r.Traps = r.Traps[:0] }

// Install creates a Recorder and installs it for the duration of the test.
func Install(t testing.TB) *Recorder {
	r := &Recorder{}
	prev := hart.SetHandler(r)
	t.Cleanup(func() { hart.SetHandler(prev) })
	return r
}
