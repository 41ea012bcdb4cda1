package platform

import (
	"time"

	"github.com/clktmr/mlogv32/mmio"
)

const (
	regMtime    = 0x0
	regMtimeCmp = 0x8
)

// Timer is the machine timer of the board. Its registers are 64 bit wide but
// only accessible as two 32 bit halves.
type Timer struct {
	bus mmio.Bus
}

// NewTimer returns the timer whose registers are mapped to bus.
func NewTimer(bus mmio.Bus) *Timer { return &Timer{bus} }

func (t *Timer) load64(off uintptr) uint64 {
	for {
		hi := t.bus.Load(off+4, mmio.Word)
		lo := t.bus.Load(off, mmio.Word)
		if t.bus.Load(off+4, mmio.Word) == hi {
			return uint64(hi)<<32 | uint64(lo)
		}
	}
}

// Now returns the current value of mtime in ticks.
func (t *Timer) Now() uint64 { return t.load64(regMtime) }

// Compare returns the current value of mtimecmp.
func (t *Timer) Compare() uint64 { return t.load64(regMtimeCmp) }

// SetCompare sets mtimecmp to ticks without transiently setting a smaller
// value.
func (t *Timer) SetCompare(ticks uint64) {
	t.bus.Store(regMtimeCmp+4, mmio.Word, 0xffff_ffff)
	t.bus.Store(regMtimeCmp, mmio.Word, uint32(ticks))
	t.bus.Store(regMtimeCmp+4, mmio.Word, uint32(ticks>>32))
}

// SetTime sets mtime to ticks. The low word is cleared first so the counter
// can't carry into the high word in between.
func (t *Timer) SetTime(ticks uint64) {
	t.bus.Store(regMtime, mmio.Word, 0)
	t.bus.Store(regMtime+4, mmio.Word, uint32(ticks>>32))
	t.bus.Store(regMtime, mmio.Word, uint32(ticks))
}

// Since returns the time elapsed since ticks.
func (t *Timer) Since(ticks uint64) time.Duration {
	return Duration(t.Now() - ticks)
}

// Duration converts ticks to a time.Duration.
func Duration(ticks uint64) time.Duration {
	return time.Duration(ticks) * (time.Second / TimerFreq)
}

// Ticks converts d to timer ticks, rounding down.
func Ticks(d time.Duration) uint64 {
	return uint64(d / (time.Second / TimerFreq))
}
