//go:build mlogv32 && riscv64

package machine

import (
	"github.com/clktmr/mlogv32/hart"
	"github.com/clktmr/mlogv32/mmio"
	"github.com/clktmr/mlogv32/platform"
	"github.com/clktmr/mlogv32/sys"
)

var syscon = NewSyscon(mmio.Window{Base: platform.SysconBase})

func init() {
	// Instructions are fetched from a cache that is filled once.
	sys.InitICache(textEnd())
}

// textEnd returns the address following the last instruction of the program.
func textEnd() uintptr

// Halt stops the processor.
func Halt() {
	syscon.Request(SysconHalt)
	for {
		hart.Pause()
	}
}

// Reboot restarts the processor from its reset vector.
func Reboot() {
	syscon.Request(SysconReboot)
	for {
		hart.Pause()
	}
}
