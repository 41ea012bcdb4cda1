//go:build mlogv32 && riscv64

// Package testing provides utilities for writing mlogv32 specific tests.
package testing

import (
	"embedded/rtos"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/embeddedgo/fs/termfs"

	"github.com/clktmr/mlogv32/drivers"
	"github.com/clktmr/mlogv32/drivers/console"
	"github.com/clktmr/mlogv32/machine"
	"github.com/clktmr/mlogv32/mmio"
	"github.com/clktmr/mlogv32/platform"
	"github.com/clktmr/mlogv32/sys"
)

// Domain is the platform state set up by TestMain.
var Domain platform.Domain

// TestMain should be used as TestMain for mlogv32 specific tests.
func TestMain(m *testing.M) {
	uart, err := platform.EarlyInit(&Domain, mmio.Window{Base: platform.UART0Base})
	if err != nil {
		// Nothing to print to but the message buffer.
		machine.DefaultWriter.Write([]byte(err.Error() + "\n"))
		sys.Exit(1)
	}
	serial := console.NewSerial(uart)
	msg := console.NewMessage()

	// Test output goes to the serial console, failures are also shown on the
	// message block.
	fs := termfs.NewLight("termfs", serial, io.MultiWriter(serial, msg))
	rtos.Mount(fs, "/dev/console")
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		panic(err)
	}
	os.Stderr = os.Stdout
	rtos.SetSystemWriter(drivers.NewSystemWriter(serial, msg))

	// TODO find a way to pass these from the 'go test' command
	os.Args = append(os.Args, "-test.v")
	os.Args = append(os.Args, "-test.short")

	code := m.Run()
	fmt.Printf("halt: %d\n", code)
	uart.Drain()
	sys.Exit(uint32(code))
}
