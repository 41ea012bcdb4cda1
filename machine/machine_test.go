//go:build !(mlogv32 && riscv64)

package machine_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/clktmr/mlogv32/hart/harttest"
	"github.com/clktmr/mlogv32/isa"
	"github.com/clktmr/mlogv32/machine"
	"github.com/clktmr/mlogv32/mmio"
	"github.com/clktmr/mlogv32/mmio/mmiotest"
)

// Returns the printed text and the number of flushes.
func printed(rec *harttest.Recorder) (s string, flushes int) {
	for _, trap := range rec.Traps {
		switch trap.Insn {
		case isa.SysPrintChar.Insn():
			s += string(rune(trap.Regs[0]))
		case isa.SysPrintFlush.Insn():
			flushes++
		}
	}
	return
}

func TestDefaultWriter(t *testing.T) {
	rec := harttest.Install(t)

	n, err := fmt.Fprint(machine.DefaultWriter, "panic: oops\ngoroutine 1")
	if err != nil || n != 23 {
		t.Fatalf("unexpected result %d, %v", n, err)
	}
	s, flushes := printed(rec)
	if s != "panic: oops\ngoroutine 1" {
		t.Errorf("unexpected output %q", s)
	}
	if flushes != 1 {
		t.Errorf("expected a flush per line, got %d", flushes)
	}
}

func TestException(t *testing.T) {
	rec := harttest.Install(t)

	machine.Exception(0x2, 0x8000_0abc, 0xdead_beef, 0x10)
	s, _ := printed(rec)
	expected := "Unhandled Illegal Instruction Exception\n" +
		"mcause 0x00000002\n" +
		"mepc   0x80000abc\n" +
		"mtval  0xdeadbeef\n" +
		"ra     0x00000010\n"
	if s != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, s)
	}
}

func TestExceptionName(t *testing.T) {
	tests := map[uint32]string{
		2:             "Illegal Instruction Exception",
		11:            "Environment Call (M) Exception",
		10:            "Reserved Exception",
		0x7fff_ffff:   "Reserved Exception",
		1<<31 | 7:     "Machine Timer Interrupt",
		1<<31 | 11:    "Machine External Interrupt",
		1<<31 | 0x100: "Reserved Interrupt",
		1<<31 | 0:     "Reserved Interrupt",
	}
	for mcause, expected := range tests {
		if name := machine.ExceptionName(mcause); name != expected {
			t.Errorf("mcause %#x: expected %q, got %q", mcause, expected, name)
		}
	}
}

func TestSyscon(t *testing.T) {
	dev := mmiotest.New()
	syscon := machine.NewSyscon(dev)
	syscon.Request(machine.SysconReboot)
	syscon.Request(machine.SysconHalt)

	expected := []mmiotest.Access{
		{Store: true, Width: mmio.Word, Value: 1},
		{Store: true, Width: mmio.Word, Value: 0},
	}
	if !slices.Equal(dev.Log, expected) {
		t.Errorf("expected %v, got %v", expected, dev.Log)
	}
}
