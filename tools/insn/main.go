// Package insn lists the host calls of a program, to check that the compiler
// emitted what the wire protocol expects.
package insn

import (
	"debug/elf"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/clktmr/mlogv32/isa"
)

const usageString = `List custom-0 and ecall instructions of an ELF.

Usage: %s [flags] <elffile>

`

var (
	flags = flag.NewFlagSet("insn", flag.ExitOnError)

	summary = flags.Bool("summary", false, "only print the number of uses per operation")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "insn")
	flags.PrintDefaults()
}

// Call is a host call found in the program text.
type Call struct {
	Addr  uint64
	Insn  isa.Insn
	Name  string
	Arity int
}

func describe(insn isa.Insn) (name string, arity int, ok bool) {
	if insn == isa.Ecall {
		return "ecall", 8, true
	}
	f, ok := insn.Decode()
	if !ok {
		return "", 0, false
	}
	switch f.Format {
	case isa.FormatSys:
		op := isa.SysOp(f.Imm)
		return "sys." + op.String(), op.Arity(), true
	case isa.FormatDraw:
		if op, ok := isa.LookupDraw(f.Imm); ok {
			return "draw." + op.Name, op.Arity(), true
		}
		return fmt.Sprintf("draw.Op(%d)", f.Imm), 0, true
	}
	return fmt.Sprintf("%v(%d)", f.Format, f.Imm), 0, true
}

// Scan returns all host calls in text, which is loaded at addr. Instructions
// are assumed to be 4 byte aligned.
func Scan(text []byte, addr uint64, order binary.ByteOrder) []Call {
	var calls []Call
	for off := 0; off+4 <= len(text); off += 4 {
		insn := isa.Insn(order.Uint32(text[off:]))
		name, arity, ok := describe(insn)
		if !ok {
			continue
		}
		calls = append(calls, Call{addr + uint64(off), insn, name, arity})
	}
	return calls
}

func report(w io.Writer, calls []Call, summary bool) {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	defer tw.Flush()

	if !summary {
		for _, c := range calls {
			fmt.Fprintf(tw, "%#08x\t%08x\t%s\t%d\n", c.Addr, uint32(c.Insn), c.Name, c.Arity)
		}
		return
	}

	count := map[string]int{}
	for _, c := range calls {
		count[c.Name]++
	}
	names := make([]string, 0, len(count))
	for name := range count {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%d\n", name, count[name])
	}
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	f, err := elf.Open(flags.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	var calls []Call
	for _, s := range f.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_EXECINSTR == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			log.Fatalln(s.Name+":", err)
		}
		calls = append(calls, Scan(data, s.Addr, f.ByteOrder)...)
	}
	if len(calls) == 0 {
		log.Println("no host calls in", flags.Arg(0))
		return
	}
	report(os.Stdout, calls, *summary)
}
