package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/mlogv32/tools/bin"
	"github.com/clktmr/mlogv32/tools/insn"
	"github.com/clktmr/mlogv32/tools/sprite"
	"github.com/clktmr/mlogv32/tools/term"
)

const usageString = `mlogv32go is a tool for development of mlogv32 programs.

Usage:

	%s <command> [arguments]

The commands are:

	bin      convert elf to a flat binary and run it
	insn     list host calls in an elf
	sprite   convert images to sprites
	term     connect the terminal to a serial port
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "bin":
		bin.Main(flag.Args())
	case "insn":
		insn.Main(flag.Args())
	case "sprite":
		sprite.Main(flag.Args())
	case "term":
		term.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
