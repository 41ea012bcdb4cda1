// Copyright 2024 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bin

import (
	"bufio"
	"debug/elf"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/buildkite/shellwords"
)

const usageString = `ELF to mlogv32 binary converter.

Usage: %s [flags] <elffile>

`

var (
	flags = flag.NewFlagSet("bin", flag.ExitOnError)

	infile  string
	outfile = flags.String("o", "", "output file, defaults to the input with .bin suffix")
	maxSize = flags.Int64("max", 0, "fail if the image is larger than this many bytes")
	run     = flags.String("run", "", "Run the binary with command")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "bin")
	flags.PrintDefaults()
}

// objcopy writes all allocated sections of src, relative to its entry point,
// and returns the image size.
func objcopy(dst io.WriterAt, src *elf.File) (size int64, err error) {
	for _, s := range src.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return 0, err
		}

		if s.Addr < src.Entry {
			return 0, fmt.Errorf("section %s before entry point", s.Name)
		}

		off := int64(s.Addr - src.Entry)
		_, err = dst.WriteAt(data, off)
		if err != nil {
			return 0, err
		}
		size = max(size, off+int64(len(data)))
	}
	if size == 0 {
		return 0, errors.New("no loadable sections")
	}
	return size, nil
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		infile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	if *outfile == "" {
		*outfile, _ = strings.CutSuffix(infile, ".elf")
		*outfile += ".bin"
	}

	elffile, err := elf.Open(infile)
	if err != nil {
		log.Fatalln(err)
	}
	defer elffile.Close()
	if elffile.Machine != elf.EM_RISCV {
		log.Fatalln("not a RISC-V binary:", elffile.Machine)
	}

	out, err := os.Create(*outfile)
	if err != nil {
		log.Fatalln(err)
	}
	size, err := objcopy(out, elffile)
	if err != nil {
		log.Fatalln("objcopy:", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalln(err)
	}
	if *maxSize > 0 && size > *maxSize {
		log.Fatalf("image is %d bytes, exceeds %d", size, *maxSize)
	}

	if *run != "" {
		os.Exit(runBin(*run, *outfile))
	}
}

// haltPrefix starts the line the test harness prints with the code it passes
// to sys.Exit.
const haltPrefix = "halt: "

const (
	// Time for a panicking guest to print its stack trace.
	stopDelay = 500 * time.Millisecond
	stopGrace = 2 * time.Second
)

// status reports whether line ends a test run and with which exit code.
func status(line string) (code int, done bool) {
	switch {
	case strings.HasPrefix(line, haltPrefix):
		code, err := strconv.Atoi(strings.TrimPrefix(line, haltPrefix))
		if err != nil || code < 0 || code > 255 {
			return 1, true
		}
		return code, true
	case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
		return 1, true
	case line == "FAIL":
		return 1, true
	case line == "PASS":
		return 0, true
	}
	return 0, false
}

// watch copies the emulator's output from r to w line by line. ended is called
// once, on the first line that ends the run. A later halt line still sets the
// returned code, so the guest's exit code wins over PASS or FAIL.
func watch(r io.Reader, w io.Writer, ended func()) (code int, seen bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		fmt.Fprintln(w, line)
		c, done := status(line)
		if !done {
			continue
		}
		if !seen {
			ended()
			code = c
		} else if strings.HasPrefix(line, haltPrefix) {
			code = c
		}
		seen = true
	}
	return code, seen
}

// exitCode returns the code to exit with after the emulator returned err
// without printing a status line.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr) && exitErr.ExitCode() > 0:
		return exitErr.ExitCode()
	}
	log.Println(err)
	return 1
}

// runBin runs the emulator command line with the image appended and returns
// the exit code of the guest.
func runBin(cmdline, binpath string) int {
	args, err := shellwords.Split(cmdline)
	if err != nil {
		log.Fatalln("run:", err)
	}
	if len(args) == 0 {
		log.Fatalln("run: empty command")
	}
	args = append(args, binpath)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	setGroup(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Fatalln("open stdout:", err)
	}
	if err := cmd.Start(); err != nil {
		log.Fatalln("start command:", err)
	}

	exited := make(chan struct{})
	var once sync.Once
	shutdown := func(delay time.Duration) {
		once.Do(func() {
			go func() {
				time.Sleep(delay)
				if err := stop(cmd, exited, stopGrace); err != nil {
					log.Println("stop:", err)
				}
			}()
		})
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)
	go func() {
		<-sigintr
		shutdown(0)
	}()

	code, seen := watch(stdout, log.Writer(), func() { shutdown(stopDelay) })
	err = cmd.Wait()
	close(exited)
	if seen {
		return code
	}
	return exitCode(err)
}
