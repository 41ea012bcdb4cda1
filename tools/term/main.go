// Package term connects the local terminal to a serial port exposed over TCP,
// e.g. by an emulator or a serial to network bridge.
package term

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	"golang.org/x/term"
)

const usageString = `Serial terminal.

Usage: %s [flags] <host:port>

Press Ctrl-] to quit.

`

// Ctrl-]
const escape = 0x1d

var (
	flags = flag.NewFlagSet("term", flag.ExitOnError)

	echo = flags.Bool("echo", false, "echo typed characters locally")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "term")
	flags.PrintDefaults()
}

// forward copies src to dst until src ends or sends the escape character.
func forward(dst io.Writer, src io.Reader, local io.Writer) error {
	buf := make([]byte, 256)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			p := buf[:n]
			quit := false
			if i := bytes.IndexByte(p, escape); i >= 0 {
				p, quit = p[:i], true
			}
			if local != nil {
				local.Write(p)
			}
			if _, werr := dst.Write(p); werr != nil {
				return werr
			}
			if quit {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	conn, err := net.Dial("tcp", flags.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	defer conn.Close()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		restore, err := makeRaw(os.Stdin.Fd())
		if err != nil {
			log.Fatalln("raw mode:", err)
		}
		defer restore()
	}

	done := make(chan error, 2)
	go func() {
		_, err := io.Copy(os.Stdout, conn)
		done <- err
	}()
	go func() {
		var local io.Writer
		if *echo {
			local = os.Stdout
		}
		done <- forward(conn, os.Stdin, local)
	}()

	if err := <-done; err != nil {
		// The terminal is still raw, so log needs an explicit carriage return.
		fmt.Fprintf(os.Stderr, "\r\nterm: %v\r\n", err)
	}
}
