// Package console provides io.Writer and io.Reader implementations for the
// consoles of mlogv32.
package console

import (
	"io"
	"runtime"

	"golang.org/x/text/transform"

	"github.com/clktmr/mlogv32/uart"
)

// Serial is a terminal on a serial port. Written line feeds are sent as
// carriage return, line feed.
type Serial struct {
	port uart.Port
	w    io.Writer
}

func NewSerial(port uart.Port) *Serial {
	return &Serial{
		port: port,
		w:    transform.NewWriter(portWriter{port}, &crlf{}),
	}
}

func (s *Serial) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Read blocks until at least one byte was received, then returns all bytes
// available without waiting.
func (s *Serial) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		c, ok := s.port.Getc()
		if ok {
			p[n] = c
			n++
			break
		}
		runtime.Gosched()
	}
	for n < len(p) {
		c, ok := s.port.Getc()
		if !ok {
			break
		}
		p[n] = c
		n++
	}
	return n, nil
}

type portWriter struct {
	port uart.Port
}

func (w portWriter) Write(p []byte) (int, error) {
	for _, c := range p {
		w.port.Putc(c)
	}
	return len(p), nil
}

// crlf translates LF to CRLF unless it's already preceded by CR.
type crlf struct {
	cr bool
}

func (t *crlf) Reset() { t.cr = false }

func (t *crlf) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, c := range src {
		n := 1
		if c == '\n' && !t.cr {
			n = 2
		}
		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if n == 2 {
			dst[nDst] = '\r'
			nDst++
		}
		dst[nDst] = c
		nDst++
		nSrc++
		t.cr = c == '\r'
	}
	return nDst, nSrc, nil
}
