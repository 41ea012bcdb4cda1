// Package drivers builds upon the instruction and device packages to provide
// common interfaces and higher-level features.
package drivers

import "io"

// SystemWriter is the signature of the writer used by print, println and panic.
type SystemWriter func(fd int, p []byte) int

// Flusher is a writer that buffers until Flush, like console.Message.
type Flusher interface {
	io.Writer
	Flush()
}

// NewSystemWriter returns a SystemWriter for rtos.SetSystemWriter() that writes
// to w. Writes to stderr, which carry panics and fatal errors, are also copied
// to mirror and flushed immediately. mirror may be nil. Errors are dropped, as
// print can't report them.
func NewSystemWriter(w io.Writer, mirror Flusher) SystemWriter {
	return func(fd int, p []byte) int {
		n, _ := w.Write(p)
		if fd == 2 && mirror != nil {
			mirror.Write(p)
			mirror.Flush()
		}
		return n
	}
}
