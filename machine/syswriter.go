package machine

import (
	"github.com/clktmr/mlogv32/sys"
)

// Writes to the host's message buffer, one instruction per byte. Bytes are
// passed as code points, so only ASCII survives unchanged. Only intended as a
// fail safe logger in very early boot.
//
//go:nosplit
func write(p []byte) int {
	for _, b := range p {
		sys.PrintCharInsn(rune(b))
		if b == '\n' {
			sys.PrintFlushInsn()
		}
	}
	return len(p)
}

type defaultWriter int

const DefaultWriter defaultWriter = 0

func (v defaultWriter) Write(p []byte) (int, error) {
	return DefaultWrite(int(v), p), nil
}
