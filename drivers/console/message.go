package console

import (
	"unicode/utf8"

	"github.com/clktmr/mlogv32/sys"
)

// Message writes text to the processor's message buffer, which the host shows
// on flush. Lines are flushed as they complete.
type Message struct {
	partial [utf8.UTFMax]byte
	n       int
}

func NewMessage() *Message { return &Message{} }

func (m *Message) Write(p []byte) (int, error) {
	written := len(p)

	// Runes starting in bytes carried over from the previous write.
	if m.n > 0 {
		var buf [2 * utf8.UTFMax]byte
		n := copy(buf[:], m.partial[:m.n])
		n += copy(buf[n:], p)
		carried := m.n
		m.n = 0
		q := buf[:n]
		for carried > 0 {
			if !utf8.FullRune(q) {
				m.n = copy(m.partial[:], q)
				return written, nil
			}
			r, size := utf8.DecodeRune(q)
			m.print(r)
			q = q[size:]
			carried -= size
		}
		p = p[-carried:]
	}

	for len(p) > 0 {
		if !utf8.FullRune(p) {
			m.n = copy(m.partial[:], p)
			break
		}
		r, size := utf8.DecodeRune(p)
		m.print(r)
		p = p[size:]
	}
	return written, nil
}

func (m *Message) print(r rune) {
	sys.PrintCharInsn(r)
	if r == '\n' {
		sys.PrintFlushInsn()
	}
}

// Flush shows the current line without waiting for a newline.
func (m *Message) Flush() {
	sys.PrintFlushInsn()
}
