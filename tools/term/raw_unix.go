//go:build linux || darwin || freebsd || netbsd || openbsd

package term

import (
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// makeRaw puts the terminal fd into raw mode and returns a function restoring
// the previous mode.
func makeRaw(fd uintptr) (restore func(), err error) {
	var orig unix.Termios
	if err := termios.Tcgetattr(fd, &orig); err != nil {
		return nil, err
	}

	raw := orig
	termios.Cfmakeraw(&raw)
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &raw); err != nil {
		return nil, err
	}

	return func() {
		termios.Tcsetattr(fd, termios.TCSANOW, &orig)
	}, nil
}
