//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package term

import "golang.org/x/term"

func makeRaw(fd uintptr) (restore func(), err error) {
	state, err := term.MakeRaw(int(fd))
	if err != nil {
		return nil, err
	}
	return func() { term.Restore(int(fd), state) }, nil
}
