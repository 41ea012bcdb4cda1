//go:build mlogv32 && riscv64

package machine

import _ "unsafe" // for linkname

//go:nowritebarrierrec
//go:nosplit
//go:linkname DefaultWrite runtime.defaultWrite
func DefaultWrite(fd int, p []byte) int {
	return write(p)
}
