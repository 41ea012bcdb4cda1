//go:build !(mlogv32 && riscv64)

package machine

func DefaultWrite(fd int, p []byte) int {
	return write(p)
}
