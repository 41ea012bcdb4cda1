//go:build unix

package bin

import (
	"os/exec"
	"syscall"
	"time"
)

// setGroup starts the emulator in its own process group, so stop reaches the
// helpers it spawns.
func setGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// stop interrupts the emulator's process group and kills it if it hasn't
// exited after grace.
func stop(cmd *exec.Cmd, exited <-chan struct{}, grace time.Duration) error {
	pgid := -cmd.Process.Pid
	if err := syscall.Kill(pgid, syscall.SIGINT); err != nil {
		return err
	}
	select {
	case <-exited:
		return nil
	case <-time.After(grace):
		return syscall.Kill(pgid, syscall.SIGKILL)
	}
}
