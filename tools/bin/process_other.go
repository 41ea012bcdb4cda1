//go:build !unix

package bin

import (
	"os"
	"os/exec"
	"time"
)

func setGroup(cmd *exec.Cmd) {}

func stop(cmd *exec.Cmd, exited <-chan struct{}, grace time.Duration) error {
	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		// Not supported on windows.
		return cmd.Process.Kill()
	}
	select {
	case <-exited:
		return nil
	case <-time.After(grace):
		return cmd.Process.Kill()
	}
}
