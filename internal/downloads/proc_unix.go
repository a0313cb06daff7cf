//go:build !windows

package downloads

import (
	"os/exec"
	"syscall"

	"ripper/internal/utils/logging"
)

// setProcGroup starts the child in its own process group so a timeout
// can take its helper processes down with it.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcGroup kills the child's whole process group.
func killProcGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		logging.E("Failed to kill process group %d: %v", cmd.Process.Pid, err)
	}
}
