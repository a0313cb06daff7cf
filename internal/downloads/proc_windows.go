//go:build windows

package downloads

import (
	"os/exec"

	"ripper/internal/utils/logging"
)

func setProcGroup(_ *exec.Cmd) {}

// killProcGroup kills the child process. Helper processes spawned by
// the tool are not tracked on this platform.
func killProcGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if err := cmd.Process.Kill(); err != nil {
		logging.E("Failed to kill process %d: %v", cmd.Process.Pid, err)
	}
}
