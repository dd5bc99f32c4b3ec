//go:build !windows

package process

import (
	"os"
	"os/exec"
	"syscall"
)

// DefaultShell is used when a Launcher has no Shell.
const DefaultShell = "/bin/sh"

// DefaultShellArgs precede the command line.
var DefaultShellArgs = []string{"-c"}

// configure puts the child in its own process group so a terminate
// reaches every process of a pipeline.
func configure(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func terminate(p *os.Process) error {
	if err := syscall.Kill(-p.Pid, syscall.SIGTERM); err == nil {
		return nil
	}
	return p.Signal(syscall.SIGTERM)
}
