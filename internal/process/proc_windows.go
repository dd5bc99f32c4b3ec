//go:build windows

package process

import (
	"os"
	"os/exec"
)

// DefaultShell is used when a Launcher has no Shell.
const DefaultShell = "cmd.exe"

// DefaultShellArgs precede the command line.
var DefaultShellArgs = []string{"/C"}

func configure(cmd *exec.Cmd) {}

// Windows has no SIGTERM; Kill is the only portable request.
func terminate(p *os.Process) error { return p.Kill() }
