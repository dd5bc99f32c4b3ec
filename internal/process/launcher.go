package process

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Launcher starts command lines under a shell interpreter. The shell does
// all tokenizing, globbing and redirection.
type Launcher struct {
	// Shell is the interpreter path. Empty means DefaultShell.
	Shell string
	// Args precede the command line. Empty means DefaultShellArgs.
	Args []string
	// Dir is the working directory; empty inherits the console's.
	Dir string
	// Env is appended to the console's environment.
	Env []string
}

// Start spawns line. The returned handle's streams must be drained.
func (l Launcher) Start(line string) (*Handle, error) {
	if strings.TrimSpace(line) == "" {
		return nil, fmt.Errorf("start: empty command line")
	}
	shell := l.Shell
	if shell == "" {
		shell = DefaultShell
	}
	args := l.Args
	if len(args) == 0 {
		args = DefaultShellArgs
	}
	argv := append(append([]string{}, args...), line)

	cmd := exec.Command(shell, argv...)
	cmd.Dir = l.Dir
	cmd.Env = append(os.Environ(), l.Env...)
	// stdin stays on the null device; the console owns the terminal.
	configure(cmd)

	// Wait must reap the child without waiting for EOF; a background job
	// can hold the write ends long after the shell exits.
	outR, outW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		closeAll(outR, outW)
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}
	cmd.Stdout = outW
	cmd.Stderr = errW

	h := newHandle(line, cmd)
	err = h.start(outR, errR)
	// The child holds its own copies of the write ends.
	closeAll(outW, errW)
	if err != nil {
		closeAll(outR, errR)
		return nil, err
	}
	return h, nil
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
