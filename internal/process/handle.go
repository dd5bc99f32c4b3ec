package process

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// State is the lifecycle state of a handle.
type State int32

const (
	StateCreated State = iota
	StateRunning
	StateExited
	StateKilled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	case StateKilled:
		return "killed"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// ErrNotStarted is returned when signalling a handle whose child never started.
var ErrNotStarted = errors.New("process not started")

const (
	readSize  = 4096
	chanDepth = 64
)

// Handle is a running (or finished) command. It is safe for concurrent use.
type Handle struct {
	command string
	cmd     *exec.Cmd
	started time.Time

	stdout chan string
	stderr chan string
	done   chan struct{}

	state       atomic.Int32
	exitCode    atomic.Int32
	terminating atomic.Bool
	reaped      atomic.Bool

	mu      sync.RWMutex
	exitErr error
	ended   time.Time
}

func newHandle(command string, cmd *exec.Cmd) *Handle {
	h := &Handle{
		command: command,
		cmd:     cmd,
		stdout:  make(chan string, chanDepth),
		stderr:  make(chan string, chanDepth),
		done:    make(chan struct{}),
	}
	h.exitCode.Store(-1)
	return h
}

// Command returns the command line the shell was given.
func (h *Handle) Command() string { return h.command }

// Stdout delivers decoded stdout chunks and is closed at EOF.
func (h *Handle) Stdout() <-chan string { return h.stdout }

// Stderr delivers decoded stderr chunks and is closed at EOF.
func (h *Handle) Stderr() <-chan string { return h.stderr }

// Done is closed once both streams hit EOF and the child was reaped.
// The child may be reaped well before that; see Poll.
func (h *Handle) Done() <-chan struct{} { return h.done }

// State returns the current lifecycle state.
func (h *Handle) State() State { return State(h.state.Load()) }

// PID returns the child's pid, or -1 before start.
func (h *Handle) PID() int {
	if h.cmd == nil || h.cmd.Process == nil {
		return -1
	}
	return h.cmd.Process.Pid
}

// Runtime is the time since start, or the total run time once finished.
func (h *Handle) Runtime() time.Duration {
	if h.started.IsZero() {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.ended.IsZero() {
		return h.ended.Sub(h.started)
	}
	return time.Since(h.started)
}

// Poll reports the child's own exit code without blocking. It does not wait
// for the streams: a background job that inherited stdout keeps the streams
// open after the shell itself has exited.
func (h *Handle) Poll() (code int, exited bool) {
	if !h.reaped.Load() {
		return -1, false
	}
	return int(h.exitCode.Load()), true
}

// ExitError returns the error from waiting on the child, if any.
func (h *Handle) ExitError() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.exitErr
}

// Terminating reports whether Terminate has been requested.
func (h *Handle) Terminating() bool { return h.terminating.Load() }

// Terminate asks the child to stop. Only the first call sends a signal;
// sent reports whether this call did. It does not wait for exit.
func (h *Handle) Terminate() (sent bool, err error) {
	if h.cmd == nil || h.cmd.Process == nil {
		return false, ErrNotStarted
	}
	if _, exited := h.Poll(); exited {
		return false, nil
	}
	if !h.terminating.CompareAndSwap(false, true) {
		return false, nil
	}
	if err := terminate(h.cmd.Process); err != nil {
		return true, fmt.Errorf("terminate pid %d: %w", h.PID(), err)
	}
	return true, nil
}

func (h *Handle) start(stdout, stderr io.ReadCloser) error {
	if err := h.cmd.Start(); err != nil {
		return fmt.Errorf("start %q: %w", h.command, err)
	}
	h.started = time.Now()
	h.state.Store(int32(StateRunning))

	var wg sync.WaitGroup
	wg.Add(3)
	go pump(stdout, h.stdout, &wg)
	go pump(stderr, h.stderr, &wg)
	go h.wait(&wg)
	go func() {
		wg.Wait()
		_ = stdout.Close()
		_ = stderr.Close()
		close(h.done)
	}()
	return nil
}

func (h *Handle) wait(wg *sync.WaitGroup) {
	defer wg.Done()
	err := h.cmd.Wait()

	code := 0
	state := StateExited
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			code = ee.ExitCode()
			if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
				state = StateKilled
				code = 128 + int(ws.Signal())
			}
		} else {
			code = -1
		}
	}

	h.mu.Lock()
	h.exitErr = err
	h.ended = time.Now()
	h.mu.Unlock()

	h.exitCode.Store(int32(code))
	h.state.Store(int32(state))
	h.reaped.Store(true)
}

// pump decodes src as UTF-8 and forwards chunks to out until EOF. Invalid
// bytes become U+FFFD; sequences split across reads are joined first.
func pump(src io.Reader, out chan<- string, wg *sync.WaitGroup) {
	defer wg.Done()
	defer close(out)
	r := transform.NewReader(src, unicode.UTF8.NewDecoder())
	buf := make([]byte, readSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			out <- string(buf[:n])
		}
		if err != nil {
			return
		}
	}
}
