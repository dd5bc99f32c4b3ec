// Package shell is the console's state machine: it resolves submitted lines
// into aliases, builtins or external commands, starts jobs and routes their
// output into the scrollback.
//
// A Controller is not safe for concurrent use. One event loop owns it and
// feeds it input events and job notifications in turn.
package shell

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"

	"demoshell/internal/alias"
	"demoshell/internal/process"
	"demoshell/internal/scrollback"
)

// Proc is a started job as seen by the controller and the output adapter.
type Proc interface {
	Command() string
	PID() int
	Stdout() <-chan string
	Stderr() <-chan string
	Done() <-chan struct{}
	Poll() (code int, exited bool)
	Terminate() (sent bool, err error)
}

var _ Proc = (*process.Handle)(nil)

// timed is implemented by procs that track their own run time.
type timed interface {
	Runtime() time.Duration
}

// failed is implemented by procs that keep the error from reaping the child.
type failed interface {
	ExitError() error
}

var (
	_ timed  = (*process.Handle)(nil)
	_ failed = (*process.Handle)(nil)
)

func runtimeOf(p Proc) time.Duration {
	if t, ok := p.(timed); ok {
		return t.Runtime()
	}
	return 0
}

// Spawner starts a command line.
type Spawner interface {
	Spawn(line string) (Proc, error)
}

// SpawnFunc adapts a function to Spawner.
type SpawnFunc func(line string) (Proc, error)

func (f SpawnFunc) Spawn(line string) (Proc, error) { return f(line) }

// LauncherSpawner runs jobs through a process.Launcher.
func LauncherSpawner(l process.Launcher) Spawner {
	return SpawnFunc(func(line string) (Proc, error) {
		h, err := l.Start(line)
		if err != nil {
			return nil, err
		}
		return h, nil
	})
}

// Stream names one output stream of a job.
type Stream int

const (
	StreamStdout Stream = iota
	StreamStderr
)

func (s Stream) String() string {
	if s == StreamStderr {
		return "stderr"
	}
	return "stdout"
}

func (s Stream) style() scrollback.Style {
	if s == StreamStderr {
		return scrollback.Stderr
	}
	return scrollback.Stdout
}

// State is the lifecycle label of the most recent job.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

type job struct {
	proc        Proc
	closed      [2]bool
	exited      bool
	code        int
	terminating bool
	// detached jobs outlived a clear; their output is dropped.
	detached bool
}

func (j *job) finished() bool {
	return j.exited && j.closed[StreamStdout] && j.closed[StreamStderr]
}

// JobInfo describes the most recent job for the status bar.
type JobInfo struct {
	Command     string
	PID         int
	ExitCode    int
	Exited      bool
	Terminating bool
	// Runtime is zero when the proc does not track it.
	Runtime time.Duration
}

// Options configures a Controller.
type Options struct {
	Aliases  alias.Table
	Builtins *Builtins
	Spawner  Spawner
	Logger   *clog.Logger
}

// Controller owns the scrollback and the set of live jobs.
type Controller struct {
	buf      *scrollback.Buffer
	aliases  alias.Table
	builtins *Builtins
	spawn    Spawner
	log      *clog.Logger

	jobs       map[Proc]*job
	last       *job
	terminated bool
}

// New builds a controller over an empty scrollback.
func New(opts Options) *Controller {
	if opts.Builtins == nil {
		opts.Builtins = DefaultBuiltins()
	}
	if opts.Logger == nil {
		opts.Logger = clog.Default()
	}
	return &Controller{
		buf:      scrollback.New(),
		aliases:  opts.Aliases,
		builtins: opts.Builtins,
		spawn:    opts.Spawner,
		log:      opts.Logger.WithPrefix("shell"),
		jobs:     make(map[Proc]*job),
	}
}

// Buffer returns the scrollback. Callers must only read it.
func (c *Controller) Buffer() *scrollback.Buffer { return c.buf }

// Terminated reports whether exit or quit has been handled.
func (c *Controller) Terminated() bool { return c.terminated }

// State is Running while the most recent job has not finished.
func (c *Controller) State() State {
	if c.last != nil && !c.last.finished() {
		return StateRunning
	}
	return StateIdle
}

// Live returns the number of jobs not yet finished, detached ones included.
func (c *Controller) Live() int { return len(c.jobs) }

// Last describes the most recent job. ok is false if none ever ran.
func (c *Controller) Last() (info JobInfo, ok bool) {
	if c.last == nil {
		return JobInfo{}, false
	}
	return JobInfo{
		Command:     c.last.proc.Command(),
		PID:         c.last.proc.PID(),
		ExitCode:    c.last.code,
		Exited:      c.last.exited,
		Terminating: c.last.terminating,
		Runtime:     runtimeOf(c.last.proc),
	}, true
}

// Handle applies one input event.
func (c *Controller) Handle(ev Event) Outcome {
	switch ev.Kind {
	case EventSubmit:
		out := c.submit(ev.Text)
		out.ClearInput = true
		return out
	case EventInterrupt:
		c.interrupt()
	case EventQuit:
		c.run(BuiltinExit)
	case EventNavigate, EventPointer:
	case EventUnrecognized:
		c.buf.PushError("Unknown keypress " + quoteKey(ev.Key))
	default:
		c.buf.PushError("Unknown keypress " + quoteKey(ev.Kind.String()))
	}
	return Outcome{Quit: c.terminated}
}

func (c *Controller) submit(raw string) Outcome {
	line := strings.TrimLeft(raw, "$ ")
	if strings.TrimSpace(line) == "" {
		c.buf.PushError("")
		return Outcome{Quit: c.terminated}
	}
	if target, ok := c.aliases.Lookup(line); ok {
		c.log.Debug("alias", "name", line, "target", target)
		line = target
	}
	if b, ok := c.builtins.Lookup(line); ok {
		c.run(b)
		return Outcome{Quit: c.terminated}
	}

	c.buf.OpenCommandBlock(line)
	p, err := c.spawn.Spawn(line)
	if err != nil {
		c.log.Warn("spawn failed", "cmd", line, "err", err)
		c.buf.PushError(err.Error())
		return Outcome{Quit: c.terminated}
	}
	j := &job{proc: p}
	c.jobs[p] = j
	c.last = j
	c.log.Info("started", "cmd", line, "pid", p.PID())
	return Outcome{Quit: c.terminated, Started: p}
}

func (c *Controller) run(b Builtin) {
	switch b {
	case BuiltinExit:
		c.terminated = true
	case BuiltinClear:
		c.buf.Clear()
		for _, j := range c.jobs {
			j.detached = true
		}
	default:
		panic(fmt.Sprintf("shell: unhandled builtin %v", b))
	}
}

func (c *Controller) interrupt() {
	j := c.last
	if j == nil || j.exited || j.terminating {
		return
	}
	if _, exited := j.proc.Poll(); exited {
		return
	}
	j.terminating = true
	sent, err := j.proc.Terminate()
	if err != nil {
		c.log.Warn("terminate failed", "pid", j.proc.PID(), "err", err)
		return
	}
	c.log.Info("interrupt", "pid", j.proc.PID(), "sent", sent)
}

// Output routes a decoded chunk from p's stream into the newest command block.
func (c *Controller) Output(p Proc, s Stream, text string) {
	j, ok := c.jobs[p]
	if !ok || j.detached || text == "" {
		return
	}
	if err := c.buf.AppendToStream(s.style(), text); err != nil {
		panic(fmt.Sprintf("shell: %s output for %q: %v", s, p.Command(), err))
	}
}

// StreamClosed records end-of-stream for one of p's streams.
func (c *Controller) StreamClosed(p Proc, s Stream) {
	j, ok := c.jobs[p]
	if !ok {
		return
	}
	j.closed[s] = true
	c.reap(p, j)
}

// Exited records p's exit code.
func (c *Controller) Exited(p Proc, code int) {
	j, ok := c.jobs[p]
	if !ok {
		return
	}
	j.exited = true
	j.code = code
	c.reap(p, j)
}

func (c *Controller) reap(p Proc, j *job) {
	if !j.finished() {
		return
	}
	delete(c.jobs, p)
	kv := []any{"cmd", p.Command(), "pid", p.PID(), "code", j.code, "runtime", runtimeOf(p)}
	if f, ok := p.(failed); ok && j.code == -1 {
		kv = append(kv, "err", f.ExitError())
	}
	c.log.Info("finished", kv...)
}

// Shutdown asks every live job to terminate.
func (c *Controller) Shutdown() {
	for p, j := range c.jobs {
		if j.exited || j.terminating {
			continue
		}
		j.terminating = true
		if _, err := p.Terminate(); err != nil {
			c.log.Warn("terminate on shutdown", "pid", p.PID(), "err", err)
		}
	}
}

// quoteKey single-quotes a key name, falling back to double quotes when the
// name itself contains a single quote.
func quoteKey(k string) string {
	q := strconv.Quote(k)
	if strings.Contains(k, "'") {
		return q
	}
	return "'" + strings.ReplaceAll(q[1:len(q)-1], `\"`, `"`) + "'"
}
