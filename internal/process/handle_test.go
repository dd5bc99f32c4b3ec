package process

import (
	"bytes"
	"runtime"
	"strings"
	"sync"
	"testing"
	"testing/iotest"
	"time"
	"unicode/utf8"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

// drain reads both streams to EOF and returns their concatenated text.
func drain(t *testing.T, h *Handle) (stdout, stderr string) {
	t.Helper()
	var wg sync.WaitGroup
	var so, se strings.Builder
	wg.Add(2)
	go func() {
		defer wg.Done()
		for c := range h.Stdout() {
			so.WriteString(c)
		}
	}()
	go func() {
		defer wg.Done()
		for c := range h.Stderr() {
			se.WriteString(c)
		}
	}()
	wg.Wait()
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Done")
	}
	return so.String(), se.String()
}

func TestLauncher_EchoStdout(t *testing.T) {
	skipOnWindows(t)
	h, err := Launcher{}.Start("echo hi")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if h.PID() <= 0 {
		t.Fatalf("expected positive pid, got %d", h.PID())
	}
	out, errOut := drain(t, h)
	if out != "hi\n" {
		t.Fatalf("stdout = %q", out)
	}
	if errOut != "" {
		t.Fatalf("stderr = %q", errOut)
	}
	code, exited := h.Poll()
	if !exited || code != 0 {
		t.Fatalf("poll = %d, %v", code, exited)
	}
	if h.State() != StateExited {
		t.Fatalf("state = %v", h.State())
	}
	if h.Command() != "echo hi" {
		t.Fatalf("command = %q", h.Command())
	}
}

func TestLauncher_StderrAndExitCode(t *testing.T) {
	skipOnWindows(t)
	h, err := Launcher{}.Start("echo out; echo err 1>&2; exit 3")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	out, errOut := drain(t, h)
	if out != "out\n" || errOut != "err\n" {
		t.Fatalf("stdout=%q stderr=%q", out, errOut)
	}
	if code, _ := h.Poll(); code != 3 {
		t.Fatalf("exit code = %d, want 3", code)
	}
	if h.ExitError() == nil {
		t.Fatal("expected exit error for non-zero status")
	}
}

func TestLauncher_InvalidUTF8IsReplaced(t *testing.T) {
	skipOnWindows(t)
	h, err := Launcher{}.Start(`printf '\377ok'`)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	out, _ := drain(t, h)
	if out != "\ufffdok" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestPump_JoinsSplitSequences(t *testing.T) {
	src := iotest.OneByteReader(bytes.NewReader([]byte("héllo wörld")))
	out := make(chan string, 64)
	var wg sync.WaitGroup
	wg.Add(1)
	go pump(src, out, &wg)
	var sb strings.Builder
	for c := range out {
		if !utf8.ValidString(c) {
			t.Fatalf("chunk %q is not valid UTF-8", c)
		}
		sb.WriteString(c)
	}
	wg.Wait()
	if sb.String() != "héllo wörld" {
		t.Fatalf("decoded = %q", sb.String())
	}
}

func TestHandle_TerminateOnce(t *testing.T) {
	skipOnWindows(t)
	h, err := Launcher{}.Start("sleep 30")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, exited := h.Poll(); exited {
		t.Fatal("sleep exited immediately")
	}
	sent, err := h.Terminate()
	if err != nil || !sent {
		t.Fatalf("first terminate = %v, %v", sent, err)
	}
	sent, err = h.Terminate()
	if err != nil || sent {
		t.Fatalf("second terminate = %v, %v", sent, err)
	}
	if !h.Terminating() {
		t.Fatal("expected Terminating after Terminate")
	}
	drain(t, h)
	if h.State() != StateKilled {
		t.Fatalf("state = %v, want killed", h.State())
	}
	if sent, _ := h.Terminate(); sent {
		t.Fatal("terminate after exit must not send")
	}
}

func TestLauncher_MissingShell(t *testing.T) {
	_, err := Launcher{Shell: "/nonexistent/demoshell-sh"}.Start("true")
	if err == nil {
		t.Fatal("expected start error for missing shell")
	}
}

func TestLauncher_EmptyLine(t *testing.T) {
	if _, err := (Launcher{}).Start("   "); err == nil {
		t.Fatal("expected error for empty command line")
	}
}

func TestHandle_RuntimeStopsAtExit(t *testing.T) {
	skipOnWindows(t)
	h, err := Launcher{}.Start("true")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	drain(t, h)
	rt := h.Runtime()
	if rt <= 0 {
		t.Fatal("expected positive runtime")
	}
	time.Sleep(20 * time.Millisecond)
	if h.Runtime() != rt {
		t.Fatal("runtime kept growing after exit")
	}
}

func TestHandle_PollIgnoresInheritedStreams(t *testing.T) {
	skipOnWindows(t)
	h, err := Launcher{}.Start("sleep 1 & echo hi")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if c := <-h.Stdout(); c != "hi\n" {
		t.Fatalf("first chunk = %q", c)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, exited := h.Poll(); exited {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("poll still running, state=%v", h.State())
		}
		time.Sleep(10 * time.Millisecond)
	}
	if code, _ := h.Poll(); code != 0 || h.State() != StateExited {
		t.Fatalf("poll code = %d state = %v", code, h.State())
	}
	select {
	case <-h.Done():
		t.Fatal("done closed while the background job holds stdout")
	default:
	}

	sent, err := h.Terminate()
	if sent || err != nil {
		t.Fatalf("terminate after shell exit = %v, %v", sent, err)
	}
	start := time.Now()
	drain(t, h)
	if time.Since(start) < 500*time.Millisecond {
		t.Fatal("background job was cut short")
	}
}

func TestState_String(t *testing.T) {
	if StateKilled.String() != "killed" || State(42).String() != "unknown(42)" {
		t.Fatal("unexpected state names")
	}
}
