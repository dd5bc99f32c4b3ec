// Package process runs console commands under an external shell and
// streams their output.
//
// A Launcher starts one child per command line:
//
//	l := process.Launcher{Shell: "/bin/sh"}
//	h, err := l.Start("ls -la")
//	if err != nil {
//	    return err
//	}
//	for chunk := range h.Stdout() {
//	    fmt.Print(chunk)
//	}
//	<-h.Done()
//
// Stdout and stderr are read on separate goroutines, decoded as UTF-8 and
// delivered on separate channels. Each channel preserves the order in which
// the child wrote; nothing orders stdout against stderr. A channel is closed
// when its descriptor reaches EOF. Done is closed only after both channels
// have been closed and the child has been reaped, so a caller that drains
// both channels observes every chunk before the exit code.
//
// Callers must drain both channels. An undrained channel stalls the reader
// and, through the pipe, eventually the child.
//
// Terminate is advisory: it requests termination and returns. Exit is only
// observed through Poll or Done. There are no timeouts; a child that
// ignores the signal stays attached.
package process
