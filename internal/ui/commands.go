package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"demoshell/internal/shell"
	"demoshell/internal/system"
)

// watchJobCmd starts the three readers for a freshly spawned job.
func watchJobCmd(p shell.Proc) tea.Cmd {
	return tea.Batch(
		readStreamCmd(p, shell.StreamStdout),
		readStreamCmd(p, shell.StreamStderr),
		waitExitCmd(p),
	)
}

// readStreamCmd receives one chunk. Update re-arms it after each outputMsg,
// so chunks of one stream are applied in order.
func readStreamCmd(p shell.Proc, s shell.Stream) tea.Cmd {
	ch := p.Stdout()
	if s == shell.StreamStderr {
		ch = p.Stderr()
	}
	return func() tea.Msg {
		text, ok := <-ch
		if !ok {
			return streamClosedMsg{proc: p, stream: s}
		}
		return outputMsg{proc: p, stream: s, text: text}
	}
}

func waitExitCmd(p shell.Proc) tea.Cmd {
	return func() tea.Msg {
		<-p.Done()
		code, _ := p.Poll()
		return exitedMsg{proc: p, code: code}
	}
}

// periodic tick command
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// git info command
func gitInfoCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		gi, _ := system.GetGitInfo(ctx, dir)
		return gitInfoMsg{info: gi}
	}
}
