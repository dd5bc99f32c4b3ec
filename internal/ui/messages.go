package ui

import (
	"time"

	"demoshell/internal/shell"
	"demoshell/internal/system"
)

// Bubble Tea messages

// one decoded chunk from a job stream
type outputMsg struct {
	proc   shell.Proc
	stream shell.Stream
	text   string
}

// a job stream reached EOF
type streamClosedMsg struct {
	proc   shell.Proc
	stream shell.Stream
}

// a job was reaped
type exitedMsg struct {
	proc shell.Proc
	code int
}

// periodic tick for status bar time
type tickMsg time.Time

// git info updates
type gitInfoMsg struct{ info system.GitInfo }
