package ui

import (
	"fmt"
	"strings"
	"time"

	xansi "github.com/charmbracelet/x/ansi"

	"demoshell/internal/shell"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.ti.View() + "\n"
	}
	b := &strings.Builder{}
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(xansi.Truncate(m.ti.View(), m.width, ""))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBarLine())
	b.WriteString("\n")
	b.WriteString(xansi.Truncate(m.help.View(m.keys), m.width, ""))
	return b.String()
}

// renderBuffer renders the scrollback, hard-wrapped to the window.
func (m model) renderBuffer() string {
	out := renderScrollback(m.ctl.Buffer().Render(), m.pal)
	if m.width > 0 {
		out = xansi.Hardwrap(out, m.width, true)
	}
	return out
}

// renderStatusBarLine builds the status bar: job state and last command on
// the left, git, version and clock on the right.
func (m model) renderStatusBarLine() string {
	now := m.now
	if now.IsZero() {
		now = time.Now()
	}

	var left []string
	if m.ctl.State() == shell.StateRunning {
		left = append(left, ChipStyle(Vitesse.Yellow).Render(strings.TrimSpace(m.spin.View())+" running"))
	} else {
		left = append(left, ChipStyle(Vitesse.Primary).Render("idle"))
	}
	if info, ok := m.ctl.Last(); ok {
		left = append(left, StatusBarBase().Render(" "+commandLabel(info.Command, maxInt(8, m.width/3))+" "))
		rt := runtimeLabel(info.Runtime)
		switch {
		case info.Exited && info.ExitCode != 0:
			left = append(left, ChipStyle(Vitesse.Red).Render(fmt.Sprintf("exit %d%s", info.ExitCode, rt)))
		case info.Exited:
			left = append(left, ChipStyle(Vitesse.Blue).Render("exit 0"+rt))
		case info.Terminating:
			left = append(left, ChipStyle(Vitesse.Red).Render(fmt.Sprintf("pid %d stopping%s", info.PID, rt)))
		default:
			left = append(left, ChipStyle(Vitesse.Blue).Render(fmt.Sprintf("pid %d%s", info.PID, rt)))
		}
	}

	var right []string
	if m.git.InRepo {
		g := "git"
		if m.git.Branch != "" {
			g += " " + m.git.Branch
		}
		if m.git.Dirty {
			g += "*"
		}
		right = append(right, g)
	}
	if m.version != "" {
		right = append(right, "v"+m.version)
	}
	right = append(right, now.Format("15:04:05"))
	return renderStatusBar(m.width, left, right)
}
