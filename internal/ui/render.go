package ui

import (
	"fmt"
	"strings"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"
)

// renderStatusBar draws a single-line status bar at the given width with
// left/right-aligned content. Left is truncated first.
func renderStatusBar(width int, left, right []string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	l := strings.Join(left, "")
	r := strings.Join(right, " ")
	if r != "" {
		r += " "
	}
	rw := xansi.StringWidth(r)
	if rw > w {
		r = xansi.Truncate(r, w, "")
		rw = xansi.StringWidth(r)
	}
	if maxL := w - rw - 1; xansi.StringWidth(l) > maxL {
		if maxL < 0 {
			maxL = 0
		}
		l = xansi.Truncate(l, maxL, "…")
	}
	pad := w - xansi.StringWidth(l) - rw
	if pad < 0 {
		pad = 0
	}
	return l + StatusBarBase().Render(strings.Repeat(" ", pad)+r)
}

// commandLabel fits a command line into width cells on one line.
func commandLabel(cmd string, width int) string {
	cmd = strings.Join(strings.Fields(cmd), " ")
	if width <= 1 {
		return ""
	}
	return runewidth.Truncate(cmd, width, "…")
}

// runtimeLabel is a compact duration for status chips, or "" when unknown.
func runtimeLabel(d time.Duration) string {
	switch {
	case d <= 0:
		return ""
	case d < time.Second:
		return fmt.Sprintf(" %dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf(" %.1fs", d.Seconds())
	default:
		return " " + d.Round(time.Second).String()
	}
}
