package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"demoshell/internal/config"
	"demoshell/internal/scrollback"
)

// Palette styles each scrollback segment kind.
type Palette map[scrollback.Style]lipgloss.Style

// DefaultPalette mirrors config.Default().Palette.
func DefaultPalette() Palette {
	return PaletteFromConfig(config.Default().Palette)
}

// PaletteFromConfig builds styles from config colors. Styles missing from
// colors render unstyled.
func PaletteFromConfig(colors map[string]config.Colors) Palette {
	p := make(Palette, len(scrollback.Styles))
	for _, s := range scrollback.Styles {
		st := lipgloss.NewStyle()
		if c, ok := colors[s.String()]; ok {
			if c.Foreground != "" {
				st = st.Foreground(lipgloss.Color(c.Foreground))
			}
			if c.Background != "" {
				st = st.Background(lipgloss.Color(c.Background))
			}
			st = st.Bold(c.Bold)
		}
		p[s] = st
	}
	return p
}

// renderScrollback styles segments line by line so a background never
// spills past the text it belongs to. Escape sequences written by jobs are
// dropped; only the palette colors the output.
func renderScrollback(segs []scrollback.Segment, pal Palette) string {
	var b strings.Builder
	for _, seg := range segs {
		st := pal[seg.Style]
		lines := strings.Split(seg.Text, "\n")
		for i, ln := range lines {
			ln = strings.ReplaceAll(xansi.Strip(ln), "\t", "    ")
			ln = strings.TrimSuffix(ln, "\r")
			if ln != "" {
				b.WriteString(st.Render(ln))
			}
			if i < len(lines)-1 {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}
