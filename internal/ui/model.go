package ui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"demoshell/internal/shell"
	"demoshell/internal/system"
)

// Options configures the console model.
type Options struct {
	Controller *shell.Controller
	Keys       KeyMap
	Palette    Palette
	// Suggestions complete the input line; usually alias and builtin names.
	Suggestions []string
	Version     string
	// Cwd is shown in the status bar git segment; empty means os.Getwd.
	Cwd string
}

// Model for TUI
type model struct {
	ctl  *shell.Controller
	keys KeyMap
	pal  Palette

	vp    viewport.Model
	ti    textinput.Model
	spin  spinner.Model
	help  help.Model
	ready bool

	// spinning is set while a spinner tick is in flight
	spinning bool
	quitting bool
	width    int
	height   int

	// status bar state
	version string
	cwd     string
	now     time.Time
	git     system.GitInfo
	lastGit time.Time
}

func newModel(opts Options) model {
	if opts.Controller == nil {
		opts.Controller = shell.New(shell.Options{})
	}
	if len(opts.Keys.Submit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Palette == nil {
		opts.Palette = DefaultPalette()
	}
	if opts.Cwd == "" {
		opts.Cwd, _ = os.Getwd()
	}
	m := model{
		ctl:     opts.Controller,
		keys:    opts.Keys,
		pal:     opts.Palette,
		version: opts.Version,
		cwd:     opts.Cwd,
		help:    help.New(),
	}

	ti := textinput.New()
	ti.Prompt = "$ "
	ti.PromptStyle = PromptStyle()
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	ti.CharLimit = 0
	ti.ShowSuggestions = len(opts.Suggestions) > 0
	ti.SetSuggestions(opts.Suggestions)
	ti.Focus()
	m.ti = ti

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(Vitesse.OnAccent)
	m.spin = sp

	m.vp = viewport.New(0, 0)
	return m
}

// New returns the console model for tea.NewProgram.
func New(opts Options) tea.Model { return newModel(opts) }

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(), gitInfoCmd(m.cwd))
}
