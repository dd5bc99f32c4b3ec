package ui

import (
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"demoshell/internal/shell"
)

// rows taken by the input line, status bar and help line
const chromeRows = 3

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = maxInt(1, msg.Height-chromeRows)
		m.ti.Width = maxInt(5, msg.Width-len(m.ti.Prompt)-1)
		m.help.Width = msg.Width
		m.ready = true
		m.refresh(true)
		return m, nil
	case tea.MouseMsg:
		m.ctl.Handle(shell.Pointer())
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	case outputMsg:
		m.ctl.Output(msg.proc, msg.stream, msg.text)
		m.refresh(false)
		return m, readStreamCmd(msg.proc, msg.stream)
	case streamClosedMsg:
		m.ctl.StreamClosed(msg.proc, msg.stream)
		return m, nil
	case exitedMsg:
		m.ctl.Exited(msg.proc, msg.code)
		return m, nil
	case spinner.TickMsg:
		if m.ctl.State() != shell.StateRunning {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tickMsg:
		m.now = time.Time(msg)
		// Throttle git checks to every 10 seconds
		if m.lastGit.IsZero() || m.now.Sub(m.lastGit) >= 10*time.Second {
			m.lastGit = m.now
			return m, tea.Batch(tickCmd(), gitInfoCmd(m.cwd))
		}
		return m, tickCmd()
	case gitInfoMsg:
		m.git = msg.info
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// handleKey turns a keypress into a controller event, or hands it to the
// input line when the line can use it.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.apply(m.ctl.Handle(shell.Submit(m.ti.Value())))
	case key.Matches(msg, m.keys.Interrupt):
		return m.apply(m.ctl.Handle(shell.Interrupt()))
	case key.Matches(msg, m.keys.Quit):
		return m.apply(m.ctl.Handle(shell.Quit()))
	case key.Matches(msg, m.keys.ScrollUp):
		m.vp.SetYOffset(m.vp.YOffset - m.vp.Height)
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.vp.SetYOffset(m.vp.YOffset + m.vp.Height)
		return m, nil
	}

	if ev, ok := m.boundary(msg); ok {
		return m.apply(m.ctl.Handle(ev))
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace || m.editKey(msg) {
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	return m.apply(m.ctl.Handle(shell.Unrecognized(msg.String())))
}

// boundary reports cursor moves and deletions that would fall off either
// end of the input line.
func (m model) boundary(msg tea.KeyMsg) (shell.Event, bool) {
	pos := m.ti.Position()
	end := utf8.RuneCountInString(m.ti.Value())
	km := m.ti.KeyMap
	switch {
	case pos == 0 && (key.Matches(msg, km.CharacterBackward) || key.Matches(msg, km.DeleteCharacterBackward)):
		return shell.Navigate(msg.String()), true
	case pos == end && key.Matches(msg, km.CharacterForward) && !m.hasSuggestion():
		return shell.Navigate(msg.String()), true
	}
	return shell.Event{}, false
}

func (m model) hasSuggestion() bool {
	return m.ti.ShowSuggestions && m.ti.CurrentSuggestion() != ""
}

func (m model) editKey(msg tea.KeyMsg) bool {
	km := m.ti.KeyMap
	return key.Matches(msg,
		km.CharacterForward, km.CharacterBackward,
		km.WordForward, km.WordBackward,
		km.DeleteWordBackward, km.DeleteWordForward,
		km.DeleteAfterCursor, km.DeleteBeforeCursor,
		km.DeleteCharacterBackward, km.DeleteCharacterForward,
		km.LineStart, km.LineEnd, km.Paste,
		km.AcceptSuggestion, km.NextSuggestion, km.PrevSuggestion,
	)
}

// apply carries a controller outcome back into the model.
func (m model) apply(out shell.Outcome) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if out.ClearInput {
		m.ti.Reset()
	}
	if out.Started != nil {
		cmds = append(cmds, watchJobCmd(out.Started))
		if !m.spinning {
			m.spinning = true
			cmds = append(cmds, m.spin.Tick)
		}
	}
	if out.Quit {
		m.ctl.Shutdown()
		m.quitting = true
		return m, tea.Quit
	}
	m.refresh(true)
	return m, tea.Batch(cmds...)
}

// refresh re-renders the scrollback into the viewport. Output keeps the
// view pinned to the bottom unless the user scrolled away; input always
// jumps back.
func (m *model) refresh(follow bool) {
	if !m.ready {
		return
	}
	follow = follow || m.vp.AtBottom()
	m.vp.SetContent(m.renderBuffer())
	if follow {
		m.vp.GotoBottom()
	}
}

// helper used locally for layout
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
