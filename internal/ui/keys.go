package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"demoshell/internal/config"
)

// KeyMap binds console actions. It is handed to the model at construction;
// nothing mutates global key state.
type KeyMap struct {
	Submit     key.Binding
	Interrupt  key.Binding
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap mirrors config.Default().Keys.
func DefaultKeyMap() KeyMap {
	return KeyMapFromConfig(config.Default().Keys)
}

// KeyMapFromConfig builds bindings from key names such as "ctrl+c".
func KeyMapFromConfig(k config.Keys) KeyMap {
	return KeyMap{
		Submit:     binding(k.Submit, "run"),
		Interrupt:  binding(k.Interrupt, "interrupt"),
		Quit:       binding(k.Quit, "quit"),
		ScrollUp:   binding(k.ScrollUp, "scroll up"),
		ScrollDown: binding(k.ScrollDown, "scroll down"),
	}
}

func binding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Interrupt, k.Quit, k.ScrollUp, k.ScrollDown}
}

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
