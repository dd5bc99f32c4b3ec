package config

import (
	"errors"
	"fmt"
	"strings"

	clog "github.com/charmbracelet/log"

	"demoshell/internal/scrollback"
)

// ErrInvalid marks a config value that failed validation.
var ErrInvalid = errors.New("invalid config")

// Config is the persisted per-user configuration.
type Config struct {
	// Shell interprets every command line.
	Shell string `mapstructure:"shell" yaml:"shell" json:"shell" jsonschema:"description=Interpreter used to run command lines"`
	// ShellArgs precede the command line; defaults to -c.
	ShellArgs []string `mapstructure:"shell_args" yaml:"shell_args,omitempty" json:"shell_args,omitempty"`
	// Aliases replace a whole submitted line with another.
	Aliases map[string]string `mapstructure:"aliases" yaml:"aliases" json:"aliases"`
	// Builtins maps extra names onto builtin kinds (exit, clear).
	Builtins map[string]string `mapstructure:"builtins" yaml:"builtins,omitempty" json:"builtins,omitempty"`
	// Palette colors each scrollback style.
	Palette map[string]Colors `mapstructure:"palette" yaml:"palette" json:"palette"`
	Keys    Keys              `mapstructure:"keys" yaml:"keys" json:"keys"`
	Log     Log               `mapstructure:"log" yaml:"log" json:"log"`
}

// Colors are lipgloss color strings: ANSI indexes ("9") or hex ("#cb7676").
type Colors struct {
	Foreground string `mapstructure:"foreground" yaml:"foreground" json:"foreground"`
	Background string `mapstructure:"background" yaml:"background" json:"background"`
	Bold       bool   `mapstructure:"bold" yaml:"bold,omitempty" json:"bold,omitempty"`
}

// Keys lists the key names bound to each console action.
type Keys struct {
	Submit     []string `mapstructure:"submit" yaml:"submit" json:"submit"`
	Interrupt  []string `mapstructure:"interrupt" yaml:"interrupt" json:"interrupt"`
	Quit       []string `mapstructure:"quit" yaml:"quit" json:"quit"`
	ScrollUp   []string `mapstructure:"scroll_up" yaml:"scroll_up" json:"scroll_up"`
	ScrollDown []string `mapstructure:"scroll_down" yaml:"scroll_down" json:"scroll_down"`
}

// Log configures the TUI log file.
type Log struct {
	Level string `mapstructure:"level" yaml:"level" json:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	// File defaults to demoshell.log next to the config file.
	File string `mapstructure:"file" yaml:"file,omitempty" json:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Shell:    defaultShell,
		Aliases:  map[string]string{},
		Builtins: map[string]string{},
		Palette: map[string]Colors{
			scrollback.Spacer.String():  {Foreground: "15", Background: "15"},
			scrollback.Stdout.String():  {Foreground: "0", Background: "15"},
			scrollback.Stderr.String():  {Foreground: "9", Background: "15"},
			scrollback.Command.String(): {Foreground: "0", Background: "7"},
			scrollback.Error.String():   {Foreground: "9", Background: "0"},
		},
		Keys: Keys{
			Submit:     []string{"enter"},
			Interrupt:  []string{"ctrl+c"},
			Quit:       []string{"ctrl+d"},
			ScrollUp:   []string{"pgup"},
			ScrollDown: []string{"pgdown"},
		},
		Log: Log{Level: "info"},
	}
}

// NormalizeKey lower-cases and trims a map key the way the loader does.
func NormalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// Validate checks values the loader cannot type-check.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Shell) == "" {
		return fmt.Errorf("%w: shell is empty", ErrInvalid)
	}
	for name := range c.Palette {
		if _, ok := scrollback.ParseStyle(name); !ok {
			return fmt.Errorf("%w: palette: unknown style %q", ErrInvalid, name)
		}
	}
	for name, kind := range c.Builtins {
		switch NormalizeKey(kind) {
		case "exit", "clear":
		default:
			return fmt.Errorf("%w: builtins.%s: unknown kind %q", ErrInvalid, name, kind)
		}
	}
	if _, err := clog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	for action, keys := range map[string][]string{
		"submit":    c.Keys.Submit,
		"interrupt": c.Keys.Interrupt,
		"quit":      c.Keys.Quit,
	} {
		if len(keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalid, action)
		}
	}
	return nil
}
