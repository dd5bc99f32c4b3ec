package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"demoshell/internal/alias"
	"demoshell/internal/config"
	"demoshell/internal/process"
	"demoshell/internal/shell"
	"demoshell/internal/system"
	"demoshell/internal/ui"
	appver "demoshell/internal/version"
)

// Options are the command-line overrides for Start.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// Shell overrides the configured interpreter.
	Shell string
}

// Start loads configuration, builds the console and runs it until the user
// exits. A config file that cannot be read or created is fatal.
func Start(opts Options) error {
	path, _, err := config.Ensure(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if opts.Shell != "" {
		cfg.Shell = opts.Shell
	}

	logPath := cfg.Log.File
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			return err
		}
	}
	closer, err := system.LogToFile(logPath)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	if err := system.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	m, ctl, err := build(cfg)
	if err != nil {
		return err
	}
	system.Logger.Info("console starting", "config", path, "shell", cfg.Shell, "aliases", len(cfg.Aliases))
	_, runErr := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	// A crash or kill of the program skips the quit path; stop jobs anyway.
	ctl.Shutdown()
	if runErr != nil {
		system.Logger.Error("console stopped", "err", runErr)
		return runErr
	}
	system.Logger.Info("console stopped")
	return nil
}

// build wires the controller and the console model from cfg.
func build(cfg config.Config) (tea.Model, *shell.Controller, error) {
	builtins := shell.DefaultBuiltins()
	if err := builtins.RegisterNames(cfg.Builtins); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	aliases := alias.New(cfg.Aliases)
	wd, _ := os.Getwd()

	ctl := shell.New(shell.Options{
		Aliases:  aliases,
		Builtins: builtins,
		Spawner:  shell.LauncherSpawner(process.Launcher{Shell: cfg.Shell, Args: cfg.ShellArgs, Dir: wd}),
		Logger:   system.Logger,
	})
	suggestions := append(aliases.Names(), builtins.Names()...)
	m := ui.New(ui.Options{
		Controller:  ctl,
		Keys:        ui.KeyMapFromConfig(cfg.Keys),
		Palette:     ui.PaletteFromConfig(cfg.Palette),
		Suggestions: suggestions,
		Version:     appver.AppVersion,
		Cwd:         wd,
	})
	return m, ctl, nil
}
