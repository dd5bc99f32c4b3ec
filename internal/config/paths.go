package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	appName  = "demoshell"
	fileName = "config.yaml"
	logName  = "demoshell.log"
)

// Dir returns the demoshell config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/demoshell; on macOS
// to ~/Library/Application Support/demoshell; and on Windows to %AppData%/demoshell.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, appName), nil
}

// DefaultPath returns the config file path inside Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// DefaultLogPath returns the TUI log file path inside Dir.
func DefaultLogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logName), nil
}

// resolve turns an empty path into DefaultPath.
func resolve(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return path, nil
	}
	return DefaultPath()
}
