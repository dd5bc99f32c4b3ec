package system

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. CLI subcommands print to stderr;
// the console redirects it to a file while the TUI owns the terminal.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

// SetLevel parses and applies a level name such as "debug".
func SetLevel(name string) error {
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

// LogToFile points Logger at path, creating parent directories. Closing the
// result restores stderr.
func LogToFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	Logger.SetOutput(f)
	return restore{f}, nil
}

type restore struct{ f *os.File }

func (r restore) Close() error {
	Logger.SetOutput(os.Stderr)
	return r.f.Close()
}
