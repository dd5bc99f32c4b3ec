package testutil

import (
	"os"
	"testing"
)

// WithEnv sets env var to val for the duration of the test scope.
// An empty val unsets it. Returns a cleanup func restoring the previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// ConfigHome points the user config directory at a fresh temp dir, clears
// DEMOSHELL_* overrides the loader would pick up, and returns the dir.
// Everything is restored when the test ends.
func ConfigHome(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	for key, val := range map[string]string{
		"XDG_CONFIG_HOME": tmp,
		"HOME":            tmp,
		"AppData":         tmp,
		"DEMOSHELL_SHELL": "",
	} {
		t.Cleanup(WithEnv(t, key, val))
	}
	return tmp
}
