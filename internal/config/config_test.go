package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tu "demoshell/internal/testutil"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(strings.TrimLeft(body, "\n")), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEnsure_CreatesDefaultFile(t *testing.T) {
	home := tu.ConfigHome(t)

	path, created, err := Ensure("")
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
	if !created {
		t.Fatal("expected file to be created")
	}
	if !strings.HasPrefix(path, home) || filepath.Base(path) != "config.yaml" {
		t.Fatalf("unexpected default path %q (home %q)", path, home)
	}
	if _, created, err = Ensure(""); err != nil || created {
		t.Fatalf("second Ensure = %v, %v", created, err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Shell != Default().Shell {
		t.Fatalf("shell = %q", cfg.Shell)
	}
	if len(cfg.Aliases) != 0 {
		t.Fatalf("expected no aliases, got %v", cfg.Aliases)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	tu.ConfigHome(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(cfg.Keys.Interrupt) != 1 || cfg.Keys.Interrupt[0] != "ctrl+c" {
		t.Fatalf("interrupt keys = %v", cfg.Keys.Interrupt)
	}
	if cfg.Palette["stderr"].Foreground != "9" {
		t.Fatalf("stderr palette = %+v", cfg.Palette["stderr"])
	}
}

func TestLoad_AliasesAreLowerCased(t *testing.T) {
	tu.ConfigHome(t)
	path := writeConfig(t, `
shell: /bin/bash
aliases:
  LL: ls -la
  git.st: git status
  empty: ""
builtins:
  CLS: clear
palette:
  stdout:
    foreground: "#ffffff"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Shell != "/bin/bash" {
		t.Fatalf("shell = %q", cfg.Shell)
	}
	if cfg.Aliases["ll"] != "ls -la" {
		t.Fatalf("aliases = %v", cfg.Aliases)
	}
	if cfg.Aliases["git.st"] != "git status" {
		t.Fatalf("dotted alias lost: %v", cfg.Aliases)
	}
	if _, ok := cfg.Aliases["empty"]; ok {
		t.Fatal("empty alias target should be dropped")
	}
	if cfg.Builtins["cls"] != "clear" {
		t.Fatalf("builtins = %v", cfg.Builtins)
	}
	if got := cfg.Palette["stdout"]; got.Foreground != "#ffffff" || got.Background != "15" {
		t.Fatalf("stdout palette not merged with defaults: %+v", got)
	}
	if cfg.Palette["error"].Background != "0" {
		t.Fatalf("error palette default lost: %+v", cfg.Palette["error"])
	}
}

func TestLoad_EnvOverridesShell(t *testing.T) {
	tu.ConfigHome(t)
	defer tu.WithEnv(t, "DEMOSHELL_SHELL", "/usr/bin/zsh")()
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Shell != "/usr/bin/zsh" {
		t.Fatalf("shell = %q", cfg.Shell)
	}
}

func TestLoad_RejectsUnknownPaletteStyle(t *testing.T) {
	tu.ConfigHome(t)
	path := writeConfig(t, `
palette:
  banner:
    foreground: "1"
`)
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), "banner") {
		t.Fatalf("expected invalid palette error, got %v", err)
	}
}

func TestLoad_RejectsBadLogLevel(t *testing.T) {
	tu.ConfigHome(t)
	path := writeConfig(t, `
log:
  level: chatty
`)
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoad_RejectsUnknownBuiltinKind(t *testing.T) {
	tu.ConfigHome(t)
	path := writeConfig(t, `
builtins:
  bye: logout
`)
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), "logout") {
		t.Fatalf("expected invalid builtin error, got %v", err)
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	tu.ConfigHome(t)
	path := writeConfig(t, "aliases: [unterminated\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	tu.ConfigHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	c := Default()
	c.Aliases = map[string]string{" LL ": " ls -la "}
	if err := Save(path, c); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Aliases["ll"] != "ls -la" || len(got.Aliases) != 1 {
		t.Fatalf("aliases = %v", got.Aliases)
	}
}

func TestSchema_DescribesAliases(t *testing.T) {
	b, err := MarshalSchema(Schema())
	if err != nil {
		t.Fatalf("MarshalSchema error: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"aliases"`, `"palette"`, `"interrupt"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("schema missing %s:\n%s", want, s)
		}
	}
}
