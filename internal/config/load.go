package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// keyDelim replaces viper's "." so alias names like "git.st" stay flat.
const keyDelim = "::"

// Load reads the config at path (DefaultPath when empty) over the built-in
// defaults. A missing file is not an error. DEMOSHELL_* environment
// variables override scalar settings, e.g. DEMOSHELL_SHELL.
func Load(path string) (Config, error) {
	path, err := resolve(path)
	if err != nil {
		return Config{}, err
	}
	def := Default()

	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelim))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("DEMOSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelim, "_"))
	v.AutomaticEnv()

	v.SetDefault("shell", def.Shell)
	for name, c := range def.Palette {
		v.SetDefault("palette"+keyDelim+name+keyDelim+"foreground", c.Foreground)
		v.SetDefault("palette"+keyDelim+name+keyDelim+"background", c.Background)
		v.SetDefault("palette"+keyDelim+name+keyDelim+"bold", c.Bold)
	}
	v.SetDefault("keys"+keyDelim+"submit", def.Keys.Submit)
	v.SetDefault("keys"+keyDelim+"interrupt", def.Keys.Interrupt)
	v.SetDefault("keys"+keyDelim+"quit", def.Keys.Quit)
	v.SetDefault("keys"+keyDelim+"scroll_up", def.Keys.ScrollUp)
	v.SetDefault("keys"+keyDelim+"scroll_down", def.Keys.ScrollDown)
	v.SetDefault("log"+keyDelim+"level", def.Log.Level)
	v.SetDefault("log"+keyDelim+"file", def.Log.File)

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.Aliases = normalizeMap(cfg.Aliases)
	cfg.Builtins = normalizeMap(cfg.Builtins)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Ensure creates the config file with defaults when it does not exist.
// It returns the resolved path and whether the file was created.
func Ensure(path string) (string, bool, error) {
	path, err := resolve(path)
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", false, err
	}
	if err := Save(path, Default()); err != nil {
		return "", false, err
	}
	return path, true, nil
}

// Save writes c as YAML, creating parent directories.
func Save(path string, c Config) error {
	path, err := resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	c.Aliases = normalizeMap(c.Aliases)
	c.Builtins = normalizeMap(c.Builtins)
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

func normalizeMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		k = NormalizeKey(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}
