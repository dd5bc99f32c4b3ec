//go:build !windows

package config

const defaultShell = "/bin/sh"
