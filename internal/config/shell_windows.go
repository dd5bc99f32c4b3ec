//go:build windows

package config

const defaultShell = "cmd.exe"
