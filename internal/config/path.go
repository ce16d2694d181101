// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DefaultDataFile returns the default database location for the given
// storage driver, under ~/.local/share/dispensa.
func DefaultDataFile(driver string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	name := "stock.bolt"
	if driver == "sqlite" {
		name = "stock.db"
	}
	return filepath.Join(home, ".local", "share", "dispensa", name)
}
