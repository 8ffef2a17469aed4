// Package config locates and bootstraps the dbexport configuration
// directory, used for per-user state such as the python client
// virtualenv.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir returns the dbexport configuration directory for the current user.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, "dbexport"), nil
}

// EnsureDir creates the configuration directory if it does not exist and
// returns its path.
func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create config directory: %w", err)
	}
	return dir, nil
}
