package config

import (
	"os"
	"path/filepath"
)

// ResolveLogDir returns LogDir when set and "<appDir>/../log" otherwise.
func (c *Config) ResolveLogDir() (string, error) {
	switch {
	case c.LogDir != "":
		return filepath.Clean(c.LogDir), nil
	case c.AppDir != "":
		return filepath.Join(c.AppDir, "..", "log"), nil
	default:
		return "", ErrLogDirUnresolved
	}
}

// EnsureLogDir creates dir when it does not exist yet.
func EnsureLogDir(dir string) error {
	if info, err := os.Stat(dir); err == nil {
		if info.IsDir() {
			return nil
		}
		return &MissingLogDirectoryError{Dir: dir, Err: os.ErrExist}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &MissingLogDirectoryError{Dir: dir, Err: err}
	}
	return nil
}
