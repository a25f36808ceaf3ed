package config

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrLogDirUnresolved is returned when neither logDir nor appDir is configured.
	ErrLogDirUnresolved = errors.New("log directory cannot be resolved: set logDir or appDir")
	// ErrUnknownDirective is returned for a handler or processor type outside the known set.
	ErrUnknownDirective = errors.New("unknown directive type")
	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MissingLogDirectoryError reports a log directory that does not exist
// and could not be created.
type MissingLogDirectoryError struct {
	Dir string
	Err error
}

func (e *MissingLogDirectoryError) Error() string {
	return fmt.Sprintf("log directory %q is missing and cannot be created: %v", e.Dir, e.Err)
}

func (e *MissingLogDirectoryError) Unwrap() error {
	return e.Err
}
