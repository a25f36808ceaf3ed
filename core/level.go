package core

import (
	"errors"
	"strings"
)

// Level represents the severity level of a log entry
type Level int8

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	// FatalLevel entries are followed by os.Exit(1) in the logger
	FatalLevel
	// PanicLevel entries are followed by a panic in the logger
	PanicLevel
)

var levelNames = [...]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
	PanicLevel: "PANIC",
}

// ErrUnknownLevel is returned by ParseLevel for names outside the known set.
var ErrUnknownLevel = errors.New("unknown level")

// String returns the upper-case level name, or UNKNOWN.
func (l Level) String() string {
	if l < DebugLevel || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel converts a case-insensitive name to a Level.
// WARNING is accepted as an alias of WARN.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(s)
	if name == "WARNING" {
		return WarnLevel, nil
	}
	for l, n := range levelNames {
		if n == name {
			return Level(l), nil
		}
	}
	return InfoLevel, ErrUnknownLevel
}

// IsLevelName reports whether s names one of the known levels.
func IsLevelName(s string) bool {
	_, err := ParseLevel(s)
	return err == nil
}
