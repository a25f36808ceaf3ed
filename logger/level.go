package logger

import "github.com/philipp01105/nlogwire/core"

// Level is core.Level, re-exported so callers need a single import
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	PanicLevel = core.PanicLevel
)

// ParseLevel converts a level name to a Level; unknown names give InfoLevel.
// Use core.ParseLevel to detect unknown names.
func ParseLevel(s string) Level {
	l, _ := core.ParseLevel(s)
	return l
}
