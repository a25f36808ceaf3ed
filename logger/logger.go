package logger

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/handler"
	"github.com/philipp01105/nlogwire/processor"
)

// replaced in tests
var osExit = os.Exit

// Logger is immutable once built and safe for concurrent use. Every entry
// starts on the logger's channel, runs through the processors and is then
// handed to each handler, top of the stack first.
type Logger struct {
	name          string
	level         core.Level
	handlers      *handler.Stack
	processors    []processor.Processor
	fields        []core.Field
	includeCaller bool
}

func (l *Logger) Name() string      { return l.name }
func (l *Logger) Level() core.Level { return l.level }

// Handlers returns the handlers in call order.
func (l *Logger) Handlers() []handler.Handler {
	return l.handlers.Handlers()
}

// Processors returns the processors in call order.
func (l *Logger) Processors() []processor.Processor {
	return slices.Clone(l.processors)
}

// With returns a copy of l that adds fields to every entry.
func (l *Logger) With(fields ...core.Field) *Logger {
	child := *l
	child.fields = append(slices.Clip(l.fields), fields...)
	return &child
}

// Log writes msg at an arbitrary level. Fatal and Panic levels are written
// without exiting or panicking.
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if level >= l.level {
		l.log(level, msg, fields)
	}
}

func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if l.handlers.Len() == 0 {
		return
	}

	entry := core.GetEntry()
	entry.Time = time.Now()
	entry.Level = level
	entry.Channel = l.name
	entry.Message = msg
	entry.Fields = append(append(entry.Fields, l.fields...), fields...)
	if l.includeCaller {
		entry.Caller = core.GetCaller(callerSkip)
	}

	for _, p := range l.processors {
		p.Process(entry)
	}
	// a log call has no way to report handler failures
	_ = l.handlers.Handle(entry)

	core.PutEntry(entry)
}

func (l *Logger) Debug(msg string, fields ...core.Field) {
	if l.level <= core.DebugLevel {
		l.log(core.DebugLevel, msg, fields)
	}
}

func (l *Logger) Info(msg string, fields ...core.Field) {
	if l.level <= core.InfoLevel {
		l.log(core.InfoLevel, msg, fields)
	}
}

func (l *Logger) Warn(msg string, fields ...core.Field) {
	if l.level <= core.WarnLevel {
		l.log(core.WarnLevel, msg, fields)
	}
}

func (l *Logger) Error(msg string, fields ...core.Field) {
	if l.level <= core.ErrorLevel {
		l.log(core.ErrorLevel, msg, fields)
	}
}

// Fatal writes msg, closes the handlers so queued entries are flushed and
// exits with status 1.
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	l.log(core.FatalLevel, msg, fields)
	_ = l.Close()
	osExit(1)
}

// Panic writes msg and panics with it.
func (l *Logger) Panic(msg string, fields ...core.Field) {
	l.log(core.PanicLevel, msg, fields)
	panic(msg)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.level <= core.DebugLevel {
		l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level <= core.InfoLevel {
		l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.level <= core.WarnLevel {
		l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.level <= core.ErrorLevel {
		l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Close closes every handler and returns their combined error.
func (l *Logger) Close() error {
	return l.handlers.Close()
}
