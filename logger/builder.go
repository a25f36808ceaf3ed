package logger

import (
	"slices"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/handler"
	"github.com/philipp01105/nlogwire/processor"
)

// DefaultName is the channel used when the builder is given no name.
const DefaultName = "app"

// frames between the user's call site and core.GetCaller: the level
// method and Logger.log.
const callerSkip = 3

// Builder collects the parts of a Logger. Handlers and processors are
// pushed onto stacks: the last one pushed is the first one called.
type Builder struct {
	name          string
	level         core.Level
	handlers      []handler.Handler
	processors    []processor.Processor
	fields        []core.Field
	includeCaller bool
}

// NewBuilder starts a logger for the named channel; an empty name becomes
// DefaultName. The level defaults to info.
func NewBuilder(name string) *Builder {
	if name == "" {
		name = DefaultName
	}
	return &Builder{name: name, level: core.InfoLevel}
}

// PushHandler puts h on top of the handler stack.
func (b *Builder) PushHandler(h handler.Handler) *Builder {
	b.handlers = slices.Insert(b.handlers, 0, h)
	return b
}

// PushProcessor puts p on top of the processor stack.
func (b *Builder) PushProcessor(p processor.Processor) *Builder {
	b.processors = slices.Insert(b.processors, 0, p)
	return b
}

func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds fields to every entry of the built logger.
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller records file and line of the call site on every entry.
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build snapshots the builder; later pushes do not affect the result.
func (b *Builder) Build() *Logger {
	return &Logger{
		name:          b.name,
		level:         b.level,
		handlers:      handler.NewStack(b.handlers...),
		processors:    slices.Clone(b.processors),
		fields:        slices.Clone(b.fields),
		includeCaller: b.includeCaller,
	}
}
