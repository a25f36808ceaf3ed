package zaphandler

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlogwire/core"
)

// Handler forwards entries into a zap core. The entry channel becomes the
// zap logger name. Fatal and Panic entries are written at their level but
// never exit or panic: only the nlogwire logger decides that.
type Handler struct {
	core   zapcore.Core
	closer io.Closer
}

// New creates a handler writing through the core of l.
func New(l *zap.Logger) *Handler {
	return &Handler{core: l.Core()}
}

// NewFromCore creates a handler writing to c.
func NewFromCore(c zapcore.Core) *Handler {
	return &Handler{core: c}
}

// Handle converts the entry to a zap entry and writes it if the core is
// enabled for its level.
func (h *Handler) Handle(entry *core.Entry) error {
	ze := zapcore.Entry{
		Level:      zapLevel(entry.Level),
		Time:       entry.Time,
		LoggerName: entry.Channel,
		Message:    entry.Message,
	}
	if entry.Caller.Defined {
		ze.Caller = zapcore.EntryCaller{
			Defined:  true,
			File:     entry.Caller.File,
			Line:     entry.Caller.Line,
			Function: entry.Caller.Function,
		}
	}

	ce := h.core.Check(ze, nil)
	if ce == nil {
		return nil
	}

	fields := make([]zap.Field, 0, len(entry.Fields))
	for _, f := range entry.Fields {
		fields = append(fields, zapField(f))
	}
	ce.Write(fields...)
	return nil
}

// Close syncs the core and closes the output file opened by Build, if any.
func (h *Handler) Close() error {
	err := h.core.Sync()
	if h.closer != nil {
		if cerr := h.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.FatalLevel:
		return zapcore.FatalLevel
	case core.PanicLevel:
		return zapcore.PanicLevel
	default:
		return zapcore.InfoLevel
	}
}

func zapField(f core.Field) zap.Field {
	switch f.Type {
	case core.StringType:
		return zap.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return zap.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return zap.Duration(f.Key, time.Duration(f.Int64))
	case core.ErrorType:
		if err, ok := f.Error(); ok {
			return zap.NamedError(f.Key, err)
		}
		return zap.String(f.Key, f.Str)
	default:
		return zap.Any(f.Key, f.Any)
	}
}
