package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/logger"
)

// Handler implements slog.Handler on top of an assembled Logger.
// Records pass through the logger's processors and handlers like any
// other entry, on the logger's channel.
type Handler struct {
	log   *logger.Logger
	attrs []core.Field
	group string
}

// New returns a slog.Handler writing into log.
func New(log *logger.Logger) *Handler {
	return &Handler{log: log}
}

// Enabled reports whether the logger accepts records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return levelToCore(level) >= h.log.Level()
}

// Handle converts the record into fields and logs it.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, 0, len(h.attrs)+record.NumAttrs())
	fields = append(fields, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, h.group, a)
		return true
	})

	h.log.Log(levelToCore(record.Level), record.Message, fields...)
	return nil
}

// WithAttrs returns a Handler carrying additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	return &Handler{log: h.log, attrs: newAttrs, group: h.group}
}

// WithGroup returns a Handler that prefixes keys with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{log: h.log, attrs: h.attrs, group: join(h.group, name)}
}

func levelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

func join(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// appendAttr flattens a into fields, group members become dotted keys.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := join(group, a.Key)

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: int64(a.Value.Uint64())})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		return append(fields, logger.Bool(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, logger.Time(key, a.Value.Time()))
	case slog.KindDuration:
		return append(fields, logger.Duration(key, a.Value.Duration()))
	case slog.KindGroup:
		// inline groups (empty key) keep the current prefix
		prefix := group
		if a.Key != "" {
			prefix = key
		}
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, prefix, ga)
		}
		return fields
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(fields, logger.NamedErr(key, err))
		}
		return append(fields, logger.Any(key, a.Value.Any()))
	}
}
