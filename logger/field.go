package logger

import (
	"time"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/processor"
)

func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

func Bool(key string, val bool) core.Field {
	f := core.Field{Key: key, Type: core.BoolType}
	if val {
		f.Int64 = 1
	}
	return f
}

// Time stores t as Unix nanoseconds; formatters render it in UTC.
func Time(key string, t time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: t.UnixNano()}
}

func Duration(key string, d time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(d)}
}

// Any defers rendering to the formatter: JSON output marshals the value,
// text output prints it with %v.
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}

// Err attaches err under "error". It is rendered only; use Exception to
// have the exception processor write a report.
func Err(err error) core.Field {
	return NamedErr("error", err)
}

// NamedErr attaches err under key and keeps the error value in the field.
// A nil error yields an empty message.
func NamedErr(key string, err error) core.Field {
	f := core.Field{Key: key, Type: core.ErrorType}
	if err != nil {
		f.Str, f.Any = err.Error(), err
	}
	return f
}

// Exception attaches err under processor.ExceptionKey so the exception
// processor writes a report for it.
func Exception(err error) core.Field {
	return NamedErr(processor.ExceptionKey, err)
}

// Channel moves the entry to another channel once the priority processor
// has run.
func Channel(name string) core.Field {
	return String(processor.ChannelKey, name)
}
