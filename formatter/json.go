package formatter

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/philipp01105/nlogwire/core"
)

// JSONFormatter formats log entries as one JSON object per line. Keys are
// written in a fixed order: time, level, channel, message, caller, then
// the entry fields in order.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	return encode(f.appendEntry, entry), nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return encodeTo(f.appendEntry, entry, w)
}

func (f *JSONFormatter) appendEntry(dst []byte, entry *core.Entry) []byte {
	dst = append(dst, `{"time":"`...)
	dst = entry.Time.AppendFormat(dst, f.TimestampFormat)
	dst = append(dst, `","level":"`...)
	dst = append(dst, entry.Level.String()...)
	dst = append(dst, '"')

	if entry.Channel != "" {
		dst = appendKey(dst, "channel")
		dst = appendQuoted(dst, entry.Channel)
	}

	dst = appendKey(dst, "message")
	dst = appendQuoted(dst, entry.Message)

	if f.IncludeCaller && entry.Caller.Defined {
		dst = appendKey(dst, "caller")
		dst = append(dst, `{"file":`...)
		dst = appendQuoted(dst, entry.Caller.ShortFile)
		dst = append(dst, `,"line":`...)
		dst = strconv.AppendInt(dst, int64(entry.Caller.Line), 10)
		if entry.Caller.Function != "" {
			dst = append(dst, `,"function":`...)
			dst = appendQuoted(dst, entry.Caller.Function)
		}
		dst = append(dst, '}')
	}

	for _, field := range entry.Fields {
		dst = appendKey(dst, field.Key)
		dst = appendValue(dst, field)
	}

	return append(dst, "}\n"...)
}

// appendKey writes `,"key":`
func appendKey(dst []byte, key string) []byte {
	dst = append(dst, ',')
	dst = appendQuoted(dst, key)
	return append(dst, ':')
}

const hex = "0123456789abcdef"

// appendQuoted writes s as a JSON string. Invalid UTF-8 becomes U+FFFD.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch c {
			case '"', '\\':
				dst = append(dst, '\\', c)
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, "\ufffd"...)
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

func appendValue(dst []byte, field core.Field) []byte {
	switch field.Type {
	case core.StringType, core.ErrorType:
		return appendQuoted(dst, field.Str)
	case core.IntType, core.Int64Type, core.DurationType:
		return strconv.AppendInt(dst, field.Int64, 10)
	case core.Float64Type:
		if math.IsNaN(field.Float64) || math.IsInf(field.Float64, 0) {
			return appendQuoted(dst, strconv.FormatFloat(field.Float64, 'f', -1, 64))
		}
		return strconv.AppendFloat(dst, field.Float64, 'f', -1, 64)
	case core.BoolType:
		return strconv.AppendBool(dst, field.Int64 == 1)
	case core.TimeType:
		dst = append(dst, '"')
		dst = time.Unix(0, field.Int64).UTC().AppendFormat(dst, time.RFC3339Nano)
		return append(dst, '"')
	case core.AnyType:
		// values with a JSON form keep it, everything else is printed with %v
		if raw, err := json.Marshal(field.Any); err == nil {
			return append(dst, raw...)
		}
		return appendQuoted(dst, field.StringValue())
	default:
		return appendQuoted(dst, field.StringValue())
	}
}
