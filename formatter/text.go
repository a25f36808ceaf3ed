package formatter

import (
	"io"
	"strconv"
	"time"

	"github.com/philipp01105/nlogwire/core"
)

// TextFormatter formats log entries as human-readable text:
//
//	2024-01-02T15:04:05Z [INFO] app: message key=value
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return encode(f.appendEntry, entry), nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return encodeTo(f.appendEntry, entry, w)
}

func (f *TextFormatter) appendEntry(dst []byte, entry *core.Entry) []byte {
	dst = entry.Time.AppendFormat(dst, f.TimestampFormat)

	dst = append(dst, " ["...)
	dst = append(dst, entry.Level.String()...)
	dst = append(dst, "] "...)

	if entry.Channel != "" {
		dst = append(dst, entry.Channel...)
		dst = append(dst, ": "...)
	}

	if f.IncludeCaller && entry.Caller.Defined {
		dst = append(dst, '[')
		dst = append(dst, entry.Caller.ShortFile...)
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, int64(entry.Caller.Line), 10)
		dst = append(dst, "] "...)
	}

	dst = append(dst, entry.Message...)

	for _, field := range entry.Fields {
		dst = append(dst, ' ')
		dst = append(dst, field.Key...)
		dst = append(dst, '=')
		dst = field.AppendValue(dst)
	}

	return append(dst, '\n')
}
