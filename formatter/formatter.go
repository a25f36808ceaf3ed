package formatter

import (
	"io"
	"sync"

	"github.com/philipp01105/nlogwire/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is implemented by formatters that can write an entry
// straight to a writer from a pooled buffer.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time format (empty for the formatter default)
	TimestampFormat string
}

// New returns the formatter registered under name ("text" or "json").
// An empty name selects the text formatter.
func New(name string, cfg Config) (Formatter, bool) {
	switch name {
	case "", "text":
		return NewTextFormatter(cfg), true
	case "json":
		return NewJSONFormatter(cfg), true
	default:
		return nil, false
	}
}

// appendFunc appends one encoded entry to dst
type appendFunc func(dst []byte, entry *core.Entry) []byte

const maxPooledLine = 64 * 1024

type line struct {
	b []byte
}

var linePool = sync.Pool{
	New: func() any {
		return &line{b: make([]byte, 0, 256)}
	},
}

// encode returns a freshly allocated copy of the encoded entry
func encode(fn appendFunc, entry *core.Entry) []byte {
	l := linePool.Get().(*line)
	l.b = fn(l.b[:0], entry)
	out := make([]byte, len(l.b))
	copy(out, l.b)
	release(l)
	return out
}

// encodeTo writes the encoded entry to w without keeping a copy
func encodeTo(fn appendFunc, entry *core.Entry, w io.Writer) error {
	l := linePool.Get().(*line)
	l.b = fn(l.b[:0], entry)
	_, err := w.Write(l.b)
	release(l)
	return err
}

func release(l *line) {
	if cap(l.b) > maxPooledLine {
		return
	}
	linePool.Put(l)
}
