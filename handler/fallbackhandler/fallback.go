package fallbackhandler

import (
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/formatter"
	"github.com/philipp01105/nlogwire/handler"
	"github.com/philipp01105/nlogwire/handler/filehandler"
)

// Config holds configuration for the fallback handler
type Config struct {
	// AppName is the channel whose entries are split by level
	AppName string
	// Dir is the log directory; it must exist
	Dir string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// Handler writes entries of the application channel to <dir>/<level>.log
// and entries of any other channel to <dir>/<channel>.log. Each entry is
// flushed before Handle returns.
type Handler struct {
	appName   string
	dir       string
	formatter formatter.Formatter

	mu     sync.Mutex
	files  map[string]handler.Handler
	order  []string
	closed bool
}

// New creates a fallback handler. Files are opened on first use.
func New(cfg Config) *Handler {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return &Handler{
		appName:   cfg.AppName,
		dir:       cfg.Dir,
		formatter: cfg.Formatter,
		files:     make(map[string]handler.Handler),
	}
}

// FileName returns the base name (without .log) the entry is written to.
func (h *Handler) FileName(entry *core.Entry) string {
	if entry.Channel == "" || entry.Channel == h.appName {
		return strings.ToLower(entry.Level.String())
	}
	return sanitize(entry.Channel)
}

// Handle writes the entry to its file.
func (h *Handler) Handle(entry *core.Entry) error {
	name := h.FileName(entry)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return filehandler.ErrClosed
	}

	fh, ok := h.files[name]
	if !ok {
		var err error
		fh, err = filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:  filepath.Join(h.dir, name+".log"),
			Formatter: h.formatter,
		})
		if err != nil {
			return err
		}
		h.files[name] = fh
		h.order = append(h.order, name)
	}

	if err := fh.Handle(entry); err != nil {
		return err
	}
	if f, ok := fh.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Stats sums the statistics of all open files.
func (h *Handler) Stats() handler.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	total := handler.Snapshot{DroppedTotal: map[core.Level]uint64{}}
	for _, fh := range h.files {
		sp, ok := fh.(handler.StatsProvider)
		if !ok {
			continue
		}
		s := sp.Stats()
		total.ProcessedTotal += s.ProcessedTotal
		total.BlockedTotal += s.BlockedTotal
		for lvl, n := range s.DroppedTotal {
			total.DroppedTotal[lvl] += n
		}
	}
	return total
}

// Close closes every opened file.
func (h *Handler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	var err error
	for _, name := range h.order {
		err = multierr.Append(err, h.files[name].Close())
	}
	return err
}

// sanitize keeps channel names from escaping the log directory.
func sanitize(channel string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(channel) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
