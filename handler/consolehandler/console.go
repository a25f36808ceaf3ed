package consolehandler

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/formatter"
	"github.com/philipp01105/nlogwire/handler"
)

// ConsoleConfig configures a console handler. Zero fields take defaults.
type ConsoleConfig struct {
	// Writer receives formatted lines (default os.Stdout). It is never closed.
	Writer io.Writer
	// Formatter renders entries (default text).
	Formatter formatter.Formatter

	// Async moves writes to a background goroutine behind a bounded queue.
	Async bool
	// BufferSize is the queue capacity (default 1000).
	BufferSize int
	// OverflowPolicy overrides handler.DefaultLevelPolicy per level.
	OverflowPolicy map[core.Level]handler.OverflowPolicy
	// BlockTimeout bounds how long Block waits for room (default 100ms).
	BlockTimeout time.Duration
	// DrainTimeout bounds Close while the queue drains (default 5s).
	DrainTimeout time.Duration
}

// Handler writes entries to an io.Writer, either inline or through a
// handler.Queue when configured as async.
type Handler struct {
	mu    sync.Mutex
	out   io.Writer
	enc   formatter.Formatter
	encTo formatter.WriterFormatter // nil when enc cannot stream
	stats handler.Stats
	queue *handler.Queue
}

// NewConsoleHandler builds a console handler. The result implements
// handler.StatsProvider.
func NewConsoleHandler(cfg ConsoleConfig) handler.Handler {
	h := &Handler{out: cfg.Writer, enc: cfg.Formatter}
	if h.out == nil {
		h.out = os.Stdout
	}
	if h.enc == nil {
		h.enc = formatter.NewTextFormatter(formatter.Config{})
	}
	h.encTo, _ = h.enc.(formatter.WriterFormatter)

	if cfg.Async {
		h.queue = handler.NewQueue(handler.QueueConfig{
			BufferSize:     cfg.BufferSize,
			OverflowPolicy: cfg.OverflowPolicy,
			BlockTimeout:   cfg.BlockTimeout,
			DrainTimeout:   cfg.DrainTimeout,
		}, &h.stats, h.write)
	}
	return h
}

// Handle writes the entry, or enqueues a copy of it in async mode.
func (h *Handler) Handle(entry *core.Entry) error {
	if h.queue != nil {
		return h.queue.Enqueue(entry)
	}
	return h.write(entry)
}

func (h *Handler) write(entry *core.Entry) error {
	var err error
	if h.encTo != nil {
		h.mu.Lock()
		err = h.encTo.FormatTo(entry, h.out)
		h.mu.Unlock()
	} else {
		var line []byte
		if line, err = h.enc.Format(entry); err != nil {
			return err
		}
		h.mu.Lock()
		_, err = h.out.Write(line)
		h.mu.Unlock()
	}
	if err != nil {
		return err
	}
	h.stats.AddProcessed()
	return nil
}

// Close drains the async queue, if any. Calling it twice is safe.
func (h *Handler) Close() error {
	if h.queue != nil {
		h.queue.Close()
	}
	return nil
}

// Stats reports the handler counters.
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.Snapshot()
}
