package filehandler

import (
	"bufio"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/formatter"
	"github.com/philipp01105/nlogwire/handler"
)

const writeBufferSize = 4 << 10

// FileConfig configures a file handler. Zero fields take defaults.
type FileConfig struct {
	// Filename is the active log file. Its directory must exist.
	Filename string
	// Formatter renders entries (default text).
	Formatter formatter.Formatter

	// MaxSize rotates once the file reaches this many bytes.
	MaxSize int64
	// MaxAge rotates once the file is older than this.
	MaxAge time.Duration
	// RotateInterval rotates on a fixed period.
	RotateInterval time.Duration
	// MaxBackups caps the rotated files kept on disk; 0 keeps all.
	MaxBackups int

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

// Handler appends formatted entries to a buffered file and rotates it
// according to its rotation settings.
type Handler struct {
	enc   formatter.Formatter
	stats handler.Stats
	queue *handler.Queue

	mu     sync.Mutex
	file   *os.File
	buf    *bufio.Writer
	rot    rotation
	closed bool
}

// NewFileHandler opens (or creates) cfg.Filename for appending. The result
// implements handler.StatsProvider.
func NewFileHandler(cfg FileConfig) (handler.Handler, error) {
	if cfg.Filename == "" {
		return nil, ErrNoFilename
	}

	file, err := openLogFile(cfg.Filename)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	h := &Handler{
		enc:  cfg.Formatter,
		file: file,
		buf:  bufio.NewWriterSize(file, writeBufferSize),
		rot: rotation{
			path:       cfg.Filename,
			maxSize:    cfg.MaxSize,
			maxAge:     cfg.MaxAge,
			interval:   cfg.RotateInterval,
			maxBackups: cfg.MaxBackups,
			size:       info.Size(),
			since:      time.Now(),
		},
	}
	if h.enc == nil {
		h.enc = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Async {
		h.queue = handler.NewQueue(handler.QueueConfig{
			BufferSize:     cfg.BufferSize,
			OverflowPolicy: cfg.OverflowPolicy,
			BlockTimeout:   cfg.BlockTimeout,
			DrainTimeout:   cfg.DrainTimeout,
		}, &h.stats, h.write)
	}
	return h, nil
}

func openLogFile(name string) (*os.File, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Handle writes the entry into the file buffer, or enqueues a copy of it in
// async mode. Data reaches the disk on Flush, rotation or Close.
func (h *Handler) Handle(entry *core.Entry) error {
	if h.queue != nil {
		return h.queue.Enqueue(entry)
	}
	return h.write(entry)
}

func (h *Handler) write(entry *core.Entry) error {
	line, err := h.enc.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	if h.rot.due(time.Now()) {
		if err := h.rotate(); err != nil {
			return err
		}
	}

	n, err := h.buf.Write(line)
	h.rot.size += int64(n)
	if err != nil {
		return err
	}
	h.stats.AddProcessed()
	return nil
}

// Flush pushes buffered lines to the file.
func (h *Handler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	return h.buf.Flush()
}

// Filename returns the path of the active log file.
func (h *Handler) Filename() string {
	return h.rot.path
}

// Stats reports the handler counters.
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.Snapshot()
}

// Close drains the async queue, if any, then flushes, syncs and closes the
// file. Later calls return nil.
func (h *Handler) Close() error {
	if h.queue != nil {
		h.queue.Close()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	return h.release()
}

// release flushes and closes the current file. Callers hold mu.
func (h *Handler) release() error {
	err := h.buf.Flush()
	if err == nil {
		err = h.file.Sync()
	}
	if cerr := h.file.Close(); err == nil {
		err = cerr
	}
	return err
}
