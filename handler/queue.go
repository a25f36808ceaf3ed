package handler

import (
	"sync"
	"time"

	"github.com/philipp01105/nlogwire/core"
)

// QueueConfig configures an async Queue.
type QueueConfig struct {
	// BufferSize is the size of the queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for the Block policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

func (c *QueueConfig) applyDefaults() {
	if c.BufferSize <= 0 {
		c.BufferSize = 1000
	}
	if c.OverflowPolicy == nil {
		c.OverflowPolicy = DefaultLevelPolicy()
	}
	if c.BlockTimeout == 0 {
		c.BlockTimeout = 100 * time.Millisecond
	}
	if c.DrainTimeout == 0 {
		c.DrainTimeout = 5 * time.Second
	}
}

// Queue decouples callers from a slow write function. Entries are cloned on
// Enqueue and written by a single background goroutine.
type Queue struct {
	ch             chan *core.Entry
	write          func(*core.Entry) error
	overflowPolicy map[core.Level]OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	stats          *Stats
	closed         chan struct{}
	closeOnce      sync.Once
	wg             sync.WaitGroup
}

// NewQueue starts the background writer. write is only ever called from one
// goroutine at a time by the queue itself, but the overflow fallbacks also
// call it from the caller's goroutine, so it must be safe for concurrent use.
func NewQueue(cfg QueueConfig, stats *Stats, write func(*core.Entry) error) *Queue {
	cfg.applyDefaults()
	q := &Queue{
		ch:             make(chan *core.Entry, cfg.BufferSize),
		write:          write,
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		stats:          stats,
		closed:         make(chan struct{}),
	}
	q.wg.Add(1)
	go q.process()
	return q
}

// Enqueue hands a copy of entry to the background writer, applying the
// overflow policy of its level when the queue is full.
func (q *Queue) Enqueue(entry *core.Entry) error {
	select {
	case <-q.closed:
		// Handler is closing, write synchronously
		return q.write(entry)
	default:
	}

	e := entry.Clone()

	policy, ok := q.overflowPolicy[e.Level]
	if !ok {
		policy = DropNewest
	}

	switch policy {
	case Block:
		select {
		case q.ch <- e:
			return nil
		default:
		}
		timer := time.NewTimer(q.blockTimeout)
		defer timer.Stop()
		select {
		case q.ch <- e:
			return nil
		case <-timer.C:
			// Timeout - fall back to synchronous write
			q.stats.AddBlocked()
			return q.writeAndRecycle(e)
		case <-q.closed:
			return q.writeAndRecycle(e)
		}

	case DropOldest:
		select {
		case q.ch <- e:
			return nil
		default:
		}
		select {
		case old := <-q.ch:
			q.stats.AddDropped(old.Level)
			core.PutEntry(old)
		default:
		}
		select {
		case q.ch <- e:
			return nil
		default:
			q.stats.AddDropped(e.Level)
			core.PutEntry(e)
			return nil
		}

	default:
		select {
		case q.ch <- e:
			return nil
		default:
			q.stats.AddDropped(e.Level)
			core.PutEntry(e)
			return nil
		}
	}
}

func (q *Queue) writeAndRecycle(e *core.Entry) error {
	err := q.write(e)
	core.PutEntry(e)
	return err
}

func (q *Queue) process() {
	defer q.wg.Done()

	for {
		select {
		case e := <-q.ch:
			// Write errors have no caller to go back to; the entry is lost
			_ = q.writeAndRecycle(e)
		case <-q.closed:
			deadline := time.After(q.drainTimeout)
			for {
				select {
				case e := <-q.ch:
					_ = q.writeAndRecycle(e)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// Close stops the background writer after draining the queue, bounded by
// the drain timeout. It is safe to call more than once.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.closed)
		q.wg.Wait()
	})
}
