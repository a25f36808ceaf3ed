package handler

import "github.com/philipp01105/nlogwire/core"

// Null discards every entry and only counts it.
type Null struct {
	stats Stats
}

// NewNull creates a discarding handler.
func NewNull() *Null {
	return &Null{}
}

// Handle counts the entry and drops it
func (n *Null) Handle(*core.Entry) error {
	n.stats.AddProcessed()
	return nil
}

// Close is a no-op
func (n *Null) Close() error { return nil }

// Stats returns a snapshot of the handler counters
func (n *Null) Stats() Snapshot {
	return n.stats.Snapshot()
}
