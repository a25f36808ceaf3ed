package handler

import "github.com/philipp01105/nlogwire/core"

// Handler is the sink end of a logger. Handle must not retain entry after
// it returns: the logger recycles it, so keep a Clone instead.
type Handler interface {
	Handle(entry *core.Entry) error
	Close() error
}

// StatsProvider is implemented by handlers that count what they deliver,
// drop or block on. wire collects these for the metrics collector.
type StatsProvider interface {
	Stats() Snapshot
}
