package handler

import (
	"github.com/philipp01105/nlogwire/core"
)

type levelFilter struct {
	Handler
	min core.Level
}

// WithMinLevel wraps h so that entries below min are dropped before they
// reach it. Stats are still reported when h provides them.
func WithMinLevel(h Handler, min core.Level) Handler {
	if min <= core.DebugLevel {
		return h
	}
	return &levelFilter{Handler: h, min: min}
}

func (f *levelFilter) Handle(entry *core.Entry) error {
	if entry.Level < f.min {
		return nil
	}
	return f.Handler.Handle(entry)
}

// Stats forwards to the wrapped handler, or returns an empty snapshot.
func (f *levelFilter) Stats() Snapshot {
	if sp, ok := f.Handler.(StatsProvider); ok {
		return sp.Stats()
	}
	return Snapshot{DroppedTotal: map[core.Level]uint64{}}
}

// Unwrap returns the filtered handler.
func (f *levelFilter) Unwrap() Handler {
	return f.Handler
}
