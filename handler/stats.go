package handler

import (
	"sync/atomic"

	"github.com/philipp01105/nlogwire/core"
)

// Dropped entries are bucketed by level; fatal and panic share the error bucket.
const (
	bucketDebug = iota
	bucketInfo
	bucketWarn
	bucketError
	bucketCount
)

var bucketLevels = [bucketCount]core.Level{core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel}

func bucketOf(level core.Level) int {
	switch {
	case level <= core.DebugLevel:
		return bucketDebug
	case level == core.InfoLevel:
		return bucketInfo
	case level == core.WarnLevel:
		return bucketWarn
	default:
		return bucketError
	}
}

// Stats holds the counters of one handler. The zero value is ready to use
// and safe for concurrent updates.
type Stats struct {
	dropped   [bucketCount]atomic.Uint64
	blocked   atomic.Uint64
	processed atomic.Uint64
}

// NewStats returns zeroed counters.
func NewStats() *Stats {
	return &Stats{}
}

// AddDropped counts one entry of the given level lost to overflow.
func (s *Stats) AddDropped(level core.Level) {
	s.dropped[bucketOf(level)].Add(1)
}

// AddBlocked counts one producer that had to wait for queue space.
func (s *Stats) AddBlocked() {
	s.blocked.Add(1)
}

// AddProcessed counts one entry written by the handler.
func (s *Stats) AddProcessed() {
	s.processed.Add(1)
}

// Dropped returns the dropped count for level. Levels above error report
// the shared error bucket only when asked for ErrorLevel itself.
func (s *Stats) Dropped(level core.Level) uint64 {
	if level < core.DebugLevel || level > core.ErrorLevel {
		return 0
	}
	return s.dropped[bucketOf(level)].Load()
}

// TotalDropped sums the dropped counters of all levels.
func (s *Stats) TotalDropped() uint64 {
	var n uint64
	for i := range s.dropped {
		n += s.dropped[i].Load()
	}
	return n
}

func (s *Stats) Blocked() uint64   { return s.blocked.Load() }
func (s *Stats) Processed() uint64 { return s.processed.Load() }

// Reset zeroes every counter.
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.blocked.Store(0)
	s.processed.Store(0)
}

// Snapshot is a point-in-time copy of a handler's counters.
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
}

// Snapshot copies the current counters.
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		DroppedTotal:   make(map[core.Level]uint64, bucketCount),
		BlockedTotal:   s.Blocked(),
		ProcessedTotal: s.Processed(),
	}
	for i, lvl := range bucketLevels {
		snap.DroppedTotal[lvl] = s.dropped[i].Load()
	}
	return snap
}

// TotalDropped sums DroppedTotal over all levels.
func (s Snapshot) TotalDropped() uint64 {
	var n uint64
	for _, v := range s.DroppedTotal {
		n += v
	}
	return n
}
