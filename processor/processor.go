package processor

import (
	"github.com/philipp01105/nlogwire/core"
)

// Processor transforms an entry before it reaches the handlers.
type Processor interface {
	Process(entry *core.Entry)
}

// Func adapts a function to the Processor interface.
type Func func(entry *core.Entry)

// Process calls f(entry).
func (f Func) Process(entry *core.Entry) {
	f(entry)
}

// Field keys read or written by the built-in processors.
const (
	ChannelKey       = "channel"
	PriorityKey      = "priority"
	ExceptionKey     = "exception"
	ExceptionFileKey = "exception_file"
	ExceptionURLKey  = "exception_url"
)
