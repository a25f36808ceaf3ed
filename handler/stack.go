package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/nlogwire/core"
)

// Stack dispatches every entry to an ordered list of handlers.
// Handlers are called in the order given; a failing handler does not stop
// the others and all errors are combined.
type Stack struct {
	handlers []Handler
}

// NewStack creates a stack over the given handlers, first to last.
func NewStack(handlers ...Handler) *Stack {
	hs := make([]Handler, len(handlers))
	copy(hs, handlers)
	return &Stack{handlers: hs}
}

// Handle sends the entry to all handlers
func (s *Stack) Handle(entry *core.Entry) error {
	var err error
	for _, h := range s.handlers {
		err = multierr.Append(err, h.Handle(entry))
	}
	return err
}

// Handlers returns the handlers in dispatch order.
func (s *Stack) Handlers() []Handler {
	out := make([]Handler, len(s.handlers))
	copy(out, s.handlers)
	return out
}

// Len returns the number of handlers.
func (s *Stack) Len() int {
	return len(s.handlers)
}

// Close closes all handlers
func (s *Stack) Close() error {
	var err error
	for _, h := range s.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}
