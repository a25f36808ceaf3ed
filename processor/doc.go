// Package processor provides the transformations applied to an entry
// before it reaches the handlers.
//
// Built-in processors cooperate through well-known field keys:
// PriorityProcessor consumes "channel" and "priority", ExceptionProcessor
// reads "exception" and adds "exception_file", URLProcessor reads
// "exception_file" and adds "exception_url". The logger runs processors
// from the most recently pushed to the first one, so the exception
// processor must be pushed after the URL processor.
package processor
