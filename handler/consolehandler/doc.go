// Package consolehandler writes formatted entries to an io.Writer, stdout
// unless configured otherwise.
//
// A handler is synchronous by default: Handle formats and writes under a
// mutex before it returns. With ConsoleConfig.Async set, Handle copies the
// entry into a handler.Queue drained by one goroutine, and a full queue is
// resolved per level by handler.OverflowPolicy.
//
// The writer belongs to the caller and is never closed.
package consolehandler
