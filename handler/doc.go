// Package handler provides the Handler interface and the shared building
// blocks used by the concrete handlers in its sub-packages.
//
// A Handler receives fully processed entries from the logger. The logger
// owns each entry and recycles it when Handle returns, so handlers that
// defer work (the async console and file handlers) enqueue a Clone.
//
// When an async queue is full, handlers apply a per-level OverflowPolicy:
// DropNewest (default for Debug/Info/Warn), DropOldest, or Block with a
// configurable timeout (default for Error and above). Dropped, blocked and
// processed counts are tracked by Stats and exposed through StatsProvider.
//
// Stack fans one entry out to an ordered list of handlers and is what the
// logger dispatches to. WithMinLevel drops entries below a threshold in
// front of a single handler. Queue is the bounded async buffer shared by
// the console and file handlers, and Null discards everything it is given.
//
// Concrete handlers:
//
//   - consolehandler writes to any io.Writer (default: stdout).
//   - filehandler writes to a file with rotation by size, age or interval.
//   - fallbackhandler splits entries into <level>.log / <channel>.log files.
//   - zaphandler forwards entries into a zap core.
//   - sloghandler exposes a logger as a log/slog.Handler.
package handler
