// Package fallbackhandler provides the handler installed when a logger has
// no other handler configured, so that records are never silently dropped.
//
// Entries of the application channel go to one file per level
// (info.log, error.log, ...); entries whose channel was renamed by a
// processor (access, exception, ...) go to <channel>.log.
package fallbackhandler
