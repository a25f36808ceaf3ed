// Package filehandler appends formatted entries to a log file and rotates
// it by size, age or a fixed interval.
//
// A rotated file is renamed to "<filename>.<timestamp>"; when MaxBackups is
// set the oldest backups beyond it are removed. The handler never creates
// directories, so the log directory has to exist before construction.
//
// With FileConfig.Async set, Handle copies each entry into a handler.Queue
// drained by one goroutine.
package filehandler
