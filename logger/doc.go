// Package logger is the public API of nlogwire. Most callers receive a
// *Logger from the wire package and never build one by hand.
//
// A Logger is immutable after construction. Its name, level, default
// fields, handlers and processors are fixed by the Builder, so a Logger
// is safe for concurrent use without locking on the read path.
//
// Handlers and processors are kept as stacks. The last one pushed is on
// top and is called first:
//
//	log := logger.NewBuilder("app").
//	    PushHandler(fileHandler).
//	    PushHandler(fallback).      // called before fileHandler
//	    PushProcessor(urlProcessor).
//	    PushProcessor(exceptions).  // runs before urlProcessor
//	    Build()
//
// Every entry carries the logger name as its channel. Processors may
// rename the channel, which is how per-channel files such as access.log
// come about.
//
// There is no package-level default logger; pass the assembled Logger
// explicitly.
package logger
