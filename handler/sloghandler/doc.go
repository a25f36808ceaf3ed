// Package sloghandler adapts an assembled *logger.Logger to
// log/slog.Handler, so code written against the standard library's
// structured logging goes through the same processors and handlers.
//
//	slog.SetDefault(slog.New(sloghandler.New(log)))
//
// Error values attached with slog.Any become error fields, so an
// "exception" attribute is picked up by the exception processor.
package sloghandler
