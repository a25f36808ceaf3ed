// Package wire turns a config.Config into a ready logger.
//
// Build resolves and creates the log directory, registers every
// configured handler and processor with a pipeline.Assembler together
// with the built-in processors, and pushes the finalized entries onto a
// new logger in order:
//
//	| name            | kind      | priority | registered when         |
//	|-----------------|-----------|----------|-------------------------|
//	| nlog.url        | processor | 10       | reportBaseUrl is set    |
//	| nlog.priority   | processor | 20       | usePriorityProcessor    |
//	| nlog.exception  | processor | 100      | always                  |
//	| fallback        | handler   | last     | no handlers, or forced  |
//
// Because the logger treats handlers and processors as stacks, the
// entry with the highest priority is called first, and the fallback
// handler sees every entry before the configured ones.
//
// The returned Container carries the logger, the reporter adapter and
// the handler statistics. Nothing is stored in package state.
package wire
