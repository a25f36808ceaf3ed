// Package pipeline orders the handlers and processors of a logger.
//
// Callers register named entries, each with a kind and an integer
// priority, then call Finalize once. The resulting Assembly lists both
// kinds in ascending priority order, ties in registration order, and
// may end with a synthesized "fallback" handler:
//
//	a := pipeline.NewAssembler(newFallback)
//	_ = a.Register(pipeline.Entry{Name: "10", Kind: pipeline.KindHandler,
//	    Priority: pipeline.PriorityFromName("10"), Factory: newFile})
//	asm := a.Finalize(nil)
//
// The assembler does not call factories, touch the filesystem or
// start goroutines. Factories are resolved by the wire package.
package pipeline
