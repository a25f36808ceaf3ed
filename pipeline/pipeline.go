package pipeline

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind tells handlers and processors apart.
type Kind int

const (
	// KindHandler marks an entry that becomes a log handler.
	KindHandler Kind = iota
	// KindProcessor marks an entry that becomes a log processor.
	KindProcessor
)

// String returns the lowercase kind name
func (k Kind) String() string {
	switch k {
	case KindHandler:
		return "handler"
	case KindProcessor:
		return "processor"
	default:
		return "unknown"
	}
}

// FallbackName is the name of the synthesized fallback handler entry.
// It is reserved: no configured handler may use it.
const FallbackName = "fallback"

// Factory builds the component behind an entry. The assembler never calls it.
type Factory func() (any, error)

// Entry is a named candidate for the logger pipeline.
type Entry struct {
	Name     string
	Kind     Kind
	Priority int
	Factory  Factory
}

// Assembly is the ordered result of Finalize.
type Assembly struct {
	Handlers         []Entry
	Processors       []Entry
	FallbackInjected bool
}

// Names returns the entry names of the given kind in order.
func (a Assembly) Names(kind Kind) []string {
	entries := a.Handlers
	if kind == KindProcessor {
		entries = a.Processors
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// DuplicateNameError is returned when an entry name is already taken for its kind.
type DuplicateNameError struct {
	Name string
	Kind Kind
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("pipeline: %s %q is already registered", e.Kind, e.Name)
}

// PriorityFromName returns the integer value of a numeric name and 0 otherwise.
func PriorityFromName(name string) int {
	p, err := strconv.Atoi(name)
	if err != nil {
		return 0
	}
	return p
}

type key struct {
	name string
	kind Kind
}

// Assembler collects entries and orders them into an Assembly.
// It is meant to be driven from a single goroutine at start-up.
type Assembler struct {
	fallback Factory
	entries  []Entry
	names    map[key]struct{}
}

// NewAssembler returns an empty Assembler. fallback is the factory of the
// handler synthesized when Finalize decides a fallback is needed.
func NewAssembler(fallback Factory) *Assembler {
	return &Assembler{
		fallback: fallback,
		names:    make(map[key]struct{}),
	}
}

// Register adds e to the working set.
func (a *Assembler) Register(e Entry) error {
	k := key{name: e.Name, kind: e.Kind}
	if _, ok := a.names[k]; ok {
		return &DuplicateNameError{Name: e.Name, Kind: e.Kind}
	}
	if e.Kind == KindHandler && e.Name == FallbackName {
		return &DuplicateNameError{Name: e.Name, Kind: e.Kind}
	}
	a.names[k] = struct{}{}
	a.entries = append(a.entries, e)
	return nil
}

// Len returns the number of registered entries of kind.
func (a *Assembler) Len(kind Kind) int {
	n := 0
	for _, e := range a.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Finalize orders the registered entries by ascending priority, keeping
// registration order for ties, and decides on the fallback handler.
// A nil forceFallback injects the fallback only when no handler was
// registered. The fallback is always the last handler.
//
// Finalize does not change the Assembler; repeated calls return equal
// assemblies in fresh slices.
func (a *Assembler) Finalize(forceFallback *bool) Assembly {
	var out Assembly
	for _, e := range a.entries {
		switch e.Kind {
		case KindHandler:
			out.Handlers = append(out.Handlers, e)
		case KindProcessor:
			out.Processors = append(out.Processors, e)
		}
	}

	byPriority := func(s []Entry) func(i, j int) bool {
		return func(i, j int) bool { return s[i].Priority < s[j].Priority }
	}
	sort.SliceStable(out.Handlers, byPriority(out.Handlers))
	sort.SliceStable(out.Processors, byPriority(out.Processors))

	inject := len(out.Handlers) == 0
	if forceFallback != nil {
		inject = *forceFallback
	}
	if inject {
		out.Handlers = append(out.Handlers, Entry{
			Name:    FallbackName,
			Kind:    KindHandler,
			Factory: a.fallback,
		})
		out.FallbackInjected = true
	}
	return out
}
