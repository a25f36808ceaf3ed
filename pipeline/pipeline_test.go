package pipeline

import (
	"errors"
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handlerEntry(name string, priority int) Entry {
	return Entry{Name: name, Kind: KindHandler, Priority: priority}
}

func processorEntry(name string, priority int) Entry {
	return Entry{Name: name, Kind: KindProcessor, Priority: priority}
}

func boolPtr(b bool) *bool { return &b }

// shape drops the factories so assemblies can be compared
type shape struct {
	Name     string
	Kind     Kind
	Priority int
	Factory  uintptr
}

func shapes(entries []Entry) []shape {
	out := make([]shape, len(entries))
	for i, e := range entries {
		var ptr uintptr
		if e.Factory != nil {
			ptr = reflect.ValueOf(e.Factory).Pointer()
		}
		out[i] = shape{Name: e.Name, Kind: e.Kind, Priority: e.Priority, Factory: ptr}
	}
	return out
}

func TestFinalize_OrdersByPriorityStable(t *testing.T) {
	a := NewAssembler(nil)
	require.NoError(t, a.Register(handlerEntry("A", 5)))
	require.NoError(t, a.Register(handlerEntry("B", 1)))
	require.NoError(t, a.Register(handlerEntry("C", 5)))

	asm := a.Finalize(nil)

	assert.Equal(t, []string{"B", "A", "C"}, asm.Names(KindHandler))
	assert.False(t, asm.FallbackInjected)
	assert.Empty(t, asm.Processors)
}

func TestFinalize_FallbackWhenNoHandlers(t *testing.T) {
	a := NewAssembler(func() (any, error) { return "fallback-handler", nil })
	require.NoError(t, a.Register(processorEntry("P", 10)))

	asm := a.Finalize(nil)

	assert.True(t, asm.FallbackInjected)
	assert.Equal(t, []string{FallbackName}, asm.Names(KindHandler))
	assert.Equal(t, []string{"P"}, asm.Names(KindProcessor))

	fb := asm.Handlers[0]
	assert.Equal(t, KindHandler, fb.Kind)
	require.NotNil(t, fb.Factory)
	v, err := fb.Factory()
	require.NoError(t, err)
	assert.Equal(t, "fallback-handler", v)
}

func TestFinalize_ForceFallback(t *testing.T) {
	tests := []struct {
		name     string
		handlers []Entry
		force    *bool
		want     []string
		injected bool
	}{
		{"empty default", nil, nil, []string{FallbackName}, true},
		{"non-empty default", []Entry{handlerEntry("a", 0)}, nil, []string{"a"}, false},
		{"forced on", []Entry{handlerEntry("a", 1000), handlerEntry("b", -3)}, boolPtr(true), []string{"b", "a", FallbackName}, true},
		{"forced off with no handlers", nil, boolPtr(false), []string{}, false},
		{"forced off", []Entry{handlerEntry("a", 0)}, boolPtr(false), []string{"a"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAssembler(nil)
			for _, e := range tt.handlers {
				require.NoError(t, a.Register(e))
			}
			asm := a.Finalize(tt.force)
			assert.Equal(t, tt.want, asm.Names(KindHandler))
			assert.Equal(t, tt.injected, asm.FallbackInjected)
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	a := NewAssembler(nil)
	require.NoError(t, a.Register(handlerEntry("file", 1)))

	err := a.Register(handlerEntry("file", 99))
	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "file", dup.Name)
	assert.Equal(t, KindHandler, dup.Kind)
	assert.Contains(t, err.Error(), `handler "file"`)

	// same name, other kind is fine
	require.NoError(t, a.Register(processorEntry("file", 1)))
	err = a.Register(processorEntry("file", 0))
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, KindProcessor, dup.Kind)

	assert.Equal(t, 1, a.Len(KindHandler))
	assert.Equal(t, 1, a.Len(KindProcessor))
}

func TestRegister_FallbackNameReserved(t *testing.T) {
	a := NewAssembler(nil)

	err := a.Register(handlerEntry(FallbackName, 0))
	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, FallbackName, dup.Name)

	require.NoError(t, a.Register(processorEntry(FallbackName, 0)))
	assert.True(t, a.Finalize(nil).FallbackInjected)
}

func TestFinalize_Idempotent(t *testing.T) {
	a := NewAssembler(func() (any, error) { return nil, nil })
	require.NoError(t, a.Register(handlerEntry("x", 3)))
	require.NoError(t, a.Register(processorEntry("y", 1)))
	require.NoError(t, a.Register(processorEntry("z", 1)))

	first := a.Finalize(boolPtr(true))
	second := a.Finalize(boolPtr(true))

	assert.Equal(t, shapes(first.Handlers), shapes(second.Handlers))
	assert.Equal(t, shapes(first.Processors), shapes(second.Processors))
	assert.Equal(t, first.FallbackInjected, second.FallbackInjected)

	// results do not share storage
	first.Handlers[0].Name = "changed"
	assert.Equal(t, "x", a.Finalize(nil).Handlers[0].Name)
}

func TestFinalize_RandomizedOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		a := NewAssembler(nil)
		n := rng.Intn(20)
		seq := map[string]int{}
		for i := 0; i < n; i++ {
			kind := Kind(rng.Intn(2))
			name := strconv.Itoa(i)
			seq[name] = i
			require.NoError(t, a.Register(Entry{Name: name, Kind: kind, Priority: rng.Intn(5) - 2}))
		}

		asm := a.Finalize(nil)
		handlers := asm.Handlers
		if asm.FallbackInjected {
			require.Equal(t, FallbackName, handlers[len(handlers)-1].Name)
			handlers = handlers[:len(handlers)-1]
		}
		assert.Equal(t, len(handlers) == 0, asm.FallbackInjected)

		for _, part := range [][]Entry{handlers, asm.Processors} {
			for i := 1; i < len(part); i++ {
				prev, cur := part[i-1], part[i]
				require.LessOrEqual(t, prev.Priority, cur.Priority)
				if prev.Priority == cur.Priority {
					require.Less(t, seq[prev.Name], seq[cur.Name])
				}
			}
		}
	}
}

func TestPriorityFromName(t *testing.T) {
	tests := map[string]int{
		"10":      10,
		"-5":      -5,
		"0":       0,
		"console": 0,
		"10a":     0,
		"":        0,
	}
	for name, want := range tests {
		assert.Equal(t, want, PriorityFromName(name), name)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "handler", KindHandler.String())
	assert.Equal(t, "processor", KindProcessor.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
