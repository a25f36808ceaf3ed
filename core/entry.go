package core

import (
	"sync"
	"time"
)

// Entry is a single log event on its way through processors to handlers.
type Entry struct {
	Time    time.Time
	Level   Level
	Channel string
	Message string
	Fields  []Field
	Caller  CallerInfo
}

// Lookup returns the last field with the given key.
func (e *Entry) Lookup(key string) (Field, bool) {
	for i := len(e.Fields) - 1; i >= 0; i-- {
		if e.Fields[i].Key == key {
			return e.Fields[i], true
		}
	}
	return Field{}, false
}

// Remove deletes every field with the given key, keeping the order of the rest.
func (e *Entry) Remove(key string) {
	e.Fields = deleteKey(e.Fields, key)
}

func deleteKey(fields []Field, key string) []Field {
	kept := fields[:0]
	for _, f := range fields {
		if f.Key != key {
			kept = append(kept, f)
		}
	}
	clear(fields[len(kept):])
	return kept
}

// Clone returns a pooled copy of the entry that does not share the Fields
// slice. Async handlers keep the clone past the end of Handle and release
// it with PutEntry.
func (e *Entry) Clone() *Entry {
	c := GetEntry()
	c.Time = e.Time
	c.Level = e.Level
	c.Channel = e.Channel
	c.Message = e.Message
	c.Caller = e.Caller
	c.Fields = append(c.Fields, e.Fields...)
	return c
}

const pooledFields = 8

var entryPool = sync.Pool{
	New: func() any {
		return &Entry{Fields: make([]Field, 0, pooledFields)}
	},
}

// GetEntry takes a reset Entry stamped with the current time from the pool.
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry resets e and returns it to the pool.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// drop field values so pooled entries do not pin errors or Any payloads
	clear(e.Fields)
	*e = Entry{Fields: e.Fields[:0]}
	entryPool.Put(e)
}
