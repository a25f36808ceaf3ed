// Package core defines the shared types used across nlogwire.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Field type for structured
// key-value pairs.
//
// Every Entry carries a Channel, the name of the logger that produced it.
// Processors may rename the channel (for example to route access logs to
// their own file) and add or remove fields before handlers see the entry.
//
// Entry objects are pooled via sync.Pool. The logger gets an Entry with
// GetEntry and returns it with PutEntry once every handler has consumed
// it; handlers that keep an entry past Handle must Clone it.
package core
