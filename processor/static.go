package processor

import (
	"os"
	"sort"

	"github.com/philipp01105/nlogwire/core"
)

// Static appends a fixed set of string fields to every entry. Keys are
// added in sorted order.
func Static(fields map[string]string) Processor {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	extra := make([]core.Field, 0, len(keys))
	for _, k := range keys {
		extra = append(extra, core.Field{Key: k, Type: core.StringType, Str: fields[k]})
	}
	return Func(func(entry *core.Entry) {
		entry.Fields = append(entry.Fields, extra...)
	})
}

// Hostname adds the machine host name under "hostname".
func Hostname() (Processor, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, err
	}
	return Static(map[string]string{"hostname": host}), nil
}

// Process adds the current process id under "pid".
func Process() Processor {
	pid := int64(os.Getpid())
	return Func(func(entry *core.Entry) {
		entry.Fields = append(entry.Fields, core.Field{Key: "pid", Type: core.IntType, Int64: pid})
	})
}
