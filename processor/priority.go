package processor

import (
	"strings"

	"github.com/philipp01105/nlogwire/core"
)

// isLevelPriority reports whether a priority names a level rather than a
// channel. "critical" is a reporter priority that logs at ERROR.
func isLevelPriority(p string) bool {
	return core.IsLevelName(p) || strings.EqualFold(p, "critical")
}

// PriorityProcessor moves entries to another channel. An explicit "channel"
// field wins; otherwise a "priority" field that is not a level name (for
// example "access") becomes the lowercase channel. The consumed field is
// removed from the entry.
type PriorityProcessor struct{}

// NewPriorityProcessor creates a PriorityProcessor.
func NewPriorityProcessor() *PriorityProcessor {
	return &PriorityProcessor{}
}

// Process renames the channel of the entry when asked to.
func (p *PriorityProcessor) Process(entry *core.Entry) {
	if f, ok := entry.Lookup(ChannelKey); ok {
		if ch := f.StringValue(); ch != "" {
			entry.Channel = ch
		}
		entry.Remove(ChannelKey)
		return
	}

	f, ok := entry.Lookup(PriorityKey)
	if !ok {
		return
	}
	priority := f.StringValue()
	if priority == "" || isLevelPriority(priority) {
		entry.Remove(PriorityKey)
		return
	}
	entry.Channel = strings.ToLower(priority)
	entry.Remove(PriorityKey)
}
