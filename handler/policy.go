package handler

import (
	"strings"

	"github.com/philipp01105/nlogwire/core"
)

// OverflowPolicy decides what an async handler does with an entry when its
// queue is full.
type OverflowPolicy int

const (
	// DropNewest discards the incoming entry.
	DropNewest OverflowPolicy = iota
	// DropOldest evicts the head of the queue to make room.
	DropOldest
	// Block waits for room until the queue's block timeout expires.
	Block
)

var policyNames = [...]string{
	DropNewest: "DropNewest",
	DropOldest: "DropOldest",
	Block:      "Block",
}

func (p OverflowPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return "Unknown"
	}
	return policyNames[p]
}

// DefaultLevelPolicy drops debug, info and warn entries and blocks on
// everything at error level or above.
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	policy := make(map[core.Level]OverflowPolicy, 6)
	for lvl := core.DebugLevel; lvl <= core.PanicLevel; lvl++ {
		if lvl >= core.ErrorLevel {
			policy[lvl] = Block
		} else {
			policy[lvl] = DropNewest
		}
	}
	return policy
}

// ParseOverflowPolicy accepts both the snake_case configuration spelling
// ("drop_oldest") and the String form ("DropOldest").
func ParseOverflowPolicy(s string) (OverflowPolicy, bool) {
	key := strings.ToLower(strings.ReplaceAll(s, "_", ""))
	for i, name := range policyNames {
		if strings.ToLower(name) == key {
			return OverflowPolicy(i), true
		}
	}
	return DropNewest, false
}
