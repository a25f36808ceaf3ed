package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/handler"
)

type fixedStats struct {
	snap handler.Snapshot
}

func (f fixedStats) Stats() handler.Snapshot { return f.snap }

func TestCollector(t *testing.T) {
	c := NewCollector("nlog", map[string]handler.StatsProvider{
		"file": fixedStats{handler.Snapshot{
			ProcessedTotal: 7,
			BlockedTotal:   1,
			DroppedTotal:   map[core.Level]uint64{core.DebugLevel: 2},
		}},
	})

	expected := `
# HELP nlog_handler_blocked_total Times the handler queue was full and the caller blocked.
# TYPE nlog_handler_blocked_total counter
nlog_handler_blocked_total{handler="file"} 1
# HELP nlog_handler_dropped_total Entries dropped by the handler queue.
# TYPE nlog_handler_dropped_total counter
nlog_handler_dropped_total{handler="file",level="debug"} 2
nlog_handler_dropped_total{handler="file",level="error"} 0
nlog_handler_dropped_total{handler="file",level="info"} 0
nlog_handler_dropped_total{handler="file",level="warn"} 0
# HELP nlog_handler_processed_total Entries written by the handler.
# TYPE nlog_handler_processed_total counter
nlog_handler_processed_total{handler="file"} 7
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestCollector_Registers(t *testing.T) {
	n := handler.NewNull()
	_ = n.Handle(&core.Entry{})

	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector("app", map[string]handler.StatsProvider{"null": n, "other": handler.NewNull()}))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
	assert.Equal(t, 2, testutil.CollectAndCount(NewCollector("app", map[string]handler.StatsProvider{"null": n, "other": handler.NewNull()}), "app_handler_processed_total"))
}
