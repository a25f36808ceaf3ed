package fallbackhandler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/handler/filehandler"
)

func entry(channel string, level core.Level, msg string) *core.Entry {
	return &core.Entry{Channel: channel, Level: level, Message: msg}
}

func TestFileName(t *testing.T) {
	h := New(Config{AppName: "app", Dir: t.TempDir()})

	tests := []struct {
		name  string
		entry *core.Entry
		want  string
	}{
		{"app channel uses level", entry("app", core.ErrorLevel, "x"), "error"},
		{"empty channel uses level", entry("", core.InfoLevel, "x"), "info"},
		{"other channel", entry("access", core.InfoLevel, "x"), "access"},
		{"unsafe channel", entry("../Etc/Passwd", core.InfoLevel, "x"), "___etc_passwd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.FileName(tt.entry))
		})
	}
}

func TestHandler_SplitsFiles(t *testing.T) {
	dir := t.TempDir()
	h := New(Config{AppName: "app", Dir: dir})

	require.NoError(t, h.Handle(entry("app", core.InfoLevel, "started")))
	require.NoError(t, h.Handle(entry("app", core.ErrorLevel, "failed")))
	require.NoError(t, h.Handle(entry("access", core.InfoLevel, "GET /")))
	require.NoError(t, h.Handle(entry("app", core.InfoLevel, "again")))

	// Flushed before Close
	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(info), "\n"))
	assert.Contains(t, string(info), "started")

	errLog, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errLog), "failed")

	access, err := os.ReadFile(filepath.Join(dir, "access.log"))
	require.NoError(t, err)
	assert.Contains(t, string(access), "access: GET /")

	assert.Equal(t, uint64(4), h.Stats().ProcessedTotal)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	assert.ErrorIs(t, h.Handle(entry("app", core.InfoLevel, "late")), filehandler.ErrClosed)
}

func TestHandler_MissingDirectory(t *testing.T) {
	h := New(Config{AppName: "app", Dir: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, h.Handle(entry("app", core.InfoLevel, "lost")))
}
