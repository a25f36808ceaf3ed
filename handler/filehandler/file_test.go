package filehandler

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/formatter"
	"github.com/philipp01105/nlogwire/handler"
)

func newEntry(msg string) *core.Entry {
	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Channel = "app"
	entry.Message = msg
	return entry
}

func TestFileHandler_WritesOnClose(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "app.log")

	h, err := NewFileHandler(FileConfig{
		Filename:  filename,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := h.Handle(newEntry("persisted")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"message":"persisted"`) {
		t.Errorf("log file content = %s", data)
	}

	if err := h.Handle(newEntry("late")); !errors.Is(err, ErrClosed) {
		t.Errorf("Handle() after Close error = %v, want ErrClosed", err)
	}
}

func TestFileHandler_MaxBackups(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "test.log")

	h, err := NewFileHandler(FileConfig{
		Filename:   filename,
		MaxSize:    100, // Small size to trigger rotation
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	for i := 0; i < 50; i++ {
		h.Handle(newEntry("This is a test message that will trigger rotation"))
	}

	backups, err := filepath.Glob(filename + ".*")
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Errorf("found %d backups, want 2: %v", len(backups), backups)
	}
}

func TestFileHandler_RotateInterval(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")

	h, err := NewFileHandler(FileConfig{
		Filename:       filename,
		RotateInterval: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	h.Handle(newEntry("first"))
	time.Sleep(80 * time.Millisecond)
	h.Handle(newEntry("second"))

	backups, _ := filepath.Glob(filename + ".*")
	if len(backups) != 1 {
		t.Fatalf("found %d backups, want 1", len(backups))
	}
	rotated, err := os.ReadFile(backups[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rotated), "first") {
		t.Errorf("rotated file does not contain the first entry: %s", rotated)
	}
}

func TestFileHandler_Async(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "async.log")

	h, err := NewFileHandler(FileConfig{Filename: filename, Async: true, BufferSize: 64})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20; i++ {
		entry := newEntry("queued")
		h.Handle(entry)
		core.PutEntry(entry)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "queued"); got != 20 {
		t.Errorf("found %d entries, want 20", got)
	}
	if got := h.(handler.StatsProvider).Stats().ProcessedTotal; got != 20 {
		t.Errorf("ProcessedTotal = %d, want 20", got)
	}
}

func TestNewFileHandler_Errors(t *testing.T) {
	if _, err := NewFileHandler(FileConfig{}); !errors.Is(err, ErrNoFilename) {
		t.Errorf("empty filename error = %v, want ErrNoFilename", err)
	}

	missing := filepath.Join(t.TempDir(), "missing", "app.log")
	if _, err := NewFileHandler(FileConfig{Filename: missing}); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
