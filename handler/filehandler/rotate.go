package filehandler

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// backupLayout sorts lexically in creation order and stays unique when
// rotating more than once per second.
const backupLayout = "2006-01-02T15-04-05.000000000"

type rotation struct {
	path       string
	maxSize    int64
	maxAge     time.Duration
	interval   time.Duration
	maxBackups int

	size  int64
	since time.Time
}

func (r *rotation) due(now time.Time) bool {
	switch {
	case r.maxSize > 0 && r.size >= r.maxSize:
		return true
	case r.maxAge > 0 && now.Sub(r.since) >= r.maxAge:
		return true
	case r.interval > 0 && now.Sub(r.since) >= r.interval:
		return true
	}
	return false
}

// rotate moves the active file aside as "<path>.<timestamp>", prunes old
// backups and reopens path. Callers hold mu.
func (h *Handler) rotate() error {
	if err := h.release(); err != nil {
		return err
	}

	now := time.Now()
	backup := h.rot.path + "." + now.Format(backupLayout)
	renameErr := os.Rename(h.rot.path, backup)

	file, err := openLogFile(h.rot.path)
	if err != nil {
		h.closed = true
		if renameErr != nil {
			return errors.Wrapf(err, "reopen after failed rotation (%v)", renameErr)
		}
		return errors.Wrap(err, "reopen after rotation")
	}
	h.file = file
	h.buf.Reset(file)
	if renameErr != nil {
		return renameErr
	}

	h.rot.size = 0
	h.rot.since = now
	if h.rot.maxBackups > 0 {
		h.rot.prune()
	}
	return nil
}

// backups lists rotated files of path, oldest first.
func (r *rotation) backups() []string {
	prefix := filepath.Base(r.path) + "."
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(r.path), prefix+"*"))
	if err != nil {
		return nil
	}
	out := matches[:0]
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), prefix) {
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}

func (r *rotation) prune() {
	backups := r.backups()
	for len(backups) > r.maxBackups {
		if os.Remove(backups[0]) != nil {
			return
		}
		backups = backups[1:]
	}
}
