package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/philipp01105/nlogwire/core"
)

// ExceptionProcessor writes a report file for every distinct error logged
// under the "exception" key and records its name in "exception_file".
//
// Report names are exception--<date>--<hash>.log where the hash covers the
// error type and message, so repeated failures share one report.
type ExceptionProcessor struct {
	dir string
	now func() time.Time

	mu      sync.Mutex
	written map[string]struct{}
}

// NewExceptionProcessor creates a processor writing reports into dir.
func NewExceptionProcessor(dir string) *ExceptionProcessor {
	return &ExceptionProcessor{
		dir:     dir,
		now:     time.Now,
		written: make(map[string]struct{}),
	}
}

// Process writes the report and adds the exception_file field. Failing to
// write the report leaves the entry untouched; the error is still logged.
func (p *ExceptionProcessor) Process(entry *core.Entry) {
	f, ok := entry.Lookup(ExceptionKey)
	if !ok {
		return
	}
	err, ok := f.Error()
	if !ok {
		return
	}

	name := p.reportName(err)
	if werr := p.writeReport(name, entry, err); werr != nil {
		return
	}
	entry.Fields = append(entry.Fields, core.Field{Key: ExceptionFileKey, Type: core.StringType, Str: name})
}

func (p *ExceptionProcessor) reportName(err error) string {
	sum := xxhash.Sum64String(fmt.Sprintf("%T|%s", err, err.Error()))
	return "exception--" + p.now().Format("2006-01-02--15-04") + "--" + strconv.FormatUint(sum, 16) + ".log"
}

func (p *ExceptionProcessor) writeReport(name string, entry *core.Entry, err error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.written[name]; ok {
		return nil
	}

	path := filepath.Join(p.dir, name)
	file, ferr := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if os.IsExist(ferr) {
		p.written[name] = struct{}{}
		return nil
	}
	if ferr != nil {
		return ferr
	}

	// %+v prints the stack for errors created with github.com/pkg/errors
	_, werr := fmt.Fprintf(file, "time: %s\nchannel: %s\nlevel: %s\nmessage: %s\nerror type: %T\n\n%+v\n",
		entry.Time.Format(time.RFC3339), entry.Channel, entry.Level, entry.Message, err, err)
	if cerr := file.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return werr
	}
	p.written[name] = struct{}{}
	return nil
}
