package processor

import (
	"net/url"
	"strings"

	"github.com/philipp01105/nlogwire/core"
)

// URLProcessor turns the exception_file field into a browsable link.
type URLProcessor struct {
	baseURL string
}

// NewURLProcessor creates a processor that prefixes report names with baseURL.
func NewURLProcessor(baseURL string) *URLProcessor {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &URLProcessor{baseURL: baseURL}
}

// Process adds exception_url when exception_file is present.
func (p *URLProcessor) Process(entry *core.Entry) {
	f, ok := entry.Lookup(ExceptionFileKey)
	if !ok || f.Str == "" {
		return
	}
	entry.Fields = append(entry.Fields, core.Field{
		Key:  ExceptionURLKey,
		Type: core.StringType,
		Str:  p.baseURL + url.PathEscape(f.Str),
	})
}
