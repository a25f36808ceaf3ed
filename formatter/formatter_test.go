package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/nlogwire/core"
)

var fixedTime = time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC)

func TestTextFormatter_Layout(t *testing.T) {
	f := NewTextFormatter(Config{})

	tests := []struct {
		name  string
		entry *core.Entry
		want  string
	}{
		{
			name:  "with channel",
			entry: &core.Entry{Time: fixedTime, Level: core.InfoLevel, Channel: "app", Message: "ready"},
			want:  "2026-02-18T13:00:00Z [INFO] app: ready\n",
		},
		{
			name:  "without channel",
			entry: &core.Entry{Time: fixedTime, Level: core.ErrorLevel, Message: "boom"},
			want:  "2026-02-18T13:00:00Z [ERROR] boom\n",
		},
		{
			name: "with fields",
			entry: &core.Entry{
				Time:    fixedTime,
				Level:   core.WarnLevel,
				Channel: "access",
				Message: "slow",
				Fields: []core.Field{
					{Key: "path", Type: core.StringType, Str: "/users"},
					{Key: "status", Type: core.IntType, Int64: 200},
				},
			},
			want: "2026-02-18T13:00:00Z [WARN] access: slow path=/users status=200\n",
		},
		{
			name:  "unknown level",
			entry: &core.Entry{Time: fixedTime, Level: core.Level(99), Message: "odd"},
			want:  "2026-02-18T13:00:00Z [UNKNOWN] odd\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.entry)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextFormatter_WithCaller(t *testing.T) {
	f := NewTextFormatter(Config{IncludeCaller: true})

	entry := &core.Entry{
		Time:    fixedTime,
		Level:   core.InfoLevel,
		Message: "test",
		Caller: core.CallerInfo{
			File:      "/path/to/file.go",
			ShortFile: "file.go",
			Line:      123,
			Defined:   true,
		},
	}

	var buf bytes.Buffer
	if err := f.FormatTo(entry, &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if !strings.Contains(buf.String(), "[file.go:123] test") {
		t.Errorf("Expected caller info in output, got: %s", buf.String())
	}
}

func TestJSONFormatter_Fields(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:    fixedTime,
		Level:   core.ErrorLevel,
		Channel: "app",
		Message: "quote \" and\nnewline",
		Fields: []core.Field{
			{Key: "count", Type: core.IntType, Int64: 3},
			{Key: "ok", Type: core.BoolType, Int64: 1},
			{Key: "exception", Type: core.ErrorType, Str: "disk full", Any: errors.New("disk full")},
		},
	}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	checks := map[string]interface{}{
		"level":     "ERROR",
		"channel":   "app",
		"message":   "quote \" and\nnewline",
		"count":     float64(3),
		"ok":        true,
		"exception": "disk full",
	}
	for key, want := range checks {
		if decoded[key] != want {
			t.Errorf("%s = %v, want %v", key, decoded[key], want)
		}
	}
}

func TestJSONFormatter_OmitsEmptyChannel(t *testing.T) {
	f := NewJSONFormatter(Config{})
	out, err := f.Format(&core.Entry{Time: fixedTime, Level: core.InfoLevel, Message: "x"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(string(out), `"channel"`) {
		t.Errorf("unexpected channel key in %s", out)
	}
}

func TestJSONFormatter_Values(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:    fixedTime,
		Level:   core.InfoLevel,
		Message: "bad \xff byte",
		Fields: []core.Field{
			{Key: "tags", Type: core.AnyType, Any: []string{"a", "b"}},
			{Key: "fn", Type: core.AnyType, Any: func() {}},
			{Key: "ratio", Type: core.Float64Type, Float64: math.Inf(1)},
			{Key: "at", Type: core.TimeType, Int64: fixedTime.UnixNano()},
			{Key: "took", Type: core.DurationType, Int64: int64(time.Second)},
		},
	}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if decoded["message"] != "bad \ufffd byte" {
		t.Errorf("message = %q", decoded["message"])
	}
	if tags, ok := decoded["tags"].([]interface{}); !ok || len(tags) != 2 {
		t.Errorf("tags = %v, want a JSON array", decoded["tags"])
	}
	if _, ok := decoded["fn"].(string); !ok {
		t.Errorf("fn = %v, want a string", decoded["fn"])
	}
	if decoded["ratio"] != "+Inf" {
		t.Errorf("ratio = %v, want \"+Inf\"", decoded["ratio"])
	}
	if decoded["at"] != "2026-02-18T13:00:00Z" {
		t.Errorf("at = %v", decoded["at"])
	}
	if decoded["took"] != float64(time.Second) {
		t.Errorf("took = %v", decoded["took"])
	}
}

func TestNew(t *testing.T) {
	if f, ok := New("", Config{}); !ok {
		t.Error("New(\"\") not found")
	} else if _, isText := f.(*TextFormatter); !isText {
		t.Errorf("New(\"\") = %T, want *TextFormatter", f)
	}
	if f, ok := New("json", Config{}); !ok {
		t.Error("New(json) not found")
	} else if _, isJSON := f.(*JSONFormatter); !isJSON {
		t.Errorf("New(json) = %T, want *JSONFormatter", f)
	}
	if _, ok := New("xml", Config{}); ok {
		t.Error("New(xml) should not exist")
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:    fixedTime,
		Level:   core.InfoLevel,
		Channel: "app",
		Message: "benchmark message",
		Fields:  []core.Field{{Key: "key", Type: core.StringType, Str: "value"}},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}
