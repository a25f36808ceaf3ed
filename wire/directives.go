package wire

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/philipp01105/nlogwire/config"
	"github.com/philipp01105/nlogwire/formatter"
	"github.com/philipp01105/nlogwire/handler"
	"github.com/philipp01105/nlogwire/handler/consolehandler"
	"github.com/philipp01105/nlogwire/handler/filehandler"
	"github.com/philipp01105/nlogwire/handler/zaphandler"
	"github.com/philipp01105/nlogwire/pipeline"
	"github.com/philipp01105/nlogwire/processor"
)

// priorityOf returns the explicit priority of d, or the one implied by its name
func priorityOf(d config.Directive) int {
	if d.Priority != nil {
		return *d.Priority
	}
	return pipeline.PriorityFromName(d.Name)
}

// inLogDir resolves a relative path against the log directory
func inLogDir(logDir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(logDir, name)
}

func newFormatter(name string, includeCaller bool) (formatter.Formatter, error) {
	f, ok := formatter.New(name, formatter.Config{IncludeCaller: includeCaller})
	if !ok {
		return nil, errors.Errorf("unknown format %q", name)
	}
	return f, nil
}

// site carries what directive factories need besides their own options
type site struct {
	logDir        string
	includeCaller bool
}

// handlerFactory returns the factory of a handler directive. Options are
// decoded when the factory runs.
func (s site) handlerFactory(d config.Directive) pipeline.Factory {
	return func() (any, error) {
		h, err := s.newHandler(d)
		if err != nil {
			return nil, err
		}
		return handler.WithMinLevel(h, d.MinLevel()), nil
	}
}

func (s site) newHandler(d config.Directive) (handler.Handler, error) {
	switch d.Type {
	case config.TypeConsole:
		var opts config.ConsoleOptions
		if err := d.Decode(&opts); err != nil {
			return nil, err
		}
		f, err := newFormatter(opts.Format, s.includeCaller)
		if err != nil {
			return nil, err
		}
		w := os.Stdout
		if opts.Writer == "stderr" {
			w = os.Stderr
		}
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:         w,
			Formatter:      f,
			Async:          opts.Async,
			BufferSize:     opts.BufferSize,
			OverflowPolicy: opts.OverflowPolicy(),
			BlockTimeout:   opts.BlockTimeout,
			DrainTimeout:   opts.DrainTimeout,
		}), nil

	case config.TypeFile:
		var opts config.FileOptions
		if err := d.Decode(&opts); err != nil {
			return nil, err
		}
		f, err := newFormatter(opts.Format, s.includeCaller)
		if err != nil {
			return nil, err
		}
		filename := inLogDir(s.logDir, opts.Filename)
		if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
			return nil, errors.WithStack(err)
		}
		return filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:       filename,
			Formatter:      f,
			Async:          opts.Async,
			BufferSize:     opts.BufferSize,
			MaxSize:        opts.MaxSize,
			MaxAge:         opts.MaxAge,
			MaxBackups:     opts.MaxBackups,
			RotateInterval: opts.RotateInterval,
			OverflowPolicy: opts.OverflowPolicy(),
			BlockTimeout:   opts.BlockTimeout,
			DrainTimeout:   opts.DrainTimeout,
		})

	case config.TypeZap:
		var opts config.ZapOptions
		if err := d.Decode(&opts); err != nil {
			return nil, err
		}
		output := opts.Output
		if output != "" && output != "stdout" && output != "stderr" {
			output = inLogDir(s.logDir, output)
		}
		return zaphandler.Build(zaphandler.Config{
			Encoding:    opts.Encoding,
			Output:      output,
			Development: opts.Development,
		})

	case config.TypeNull:
		if err := d.Decode(&struct{}{}); err != nil {
			return nil, err
		}
		return handler.NewNull(), nil

	default:
		return nil, errors.Wrapf(config.ErrUnknownDirective, "handler type %q", d.Type)
	}
}

// processorFactory returns the factory of a processor directive
func (s site) processorFactory(d config.Directive) pipeline.Factory {
	return func() (any, error) {
		switch d.Type {
		case config.TypeStatic:
			var opts config.StaticOptions
			if err := d.Decode(&opts); err != nil {
				return nil, err
			}
			return processor.Static(opts.Fields), nil
		case config.TypeHostname:
			if err := d.Decode(&struct{}{}); err != nil {
				return nil, err
			}
			return processor.Hostname()
		case config.TypeProcess:
			if err := d.Decode(&struct{}{}); err != nil {
				return nil, err
			}
			return processor.Process(), nil
		default:
			return nil, errors.Wrapf(config.ErrUnknownDirective, "processor type %q", d.Type)
		}
	}
}
