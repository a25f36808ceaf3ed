package wire

import (
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/nlogwire/config"
	"github.com/philipp01105/nlogwire/handler"
	"github.com/philipp01105/nlogwire/handler/fallbackhandler"
	"github.com/philipp01105/nlogwire/handler/sloghandler"
	"github.com/philipp01105/nlogwire/logger"
	"github.com/philipp01105/nlogwire/metrics"
	"github.com/philipp01105/nlogwire/pipeline"
	"github.com/philipp01105/nlogwire/processor"
	"github.com/philipp01105/nlogwire/reporter"
)

// Names and priorities of the processors registered by Assemble.
const (
	PriorityProcessorName  = "nlog.priority"
	ExceptionProcessorName = "nlog.exception"
	URLProcessorName       = "nlog.url"

	PriorityProcessorPriority  = 20
	ExceptionProcessorPriority = 100
	URLProcessorPriority       = 10
)

// LoggerAware is implemented by components that take the assembled logger.
type LoggerAware interface {
	SetLogger(log *logger.Logger)
}

// Container holds everything Build produced.
type Container struct {
	Logger *logger.Logger
	// Reporter is nil when hookToReporter is off
	Reporter *reporter.Adapter
	Assembly pipeline.Assembly
	LogDir   string
	// Stats maps handler names to their statistics
	Stats map[string]handler.StatsProvider
}

// Assemble registers the configured directives and the built-in
// processors and finalizes the pipeline. Factories are not called.
func Assemble(cfg *config.Config, logDir string) (pipeline.Assembly, error) {
	s := site{logDir: logDir, includeCaller: cfg.IncludeCaller}

	a := pipeline.NewAssembler(func() (any, error) {
		return fallbackhandler.New(fallbackhandler.Config{
			AppName: cfg.Name,
			Dir:     logDir,
		}), nil
	})

	for _, d := range cfg.Handlers {
		if err := a.Register(pipeline.Entry{
			Name:     d.Name,
			Kind:     pipeline.KindHandler,
			Priority: priorityOf(d),
			Factory:  s.handlerFactory(d),
		}); err != nil {
			return pipeline.Assembly{}, errors.WithStack(err)
		}
	}

	builtins := []pipeline.Entry{{
		Name:     ExceptionProcessorName,
		Kind:     pipeline.KindProcessor,
		Priority: ExceptionProcessorPriority,
		Factory: func() (any, error) {
			return processor.NewExceptionProcessor(logDir), nil
		},
	}}
	if cfg.UsePriorityProcessor {
		builtins = append([]pipeline.Entry{{
			Name:     PriorityProcessorName,
			Kind:     pipeline.KindProcessor,
			Priority: PriorityProcessorPriority,
			Factory: func() (any, error) {
				return processor.NewPriorityProcessor(), nil
			},
		}}, builtins...)
	}
	if cfg.ReportBaseURL != "" {
		builtins = append(builtins, pipeline.Entry{
			Name:     URLProcessorName,
			Kind:     pipeline.KindProcessor,
			Priority: URLProcessorPriority,
			Factory: func() (any, error) {
				return processor.NewURLProcessor(cfg.ReportBaseURL), nil
			},
		})
	}

	for _, e := range builtins {
		if err := a.Register(e); err != nil {
			return pipeline.Assembly{}, errors.WithStack(err)
		}
	}
	for _, d := range cfg.Processors {
		if err := a.Register(pipeline.Entry{
			Name:     d.Name,
			Kind:     pipeline.KindProcessor,
			Priority: priorityOf(d),
			Factory:  s.processorFactory(d),
		}); err != nil {
			return pipeline.Assembly{}, errors.WithStack(err)
		}
	}

	return a.Finalize(cfg.RegisterFallback), nil
}

// Build resolves and creates the log directory, assembles the pipeline,
// runs every factory and pushes the results onto a new logger in
// assembly order.
func Build(cfg *config.Config) (*Container, error) {
	logDir, err := cfg.ResolveLogDir()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureLogDir(logDir); err != nil {
		return nil, err
	}

	asm, err := Assemble(cfg, logDir)
	if err != nil {
		return nil, err
	}

	b := logger.NewBuilder(cfg.Name).
		WithLevel(logger.ParseLevel(cfg.Level)).
		WithCaller(cfg.IncludeCaller)

	stats := make(map[string]handler.StatsProvider)
	var built []handler.Handler
	for _, e := range asm.Handlers {
		h, err := resolve[handler.Handler](e)
		if err != nil {
			return nil, multierr.Append(err, closeAll(built))
		}
		built = append(built, h)
		b.PushHandler(h)
		if sp, ok := h.(handler.StatsProvider); ok {
			stats[e.Name] = sp
		}
	}
	for _, e := range asm.Processors {
		p, err := resolve[processor.Processor](e)
		if err != nil {
			return nil, multierr.Append(err, closeAll(built))
		}
		b.PushProcessor(p)
	}

	c := &Container{
		Logger:   b.Build(),
		Assembly: asm,
		LogDir:   logDir,
		Stats:    stats,
	}
	if cfg.HookToReporter {
		c.Reporter = reporter.New(c.Logger, logger.ParseLevel(cfg.AccessLevel))
	}
	return c, nil
}

// resolve runs the factory of e and checks the type of its result
func resolve[T any](e pipeline.Entry) (T, error) {
	var zero T
	if e.Factory == nil {
		return zero, errors.Errorf("%s %q has no factory", e.Kind, e.Name)
	}
	v, err := e.Factory()
	if err != nil {
		return zero, errors.Wrapf(err, "%s %q", e.Kind, e.Name)
	}
	t, ok := v.(T)
	if !ok {
		return zero, errors.Errorf("%s %q: factory returned %T", e.Kind, e.Name, v)
	}
	return t, nil
}

func closeAll(hs []handler.Handler) error {
	var err error
	for _, h := range hs {
		err = multierr.Append(err, h.Close())
	}
	return err
}

// Inject hands the logger to every target.
func (c *Container) Inject(targets ...LoggerAware) {
	for _, t := range targets {
		t.SetLogger(c.Logger)
	}
}

// Slog returns a *slog.Logger writing through the assembled pipeline.
func (c *Container) Slog() *slog.Logger {
	return slog.New(sloghandler.New(c.Logger))
}

// Collector returns a Prometheus collector over the handler statistics.
func (c *Container) Collector(namespace string) *metrics.Collector {
	return metrics.NewCollector(namespace, c.Stats)
}

// Close closes every handler of the logger.
func (c *Container) Close() error {
	return c.Logger.Close()
}
