package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the logging section of an application's configuration.
type Config struct {
	// Name is the application name and the channel of the assembled logger
	Name string `yaml:"name" validate:"required"`
	// LogDir is where file handlers, the fallback handler and exception reports write
	LogDir string `yaml:"logDir"`
	// AppDir is used to derive "<appDir>/../log" when LogDir is empty
	AppDir string `yaml:"appDir"`
	// Level is the minimum level of the logger
	Level string `yaml:"level" validate:"loglevel"`
	// HookToReporter exposes the logger through a reporter.Adapter
	HookToReporter bool `yaml:"hookToReporter"`
	// ReportBaseURL enables the exception report URL processor
	ReportBaseURL string `yaml:"reportBaseUrl" validate:"omitempty,url"`
	// UsePriorityProcessor registers the channel routing processor
	UsePriorityProcessor bool `yaml:"usePriorityProcessor"`
	// RegisterFallback forces the fallback handler on or off; nil decides by handler count
	RegisterFallback *bool `yaml:"registerFallback"`
	// IncludeCaller records the call site of every entry and prints it
	IncludeCaller bool `yaml:"includeCaller"`
	// AccessLevel is the level used for the reporter's "access" priority
	AccessLevel string `yaml:"accessLevel" validate:"loglevel"`

	Handlers   Directives `yaml:"handlers" validate:"dive"`
	Processors Directives `yaml:"processors" validate:"dive"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		Name:                 "app",
		Level:                "info",
		HookToReporter:       true,
		UsePriorityProcessor: true,
		AccessLevel:          "info",
	}
}

// Option tweaks how a configuration is loaded.
type Option func(*loadOptions)

type loadOptions struct {
	environ map[string]string
}

// WithEnvironment replaces the process environment as the source of overrides.
func WithEnvironment(environ map[string]string) Option {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// Load reads and parses the YAML file at path.
func Load(path string, opts ...Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data, opts...)
	if err != nil {
		return nil, errors.WithMessagef(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults, applies environment
// overrides and validates the result.
func Parse(data []byte, opts ...Option) (*Config, error) {
	var lo loadOptions
	for _, opt := range opts {
		opt(&lo)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if err := applyEnv(cfg, lo.environ); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
