package config

import (
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/handler"
	"github.com/philipp01105/nlogwire/logger"
)

// Handler directive types.
const (
	TypeConsole = "console"
	TypeFile    = "file"
	TypeZap     = "zap"
	TypeNull    = "null"
)

// Processor directive types.
const (
	TypeStatic   = "static"
	TypeHostname = "hostname"
	TypeProcess  = "process"
)

// HandlerTypes lists the handler directive types in documentation order.
var HandlerTypes = []string{TypeConsole, TypeFile, TypeZap, TypeNull}

// ProcessorTypes lists the processor directive types in documentation order.
var ProcessorTypes = []string{TypeStatic, TypeHostname, TypeProcess}

// Directive describes one configured handler or processor. Its Name is
// the mapping key it was declared under.
type Directive struct {
	Name     string         `yaml:"-"`
	Type     string         `yaml:"type" validate:"required"`
	Priority *int           `yaml:"priority"`
	Level    string         `yaml:"level" validate:"omitempty,loglevel"`
	Options  map[string]any `yaml:"options"`
}

// Directives keeps the declaration order of a YAML mapping.
type Directives []Directive

// UnmarshalYAML decodes a mapping of name to directive. A scalar value
// is shorthand for a directive with only a type.
func (d *Directives) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*d = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: expected a mapping of directives", node.Line)
	}
	out := make(Directives, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var dir Directive
		switch value.Kind {
		case yaml.ScalarNode:
			dir.Type = value.Value
		default:
			if err := value.Decode(&dir); err != nil {
				return errors.Wrapf(err, "directive %q", key.Value)
			}
		}
		dir.Name = key.Value
		out = append(out, dir)
	}
	*d = out
	return nil
}

// Names returns the directive names in declaration order.
func (d Directives) Names() []string {
	names := make([]string, len(d))
	for i, dir := range d {
		names[i] = dir.Name
	}
	return names
}

// MinLevel returns the directive level, or DebugLevel when none is set.
func (d Directive) MinLevel() core.Level {
	if d.Level == "" {
		return core.DebugLevel
	}
	return logger.ParseLevel(d.Level)
}

// Decode copies the directive options into out, a pointer to an options
// struct, and validates the result.
func (d Directive) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if err := dec.Decode(d.Options); err != nil {
		return errors.Wrapf(err, "%s options", d.Type)
	}
	if err := validate().Struct(out); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%s options: %s", d.Type, err)
	}
	return nil
}

// AsyncOptions are shared by the handlers that can write from a queue.
type AsyncOptions struct {
	Async        bool              `mapstructure:"async"`
	BufferSize   int               `mapstructure:"bufferSize" validate:"gte=0"`
	BlockTimeout time.Duration     `mapstructure:"blockTimeout" validate:"gte=0"`
	DrainTimeout time.Duration     `mapstructure:"drainTimeout" validate:"gte=0"`
	Overflow     map[string]string `mapstructure:"overflow" validate:"dive,keys,loglevel,endkeys,overflow"`
}

// OverflowPolicy converts Overflow into a per-level policy, or nil when unset.
func (o AsyncOptions) OverflowPolicy() map[core.Level]handler.OverflowPolicy {
	if len(o.Overflow) == 0 {
		return nil
	}
	policy := handler.DefaultLevelPolicy()
	for level, name := range o.Overflow {
		p, _ := handler.ParseOverflowPolicy(name)
		policy[logger.ParseLevel(level)] = p
	}
	return policy
}

// ConsoleOptions configure a console handler.
type ConsoleOptions struct {
	AsyncOptions  `mapstructure:",squash"`
	Writer       string `mapstructure:"writer" validate:"omitempty,oneof=stdout stderr"`
	Format       string `mapstructure:"format" validate:"omitempty,oneof=text json"`
}

// FileOptions configure a file handler. Relative filenames are resolved
// against the log directory.
type FileOptions struct {
	AsyncOptions   `mapstructure:",squash"`
	Filename       string        `mapstructure:"filename" validate:"required"`
	Format         string        `mapstructure:"format" validate:"omitempty,oneof=text json"`
	MaxSize        int64         `mapstructure:"maxSize" validate:"gte=0"`
	MaxAge         time.Duration `mapstructure:"maxAge" validate:"gte=0"`
	MaxBackups     int           `mapstructure:"maxBackups" validate:"gte=0"`
	RotateInterval time.Duration `mapstructure:"rotateInterval" validate:"gte=0"`
}

// ZapOptions configure a zap bridge handler.
type ZapOptions struct {
	Encoding    string `mapstructure:"encoding" validate:"omitempty,oneof=json console"`
	Output      string `mapstructure:"output"`
	Development bool   `mapstructure:"development"`
}

// StaticOptions configure a static fields processor.
type StaticOptions struct {
	Fields map[string]string `mapstructure:"fields" validate:"required,min=1"`
}
