package config

import (
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "NLOG_"

type envOverrides struct {
	Name             string `env:"NAME"`
	LogDir           string `env:"LOG_DIR"`
	Level            string `env:"LEVEL"`
	ReportBaseURL    string `env:"REPORT_BASE_URL"`
	RegisterFallback string `env:"REGISTER_FALLBACK"`
}

// applyEnv overrides cfg with the NLOG_* variables that are set.
// A nil environ reads the process environment.
func applyEnv(cfg *Config, environ map[string]string) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return errors.Wrap(err, "parse environment")
	}

	if o.Name != "" {
		cfg.Name = o.Name
	}
	if o.LogDir != "" {
		cfg.LogDir = o.LogDir
	}
	if o.Level != "" {
		cfg.Level = o.Level
	}
	if o.ReportBaseURL != "" {
		cfg.ReportBaseURL = o.ReportBaseURL
	}
	if o.RegisterFallback != "" {
		v, err := strconv.ParseBool(o.RegisterFallback)
		if err != nil {
			return errors.Wrapf(err, "%sREGISTER_FALLBACK", EnvPrefix)
		}
		cfg.RegisterFallback = &v
	}
	return nil
}
