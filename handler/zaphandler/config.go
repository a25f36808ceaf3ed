package zaphandler

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes a zap core built from plain values.
type Config struct {
	// Encoding is "json" (default) or "console"
	Encoding string
	// Output is "stdout", "stderr" (default) or a file path
	Output string
	// Development switches to zap's development encoder settings
	Development bool
}

// Build creates a handler with its own zap core. Level filtering is left to
// the nlogwire logger, so the core accepts every level.
func Build(cfg Config) (*Handler, error) {
	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Development {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "time"
	encCfg.NameKey = "channel"

	var enc zapcore.Encoder
	switch cfg.Encoding {
	case "", "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("zaphandler: unknown encoding %q", cfg.Encoding)
	}

	var (
		ws     zapcore.WriteSyncer
		closer *os.File
	)
	switch cfg.Output {
	case "", "stderr":
		ws = zapcore.Lock(os.Stderr)
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		ws = zapcore.Lock(f)
		closer = f
	}

	h := NewFromCore(zapcore.NewCore(enc, ws, zapcore.DebugLevel))
	if closer != nil {
		h.closer = closer
	}
	return h, nil
}
