package wire

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlogwire/config"
	"github.com/philipp01105/nlogwire/handler/zaphandler"
	"github.com/philipp01105/nlogwire/logger"
)

type discardSyncer struct{}

func (discardSyncer) Write(p []byte) (int, error) { return len(p), nil }
func (discardSyncer) Sync() error                 { return nil }

func buildForBench(b *testing.B, doc string) *Container {
	b.Helper()
	cfg, err := config.Parse([]byte("logDir: "+b.TempDir()+"\n"+doc), config.WithEnvironment(map[string]string{}))
	if err != nil {
		b.Fatal(err)
	}
	c, err := Build(cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = c.Close() })
	return c
}

func BenchmarkPipeline_NullHandler(b *testing.B) {
	c := buildForBench(b, `handlers: {a: "null"}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Logger.Info("request handled", logger.Int("status", 200))
	}
}

func BenchmarkPipeline_NoBuiltinRouting(b *testing.B) {
	c := buildForBench(b, "usePriorityProcessor: false\nhandlers: {a: \"null\"}\n")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Logger.Info("request handled", logger.Int("status", 200))
	}
}

func BenchmarkPipeline_Parallel(b *testing.B) {
	c := buildForBench(b, `handlers: {a: "null", b: "null"}`)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Logger.Info("request handled", logger.String("path", "/cart"))
		}
	})
}

func newBenchZapCore() zapcore.Core {
	return zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		discardSyncer{},
		zapcore.DebugLevel,
	)
}

// BenchmarkZap compares writing through the zap bridge with using zap directly.
func BenchmarkZap(b *testing.B) {
	b.Run("direct", func(b *testing.B) {
		log := zap.New(newBenchZapCore())
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			log.Info("request handled", zap.Int("status", 200))
		}
	})

	b.Run("bridge", func(b *testing.B) {
		log := logger.NewBuilder("app").
			PushHandler(zaphandler.NewFromCore(newBenchZapCore())).
			Build()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			log.Info("request handled", logger.Int("status", 200))
		}
	})
}
