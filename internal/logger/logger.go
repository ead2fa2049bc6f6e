package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger = zap.NewNop()

func Init() {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		// zap cannot fail with a static production config; guard anyway
		os.Stderr.WriteString("logger init failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	log = l
	log.Info("logger initialized")
}

func Info(msg string, fields map[string]any) {
	log.Info(msg, zapFields(fields)...)
}

func Warn(msg string, fields map[string]any) {
	log.Warn(msg, zapFields(fields)...)
}

func Error(msg string, fields map[string]any) {
	log.Error(msg, zapFields(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	log.Fatal(msg, zapFields(fields)...)
}

func zapFields(fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
