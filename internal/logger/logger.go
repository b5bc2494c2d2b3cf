package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the service logger. Level is one of "debug", "info", "warn",
// "error" (anything else falls back to info). Format "console" uses the
// development encoder; everything else is production JSON on stdout.
func New(level, format, service string) (*zap.Logger, error) {
	var zapLevel zapcore.Level

	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	var conf zap.Config

	if format == "console" {
		conf = zap.NewDevelopmentConfig()
		conf.Level = zap.NewAtomicLevelAt(zapLevel)
	} else {
		conf = zap.NewProductionConfig()
		conf.Level = zap.NewAtomicLevelAt(zapLevel)
		conf.EncoderConfig.TimeKey = "timestamp"
		conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		conf.OutputPaths = []string{"stdout"}
		conf.ErrorOutputPaths = []string{"stderr"}
	}

	l, err := conf.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	if service != "" {
		l = l.With(zap.String("service", service))
	}

	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		l = l.With(zap.String("hostname", hostname))
	}

	return l, nil
}
