// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Context
// -------
// Every record is JSON on stdout.  When LOG_DIR is set the same records are
// also written to `<dir>/YYYY-MM-DD.log`, rotated, compressed, and pruned by
// Lumberjack.  When running in an interactive TTY the stdout core switches to
// the colorless console encoder so local output stays readable.
//
// Each record carries `service` and `environment` so aggregated logs can be
// filtered per deployment.
//
// Usage
// -----
//
//	log, err := logger.New(cfg.Log(), runningInTTY())
//	if err != nil { … }
//	log.Infow("server listening", "addr", addr)
//
// Notes
// -----
// • Zap core uses ISO-8601 timestamps, lowercase levels, and durations
//   rendered as strings ("12.5ms").
// • The level comes from LOG_LEVEL, already validated by internal/config.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yanizio/apidemo/internal/config"
)

// ServiceName is attached to every record.
const ServiceName = "apidemo"

// New returns a *zap.SugaredLogger configured from cfg.  When tee is true the
// stdout core uses the console encoder instead of JSON.  The logger is
// installed as the process-wide default via zap.ReplaceGlobals.
func New(cfg config.LogConfig, tee bool) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	stdoutEnc := zapcore.NewJSONEncoder(encoderConfig())
	if tee {
		stdoutEnc = zapcore.NewConsoleEncoder(encoderConfig())
	}
	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEnc, zapcore.Lock(os.Stdout), level),
	}

	errOut := zapcore.Lock(os.Stderr)
	if cfg.Dir != "" {
		sink, err := fileSink(cfg.Dir)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), sink, level))
		errOut = sink
	}

	z := build(zapcore.NewTee(cores...), cfg.Environment, zap.ErrorOutput(errOut))

	// Make this the global logger so zap.S() works everywhere after startup.
	zap.ReplaceGlobals(z.Desugar())

	z.Infow("logger online", "level", level.String(), "dir", cfg.Dir, "tee", tee)
	return z, nil
}

// build wraps core with the service fields shared by every record.
func build(core zapcore.Core, env string, opts ...zap.Option) *zap.SugaredLogger {
	opts = append(opts,
		zap.AddCaller(),
		zap.Fields(
			zap.String("service", ServiceName),
			zap.String("environment", env),
		),
	)
	return zap.New(core, opts...).Sugar()
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// fileSink returns a rotating writer for today's file under dir.
func fileSink(dir string) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, time.Now().Format("2006-01-02")+".log"),
		MaxSize:    50, // MB
		MaxBackups: 7,  // keep last seven files
		MaxAge:     14, // days
		Compress:   true,
	}), nil
}
