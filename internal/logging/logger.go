// Package logging builds the zap logger used across the optimizer.
//
// Diagnostics always go to stderr so stdout stays free for the report (or, in
// mcp mode, for the protocol). An optional file sink receives JSON entries and
// is rotated by size through lumberjack.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ironsheep/image-optimizer/internal/config"
)

const timeFormat = "2006-01-02 15:04:05"

// New creates a logger writing to stderr (and cfg.File when set).
// The returned cleanup flushes buffered entries and closes the file sink.
func New(cfg config.LogConfig) (*zap.Logger, func(), error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with the terminal output replaced by w.
func NewWithWriter(cfg config.LogConfig, w io.Writer) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(cfg.Format), zapcore.Lock(zapcore.AddSync(w)), level),
	}

	var file *lumberjack.Logger
	if cfg.File != "" {
		file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			LocalTime:  true,
		}
		cores = append(cores, zapcore.NewCore(encoder("json"), zapcore.AddSync(file), level))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	cleanup := func() {
		// Sync on a terminal returns EINVAL on some platforms; nothing to act on.
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return logger, cleanup, nil
}

func encoder(format string) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeFormat),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	if format == "json" {
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncodeDuration = zapcore.MillisDurationEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	return zapcore.NewConsoleEncoder(cfg)
}

// Errors expands an accumulated multierr value into one zap field per error.
func Errors(key string, err error) []zap.Field {
	errs := multierr.Errors(err)
	fields := make([]zap.Field, 0, len(errs))
	for i, e := range errs {
		fields = append(fields, zap.NamedError(fmt.Sprintf("%s[%d]", key, i), e))
	}
	return fields
}

// Elapsed is a duration field measured from start.
func Elapsed(start time.Time) zap.Field {
	return zap.Duration("elapsed", time.Since(start))
}
