// Package logging builds the zap logger used by the formctl binary.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/goliatone/go-formctl/internal/config"
)

// Option adjusts logger construction.
type Option func(*options)

type options struct {
	consoleFloor zapcore.Level
	stderr       zapcore.WriteSyncer
}

// WithConsoleFloor keeps console output at or above floor while the file
// core still follows the configured level. Interactive commands use it so
// info lines do not interleave with prompts.
func WithConsoleFloor(floor zapcore.Level) Option {
	return func(o *options) {
		o.consoleFloor = floor
	}
}

// WithConsoleOutput replaces stderr as the console destination.
func WithConsoleOutput(w zapcore.WriteSyncer) Option {
	return func(o *options) {
		if w != nil {
			o.stderr = w
		}
	}
}

// New builds a logger writing to stderr and, when cfg.File is set, to a
// rotating JSON file.
func New(cfg config.LogConfig, opts ...Option) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	o := options{consoleFloor: zapcore.DebugLevel, stderr: zapcore.Lock(os.Stderr)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	consoleLevel := level
	if o.consoleFloor > consoleLevel {
		consoleLevel = o.consoleFloor
	}

	var consoleEncoder zapcore.Encoder
	if cfg.Development {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, o.stderr, consoleLevel),
	}
	if cfg.File != "" {
		fileSyncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			fileSyncer,
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	), nil
}
