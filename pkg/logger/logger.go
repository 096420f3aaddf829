package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global = zap.NewNop()

// Init builds the process-wide logger. Call once from the app init chain
// before anything logs.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: parse level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if asJSON {
		cfg.Encoding = "json"
	} else {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("logger.Init: build: %w", err)
	}

	global = l
	return nil
}

func L() *zap.Logger { return global }

// Logger carries pre-bound fields, mirroring zap's With.
type Logger struct {
	z *zap.Logger
}

func With(fields ...Field) *Logger {
	return &Logger{z: global.With(fields...)}
}

func (l *Logger) Debug(_ context.Context, msg string, fields ...Field) {
	l.z.Debug(msg, fields...)
}

func (l *Logger) Info(_ context.Context, msg string, fields ...Field) {
	l.z.Info(msg, fields...)
}

func (l *Logger) Warn(_ context.Context, msg string, fields ...Field) {
	l.z.Warn(msg, fields...)
}

func (l *Logger) Error(_ context.Context, msg string, fields ...Field) {
	l.z.Error(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	(&Logger{z: global}).Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	(&Logger{z: global}).Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	(&Logger{z: global}).Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	(&Logger{z: global}).Error(ctx, msg, fields...)
}

// Sync flushes buffered entries. Safe to call on shutdown even when Init
// was never called.
func Sync() error { return global.Sync() }
