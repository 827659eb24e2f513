package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelEnv is consulted when Options.Level is empty.
const LevelEnv = "LOG_LEVEL"

// Options configures a logging Service.
type Options struct {
	// Level is one of DEBUG, INFO, WARN, ERROR (any case).
	Level string
	// File enables an additional JSON log file rotated by lumberjack.
	File string
	// Console receives human readable output. Defaults to stderr.
	Console io.Writer
}

type Service struct {
	logger *zap.Logger
}

// ParseLevel maps a level name to a zap level. Unknown or empty names fall
// back to INFO.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New creates a logging service. The returned func flushes buffered entries
// and must be called before exit.
func New(opts Options) (*Service, func(), error) {
	levelName := opts.Level
	if levelName == "" {
		levelName = os.Getenv(LevelEnv)
	}
	level := ParseLevel(levelName)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(console), level),
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %v", err)
		}
		// Setup file sink with rotation
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    2, // megabytes
			MaxBackups: 5,
			MaxAge:     15, // days
			Compress:   true,
		})
		cfg := zap.NewProductionConfig()
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg.EncoderConfig), fileWriter, level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Service{logger: logger}, func() {
		_ = logger.Sync()
	}, nil
}

// GetLogger returns the zap logger instance
func (s *Service) GetLogger() *zap.Logger {
	return s.logger
}

// Close flushes any buffered log entries
func (s *Service) Close() error {
	if s.logger != nil {
		return s.logger.Sync()
	}
	return nil
}
