// Package logger builds the zap logger used by the game.
package logger

import (
	"fmt"
	"os"
	"strings"

	cfg "github.com/automoto/devour/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment overrides, applied on top of the flags
const (
	EnvLevel  = "DEVOUR_LOG_LEVEL"
	EnvFormat = "DEVOUR_LOG_FORMAT"
)

// New creates a zap logger from c. Unknown levels fall back to info.
func New(c cfg.LogConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if c.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(c.Level))

	if c.Format == "console" {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	if c.Development {
		zapConfig.Sampling = nil
	} else {
		zapConfig.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}

	l, err := zapConfig.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

// ParseLevel converts a level name, returning info for anything unknown.
func ParseLevel(s string) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// FromEnv returns c with the environment overrides applied.
func FromEnv(c cfg.LogConfig) cfg.LogConfig {
	if level := os.Getenv(EnvLevel); level != "" {
		c.Level = level
	}
	if format := os.Getenv(EnvFormat); format != "" {
		c.Format = format
	}
	return c
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
