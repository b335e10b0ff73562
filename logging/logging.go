// Package logging builds the zap loggers used across the game
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultDir is where debug logs are written, relative to the working directory
	DefaultDir = "logs"
	// FileName is the debug log file inside the log directory
	FileName = "boxpusher.log"
)

// New builds a logger at level writing to output.
// Empty output means stderr with JSON encoding; a file path uses console encoding
func New(level, output string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	encoding := "json"
	paths := []string{"stderr"}
	if output != "" {
		encoding = "console"
		paths = []string{output}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Development:       false,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       paths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}
	return config.Build()
}

// Setup returns a file logger under dir when debug is set, otherwise a no-op logger.
// The terminal owns stdout and stderr while playing, so logs never go there
func Setup(debug bool, dir, level string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}
	return New(level, filepath.Join(dir, FileName))
}
