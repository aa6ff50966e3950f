// Package logging builds the zap loggers used by the two binaries. The
// console writes to a file because stderr is unusable while the alternate
// screen is active; the dev API server logs JSON to stdout.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFile returns a JSON logger appending to the given path. An empty path
// returns a no-op logger so the console can run with logging disabled.
func NewFile(path, level string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if err := setLevel(&cfg, level); err != nil {
		return nil, err
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return logger, nil
}

// NewStdout returns a JSON logger writing to stdout, for the dev API server.
func NewStdout(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	if err := setLevel(&cfg, level); err != nil {
		return nil, err
	}
	return cfg.Build()
}

func setLevel(cfg *zap.Config, level string) error {
	if level == "" {
		return nil
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	return nil
}
