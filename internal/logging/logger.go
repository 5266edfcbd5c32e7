// Package logging builds the zap loggers used by the gridpath command.
// Library packages take a *zap.Logger option and default to zap.NewNop.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates the application logger at the named level
// (debug, info, warn, error). It writes to stderr so stdout carries only
// results.
func New(level string) (*zap.Logger, error) {
	return NewWriter(os.Stderr, level)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		lvl,
	)), nil
}
