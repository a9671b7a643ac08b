package logging

import "github.com/vvka-141/assetref/pkg/assetref"

// NullLogger is a no-op logger that discards all log messages.
// Safe for concurrent use by multiple goroutines.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose is a no-op.
func (l *NullLogger) Verbose(format string, args ...interface{}) {}

// Info is a no-op.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Error is a no-op.
func (l *NullLogger) Error(format string, args ...interface{}) {}

var (
	_ assetref.Logger = (*NullLogger)(nil)
	_ assetref.Logger = (*ConsoleLogger)(nil)
	_ assetref.Logger = (*RecordingLogger)(nil)
)
