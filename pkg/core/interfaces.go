package core

import "fmt"

// Logger interface for volume property logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// NopLogger implements Logger by discarding everything
type NopLogger struct{}

func (nl *NopLogger) Printf(format string, args ...interface{}) {}

// NewNopLogger creates a logger that discards all output
func NewNopLogger() Logger {
	return &NopLogger{}
}
