// Package logger provides logging functionality for the WTM application.
package logger

import (
	"fmt"
	"os"
	"sync"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})

	// Errorf logs a formatted message to stderr.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that suppresses regular output but still reports errors.
type noopLogger struct {
	mu sync.Mutex
}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Errorf writes a formatted message to stderr even in quiet mode.
func (n *noopLogger) Errorf(format string, args ...interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// defaultLogger is a thread-safe logger that writes to stdout.
type defaultLogger struct {
	mu sync.Mutex
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() Logger {
	return &defaultLogger{}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf(format+"\n", args...)
}

// Errorf writes a formatted message to stderr with thread safety.
func (d *defaultLogger) Errorf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// verboseLogger prefixes every message so command tracing is distinguishable
// from regular output.
type verboseLogger struct {
	mu sync.Mutex
}

// NewVerboseLogger creates a new verbose logger.
func NewVerboseLogger() Logger {
	return &verboseLogger{}
}

// Logf writes a formatted message to stdout with a verbose prefix.
func (v *verboseLogger) Logf(format string, args ...interface{}) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Printf("[wtm] "+format+"\n", args...)
}

// Errorf writes a formatted message to stderr with a verbose prefix.
func (v *verboseLogger) Errorf(format string, args ...interface{}) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(os.Stderr, "[wtm] "+format+"\n", args...)
}
