package calculation

import (
	"fmt"
	"sync"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// MemoryLogger keeps formatted messages in memory. Safe for concurrent use;
// scenario runs log from several goroutines.
type MemoryLogger struct {
	mu      sync.Mutex
	entries []string
}

func (m *MemoryLogger) add(level, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, level+" "+fmt.Sprintf(format, args...))
}

func (m *MemoryLogger) Debugf(format string, args ...any) { m.add("DEBUG", format, args...) }
func (m *MemoryLogger) Infof(format string, args ...any)  { m.add("INFO", format, args...) }
func (m *MemoryLogger) Warnf(format string, args ...any)  { m.add("WARN", format, args...) }
func (m *MemoryLogger) Errorf(format string, args ...any) { m.add("ERROR", format, args...) }

// Entries returns a copy of the recorded messages, each prefixed by level.
func (m *MemoryLogger) Entries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.entries...)
}
