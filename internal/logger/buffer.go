package logger

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	logChanSize   = 1000
	logBufferSize = 500
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Caller  string    `json:"caller"` // Function name
	Time    time.Time `json:"time"`
}

// LogBuffer keeps the most recent log entries in memory so the debug
// endpoint can serve them. Writes go through a channel and a background
// worker, so logging never blocks a request handler.
type LogBuffer struct {
	mu      sync.RWMutex
	entries []LogEntry
	logChan chan LogEntry
}

// NewLogBuffer initializes the worker
func NewLogBuffer() *LogBuffer {
	buf := &LogBuffer{
		entries: make([]LogEntry, 0, logBufferSize),
		logChan: make(chan LogEntry, logChanSize),
	}

	// Start the background worker immediately
	go buf.processLogs()

	return buf
}

// AddLog is called by our Zap hook
func (b *LogBuffer) AddLog(entry LogEntry) {
	select {
	case b.logChan <- entry:
		// Log pushed to channel
	default:
		// Channel full: drop log to prevent blocking the API
		fmt.Println("Log buffer channel full! Dropping log:", entry.Message)
	}
}

func (b *LogBuffer) processLogs() {
	for entry := range b.logChan {
		b.mu.Lock()
		if len(b.entries) >= logBufferSize {
			// Drop the oldest entry
			b.entries = b.entries[1:]
		}
		b.entries = append(b.entries, entry)
		b.mu.Unlock()
	}
}

// Recent returns the buffered entries, newest last
func (b *LogBuffer) Recent() []LogEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]LogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

func levelName(l zapcore.Level) string {
	return l.CapitalString()
}
