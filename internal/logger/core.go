package logger

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// BufferCore is a custom Zap Core that intercepts logs
type BufferCore struct {
	zapcore.Core
	buffer *LogBuffer
}

// NewBufferCore wraps an existing core (like console logger) and adds buffering
func NewBufferCore(baseCore zapcore.Core, buffer *LogBuffer) zapcore.Core {
	return &BufferCore{
		Core:   baseCore,
		buffer: buffer,
	}
}

// Write is called for every log entry
func (c *BufferCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	// entry.Caller.Function is populated when Zap is configured with AddCaller()
	c.buffer.AddLog(LogEntry{
		Level:   levelName(entry.Level),
		Message: entry.Message,
		Caller:  entry.Caller.Function,
		Time:    entry.Time.UTC(),
	})

	// Call the underlying core (so it still prints to Console/File)
	return c.Core.Write(entry, fields)
}

// Check decides if we should log this level
func (c *BufferCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Sync flushes the underlying core; the buffer itself has nothing to flush
func (c *BufferCore) Sync() error {
	// Give the async worker a moment to drain on shutdown
	time.Sleep(10 * time.Millisecond)
	return c.Core.Sync()
}
