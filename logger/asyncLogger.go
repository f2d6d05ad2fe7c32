package logger

import (
	"sync"

	log_model "logistics-requests/models/log"
	"logistics-requests/types"

	"gorm.io/gorm"
)

const asyncBufferSize = 100

// AsyncLogger persists API audit entries off the request path.
type AsyncLogger struct {
	save    func(*log_model.Log) error
	channel chan types.LogEntry
	done    chan struct{}
	once    sync.Once
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return NewAsyncLoggerWithSink(func(entry *log_model.Log) error {
		return db.Create(entry).Error
	})
}

// NewAsyncLoggerWithSink uses save instead of a database insert.
func NewAsyncLoggerWithSink(save func(*log_model.Log) error) *AsyncLogger {
	return &AsyncLogger{
		save:    save,
		channel: make(chan types.LogEntry, asyncBufferSize),
		done:    make(chan struct{}),
	}
}

// ProcessLog drains the queue until Close is called.
func (l *AsyncLogger) ProcessLog() {
	defer close(l.done)
	Debug("Starting asynchronous audit logger")

	for entry := range l.channel {
		dbLog := log_model.Log{
			RequestID:   entry.RequestID,
			Method:      entry.Method,
			URL:         entry.URL,
			UserID:      entry.UserID,
			IP:          entry.IP,
			RequestBody: entry.RequestBody,
			StatusCode:  entry.StatusCode,
			DurationMs:  entry.DurationMs,
			CreatedAt:   entry.CreatedAt,
		}
		if err := l.save(&dbLog); err != nil {
			Error("Failed to insert audit log entry", err)
		}
	}
}

// Log queues an entry. A full queue drops the entry rather than blocking the request.
func (l *AsyncLogger) Log(entry types.LogEntry) bool {
	select {
	case l.channel <- entry:
		return true
	default:
		Warning("Audit log queue is full, dropping " + entry.Method + " " + entry.URL)
		return false
	}
}

// Close stops accepting entries and waits for the queue to drain.
// It must only be called after ProcessLog has been started.
func (l *AsyncLogger) Close() {
	l.once.Do(func() {
		close(l.channel)
	})
	<-l.done
}
