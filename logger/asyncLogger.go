package logger

import (
	"fmt"
	"sync"

	log_model "museum-booking/models/log"
	"museum-booking/types"

	"gorm.io/gorm"
)

// AsyncLogger persists request logs off the request path.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100), // Buffered channel to hold log entries
		done:    make(chan struct{}),
	}
}

// ProcessLog drains the channel until Close is called.
func (logger *AsyncLogger) ProcessLog() {
	defer close(logger.done)
	Info("Starting asynchronous request logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.RequestLog{
			Method:          logEntry.Method,
			URL:             logEntry.URL,
			RequestBody:     logEntry.RequestBody,
			ResponseBody:    logEntry.ResponseBody,
			RequestHeaders:  logEntry.RequestHeaders,
			ResponseHeaders: logEntry.ResponseHeaders,
			StatusCode:      logEntry.StatusCode,
			LatencyMs:       logEntry.LatencyMs,
			CreatedAt:       logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			Error(fmt.Sprintf("Failed to insert request log %s %s", dbLog.Method, dbLog.URL), err)
		}
	}
}

// Log pushes a log entry into the channel. Entries arriving after Close are
// dropped.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	logger.mu.RLock()
	defer logger.mu.RUnlock()

	if logger.closed {
		Warning(fmt.Sprintf("Request logger closed, dropping log for %s %s", entry.Method, entry.URL))
		return
	}
	logger.channel <- entry
}

// Close stops accepting entries and waits for the queued ones to be written.
func (logger *AsyncLogger) Close() {
	logger.mu.Lock()
	if !logger.closed {
		logger.closed = true
		close(logger.channel)
	}
	logger.mu.Unlock()

	<-logger.done
}
