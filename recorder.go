package fxconvert

import (
	"fmt"
	"log"
	"os"
	"time"
)

// TimestampFormat prefixes every audit line.
const TimestampFormat = "2006-01-02 15:04:05"

// Recorder is the append-only audit sink. Record never fails: a broken sink
// degrades to a no-op so an audit problem can never take an action down.
type Recorder interface {
	Record(message string)
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) Record(string) {}

// FileRecorder appends timestamped audit lines to a log file, one line per
// event, flushed immediately.
type FileRecorder struct {
	f *os.File
}

// OpenFileRecorder opens (creating if needed) the audit log in append mode.
// On failure it returns a recorder whose writes are no-ops, so callers can
// use it unconditionally.
func OpenFileRecorder(filename string) *FileRecorder {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("cannot open audit log %q (recording disabled): %v", filename, err)
		return &FileRecorder{}
	}
	r := &FileRecorder{f: f}
	r.Record("=== New session started ===")
	return r
}

// Record appends one "[YYYY-MM-DD HH:MM:SS] message" line.
func (r *FileRecorder) Record(message string) {
	if r == nil || r.f == nil {
		return
	}
	line := fmt.Sprintf("[%s] %s\n", time.Now().Format(TimestampFormat), message)
	if _, err := r.f.WriteString(line); err != nil {
		log.Printf("audit write err (ignored): %v", err)
	}
}

// Close records the end of the session and releases the file. Safe to call
// on a recorder that never opened.
func (r *FileRecorder) Close() {
	if r == nil || r.f == nil {
		return
	}
	r.Record("Session ended.")
	r.f.Close()
	r.f = nil
}
