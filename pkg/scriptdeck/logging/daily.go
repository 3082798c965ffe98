package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DailyWriter implements io.WriteCloser backed by one append-mode file per
// calendar day, named <prefix>_YYYYMMDD.log. The file for the current day is
// created on construction; a write that crosses midnight reopens the writer
// against the new day's file. It is safe for concurrent use.
type DailyWriter struct {
	dir    string
	prefix string

	mu     sync.Mutex
	file   *os.File
	opened time.Time
}

// NewDailyWriter creates a daily writer in dir, creating dir if needed.
func NewDailyWriter(dir, prefix string) (*DailyWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	w := &DailyWriter{dir: dir, prefix: prefix}
	if err := w.openFile(time.Now()); err != nil {
		return nil, err
	}

	return w, nil
}

// Path returns the path of the log file currently being written.
func (w *DailyWriter) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fileName(w.opened)
}

// Write appends data to the current day's log file, rolling over to a new
// file when the calendar day has changed since the file was opened.
func (w *DailyWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if sameDay := now.YearDay() == w.opened.YearDay() && now.Year() == w.opened.Year(); !sameDay {
		if err := w.file.Close(); err != nil {
			return 0, fmt.Errorf("closing previous day's log file: %w", err)
		}
		if err := w.openFile(now); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to log file: %w", err)
	}
	return n, nil
}

// Close flushes and closes the log file.
func (w *DailyWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("syncing log file: %w", err)
	}

	err := w.file.Close()
	w.file = nil
	return err
}

// openFile opens or creates the log file for the given day.
func (w *DailyWriter) openFile(day time.Time) error {
	file, err := os.OpenFile(w.fileName(day), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	w.file = file
	w.opened = day
	return nil
}

// fileName returns the log file path for the given day.
func (w *DailyWriter) fileName(day time.Time) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s_%s.log", w.prefix, day.Format("20060102")))
}
