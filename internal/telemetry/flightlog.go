package telemetry

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FlightLog stores lines of text in memory and appends them to a file on
// disk. Disk writes are best effort; a missing or unwritable file never
// fails the caller.
type FlightLog struct {
	mu    sync.Mutex
	path  string
	lines []string
}

// NewFlightLog returns a FlightLog writing to path and ensures the parent
// directory exists.
func NewFlightLog(path string) *FlightLog {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &FlightLog{path: path, lines: make([]string, 0)}
}

// Log appends a timestamped line to memory and to the file on disk.
func (l *FlightLog) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *FlightLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
