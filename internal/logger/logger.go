package logger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	instance *Logger
	once     sync.Once
)

const (
	logName   = "namewheel.log"
	eventName = "events.log"
)

// Logger writes to files so it never disturbs the terminal the TUI draws on.
// Diagnostics go to namewheel.log, wheel events to events.log as JSON lines.
type Logger struct {
	mu     sync.Mutex
	diag   *log.Logger
	events io.Writer
	files  []*os.File
}

type event struct {
	Time  time.Time   `json:"time"`
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Init initializes the global logger, creating dir if needed
func Init(dir string) error {
	var err error
	once.Do(func() {
		instance, err = open(dir)
	})
	return err
}

func open(dir string) (*Logger, error) {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	l := &Logger{}
	for _, name := range []string{logName, eventName} {
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			l.close()
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		l.files = append(l.files, f)
	}
	l.diag = log.New(l.files[0], "", log.LstdFlags|log.Lshortfile)
	l.events = l.files[1]
	return l, nil
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	logf("INFO", format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	logf("ERROR", format, args...)
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	logf("DEBUG", format, args...)
}

// logf is the shared body of the level helpers; the call depth points
// Lshortfile at whoever called Info, Error or Debug.
func logf(level, format string, args ...interface{}) {
	if instance == nil {
		return
	}
	instance.mu.Lock()
	defer instance.mu.Unlock()
	instance.diag.Output(3, "["+level+"] "+fmt.Sprintf(format, args...))
}

// Event records a wheel lifecycle event (spin started, winner, list edits)
func Event(name string, data interface{}) {
	if instance == nil {
		return
	}
	line, err := json.Marshal(event{Time: time.Now(), Event: name, Data: data})
	if err != nil {
		Error("failed to encode event %s: %v", name, err)
		return
	}

	instance.mu.Lock()
	defer instance.mu.Unlock()
	instance.events.Write(append(line, '\n'))
}

func (l *Logger) close() error {
	var errs []error
	for _, f := range l.files {
		errs = append(errs, f.Close())
	}
	l.files = nil
	return errors.Join(errs...)
}

// Close closes both log files
func Close() error {
	if instance == nil {
		return nil
	}
	instance.mu.Lock()
	defer instance.mu.Unlock()
	return instance.close()
}

// SetOutput redirects both logs (useful for testing)
func SetOutput(w io.Writer) {
	if instance == nil {
		return
	}
	instance.mu.Lock()
	defer instance.mu.Unlock()
	instance.diag.SetOutput(w)
	instance.events = w
}
