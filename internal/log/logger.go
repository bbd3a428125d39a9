// Package log provides structured event logging.
// Events are written as one JSON object per line through zerolog.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Event type constants.
const (
	EventSessionStarted    = "session_started"
	EventMenuChoice        = "menu_choice"
	EventMenuInvalidChoice = "menu_invalid_choice"
	EventActivityStarted   = "activity_started"
	EventActivityState     = "activity_state"
	EventPromptSelected    = "prompt_selected"
	EventItemsListed       = "items_listed"
	EventActivityCompleted = "activity_completed"
	EventActivityFailed    = "activity_failed"
	EventSessionEnded      = "session_ended"
)

// LogEvent represents a single structured event written to the log.
// Empty fields are left out of the JSON line.
type LogEvent struct {
	Event    string
	RunID    string
	Activity string
	State    string
	Choice   string
	Prompt   string
	Reason   string
	Duration int // seconds requested by the user
	Items    int
	Error    string
}

// Logger writes events to a zerolog sink.
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New creates a Logger writing JSON lines to w.
func New(w io.Writer) *Logger {
	return &Logger{
		zl: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// NewLogger creates a Logger that appends to the file at path, creating
// parent directories as needed. An empty path returns Nop().
// Does not truncate an existing log file.
func NewLogger(path string) (*Logger, error) {
	if path == "" {
		return Nop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := New(f)
	l.closer = f
	return l, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Append writes a single LogEvent. Events carrying an Error are logged at
// error level, everything else at info.
func (l *Logger) Append(event LogEvent) {
	e := l.zl.Info()
	if event.Error != "" {
		e = l.zl.Error().Str("error", event.Error)
	}

	e = e.Str("event", event.Event)
	if event.RunID != "" {
		e = e.Str("run", event.RunID)
	}
	if event.Activity != "" {
		e = e.Str("activity", event.Activity)
	}
	if event.State != "" {
		e = e.Str("state", event.State)
	}
	if event.Choice != "" {
		e = e.Str("choice", event.Choice)
	}
	if event.Prompt != "" {
		e = e.Str("prompt", event.Prompt)
	}
	if event.Reason != "" {
		e = e.Str("reason", event.Reason)
	}
	if event.Duration != 0 {
		e = e.Int("duration_s", event.Duration)
	}
	if event.Items != 0 {
		e = e.Int("items", event.Items)
	}
	e.Send()
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
