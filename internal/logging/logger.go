package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fadedpez/tucoblackjack/internal/types"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var charmLevels = map[Level]log.Level{
	DEBUG: log.DebugLevel,
	INFO:  log.InfoLevel,
	WARN:  log.WarnLevel,
	ERROR: log.ErrorLevel,
}

// String returns the level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name (case-insensitive) into a Level
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(levelName, name) {
			return level, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", name)
}

// Logger represents our custom logger
type Logger struct {
	*log.Logger
	level Level
}

// NewLogger creates a new logger instance writing to stderr
func NewLogger(level Level) *Logger {
	return NewLoggerWithWriter(os.Stderr, level)
}

// Format selects how log lines are encoded
type Format int

const (
	// FormatText is the human-readable colored format
	FormatText Format = iota
	// FormatJSON writes one JSON object per line
	FormatJSON
)

// NewLoggerWithWriter creates a text logger writing to w
func NewLoggerWithWriter(w io.Writer, level Level) *Logger {
	return NewLoggerWithFormat(w, level, FormatText)
}

// NewLoggerWithFormat creates a logger writing to w in the given format
func NewLoggerWithFormat(w io.Writer, level Level, format Format) *Logger {
	formatter := log.TextFormatter
	if format == FormatJSON {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		CallerOffset:    1,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Level:           charmLevels[level],
		Formatter:       formatter,
	})
	return &Logger{
		Logger: logger,
		level:  level,
	}
}

// Level returns the minimum level this logger emits
func (l *Logger) Level() Level {
	return l.level
}

// With returns a child logger carrying the given key/value pairs
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.With(keyvals...),
		level:  l.level,
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.Logger.Debugf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.Logger.Infof(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.Logger.Warnf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.Logger.Errorf(format, v...)
}

// LogError logs a GameError with appropriate context
func (l *Logger) LogError(err error) {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		keyvals := []interface{}{"code", gameErr.Code}
		if gameErr.Err != nil {
			keyvals = append(keyvals, "cause", gameErr.Err)
		}
		l.Logger.Error(gameErr.Message, keyvals...)
		return
	}
	l.Error("Unexpected error: %v", err)
}

// Default logger instance
var Default = NewLogger(INFO)

// Discard returns a logger that drops everything, used by tests
func Discard() *Logger {
	return NewLoggerWithWriter(io.Discard, ERROR)
}
