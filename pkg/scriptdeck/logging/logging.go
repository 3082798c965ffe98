// Package logging provides the scriptdeck session log: one UTF-8 text file
// per calendar day, append-only, line format
//
//	<timestamp> - <LEVEL> - <message>
//
// plus an optional console sink on stderr for diagnostics.
//
// Basic usage:
//
//	cfg := logging.Config{Level: "info", Dir: "/path/to/logs"}
//	if err := logging.Init(cfg); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Close()
//
//	logger := logging.Get("viewer")
//	logger.Info("script viewed", "path", path)
package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Level represents a logging level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// Tag returns the level token written to the log file.
func (l Level) Tag() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toCharmLevel converts our Level to a charmbracelet/log level.
func (l Level) toCharmLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarning:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// timestampFormat matches the session log's timestamp layout.
const timestampFormat = "2006-01-02 15:04:05"

// Config configures the logging system.
type Config struct {
	// Level is the minimum level written to the log file.
	Level string

	// Dir is the directory holding the daily log files.
	Dir string

	// FilePrefix names the daily files (<prefix>_YYYYMMDD.log).
	FilePrefix string

	// ConsoleLevel enables stderr output at the given level.
	// Empty disables console output (default).
	ConsoleLevel string
}

// Logger writes to the daily session log and, when enabled, to stderr.
type Logger struct {
	component string
	console   *log.Logger // nil unless console output is enabled
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args...) }

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) { l.log(LevelInfo, msg, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) { l.log(LevelWarning, msg, args...) }

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) { l.log(LevelError, msg, args...) }

// log writes the entry to the file sink and mirrors it to the console sink.
func (l *Logger) log(level Level, msg string, args ...any) {
	globalState.mu.RLock()
	writer := globalState.writer
	minLevel := globalState.level
	globalState.mu.RUnlock()

	if writer != nil && level >= minLevel {
		line := fmt.Sprintf("%s - %s - %s\n",
			time.Now().Format(timestampFormat), level.Tag(), formatMessage(msg, args))
		_, _ = writer.Write([]byte(line))
	}

	if l.console != nil {
		switch level {
		case LevelDebug:
			l.console.Debug(msg, args...)
		case LevelInfo:
			l.console.Info(msg, args...)
		case LevelWarning:
			l.console.Warn(msg, args...)
		case LevelError:
			l.console.Error(msg, args...)
		}
	}
}

// formatMessage appends structured key=value pairs to the message.
func formatMessage(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	if len(args)%2 != 0 {
		fmt.Fprintf(&b, " %v", args[len(args)-1])
	}
	return b.String()
}

// state holds the global logging state.
type state struct {
	mu          sync.RWMutex
	initialized bool
	writer      *DailyWriter
	level       Level
	console     bool
	consoleLvl  Level
	loggers     map[string]*Logger
}

var globalState = &state{
	loggers: make(map[string]*Logger),
}

// Init initializes the logging system with the given configuration.
// Before Init is called, loggers are silent.
func Init(cfg Config) error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if globalState.initialized && globalState.writer != nil {
		if err := globalState.writer.Close(); err != nil {
			return fmt.Errorf("closing existing writer: %w", err)
		}
		globalState.loggers = make(map[string]*Logger)
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	globalState.level = level

	globalState.console = false
	if cfg.ConsoleLevel != "" {
		consoleLevel, err := ParseLevel(cfg.ConsoleLevel)
		if err != nil {
			return fmt.Errorf("parsing console level: %w", err)
		}
		globalState.consoleLvl = consoleLevel
		globalState.console = true
	}

	prefix := cfg.FilePrefix
	if prefix == "" {
		prefix = "scriptdeck"
	}

	writer, err := NewDailyWriter(cfg.Dir, prefix)
	if err != nil {
		return fmt.Errorf("creating log writer: %w", err)
	}
	globalState.writer = writer
	globalState.initialized = true

	for component := range globalState.loggers {
		globalState.loggers[component] = createLogger(component)
	}

	return nil
}

// Get returns a logger for the given component.
func Get(component string) *Logger {
	globalState.mu.RLock()
	if logger, ok := globalState.loggers[component]; ok {
		globalState.mu.RUnlock()
		return logger
	}
	globalState.mu.RUnlock()

	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if logger, ok := globalState.loggers[component]; ok {
		return logger
	}

	logger := createLogger(component)
	globalState.loggers[component] = logger
	return logger
}

// createLogger creates a new logger for the given component.
// Must be called with globalState.mu held.
func createLogger(component string) *Logger {
	logger := &Logger{component: component}

	if globalState.initialized && globalState.console {
		logger.console = log.NewWithOptions(os.Stderr, log.Options{
			Level:           globalState.consoleLvl.toCharmLevel(),
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          component,
		})
	}

	return logger
}

// CurrentLogPath returns the path of the active daily log file, or an empty
// string before Init.
func CurrentLogPath() string {
	globalState.mu.RLock()
	defer globalState.mu.RUnlock()

	if globalState.writer == nil {
		return ""
	}
	return globalState.writer.Path()
}

// Close flushes and closes the log file.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if !globalState.initialized {
		return nil
	}

	if globalState.writer != nil {
		if err := globalState.writer.Close(); err != nil {
			return fmt.Errorf("closing log writer: %w", err)
		}
		globalState.writer = nil
	}

	globalState.initialized = false
	globalState.loggers = make(map[string]*Logger)

	return nil
}
