package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled
// from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a configuration string to a LogLevel, defaulting to info.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug", "DEBUG":
		return LogLevelDebug
	case "warn", "WARN":
		return LogLevelWarn
	case "error", "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger defines the minimal logging interface for FiveWhys. This allows
// users to provide their own logger implementation or use the built-in
// adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewSlogLogger builds a Logger writing structured records at the given
// level. Format is "json" or "text"; anything else falls back to json.
func NewSlogLogger(level LogLevel, format string) Logger {
	return NewSlogLoggerWithOutput(level, format, os.Stdout)
}

// NewSlogLoggerWithOutput is NewSlogLogger with an explicit output writer,
// mainly for capturing log output in tests.
func NewSlogLoggerWithOutput(level LogLevel, format string, w io.Writer) Logger {
	opts := &slog.HandlerOptions{Level: slogLevel(level)}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return NewSlogAdapter(slog.New(handler))
}

// NoOpLogger discards all log messages. Useful for testing or when logging
// is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// InquiryLogger decorates a Logger with stable contextual attributes
// (component, session) attached to every record. It is cheap to copy via
// the With* methods.
type InquiryLogger struct {
	logger    Logger
	component string
	sessionID string
}

// NewInquiryLogger wraps base with empty context.
func NewInquiryLogger(base Logger) *InquiryLogger {
	return &InquiryLogger{logger: base}
}

// WithComponent sets the logical component (engine, store, server).
func (l *InquiryLogger) WithComponent(c string) *InquiryLogger {
	nl := *l
	nl.component = c
	return &nl
}

// WithSession attaches the session identifier.
func (l *InquiryLogger) WithSession(sid string) *InquiryLogger {
	nl := *l
	nl.sessionID = sid
	return &nl
}

func (l *InquiryLogger) attrs(args []any) []any {
	out := make([]any, 0, len(args)+4)
	if l.component != "" {
		out = append(out, "component", l.component)
	}
	if l.sessionID != "" {
		out = append(out, "session_id", l.sessionID)
	}
	return append(out, args...)
}

// Debug logs at debug level with contextual attributes.
func (l *InquiryLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, l.attrs(args)...) }

// Info logs at info level with contextual attributes.
func (l *InquiryLogger) Info(msg string, args ...any) { l.logger.Info(msg, l.attrs(args)...) }

// Warn logs at warn level with contextual attributes.
func (l *InquiryLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, l.attrs(args)...) }

// Error logs at error level with contextual attributes.
func (l *InquiryLogger) Error(msg string, args ...any) { l.logger.Error(msg, l.attrs(args)...) }

// LogStep records execution details for one protocol step.
func (l *InquiryLogger) LogStep(step int, continuing bool, dur time.Duration, err error) {
	if err != nil {
		l.Error("Step failed", "step", step, "duration", dur, "error", err.Error())
		return
	}
	l.Info("Step completed", "step", step, "continuing", continuing, "duration", dur)
}
