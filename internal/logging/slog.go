package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// SlogManager manages slog-based logging for the resolver daemon.
type SlogManager struct {
	logger  *slog.Logger
	handler *sessionHandler
}

// NewSlogManager creates a new slog-based logging manager.
func NewSlogManager() *SlogManager {
	return &SlogManager{}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup initializes the logging system with console and optional file output.
func (m *SlogManager) Setup(file io.Writer, level string) {
	lvl := parseLevel(level)

	// Common handler options with RFC3339 time formatting
	handlerOpts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	var fileHandler slog.Handler
	if file != nil {
		fileHandler = slog.NewTextHandler(file, handlerOpts)
	}

	m.handler = newSessionHandler(slog.NewTextHandler(os.Stdout, handlerOpts), fileHandler)
	m.logger = slog.New(m.handler)
	m.logger.Info("Logging initialized", "level", level)
}

// AttachContext makes every subsequent record carry the attributes returned
// by provider. Call during startup, before the feed starts.
func (m *SlogManager) AttachContext(provider ContextProvider) {
	if m.handler == nil {
		return
	}
	m.handler.provider = provider
}

// Logger returns the configured slog.Logger.
func (m *SlogManager) Logger() *slog.Logger {
	if m.logger == nil {
		// Return a default logger if Setup hasn't been called
		return slog.Default()
	}
	return m.logger
}

// WriteLog writes a log entry with the specified function name, data, and level.
func (m *SlogManager) WriteLog(functionName, data, level string) {
	if m.logger == nil {
		return
	}

	lvl := parseLevel(level)

	switch lvl {
	case slog.LevelDebug:
		m.logger.Debug(data, "function", functionName)
	case slog.LevelInfo:
		m.logger.Info(data, "function", functionName)
	case slog.LevelWarn:
		m.logger.Warn(data, "function", functionName)
	case slog.LevelError:
		m.logger.Error(data, "function", functionName)
	default:
		m.logger.Info(data, "function", functionName)
	}
}
