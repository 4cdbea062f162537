package logging

import "github.com/rs/zerolog"

// FeedLogger adapts a zerolog.Logger to the dispatcher's Logger interface
// so feed handling shares the daemon's console log stream.
type FeedLogger struct {
	logger zerolog.Logger
}

// NewFeedLogger wraps a zerolog.Logger for the feed dispatcher.
func NewFeedLogger(logger zerolog.Logger) *FeedLogger {
	return &FeedLogger{logger: logger.With().Str("component", "feed").Logger()}
}

// Debug logs a debug message with alternating key-value pairs.
func (l *FeedLogger) Debug(msg string, keysAndValues ...any) {
	emit(l.logger.Debug(), msg, keysAndValues)
}

// Error logs an error message with alternating key-value pairs.
func (l *FeedLogger) Error(msg string, keysAndValues ...any) {
	emit(l.logger.Error(), msg, keysAndValues)
}

// emit appends the pairs to the event. A trailing key with no value and
// non-string keys are skipped.
func emit(ev *zerolog.Event, msg string, keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, keysAndValues[i+1])
	}
	ev.Msg(msg)
}
