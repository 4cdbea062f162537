package logging

import (
	"context"
	"log/slog"
)

// ContextProvider returns attributes to stamp onto each record. The worker
// supplies the current session name and capture frame.
type ContextProvider func() []slog.Attr

// sessionHandler fans records out to the console and log file handlers,
// stamping the provider's attributes onto each record first.
type sessionHandler struct {
	targets  []slog.Handler
	provider ContextProvider
}

// newSessionHandler drops nil targets so a missing log file only costs the
// file copy of the stream.
func newSessionHandler(targets ...slog.Handler) *sessionHandler {
	valid := make([]slog.Handler, 0, len(targets))
	for _, t := range targets {
		if t != nil {
			valid = append(valid, t)
		}
	}
	return &sessionHandler{targets: valid}
}

func (h *sessionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, t := range h.targets {
		if t.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *sessionHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.provider != nil {
		r.AddAttrs(h.provider()...)
	}
	for _, t := range h.targets {
		if !t.Enabled(ctx, r.Level) {
			continue
		}
		// a failing target must not starve the others
		_ = t.Handle(ctx, r.Clone())
	}
	return nil
}

func (h *sessionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	targets := make([]slog.Handler, len(h.targets))
	for i, t := range h.targets {
		targets[i] = t.WithAttrs(attrs)
	}
	return &sessionHandler{targets: targets, provider: h.provider}
}

func (h *sessionHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	targets := make([]slog.Handler, len(h.targets))
	for i, t := range h.targets {
		targets[i] = t.WithGroup(name)
	}
	return &sessionHandler{targets: targets, provider: h.provider}
}
