// Package worker connects the wire event stream to the resolution core: it
// parses incoming events, keeps the live entity registry current, runs the
// calculate/apply pipeline for hits, and forwards results to storage and
// metrics.
package worker

import (
	"log/slog"
	"sync/atomic"

	"github.com/auraxsim/vitality/internal/ballistics"
	"github.com/auraxsim/vitality/internal/influx"
	"github.com/auraxsim/vitality/internal/logging"
	"github.com/auraxsim/vitality/internal/model/core"
	"github.com/auraxsim/vitality/internal/parser"
	"github.com/auraxsim/vitality/internal/registry"
	"github.com/auraxsim/vitality/internal/storage"
)

// Dependencies holds all dependencies for the worker manager.
type Dependencies struct {
	Registry   *registry.Registry
	LogManager *logging.SlogManager
	Parser     *parser.Parser
	Catalog    *ballistics.Catalog
	Influx     *influx.Manager // optional, may be nil
}

// Manager routes parsed events through the resolution pipeline.
type Manager struct {
	deps    Dependencies
	backend storage.Backend

	session atomic.Pointer[core.Session]
	frame   atomic.Uint64
}

// NewManager creates a new worker manager.
func NewManager(deps Dependencies, backend storage.Backend) *Manager {
	return &Manager{
		deps:    deps,
		backend: backend,
	}
}

// Session returns the active session, or nil outside one.
func (m *Manager) Session() *core.Session {
	return m.session.Load()
}

// CurrentFrame returns the latest capture frame seen on any event.
func (m *Manager) CurrentFrame() uint {
	return uint(m.frame.Load())
}

func (m *Manager) observeFrame(frame uint) {
	for {
		cur := m.frame.Load()
		if uint64(frame) <= cur || m.frame.CompareAndSwap(cur, uint64(frame)) {
			return
		}
	}
}

// ContextAttrs is a logging.ContextProvider exposing session and frame state.
func (m *Manager) ContextAttrs() []slog.Attr {
	attrs := []slog.Attr{slog.Uint64("frame", m.frame.Load())}
	if s := m.session.Load(); s != nil {
		attrs = append(attrs, slog.String("session", s.Name))
	}
	return attrs
}

func (m *Manager) logger() *slog.Logger {
	return m.deps.LogManager.Logger()
}
