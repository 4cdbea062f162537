// Package memory stores session combat logs in memory and exports them to
// JSON when the session ends.
package memory

import (
	"sync"

	"github.com/auraxsim/vitality/internal/config"
	"github.com/auraxsim/vitality/internal/model/core"
)

// EntityRecord groups a registered entity with its resolved damage outcomes.
type EntityRecord struct {
	Entity core.EntityInfo
	Damage []core.DamageOutcome
}

// Backend stores session data in memory and exports to JSON.
type Backend struct {
	cfg     config.MemoryConfig
	session *core.Session

	entities map[uint16]*EntityRecord // keyed by ObjectID
	damage   []core.DamageOutcome
	kills    []core.KillEvent

	lastExportPath string
	mu             sync.RWMutex
}

// New creates a new memory backend.
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{
		cfg:      cfg,
		entities: make(map[uint16]*EntityRecord),
	}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources.
func (b *Backend) Close() error {
	return nil
}

// StartSession begins recording a new session.
func (b *Backend) StartSession(session *core.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.session = session

	// Reset all collections
	b.entities = make(map[uint16]*EntityRecord)
	b.damage = nil
	b.kills = nil

	return nil
}

// EndSession finalizes and exports the session data.
func (b *Backend) EndSession() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return nil
	}
	return b.exportJSON()
}

// AddEntity registers a new entity.
func (b *Backend) AddEntity(e *core.EntityInfo) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entities[e.ObjectID] = &EntityRecord{Entity: *e}
	return nil
}

// RecordDamage appends a resolved damage outcome.
func (b *Backend) RecordDamage(o *core.DamageOutcome) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.damage = append(b.damage, *o)
	if rec, ok := b.entities[o.TargetID]; ok {
		rec.Damage = append(rec.Damage, *o)
	}
	return nil
}

// RecordKill appends a kill event.
func (b *Backend) RecordKill(e *core.KillEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.kills = append(b.kills, *e)
	return nil
}

// DamageCount returns the number of recorded damage outcomes.
func (b *Backend) DamageCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.damage)
}

// KillCount returns the number of recorded kill events.
func (b *Backend) KillCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.kills)
}

// GetExportedFilePath returns the path of the last exported session file.
func (b *Backend) GetExportedFilePath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastExportPath
}
