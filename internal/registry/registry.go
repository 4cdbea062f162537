// Package registry mirrors the game server's live entities keyed by object
// ID. Latency here is critical to quickly process incoming hit events, so
// entries stay in memory for the whole session.
//
// Acquire hands out an exclusive per-entity handle: at most one damage
// application may be mutating a given entity's combat fields at any
// instant. Calculation never needs the handle, it works from snapshots.
package registry

import (
	"sync"

	"github.com/auraxsim/vitality/internal/entity"
)

type slot struct {
	mu     sync.Mutex
	target entity.Target
}

// Registry is a thread-safe map of live entities.
type Registry struct {
	mu    sync.Mutex
	slots map[uint16]*slot
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		slots: make(map[uint16]*slot),
	}
}

// Add registers a live entity under its object ID, replacing any previous
// entry with that ID.
func (r *Registry) Add(target entity.Target) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[target.ObjectID()] = &slot{target: target}
}

// Get returns the live entity for snapshot reads. Callers must not mutate
// combat fields through this reference; use Acquire for that.
func (r *Registry) Get(id uint16) (entity.Target, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[id]; ok {
		return s.target, true
	}
	return nil, false
}

// Acquire locks the entity for the application phase and returns it with a
// release func. Returns false if the ID is unknown.
func (r *Registry) Acquire(id uint16) (entity.Target, func(), bool) {
	r.mu.Lock()
	s, ok := r.slots[id]
	r.mu.Unlock()
	if !ok {
		return nil, nil, false
	}
	s.mu.Lock()
	return s.target, s.mu.Unlock, true
}

// Remove drops an entity from the registry.
func (r *Registry) Remove(id uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, id)
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// Reset clears all entries, for session rollover.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = make(map[uint16]*slot)
}
