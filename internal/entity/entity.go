// Package entity holds the live, mutable mirror of combat-relevant game
// entities. Resolution never reads these during calculation, only from
// snapshots, and only a damage application mutates them under the
// registry's exclusive handle.
package entity

import "github.com/auraxsim/vitality/internal/model/core"

// Target is the minimum capability every damageable entity exposes.
type Target interface {
	ObjectID() uint16
	Kind() core.Kind
	Alive() bool
	Health() float32
	SetHealth(v float32)

	// RecordHistory appends a resolved event to the entity's combat log,
	// used for death recaps.
	RecordHistory(rec *core.DamageRecord)
	History() []*core.DamageRecord

	// Snapshot copies the entity's current combat fields into an immutable
	// capture. Pure, always succeeds.
	Snapshot() core.Snapshot
}

// ArmoredTarget is a target with a personal armor layer (infantry).
type ArmoredTarget interface {
	Target
	Armor() float32
	SetArmor(v float32)
}

// ShieldedTarget is a target with an energy shield layer (vehicles,
// complex deployables, turrets).
type ShieldedTarget interface {
	Target
	Shields() float32
	SetShields(v float32)
}
