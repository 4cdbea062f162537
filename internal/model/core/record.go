package core

import "time"

// ProjectileInfo is the ballistic metadata attached to a resolved hit.
// The resolution core treats it as opaque; accumulators and the combat log
// are the consumers.
type ProjectileInfo struct {
	Weapon     string
	Magazine   string
	FireMode   string
	Origin     Vector3
	Impact     Vector3
	Distance   float32
	Splash     bool
	AttackerID uint16
	Attacker   string
}

// DamageRecord is the immutable description of one resolved combat event.
// Target holds the snapshot captured when resolution began; the live entity
// may already have moved on.
type DamageRecord struct {
	Time         time.Time
	CaptureFrame uint
	Target       Snapshot
	Projectile   ProjectileInfo
}

// EntityInfo is the registration row for an entity joining the session.
type EntityInfo struct {
	ObjectID   uint16
	EntityKind Kind
	Name       string
	Faction    Faction
	Definition string
	JoinTime   time.Time
	JoinFrame  uint
}

// DamageOutcome is what the worker persists after an Application has run:
// the resolved split plus the target's remaining pools.
type DamageOutcome struct {
	Time             time.Time
	CaptureFrame     uint
	TargetID         uint16
	TargetKind       Kind
	TargetName       string
	TargetFaction    Faction
	Projectile       ProjectileInfo
	HealthDamage     float32
	DefenseDamage    float32
	RemainingHealth  float32
	RemainingDefense float32
	Killed           bool
}

// KillEvent records a target dropping to zero health during application.
type KillEvent struct {
	Time         time.Time
	CaptureFrame uint
	TargetID     uint16
	TargetKind   Kind
	TargetName   string
	Weapon       string
	Attacker     string
	Distance     float32
}

// Session describes one recording run.
type Session struct {
	ID         uint
	Name       string
	ServerName string
	StartTime  time.Time
	EndTime    time.Time
}
