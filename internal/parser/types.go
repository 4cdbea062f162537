package parser

import (
	"time"

	"github.com/auraxsim/vitality/internal/model/core"
)

// PlayerSpec carries the fields needed to register a live player.
type PlayerSpec struct {
	Time         time.Time
	CaptureFrame uint
	ObjectID     uint16
	Name         string
	Faction      core.Faction
	Suit         core.ExoSuit
	Health       float32
	Armor        float32
}

// VehicleSpec carries the fields needed to register a live vehicle.
type VehicleSpec struct {
	Time         time.Time
	CaptureFrame uint
	ObjectID     uint16
	Name         string
	Faction      core.Faction
	Definition   string
	Health       float32
	Shields      float32
}

// DeployableSpec carries the fields needed to register a live deployable or
// turret. EntityKind distinguishes simple, complex, and turret variants.
type DeployableSpec struct {
	Time         time.Time
	CaptureFrame uint
	ObjectID     uint16
	EntityKind   core.Kind
	Definition   string
	Owner        string
	Faction      core.Faction
	Health       float32
	Shields      float32
}

// HitReport is a parsed projectile hit awaiting resolution.
type HitReport struct {
	Time         time.Time
	CaptureFrame uint
	TargetID     uint16
	Projectile   core.ProjectileInfo
}

// RemoveSpec identifies an entity leaving the zone.
type RemoveSpec struct {
	CaptureFrame uint
	ObjectID     uint16
}
