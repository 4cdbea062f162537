package gormstore

import (
	"time"

	"gorm.io/datatypes"
)

// SessionRow is the sessions table.
type SessionRow struct {
	ID         uint `gorm:"primarykey"`
	Name       string
	ServerName string
	StartTime  time.Time
	EndTime    *time.Time
}

// TableName overrides the default pluralization.
func (SessionRow) TableName() string { return "sessions" }

// EntityRow is the registration row for an entity joining a session.
type EntityRow struct {
	ID         uint `gorm:"primarykey"`
	SessionID  uint `gorm:"index"`
	ObjectID   uint16
	Kind       string
	Name       string
	Faction    string
	Definition string
	JoinTime   time.Time
	JoinFrame  uint
}

// TableName overrides the default pluralization.
func (EntityRow) TableName() string { return "entities" }

// DamageRow is one resolved damage outcome. The full projectile metadata is
// stored as JSON next to the indexed scalar columns.
type DamageRow struct {
	ID               uint `gorm:"primarykey"`
	SessionID        uint `gorm:"index"`
	Time             time.Time
	CaptureFrame     uint
	TargetID         uint16 `gorm:"index"`
	TargetKind       string
	TargetName       string
	TargetFaction    string
	Weapon           string
	Attacker         string
	Projectile       datatypes.JSON
	HealthDamage     float32
	DefenseDamage    float32
	RemainingHealth  float32
	RemainingDefense float32
	Killed           bool
}

// TableName overrides the default pluralization.
func (DamageRow) TableName() string { return "damage_outcomes" }

// KillRow records a target dropping to zero health.
type KillRow struct {
	ID           uint `gorm:"primarykey"`
	SessionID    uint `gorm:"index"`
	Time         time.Time
	CaptureFrame uint
	TargetID     uint16
	TargetKind   string
	TargetName   string
	Weapon       string
	Attacker     string
	Distance     float32
}

// TableName overrides the default pluralization.
func (KillRow) TableName() string { return "kill_events" }

// DatabaseModels lists every table the backend migrates.
var DatabaseModels = []any{
	&SessionRow{},
	&EntityRow{},
	&DamageRow{},
	&KillRow{},
}
