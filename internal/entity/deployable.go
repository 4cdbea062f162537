package entity

import "github.com/auraxsim/vitality/internal/model/core"

// deployableBase carries the fields shared by all placed structures.
type deployableBase struct {
	ID          uint16
	Name        string
	Faction     core.Faction
	Position    core.Vector3
	Orientation float64
	Definition  string
	Owner       string

	health  float32
	history []*core.DamageRecord
}

func (d *deployableBase) ObjectID() uint16 { return d.ID }
func (d *deployableBase) Alive() bool { return d.health > 0 }
func (d *deployableBase) Health() float32 { return d.health }
func (d *deployableBase) SetHealth(v float32) { d.health = v }

func (d *deployableBase) RecordHistory(rec *core.DamageRecord) {
	d.history = append(d.history, rec)
}

func (d *deployableBase) History() []*core.DamageRecord { return d.history }

func (d *deployableBase) snapshot(kind core.Kind, shields float32) core.DeployableSnapshot {
	return core.DeployableSnapshot{
		EntityKind:  kind,
		Name:        d.Name,
		Faction:     d.Faction,
		Position:    d.Position,
		Orientation: d.Orientation,
		Definition:  d.Definition,
		Health:      d.health,
		Shields:     shields,
		Owner:       d.Owner,
	}
}

// SimpleDeployable is a placed structure with a bare health pool and no
// defensive layer (mines, sensor motes, boomers).
type SimpleDeployable struct {
	deployableBase
}

// NewSimpleDeployable creates a live simple deployable.
func NewSimpleDeployable(id uint16, definition, owner string, faction core.Faction, health float32) *SimpleDeployable {
	return &SimpleDeployable{deployableBase{
		ID:         id,
		Name:       definition,
		Faction:    faction,
		Definition: definition,
		Owner:      owner,
		health:     health,
	}}
}

func (d *SimpleDeployable) Kind() core.Kind { return core.KindSimpleDeployable }

func (d *SimpleDeployable) Snapshot() core.Snapshot {
	return d.snapshot(core.KindSimpleDeployable, 0)
}

// ComplexDeployable is a placed structure with an energy shield in front of
// its health pool (shield generators, field turret bases).
type ComplexDeployable struct {
	deployableBase
	shields float32
}

// NewComplexDeployable creates a live complex deployable.
func NewComplexDeployable(id uint16, definition, owner string, faction core.Faction, health, shields float32) *ComplexDeployable {
	return &ComplexDeployable{
		deployableBase: deployableBase{
			ID:         id,
			Name:       definition,
			Faction:    faction,
			Definition: definition,
			Owner:      owner,
			health:     health,
		},
		shields: shields,
	}
}

func (d *ComplexDeployable) Kind() core.Kind { return core.KindComplexDeployable }
func (d *ComplexDeployable) Shields() float32 { return d.shields }
func (d *ComplexDeployable) SetShields(v float32) { d.shields = v }

func (d *ComplexDeployable) Snapshot() core.Snapshot {
	return d.snapshot(core.KindComplexDeployable, d.shields)
}

// Turret is a manned or automated weapon emplacement. Damage handling is
// identical to a complex deployable; the kind is kept distinct for dispatch
// and recording.
type Turret struct {
	deployableBase
	shields float32
}

// NewTurret creates a live turret.
func NewTurret(id uint16, definition, owner string, faction core.Faction, health, shields float32) *Turret {
	return &Turret{
		deployableBase: deployableBase{
			ID:         id,
			Name:       definition,
			Faction:    faction,
			Definition: definition,
			Owner:      owner,
			health:     health,
		},
		shields: shields,
	}
}

func (t *Turret) Kind() core.Kind { return core.KindTurret }
func (t *Turret) Shields() float32 { return t.shields }
func (t *Turret) SetShields(v float32) { t.shields = v }

func (t *Turret) Snapshot() core.Snapshot {
	return t.snapshot(core.KindTurret, t.shields)
}
