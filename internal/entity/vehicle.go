package entity

import "github.com/auraxsim/vitality/internal/model/core"

// Vehicle is a live vehicle entity. Shields absorb damage before the hull.
type Vehicle struct {
	ID          uint16
	Name        string
	Faction     core.Faction
	Position    core.Vector3
	Orientation float64
	Definition  string
	Velocity    *core.Vector3

	health  float32
	shields float32

	history []*core.DamageRecord
}

// NewVehicle creates a live vehicle with the given pools.
func NewVehicle(id uint16, name string, faction core.Faction, definition string, health, shields float32) *Vehicle {
	return &Vehicle{
		ID:         id,
		Name:       name,
		Faction:    faction,
		Definition: definition,
		health:     health,
		shields:    shields,
	}
}

func (v *Vehicle) ObjectID() uint16 { return v.ID }
func (v *Vehicle) Kind() core.Kind { return core.KindVehicle }
func (v *Vehicle) Alive() bool { return v.health > 0 }
func (v *Vehicle) Health() float32 { return v.health }
func (v *Vehicle) SetHealth(h float32)  { v.health = h }
func (v *Vehicle) Shields() float32 { return v.shields }
func (v *Vehicle) SetShields(s float32) { v.shields = s }

func (v *Vehicle) RecordHistory(rec *core.DamageRecord) {
	v.history = append(v.history, rec)
}

func (v *Vehicle) History() []*core.DamageRecord { return v.history }

// Snapshot copies the vehicle's current combat fields.
func (v *Vehicle) Snapshot() core.Snapshot {
	var vel *core.Vector3
	if v.Velocity != nil {
		c := *v.Velocity
		vel = &c
	}
	return core.VehicleSnapshot{
		Name:        v.Name,
		Faction:     v.Faction,
		Position:    v.Position,
		Orientation: v.Orientation,
		Definition:  v.Definition,
		Health:      v.health,
		Shields:     v.shields,
		Velocity:    vel,
	}
}
