package resolve

import (
	"github.com/auraxsim/vitality/internal/entity"
	"github.com/auraxsim/vitality/internal/model/core"
)

// Appliers perform the mutation half of resolution. Each one is a no-op for
// a target that lacks the required capability, mirroring the permissive
// dispatch policy: wrong kind means nothing happens, not an error.
//
// Defensive layers are depleted before health, and anything beyond the
// layer's remaining value spills into health in the same pass.

// ApplyPlayerDamage commits a split against an armored infantry target.
// A fully zero split leaves the target untouched and appends no history.
// The vehicle-class appliers below differ: they append whenever their
// health gate passes, even for zero damage.
func ApplyPlayerDamage(target entity.Target, split Split, rec *core.DamageRecord) {
	p, ok := target.(entity.ArmoredTarget)
	if !ok {
		return
	}
	if !p.Alive() || (split.HealthDamage == 0 && split.DefenseDamage == 0) {
		return
	}
	p.RecordHistory(rec)

	armor := p.Armor()
	if split.DefenseDamage > armor {
		overflow := split.DefenseDamage - armor
		p.SetArmor(0)
		p.SetHealth(p.Health() - (split.HealthDamage + overflow))
	} else {
		p.SetArmor(armor - split.DefenseDamage)
		p.SetHealth(p.Health() - split.HealthDamage)
	}
}

// ApplyVehicleDamage commits a scalar amount against a shielded vehicle.
func ApplyVehicleDamage(target entity.Target, damage float32, rec *core.DamageRecord) {
	v, ok := target.(entity.ShieldedTarget)
	if !ok {
		return
	}
	if v.Health() <= 0 {
		return
	}
	v.RecordHistory(rec)

	shields := v.Shields()
	switch {
	case shields > damage:
		v.SetShields(shields - damage)
	case shields > 0:
		v.SetHealth(v.Health() - (damage - shields))
		v.SetShields(0)
	default:
		v.SetHealth(v.Health() - damage)
	}
}

// ApplySimpleDeployableDamage commits a scalar amount against a structure
// with no defensive layer.
func ApplySimpleDeployableDamage(target entity.Target, damage float32, rec *core.DamageRecord) {
	if target == nil || target.Health() <= 0 {
		return
	}
	target.SetHealth(target.Health() - damage)
	target.RecordHistory(rec)
}

// ApplyComplexDeployableDamage commits a scalar amount against a shielded
// structure. Turrets use the identical logic.
func ApplyComplexDeployableDamage(target entity.Target, damage float32, rec *core.DamageRecord) {
	d, ok := target.(entity.ShieldedTarget)
	if !ok {
		return
	}
	shields := d.Shields()
	if shields > 0 {
		if damage > shields {
			d.SetHealth(d.Health() - (damage - shields))
			d.SetShields(0)
		} else {
			d.SetShields(shields - damage)
		}
		d.RecordHistory(rec)
	} else if d.Health() > 0 {
		d.SetHealth(d.Health() - damage)
		d.RecordHistory(rec)
	}
}
