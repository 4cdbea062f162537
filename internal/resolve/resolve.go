package resolve

import (
	"errors"

	"github.com/auraxsim/vitality/internal/entity"
	"github.com/auraxsim/vitality/internal/model/core"
)

// Accumulator reduces a record's contributing factors (weapon, ammo,
// upgrades, terrain) into one scalar. The damage and resistance stages are
// supplied by the caller; see the ballistics package for the defaults.
type Accumulator func(rec *core.DamageRecord) float32

// ErrAlreadyApplied is returned when an Application is invoked a second
// time. An Application is consumed by its first ApplyTo call whether or not
// the target matched.
var ErrAlreadyApplied = errors.New("damage application already consumed")

// Application is one deferred mutation pass: a target kind, the split bound
// at calculation time, and the record to append to the target's history.
// It is single-use and must only be applied to the entity whose snapshot it
// was calculated from; the registry's exclusive handle is the caller's way
// of keeping one writer per entity.
type Application struct {
	Kind   core.Kind
	Split  Split
	record *core.DamageRecord
	done   bool
}

// Record returns the historical record the application was calculated from.
func (a *Application) Record() *core.DamageRecord { return a.record }

// ApplyTo performs the mutation pass on target and consumes the
// application. The pass either fully commits (all field writes plus the
// history append) or, on a no-op branch, does nothing at all.
func (a *Application) ApplyTo(target entity.Target) error {
	if a.done {
		return ErrAlreadyApplied
	}
	a.done = true

	switch a.Kind {
	case core.KindPlayer:
		ApplyPlayerDamage(target, a.Split, a.record)
	case core.KindVehicle:
		ApplyVehicleDamage(target, a.Split.HealthDamage, a.record)
	case core.KindSimpleDeployable:
		ApplySimpleDeployableDamage(target, a.Split.HealthDamage, a.record)
	case core.KindComplexDeployable, core.KindTurret:
		ApplyComplexDeployableDamage(target, a.Split.HealthDamage, a.record)
	case core.KindNone:
		// no-op pair
	}
	return nil
}

// Calculate evaluates the two accumulators against rec, selects the
// depletion algorithm for the target's kind, and returns the deferred
// application. Nothing is mutated here: the snapshot supplies the current
// pools and the live entity is not touched until ApplyTo runs.
//
// A target kind with no matching algorithm/applier resolves to the no-op
// pair rather than an error.
func Calculate(damage, resistance Accumulator, rec *core.DamageRecord) *Application {
	return calculate(damage, resistance, rec, false)
}

// CalculateSplash is Calculate for area damage: infantry targets resolve
// with MaxDamageAfterResist instead of the direct-hit algorithm. All other
// kinds behave identically.
func CalculateSplash(damage, resistance Accumulator, rec *core.DamageRecord) *Application {
	return calculate(damage, resistance, rec, true)
}

func calculate(damage, resistance Accumulator, rec *core.DamageRecord, splash bool) *Application {
	dam := damage(rec)
	res := resistance(rec)

	switch target := rec.Target.(type) {
	case core.PlayerSnapshot:
		var split Split
		if splash {
			split = MaxDamageAfterResist(dam, res, target.Health, target.Armor)
		} else {
			split = InfantryDamageAfterResist(dam, res, target.Health, target.Armor)
		}
		return &Application{Kind: core.KindPlayer, Split: split, record: rec}

	case core.VehicleSnapshot:
		amount := VehicleDamageAfterResist(dam, res)
		return &Application{Kind: core.KindVehicle, Split: Split{HealthDamage: amount}, record: rec}

	case core.DeployableSnapshot:
		amount := VehicleDamageAfterResist(dam, res)
		switch target.EntityKind {
		case core.KindSimpleDeployable, core.KindComplexDeployable, core.KindTurret:
			return &Application{Kind: target.EntityKind, Split: Split{HealthDamage: amount}, record: rec}
		}
		return &Application{Kind: core.KindNone, record: rec}

	default:
		return &Application{Kind: core.KindNone, record: rec}
	}
}
