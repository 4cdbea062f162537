// Package resolve turns a hit's accumulated damage and resistance into
// health/armor/shield changes on a specific kind of target. Calculation is
// pure and works only from snapshots; mutation happens later, through a
// single-use Application.
package resolve

// Split is how much of an incoming hit lands on the health pool versus the
// target's defensive layer (armor or shields). Components are never
// negative. Scalar target kinds carry their whole amount in HealthDamage.
type Split struct {
	HealthDamage  float32
	DefenseDamage float32
}

// NoDamage is the fallthrough algorithm for unmatched target kinds.
func NoDamage(damage, resistance, currentHP, currentDefense float32) Split {
	return Split{}
}

// InfantryDamageAfterResist splits a direct hit against an armored infantry
// target. Resistance is soaked by armor first; resistance beyond the
// remaining armor is pushed back onto the health component.
func InfantryDamageAfterResist(damage, resistance, currentHP, currentArmor float32) Split {
	switch {
	case damage <= 0 || currentHP <= 0:
		return Split{}
	case currentArmor <= 0:
		return Split{HealthDamage: damage}
	case damage > resistance:
		if resistance <= currentArmor {
			return Split{HealthDamage: damage - resistance, DefenseDamage: resistance}
		}
		return Split{
			HealthDamage:  damage - resistance + (resistance - currentArmor),
			DefenseDamage: currentArmor,
		}
	default:
		return Split{DefenseDamage: damage}
	}
}

// MaxDamageAfterResist splits an area-damage hit: resistance is taken off
// the top, then armor absorbs as much of the remainder as it can.
func MaxDamageAfterResist(damage, resistance, currentHP, currentArmor float32) Split {
	reduced := damage - resistance
	switch {
	case reduced <= 0 || currentHP <= 0:
		return Split{}
	case currentArmor <= 0:
		return Split{HealthDamage: reduced}
	case reduced >= currentArmor:
		return Split{HealthDamage: reduced - currentArmor, DefenseDamage: currentArmor}
	default:
		return Split{DefenseDamage: reduced}
	}
}

// VehicleDamageAfterResist reduces a hit against a vehicle-class target to a
// single scalar. When resistance meets or exceeds the damage the raw damage
// is returned unchanged, not clamped to zero. That asymmetry with the
// infantry algorithms is intentional and pinned by tests; do not "fix" it
// without a balance decision.
func VehicleDamageAfterResist(damage, resistance float32) float32 {
	if damage > resistance {
		return damage - resistance
	}
	return damage
}
