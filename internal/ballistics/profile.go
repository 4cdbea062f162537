// Package ballistics supplies the default damage and resistance
// accumulators. The resolver itself is agnostic about where its two scalars
// come from; this package reduces weapon profiles and target resists into
// resolve.Accumulator values the worker can hand to Calculate.
package ballistics

import (
	"github.com/auraxsim/vitality/internal/model/core"
	"github.com/auraxsim/vitality/internal/resolve"
)

// DamageProfile describes one weapon's output.
type DamageProfile struct {
	// BaseDamage applies out to DegradeAfter meters.
	BaseDamage float32
	// DegradeAfter is the range at which falloff starts.
	DegradeAfter float32
	// DegradePerMeter is subtracted for every meter beyond DegradeAfter.
	DegradePerMeter float32
	// MinDamage floors the degraded value.
	MinDamage float32
	// SplashDamage is used instead of BaseDamage for area hits.
	SplashDamage float32
}

// DamageAt evaluates the profile at the given travel distance.
func (p DamageProfile) DamageAt(distance float32, splash bool) float32 {
	base := p.BaseDamage
	if splash {
		base = p.SplashDamage
	}
	if distance <= p.DegradeAfter || p.DegradePerMeter <= 0 {
		return base
	}
	d := base - (distance-p.DegradeAfter)*p.DegradePerMeter
	if d < p.MinDamage {
		return p.MinDamage
	}
	return d
}

// Catalog maps weapon names to their damage profiles.
type Catalog struct {
	profiles map[string]DamageProfile
	fallback DamageProfile
}

// NewCatalog creates a catalog with the given fallback profile for unknown
// weapons.
func NewCatalog(fallback DamageProfile) *Catalog {
	return &Catalog{
		profiles: make(map[string]DamageProfile),
		fallback: fallback,
	}
}

// Add registers a weapon profile, replacing any existing entry.
func (c *Catalog) Add(weapon string, p DamageProfile) {
	c.profiles[weapon] = p
}

// Profile returns the profile for a weapon, falling back for unknown names.
func (c *Catalog) Profile(weapon string) DamageProfile {
	if p, ok := c.profiles[weapon]; ok {
		return p
	}
	return c.fallback
}

// DamageOf builds the damage accumulator: weapon profile evaluated at the
// projectile's travel distance.
func (c *Catalog) DamageOf() resolve.Accumulator {
	return func(rec *core.DamageRecord) float32 {
		p := c.Profile(rec.Projectile.Weapon)
		return p.DamageAt(rec.Projectile.Distance, rec.Projectile.Splash)
	}
}

// Per-exosuit flat resists for infantry targets.
var exoSuitResists = map[core.ExoSuit]float32{
	core.ExoSuitStandard:     4,
	core.ExoSuitAgile:        6,
	core.ExoSuitReinforced:   10,
	core.ExoSuitInfiltration: 0,
	core.ExoSuitMechanized:   20,
}

// Hull resists for vehicle-class targets, keyed by snapshot kind.
var hullResists = map[core.Kind]float32{
	core.KindVehicle:           8,
	core.KindSimpleDeployable:  0,
	core.KindComplexDeployable: 5,
	core.KindTurret:            5,
}

// ResistanceOf builds the resistance accumulator from the target snapshot
// carried by the record. Unknown targets resist nothing.
func ResistanceOf() resolve.Accumulator {
	return func(rec *core.DamageRecord) float32 {
		switch target := rec.Target.(type) {
		case core.PlayerSnapshot:
			return exoSuitResists[target.Suit]
		case core.VehicleSnapshot:
			return hullResists[core.KindVehicle]
		case core.DeployableSnapshot:
			return hullResists[target.EntityKind]
		default:
			return 0
		}
	}
}

// DefaultCatalog returns the built-in weapon table used when no external
// balance data is supplied.
func DefaultCatalog() *Catalog {
	c := NewCatalog(DamageProfile{BaseDamage: 10, MinDamage: 1, SplashDamage: 5})
	c.Add("suppressor", DamageProfile{BaseDamage: 18, DegradeAfter: 10, DegradePerMeter: 0.25, MinDamage: 6, SplashDamage: 0})
	c.Add("cycler", DamageProfile{BaseDamage: 20, DegradeAfter: 15, DegradePerMeter: 0.2, MinDamage: 8, SplashDamage: 0})
	c.Add("bolt_driver", DamageProfile{BaseDamage: 100, DegradeAfter: 75, DegradePerMeter: 0.5, MinDamage: 40, SplashDamage: 0})
	c.Add("rocklet", DamageProfile{BaseDamage: 50, DegradeAfter: 40, DegradePerMeter: 0.5, MinDamage: 25, SplashDamage: 35})
	c.Add("flux_cannon", DamageProfile{BaseDamage: 60, DegradeAfter: 50, DegradePerMeter: 0.4, MinDamage: 30, SplashDamage: 20})
	return c
}
