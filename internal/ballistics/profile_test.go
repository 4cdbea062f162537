package ballistics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/auraxsim/vitality/internal/model/core"
)

func TestDamageAt(t *testing.T) {
	p := DamageProfile{BaseDamage: 20, DegradeAfter: 10, DegradePerMeter: 0.5, MinDamage: 8, SplashDamage: 12}

	tests := []struct {
		name     string
		distance float32
		splash   bool
		want     float32
	}{
		{name: "point blank", distance: 0, want: 20},
		{name: "at falloff start", distance: 10, want: 20},
		{name: "mid falloff", distance: 20, want: 15},
		{name: "floored at min damage", distance: 200, want: 8},
		{name: "splash uses splash base", distance: 0, splash: true, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.DamageAt(tt.distance, tt.splash))
		})
	}
}

func TestDamageAtNoFalloff(t *testing.T) {
	p := DamageProfile{BaseDamage: 50}
	assert.Equal(t, float32(50), p.DamageAt(1000, false))
}

func TestCatalogFallback(t *testing.T) {
	c := NewCatalog(DamageProfile{BaseDamage: 10})
	c.Add("cycler", DamageProfile{BaseDamage: 20})

	assert.Equal(t, float32(20), c.Profile("cycler").BaseDamage)
	assert.Equal(t, float32(10), c.Profile("never_heard_of_it").BaseDamage)
}

func TestDamageOfAccumulator(t *testing.T) {
	c := NewCatalog(DamageProfile{BaseDamage: 10})
	c.Add("cycler", DamageProfile{BaseDamage: 20, DegradeAfter: 15, DegradePerMeter: 0.2, MinDamage: 8})

	acc := c.DamageOf()

	rec := &core.DamageRecord{
		Projectile: core.ProjectileInfo{Weapon: "cycler", Distance: 15},
	}
	assert.Equal(t, float32(20), acc(rec))

	rec.Projectile.Distance = 25
	assert.Equal(t, float32(18), acc(rec))
}

func TestResistanceOf(t *testing.T) {
	acc := ResistanceOf()

	tests := []struct {
		name   string
		target core.Snapshot
		want   float32
	}{
		{
			name:   "infiltration suit resists nothing",
			target: core.PlayerSnapshot{Suit: core.ExoSuitInfiltration},
			want:   0,
		},
		{
			name:   "mechanized suit has the heaviest resist",
			target: core.PlayerSnapshot{Suit: core.ExoSuitMechanized},
			want:   20,
		},
		{
			name:   "vehicle hull",
			target: core.VehicleSnapshot{Definition: "light_skimmer"},
			want:   8,
		},
		{
			name:   "simple deployable is unresisting",
			target: core.DeployableSnapshot{EntityKind: core.KindSimpleDeployable},
			want:   0,
		},
		{
			name:   "turret shares the emplacement resist",
			target: core.DeployableSnapshot{EntityKind: core.KindTurret},
			want:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &core.DamageRecord{Target: tt.target}
			assert.Equal(t, tt.want, acc(rec))
		})
	}
}

func TestDefaultCatalogHasProfiles(t *testing.T) {
	c := DefaultCatalog()
	for _, weapon := range []string{"suppressor", "cycler", "bolt_driver", "rocklet", "flux_cannon"} {
		p := c.Profile(weapon)
		assert.Greater(t, p.BaseDamage, float32(0), weapon)
	}
}
