package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auraxsim/vitality/internal/entity"
	"github.com/auraxsim/vitality/internal/model/core"
)

func constant(v float32) Accumulator {
	return func(*core.DamageRecord) float32 { return v }
}

type unknownSnapshot struct{}

func (unknownSnapshot) Kind() core.Kind { return core.KindNone }
func (unknownSnapshot) EntityName() string { return "anomaly" }
func (unknownSnapshot) FactionID() core.Faction { return core.FactionNeutral }

func TestCalculateDoesNotMutate(t *testing.T) {
	p := entity.NewPlayer(1, "subject", core.FactionCrimson, core.ExoSuitAgile, 100, 50)
	rec := &core.DamageRecord{Target: p.Snapshot()}

	app := Calculate(constant(80), constant(20), rec)

	require.NotNil(t, app)
	assert.Equal(t, Split{HealthDamage: 60, DefenseDamage: 20}, app.Split)
	// calculation is pure: the live entity is untouched until ApplyTo
	assert.Equal(t, float32(100), p.Health())
	assert.Equal(t, float32(50), p.Armor())
	assert.Empty(t, p.History())
}

func TestCalculateAndApplyPlayer(t *testing.T) {
	p := entity.NewPlayer(1, "subject", core.FactionCrimson, core.ExoSuitAgile, 100, 50)
	rec := &core.DamageRecord{Target: p.Snapshot()}

	app := Calculate(constant(80), constant(20), rec)
	require.NoError(t, app.ApplyTo(p))

	assert.Equal(t, float32(40), p.Health())
	assert.Equal(t, float32(30), p.Armor())
	assert.Len(t, p.History(), 1)
}

func TestCalculateAndApplyVehicle(t *testing.T) {
	v := entity.NewVehicle(2, "transport", core.FactionAzure, "skimmer", 100, 30)
	rec := &core.DamageRecord{Target: v.Snapshot()}

	app := Calculate(constant(50), constant(0), rec)
	require.Equal(t, core.KindVehicle, app.Kind)
	require.NoError(t, app.ApplyTo(v))

	assert.Equal(t, float32(0), v.Shields())
	assert.Equal(t, float32(80), v.Health())
}

func TestCalculateVehicleRawPassthrough(t *testing.T) {
	v := entity.NewVehicle(2, "transport", core.FactionAzure, "skimmer", 100, 0)
	rec := &core.DamageRecord{Target: v.Snapshot()}

	// resistance exceeds damage; the raw amount still lands
	app := Calculate(constant(10), constant(15), rec)
	require.NoError(t, app.ApplyTo(v))

	assert.Equal(t, float32(90), v.Health())
}

func TestCalculateSplashUsesAreaAlgorithm(t *testing.T) {
	p := entity.NewPlayer(1, "subject", core.FactionCrimson, core.ExoSuitStandard, 50, 0)
	rec := &core.DamageRecord{Target: p.Snapshot()}

	app := CalculateSplash(constant(40), constant(10), rec)
	require.Equal(t, core.KindPlayer, app.Kind)
	assert.Equal(t, Split{HealthDamage: 30}, app.Split)

	require.NoError(t, app.ApplyTo(p))
	assert.Equal(t, float32(20), p.Health())
}

func TestCalculateSplashFullyResisted(t *testing.T) {
	p := entity.NewPlayer(1, "subject", core.FactionCrimson, core.ExoSuitMechanized, 100, 50)
	rec := &core.DamageRecord{Target: p.Snapshot()}

	app := CalculateSplash(constant(10), constant(20), rec)
	require.NoError(t, app.ApplyTo(p))

	assert.Equal(t, float32(100), p.Health())
	assert.Equal(t, float32(50), p.Armor())
	assert.Empty(t, p.History())
}

func TestCalculateDeployableKinds(t *testing.T) {
	tests := []struct {
		name     string
		target   entity.Target
		wantKind core.Kind
	}{
		{
			name:     "simple deployable",
			target:   entity.NewSimpleDeployable(3, "motion_sensor", "owner", core.FactionViridian, 80),
			wantKind: core.KindSimpleDeployable,
		},
		{
			name:     "complex deployable",
			target:   entity.NewComplexDeployable(4, "shield_generator", "owner", core.FactionViridian, 200, 120),
			wantKind: core.KindComplexDeployable,
		},
		{
			name:     "turret",
			target:   entity.NewTurret(5, "plasma_turret", "owner", core.FactionViridian, 300, 100),
			wantKind: core.KindTurret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &core.DamageRecord{Target: tt.target.Snapshot()}

			app := Calculate(constant(50), constant(10), rec)
			assert.Equal(t, tt.wantKind, app.Kind)
			assert.Equal(t, Split{HealthDamage: 40}, app.Split)
		})
	}
}

func TestCalculateUnknownKindIsNoOp(t *testing.T) {
	rec := &core.DamageRecord{Target: unknownSnapshot{}}

	app := Calculate(constant(100), constant(0), rec)
	require.Equal(t, core.KindNone, app.Kind)
	assert.Equal(t, Split{}, app.Split)

	// applying the no-op pair mutates nothing and returns no error
	p := entity.NewPlayer(1, "bystander", core.FactionCrimson, core.ExoSuitAgile, 100, 50)
	require.NoError(t, app.ApplyTo(p))
	assert.Equal(t, float32(100), p.Health())
	assert.Empty(t, p.History())
}

func TestApplicationSingleUse(t *testing.T) {
	p := entity.NewPlayer(1, "subject", core.FactionCrimson, core.ExoSuitAgile, 100, 50)
	rec := &core.DamageRecord{Target: p.Snapshot()}

	app := Calculate(constant(80), constant(20), rec)

	require.NoError(t, app.ApplyTo(p))
	err := app.ApplyTo(p)
	require.ErrorIs(t, err, ErrAlreadyApplied)

	// second call must not double-apply
	assert.Equal(t, float32(40), p.Health())
	assert.Equal(t, float32(30), p.Armor())
	assert.Len(t, p.History(), 1)
}

func TestApplicationNoOpStillConsumes(t *testing.T) {
	rec := &core.DamageRecord{Target: unknownSnapshot{}}
	app := Calculate(constant(100), constant(0), rec)

	p := entity.NewPlayer(1, "bystander", core.FactionCrimson, core.ExoSuitAgile, 100, 50)
	require.NoError(t, app.ApplyTo(p))
	require.ErrorIs(t, app.ApplyTo(p), ErrAlreadyApplied)
}

func TestApplicationRecordAccessor(t *testing.T) {
	rec := &core.DamageRecord{Target: unknownSnapshot{}, CaptureFrame: 7}
	app := Calculate(constant(1), constant(0), rec)
	assert.Same(t, rec, app.Record())
}
