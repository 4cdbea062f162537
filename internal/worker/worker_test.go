package worker

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auraxsim/vitality/internal/ballistics"
	"github.com/auraxsim/vitality/internal/config"
	"github.com/auraxsim/vitality/internal/dispatcher"
	"github.com/auraxsim/vitality/internal/entity"
	"github.com/auraxsim/vitality/internal/logging"
	"github.com/auraxsim/vitality/internal/model/core"
	"github.com/auraxsim/vitality/internal/parser"
	"github.com/auraxsim/vitality/internal/registry"
	"github.com/auraxsim/vitality/internal/storage/memory"
)

// testCatalog has flat profiles so expected numbers stay readable.
func testCatalog() *ballistics.Catalog {
	c := ballistics.NewCatalog(ballistics.DamageProfile{BaseDamage: 10})
	c.Add("test_rifle", ballistics.DamageProfile{BaseDamage: 80, SplashDamage: 40})
	c.Add("test_cannon", ballistics.DamageProfile{BaseDamage: 50})
	return c
}

func newTestManager(t *testing.T) (*Manager, *memory.Backend, *dispatcher.Dispatcher) {
	t.Helper()

	backend := memory.New(config.MemoryConfig{OutputDir: t.TempDir()})
	require.NoError(t, backend.Init())

	m := NewManager(Dependencies{
		Registry:   registry.New(),
		LogManager: logging.NewSlogManager(),
		Parser:     parser.NewParser(slog.Default()),
		Catalog:    testCatalog(),
	}, backend)

	d, err := dispatcher.New(logging.NewFeedLogger(zerolog.Nop()))
	require.NoError(t, err)
	m.RegisterHandlers(d)

	return m, backend, d
}

func dispatch(t *testing.T, d *dispatcher.Dispatcher, command string, args ...string) {
	t.Helper()
	require.NoError(t, d.Dispatch(dispatcher.Event{Command: command, Args: args}))
}

// hit invokes the handler directly so the test is not racing the buffered
// queue.
func hit(t *testing.T, m *Manager, args ...string) {
	t.Helper()
	require.NoError(t, m.handleHit(dispatcher.Event{Command: ":HIT:", Args: args}))
}

func TestSessionLifecycle(t *testing.T) {
	m, backend, d := newTestManager(t)

	dispatch(t, d, ":SESSION:START:", "alpha", "server1")
	require.NotNil(t, m.Session())
	assert.Equal(t, "alpha", m.Session().Name)

	dispatch(t, d, ":NEW:PLAYER:", "0", "10", "Kestrel", "1", "4", "100", "50")
	assert.Equal(t, 1, m.deps.Registry.Len())

	dispatch(t, d, ":SESSION:END:")
	assert.Nil(t, m.Session())
	assert.Equal(t, 0, m.deps.Registry.Len())
	assert.NotEmpty(t, backend.GetExportedFilePath())
}

func TestInfantryHitPipeline(t *testing.T) {
	m, backend, d := newTestManager(t)

	dispatch(t, d, ":SESSION:START:", "alpha")
	// mechanized suit resists 20
	dispatch(t, d, ":NEW:PLAYER:", "0", "10", "Kestrel", "1", "4", "100", "50")

	hit(t, m,
		"50", "10", "11", "Vireo",
		"test_rifle", "mag", "auto",
		"[0,0,0]", "[1,1,0]", "0", "false")

	target, ok := m.deps.Registry.Get(10)
	require.True(t, ok)
	p := target.(*entity.Player)

	// 80 damage, 20 resist: 60 health / 20 armor
	assert.Equal(t, float32(40), p.Health())
	assert.Equal(t, float32(30), p.Armor())
	assert.True(t, p.Alive())
	assert.Len(t, p.History(), 1)

	assert.Equal(t, 1, backend.DamageCount())
	assert.Equal(t, 0, backend.KillCount())
	assert.Equal(t, uint(50), m.CurrentFrame())
}

func TestVehicleHitShieldsSpillover(t *testing.T) {
	m, backend, d := newTestManager(t)

	dispatch(t, d, ":SESSION:START:", "alpha")
	dispatch(t, d, ":NEW:VEHICLE:", "0", "20", "Wasp Lead", "2", "light_skimmer", "100", "30")

	hit(t, m,
		"60", "20", "11", "Vireo",
		"test_cannon", "mag", "single",
		"[0,0,0]", "[1,1,0]", "0", "false")

	target, ok := m.deps.Registry.Get(20)
	require.True(t, ok)
	v := target.(*entity.Vehicle)

	// 50 damage, 8 hull resist: 42 through, 30 soaked by shields
	assert.Equal(t, float32(0), v.Shields())
	assert.Equal(t, float32(88), v.Health())
	assert.Equal(t, 1, backend.DamageCount())
}

func TestKillDetection(t *testing.T) {
	m, backend, d := newTestManager(t)

	dispatch(t, d, ":SESSION:START:", "alpha")
	// infiltration suit resists nothing
	dispatch(t, d, ":NEW:PLAYER:", "0", "10", "Kestrel", "1", "3", "10", "0")

	hit(t, m,
		"70", "10", "11", "Vireo",
		"test_rifle", "mag", "auto",
		"[0,0,0]", "[1,1,0]", "0", "false")

	target, ok := m.deps.Registry.Get(10)
	require.True(t, ok)
	p := target.(*entity.Player)

	assert.False(t, p.Alive())
	assert.LessOrEqual(t, p.Health(), float32(0))
	assert.Equal(t, 1, backend.KillCount())
}

func TestSplashHitUsesAreaDamage(t *testing.T) {
	m, backend, d := newTestManager(t)

	dispatch(t, d, ":SESSION:START:", "alpha")
	// standard suit resists 4
	dispatch(t, d, ":NEW:PLAYER:", "0", "10", "Kestrel", "1", "0", "100", "0")

	hit(t, m,
		"80", "10", "11", "Vireo",
		"test_rifle", "mag", "auto",
		"[0,0,0]", "[1,1,0]", "0", "true")

	target, ok := m.deps.Registry.Get(10)
	require.True(t, ok)
	p := target.(*entity.Player)

	// splash base 40, resist 4 off the top, no armor: 36 to health
	assert.Equal(t, float32(64), p.Health())
	assert.Equal(t, 1, backend.DamageCount())
}

func TestHitOnUnknownTarget(t *testing.T) {
	m, backend, d := newTestManager(t)

	dispatch(t, d, ":SESSION:START:", "alpha")

	hit(t, m,
		"50", "99", "11", "Vireo",
		"test_rifle", "mag", "auto",
		"[0,0,0]", "[1,1,0]", "0", "false")

	assert.Equal(t, 0, backend.DamageCount())
}

func TestRemoveStopsResolution(t *testing.T) {
	m, backend, d := newTestManager(t)

	dispatch(t, d, ":SESSION:START:", "alpha")
	dispatch(t, d, ":NEW:PLAYER:", "0", "10", "Kestrel", "1", "0", "100", "0")

	// :REMOVE: is buffered; call the handler directly for determinism
	require.NoError(t, m.handleRemove(dispatcher.Event{Args: []string{"55", "10"}}))
	assert.Equal(t, 0, m.deps.Registry.Len())

	hit(t, m,
		"60", "10", "11", "Vireo",
		"test_rifle", "mag", "auto",
		"[0,0,0]", "[1,1,0]", "0", "false")

	assert.Equal(t, 0, backend.DamageCount())
}

func TestDeployableAndTurretHits(t *testing.T) {
	m, backend, d := newTestManager(t)

	dispatch(t, d, ":SESSION:START:", "alpha")
	dispatch(t, d, ":NEW:DEPLOYABLE:", "0", "30", "motion_sensor", "Kestrel", "1", "80", "0", "false")
	dispatch(t, d, ":NEW:TURRET:", "0", "32", "plasma_turret", "Shrike", "3", "300", "100")

	// simple deployable resists nothing: full 50 lands on health
	hit(t, m,
		"90", "30", "11", "Vireo",
		"test_cannon", "mag", "single",
		"[0,0,0]", "[1,1,0]", "0", "false")

	sensor, ok := m.deps.Registry.Get(30)
	require.True(t, ok)
	assert.Equal(t, float32(30), sensor.Health())

	// turret resists 5: 45 through, shields soak it all
	hit(t, m,
		"91", "32", "11", "Vireo",
		"test_cannon", "mag", "single",
		"[0,0,0]", "[1,1,0]", "0", "false")

	turret, ok := m.deps.Registry.Get(32)
	require.True(t, ok)
	tr := turret.(*entity.Turret)
	assert.Equal(t, float32(55), tr.Shields())
	assert.Equal(t, float32(300), tr.Health())

	assert.Equal(t, 2, backend.DamageCount())
}

func TestParseErrorPropagates(t *testing.T) {
	m, _, d := newTestManager(t)

	dispatch(t, d, ":SESSION:START:", "alpha")

	require.Error(t, d.Dispatch(dispatcher.Event{
		Command: ":NEW:PLAYER:",
		Args:    []string{"bad"},
	}))

	require.Error(t, m.handleHit(dispatcher.Event{Args: []string{"not", "enough"}}))
}

// rejectingBackend simulates an entity store that refuses writes.
type rejectingBackend struct {
	*memory.Backend
}

func (b *rejectingBackend) AddEntity(e *core.EntityInfo) error {
	return fmt.Errorf("entity store offline")
}

func TestEntityStoreErrorPropagates(t *testing.T) {
	backend := &rejectingBackend{Backend: memory.New(config.MemoryConfig{OutputDir: t.TempDir()})}

	m := NewManager(Dependencies{
		Registry:   registry.New(),
		LogManager: logging.NewSlogManager(),
		Parser:     parser.NewParser(slog.Default()),
		Catalog:    testCatalog(),
	}, backend)

	d, err := dispatcher.New(logging.NewFeedLogger(zerolog.Nop()))
	require.NoError(t, err)
	m.RegisterHandlers(d)

	dispatch(t, d, ":SESSION:START:", "alpha")

	err = d.Dispatch(dispatcher.Event{
		Command: ":NEW:PLAYER:",
		Args:    []string{"0", "10", "Kestrel", "1", "0", "100", "50"},
	})
	require.ErrorContains(t, err, "failed to store player")

	err = d.Dispatch(dispatcher.Event{
		Command: ":NEW:TURRET:",
		Args:    []string{"0", "32", "plasma_turret", "Shrike", "3", "300", "100"},
	})
	require.ErrorContains(t, err, "failed to store deployable")

	// registration reached the registry before the store refused
	assert.Equal(t, 2, m.deps.Registry.Len())
}
