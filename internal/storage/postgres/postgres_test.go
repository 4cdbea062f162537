package postgres

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auraxsim/vitality/internal/logging"
	"github.com/auraxsim/vitality/internal/model/core"
)

// newFallbackBackend points the connection at an unreachable server so New
// has to fall back to the local engine.
func newFallbackBackend(t *testing.T) (*Backend, string) {
	t.Helper()

	viper.Reset()
	viper.Set("db.host", "127.0.0.1")
	viper.Set("db.port", "1")
	viper.Set("db.username", "vitality")
	viper.Set("db.password", "vitality")
	viper.Set("db.database", "vitality")

	localPath := filepath.Join(t.TempDir(), "vitality_local.db")
	b, err := New(localPath, logging.NewSlogManager())
	require.NoError(t, err)
	require.True(t, b.Local())

	return b, localPath
}

func TestFallbackRoundTrip(t *testing.T) {
	b, localPath := newFallbackBackend(t)
	require.NoError(t, b.Init())

	session := &core.Session{Name: "offline", ServerName: "srv", StartTime: time.Now()}
	require.NoError(t, b.StartSession(session))
	require.NotZero(t, session.ID)

	require.NoError(t, b.RecordDamage(&core.DamageOutcome{
		Time:         time.Now(),
		TargetID:     10,
		TargetKind:   core.KindPlayer,
		Projectile:   core.ProjectileInfo{Weapon: "cycler"},
		HealthDamage: 40,
	}))
	require.NoError(t, b.EndSession())

	// Close dumps the in-memory database to the local path
	require.NoError(t, b.Close())

	info, err := os.Stat(localPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
	assert.Equal(t, localPath, b.GetExportedFilePath())
}
