package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetDefaults(t *testing.T) {
	viper.Reset()
	SetDefaults()

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "memory", viper.GetString("storage.type"))
	assert.Equal(t, "5432", viper.GetString("db.port"))
	assert.Equal(t, 180, viper.GetInt("sqlite.dumpIntervalSeconds"))
	assert.False(t, viper.GetBool("influx.enabled"))
}

func TestGetStorageConfig(t *testing.T) {
	viper.Reset()
	SetDefaults()

	cfg := GetStorageConfig()
	assert.Equal(t, "memory", cfg.Type)
	assert.Equal(t, ".", cfg.Memory.OutputDir)
	assert.True(t, cfg.Memory.CompressOutput)
}

func TestGetStorageConfigOverride(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set("storage.type", "sqlite")
	viper.Set("storage.memory.compressOutput", false)

	cfg := GetStorageConfig()
	assert.Equal(t, "sqlite", cfg.Type)
	assert.False(t, cfg.Memory.CompressOutput)
}

func TestLoadMissingFile(t *testing.T) {
	viper.Reset()
	err := Load(t.TempDir())
	assert.Error(t, err)
	// defaults are still installed for callers that continue on error
	assert.Equal(t, "info", viper.GetString("logLevel"))
}
