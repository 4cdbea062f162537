package storage

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/auraxsim/vitality/internal/config"
	"github.com/auraxsim/vitality/internal/logging"
	"github.com/auraxsim/vitality/internal/storage/memory"
	"github.com/auraxsim/vitality/internal/storage/postgres"
	sqlitestorage "github.com/auraxsim/vitality/internal/storage/sqlite"
)

// NewBackend creates a storage backend based on configuration.
func NewBackend(cfg config.StorageConfig, logManager *logging.SlogManager) (Backend, error) {
	switch cfg.Type {
	case "postgres":
		return postgres.New(filepath.Join(cfg.Memory.OutputDir, "vitality_local.db"), logManager)
	case "sqlite":
		return sqlitestorage.New(sqlitestorage.Config{
			DumpInterval: time.Duration(config.GetInt("sqlite.dumpIntervalSeconds")) * time.Second,
			DumpPath:     filepath.Join(cfg.Memory.OutputDir, "vitality.db"),
		}, logManager)
	case "memory":
		return memory.New(cfg.Memory), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
