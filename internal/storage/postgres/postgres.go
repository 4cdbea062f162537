// Package postgres implements the storage.Backend interface on a Postgres
// connection, reusing the GORM backend for all table logic. When the
// configured server cannot be reached the backend runs on the in-memory
// SQLite engine instead and dumps the session to disk on Close, so an
// unreachable database never loses a session.
package postgres

import (
	"fmt"

	"github.com/auraxsim/vitality/internal/database"
	"github.com/auraxsim/vitality/internal/logging"
	"github.com/auraxsim/vitality/internal/storage/gormstore"

	"gorm.io/gorm"
)

// Backend wraps the GORM backend with a Postgres connection and a local
// fallback.
type Backend struct {
	*gormstore.Backend
	local     bool
	localPath string
}

// New connects to Postgres using the viper connection config, falling back
// to local SQLite when the server is unreachable.
func New(localPath string, logManager *logging.SlogManager) (*Backend, error) {
	local := false
	db, err := connect()
	if err != nil {
		logManager.Logger().Warn("Postgres unavailable, using local SQLite fallback",
			"error", err, "localPath", localPath)
		db, err = database.GetSqliteDB("")
		if err != nil {
			return nil, fmt.Errorf("failed to open fallback sqlite db: %w", err)
		}
		local = true
	}

	return &Backend{
		Backend: gormstore.New(gormstore.Dependencies{
			DB:         db,
			LogManager: logManager,
		}),
		local:     local,
		localPath: localPath,
	}, nil
}

func connect() (*gorm.DB, error) {
	db, err := database.GetPostgresDB()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to validate connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)

	return db, nil
}

// Local reports whether the backend fell back to the in-memory engine.
func (b *Backend) Local() bool {
	return b.local
}

// Close flushes the writer and, on the fallback engine, dumps the
// in-memory database to the local path.
func (b *Backend) Close() error {
	if err := b.Backend.Close(); err != nil {
		return err
	}
	if b.local && b.localPath != "" {
		if err := database.DumpMemoryDBToDisk(b.DB(), b.localPath); err != nil {
			return fmt.Errorf("failed to dump fallback db: %w", err)
		}
	}
	return nil
}

// GetExportedFilePath returns the fallback dump path, or empty when the
// session went to Postgres.
func (b *Backend) GetExportedFilePath() string {
	if !b.local {
		return ""
	}
	return b.localPath
}
