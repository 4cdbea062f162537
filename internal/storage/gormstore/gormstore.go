// Package gormstore implements the storage.Backend interface on top of GORM
// with internal queues and a background DB writer goroutine. It is dialect
// agnostic; the sqlite and postgres packages supply the connection.
package gormstore

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/auraxsim/vitality/internal/logging"
	"github.com/auraxsim/vitality/internal/model/core"

	"gorm.io/gorm"
)

// writeInterval is how often queued rows are flushed to the database.
const writeInterval = 1 * time.Second

// Dependencies holds all dependencies for the GORM storage backend.
type Dependencies struct {
	DB         *gorm.DB
	LogManager *logging.SlogManager
}

// queues holds the per-table batches for the DB writer.
type queues struct {
	Entities rowBatch[EntityRow]
	Damage   rowBatch[DamageRow]
	Kills    rowBatch[KillRow]
}

// Backend implements storage.Backend using GORM with queue-based batch writes.
type Backend struct {
	deps      Dependencies
	queues    *queues
	sessionID atomic.Uint64
	stopChan  chan struct{}
	dbReady   bool
}

// New creates a new GORM storage backend.
func New(deps Dependencies) *Backend {
	return &Backend{
		deps: deps,
	}
}

// DB exposes the underlying connection to the dialect packages.
func (b *Backend) DB() *gorm.DB {
	return b.deps.DB
}

// Init runs schema migration and starts the DB writer goroutine.
func (b *Backend) Init() error {
	if b.deps.DB == nil {
		return fmt.Errorf("gormstore: no DB connection provided")
	}

	b.queues = &queues{}
	b.stopChan = make(chan struct{})

	if err := b.deps.DB.AutoMigrate(DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	b.dbReady = true

	go b.writerLoop()
	return nil
}

// Close flushes remaining rows and stops the writer goroutine.
func (b *Backend) Close() error {
	close(b.stopChan)
	b.flush()
	return nil
}

// StartSession creates a session row and assigns its ID to the passed pointer.
func (b *Backend) StartSession(session *core.Session) error {
	row := SessionRow{
		Name:       session.Name,
		ServerName: session.ServerName,
		StartTime:  session.StartTime,
	}
	if err := b.deps.DB.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create session row: %w", err)
	}
	session.ID = row.ID
	b.sessionID.Store(uint64(row.ID))
	return nil
}

// EndSession stamps the end time on the current session row.
func (b *Backend) EndSession() error {
	id := uint(b.sessionID.Load())
	if id == 0 {
		return nil
	}

	b.flush()

	now := time.Now()
	err := b.deps.DB.Model(&SessionRow{}).Where("id = ?", id).
		Update("end_time", &now).Error
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	b.sessionID.Store(0)
	return nil
}

// AddEntity queues an entity registration row.
func (b *Backend) AddEntity(e *core.EntityInfo) error {
	b.queues.Entities.Push(EntityRow{
		SessionID:  uint(b.sessionID.Load()),
		ObjectID:   e.ObjectID,
		Kind:       e.EntityKind.String(),
		Name:       e.Name,
		Faction:    e.Faction.String(),
		Definition: e.Definition,
		JoinTime:   e.JoinTime,
		JoinFrame:  e.JoinFrame,
	})
	return nil
}

// RecordDamage queues a resolved damage outcome row.
func (b *Backend) RecordDamage(o *core.DamageOutcome) error {
	projectile, err := json.Marshal(o.Projectile)
	if err != nil {
		return fmt.Errorf("failed to marshal projectile info: %w", err)
	}

	b.queues.Damage.Push(DamageRow{
		SessionID:        uint(b.sessionID.Load()),
		Time:             o.Time,
		CaptureFrame:     o.CaptureFrame,
		TargetID:         o.TargetID,
		TargetKind:       o.TargetKind.String(),
		TargetName:       o.TargetName,
		TargetFaction:    o.TargetFaction.String(),
		Weapon:           o.Projectile.Weapon,
		Attacker:         o.Projectile.Attacker,
		Projectile:       projectile,
		HealthDamage:     o.HealthDamage,
		DefenseDamage:    o.DefenseDamage,
		RemainingHealth:  o.RemainingHealth,
		RemainingDefense: o.RemainingDefense,
		Killed:           o.Killed,
	})
	return nil
}

// RecordKill queues a kill event row.
func (b *Backend) RecordKill(e *core.KillEvent) error {
	b.queues.Kills.Push(KillRow{
		SessionID:    uint(b.sessionID.Load()),
		Time:         e.Time,
		CaptureFrame: e.CaptureFrame,
		TargetID:     e.TargetID,
		TargetKind:   e.TargetKind.String(),
		TargetName:   e.TargetName,
		Weapon:       e.Weapon,
		Attacker:     e.Attacker,
		Distance:     e.Distance,
	})
	return nil
}

// writerLoop periodically flushes queued rows to the database.
func (b *Backend) writerLoop() {
	ticker := time.NewTicker(writeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopChan:
			return
		case <-ticker.C:
			b.flush()
		}
	}
}

// flush drains all queues into the database as batched inserts.
func (b *Backend) flush() {
	if !b.dbReady {
		return
	}

	flushBatch(b, &b.queues.Entities)
	flushBatch(b, &b.queues.Damage)
	flushBatch(b, &b.queues.Kills)
}

func flushBatch[T any](b *Backend, q *rowBatch[T]) {
	rows := q.Drain()
	if len(rows) == 0 {
		return
	}
	if err := b.deps.DB.Create(&rows).Error; err != nil {
		b.deps.LogManager.WriteLog("gormstore:flush",
			fmt.Sprintf("Error writing %d rows: %v", len(rows), err), "ERROR")
	}
}
