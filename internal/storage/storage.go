package storage

import "github.com/auraxsim/vitality/internal/model/core"

// Backend is the interface all combat-log storage implementations must
// satisfy.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Session management
	StartSession(session *core.Session) error
	EndSession() error

	// Entity registration
	AddEntity(e *core.EntityInfo) error

	// Resolution recording
	RecordDamage(o *core.DamageOutcome) error
	RecordKill(e *core.KillEvent) error
}

// Exportable is an optional interface for backends that produce a session
// log file on EndSession.
type Exportable interface {
	GetExportedFilePath() string
}
