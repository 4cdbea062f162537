package worker

import (
	"fmt"
	"time"

	"github.com/auraxsim/vitality/internal/dispatcher"
	"github.com/auraxsim/vitality/internal/entity"
	"github.com/auraxsim/vitality/internal/model/core"
	"github.com/auraxsim/vitality/internal/parser"
	"github.com/auraxsim/vitality/internal/util"
)

// RegisterHandlers registers all event handlers with the dispatcher.
func (m *Manager) RegisterHandlers(d *dispatcher.Dispatcher) {
	// Session lifecycle - sync (everything else depends on it)
	d.Register(":SESSION:START:", m.handleSessionStart, dispatcher.Logged())
	d.Register(":SESSION:END:", m.handleSessionEnd, dispatcher.Logged())

	// Entity registration - sync (must be in the registry before hits arrive)
	d.Register(":NEW:PLAYER:", m.handleNewPlayer, dispatcher.Logged())
	d.Register(":NEW:VEHICLE:", m.handleNewVehicle, dispatcher.Logged())
	d.Register(":NEW:DEPLOYABLE:", m.handleNewDeployable, dispatcher.Logged())
	d.Register(":NEW:TURRET:", m.handleNewTurret, dispatcher.Logged())

	// Combat events - buffered
	d.Register(":HIT:", m.handleHit, dispatcher.Buffered(5000), dispatcher.Logged())

	// Entity removal - buffered
	d.Register(":REMOVE:", m.handleRemove, dispatcher.Buffered(500), dispatcher.Logged())
}

func (m *Manager) handleSessionStart(e dispatcher.Event) error {
	name := "session"
	serverName := ""
	if len(e.Args) > 0 {
		name = util.FixEscapeQuotes(util.TrimQuotes(e.Args[0]))
	}
	if len(e.Args) > 1 {
		serverName = util.FixEscapeQuotes(util.TrimQuotes(e.Args[1]))
	}

	session := &core.Session{
		Name:       name,
		ServerName: serverName,
		StartTime:  time.Now(),
	}

	if err := m.backend.StartSession(session); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	m.deps.Registry.Reset()
	m.frame.Store(0)
	m.session.Store(session)

	m.logger().Info("Session started", "name", name, "server", serverName)
	return nil
}

func (m *Manager) handleSessionEnd(e dispatcher.Event) error {
	session := m.session.Load()
	if session == nil {
		return nil
	}
	session.EndTime = time.Now()

	if err := m.backend.EndSession(); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	m.session.Store(nil)
	m.deps.Registry.Reset()

	m.logger().Info("Session ended", "name", session.Name)
	return nil
}

func (m *Manager) handleNewPlayer(e dispatcher.Event) error {
	spec, err := m.deps.Parser.ParsePlayer(e.Args)
	if err != nil {
		return fmt.Errorf("failed to register player: %w", err)
	}
	m.observeFrame(spec.CaptureFrame)

	p := entity.NewPlayer(spec.ObjectID, spec.Name, spec.Faction, spec.Suit, spec.Health, spec.Armor)
	m.deps.Registry.Add(p)

	err = m.backend.AddEntity(&core.EntityInfo{
		ObjectID:   spec.ObjectID,
		EntityKind: core.KindPlayer,
		Name:       spec.Name,
		Faction:    spec.Faction,
		JoinTime:   spec.Time,
		JoinFrame:  spec.CaptureFrame,
	})
	if err != nil {
		return fmt.Errorf("failed to store player: %w", err)
	}
	return nil
}

func (m *Manager) handleNewVehicle(e dispatcher.Event) error {
	spec, err := m.deps.Parser.ParseVehicle(e.Args)
	if err != nil {
		return fmt.Errorf("failed to register vehicle: %w", err)
	}
	m.observeFrame(spec.CaptureFrame)

	v := entity.NewVehicle(spec.ObjectID, spec.Name, spec.Faction, spec.Definition, spec.Health, spec.Shields)
	m.deps.Registry.Add(v)

	err = m.backend.AddEntity(&core.EntityInfo{
		ObjectID:   spec.ObjectID,
		EntityKind: core.KindVehicle,
		Name:       spec.Name,
		Faction:    spec.Faction,
		Definition: spec.Definition,
		JoinTime:   spec.Time,
		JoinFrame:  spec.CaptureFrame,
	})
	if err != nil {
		return fmt.Errorf("failed to store vehicle: %w", err)
	}
	return nil
}

func (m *Manager) handleNewDeployable(e dispatcher.Event) error {
	spec, err := m.deps.Parser.ParseDeployable(e.Args)
	if err != nil {
		return fmt.Errorf("failed to register deployable: %w", err)
	}
	return m.addDeployable(spec)
}

func (m *Manager) handleNewTurret(e dispatcher.Event) error {
	spec, err := m.deps.Parser.ParseTurret(e.Args)
	if err != nil {
		return fmt.Errorf("failed to register turret: %w", err)
	}
	return m.addDeployable(spec)
}

func (m *Manager) addDeployable(spec parser.DeployableSpec) error {
	m.observeFrame(spec.CaptureFrame)

	var target entity.Target
	switch spec.EntityKind {
	case core.KindSimpleDeployable:
		target = entity.NewSimpleDeployable(spec.ObjectID, spec.Definition, spec.Owner, spec.Faction, spec.Health)
	case core.KindComplexDeployable:
		target = entity.NewComplexDeployable(spec.ObjectID, spec.Definition, spec.Owner, spec.Faction, spec.Health, spec.Shields)
	case core.KindTurret:
		target = entity.NewTurret(spec.ObjectID, spec.Definition, spec.Owner, spec.Faction, spec.Health, spec.Shields)
	default:
		return fmt.Errorf("unexpected deployable kind %s", spec.EntityKind)
	}
	m.deps.Registry.Add(target)

	err := m.backend.AddEntity(&core.EntityInfo{
		ObjectID:   spec.ObjectID,
		EntityKind: spec.EntityKind,
		Name:       spec.Definition,
		Faction:    spec.Faction,
		Definition: spec.Definition,
		JoinTime:   spec.Time,
		JoinFrame:  spec.CaptureFrame,
	})
	if err != nil {
		return fmt.Errorf("failed to store deployable: %w", err)
	}
	return nil
}

func (m *Manager) handleRemove(e dispatcher.Event) error {
	spec, err := m.deps.Parser.ParseRemove(e.Args)
	if err != nil {
		return fmt.Errorf("failed to parse remove: %w", err)
	}
	m.observeFrame(spec.CaptureFrame)

	m.deps.Registry.Remove(spec.ObjectID)
	return nil
}
