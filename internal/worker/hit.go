package worker

import (
	"context"
	"fmt"

	"github.com/auraxsim/vitality/internal/ballistics"
	"github.com/auraxsim/vitality/internal/dispatcher"
	"github.com/auraxsim/vitality/internal/entity"
	"github.com/auraxsim/vitality/internal/influx"
	"github.com/auraxsim/vitality/internal/model/core"
	"github.com/auraxsim/vitality/internal/resolve"
)

// handleHit runs the full resolution pipeline for one projectile hit:
// snapshot, calculate, apply under the registry's exclusive handle, then
// persist the outcome.
func (m *Manager) handleHit(e dispatcher.Event) error {
	report, err := m.deps.Parser.ParseHit(e.Args)
	if err != nil {
		return fmt.Errorf("failed to parse hit: %w", err)
	}
	m.observeFrame(report.CaptureFrame)

	// Snapshot phase needs no lock; the snapshot decouples calculation
	// from concurrent mutation.
	target, ok := m.deps.Registry.Get(report.TargetID)
	if !ok {
		m.logger().Debug("Hit on unknown target", "targetID", report.TargetID)
		return nil
	}

	rec := &core.DamageRecord{
		Time:         report.Time,
		CaptureFrame: report.CaptureFrame,
		Target:       target.Snapshot(),
		Projectile:   report.Projectile,
	}

	damage := m.deps.Catalog.DamageOf()
	resistance := ballistics.ResistanceOf()

	var app *resolve.Application
	if report.Projectile.Splash {
		app = resolve.CalculateSplash(damage, resistance, rec)
	} else {
		app = resolve.Calculate(damage, resistance, rec)
	}

	// Application phase takes the exclusive per-entity handle.
	live, release, ok := m.deps.Registry.Acquire(report.TargetID)
	if !ok {
		m.logger().Debug("Target removed before application", "targetID", report.TargetID)
		return nil
	}
	defer release()

	wasAlive := live.Health() > 0
	if err := app.ApplyTo(live); err != nil {
		return fmt.Errorf("failed to apply damage: %w", err)
	}

	killed := wasAlive && live.Health() <= 0
	if killed {
		if p, isPlayer := live.(*entity.Player); isPlayer {
			p.Kill()
		}
	}

	outcome := m.buildOutcome(rec, app, live, killed)
	if err := m.backend.RecordDamage(&outcome); err != nil {
		m.logger().Error("Failed to record damage outcome", "error", err)
	}
	m.writeDamageMetrics(&outcome)

	if killed {
		kill := core.KillEvent{
			Time:         rec.Time,
			CaptureFrame: rec.CaptureFrame,
			TargetID:     report.TargetID,
			TargetKind:   live.Kind(),
			TargetName:   rec.Target.EntityName(),
			Weapon:       rec.Projectile.Weapon,
			Attacker:     rec.Projectile.Attacker,
			Distance:     rec.Projectile.Distance,
		}
		if err := m.backend.RecordKill(&kill); err != nil {
			m.logger().Error("Failed to record kill event", "error", err)
		}
		m.writeKillMetrics(&kill)

		m.logger().Info("Target destroyed",
			"targetID", report.TargetID,
			"kind", live.Kind().String(),
			"weapon", rec.Projectile.Weapon,
			"attacker", rec.Projectile.Attacker)
	}

	return nil
}

// buildOutcome captures the post-application state of the target.
func (m *Manager) buildOutcome(rec *core.DamageRecord, app *resolve.Application, live entity.Target, killed bool) core.DamageOutcome {
	return core.DamageOutcome{
		Time:             rec.Time,
		CaptureFrame:     rec.CaptureFrame,
		TargetID:         live.ObjectID(),
		TargetKind:       live.Kind(),
		TargetName:       rec.Target.EntityName(),
		TargetFaction:    rec.Target.FactionID(),
		Projectile:       rec.Projectile,
		HealthDamage:     app.Split.HealthDamage,
		DefenseDamage:    app.Split.DefenseDamage,
		RemainingHealth:  live.Health(),
		RemainingDefense: remainingDefense(live),
		Killed:           killed,
	}
}

// remainingDefense reads whichever defense pool the target carries.
func remainingDefense(t entity.Target) float32 {
	switch tt := t.(type) {
	case entity.ArmoredTarget:
		return tt.Armor()
	case entity.ShieldedTarget:
		return tt.Shields()
	}
	return 0
}

func (m *Manager) writeDamageMetrics(o *core.DamageOutcome) {
	if m.deps.Influx == nil {
		return
	}
	if err := m.deps.Influx.WritePoint(context.Background(), "combat_damage", influx.DamagePoint(o)); err != nil {
		m.logger().Debug("Failed to write damage metric", "error", err)
	}
}

func (m *Manager) writeKillMetrics(e *core.KillEvent) {
	if m.deps.Influx == nil {
		return
	}
	if err := m.deps.Influx.WritePoint(context.Background(), "combat_kills", influx.KillPoint(e)); err != nil {
		m.logger().Debug("Failed to write kill metric", "error", err)
	}
}
