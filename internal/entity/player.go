package entity

import "github.com/auraxsim/vitality/internal/model/core"

// Player is a live infantry entity.
type Player struct {
	ID          uint16
	Name        string
	Faction     core.Faction
	Position    core.Vector3
	Orientation float64
	Suit        core.ExoSuit
	Seated      bool
	Velocity    *core.Vector3

	health float32
	armor  float32
	alive  bool

	history []*core.DamageRecord
}

// NewPlayer creates a live player with full pools.
func NewPlayer(id uint16, name string, faction core.Faction, suit core.ExoSuit, health, armor float32) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Faction: faction,
		Suit:    suit,
		health:  health,
		armor:   armor,
		alive:   true,
	}
}

func (p *Player) ObjectID() uint16 { return p.ID }
func (p *Player) Kind() core.Kind { return core.KindPlayer }
func (p *Player) Alive() bool { return p.alive }
func (p *Player) Health() float32 { return p.health }
func (p *Player) SetHealth(v float32)  { p.health = v }
func (p *Player) Armor() float32 { return p.armor }
func (p *Player) SetArmor(v float32)   { p.armor = v }

// Kill marks the player dead. Pools are left as the last application set
// them so the death recap can show the killing blow.
func (p *Player) Kill() { p.alive = false }

// Revive restores the player to the given pools.
func (p *Player) Revive(health, armor float32) {
	p.health = health
	p.armor = armor
	p.alive = true
}

func (p *Player) RecordHistory(rec *core.DamageRecord) {
	p.history = append(p.history, rec)
}

func (p *Player) History() []*core.DamageRecord { return p.history }

// Snapshot copies the player's current combat fields.
func (p *Player) Snapshot() core.Snapshot {
	var vel *core.Vector3
	if p.Velocity != nil {
		v := *p.Velocity
		vel = &v
	}
	return core.PlayerSnapshot{
		Name:        p.Name,
		Faction:     p.Faction,
		Position:    p.Position,
		Orientation: p.Orientation,
		Suit:        p.Suit,
		Seated:      p.Seated,
		Health:      p.health,
		Armor:       p.armor,
		Velocity:    vel,
	}
}
