package core

// Snapshot is a read-only capture of an entity's combat-relevant fields,
// taken at the moment a combat event begins resolving. Snapshots are plain
// values: copy freely, never mutate. A snapshot is owned by the DamageRecord
// that references it and has no independent lifecycle.
type Snapshot interface {
	Kind() Kind
	EntityName() string
	FactionID() Faction
}

// PlayerSnapshot captures an infantry target.
type PlayerSnapshot struct {
	Name        string
	Faction     Faction
	Position    Vector3
	Orientation float64
	Suit        ExoSuit
	Seated      bool
	Health      float32
	Armor       float32
	Velocity    *Vector3 // nil when standing still
}

func (s PlayerSnapshot) Kind() Kind { return KindPlayer }
func (s PlayerSnapshot) EntityName() string { return s.Name }
func (s PlayerSnapshot) FactionID() Faction { return s.Faction }

// VehicleSnapshot captures a vehicle target.
type VehicleSnapshot struct {
	Name        string
	Faction     Faction
	Position    Vector3
	Orientation float64
	Definition  string
	Health      float32
	Shields     float32
	Velocity    *Vector3
}

func (s VehicleSnapshot) Kind() Kind { return KindVehicle }
func (s VehicleSnapshot) EntityName() string { return s.Name }
func (s VehicleSnapshot) FactionID() Faction { return s.Faction }

// DeployableSnapshot captures a placed structure: simple deployables,
// shielded complex deployables, and turrets share the same shape and are
// told apart by EntityKind. Deployables never report a velocity.
type DeployableSnapshot struct {
	EntityKind  Kind
	Name        string
	Faction     Faction
	Position    Vector3
	Orientation float64
	Definition  string
	Health      float32
	Shields     float32
	Owner       string
}

func (s DeployableSnapshot) Kind() Kind { return s.EntityKind }
func (s DeployableSnapshot) EntityName() string { return s.Name }
func (s DeployableSnapshot) FactionID() Faction { return s.Faction }
