package core

// Vector3 is a game-world coordinate or velocity without GIS dependencies.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Faction identifies the empire an entity fights for.
type Faction uint8

const (
	FactionNeutral Faction = iota
	FactionCrimson
	FactionAzure
	FactionViridian
)

func (f Faction) String() string {
	switch f {
	case FactionCrimson:
		return "CRIMSON"
	case FactionAzure:
		return "AZURE"
	case FactionViridian:
		return "VIRIDIAN"
	default:
		return "NEUTRAL"
	}
}

// ExoSuit is the armor configuration a player is wearing.
type ExoSuit uint8

const (
	ExoSuitStandard ExoSuit = iota
	ExoSuitAgile
	ExoSuitReinforced
	ExoSuitInfiltration
	ExoSuitMechanized
)

func (e ExoSuit) String() string {
	switch e {
	case ExoSuitAgile:
		return "agile"
	case ExoSuitReinforced:
		return "reinforced"
	case ExoSuitInfiltration:
		return "infiltration"
	case ExoSuitMechanized:
		return "mechanized"
	default:
		return "standard"
	}
}

// Kind is the closed set of damage-target categories the resolver
// dispatches on. KindNone selects the no-op algorithm/applier pair.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindVehicle
	KindSimpleDeployable
	KindComplexDeployable
	KindTurret
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindVehicle:
		return "vehicle"
	case KindSimpleDeployable:
		return "simpleDeployable"
	case KindComplexDeployable:
		return "complexDeployable"
	case KindTurret:
		return "turret"
	default:
		return "none"
	}
}
